package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un servicio contratado.
const (
	ServiceStatusActive    = "active"
	ServiceStatusPending   = "pending"
	ServiceStatusCancelled = "cancelled"
	ServiceStatusCompleted = "completed"
)

// Service es un servicio contratado por una Company (la unidad que se
// factura mes a mes). La baja de la empresa cancela los active/pending.
type Service struct {
	ID           string
	CompanyID    string
	Name         string
	Status       string // active, pending, cancelled, completed
	MonthlyPrice decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
