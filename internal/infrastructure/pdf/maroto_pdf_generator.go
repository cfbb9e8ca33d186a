// Package pdf implementa la generación de la hoja resumen de un cliente:
// datos de la empresa, contactos registrados y servicios contratados.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Razón Social + CNPJ  │  Estado + Fecha de alta      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DIRECCIÓN FISCAL                                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA CONTACTOS: Tipo | Nombre | Email | Teléfono           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA SERVICIOS: Servicio | Estado | Precio mensual         │
//	│  TOTAL MENSUAL ACTIVO                                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa clients.SummaryPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateClientSummary genera el PDF resumen y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateClientSummary(client dto.ClientDetails) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumen de Cliente", true).
		WithAuthor(client.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(addressRow(client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitleRow("CONTACTOS"))
	m.AddRows(contactsHeaderRow())
	for _, r := range contactRows(client.Contacts) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(sectionTitleRow("SERVICIOS CONTRATADOS"))
	m.AddRows(servicesHeaderRow())
	for _, r := range serviceRows(client.Services) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(client.Services))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: razón social + CNPJ (izq) y estado + fecha de alta (der).
func headerRow(client dto.ClientDetails) core.Row {
	fecha := client.CreatedAt.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(client.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("CNPJ: "+client.TaxID, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RESUMEN DE CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(strings.ToUpper(client.Status), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Alta: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// addressRow: dirección fiscal e inscripción municipal.
func addressRow(client dto.ClientDetails) core.Row {
	street := strings.TrimSpace(client.AddressStreet + " " + client.AddressNumber)
	if client.AddressComplement != "" {
		street += ", " + client.AddressComplement
	}
	city := strings.TrimSpace(fmt.Sprintf("%s  %s/%s  %s",
		client.AddressNeighborhood, client.AddressCity, client.AddressState, client.AddressZipCode))

	return row.New(16).Add(
		col.New(12).Add(
			text.New("DIRECCIÓN FISCAL", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(street, "—"), props.Text{Size: 8, Top: 7, Color: colorGray}),
			text.New(nonEmpty(city, "—")+"   |   Insc. Municipal: "+nonEmpty(client.MunicipalRegistration, "—"),
				props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}),
	))
}

// contactsHeaderRow: cabecera de la tabla de contactos.
func contactsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Tipo", 2, align.Left),
		h("Nombre", 4, align.Left),
		h("Email", 4, align.Left),
		h("Teléfono", 2, align.Right),
	)
}

// contactRows: una fila por contacto.
func contactRows(contacts []dto.ContactResponse) []core.Row {
	result := make([]core.Row, 0, len(contacts))
	for _, c := range contacts {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(c.Type, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(c.FullName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(c.Email, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(nonEmpty(c.Phone, "—"), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// servicesHeaderRow: cabecera de la tabla de servicios.
func servicesHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Servicio", 6, align.Left),
		h("Estado", 3, align.Center),
		h("Precio mensual", 3, align.Right),
	)
}

// serviceRows: una fila por servicio contratado.
func serviceRows(services []dto.ServiceResponse) []core.Row {
	if len(services) == 0 {
		return []core.Row{row.New(7).Add(col.New(12).Add(
			text.New("Sin servicios contratados", props.Text{
				Size: 8, Align: align.Center, Top: 1, Color: colorGray,
			}),
		))}
	}
	result := make([]core.Row, 0, len(services))
	for _, s := range services {
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(s.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(s.Status, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(
				"$"+s.MonthlyPrice.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: suma de precios mensuales de servicios activos.
func totalRow(services []dto.ServiceResponse) core.Row {
	total := decimal.Zero
	for _, s := range services {
		if s.Status == entity.ServiceStatusActive {
			total = total.Add(s.MonthlyPrice)
		}
	}
	return row.New(10).Add(
		col.New(9).Add(text.New("TOTAL MENSUAL ACTIVO:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New("$"+total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
