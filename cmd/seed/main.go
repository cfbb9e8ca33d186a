// seed crea (o repara) el usuario SUPER_ADMIN inicial de la plataforma.
//
// Uso: go run ./cmd/seed
// Lee SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD del entorno; el resto de la
// configuración (DB) sale de pkg/config como en el binario principal.
// Es idempotente: si el email ya existe solo asegura el rol SUPER_ADMIN.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/infrastructure/postgres"
	"github.com/jhoicas/clientes-api/pkg/config"
)

func main() {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		fmt.Fprintln(os.Stderr, "SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD son requeridos")
		os.Exit(1)
	}
	if len(password) < 8 {
		fmt.Fprintln(os.Stderr, "SEED_ADMIN_PASSWORD debe tener al menos 8 caracteres")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)

	existing, err := userRepo.GetByEmail(email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Buscar usuario: %v\n", err)
		os.Exit(1)
	}
	if existing != nil {
		if existing.SystemRole == entity.SystemRoleSuperAdmin {
			fmt.Printf("SUPER_ADMIN %s ya existe, nada que hacer\n", email)
			return
		}
		existing.SystemRole = entity.SystemRoleSuperAdmin
		existing.UpdatedAt = time.Now()
		if err := userRepo.Update(existing); err != nil {
			fmt.Fprintf(os.Stderr, "Promover usuario: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Usuario %s promovido a SUPER_ADMIN\n", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hashear password: %v\n", err)
		os.Exit(1)
	}

	now := time.Now()
	admin := &entity.User{
		ID:           uuid.New().String(),
		Name:         "Platform Admin",
		Email:        email,
		PasswordHash: string(hash),
		SystemRole:   entity.SystemRoleSuperAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(admin); err != nil {
		fmt.Fprintf(os.Stderr, "Crear SUPER_ADMIN: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("SUPER_ADMIN %s creado (id %s)\n", email, admin.ID)
}
