// seed genera un script SQL con el usuario administrador inicial.
//
// Uso: go run ./cmd/seed <email> <password> [rol]
// Por defecto el rol es SUPER_ADMIN.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_admin.sql
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jportillo/incidencias-api/internal/domain/entity"
)

const outPath = "internal/infrastructure/postgres/migrations/002_seed_admin.sql"

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "Uso: seed <email> <password> [rol]")
		os.Exit(1)
	}
	email := strings.ToLower(strings.TrimSpace(os.Args[1]))
	password := os.Args[2]
	role := entity.RoleSuperAdmin
	if len(os.Args) > 3 {
		role = os.Args[3]
	}
	if !entity.ValidRole(role) {
		fmt.Fprintf(os.Stderr, "Rol inválido: %s\n", role)
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar hash: %v\n", err)
		os.Exit(1)
	}

	var sb strings.Builder
	sb.WriteString("-- Usuario administrador inicial. Generado por cmd/seed.\n")
	fmt.Fprintf(&sb,
		"INSERT INTO users (id, email, password_hash, role, status)\nVALUES ('%s', '%s', '%s', '%s', 'ACTIVE')\nON CONFLICT (email) DO NOTHING;\n",
		uuid.New().String(), sqlEscape(email), sqlEscape(string(hash)), role)

	if err := os.WriteFile(outPath, []byte(sb.String()), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir %s: %v\n", outPath, err)
		os.Exit(1)
	}
	fmt.Printf("Escrito %s (%s como %s)\n", outPath, email, role)
}

func sqlEscape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
