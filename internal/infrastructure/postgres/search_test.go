package postgres_test

import (
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jportillo/incidencias-api/internal/domain/repository"
	"github.com/jportillo/incidencias-api/internal/infrastructure/postgres"
)

// ──────────────────────────────────────────────────────────────────────────────
// DB de grabación: captura el SQL y los argumentos sin tocar una base real
// ──────────────────────────────────────────────────────────────────────────────

type recordingDB struct {
	queries []string
	args    [][]any
}

func (d *recordingDB) record(sql string, args []any) {
	d.queries = append(d.queries, sql)
	d.args = append(d.args, args)
}

func (d *recordingDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	d.record(sql, args)
	return pgconn.CommandTag{}, nil
}

func (d *recordingDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	d.record(sql, args)
	return emptyRows{}, nil
}

func (d *recordingDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	d.record(sql, args)
	return zeroRow{}
}

type zeroRow struct{}

func (zeroRow) Scan(_ ...any) error { return nil }

type emptyRows struct{}

func (emptyRows) Close()                                       {}
func (emptyRows) Err() error                                   { return nil }
func (emptyRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (emptyRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (emptyRows) Next() bool                                   { return false }
func (emptyRows) Scan(_ ...any) error                          { return nil }
func (emptyRows) Values() ([]any, error)                       { return nil, nil }
func (emptyRows) RawValues() [][]byte                          { return nil }
func (emptyRows) Conn() *pgx.Conn                              { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Búsqueda insensible a tildes: ambos lados del ILIKE deben plegarse.
// Un solo lado plegado rompe la búsqueda: "mendez" nunca casaría con la
// columna "Laura Méndez" sin unaccent del lado de la columna.
// ──────────────────────────────────────────────────────────────────────────────

func assertFoldedBothSides(t *testing.T, db *recordingDB, wantArg string) {
	t.Helper()
	require.NotEmpty(t, db.queries)
	for _, q := range db.queries {
		if !strings.Contains(q, "ILIKE") {
			continue
		}
		assert.Contains(t, q, "unaccent(", "la columna debe plegarse con unaccent")
		assert.Contains(t, q, "ILIKE unaccent($", "el parámetro debe plegarse con unaccent")
	}
	require.NotEmpty(t, db.args[0])
	assert.Equal(t, wantArg, db.args[0][0], "el término viaja plegado (minúsculas, sin tildes)")
}

func TestCompanyList_BusquedaPliegaAmbosLados(t *testing.T) {
	db := &recordingDB{}
	repo := postgres.NewCompanyRepository(db)

	_, _, err := repo.List(context.Background(), "Méndez", 20, 0)
	require.NoError(t, err)

	assertFoldedBothSides(t, db, "%mendez%")
}

func TestEmployeeList_BusquedaPliegaAmbosLados(t *testing.T) {
	db := &recordingDB{}
	repo := postgres.NewEmployeeRepository(db)

	_, _, err := repo.List(context.Background(), "Peña", "", 20, 0)
	require.NoError(t, err)

	assertFoldedBothSides(t, db, "%pena%")
}

func TestMovementList_BusquedaPliegaAmbosLados(t *testing.T) {
	db := &recordingDB{}
	repo := postgres.NewMovementRepository(db)

	_, _, err := repo.List(context.Background(), repository.MovementFilter{Search: "José", Limit: 20})
	require.NoError(t, err)

	assertFoldedBothSides(t, db, "%jose%")
}
