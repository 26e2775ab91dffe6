package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jportillo/incidencias-api/pkg/normalize"
)

// pageSpec describe un listado paginado con búsqueda por una expresión de columna.
// Todos los repositorios CRUD listan a través de listPage en lugar de repetir
// la construcción de WHERE/COUNT/LIMIT por entidad.
type pageSpec struct {
	table      string
	columns    string
	searchExpr string // expresión de columna para el ILIKE (ej. "name" o "name || ' ' || email")
	orderBy    string
}

// listPage ejecuta el par COUNT + SELECT paginado para la spec dada. La
// búsqueda pliega tildes en ambos lados: el término con normalize.SearchTerm
// y la columna con unaccent, para que "Mendez" encuentre "Méndez" y viceversa.
func listPage[T any](ctx context.Context, db DB, spec pageSpec, search string, limit, offset int, scan func(rows pgx.Rows) (T, error)) ([]T, int, error) {
	where := ""
	args := []any{}
	if search != "" {
		args = append(args, "%"+normalize.SearchTerm(search)+"%")
		where = fmt.Sprintf(" WHERE unaccent(%s) ILIKE unaccent($1)", spec.searchExpr)
	}

	var total int
	countSQL := "SELECT count(*) FROM " + spec.table + where
	if err := db.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count %s: %w", spec.table, err)
	}

	query := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s LIMIT $%d OFFSET $%d",
		spec.columns, spec.table, where, spec.orderBy, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list %s: %w", spec.table, err)
	}
	defer rows.Close()

	var list []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan %s: %w", spec.table, err)
		}
		list = append(list, item)
	}
	return list, total, rows.Err()
}
