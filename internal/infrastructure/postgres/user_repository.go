package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jportillo/incidencias-api/internal/domain"
	"github.com/jportillo/incidencias-api/internal/domain/entity"
	"github.com/jportillo/incidencias-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	db DB
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create persiste un nuevo usuario. Email repetido -> ErrEmailAlreadyExists.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, name, role, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.Name, user.Role, user.Status,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	query := `
		SELECT id, email, password_hash, name, role, status, created_at, updated_at
		FROM users WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id), "get user by id")
}

// GetByEmail obtiene un usuario por email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, email, password_hash, name, role, status, created_at, updated_at
		FROM users WHERE email = $1 LIMIT 1`
	return r.scanOne(r.db.QueryRow(ctx, query, email), "get user by email")
}

func (r *UserRepo) scanOne(row pgx.Row, op string) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}

// Update actualiza un usuario.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users SET email = $2, password_hash = $3, name = $4, role = $5, status = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.Name, user.Role, user.Status, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// List devuelve usuarios con paginación y búsqueda por nombre o email.
func (r *UserRepo) List(ctx context.Context, search string, limit, offset int) ([]*entity.User, int, error) {
	spec := pageSpec{
		table:      "users",
		columns:    "id, email, password_hash, name, role, status, created_at, updated_at",
		searchExpr: "name || ' ' || email",
		orderBy:    "name ASC",
	}
	return listPage(ctx, r.db, spec, search, limit, offset, func(rows pgx.Rows) (*entity.User, error) {
		var u entity.User
		err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt)
		return &u, err
	})
}

// Delete elimina un usuario y, por cascada declarada en el schema, sus
// vínculos en user_offices.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", translateError(err))
	}
	return nil
}

// OfficeIDs devuelve los ids de oficinas vinculadas al usuario.
func (r *UserRepo) OfficeIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT office_id FROM user_offices WHERE user_id = $1 ORDER BY office_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list user offices: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan user office: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ReplaceOffices reemplaza el conjunto completo de oficinas vinculadas.
func (r *UserRepo) ReplaceOffices(ctx context.Context, userID string, officeIDs []string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM user_offices WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clear user offices: %w", err)
	}
	for _, officeID := range officeIDs {
		_, err := r.db.Exec(ctx,
			`INSERT INTO user_offices (user_id, office_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			userID, officeID)
		if err != nil {
			return fmt.Errorf("link user office: %w", translateError(err))
		}
	}
	return nil
}
