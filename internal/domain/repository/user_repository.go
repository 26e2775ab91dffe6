package repository

import (
	"context"

	"github.com/jportillo/incidencias-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User y su relación
// muchos-a-muchos con oficinas (user_offices).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	List(ctx context.Context, search string, limit, offset int) ([]*entity.User, int, error)
	Delete(ctx context.Context, id string) error

	// OfficeIDs devuelve los ids de oficinas vinculadas al usuario.
	OfficeIDs(ctx context.Context, userID string) ([]string, error)
	// ReplaceOffices reemplaza el conjunto de oficinas vinculadas (semántica set).
	ReplaceOffices(ctx context.Context, userID string, officeIDs []string) error
}
