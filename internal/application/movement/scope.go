package movement

import (
	"context"
	"fmt"

	"github.com/jportillo/incidencias-api/internal/domain"
	"github.com/jportillo/incidencias-api/internal/domain/entity"
)

// Scope restricción de lectura por oficinas para un usuario.
type Scope struct {
	Unrestricted bool     // true solo para SUPER_ADMIN
	OfficeIDs    []string // oficinas permitidas cuando Unrestricted es false
}

// Allows indica si la oficina está dentro del scope.
func (s Scope) Allows(officeID string) bool {
	if s.Unrestricted {
		return true
	}
	for _, id := range s.OfficeIDs {
		if id == officeID {
			return true
		}
	}
	return false
}

// scopeFor resuelve la restricción de oficinas del usuario. SUPER_ADMIN lee
// sin restricción; cualquier otro rol queda limitado a sus oficinas
// vinculadas, y sin oficinas vinculadas no puede listar (ErrForbidden).
func (uc *UseCase) scopeFor(ctx context.Context, userID string) (Scope, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return Scope{}, err
	}
	if user == nil {
		return Scope{}, domain.ErrUnauthorized
	}
	if user.Role == entity.RoleSuperAdmin {
		return Scope{Unrestricted: true}, nil
	}
	ids, err := uc.userRepo.OfficeIDs(ctx, userID)
	if err != nil {
		return Scope{}, err
	}
	if len(ids) == 0 {
		return Scope{}, fmt.Errorf("%w: el usuario no tiene oficinas asignadas", domain.ErrForbidden)
	}
	return Scope{OfficeIDs: ids}, nil
}
