package movement

import (
	"context"

	"github.com/jportillo/incidencias-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de movimientos atado a esa tx. Garantiza que la verificación de
// duplicados y la escritura final ocurren en la misma transacción.
type TxRunner interface {
	Run(ctx context.Context, fn func(movRepo repository.MovementRepository) error) error
}
