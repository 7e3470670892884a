package pets

import "context"

// Repository devuelve ErrNotFound cuando el id no existe.
type Repository interface {
	Create(ctx context.Context, p Pet) (Pet, error)
	Update(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id int64) (Pet, error)
	List(ctx context.Context) ([]Pet, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
