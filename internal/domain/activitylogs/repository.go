package activitylogs

import "context"

// Repository devuelve ErrNotFound si el log no existe y ErrPetNotFound si el
// store rechaza pet_id por la foreign key. Los listados van ordenados por
// date DESC, id DESC.
type Repository interface {
	Create(ctx context.Context, l Log) (Log, error)
	Update(ctx context.Context, l Log) error
	GetByID(ctx context.Context, id int64) (Entry, error)
	List(ctx context.Context) ([]Entry, error)
	ListByPet(ctx context.Context, petID int64) ([]Entry, error)
	Delete(ctx context.Context, id int64) error
}

// PetChecker valida que la mascota referenciada exista.
type PetChecker interface {
	Exists(ctx context.Context, petID int64) (bool, error)
}
