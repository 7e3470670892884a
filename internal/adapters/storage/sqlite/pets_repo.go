package sqlite

import (
	"context"
	"errors"

	"petrecord/internal/domain/pets"

	"gorm.io/gorm"
)

type PetsRepo struct {
	db *gorm.DB
}

func NewPetsRepo(db *gorm.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	m := toPetModel(p)
	m.ID = 0
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return pets.Pet{}, err
	}
	return toPet(m), nil
}

// Update pisa todas las columnas (los nil pasan a NULL).
func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res := r.db.WithContext(ctx).
		Model(&PetModel{}).
		Where("id = ?", p.ID).
		Updates(map[string]any{
			"name":     p.Name,
			"species":  p.Species,
			"breed":    p.Breed,
			"birthday": p.Birthday,
			"photo":    p.Photo,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	var m PetModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return toPet(m), nil
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	rows := make([]PetModel, 0)
	if err := r.db.WithContext(ctx).Order("name ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]pets.Pet, 0, len(rows))
	for _, m := range rows {
		out = append(out, toPet(m))
	}
	return out, nil
}

// Delete depende de ON DELETE CASCADE (foreign_keys=1 en el DSN) para los logs.
func (r *PetsRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&PetModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&PetModel{}).Count(&n).Error
	return n, err
}

func toPetModel(p pets.Pet) PetModel {
	return PetModel{
		ID:       p.ID,
		Name:     p.Name,
		Species:  p.Species,
		Breed:    p.Breed,
		Birthday: p.Birthday,
		Photo:    p.Photo,
	}
}

func toPet(m PetModel) pets.Pet {
	return pets.Pet{
		ID:       m.ID,
		Name:     m.Name,
		Species:  m.Species,
		Breed:    m.Breed,
		Birthday: m.Birthday,
		Photo:    m.Photo,
	}
}
