package activitylogs

import (
	"context"
	"errors"
	"time"

	"petrecord/internal/platform/textnorm"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("activity log not found")
	// ErrPetNotFound también es ErrInvalidInput: el cliente recibe 400.
	ErrPetNotFound error = inputError{"Pet not found"}
)

type inputError struct{ msg string }

func (e inputError) Error() string        { return e.msg }
func (e inputError) Is(target error) bool { return target == ErrInvalidInput }

type Service struct {
	repo Repository
	pets PetChecker
}

func NewService(repo Repository, pets PetChecker) *Service {
	return &Service{
		repo: repo,
		pets: pets,
	}
}

type Input struct {
	Date     string
	PetID    int64
	Activity string
	Note     string
}

func (in Input) toLog(id int64) (Log, error) {
	l := Log{
		ID:       id,
		PetID:    in.PetID,
		Date:     textnorm.Clean(in.Date),
		Activity: textnorm.Clean(in.Activity),
		Note:     textnorm.Optional(in.Note),
	}

	if l.Date == "" || l.PetID == 0 || l.Activity == "" {
		return Log{}, inputError{"Date, pet_id, and activity are required"}
	}
	if _, err := time.Parse(DateLayout, l.Date); err != nil {
		return Log{}, inputError{"date must be YYYY-MM-DD"}
	}
	return l, nil
}

// checkPet da el mensaje limpio antes de escribir. No es atómico con la
// escritura; la foreign key del store tiene la última palabra.
func (s *Service) checkPet(ctx context.Context, petID int64) error {
	ok, err := s.pets.Exists(ctx, petID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPetNotFound
	}
	return nil
}

func (s *Service) Create(ctx context.Context, in Input) (Log, error) {
	l, err := in.toLog(0)
	if err != nil {
		return Log{}, err
	}
	if err := s.checkPet(ctx, l.PetID); err != nil {
		return Log{}, err
	}
	return s.repo.Create(ctx, l)
}

// Update reemplaza todos los campos del log.
func (s *Service) Update(ctx context.Context, id int64, in Input) (Log, error) {
	l, err := in.toLog(id)
	if err != nil {
		return Log{}, err
	}
	if err := s.checkPet(ctx, l.PetID); err != nil {
		return Log{}, err
	}
	if err := s.repo.Update(ctx, l); err != nil {
		return Log{}, err
	}
	return l, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Entry, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Entry, error) {
	return s.repo.List(ctx)
}

// ListForPet no distingue "mascota inexistente" de "sin logs": ambas son lista vacía.
func (s *Service) ListForPet(ctx context.Context, petID int64) ([]Entry, error) {
	return s.repo.ListByPet(ctx, petID)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
