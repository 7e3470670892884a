package pets

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"petrecord/internal/platform/textnorm"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
)

// inputError lleva el mensaje que ve el cliente y se compara como ErrInvalidInput.
type inputError struct{ msg string }

func (e inputError) Error() string        { return e.msg }
func (e inputError) Is(target error) bool { return target == ErrInvalidInput }

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Input se usa tanto en alta como en reemplazo completo (PUT).
// Opcionales vacíos quedan en NULL.
type Input struct {
	Name     string
	Species  string
	Breed    string
	Birthday string
	Photo    string
}

func (in Input) toPet(id int64) (Pet, error) {
	name := textnorm.Clean(in.Name)
	species := textnorm.Clean(in.Species)
	if name == "" || species == "" {
		return Pet{}, inputError{"Name and species are required"}
	}

	p := Pet{
		ID:       id,
		Name:     name,
		Species:  species,
		Breed:    textnorm.Optional(in.Breed),
		Birthday: textnorm.Optional(in.Birthday),
		Photo:    textnorm.Optional(in.Photo),
	}

	if p.Birthday != nil {
		if _, err := time.Parse(DateLayout, *p.Birthday); err != nil {
			return Pet{}, inputError{"birthday must be YYYY-MM-DD"}
		}
	}
	if p.Photo != nil && !isHTTPURL(*p.Photo) {
		return Pet{}, inputError{"photo must be an absolute http(s) URL"}
	}

	return p, nil
}

func isHTTPURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return (scheme == "http" || scheme == "https") && u.Host != ""
}

func (s *Service) Create(ctx context.Context, in Input) (Pet, error) {
	p, err := in.toPet(0)
	if err != nil {
		return Pet{}, err
	}
	return s.repo.Create(ctx, p)
}

// Update reemplaza todos los campos; lo omitido queda en NULL.
func (s *Service) Update(ctx context.Context, id int64, in Input) (Pet, error) {
	p, err := in.toPet(id)
	if err != nil {
		return Pet{}, err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

// Delete verifica existencia antes de borrar. Los logs caen por cascada en el store.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// Exists lo usa activitylogs para validar pet_id sin importar este paquete al revés.
func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	_, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
