// Package seed carga mascotas y logs de ejemplo en una base vacía.
package seed

import (
	"context"
	_ "embed"
	"fmt"

	"petrecord/internal/domain/activitylogs"
	"petrecord/internal/domain/pets"
	"petrecord/internal/platform/logger"
	"petrecord/internal/platform/textnorm"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultData []byte

type Data struct {
	Pets []PetFixture `yaml:"pets"`
	Logs []LogFixture `yaml:"logs"`
}

type PetFixture struct {
	Name     string `yaml:"name"`
	Species  string `yaml:"species"`
	Breed    string `yaml:"breed"`
	Birthday string `yaml:"birthday"`
	Photo    string `yaml:"photo"`
}

// LogFixture referencia la mascota por nombre; los ids los asigna el store.
type LogFixture struct {
	Date     string `yaml:"date"`
	Pet      string `yaml:"pet"`
	Activity string `yaml:"activity"`
	Note     string `yaml:"note"`
}

func Parse(raw []byte) (Data, error) {
	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return Data{}, fmt.Errorf("seed: parse: %w", err)
	}
	return d, nil
}

func Default() (Data, error) {
	return Parse(defaultData)
}

type Seeder struct {
	pets pets.Repository
	logs activitylogs.Repository
	log  logger.Logger
}

func New(petRepo pets.Repository, logRepo activitylogs.Repository, log logger.Logger) *Seeder {
	if log == nil {
		log = logger.Discard()
	}
	return &Seeder{pets: petRepo, logs: logRepo, log: log}
}

// IfEmpty inserta data sólo si no hay mascotas. Devuelve true si insertó.
func (s *Seeder) IfEmpty(ctx context.Context, data Data) (bool, error) {
	n, err := s.pets.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("seed: count pets: %w", err)
	}
	if n > 0 {
		s.log.Debug("seed skipped", map[string]any{"pets": n})
		return false, nil
	}

	ids := make(map[string]int64, len(data.Pets))
	for _, f := range data.Pets {
		p, err := s.pets.Create(ctx, pets.Pet{
			Name:     textnorm.Clean(f.Name),
			Species:  textnorm.Clean(f.Species),
			Breed:    textnorm.Optional(f.Breed),
			Birthday: textnorm.Optional(f.Birthday),
			Photo:    textnorm.Optional(f.Photo),
		})
		if err != nil {
			return false, fmt.Errorf("seed: create pet %q: %w", f.Name, err)
		}
		ids[p.Name] = p.ID
	}

	for _, f := range data.Logs {
		petID, ok := ids[textnorm.Clean(f.Pet)]
		if !ok {
			return false, fmt.Errorf("seed: log %s references unknown pet %q", f.Date, f.Pet)
		}
		_, err := s.logs.Create(ctx, activitylogs.Log{
			Date:     textnorm.Clean(f.Date),
			PetID:    petID,
			Activity: textnorm.Clean(f.Activity),
			Note:     textnorm.Optional(f.Note),
		})
		if err != nil {
			return false, fmt.Errorf("seed: create log %s/%s: %w", f.Date, f.Pet, err)
		}
	}

	s.log.Info("sample data inserted", map[string]any{
		"pets": len(data.Pets),
		"logs": len(data.Logs),
	})
	return true, nil
}
