package stats

import "context"

// Row es una fila del LEFT JOIN pets -> activity_logs agrupado por
// (nombre, actividad). Activity es nil para mascotas sin logs.
type Row struct {
	PetName  string
	Activity *string
	Count    int64
}

type Repository interface {
	ActivityCounts(ctx context.Context) ([]Row, error)
}

// Summary: nombre de mascota -> actividad -> cantidad.
type Summary map[string]map[string]int64

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Summary incluye toda mascota; las que no tienen logs quedan con mapa vacío.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	rows, err := s.repo.ActivityCounts(ctx)
	if err != nil {
		return nil, err
	}
	return fold(rows), nil
}

func fold(rows []Row) Summary {
	out := Summary{}
	for _, r := range rows {
		byActivity, ok := out[r.PetName]
		if !ok {
			byActivity = map[string]int64{}
			out[r.PetName] = byActivity
		}
		if r.Activity == nil || *r.Activity == "" {
			continue
		}
		byActivity[*r.Activity] += r.Count
	}
	return out
}
