package sqlite

import (
	"context"

	"petrecord/internal/domain/stats"

	"gorm.io/gorm"
)

type StatsRepo struct {
	db *gorm.DB
}

func NewStatsRepo(db *gorm.DB) *StatsRepo {
	return &StatsRepo{db: db}
}

// ActivityCounts agrupa por nombre (no por id): dos mascotas con el mismo
// nombre comparten entrada en el resumen.
func (r *StatsRepo) ActivityCounts(ctx context.Context) ([]stats.Row, error) {
	rows := make([]statsRow, 0)
	err := r.db.WithContext(ctx).Raw(`
		SELECT p.name AS name, l.activity AS activity, COUNT(*) AS count
		FROM pets p
		LEFT JOIN activity_logs l ON p.id = l.pet_id
		GROUP BY p.name, l.activity
		ORDER BY p.name, l.activity
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]stats.Row, 0, len(rows))
	for _, row := range rows {
		out = append(out, stats.Row{PetName: row.Name, Activity: row.Activity, Count: row.Count})
	}
	return out, nil
}
