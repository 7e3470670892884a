package postgres

import (
	"context"
	"database/sql"

	"petrecord/internal/domain/stats"
)

type StatsRepo struct {
	db *sql.DB
}

func NewStatsRepo(db *sql.DB) *StatsRepo {
	return &StatsRepo{db: db}
}

func (r *StatsRepo) ActivityCounts(ctx context.Context) ([]stats.Row, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.name, l.activity, COUNT(*)
		FROM pets p
		LEFT JOIN activity_logs l ON p.id = l.pet_id
		GROUP BY p.name, l.activity
		ORDER BY p.name, l.activity
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]stats.Row, 0)
	for rows.Next() {
		var (
			row      stats.Row
			activity sql.NullString
		)
		if err := rows.Scan(&row.PetName, &activity, &row.Count); err != nil {
			return nil, err
		}
		row.Activity = fromNullString(activity)
		out = append(out, row)
	}
	return out, rows.Err()
}
