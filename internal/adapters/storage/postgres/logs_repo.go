package postgres

import (
	"context"
	"database/sql"
	"errors"

	"petrecord/internal/domain/activitylogs"

	"github.com/jackc/pgx/v5/pgconn"
)

// 23503 = foreign_key_violation
const fkViolation = "23503"

type LogsRepo struct {
	db *sql.DB
}

func NewLogsRepo(db *sql.DB) *LogsRepo {
	return &LogsRepo{db: db}
}

const entrySelect = `
	SELECT
		l.id, l.date, l.pet_id, l.activity, l.note,
		p.name, p.species, p.breed
	FROM activity_logs l
	LEFT JOIN pets p ON l.pet_id = p.id
`

func (r *LogsRepo) Create(ctx context.Context, l activitylogs.Log) (activitylogs.Log, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO activity_logs (date, pet_id, activity, note)
		VALUES ($1,$2,$3,$4)
		RETURNING id
	`,
		l.Date,
		l.PetID,
		l.Activity,
		l.Note,
	).Scan(&l.ID)
	if err != nil {
		return activitylogs.Log{}, translate(err)
	}
	return l, nil
}

func (r *LogsRepo) Update(ctx context.Context, l activitylogs.Log) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE activity_logs
		SET
			date = $2,
			pet_id = $3,
			activity = $4,
			note = $5
		WHERE id = $1
	`,
		l.ID,
		l.Date,
		l.PetID,
		l.Activity,
		l.Note,
	)
	if err != nil {
		return translate(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return activitylogs.ErrNotFound
	}
	return nil
}

func (r *LogsRepo) GetByID(ctx context.Context, id int64) (activitylogs.Entry, error) {
	row := r.db.QueryRowContext(ctx, entrySelect+` WHERE l.id = $1`, id)

	e, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return activitylogs.Entry{}, activitylogs.ErrNotFound
		}
		return activitylogs.Entry{}, err
	}
	return e, nil
}

func (r *LogsRepo) List(ctx context.Context) ([]activitylogs.Entry, error) {
	return r.query(ctx, entrySelect+` ORDER BY l.date DESC, l.id DESC`)
}

func (r *LogsRepo) ListByPet(ctx context.Context, petID int64) ([]activitylogs.Entry, error) {
	return r.query(ctx, entrySelect+` WHERE l.pet_id = $1 ORDER BY l.date DESC, l.id DESC`, petID)
}

func (r *LogsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM activity_logs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return activitylogs.ErrNotFound
	}
	return nil
}

func (r *LogsRepo) query(ctx context.Context, q string, args ...any) ([]activitylogs.Entry, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]activitylogs.Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func scanEntry(s scanner) (activitylogs.Entry, error) {
	var (
		e                    activitylogs.Entry
		note                 sql.NullString
		name, species, breed sql.NullString
	)
	if err := s.Scan(
		&e.ID,
		&e.Date,
		&e.PetID,
		&e.Activity,
		&note,
		&name,
		&species,
		&breed,
	); err != nil {
		return activitylogs.Entry{}, err
	}

	e.Note = fromNullString(note)
	e.PetName = fromNullString(name)
	e.PetSpecies = fromNullString(species)
	e.PetBreed = fromNullString(breed)
	return e, nil
}

func translate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == fkViolation {
		return activitylogs.ErrPetNotFound
	}
	return err
}
