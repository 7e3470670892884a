package sqlite

import (
	"context"
	"errors"
	"strings"

	"petrecord/internal/domain/activitylogs"

	"gorm.io/gorm"
	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const entryColumns = `
	l.id, l.date, l.pet_id, l.activity, l.note,
	p.name AS pet_name, p.species AS pet_species, p.breed AS pet_breed`

type LogsRepo struct {
	db *gorm.DB
}

func NewLogsRepo(db *gorm.DB) *LogsRepo {
	return &LogsRepo{db: db}
}

func (r *LogsRepo) Create(ctx context.Context, l activitylogs.Log) (activitylogs.Log, error) {
	m := ActivityLogModel{
		Date:     l.Date,
		PetID:    l.PetID,
		Activity: l.Activity,
		Note:     l.Note,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return activitylogs.Log{}, translate(err)
	}
	l.ID = m.ID
	return l, nil
}

func (r *LogsRepo) Update(ctx context.Context, l activitylogs.Log) error {
	res := r.db.WithContext(ctx).
		Model(&ActivityLogModel{}).
		Where("id = ?", l.ID).
		Updates(map[string]any{
			"date":     l.Date,
			"pet_id":   l.PetID,
			"activity": l.Activity,
			"note":     l.Note,
		})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return activitylogs.ErrNotFound
	}
	return nil
}

func (r *LogsRepo) GetByID(ctx context.Context, id int64) (activitylogs.Entry, error) {
	rows := make([]entryRow, 0, 1)
	if err := r.joined(ctx).Where("l.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return activitylogs.Entry{}, err
	}
	if len(rows) == 0 {
		return activitylogs.Entry{}, activitylogs.ErrNotFound
	}
	return toEntry(rows[0]), nil
}

func (r *LogsRepo) List(ctx context.Context) ([]activitylogs.Entry, error) {
	return r.list(r.joined(ctx))
}

func (r *LogsRepo) ListByPet(ctx context.Context, petID int64) ([]activitylogs.Entry, error) {
	return r.list(r.joined(ctx).Where("l.pet_id = ?", petID))
}

func (r *LogsRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&ActivityLogModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return activitylogs.ErrNotFound
	}
	return nil
}

func (r *LogsRepo) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("activity_logs AS l").
		Select(entryColumns).
		Joins("LEFT JOIN pets AS p ON p.id = l.pet_id")
}

func (r *LogsRepo) list(q *gorm.DB) ([]activitylogs.Entry, error) {
	rows := make([]entryRow, 0)
	if err := q.Order("l.date DESC, l.id DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]activitylogs.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, toEntry(row))
	}
	return out, nil
}

// translate convierte la violación de foreign key en ErrPetNotFound:
// el store es quien decide si pet_id existe al momento de escribir.
func translate(err error) error {
	if isForeignKeyViolation(err) {
		return activitylogs.ErrPetNotFound
	}
	return err
}

func isForeignKeyViolation(err error) bool {
	var se *msqlite.Error
	if errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY {
		return true
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

func toEntry(row entryRow) activitylogs.Entry {
	return activitylogs.Entry{
		Log: activitylogs.Log{
			ID:       row.ID,
			PetID:    row.PetID,
			Date:     row.Date,
			Activity: row.Activity,
			Note:     row.Note,
		},
		PetName:    row.PetName,
		PetSpecies: row.PetSpecies,
		PetBreed:   row.PetBreed,
	}
}
