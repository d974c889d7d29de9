package repositories

import (
	"time"

	"distracto-server/db"
	"distracto-server/entities"

	"gorm.io/gorm/clause"
)

type screenTimePgRepository struct {
	db db.Database
}

func NewScreenTimePgRepository(database db.Database) ScreenTimeRepository {
	return &screenTimePgRepository{db: database}
}

func (r *screenTimePgRepository) GetByUserAndDate(userID string, date time.Time) (*entities.ScreenTime, error) {
	var record entities.ScreenTime
	err := r.db.GetDB().
		Where("user_id = ? AND date = ?", userID, date).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Upsert relies on the (user_id, date) unique index: the first write of a day
// inserts, every later write updates the same row.
func (r *screenTimePgRepository) Upsert(record *entities.ScreenTime) (*entities.ScreenTime, error) {
	err := r.db.GetDB().Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_time", "productive_time", "unproductive_time",
			"top_sites", "device_data", "extension_data", "updated_at",
		}),
	}).Create(record).Error
	if err != nil {
		return nil, err
	}
	// Re-read so the caller gets the stored row (id of the original insert).
	return r.GetByUserAndDate(record.UserID, record.Date)
}

func (r *screenTimePgRepository) GetRange(userID string, start, end time.Time) ([]entities.ScreenTime, error) {
	records := []entities.ScreenTime{}
	err := r.db.GetDB().
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date ASC").
		Find(&records).Error
	return records, err
}
