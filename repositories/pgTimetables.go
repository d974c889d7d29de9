package repositories

import (
	"time"

	"distracto-server/db"
	"distracto-server/entities"

	"gorm.io/gorm"
)

type timetablePgRepository struct {
	db db.Database
}

func NewTimetablePgRepository(database db.Database) TimetableRepository {
	return &timetablePgRepository{db: database}
}

func (r *timetablePgRepository) Create(timetable *entities.Timetable) error {
	return r.db.GetDB().Create(timetable).Error
}

func (r *timetablePgRepository) GetByUserID(userID string, date *time.Time, limit int) ([]entities.Timetable, error) {
	timetables := []entities.Timetable{}
	query := r.db.GetDB().Where("user_id = ?", userID)
	if date != nil {
		query = query.Where("date = ?", *date)
	}
	err := query.Order("created_at DESC").Limit(limit).Find(&timetables).Error
	return timetables, err
}

func (r *timetablePgRepository) GetOwned(id, userID string) (*entities.Timetable, error) {
	var timetable entities.Timetable
	err := r.db.GetDB().Where("id = ? AND user_id = ?", id, userID).First(&timetable).Error
	if err != nil {
		return nil, err
	}
	return &timetable, nil
}

func (r *timetablePgRepository) Update(timetable *entities.Timetable) error {
	return r.db.GetDB().Save(timetable).Error
}

func (r *timetablePgRepository) DeleteOwned(id, userID string) error {
	result := r.db.GetDB().Where("id = ? AND user_id = ?", id, userID).Delete(&entities.Timetable{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
