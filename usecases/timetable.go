package usecases

import (
	"errors"
	"time"

	"distracto-server/entities"
	"distracto-server/repositories"

	"gorm.io/gorm"
)

const defaultTimetableLimit = 10

type TimetableUseCase struct {
	Repo repositories.TimetableRepository
}

func NewTimetableUseCase(repo repositories.TimetableRepository) *TimetableUseCase {
	return &TimetableUseCase{Repo: repo}
}

func (uc *TimetableUseCase) List(userID string, date *time.Time, limit int) ([]entities.Timetable, error) {
	if limit <= 0 {
		limit = defaultTimetableLimit
	}
	if date != nil {
		day := Midnight(*date)
		date = &day
	}
	return uc.Repo.GetByUserID(userID, date, limit)
}

func (uc *TimetableUseCase) Create(userID string, timetable *entities.Timetable) error {
	timetable.ID = ""
	timetable.UserID = userID
	if timetable.Date.IsZero() {
		timetable.Date = Midnight(time.Now())
	} else {
		timetable.Date = Midnight(timetable.Date)
	}
	return uc.Repo.Create(timetable)
}

// Update replaces the mutable parts of an owned timetable (task completion,
// title, recommendations).
func (uc *TimetableUseCase) Update(userID, id string, input *entities.Timetable) (*entities.Timetable, error) {
	existing, err := uc.Repo.GetOwned(id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		existing.Title = input.Title
	}
	if input.Tasks != nil {
		existing.Tasks = input.Tasks
	}
	if input.Recommendations != nil {
		existing.Recommendations = input.Recommendations
	}

	if err := uc.Repo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (uc *TimetableUseCase) Delete(userID, id string) error {
	err := uc.Repo.DeleteOwned(id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
