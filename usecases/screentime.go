package usecases

import (
	"errors"
	"time"

	"distracto-server/entities"
	"distracto-server/repositories"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Midnight truncates a timestamp to the start of its UTC day. Every stored
// screen-time date is midnight-normalized so the (user, date) uniqueness
// holds regardless of when during the day a write happens.
func Midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ScreenTimeUpdate carries the fields a PUT actually supplied. Nil fields
// keep the stored value, so a partial body never zeroes the rest of the day.
type ScreenTimeUpdate struct {
	TotalTime        *float64                                   `json:"totalTime"`
	ProductiveTime   *float64                                   `json:"productiveTime"`
	UnproductiveTime *float64                                   `json:"unproductiveTime"`
	TopSites         *datatypes.JSONSlice[entities.SiteUsage]   `json:"topSites"`
	DeviceData       *datatypes.JSONSlice[entities.DeviceUsage] `json:"deviceData"`
	ExtensionData    datatypes.JSON                             `json:"extensionData"`
}

type ScreenTimeUseCase struct {
	Repo repositories.ScreenTimeRepository
}

func NewScreenTimeUseCase(repo repositories.ScreenTimeRepository) *ScreenTimeUseCase {
	return &ScreenTimeUseCase{Repo: repo}
}

// GetForDate returns the user's record for the day, creating a zeroed record
// on first read.
func (uc *ScreenTimeUseCase) GetForDate(userID string, date time.Time) (*entities.ScreenTime, error) {
	if userID == "" {
		return nil, errors.New("user id is required")
	}
	day := Midnight(date)

	record, err := uc.Repo.GetByUserAndDate(userID, day)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return uc.Repo.Upsert(&entities.ScreenTime{UserID: userID, Date: day})
}

// Update merges the supplied fields over the user's record for the day and
// upserts the result.
func (uc *ScreenTimeUseCase) Update(userID string, date time.Time, update ScreenTimeUpdate) (*entities.ScreenTime, error) {
	if userID == "" {
		return nil, errors.New("user id is required")
	}
	day := Midnight(date)

	record, err := uc.Repo.GetByUserAndDate(userID, day)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		record = &entities.ScreenTime{UserID: userID, Date: day}
	} else if err != nil {
		return nil, err
	}

	if update.TotalTime != nil {
		record.TotalTime = *update.TotalTime
	}
	if update.ProductiveTime != nil {
		record.ProductiveTime = *update.ProductiveTime
	}
	if update.UnproductiveTime != nil {
		record.UnproductiveTime = *update.UnproductiveTime
	}
	if update.TopSites != nil {
		record.TopSites = *update.TopSites
	}
	if update.DeviceData != nil {
		record.DeviceData = *update.DeviceData
	}
	if update.ExtensionData != nil {
		record.ExtensionData = update.ExtensionData
	}

	// The upsert keys on (user, day); clearing the id lets the existing
	// row keep its own.
	record.ID = ""
	return uc.Repo.Upsert(record)
}

// Weekly returns the records within [start, start+6d], ascending by date.
func (uc *ScreenTimeUseCase) Weekly(userID string, start time.Time) ([]entities.ScreenTime, error) {
	if userID == "" {
		return nil, errors.New("user id is required")
	}
	first := Midnight(start)
	last := first.AddDate(0, 0, 6)
	return uc.Repo.GetRange(userID, first, last)
}
