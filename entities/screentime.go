package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SiteUsage is one site's share of a day, minutes-denominated.
type SiteUsage struct {
	URL      string  `json:"url"`
	Minutes  float64 `json:"minutes"`
	Category string  `json:"category"`
}

type DeviceUsage struct {
	DeviceName string      `json:"deviceName"`
	TimeSpent  float64     `json:"timeSpent"`
	Apps       []SiteUsage `json:"apps,omitempty"`
}

// ScreenTime holds one record per (user, day); the composite unique index is
// what makes the PUT path an upsert rather than an insert.
type ScreenTime struct {
	ID               string                            `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID           string                            `gorm:"type:varchar(36);not null;uniqueIndex:idx_screen_times_user_date" json:"userId"`
	Date             time.Time                         `gorm:"not null;uniqueIndex:idx_screen_times_user_date" json:"date"`
	TotalTime        float64                           `json:"totalTime"`
	ProductiveTime   float64                           `json:"productiveTime"`
	UnproductiveTime float64                           `json:"unproductiveTime"`
	TopSites         datatypes.JSONSlice[SiteUsage]    `json:"topSites"`
	DeviceData       datatypes.JSONSlice[DeviceUsage]  `json:"deviceData"`
	ExtensionData    datatypes.JSON                    `json:"extensionData,omitempty"`
	CreatedAt        time.Time                         `json:"createdAt"`
	UpdatedAt        time.Time                         `json:"updatedAt"`
}

func (s *ScreenTime) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.TopSites == nil {
		s.TopSites = datatypes.JSONSlice[SiteUsage]{}
	}
	if s.DeviceData == nil {
		s.DeviceData = datatypes.JSONSlice[DeviceUsage]{}
	}
	return nil
}
