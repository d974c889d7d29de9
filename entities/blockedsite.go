package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BlockTypeAlways    = "always"
	BlockTypeScheduled = "scheduled"
)

type BlockedSite struct {
	ID            string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID        string         `gorm:"type:varchar(36);index;not null" json:"userId"`
	URL           string         `gorm:"not null" json:"url"`
	IsActive      bool           `gorm:"default:true" json:"isActive"`
	BlockType     string         `gorm:"type:varchar(16)" json:"blockType"` // always | scheduled
	ScheduleStart string         `json:"scheduleStart,omitempty"`
	ScheduleEnd   string         `json:"scheduleEnd,omitempty"`
	BlockedCount  int            `json:"blockedCount"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (b *BlockedSite) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	if b.BlockType == "" {
		b.BlockType = BlockTypeAlways
	}
	return nil
}
