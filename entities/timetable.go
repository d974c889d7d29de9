package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Task struct {
	Time        string `json:"time"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

type Timetable struct {
	ID              string                      `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID          string                      `gorm:"type:varchar(36);index;not null" json:"userId"`
	Date            time.Time                   `json:"date"`
	Title           string                      `json:"title,omitempty"`
	Prompt          string                      `json:"prompt,omitempty"`
	Tasks           datatypes.JSONSlice[Task]   `json:"tasks"`
	Recommendations datatypes.JSONSlice[string] `json:"recommendations"`
	AIModel         string                      `gorm:"column:ai_model" json:"aiModel"`
	CreatedAt       time.Time                   `json:"createdAt"`
	UpdatedAt       time.Time                   `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt              `gorm:"index" json:"-"`
}

func (t *Timetable) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.AIModel == "" {
		t.AIModel = "gemini-1.5-flash"
	}
	if t.Tasks == nil {
		t.Tasks = datatypes.JSONSlice[Task]{}
	}
	if t.Recommendations == nil {
		t.Recommendations = datatypes.JSONSlice[string]{}
	}
	return nil
}
