package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Preferences is stored inline on the users table so distracto_id can carry
// a real unique index (sparse: null when the handle was never chosen).
type Preferences struct {
	Goal        string                      `json:"goal,omitempty"`
	Occupation  string                      `json:"occupation,omitempty"`
	College     string                      `json:"college,omitempty"`
	Interests   datatypes.JSONSlice[string] `json:"interests,omitempty"`
	DistractoID *string                     `gorm:"column:distracto_id;uniqueIndex" json:"distractoId,omitempty"`
}

type User struct {
	ID          string                      `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Email       string                      `gorm:"uniqueIndex;not null" json:"email"`
	Password    string                      `gorm:"not null" json:"-"`
	DisplayName string                      `gorm:"not null" json:"displayName"`
	PhotoURL    string                      `json:"photoURL,omitempty"`
	Preferences Preferences                 `gorm:"embedded" json:"preferences"`
	Followers   datatypes.JSONSlice[string] `json:"followers"`
	Following   datatypes.JSONSlice[string] `json:"following"`
	LastActive  time.Time                   `json:"lastActive"`
	CreatedAt   time.Time                   `json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt              `gorm:"index" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if u.Followers == nil {
		u.Followers = datatypes.JSONSlice[string]{}
	}
	if u.Following == nil {
		u.Following = datatypes.JSONSlice[string]{}
	}
	if u.LastActive.IsZero() {
		u.LastActive = time.Now().UTC()
	}
	return nil
}

// IsFollowing reports whether id is in the user's following set.
func (u *User) IsFollowing(id string) bool {
	for _, f := range u.Following {
		if f == id {
			return true
		}
	}
	return false
}
