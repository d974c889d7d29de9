package repositories

import (
	"time"

	"distracto-server/entities"
)

type UserRepository interface {
	Create(user *entities.User) error
	GetByID(id string) (*entities.User, error)
	GetByEmail(email string) (*entities.User, error)
	GetByIDs(ids []string) ([]entities.User, error)
	CountByEmail(email string) (int64, error)
	Search(q, excludeID string, distractoOnly bool, limit int) ([]entities.User, error)
	Update(user *entities.User) error
	// Follow and Unfollow mutate both sides of the relationship inside a
	// single transaction.
	Follow(followerID, targetID string) error
	Unfollow(followerID, targetID string) error
}

type ScreenTimeRepository interface {
	GetByUserAndDate(userID string, date time.Time) (*entities.ScreenTime, error)
	// Upsert creates or replaces the (user, date) record and returns the
	// stored row.
	Upsert(record *entities.ScreenTime) (*entities.ScreenTime, error)
	GetRange(userID string, start, end time.Time) ([]entities.ScreenTime, error)
}

type BlockedSiteRepository interface {
	Create(site *entities.BlockedSite) error
	GetByUserID(userID string) ([]entities.BlockedSite, error)
	GetOwned(id, userID string) (*entities.BlockedSite, error)
	Update(site *entities.BlockedSite) error
	DeleteOwned(id, userID string) error
}

type TimetableRepository interface {
	Create(timetable *entities.Timetable) error
	GetByUserID(userID string, date *time.Time, limit int) ([]entities.Timetable, error)
	GetOwned(id, userID string) (*entities.Timetable, error)
	Update(timetable *entities.Timetable) error
	DeleteOwned(id, userID string) error
}

type ChatRepository interface {
	Create(chat *entities.Chat) error
	GetByID(id string) (*entities.Chat, error)
	GetByParticipant(userID string) ([]entities.Chat, error)
	// FindDirect looks up an existing two-party non-group chat for the pair.
	FindDirect(userA, userB string) (*entities.Chat, error)
	Update(chat *entities.Chat) error
}
