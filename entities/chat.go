package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Message struct {
	ID        string    `json:"id"`
	SenderID  string    `json:"senderId"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	IsRead    bool      `json:"isRead"`
}

// Chat stores the whole conversation as one document-shaped row. The
// participant set is fixed at creation; unread counts are tracked per
// participant id.
type Chat struct {
	ID           string                              `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Participants datatypes.JSONSlice[string]         `gorm:"not null" json:"participants"`
	IsGroupChat  bool                                `json:"isGroupChat"`
	GroupName    string                              `json:"groupName,omitempty"`
	Messages     datatypes.JSONSlice[Message]        `json:"messages"`
	LastMessage  datatypes.JSONType[*Message]        `json:"lastMessage"`
	UnreadCount  datatypes.JSONType[map[string]int]  `json:"unreadCount"`
	CreatedAt    time.Time                           `json:"createdAt"`
	UpdatedAt    time.Time                           `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt                      `gorm:"index" json:"-"`
}

func (c *Chat) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Messages == nil {
		c.Messages = datatypes.JSONSlice[Message]{}
	}
	if c.UnreadCount.Data() == nil {
		c.UnreadCount = datatypes.NewJSONType(map[string]int{})
	}
	return nil
}

// HasParticipant reports whether id belongs to the chat's participant set.
func (c *Chat) HasParticipant(id string) bool {
	for _, p := range c.Participants {
		if p == id {
			return true
		}
	}
	return false
}

// AppendMessage adds a message, refreshes lastMessage and bumps the unread
// count of every participant except the sender.
func (c *Chat) AppendMessage(msg Message) {
	c.Messages = append(c.Messages, msg)
	c.LastMessage = datatypes.NewJSONType(&msg)

	counts := c.UnreadCount.Data()
	if counts == nil {
		counts = map[string]int{}
	}
	for _, p := range c.Participants {
		if p != msg.SenderID {
			counts[p]++
		}
	}
	c.UnreadCount = datatypes.NewJSONType(counts)
}
