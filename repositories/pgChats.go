package repositories

import (
	"fmt"

	"distracto-server/db"
	"distracto-server/entities"

	"gorm.io/gorm"
)

type chatPgRepository struct {
	db db.Database
}

func NewChatPgRepository(database db.Database) ChatRepository {
	return &chatPgRepository{db: database}
}

func (r *chatPgRepository) Create(chat *entities.Chat) error {
	return r.db.GetDB().Create(chat).Error
}

func (r *chatPgRepository) GetByID(id string) (*entities.Chat, error) {
	var chat entities.Chat
	err := r.db.GetDB().Where("id = ?", id).First(&chat).Error
	if err != nil {
		return nil, err
	}
	return &chat, nil
}

func (r *chatPgRepository) GetByParticipant(userID string) ([]entities.Chat, error) {
	chats := []entities.Chat{}
	err := withParticipant(r.db.GetDB(), userID).
		Order("updated_at DESC").
		Find(&chats).Error
	return chats, err
}

func (r *chatPgRepository) FindDirect(userA, userB string) (*entities.Chat, error) {
	var chat entities.Chat
	query := r.db.GetDB().Where("is_group_chat = ?", false)
	query = withParticipant(query, userA)
	query = withParticipant(query, userB)

	switch r.db.GetDB().Dialector.Name() {
	case "postgres":
		query = query.Where("jsonb_array_length(participants::jsonb) = 2")
	default:
		query = query.Where("json_array_length(participants) = 2")
	}

	err := query.First(&chat).Error
	if err != nil {
		return nil, err
	}
	return &chat, nil
}

func (r *chatPgRepository) Update(chat *entities.Chat) error {
	return r.db.GetDB().Save(chat).Error
}

// withParticipant filters on membership in the participants json array. The
// SQL differs per dialect (jsonb containment on postgres, json_each on the
// sqlite used in tests).
func withParticipant(query *gorm.DB, userID string) *gorm.DB {
	switch query.Dialector.Name() {
	case "postgres":
		return query.Where("participants::jsonb @> ?", fmt.Sprintf(`[%q]`, userID))
	default:
		return query.Where("EXISTS (SELECT 1 FROM json_each(chats.participants) WHERE json_each.value = ?)", userID)
	}
}
