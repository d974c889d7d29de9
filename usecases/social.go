package usecases

import (
	"errors"
	"strings"
	"time"

	"distracto-server/entities"
	"distracto-server/repositories"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SocialUseCase struct {
	Chats repositories.ChatRepository
	Users repositories.UserRepository
}

func NewSocialUseCase(chats repositories.ChatRepository, users repositories.UserRepository) *SocialUseCase {
	return &SocialUseCase{Chats: chats, Users: users}
}

func (uc *SocialUseCase) ListChats(userID string) ([]entities.Chat, error) {
	return uc.Chats.GetByParticipant(userID)
}

// CreateChat starts a chat owned by no one; the participant set is fixed
// here. A direct chat between the same two users is deduplicated.
func (uc *SocialUseCase) CreateChat(userID string, participantIDs []string, isGroup bool, groupName string) (*entities.Chat, error) {
	if len(participantIDs) == 0 {
		return nil, errors.New("at least one participant is required")
	}
	if isGroup && strings.TrimSpace(groupName) == "" {
		return nil, errors.New("group name is required")
	}

	participants := append([]string{userID}, participantIDs...)

	if !isGroup && len(participantIDs) == 1 {
		existing, err := uc.Chats.FindDirect(userID, participantIDs[0])
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	chat := &entities.Chat{
		Participants: datatypes.JSONSlice[string](participants),
		IsGroupChat:  isGroup,
		GroupName:    strings.TrimSpace(groupName),
	}
	if err := uc.Chats.Create(chat); err != nil {
		return nil, err
	}
	return chat, nil
}

// SendMessage appends a message to the chat and returns the message plus the
// recipient ids so the caller can push real-time notifications. A sender
// outside the participant set gets ErrNotParticipant and the chat is left
// untouched.
func (uc *SocialUseCase) SendMessage(userID, chatID, content string) (*entities.Message, []string, error) {
	if strings.TrimSpace(content) == "" {
		return nil, nil, errors.New("message content is required")
	}

	chat, err := uc.Chats.GetByID(chatID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, err
	}
	if !chat.HasParticipant(userID) {
		return nil, nil, ErrNotParticipant
	}

	msg := entities.Message{
		ID:        uuid.New().String(),
		SenderID:  userID,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
	chat.AppendMessage(msg)

	if err := uc.Chats.Update(chat); err != nil {
		return nil, nil, err
	}

	recipients := make([]string, 0, len(chat.Participants)-1)
	for _, p := range chat.Participants {
		if p != userID {
			recipients = append(recipients, p)
		}
	}
	return &msg, recipients, nil
}

// MarkRead zeroes the caller's unread count on the chat.
func (uc *SocialUseCase) MarkRead(userID, chatID string) (*entities.Chat, error) {
	chat, err := uc.Chats.GetByID(chatID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !chat.HasParticipant(userID) {
		return nil, ErrNotParticipant
	}

	counts := chat.UnreadCount.Data()
	if counts == nil {
		counts = map[string]int{}
	}
	counts[userID] = 0
	chat.UnreadCount = datatypes.NewJSONType(counts)

	if err := uc.Chats.Update(chat); err != nil {
		return nil, err
	}
	return chat, nil
}

func (uc *SocialUseCase) Followers(userID string) ([]entities.User, error) {
	user, err := uc.Users.GetByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return uc.Users.GetByIDs(user.Followers)
}

func (uc *SocialUseCase) Following(userID string) ([]entities.User, error) {
	user, err := uc.Users.GetByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return uc.Users.GetByIDs(user.Following)
}
