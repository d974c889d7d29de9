package usecases

import (
	"testing"

	"distracto-server/entities"
	"distracto-server/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSocialUseCase(t *testing.T) (*SocialUseCase, *entities.User, *entities.User, *entities.User) {
	t.Helper()
	database := newTestDatabase(t)
	uc := NewSocialUseCase(
		repositories.NewChatPgRepository(database),
		repositories.NewUserPgRepository(database),
	)
	ana := createTestUser(t, database, "ana@example.com", "Ana")
	ben := createTestUser(t, database, "ben@example.com", "Ben")
	eve := createTestUser(t, database, "eve@example.com", "Eve")
	return uc, ana, ben, eve
}

func TestCreateChatDeduplicatesDirect(t *testing.T) {
	uc, ana, ben, _ := newSocialUseCase(t)

	first, err := uc.CreateChat(ana.ID, []string{ben.ID}, false, "")
	require.NoError(t, err)

	// Same pair from the other side resolves to the same chat.
	second, err := uc.CreateChat(ben.ID, []string{ana.ID}, false, "")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestCreateGroupChatRequiresName(t *testing.T) {
	uc, ana, ben, eve := newSocialUseCase(t)

	_, err := uc.CreateChat(ana.ID, []string{ben.ID, eve.ID}, true, "  ")
	assert.Error(t, err)

	chat, err := uc.CreateChat(ana.ID, []string{ben.ID, eve.ID}, true, "Study group")
	require.NoError(t, err)
	assert.True(t, chat.IsGroupChat)
	assert.Len(t, chat.Participants, 3)
}

func TestSendMessageUpdatesChatState(t *testing.T) {
	uc, ana, ben, eve := newSocialUseCase(t)

	chat, err := uc.CreateChat(ana.ID, []string{ben.ID, eve.ID}, true, "Study group")
	require.NoError(t, err)

	msg, recipients, err := uc.SendMessage(ana.ID, chat.ID, "hello everyone")
	require.NoError(t, err)
	assert.NotEmpty(t, msg.ID)
	assert.ElementsMatch(t, []string{ben.ID, eve.ID}, recipients)

	stored, err := uc.Chats.GetByID(chat.ID)
	require.NoError(t, err)
	require.Len(t, stored.Messages, 1)
	assert.Equal(t, "hello everyone", stored.Messages[0].Content)

	last := stored.LastMessage.Data()
	require.NotNil(t, last)
	assert.Equal(t, msg.ID, last.ID)

	counts := stored.UnreadCount.Data()
	assert.Equal(t, 1, counts[ben.ID])
	assert.Equal(t, 1, counts[eve.ID])
	assert.Zero(t, counts[ana.ID])
}

func TestSendMessageNonParticipantRejectedWithoutMutation(t *testing.T) {
	uc, ana, ben, eve := newSocialUseCase(t)

	chat, err := uc.CreateChat(ana.ID, []string{ben.ID}, false, "")
	require.NoError(t, err)

	_, _, err = uc.SendMessage(eve.ID, chat.ID, "let me in")
	assert.ErrorIs(t, err, ErrNotParticipant)

	stored, err := uc.Chats.GetByID(chat.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Messages)
	assert.Nil(t, stored.LastMessage.Data())
}

func TestSendMessageUnknownChat(t *testing.T) {
	uc, ana, _, _ := newSocialUseCase(t)

	_, _, err := uc.SendMessage(ana.ID, "missing-chat", "hello")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMarkReadZeroesCallerOnly(t *testing.T) {
	uc, ana, ben, _ := newSocialUseCase(t)

	chat, err := uc.CreateChat(ana.ID, []string{ben.ID}, false, "")
	require.NoError(t, err)

	_, _, err = uc.SendMessage(ana.ID, chat.ID, "first")
	require.NoError(t, err)
	_, _, err = uc.SendMessage(ben.ID, chat.ID, "second")
	require.NoError(t, err)

	updated, err := uc.MarkRead(ana.ID, chat.ID)
	require.NoError(t, err)

	counts := updated.UnreadCount.Data()
	assert.Zero(t, counts[ana.ID])
	assert.Equal(t, 1, counts[ben.ID])
}

func TestListChatsOnlyParticipants(t *testing.T) {
	uc, ana, ben, eve := newSocialUseCase(t)

	_, err := uc.CreateChat(ana.ID, []string{ben.ID}, false, "")
	require.NoError(t, err)
	_, err = uc.CreateChat(ben.ID, []string{eve.ID}, false, "")
	require.NoError(t, err)

	anaChats, err := uc.ListChats(ana.ID)
	require.NoError(t, err)
	assert.Len(t, anaChats, 1)

	benChats, err := uc.ListChats(ben.ID)
	require.NoError(t, err)
	assert.Len(t, benChats, 2)
}
