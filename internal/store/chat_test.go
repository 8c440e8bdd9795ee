package store

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChat_CreateSession(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	id, err := store.CreateChatSession(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	sessions, err := store.ListChatSessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, id, sessions[0].ID)
	assert.Empty(t, sessions[0].Title)
	assert.False(t, sessions[0].CreatedAt.IsZero())
	assert.Equal(t, sessions[0].CreatedAt, sessions[0].LastModifiedAt)
}

func TestChat_AppendMessageAndList(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	id, err := store.CreateChatSession(ctx)
	require.NoError(t, err)

	require.NoError(t, store.AppendChatMessage(ctx, id, SenderUser, "Hello"))
	require.NoError(t, store.AppendChatMessage(ctx, id, SenderAssistant, "Hi! How was your day?"))
	require.NoError(t, store.AppendChatMessage(ctx, id, SenderUser, "Pretty good."))

	messages, err := store.ListMessages(ctx, id)
	require.NoError(t, err)
	require.Len(t, messages, 3)

	// Chronological order, insertion order breaking ties
	assert.Equal(t, "Hello", messages[0].Content)
	assert.Equal(t, "Hi! How was your day?", messages[1].Content)
	assert.Equal(t, "Pretty good.", messages[2].Content)
	assert.Equal(t, SenderUser, messages[0].Sender)
	assert.Equal(t, SenderAssistant, messages[1].Sender)
	assert.True(t, messages[0].ID < messages[1].ID)
}

func TestChat_AppendValidation(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	id, err := store.CreateChatSession(ctx)
	require.NoError(t, err)

	assert.ErrorIs(t, store.AppendChatMessage(ctx, id, "system", "nope"), ErrInvalidSender)
	assert.ErrorIs(t, store.AppendChatMessage(ctx, id, SenderUser, ""), ErrEmptyContent)
	assert.ErrorIs(t, store.AppendChatMessage(ctx, "no-such-session", SenderUser, "hi"), ErrSessionNotFound)
}

func TestChat_TitleFromShortFirstUserMessage(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	id, err := store.CreateChatSession(ctx)
	require.NoError(t, err)

	require.NoError(t, store.AppendChatMessage(ctx, id, SenderUser, "How do I sleep better?"))

	sessions, err := store.ListChatSessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "How do I sleep better?", sessions[0].Title)
}

func TestChat_TitleTruncatedAtFiftyRunes(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	id, err := store.CreateChatSession(ctx)
	require.NoError(t, err)

	long := strings.Repeat("ab", 85) // 170 runes
	require.NoError(t, store.AppendChatMessage(ctx, id, SenderUser, long))

	sessions, err := store.ListChatSessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, string([]rune(long)[:50])+"...", sessions[0].Title)
	assert.Len(t, []rune(sessions[0].Title), 53)
}

func TestChat_TitleCountsRunesNotBytes(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	id, err := store.CreateChatSession(ctx)
	require.NoError(t, err)

	// 40 multi-byte runes: under the limit, stored verbatim
	msg := strings.Repeat("日", 40)
	require.NoError(t, store.AppendChatMessage(ctx, id, SenderUser, msg))

	sessions, err := store.ListChatSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, msg, sessions[0].Title)
}

func TestChat_TitleNeverOverwritten(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	id, err := store.CreateChatSession(ctx)
	require.NoError(t, err)

	require.NoError(t, store.AppendChatMessage(ctx, id, SenderUser, "first message"))
	require.NoError(t, store.AppendChatMessage(ctx, id, SenderAssistant, "a reply"))
	require.NoError(t, store.AppendChatMessage(ctx, id, SenderUser, "a completely different topic"))

	sessions, err := store.ListChatSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, "first message", sessions[0].Title)
}

func TestChat_AssistantMessageSetsNoTitle(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	id, err := store.CreateChatSession(ctx)
	require.NoError(t, err)

	require.NoError(t, store.AppendChatMessage(ctx, id, SenderAssistant, "Welcome back!"))

	sessions, err := store.ListChatSessions(ctx)
	require.NoError(t, err)
	assert.Empty(t, sessions[0].Title)

	// The next user message still claims the title
	require.NoError(t, store.AppendChatMessage(ctx, id, SenderUser, "hello there"))
	sessions, err = store.ListChatSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, "hello there", sessions[0].Title)
}

func TestChat_DeleteSessionCascades(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	sessionA, err := store.CreateChatSession(ctx)
	require.NoError(t, err)
	sessionB, err := store.CreateChatSession(ctx)
	require.NoError(t, err)

	require.NoError(t, store.AppendChatMessage(ctx, sessionA, SenderUser, "a1"))
	require.NoError(t, store.AppendChatMessage(ctx, sessionA, SenderAssistant, "a2"))
	require.NoError(t, store.AppendChatMessage(ctx, sessionB, SenderUser, "b1"))

	require.NoError(t, store.DeleteChatSession(ctx, sessionA))

	messagesA, err := store.ListMessages(ctx, sessionA)
	require.NoError(t, err)
	assert.Empty(t, messagesA)

	messagesB, err := store.ListMessages(ctx, sessionB)
	require.NoError(t, err)
	require.Len(t, messagesB, 1)
	assert.Equal(t, "b1", messagesB[0].Content)

	sessions, err := store.ListChatSessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, sessionB, sessions[0].ID)
}

func TestChat_DeleteUnknownSessionIsNoop(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.DeleteChatSession(ctx, "no-such-id"))
}

func TestChat_SessionsOrderedByLastModified(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	first, err := store.CreateChatSession(ctx)
	require.NoError(t, err)
	second, err := store.CreateChatSession(ctx)
	require.NoError(t, err)

	// Touch the first session so it becomes the most recently modified.
	// Timestamps have second resolution, so force a distinct value.
	_, err = store.db.Exec(
		"UPDATE chat_sessions SET last_modified_at = ? WHERE id = ?",
		"2099-01-01T00:00:00Z", first)
	require.NoError(t, err)

	sessions, err := store.ListChatSessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, first, sessions[0].ID)
	assert.Equal(t, second, sessions[1].ID)
}

func TestChat_ListMessagesUnknownSessionIsEmpty(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	messages, err := store.ListMessages(ctx, "no-such-id")
	require.NoError(t, err)
	assert.Empty(t, messages)
}
