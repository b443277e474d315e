package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/saransh1220/spoty-backend/internal/domain"
	"github.com/saransh1220/spoty-backend/internal/mocks"
	"github.com/saransh1220/spoty-backend/internal/session"
)

func TestManager_IssueAndValidate(t *testing.T) {
	ctx := context.Background()
	store := new(mocks.MockSessionStore)
	manager := session.NewManager("test-secret", time.Hour, store)

	store.On("Save", ctx, mock.AnythingOfType("string"), domain.RoleArtist, time.Hour).Return(nil)
	store.On("Exists", ctx, mock.AnythingOfType("string")).Return(true, nil)

	token, err := manager.Issue(ctx, domain.Identity{Role: domain.RoleArtist, Name: "Band", Email: "b@example.com"})
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	identity, err := manager.Validate(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, domain.RoleArtist, identity.Role)
	assert.Equal(t, "Band", identity.Name)
	assert.Equal(t, "b@example.com", identity.Email)
}

func TestManager_ValidateRevokedSession(t *testing.T) {
	ctx := context.Background()
	store := new(mocks.MockSessionStore)
	manager := session.NewManager("test-secret", time.Hour, store)

	store.On("Save", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	store.On("Exists", ctx, mock.Anything).Return(false, nil)

	token, err := manager.Issue(ctx, domain.Identity{Role: domain.RoleListener, Name: "Alice"})
	assert.NoError(t, err)

	// A well-formed token whose server-side record is gone is invalid.
	_, err = manager.Validate(ctx, token)
	assert.ErrorIs(t, err, session.ErrInvalidSession)
}

func TestManager_ValidateTamperedToken(t *testing.T) {
	ctx := context.Background()
	store := new(mocks.MockSessionStore)
	manager := session.NewManager("test-secret", time.Hour, store)
	other := session.NewManager("other-secret", time.Hour, store)

	store.On("Save", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	token, err := other.Issue(ctx, domain.Identity{Role: domain.RoleAdmin})
	assert.NoError(t, err)

	_, err = manager.Validate(ctx, token)
	assert.ErrorIs(t, err, session.ErrInvalidSession)
	store.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)

	_, err = manager.Validate(ctx, "not-even-a-token")
	assert.ErrorIs(t, err, session.ErrInvalidSession)
}

func TestManager_Destroy(t *testing.T) {
	ctx := context.Background()
	store := new(mocks.MockSessionStore)
	manager := session.NewManager("test-secret", time.Hour, store)

	store.On("Save", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	store.On("Delete", ctx, mock.AnythingOfType("string")).Return(nil)

	token, err := manager.Issue(ctx, domain.Identity{Role: domain.RoleListener, Name: "Alice"})
	assert.NoError(t, err)

	assert.NoError(t, manager.Destroy(ctx, token))
	store.AssertCalled(t, "Delete", ctx, mock.AnythingOfType("string"))

	// Garbage tokens are treated as already gone.
	assert.NoError(t, manager.Destroy(ctx, "garbage"))
}
