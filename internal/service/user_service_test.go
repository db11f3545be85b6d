package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xalt/xolt-api/internal/auth"
	"github.com/xalt/xolt-api/internal/domain"
	"github.com/xalt/xolt-api/internal/events"
	"github.com/xalt/xolt-api/pkg/util"
)

func TestCreateUserDefaults(t *testing.T) {
	repo := newFakeUserRepo()
	dispatcher := events.NewInMemoryDispatcher()

	var published []events.Event
	dispatcher.Subscribe(events.EventUserCreated, func(_ context.Context, event events.Event) error {
		published = append(published, event)
		return nil
	})

	svc := NewUserService(testConfig(), repo, dispatcher)

	user, err := svc.Create(context.Background(), CreateUserInput{
		Name:     "Jo Client",
		Email:    "jo@b.com",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.UserTypeUser, user.UserType)
	assert.Equal(t, []string{"user"}, user.Roles)
	assert.Regexp(t, `^USR\d{3}[0-9A-F]{3}$`, user.ReadableID)
	assert.NoError(t, auth.ComparePassword(user.PasswordHash, "password123"))
	assert.NotEqual(t, "password123", user.PasswordHash)

	require.Len(t, published, 1)
	assert.Equal(t, user.ID, published[0].UserID)
	assert.Equal(t, "jo@b.com", published[0].Email)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "jo@b.com", "password123", []string{"user"})

	svc := NewUserService(testConfig(), repo, events.NewInMemoryDispatcher())

	_, err := svc.Create(context.Background(), CreateUserInput{
		Name:     "Jo Again",
		Email:    "jo@b.com",
		Password: "password123",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, util.ToDomainError(err).HTTPStatus)
}

func TestUpdateUserPartial(t *testing.T) {
	repo := newFakeUserRepo()
	seeded := seedUser(t, repo, "jo@b.com", "password123", []string{"user"})

	svc := NewUserService(testConfig(), repo, events.NewInMemoryDispatcher())

	name := "Renamed"
	city := "Pune"
	updated, err := svc.Update(context.Background(), seeded.ID, UpdateUserInput{
		Name: &name,
		City: &city,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "Pune", updated.City)
	assert.Equal(t, seeded.Email, updated.Email)
	assert.Equal(t, seeded.Roles, updated.Roles)
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	seeded := seedUser(t, repo, "jo@b.com", "password123", []string{"user"})

	svc := NewUserService(testConfig(), repo, events.NewInMemoryDispatcher())

	password := "brand-new-pass"
	updated, err := svc.Update(context.Background(), seeded.ID, UpdateUserInput{Password: &password})
	require.NoError(t, err)
	assert.NoError(t, auth.ComparePassword(updated.PasswordHash, "brand-new-pass"))
	assert.Error(t, auth.ComparePassword(updated.PasswordHash, "password123"))
}

func TestGetUnknownUser(t *testing.T) {
	svc := NewUserService(testConfig(), newFakeUserRepo(), events.NewInMemoryDispatcher())

	_, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, util.ToDomainError(err).HTTPStatus)
}

func TestBootstrapAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(testConfig(), repo, events.NewInMemoryDispatcher())

	admin, err := svc.BootstrapAdmin(context.Background(), "Root", "root@b.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, domain.UserTypeSuperAdmin, admin.UserType)
	assert.Equal(t, []string{domain.RoleSuperAdmin}, admin.Roles)
	assert.Regexp(t, `^SUP\d{3}[0-9A-F]{3}$`, admin.ReadableID)

	// refused once any account exists
	_, err = svc.BootstrapAdmin(context.Background(), "Root2", "root2@b.com", "password123")
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, util.ToDomainError(err).HTTPStatus)
}
