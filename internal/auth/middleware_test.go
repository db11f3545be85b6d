package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xalt/xolt-api/internal/domain"
	"github.com/xalt/xolt-api/internal/repository"
)

type fakeLookup struct {
	users map[string]*domain.User
}

func (f *fakeLookup) GetByID(_ context.Context, id string) (*domain.User, error) {
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, repository.ErrNotFound
}

func newBinderApp(tm *TokenManager, lookup UserLookup) (*fiber.App, **Identity) {
	mw := NewMiddleware(tm, NewResolver(lookup), zap.NewNop())

	var bound *Identity
	app := fiber.New()
	app.Use(mw.Bind)
	app.Get("/whoami", func(c *fiber.Ctx) error {
		bound = CurrentIdentity(c)
		return c.SendStatus(http.StatusOK)
	})
	return app, &bound
}

func TestBindWithoutHeaderContinuesUnauthenticated(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	app, bound := newBinderApp(tm, &fakeLookup{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/whoami", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, *bound)
}

func TestBindWithMalformedHeaderContinuesUnauthenticated(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	app, bound := newBinderApp(tm, &fakeLookup{})

	for _, header := range []string{"Token abc", "Bearer", "garbage"} {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", header)

		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode, "header %q", header)
		assert.Nil(t, *bound, "header %q", header)
	}
}

func TestBindWithExpiredTokenContinuesUnauthenticated(t *testing.T) {
	expired := &TokenManager{secret: []byte("test-secret"), ttl: -time.Minute}
	token, _, err := expired.Issue("abc123", []string{"user"})
	require.NoError(t, err)

	tm := NewTokenManager("test-secret", time.Hour)
	app, bound := newBinderApp(tm, &fakeLookup{})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, *bound)
}

func TestBindWithDeletedAccountContinuesUnauthenticated(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	token, _, err := tm.Issue("ghost", []string{"user"})
	require.NoError(t, err)

	app, bound := newBinderApp(tm, &fakeLookup{})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, *bound)
}

func TestBindResolvesFreshIdentity(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	token, _, err := tm.Issue("abc123", []string{"user"})
	require.NoError(t, err)

	// The account was promoted after the token was issued; the bound
	// identity must reflect current roles, not the token snapshot.
	lookup := &fakeLookup{users: map[string]*domain.User{
		"abc123": {ID: "abc123", Email: "a@b.com", Roles: []string{"user", "superAdmin"}},
	}}
	app, bound := newBinderApp(tm, lookup)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, *bound)
	assert.Equal(t, "abc123", (*bound).ID)
	assert.Equal(t, "a@b.com", (*bound).Email)
	assert.Equal(t, []string{"user", "superAdmin"}, (*bound).Roles)
}

func TestResolverCollapsesMissingAccountToNil(t *testing.T) {
	resolver := NewResolver(&fakeLookup{})

	identity, err := resolver.Resolve(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, identity)
}
