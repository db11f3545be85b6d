package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xalt/xolt-api/internal/domain"
	"github.com/xalt/xolt-api/pkg/util"
)

// newGuardApp wires an app with an error handler matching the API's
// response envelope so denial bodies can be asserted end to end.
func newGuardApp(identity *Identity) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := util.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{
				"success": false,
				"message": domainErr.Message,
				"error":   domainErr.Label(),
			})
		},
	})
	app.Use(func(c *fiber.Ctx) error {
		if identity != nil {
			c.Locals(identityKey, identity)
		}
		return c.Next()
	})
	app.Get("/me", RequireAuthenticated(), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})
	app.Get("/admin", RequireRole(domain.RoleSuperAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})
	return app
}

func decodeEnvelope(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestRequireAuthenticatedWithoutIdentity(t *testing.T) {
	app := newGuardApp(nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/me", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decodeEnvelope(t, resp)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Unauthorized", body["error"])
	assert.Contains(t, body["message"], "Authorization token required")
}

func TestRequireAuthenticatedWithIdentity(t *testing.T) {
	app := newGuardApp(&Identity{ID: "abc123", Email: "a@b.com", Roles: []string{"user"}})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/me", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRoleDeniesMissingRole(t *testing.T) {
	app := newGuardApp(&Identity{ID: "abc123", Email: "a@b.com", Roles: []string{"user"}})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body := decodeEnvelope(t, resp)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Forbidden", body["error"])
	assert.Contains(t, body["message"], "superAdmin")
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	app := newGuardApp(&Identity{ID: "abc123", Email: "a@b.com", Roles: []string{"superAdmin"}})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRoleWithoutIdentityDeniesUnauthenticated(t *testing.T) {
	app := newGuardApp(nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCheckDecisions(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		decision := CheckAuthenticated(c)
		assert.False(t, decision.Allowed)
		assert.Equal(t, DenyUnauthenticated, decision.Reason)

		c.Locals(identityKey, &Identity{ID: "abc123", Roles: []string{"user"}})

		decision = CheckAuthenticated(c)
		assert.True(t, decision.Allowed)
		require.NotNil(t, decision.Identity)
		assert.Equal(t, "abc123", decision.Identity.ID)

		decision = CheckRole(c, "superAdmin")
		assert.False(t, decision.Allowed)
		assert.Equal(t, DenyMissingRole, decision.Reason)
		assert.Equal(t, "superAdmin", decision.Role)

		domainErr := util.ToDomainError(decision.Reject())
		assert.Equal(t, http.StatusForbidden, domainErr.HTTPStatus)

		return c.SendStatus(http.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Full issuance-to-denial flow: issue for a plain user, bind, then hit a
// superAdmin-gated route.
func TestIssuedTokenBoundIdentityRoleDenial(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	token, _, err := tm.Issue("abc123", []string{"user"})
	require.NoError(t, err)

	lookup := &fakeLookup{users: map[string]*domain.User{
		"abc123": {ID: "abc123", Email: "a@b.com", Roles: []string{"user"}},
	}}
	mw := NewMiddleware(tm, NewResolver(lookup), zap.NewNop())

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := util.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{
				"success": false,
				"message": domainErr.Message,
				"error":   domainErr.Label(),
			})
		},
	})
	app.Use(mw.Bind)
	app.Get("/admin", RequireRole(domain.RoleSuperAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body := decodeEnvelope(t, resp)
	assert.Contains(t, body["message"], "superAdmin")
}
