package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const identityKey = "auth_identity"

// Middleware binds the request identity from a bearer token. It never
// rejects a request itself; an absent or invalid token simply leaves the
// identity unbound for the guards to judge.
type Middleware struct {
	tokens   *TokenManager
	resolver *Resolver
	logger   *zap.Logger
}

// NewMiddleware constructs the binder middleware.
func NewMiddleware(tokens *TokenManager, resolver *Resolver, logger *zap.Logger) *Middleware {
	return &Middleware{tokens: tokens, resolver: resolver, logger: logger}
}

// Bind runs once per request, before any guard.
func (m *Middleware) Bind(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return c.Next()
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return c.Next()
	}

	claims, err := m.tokens.Verify(parts[1])
	if err != nil {
		m.logger.Debug("token verification failed", zap.Error(err))
		return c.Next()
	}

	identity, err := m.resolver.Resolve(c.Context(), claims.Subject)
	if err != nil {
		m.logger.Warn("identity resolution failed", zap.String("subject", claims.Subject), zap.Error(err))
		return c.Next()
	}
	if identity != nil {
		c.Locals(identityKey, identity)
	}
	return c.Next()
}

// CurrentIdentity returns the bound identity, or nil when the request is
// unauthenticated.
func CurrentIdentity(c *fiber.Ctx) *Identity {
	val := c.Locals(identityKey)
	if val == nil {
		return nil
	}
	identity, ok := val.(*Identity)
	if !ok {
		return nil
	}
	return identity
}
