package auth

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/xalt/xolt-api/pkg/util"
)

// DenyReason classifies a guard denial.
type DenyReason string

const (
	DenyUnauthenticated DenyReason = "unauthenticated"
	DenyMissingRole     DenyReason = "forbidden-role"
)

const unauthenticatedMessage = "Authorization token required. Please provide a valid token in the 'Authorization' header."

// Decision is the discriminated outcome of a guard check. Callers branch
// on Allowed instead of relying on control-flow narrowing.
type Decision struct {
	Allowed  bool
	Identity *Identity
	Reason   DenyReason
	Role     string
}

// Reject maps a denied decision to the structured error the HTTP layer
// renders. Calling it on an allowed decision is a programming error and
// yields an internal error.
func (d Decision) Reject() error {
	switch d.Reason {
	case DenyUnauthenticated:
		return util.NewUnauthorized(unauthenticatedMessage)
	case DenyMissingRole:
		return util.NewForbidden(fmt.Sprintf("You do not have permission to access this resource. Required role: %s", d.Role))
	default:
		return util.NewInternalError(fmt.Errorf("reject called on allowed decision"))
	}
}

// CheckAuthenticated allows any bound identity.
func CheckAuthenticated(c *fiber.Ctx) Decision {
	identity := CurrentIdentity(c)
	if identity == nil {
		return Decision{Reason: DenyUnauthenticated}
	}
	return Decision{Allowed: true, Identity: identity}
}

// CheckRole allows a bound identity carrying the given role. An unbound
// identity denies as unauthenticated, not forbidden.
func CheckRole(c *fiber.Ctx, role string) Decision {
	decision := CheckAuthenticated(c)
	if !decision.Allowed {
		return decision
	}
	if !decision.Identity.HasRole(role) {
		return Decision{Reason: DenyMissingRole, Role: role}
	}
	return decision
}

// RequireAuthenticated halts unauthenticated requests with a 401.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if decision := CheckAuthenticated(c); !decision.Allowed {
			return decision.Reject()
		}
		return c.Next()
	}
}

// RequireRole halts requests whose identity lacks the role with a 403.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if decision := CheckRole(c, role); !decision.Allowed {
			return decision.Reject()
		}
		return c.Next()
	}
}
