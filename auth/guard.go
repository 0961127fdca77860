// auth/guard.go
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"

	"go.uber.org/zap"

	stylino_errors "github.com/stylino/storefront/errors"
	logger "github.com/stylino/storefront/logging"
	"github.com/stylino/storefront/model"
)

// Localized denial messages returned in the {"error": ...} body.
const (
	MessageUnauthenticated = "احراز هویت انجام نشده است"
	MessageBlocked         = "حساب کاربری شما مسدود شده است"
	MessageForbidden       = "دسترسی غیرمجاز است"
)

// Session is the identity attached to a request by the session provider.
type Session struct {
	Token     string
	SubjectID string
}

// Principal is the authorization view of a user.
type Principal struct {
	ID        string     `json:"id"`
	Role      model.Role `json:"role"`
	IsBlocked bool       `json:"is_blocked"`
}

// SessionResolver returns the request's session, or nil when there is none.
type SessionResolver interface {
	ResolveSession(ctx context.Context, r *http.Request) (*Session, error)
}

// PrincipalStore loads a principal by subject id. A missing record is
// reported as errors.ErrUserNotFound.
type PrincipalStore interface {
	FindPrincipal(ctx context.Context, subjectID string) (*Principal, error)
}

type Outcome int

const (
	Authorized Outcome = iota
	Unauthenticated
	Blocked
	Forbidden
)

func (o Outcome) String() string {
	switch o {
	case Authorized:
		return "authorized"
	case Unauthenticated:
		return "unauthenticated"
	case Blocked:
		return "blocked"
	case Forbidden:
		return "forbidden"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

type ErrorBody struct {
	Error string `json:"error"`
}

// Denial is a complete HTTP response for a refused request.
type Denial struct {
	Status int
	Body   ErrorBody
}

// Decision is the result of Authorize. Principal is set only when Outcome
// is Authorized, Denial only when it is not.
type Decision struct {
	Outcome   Outcome
	Principal *Principal
	Denial    *Denial
}

func (d Decision) OK() bool {
	return d.Outcome == Authorized
}

var (
	adminRoles     = []model.Role{model.RoleAdmin}
	affiliateRoles = []model.Role{model.RoleAffiliate, model.RoleAdmin}
	customerRoles  = []model.Role{model.RoleCustomer, model.RoleAffiliate, model.RoleAdmin}
)

type Guard struct {
	sessions   SessionResolver
	principals PrincipalStore
}

func NewGuard(sessions SessionResolver, principals PrincipalStore) *Guard {
	return &Guard{sessions: sessions, principals: principals}
}

// Authorize checks, in order: session, principal existence, block flag,
// role membership. A returned error means a collaborator failed; denials
// are never errors.
func (g *Guard) Authorize(ctx context.Context, r *http.Request, required ...model.Role) (Decision, error) {
	session, err := g.sessions.ResolveSession(ctx, r)
	if err != nil {
		return Decision{}, fmt.Errorf("resolve session: %w", err)
	}
	if session == nil || session.SubjectID == "" {
		return deny(Unauthenticated), nil
	}

	principal, err := g.principals.FindPrincipal(ctx, session.SubjectID)
	if err != nil {
		if errors.Is(err, stylino_errors.ErrUserNotFound) {
			logger.Warn("Session references a missing user", zap.String("subjectID", session.SubjectID))
			return deny(Unauthenticated), nil
		}
		return Decision{}, fmt.Errorf("load principal: %w", err)
	}
	if principal == nil {
		return deny(Unauthenticated), nil
	}

	if principal.IsBlocked {
		return deny(Blocked), nil
	}

	if !slices.Contains(required, principal.Role) {
		logger.Debug("Role not permitted",
			zap.String("subjectID", principal.ID),
			zap.String("role", string(principal.Role)))
		return deny(Forbidden), nil
	}

	return Decision{
		Outcome: Authorized,
		Principal: &Principal{
			ID:        principal.ID,
			Role:      principal.Role,
			IsBlocked: false,
		},
	}, nil
}

// RequireAdmin admits admins only.
func (g *Guard) RequireAdmin(ctx context.Context, r *http.Request) (Decision, error) {
	return g.Authorize(ctx, r, adminRoles...)
}

// RequireAffiliate admits affiliates, and admins for oversight.
func (g *Guard) RequireAffiliate(ctx context.Context, r *http.Request) (Decision, error) {
	return g.Authorize(ctx, r, affiliateRoles...)
}

// RequireCustomer admits any signed-in, unblocked user.
func (g *Guard) RequireCustomer(ctx context.Context, r *http.Request) (Decision, error) {
	return g.Authorize(ctx, r, customerRoles...)
}

func deny(outcome Outcome) Decision {
	d := Decision{Outcome: outcome}
	switch outcome {
	case Unauthenticated:
		d.Denial = &Denial{Status: http.StatusUnauthorized, Body: ErrorBody{Error: MessageUnauthenticated}}
	case Blocked:
		d.Denial = &Denial{Status: http.StatusForbidden, Body: ErrorBody{Error: MessageBlocked}}
	case Forbidden:
		d.Denial = &Denial{Status: http.StatusForbidden, Body: ErrorBody{Error: MessageForbidden}}
	}
	return d
}
