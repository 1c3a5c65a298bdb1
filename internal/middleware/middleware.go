package middleware

import (
	"net/http"

	"service-market/internal/api"
	"service-market/internal/cache"
	"service-market/internal/database"
	"service-market/internal/model"
	"service-market/internal/session"
	"service-market/internal/store"

	"github.com/labstack/echo/v4"
)

const ContextCallerKey = "caller"

type Tier int

const (
	TierAnonymous Tier = iota
	TierOwner
	TierAdmin
)

// Caller is the resolved identity of a request: nil Account for anonymous
// callers. Handlers receive it as an explicit value instead of reading
// ambient session state.
type Caller struct {
	Account *model.Account
}

func (c Caller) Tier() Tier {
	switch {
	case c.Account == nil:
		return TierAnonymous
	case c.Account.IsAdmin:
		return TierAdmin
	default:
		return TierOwner
	}
}

func (c Caller) Authenticated() bool { return c.Account != nil }
func (c Caller) IsAdmin() bool       { return c.Account != nil && c.Account.IsAdmin }

var (
	resolveSession = session.Resolve
	getAccountByID = store.GetAccountByID
)

// ResolveCaller turns the session cookie into a Caller on every request.
// A missing, stale or unresolvable token yields an anonymous caller, never
// an error.
func ResolveCaller(db database.DB, sessions cache.Cache) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller := Caller{}
			if cookie, err := c.Cookie(session.CookieName); err == nil && cookie.Value != "" {
				reqCtx := c.Request().Context()
				if id, ok := resolveSession(reqCtx, sessions, cookie.Value); ok {
					if account, err := getAccountByID(reqCtx, db, id); err == nil {
						caller.Account = account
					}
				}
			}
			c.Set(ContextCallerKey, caller)
			return next(c)
		}
	}
}

// CallerFrom reads the resolved Caller; absent means anonymous.
func CallerFrom(c echo.Context) Caller {
	if caller, ok := c.Get(ContextCallerKey).(Caller); ok {
		return caller
	}
	return Caller{}
}

func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !CallerFrom(c).Authenticated() {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Требуется авторизация."})
		}
		return next(c)
	}
}

func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !CallerFrom(c).IsAdmin() {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Требуются права администратора."})
		}
		return next(c)
	}
}
