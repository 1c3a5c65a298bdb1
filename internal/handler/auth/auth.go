// File: internal/handler/auth/auth.go
package auth

import (
	"errors"
	"net/http"
	"strings"

	"service-market/internal/api"
	"service-market/internal/cache"
	"service-market/internal/database"
	"service-market/internal/middleware"
	"service-market/internal/model"
	"service-market/internal/service"
	"service-market/internal/session"
	"service-market/internal/store"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
)

var (
	hashPassword        = service.HashPassword
	authenticateAccount = service.AuthenticateAccount
	createAccount       = store.CreateAccount
	getAccountByLogin   = store.GetAccountByLogin
	issueSession        = session.Issue
	revokeSession       = session.Revoke
)

const uniqueViolation = "23505"

// @Summary     Register a new account
// @Description 建立新帳號並立即開啟工作階段
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.RegisterRequest true "登入名稱與密碼"
// @Success     200 {object} api.RegisterResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/register [post]
func RegisterHandler(db database.DB, sessions cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Некорректный запрос."})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		}

		login := strings.TrimSpace(req.Login)
		password := strings.TrimSpace(req.Password)

		if !service.ValidLogin(login) {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: service.MsgBadLogin})
		}
		if !service.ValidPassword(password) {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: service.MsgBadPassword})
		}

		hash, err := hashPassword(password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}

		account, err := createAccount(c.Request().Context(), db, &model.Account{
			Login:        login,
			PasswordHash: hash,
		})
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Такой логин уже занят."})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}

		// The original flow logs the user in right after registration.
		token, err := issueSession(c.Request().Context(), sessions, account.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}
		c.SetCookie(session.NewCookie(token))

		return c.JSON(http.StatusOK, api.RegisterResponse{
			OK:      true,
			Message: "Регистрация успешна.",
			User:    api.RegisterUser{Login: account.Login},
		})
	}
}

// @Summary     Log in
// @Description 驗證登入名稱與密碼並發出工作階段 cookie
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.LoginRequest true "登入名稱與密碼"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB, sessions cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Некорректный запрос."})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		}

		login := strings.TrimSpace(req.Login)
		password := strings.TrimSpace(req.Password)

		// Lookup failure and password mismatch collapse into one message.
		account, err := getAccountByLogin(c.Request().Context(), db, login)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Неверный логин или пароль."})
		}
		if err := authenticateAccount(*account, password); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Неверный логин или пароль."})
		}

		token, err := issueSession(c.Request().Context(), sessions, account.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}
		c.SetCookie(session.NewCookie(token))

		return c.JSON(http.StatusOK, api.MessageResponse{OK: true, Message: "Вход выполнен."})
	}
}

// @Summary     Log out
// @Description 撤銷目前的工作階段並清除 cookie
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Router      /auth/logout [post]
func LogoutHandler(sessions cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		if cookie, err := c.Cookie(session.CookieName); err == nil {
			// Even if revocation fails the cookie is cleared; the token
			// expires on its own TTL.
			_ = revokeSession(c.Request().Context(), sessions, cookie.Value)
		}
		c.SetCookie(session.ExpiredCookie())
		return c.JSON(http.StatusOK, api.MessageResponse{OK: true, Message: "Вы вышли из аккаунта."})
	}
}

// @Summary     Current caller
// @Description 回傳目前登入者；匿名呼叫者得到 user: null
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.MeResponse
// @Router      /auth/me [get]
func MeHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		caller := middleware.CallerFrom(c)
		if !caller.Authenticated() {
			return c.JSON(http.StatusOK, api.MeResponse{OK: true, User: nil})
		}
		if caller.IsAdmin() {
			return c.JSON(http.StatusOK, api.MeResponse{OK: true, User: api.NewAccountResponse(caller.Account)})
		}
		return c.JSON(http.StatusOK, api.MeResponse{OK: true, User: api.NewMeUser(caller.Account)})
	}
}
