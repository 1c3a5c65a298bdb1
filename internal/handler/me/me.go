// File: internal/handler/me/me.go
package me

import (
	"fmt"
	"net/http"
	"strings"

	"service-market/internal/api"
	"service-market/internal/cache"
	"service-market/internal/database"
	"service-market/internal/middleware"
	"service-market/internal/service"
	"service-market/internal/session"
	"service-market/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	validateProfile = service.ValidateProfile
	updateProfile   = store.UpdateProfile
	setHidden       = store.SetHidden
	deleteAccount   = store.DeleteAccount
	revokeSession   = session.Revoke
)

// @Summary     Update own profile
// @Description 驗證並整批套用簡介欄位；任一錯誤即整筆拒絕
// @Tags        me
// @Accept      json
// @Produce     json
// @Param       request body api.UpdateProfileRequest true "簡介欄位"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /me/profile [put]
func UpdateProfileHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller := middleware.CallerFrom(c)
		if !caller.Authenticated() {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Требуется авторизация."})
		}

		var req api.UpdateProfileRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Некорректный запрос."})
		}

		errs, values := validateProfile(service.ProfileInput{
			Name:        req.Name,
			ServiceType: req.ServiceType,
			Experience:  req.ExperienceYears,
			Price:       req.Price,
			About:       req.About,
		})
		if len(errs) > 0 {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: strings.Join(errs, " ")})
		}

		if err := updateProfile(c.Request().Context(), db, caller.Account.ID, values); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{OK: true, Message: "Анкета обновлена."})
	}
}

// @Summary     Toggle own visibility
// @Description 設定自己的 is_hidden 旗標
// @Tags        me
// @Accept      json
// @Produce     json
// @Param       request body api.HideRequest true "is_hidden"
// @Success     200 {object} api.HideResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /me/hide [patch]
func HideHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller := middleware.CallerFrom(c)
		if !caller.Authenticated() {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Требуется авторизация."})
		}

		var req api.HideRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Некорректный запрос."})
		}

		if err := setHidden(c.Request().Context(), db, caller.Account.ID, req.IsHidden); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusOK, api.HideResponse{OK: true, Message: "Готово.", IsHidden: req.IsHidden})
	}
}

// @Summary     Delete own account
// @Description 刪除自己的帳號並撤銷目前的工作階段
// @Tags        me
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /me [delete]
func DeleteHandler(db database.DB, sessions cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller := middleware.CallerFrom(c)
		if !caller.Authenticated() {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Требуется авторизация."})
		}
		accountID := caller.Account.ID

		if err := deleteAccount(c.Request().Context(), db, accountID); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}

		if cookie, err := c.Cookie(session.CookieName); err == nil {
			_ = revokeSession(c.Request().Context(), sessions, cookie.Value)
		}
		c.SetCookie(session.ExpiredCookie())

		return c.JSON(http.StatusOK, api.MessageResponse{
			OK:      true,
			Message: fmt.Sprintf("Аккаунт удалён (id=%d).", accountID),
		})
	}
}
