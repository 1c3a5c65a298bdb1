// File: internal/handler/admin/admin.go
package admin

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"service-market/internal/api"
	"service-market/internal/database"
	"service-market/internal/model"
	"service-market/internal/service"
	"service-market/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

var (
	listAccounts    = store.ListAccounts
	getAccountByID  = store.GetAccountByID
	updateAccount   = store.UpdateAccount
	deleteAccount   = store.DeleteAccount
	validateProfile = service.ValidateProfile
)

func targetID(c echo.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// @Summary     List all accounts
// @Description 管理面板列表：所有帳號，不論可見性與完成度，最新註冊在前
// @Tags        admin
// @Produce     json
// @Param       page query int false "страница (по 10)"
// @Success     200 {object} api.AccountListResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/users [get]
func ListAccountsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		page, err := strconv.Atoi(c.QueryParam("page"))
		if err != nil || page < 1 {
			page = 1
		}

		items, total, err := listAccounts(c.Request().Context(), db, page)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}

		resp := api.AccountListResponse{
			OK:      true,
			Items:   make([]api.AccountResponse, 0, len(items)),
			Page:    page,
			PerPage: store.AdminPageSize,
			Total:   total,
			HasNext: page*store.AdminPageSize < total,
			HasPrev: page > 1,
		}
		for i := range items {
			resp.Items = append(resp.Items, api.NewAccountResponse(&items[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Update an account
// @Description 局部更新：簡介欄位合併現值後整批驗證；is_admin 對 root admin 靜默忽略
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       id      path int                           true "ID аккаунта"
// @Param       request body api.AdminUpdateAccountRequest true "поля"
// @Success     200 {object} api.UpdateAccountResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/users/{id} [put]
func UpdateAccountHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := targetID(c)
		if !ok {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Некорректный идентификатор пользователя."})
		}

		account, err := getAccountByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Пользователь не найден."})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}

		var req api.AdminUpdateAccountRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Некорректный запрос."})
		}

		if req.HasProfileFields() {
			errs, values := validateProfile(service.ProfileInput{
				Name:        textOr(req.Name, account.Name),
				ServiceType: textOr(req.ServiceType, account.ServiceType),
				Experience:  numberOr(req.ExperienceYears, account.ExperienceYears),
				Price:       numberOr(req.Price, account.Price),
				About:       textOr(req.About, account.About),
			})
			if len(errs) > 0 {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: strings.Join(errs, " ")})
			}
			account.Name = &values.Name
			account.ServiceType = &values.ServiceType
			account.ExperienceYears = &values.Experience
			account.Price = &values.Price
			account.About = values.About
		}

		if req.IsHidden != nil {
			account.IsHidden = *req.IsHidden
		}
		// The root admin can never be demoted through the panel; the key is
		// ignored, not rejected.
		if req.IsAdmin != nil && account.Login != model.RootAdminLogin {
			account.IsAdmin = *req.IsAdmin
		}

		if err := updateAccount(c.Request().Context(), db, account); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}

		return c.JSON(http.StatusOK, api.UpdateAccountResponse{
			OK:      true,
			Message: "Обновлено.",
			User:    api.NewAccountResponse(account),
		})
	}
}

// @Summary     Delete an account
// @Description 刪除指定帳號；root admin 不可刪除
// @Tags        admin
// @Produce     json
// @Param       id path int true "ID аккаунта"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/users/{id} [delete]
func DeleteAccountHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := targetID(c)
		if !ok {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Некорректный идентификатор пользователя."})
		}

		account, err := getAccountByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Пользователь не найден."})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}

		if account.Login == model.RootAdminLogin {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Нельзя удалить admin через панель."})
		}

		if err := deleteAccount(c.Request().Context(), db, id); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{OK: true, Message: "Пользователь удалён."})
	}
}

// textOr prefers the supplied value, falling back to the current column.
func textOr(supplied *string, current *string) string {
	if supplied != nil {
		return *supplied
	}
	if current != nil {
		return *current
	}
	return ""
}

// numberOr mirrors textOr for the untyped numeric fields: a nil current
// column stays nil so the validator reports it as non-integer.
func numberOr(supplied any, current *int) any {
	if supplied != nil {
		return supplied
	}
	if current != nil {
		return *current
	}
	return nil
}
