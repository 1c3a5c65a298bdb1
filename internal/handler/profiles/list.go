// File: internal/handler/profiles/list.go
package profiles

import (
	"net/http"
	"strconv"
	"strings"

	"service-market/internal/api"
	"service-market/internal/database"
	"service-market/internal/middleware"
	"service-market/internal/store"

	"github.com/labstack/echo/v4"
)

var listProfiles = store.ListProfiles

// queryInt parses an optional numeric filter. Anything unparseable counts
// as "not supplied" rather than an error.
func queryInt(c echo.Context, name string) *int {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

func pageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// @Summary     Browse the provider directory
// @Description 列出已填妥的公開簡介，支援過濾與分頁；隱藏的帳號只有管理員看得到
// @Tags        profiles
// @Produce     json
// @Param       name         query string false "подстрока имени"
// @Param       service_type query string false "вид услуги"
// @Param       exp_min      query int    false "стаж от"
// @Param       exp_max      query int    false "стаж до"
// @Param       price_min    query int    false "цена от"
// @Param       price_max    query int    false "цена до"
// @Param       page         query int    false "страница (по 5)"
// @Success     200 {object} api.DirectoryResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /profiles [get]
func ListHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller := middleware.CallerFrom(c)
		page := pageParam(c)

		filter := store.ProfileFilter{
			Name:          strings.TrimSpace(c.QueryParam("name")),
			ServiceType:   strings.TrimSpace(c.QueryParam("service_type")),
			ExpMin:        queryInt(c, "exp_min"),
			ExpMax:        queryInt(c, "exp_max"),
			PriceMin:      queryInt(c, "price_min"),
			PriceMax:      queryInt(c, "price_max"),
			IncludeHidden: caller.IsAdmin(),
			Page:          page,
		}
		if caller.Authenticated() {
			filter.ViewerID = caller.Account.ID
		}

		items, total, err := listProfiles(c.Request().Context(), db, filter)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}

		resp := api.DirectoryResponse{
			OK:      true,
			Items:   make([]api.ProfileResponse, 0, len(items)),
			Page:    page,
			PerPage: store.DirectoryPageSize,
			Total:   total,
			HasNext: page*store.DirectoryPageSize < total,
			HasPrev: page > 1,
		}
		for i := range items {
			resp.Items = append(resp.Items, api.NewProfileResponse(&items[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}
