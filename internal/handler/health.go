// File: internal/handler/health.go
package handler

import (
	"net/http"

	"service-market/internal/api"
	"service-market/internal/cache"
	"service-market/internal/database"

	"github.com/labstack/echo/v4"
)

// @Summary     Health check
// @Description 檢查資料庫與工作階段儲存是否可用
// @Tags        health
// @Produce     json
// @Success     200 {object} api.HealthResponse
// @Failure     503 {object} api.HealthResponse
// @Router      /health [get]
func HealthHandler(db database.DB, sessions cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		resp := api.HealthResponse{OK: true, Database: "up", Sessions: "up"}
		if err := db.Ping(c.Request().Context()); err != nil {
			resp.OK = false
			resp.Database = "down"
		}
		if err := sessions.Ping(c.Request().Context()).Err(); err != nil {
			resp.OK = false
			resp.Sessions = "down"
		}
		if !resp.OK {
			return c.JSON(http.StatusServiceUnavailable, resp)
		}
		return c.JSON(http.StatusOK, resp)
	}
}
