package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"idconsole/internal/country"
)

const serviceName = "idconsole"

// PingResponse represents the response for the ping endpoint
type PingResponse struct {
	Message   string `json:"message" example:"pong"`      // Response message
	Service   string `json:"service" example:"idconsole"` // Service name
	Countries int    `json:"countries" example:"24"`      // Supported countries
}

// handlePing godoc
// @Summary Ping health check
// @Description Check if the API is running and how many countries it can generate identities for
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /ping [get]
func (app *App) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Message:   "pong",
		Service:   serviceName,
		Countries: len(country.All()),
	})
}
