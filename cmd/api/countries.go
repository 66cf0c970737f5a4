package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"idconsole/internal/country"
)

// CountryResponse describes one supported country
type CountryResponse struct {
	Code        string `json:"code" example:"FR"`
	Name        string `json:"name" example:"France"`
	CallingCode string `json:"callingCode" example:"+33"`
}

// handleListCountries godoc
// @Summary List supported countries
// @Description Countries with their own address, phone and postal code tables
// @Tags identity
// @Produce json
// @Success 200 {array} CountryResponse
// @Router /countries [get]
func (app *App) handleListCountries(c *gin.Context) {
	codes := country.All()
	resp := make([]CountryResponse, 0, len(codes))
	for _, code := range codes {
		resp = append(resp, CountryResponse{
			Code:        code.String(),
			Name:        code.Name(),
			CallingCode: code.CallingCode(),
		})
	}
	c.JSON(http.StatusOK, resp)
}
