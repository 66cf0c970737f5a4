package main

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"idconsole/internal/country"
	"idconsole/internal/identity"
	"idconsole/internal/types"
)

// Cloudflare visitor location headers
const (
	headerCountry   = "CF-IPCountry"
	headerLatitude  = "CF-IPLatitude"
	headerLongitude = "CF-IPLongitude"
)

// GetIdentityInput defines the query parameters for the identity endpoint
type GetIdentityInput struct {
	Country string `form:"country"` // Optional two-letter country code
}

// handleGetIdentity godoc
// @Summary Generate an identity
// @Description Assemble a fake identity for the requested country. Without a country the caller's edge location is used, otherwise a random supported country.
// @Tags identity
// @Produce json
// @Param country query string false "Two-letter country code" example(FR)
// @Success 200 {object} types.Identity
// @Failure 400 {object} map[string]string
// @Router /identity [get]
func (app *App) handleGetIdentity(c *gin.Context) {
	var input GetIdentityInput

	// Bind query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req := identity.Request{Anchor: anchorFromHeaders(c)}
	if input.Country != "" {
		code, err := country.Parse(input.Country)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		req.Country = code
	}

	id := app.assembler.Assemble(c.Request.Context(), req)

	body, err := identity.EmbedJSON(id)
	if err != nil {
		app.logger.Error("failed to encode identity", "id", id.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode identity"})
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// anchorFromHeaders reads the edge-resolved visitor location. All three
// headers must be present and valid.
func anchorFromHeaders(c *gin.Context) *identity.Anchor {
	code, err := country.Parse(c.GetHeader(headerCountry))
	if err != nil {
		return nil
	}
	lat, err := strconv.ParseFloat(c.GetHeader(headerLatitude), 64)
	if err != nil {
		return nil
	}
	lon, err := strconv.ParseFloat(c.GetHeader(headerLongitude), 64)
	if err != nil {
		return nil
	}
	point := types.NewGeoPoint(lat, lon)
	if !point.Valid() {
		return nil
	}
	return &identity.Anchor{Country: code, Point: point}
}
