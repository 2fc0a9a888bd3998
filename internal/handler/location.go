package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"billboard-locations/internal/models"
	"billboard-locations/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// LocationService interface for dependency injection
type LocationService interface {
	List(context.Context, models.Filter) ([]models.Location, error)
	Nearest(context.Context, float64, float64) (*models.Location, error)
	Script(context.Context) ([]byte, error)
}

// LocationHandler handles billboard location requests
type LocationHandler struct {
	service LocationService
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(svc LocationService) *LocationHandler {
	return &LocationHandler{service: svc}
}

// List handles GET /locations requests
//
//	@Summary	List billboard locations
//	@Tags		locations
//	@Produce	json
//	@Param		region	query		string	false	"Region key"	Enums(north, northeast, central, east, west, south)
//	@Param		size	query		string	false	"Size category"	Enums(small, medium, large, xlarge)
//	@Param		traffic	query		string	false	"Traffic level"	Enums(low, medium, high, very_high)
//	@Success	200		{array}		models.Location
//	@Failure	400		{object}	map[string]string
//	@Router		/locations [get]
func (h *LocationHandler) List(c *gin.Context) {
	filter := models.Filter{
		Region:  models.Region(c.Query("region")),
		Size:    models.Size(c.Query("size")),
		Traffic: models.Traffic(c.Query("traffic")),
	}

	locations, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		if errors.Is(err, service.ErrInvalidFilter) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Error().Err(err).Msg("list locations")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, locations)
}

// Nearest handles GET /locations/nearest requests
//
//	@Summary	Find the billboard nearest to a point
//	@Tags		locations
//	@Produce	json
//	@Param		lat	query		number	true	"Latitude"
//	@Param		lon	query		number	true	"Longitude"
//	@Success	200	{object}	models.Location
//	@Failure	400	{object}	map[string]string
//	@Failure	404	{object}	map[string]string
//	@Router		/locations/nearest [get]
func (h *LocationHandler) Nearest(c *gin.Context) {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")

	if latStr == "" || lonStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'lat' and 'lon'"})
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude format"})
		return
	}

	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude format"})
		return
	}

	location, err := h.service.Nearest(c.Request.Context(), lat, lon)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCoordinates) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "coordinates out of range"})
			return
		}
		log.Error().Err(err).Msg("nearest location")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if location == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no billboard found near the specified coordinates"})
		return
	}

	c.JSON(http.StatusOK, location)
}

// Script handles GET /locations-data.js requests
//
//	@Summary	Locations as a loadable JavaScript file
//	@Tags		locations
//	@Produce	application/javascript
//	@Success	200	{string}	string
//	@Router		/locations-data.js [get]
func (h *LocationHandler) Script(c *gin.Context) {
	script, err := h.service.Script(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("render locations script")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Data(http.StatusOK, "application/javascript; charset=utf-8", script)
}
