package v1

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/captain_radius/internal/config"
	"github.com/shenikar/captain_radius/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	radiusService service.RadiusCheckService
	logger        *logrus.Logger
	validate      *validator.Validate
	cfg           *config.Config
}

func NewHandler(radiusService service.RadiusCheckService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		radiusService: radiusService,
		logger:        logger,
		validate:      validator.New(),
		cfg:           cfg,
	}
}

// @Summary Check a destination against the captain's radius
// @Description Resolve the captain's base and the destination and decide whether the destination is within the operating radius. Missing or unresolvable places are reported in the verdict, not as errors.
// @Tags Radius
// @Accept json
// @Produce json
// @Param check body RadiusCheckRequest true "Radius check request"
// @Success 200 {object} RadiusCheckResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /radius/check [post]
func (h *Handler) checkRadius(c *gin.Context) {
	var input RadiusCheckRequest
	log := h.logger.WithField("method", "checkRadius")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	check := h.radiusService.CheckDestination(c.Request.Context(), input.CaptainID, DTOToRadiusCheckRequest(input))
	c.JSON(http.StatusOK, ModelToRadiusCheckResponse(check))
}

// @Summary Geocode a place name
// @Description Resolve free-form place text to coordinates within the configured country.
// @Tags Geocoding
// @Produce json
// @Param q query string true "Place name"
// @Success 200 {object} GeocodeResponse
// @Failure 400 {object} map[string]string "Missing query"
// @Failure 404 {object} map[string]string "Place not found"
// @Router /geocode [get]
func (h *Handler) geocode(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}
	log := h.logger.WithField("method", "geocode").WithField("query", query)

	point, ok := h.radiusService.Resolve(c.Request.Context(), query)
	if !ok {
		log.Info("Place not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "place not found"})
		return
	}

	c.JSON(http.StatusOK, GeocodeResponse{
		Query:     query,
		Latitude:  point.Latitude,
		Longitude: point.Longitude,
	})
}

// @Summary Get a list of radius checks
// @Description Get a paginated audit log of radius checks, newest first. Requires API key.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} RadiusCheckRecordResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /radius/checks [get]
func (h *Handler) listChecks(c *gin.Context) {
	log := h.logger.WithField("method", "listChecks")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	checks, err := h.radiusService.ListChecks(c.Request.Context(), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list radius checks from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToRadiusCheckRecords(checks))
}

// @Summary Get radius check statistics
// @Description Get counts of radius checks in the configured time window. Requires API key.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /radius/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.radiusService.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelToStatsResponse(stats))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
