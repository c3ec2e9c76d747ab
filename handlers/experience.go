package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"andeanscapes/services/experience"
	"andeanscapes/utils"
)

// ExperienceHandler serves the experience catalog.
type ExperienceHandler struct {
	Service experience.ExperienceService
	Logger  *zap.Logger
}

func NewExperienceHandler(service experience.ExperienceService, logger *zap.Logger) *ExperienceHandler {
	return &ExperienceHandler{Service: service, Logger: logger}
}

// ListExperiencesHandler returns the ids of all bookable experiences.
func (h *ExperienceHandler) ListExperiencesHandler(c *gin.Context) {
	ids, err := h.Service.ListExperienceIDs(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list experiences", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"experiences": ids})
}

// GetExperienceHandler returns the full data for one experience.
func (h *ExperienceHandler) GetExperienceHandler(c *gin.Context) {
	experienceID := c.Param("id")

	data, err := h.Service.GetExperienceData(c.Request.Context(), experienceID)
	if err != nil {
		var notFound *experience.NotFoundError
		if errors.As(err, &notFound) {
			utils.JSONError(c, http.StatusNotFound, "experience not found", experienceID)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch experience", err.Error())
		return
	}

	c.JSON(http.StatusOK, data)
}
