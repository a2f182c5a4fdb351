package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	resdto "tripslot/internal/handler/dto/response"
	"tripslot/internal/usecase/queries"
)

type ExperienceHandler struct {
	experienceQueries queries.ExperienceQueries
}

func NewExperienceHandler(experienceQueries queries.ExperienceQueries) *ExperienceHandler {
	return &ExperienceHandler{
		experienceQueries: experienceQueries,
	}
}

// @Summary List experiences
// @Description List experiences, optionally filtered by a search term
// @Tags experiences
// @Produce json
// @Param search query string false "Match against name, location and description"
// @Success 200 {array} resdto.ExperienceListResponse
// @Router /experiences [get]
func (h *ExperienceHandler) ListExperiences(c *gin.Context) {
	search := c.Query("search")

	items, err := h.experienceQueries.List(c.Request.Context(), search)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response, err := resdto.FromExperienceListItems(items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get experience
// @Description Get one experience by ID
// @Tags experiences
// @Produce json
// @Param id path string true "Experience ID"
// @Success 200 {object} resdto.ExperienceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /experiences/{id} [get]
func (h *ExperienceHandler) GetExperience(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid experience ID format",
		})
		return
	}

	view, err := h.experienceQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrExperienceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Experience not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	response, err := resdto.FromExperienceView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary List experience slots
// @Description List an experience's slots grouped by date, dates and times ascending
// @Tags experiences
// @Produce json
// @Param id path string true "Experience ID"
// @Success 200 {array} resdto.SlotDayResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /experiences/{id}/slots [get]
func (h *ExperienceHandler) ListSlots(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid experience ID format",
		})
		return
	}

	days, err := h.experienceQueries.ListSlots(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrExperienceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Experience not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	response, err := resdto.FromSlotDayViews(days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, response)
}
