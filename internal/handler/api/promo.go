package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "tripslot/internal/handler/dto/request"
	resdto "tripslot/internal/handler/dto/response"
	"tripslot/internal/usecase/queries"
)

type PromoHandler struct {
	promoQueries queries.PromoQueries
}

func NewPromoHandler(promoQueries queries.PromoQueries) *PromoHandler {
	return &PromoHandler{
		promoQueries: promoQueries,
	}
}

// @Summary Validate promo code
// @Description Quote the discounted price of an experience for a promo code
// @Tags promos
// @Accept json
// @Produce json
// @Param request body reqdto.ValidatePromoRequest true "Promo validation request"
// @Success 200 {object} resdto.PromoQuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /promos/validate [post]
func (h *PromoHandler) ValidatePromo(c *gin.Context) {
	var req reqdto.ValidatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	quote, err := h.promoQueries.Validate(c.Request.Context(), req.Code, req.ExperienceID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrPromoNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Promo code not found",
			})
		case errors.Is(err, queries.ErrExperienceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Experience not found",
			})
		case errors.Is(err, queries.ErrPromoInactive), errors.Is(err, queries.ErrPromoInvalid):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid or inactive promo code",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPromoQuoteView(quote))
}
