package request

import (
	"github.com/google/uuid"
)

type ValidatePromoRequest struct {
	Code         string    `json:"code" binding:"required"`
	ExperienceID uuid.UUID `json:"experience_id" binding:"required"`
}
