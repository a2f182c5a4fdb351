package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "tripslot/internal/handler/dto/request"
	resdto "tripslot/internal/handler/dto/response"
	"tripslot/internal/handler/middleware"
	"tripslot/internal/usecase/commands"
	"tripslot/internal/usecase/queries"
)

var errIdempotencyKeyRequired = errors.New("idempotency key required")

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Book one seat on a slot, idempotent per Idempotency-Key
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 200 {object} resdto.BookingResponse "Replay of an earlier commit"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.bookingCommands.CommitBooking(c.Request.Context(), req, userID, idempotencyKey)
	if err != nil {
		h.respondCommitError(c, err)
		return
	}

	response, err := resdto.FromBookingView(result.Booking)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	if result.IsReplayed {
		middleware.ObserveBookingCommit("replayed")
		c.JSON(http.StatusOK, response)
		return
	}

	middleware.ObserveBookingCommit("created")
	c.JSON(http.StatusCreated, response)
}

func (h *BookingHandler) respondCommitError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrExperienceNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Experience not found",
		})
	case errors.Is(err, commands.ErrSlotNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Slot not found",
		})
	case errors.Is(err, commands.ErrSlotMismatch):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Slot does not belong to the experience",
		})
	case errors.Is(err, commands.ErrSlotExhausted):
		middleware.ObserveBookingCommit("sold_out")
		c.JSON(http.StatusConflict, gin.H{
			"error": "No seats remaining for this slot",
		})
	case errors.Is(err, commands.ErrPromoNotFound):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Promo code not found",
		})
	case errors.Is(err, commands.ErrInvalidPromo):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid or inactive promo code",
		})
	case errors.Is(err, commands.ErrInvalidContact):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Invalid guest contact details",
		})
	case errors.Is(err, commands.ErrIdempotencyConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Idempotency key was already used with a different request",
		})
	default:
		middleware.ObserveBookingCommit("failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

// @Summary Get booking
// @Description Get one of the current user's bookings by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	response, err := resdto.FromBookingView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary List bookings
// @Description List the current user's bookings, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) GetUserBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.bookingQueries.ListByUser(c.Request.Context(), userID, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response, err := resdto.FromBookingListItems(items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

func getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	keyStr := c.GetHeader("Idempotency-Key")
	if keyStr == "" {
		return uuid.Nil, errIdempotencyKeyRequired
	}

	key, err := uuid.Parse(keyStr)
	if err != nil {
		return uuid.Nil, errors.New("invalid idempotency key format")
	}

	return key, nil
}
