package handlers

import (
	stderrors "errors"
	"net/http"

	"raffle/internal/errors"
	"raffle/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/logger"
)

// HTTPHandler holds the dependencies for the HTTP handlers, like the raffle service.
type HTTPHandler struct {
	service *services.RaffleService
}

// NewHTTPHandler creates a new HTTPHandler.
func NewHTTPHandler(service *services.RaffleService) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// RegisterRoutes registers all the application routes.
func (h *HTTPHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/status", h.GetStatus)
	router.POST("/draws", h.StartDraw)
	router.POST("/entries", h.RegisterEntry)
	router.POST("/draws/run", h.RunRaffle)
}

type entryRequest struct {
	// Entry is the raw "name,ticketCount" pair, same shape the console takes.
	Entry string `json:"entry" binding:"required"`
}

// GetStatus reports whether a draw is ongoing and the current pot size.
func (h *HTTPHandler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"active":   h.service.IsActive(),
		"pot_size": h.service.PotSize(),
		"status":   h.service.DrawStatus(),
	})
}

// StartDraw activates a new round.
func (h *HTTPHandler) StartDraw(c *gin.Context) {
	potSize, err := h.service.StartNewDraw()
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"round_id": h.service.RoundID(),
		"pot_size": potSize,
	})
}

// RegisterEntry validates the raw entry pair and purchases tickets.
func (h *HTTPHandler) RegisterEntry(c *gin.Context) {
	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must contain an entry field"})
		return
	}

	name, ticketCount, err := h.service.ValidateEntryInput(req.Entry)
	if err != nil {
		h.renderError(c, err)
		return
	}

	summary, err := h.service.RegisterEntry(name, ticketCount)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":      summary.Name,
		"requested": summary.Requested,
		"issued":    len(summary.Issued),
		"tickets":   summary.Issued,
		"pot_size":  h.service.PotSize(),
		"note":      summary.Note,
	})
}

// RunRaffle draws the winning numbers, settles the results, and finalizes
// the round in one step, mirroring the console's "Run Raffle" action.
func (h *HTTPHandler) RunRaffle(c *gin.Context) {
	winningNumbers, err := h.service.DrawWinningNumbers()
	if err != nil {
		h.renderError(c, err)
		return
	}
	roundID := h.service.RoundID()

	results, err := h.service.SettleResults()
	if err != nil {
		h.renderError(c, err)
		return
	}
	totalPayout := results.TotalPayout()

	potSize, err := h.service.FinalizeRound()
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"round_id":        roundID,
		"winning_numbers": winningNumbers,
		"results":         results,
		"total_payout":    totalPayout,
		"pot_size":        potSize,
	})
}

// renderError maps application error kinds to HTTP status codes.
func (h *HTTPHandler) renderError(c *gin.Context, err error) {
	var appErr *errors.Error
	if stderrors.As(err, &appErr) {
		switch appErr.Kind {
		case errors.ErrInvalidInput:
			c.JSON(http.StatusBadRequest, gin.H{"error": appErr.Message})
			return
		case errors.ErrInvalidOperation:
			c.JSON(http.StatusConflict, gin.H{"error": appErr.Message})
			return
		}
	}
	logger.Errorf("Unexpected error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
