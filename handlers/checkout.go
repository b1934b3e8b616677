package handlers

import (
	"errors"
	"net/http"

	"stayx/database/repository"
	"stayx/middleware"
	"stayx/models"
	"stayx/services/checkout"
	"stayx/utils"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler serves the three payment paths.
type CheckoutHandler struct {
	Checkout checkout.Service
}

// NewCheckoutHandler constructs a CheckoutHandler.
func NewCheckoutHandler(svc checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{Checkout: svc}
}

// IntentHandler handles POST /api/checkout/intent.
func (h *CheckoutHandler) IntentHandler(c *gin.Context) {
	uid, _ := middleware.UserID(c)

	var req models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	resp, err := h.Checkout.CreateIntent(c.Request.Context(), uid, req.BookingID)
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ConfirmHandler handles POST /api/checkout/confirm.
func (h *CheckoutHandler) ConfirmHandler(c *gin.Context) {
	uid, _ := middleware.UserID(c)

	var req models.ConfirmCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	result, err := h.Checkout.ConfirmCard(c.Request.Context(), uid, req)
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// MobileMoneyHandler handles POST /api/checkout/mobile-money.
func (h *CheckoutHandler) MobileMoneyHandler(c *gin.Context) {
	uid, _ := middleware.UserID(c)

	var req models.MobileMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	result, err := h.Checkout.MobileMoney(c.Request.Context(), uid, req)
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CashHandler handles POST /api/checkout/cash.
func (h *CheckoutHandler) CashHandler(c *gin.Context) {
	uid, _ := middleware.UserID(c)

	var req models.CashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	result, err := h.Checkout.Cash(c.Request.Context(), uid, req)
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func writeCheckoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
	case errors.Is(err, checkout.ErrNotBookingOwner):
		utils.JSONError(c, http.StatusForbidden, "Not allowed", "")
	case errors.Is(err, checkout.ErrDuplicateConfirmation):
		utils.JSONError(c, http.StatusConflict, "Payment already confirmed", "")
	case errors.Is(err, checkout.ErrBookingNotPayable):
		utils.JSONError(c, http.StatusConflict, "Booking is not payable", "")
	case errors.Is(err, checkout.ErrIntentMismatch):
		utils.JSONError(c, http.StatusBadRequest, "Payment intent mismatch", "")
	case errors.Is(err, checkout.ErrIntentNotSucceeded):
		utils.JSONError(c, http.StatusPaymentRequired, "Payment has not completed", "")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Checkout failed", err.Error())
	}
}
