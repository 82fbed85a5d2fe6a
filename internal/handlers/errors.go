package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

type writeFunc func(c *gin.Context, code, message string)

// Codes not listed here answer 400.
var businessWriters = map[string]writeFunc{
	"shop_not_found":        httperr.NotFound,
	"service_not_found":     httperr.NotFound,
	"barber_not_found":      httperr.NotFound,
	"appointment_not_found": httperr.NotFound,
	"reward_not_found":      httperr.NotFound,
	"booking_not_found":     httperr.NotFound,
	"draft_not_found":       httperr.NotFound,
	"no_active_user":        httperr.NotFound,

	"cannot_proceed": httperr.Conflict,
	"wrong_step":     httperr.Conflict,
	"invalid_state":  httperr.Conflict,

	"insufficient_points": httperr.Unprocessable,
	"payment_declined":    httperr.Unprocessable,
}

var businessMessages = map[string]string{
	"shop_not_found":        "Barbershop not found",
	"service_not_found":     "Service not found",
	"barber_not_found":      "Barber not found",
	"appointment_not_found": "Appointment not found",
	"reward_not_found":      "Reward not found",
	"booking_not_found":     "No booking in progress",
	"draft_not_found":       "No confirmed booking to pay for",
	"no_active_user":        "No user is signed in on this device",
	"cannot_proceed":        "Complete this step before continuing",
	"wrong_step":            "That change belongs to another step",
	"barber_required":       "Please choose a barber",
	"invalid_date":          "Pick one of the available dates",
	"invalid_time":          "Pick one of the available time slots",
	"invalid_scope":         "Scope must be upcoming, past or all",
	"notes_too_long":        "Notes are too long",
	"missing_card_fields":   "Please fill in all card details",
	"missing_card_token":    "A card token is required",
}

// respondError answers a business error with its code and a 4xx status.
// Anything else is logged and hidden behind a 500.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	if be, ok := httperr.AsBusiness(err); ok {
		write, found := businessWriters[be.Code]
		if !found {
			write = httperr.BadRequest
		}

		msg := be.Message
		if msg == "" {
			msg = businessMessages[be.Code]
		}
		if msg == "" {
			msg = be.Code
		}

		write(c, be.Code, msg)
		return
	}

	_ = c.Error(err)
	log.Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	httperr.Internal(c, "internal_error", "Something went wrong, please try again")
}

func invalidRequest(c *gin.Context, err error) {
	httperr.BadRequest(c, "invalid_request", err.Error())
}
