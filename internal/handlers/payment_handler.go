package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/payment"
	appointmentuc "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
	paymentuc "github.com/BruksfildServices01/barber-booking/internal/usecase/payment"
)

type PaymentHandler struct {
	deps *Deps
}

func NewPaymentHandler(d *Deps) *PaymentHandler {
	return &PaymentHandler{deps: d}
}

// Pay charges the confirmed booking and answers with the receipt.
func (h *PaymentHandler) Pay(c *gin.Context) {
	var card payment.Card
	if err := c.ShouldBindJSON(&card); err != nil {
		invalidRequest(c, err)
		return
	}

	repos := h.deps.repos(c)
	create := appointmentuc.NewCreateAppointment(repos.Appointments, h.deps.Clock, h.deps.Audit)
	uc := paymentuc.NewPayBooking(
		repos.Booking,
		repos.Users,
		repos.Rewards,
		create,
		h.deps.Gateway,
		h.deps.Config.PaymentCurrency,
		h.deps.Audit,
	)

	receipt, err := uc.Execute(c.Request.Context(), actorFrom(c), card)
	if err != nil {
		respondError(c, h.deps.Log, err)
		return
	}

	c.JSON(http.StatusCreated, receipt)
}
