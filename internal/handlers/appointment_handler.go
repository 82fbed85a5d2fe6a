package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
	bookinguc "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	deps *Deps
}

func NewAppointmentHandler(d *Deps) *AppointmentHandler {
	return &AppointmentHandler{deps: d}
}

// ======================================================
// LIST
// ======================================================

// List takes ?scope=upcoming|past|all, upcoming by default.
func (h *AppointmentHandler) List(c *gin.Context) {
	scope, err := appointment.ParseScope(c.Query("scope"))
	if err != nil {
		respondError(c, h.deps.Log, err)
		return
	}

	repos := h.deps.repos(c)

	list, err := appointment.NewListAppointments(repos.Appointments).
		Execute(c.Request.Context(), scope)
	if err != nil {
		respondError(c, h.deps.Log, err)
		return
	}

	httpresp.List(c, dto.NewAppointmentList(list))
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	repos := h.deps.repos(c)

	ap, err := appointment.NewGetAppointment(repos.Appointments).
		Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.deps.Log, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// CANCEL
// ======================================================

type CancelResponse struct {
	// Nil when the id matched nothing.
	Appointment *models.Appointment `json:"appointment"`
}

// Cancel is idempotent: an appointment that is no longer upcoming comes
// back unchanged and an unknown id answers with a null appointment.
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	repos := h.deps.repos(c)

	ap, err := appointment.NewCancelAppointment(repos.Appointments, h.deps.Audit).
		Execute(c.Request.Context(), actorFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, h.deps.Log, err)
		return
	}

	c.JSON(http.StatusOK, CancelResponse{Appointment: ap})
}

// ======================================================
// REBOOK
// ======================================================

// Rebook opens a fresh booking at the appointment's shop.
func (h *AppointmentHandler) Rebook(c *gin.Context) {
	repos := h.deps.repos(c)
	start := bookinguc.NewStartBooking(repos.Booking, h.deps.Catalog)

	f, err := appointment.NewRebookAppointment(repos.Appointments, start).
		Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.deps.Log, err)
		return
	}

	c.JSON(http.StatusCreated, h.deps.bookingView(f))
}
