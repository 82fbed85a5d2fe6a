package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	bookinguc "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

type BookingHandler struct {
	deps *Deps
}

func NewBookingHandler(d *Deps) *BookingHandler {
	return &BookingHandler{deps: d}
}

// --------- Requests ---------

type DateTimeRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

type NotesRequest struct {
	Notes string `json:"notes"`
}

type NextResponse struct {
	Booking dto.BookingView `json:"booking"`
	// Set once the confirm step is passed.
	Draft *booking.Draft `json:"draft,omitempty"`
}

type BackResponse struct {
	Exited  bool             `json:"exited"`
	Booking *dto.BookingView `json:"booking,omitempty"`
}

// --------- Handlers ---------

func (h *BookingHandler) Start(c *gin.Context) {
	repos := h.deps.repos(c)

	f, err := bookinguc.NewStartBooking(repos.Booking, h.deps.Catalog).
		Execute(c.Request.Context(), c.Param("id"))
	h.respond(c, http.StatusCreated, f, err)
}

func (h *BookingHandler) Get(c *gin.Context) {
	repos := h.deps.repos(c)

	f, err := bookinguc.NewGetBooking(repos.Booking).Execute(c.Request.Context())
	h.respond(c, http.StatusOK, f, err)
}

func (h *BookingHandler) ToggleService(c *gin.Context) {
	repos := h.deps.repos(c)

	f, err := bookinguc.NewToggleService(repos.Booking, h.deps.Catalog).
		Execute(c.Request.Context(), c.Param("serviceId"))
	h.respond(c, http.StatusOK, f, err)
}

// SelectBarber takes {"any": true} or {"barber_id": "..."}.
func (h *BookingHandler) SelectBarber(c *gin.Context) {
	var choice booking.BarberChoice
	if err := c.ShouldBindJSON(&choice); err != nil {
		invalidRequest(c, err)
		return
	}
	if choice.IsZero() {
		respondError(c, h.deps.Log, booking.ErrNoBarber)
		return
	}

	repos := h.deps.repos(c)

	f, err := bookinguc.NewSelectBarber(repos.Booking, h.deps.Catalog).
		Execute(c.Request.Context(), choice)
	h.respond(c, http.StatusOK, f, err)
}

func (h *BookingHandler) SelectDateTime(c *gin.Context) {
	var req DateTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	repos := h.deps.repos(c)
	uc := bookinguc.NewSelectDateTime(repos.Booking, h.deps.Clock, h.deps.Config.ShopTimezone)

	f, err := uc.Execute(c.Request.Context(), bookinguc.DateTimeInput{
		Date: req.Date,
		Time: req.Time,
	})
	h.respond(c, http.StatusOK, f, err)
}

func (h *BookingHandler) SetNotes(c *gin.Context) {
	var req NotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	repos := h.deps.repos(c)

	f, err := bookinguc.NewSetNotes(repos.Booking).Execute(c.Request.Context(), req.Notes)
	h.respond(c, http.StatusOK, f, err)
}

func (h *BookingHandler) Next(c *gin.Context) {
	repos := h.deps.repos(c)

	f, draft, err := bookinguc.NewNextStep(repos.Booking, h.deps.Catalog).
		Execute(c.Request.Context())
	if err != nil {
		respondError(c, h.deps.Log, err)
		return
	}

	c.JSON(http.StatusOK, NextResponse{
		Booking: h.deps.bookingView(f),
		Draft:   draft,
	})
}

func (h *BookingHandler) Back(c *gin.Context) {
	repos := h.deps.repos(c)

	f, exited, err := bookinguc.NewBackStep(repos.Booking).Execute(c.Request.Context())
	if err != nil {
		respondError(c, h.deps.Log, err)
		return
	}

	resp := BackResponse{Exited: exited}
	if !exited {
		v := h.deps.bookingView(f)
		resp.Booking = &v
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) respond(c *gin.Context, status int, f *booking.Flow, err error) {
	if err != nil {
		respondError(c, h.deps.Log, err)
		return
	}
	c.JSON(status, h.deps.bookingView(f))
}
