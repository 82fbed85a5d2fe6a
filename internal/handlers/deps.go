package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/catalog"
	"github.com/BruksfildServices01/barber-booking/internal/clock"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/media"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/payment"
	"github.com/BruksfildServices01/barber-booking/internal/storage"
)

// Deps is shared by every handler. Per-device stores are derived from
// Storage on each request.
type Deps struct {
	Config  *config.Config
	Storage storage.Storage
	Catalog *catalog.Catalog
	Clock   clock.Clock
	Tokens  *auth.TokenIssuer
	Gateway payment.Gateway
	Media   media.ObjectStore
	Audit   *audit.Dispatcher
	Log     *zap.Logger
}

func (d *Deps) repos(c *gin.Context) *repository.DeviceRepositories {
	return repository.ForDevice(d.Storage, middleware.DeviceID(c))
}

func actorFrom(c *gin.Context) audit.Actor {
	return audit.Actor{
		DeviceID: middleware.DeviceID(c),
		UserID:   middleware.UserID(c),
	}
}

func (d *Deps) bookingView(f *booking.Flow) dto.BookingView {
	shop, _ := d.Catalog.Shop(f.ShopID)
	dates := catalog.AvailableDates(d.Clock.Now(), d.Config.ShopTimezone)
	return dto.NewBookingView(f, shop, dates)
}
