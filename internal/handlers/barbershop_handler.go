package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/catalog"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type BarbershopHandler struct {
	deps *Deps
}

func NewBarbershopHandler(d *Deps) *BarbershopHandler {
	return &BarbershopHandler{deps: d}
}

// ListShops backs the home screen: text search only.
func (h *BarbershopHandler) ListShops(c *gin.Context) {
	from, ok := parseOrigin(c)
	if !ok {
		return
	}

	httpresp.List(c, h.deps.Catalog.Shops(c.Query("q"), from))
}

func (h *BarbershopHandler) Explore(c *gin.Context) {
	f := catalog.DefaultFilter()
	f.Query = c.Query("q")

	if v := c.Query("max_distance"); v != "" {
		d, err := strconv.ParseFloat(v, 64)
		if err != nil || d < 0 {
			httperr.BadRequest(c, "invalid_max_distance", "max_distance must be a positive number")
			return
		}
		f.MaxDistanceKm = d
	}

	if v := c.Query("min_rating"); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil || r < 0 || r > 5 {
			httperr.BadRequest(c, "invalid_min_rating", "min_rating must be between 0 and 5")
			return
		}
		f.MinRating = r
	}

	cat, ok := catalog.ParseCategory(c.Query("category"))
	if !ok {
		httperr.BadRequest(c, "invalid_category", "Unknown category")
		return
	}
	f.Category = cat

	from, ok := parseOrigin(c)
	if !ok {
		return
	}
	f.From = from

	httpresp.List(c, h.deps.Catalog.Explore(f))
}

func (h *BarbershopHandler) GetShop(c *gin.Context) {
	shop, ok := h.deps.Catalog.Shop(c.Param("id"))
	if !ok {
		httperr.NotFound(c, "shop_not_found", "Barbershop not found")
		return
	}

	c.JSON(http.StatusOK, shop)
}

// parseOrigin reads the optional lat/lng pair. Both must be present.
func parseOrigin(c *gin.Context) (*models.Coordinates, bool) {
	latStr, lngStr := c.Query("lat"), c.Query("lng")
	if latStr == "" && lngStr == "" {
		return nil, true
	}

	lat, errLat := strconv.ParseFloat(latStr, 64)
	lng, errLng := strconv.ParseFloat(lngStr, 64)
	if errLat != nil || errLng != nil || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		httperr.BadRequest(c, "invalid_coordinates", "lat and lng must be given together as valid coordinates")
		return nil, false
	}

	return &models.Coordinates{Lat: lat, Lng: lng}, true
}
