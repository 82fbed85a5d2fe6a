package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/media"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler serves what needs neither a device nor a session.
type PublicHandler struct {
	deps *Deps
}

func NewPublicHandler(d *Deps) *PublicHandler {
	return &PublicHandler{deps: d}
}

////////////////////////////////////////////////////////
// HEALTH
////////////////////////////////////////////////////////

func (h *PublicHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

////////////////////////////////////////////////////////
// REWARD CATALOG
////////////////////////////////////////////////////////

func (h *PublicHandler) ListRewards(c *gin.Context) {
	httpresp.List(c, h.deps.Catalog.Rewards())
}

////////////////////////////////////////////////////////
// MEDIA
////////////////////////////////////////////////////////

// GetMedia serves uploads kept by the in-memory store. With S3 the URLs
// point at the bucket and this route finds nothing.
func (h *PublicHandler) GetMedia(c *gin.Context) {
	store, ok := h.deps.Media.(*media.MemoryStore)
	if !ok {
		httperr.NotFound(c, "not_found", "Not found")
		return
	}

	obj, ok := store.Get(strings.TrimPrefix(c.Param("key"), "/"))
	if !ok {
		httperr.NotFound(c, "not_found", "Not found")
		return
	}

	c.Header("Cache-Control", "public, max-age=300")
	c.Data(http.StatusOK, obj.ContentType, obj.Data)
}
