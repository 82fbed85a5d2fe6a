package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/session"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/media"
	"github.com/BruksfildServices01/barber-booking/internal/usecase/session"
)

type MeHandler struct {
	deps *Deps
}

func NewMeHandler(d *Deps) *MeHandler {
	return &MeHandler{deps: d}
}

type UpdateMeRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Phone  *string `json:"phone"`
	Avatar *string `json:"avatar"`
}

func (h *MeHandler) GetMe(c *gin.Context) {
	repos := h.deps.repos(c)

	u, err := session.NewGetProfile(repos.Users, repos.Rewards).Execute(c.Request.Context())
	if err != nil {
		respondError(c, h.deps.Log, err)
		return
	}

	c.JSON(http.StatusOK, u)
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	repos := h.deps.repos(c)
	uc := session.NewUpdateUser(repos.Users, h.deps.Audit)

	u, ok, err := uc.Execute(c.Request.Context(), actorFrom(c), domain.Patch{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Avatar: req.Avatar,
	})
	if err != nil {
		respondError(c, h.deps.Log, err)
		return
	}
	if !ok {
		// Nothing to update without a signed-in user.
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, u)
}

// UploadAvatar accepts either a multipart form with an "avatar" file or the
// raw image as the request body.
func (h *MeHandler) UploadAvatar(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, media.MaxUploadBytes)

	var image io.Reader = c.Request.Body
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		fh, err := c.FormFile("avatar")
		if err != nil {
			httperr.BadRequest(c, "missing_avatar", "Attach the image as the avatar field")
			return
		}
		f, err := fh.Open()
		if err != nil {
			httperr.BadRequest(c, "missing_avatar", "Attach the image as the avatar field")
			return
		}
		defer f.Close()
		image = f
	}

	repos := h.deps.repos(c)
	uc := session.NewUploadAvatar(repos.Users, h.deps.Media, h.deps.Audit)

	u, err := uc.Execute(c.Request.Context(), actorFrom(c), image)
	if err != nil {
		respondError(c, h.deps.Log, err)
		return
	}

	c.JSON(http.StatusOK, u)
}
