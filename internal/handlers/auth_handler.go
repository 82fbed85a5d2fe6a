package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/usecase/session"
)

type AuthHandler struct {
	deps *Deps
}

func NewAuthHandler(d *Deps) *AuthHandler {
	return &AuthHandler{deps: d}
}

// --------- Requests ---------

// Blank fields are rejected by the use cases so the messages match the
// sign-in screens.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

type SessionResponse struct {
	User      *models.User `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	repos := h.deps.repos(c)
	uc := session.NewLogin(repos.Users, h.deps.Clock, h.deps.Config.SessionDelay, h.deps.Audit)

	u, err := uc.Execute(c.Request.Context(), actorFrom(c), req.Email, req.Password)
	if err != nil {
		respondError(c, h.deps.Log, err)
		return
	}

	h.issue(c, http.StatusOK, u)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	repos := h.deps.repos(c)
	uc := session.NewRegister(repos.Users, h.deps.Clock, h.deps.Config.SessionDelay, h.deps.Audit)

	u, err := uc.Execute(c.Request.Context(), actorFrom(c), session.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		respondError(c, h.deps.Log, err)
		return
	}

	h.issue(c, http.StatusCreated, u)
}

func (h *AuthHandler) Guest(c *gin.Context) {
	repos := h.deps.repos(c)
	uc := session.NewContinueAsGuest(repos.Users, h.deps.Clock, h.deps.Audit)

	u, err := uc.Execute(c.Request.Context(), actorFrom(c))
	if err != nil {
		respondError(c, h.deps.Log, err)
		return
	}

	h.issue(c, http.StatusOK, u)
}

// Logout needs no token. Tokens already issued stay valid until they expire
// but find no user behind them.
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := c.Request.Context()
	repos := h.deps.repos(c)

	actor := actorFrom(c)
	if u, err := repos.Users.Current(ctx); err == nil && u != nil {
		actor.UserID = u.ID
	}

	if err := session.NewLogout(repos.Users, h.deps.Audit).Execute(ctx, actor); err != nil {
		respondError(c, h.deps.Log, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) issue(c *gin.Context, status int, u *models.User) {
	token, exp, err := h.deps.Tokens.Issue(middleware.DeviceID(c), u)
	if err != nil {
		respondError(c, h.deps.Log, err)
		return
	}

	c.JSON(status, SessionResponse{
		User:      u,
		Token:     token,
		ExpiresAt: exp,
	})
}
