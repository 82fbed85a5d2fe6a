package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/usecase/rewards"
)

type RewardsHandler struct {
	deps *Deps
}

func NewRewardsHandler(d *Deps) *RewardsHandler {
	return &RewardsHandler{deps: d}
}

func (h *RewardsHandler) Summary(c *gin.Context) {
	repos := h.deps.repos(c)

	s, err := rewards.NewGetSummary(repos.Rewards, h.deps.Catalog).Execute(c.Request.Context())
	if err != nil {
		respondError(c, h.deps.Log, err)
		return
	}

	httpresp.OK(c, s)
}

func (h *RewardsHandler) Redeem(c *gin.Context) {
	repos := h.deps.repos(c)
	uc := rewards.NewRedeemReward(repos.Rewards, h.deps.Catalog, h.deps.Clock, h.deps.Audit)

	res, err := uc.Execute(c.Request.Context(), actorFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, h.deps.Log, err)
		return
	}

	httpresp.OK(c, res)
}
