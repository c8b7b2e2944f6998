package caseopening

import (
	"errors"
	"net/http"
	"time"

	"github.com/gegidze/arena/internal/middleware"
	"github.com/gegidze/arena/pkg/responses"
	"github.com/gin-gonic/gin"
)

// CaseController handles the case-opening HTTP surface.
type CaseController struct {
	engine *Engine
	repo   CaseRepository
}

func NewCaseController(engine *Engine, repo CaseRepository) *CaseController {
	return &CaseController{engine: engine, repo: repo}
}

// StatusResponse is the case-opening page state for the caller.
type StatusResponse struct {
	CanOpen    bool       `json:"can_open"`
	NextOpenAt *time.Time `json:"next_open_at,omitempty"`
	VipUntil   *time.Time `json:"vip_until,omitempty"`
	Rewards    []Reward   `json:"rewards"`
}

// OpenResponse is the committed outcome of a draw.
type OpenResponse struct {
	Reward     Reward     `json:"reward"`
	NextOpenAt time.Time  `json:"next_open_at"`
	VipUntil   *time.Time `json:"vip_until,omitempty"`
}

// GetStatus godoc
// @Summary Get case-opening eligibility and VIP state
// @Tags CaseOpening
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=StatusResponse}
// @Failure 401 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /case/status [get]
func (cc *CaseController) GetStatus(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	canOpen, nextOpenAt, err := cc.engine.CanDraw(userID)
	if err != nil {
		responses.InternalServerError(c, "Failed to check case status")
		return
	}

	resp := StatusResponse{
		CanOpen:    canOpen,
		NextOpenAt: nextOpenAt,
		Rewards:    Rewards,
	}

	vip, err := cc.repo.GetVipStatus(userID)
	if err == nil && vip != nil && vip.VipUntil.After(time.Now()) {
		resp.VipUntil = &vip.VipUntil
	}

	responses.SendSuccess(c, http.StatusOK, "Case status retrieved", resp)
}

// OpenCase godoc
// @Summary Open a case and draw a reward
// @Description Eligibility is re-verified server-side before the draw commits.
// @Tags CaseOpening
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=OpenResponse}
// @Failure 401 {object} responses.ErrorResponse
// @Failure 403 {object} responses.ErrorResponse "Cooldown still active"
// @Security ApiKeyAuth
// @Router /case/open [post]
func (cc *CaseController) OpenCase(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	reward, err := cc.engine.Open(userID)
	if err != nil {
		var cooldown *CooldownError
		if errors.As(err, &cooldown) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"status":       "error",
				"message":      "Case-ის გახსნა შესაძლებელია 2 კვირაში ერთხელ",
				"next_open_at": cooldown.NextOpenAt,
			})
			return
		}
		responses.InternalServerError(c, "Failed to open case")
		return
	}

	resp := OpenResponse{
		Reward:     reward,
		NextOpenAt: time.Now().Add(OpenCooldown),
	}

	if reward.Days > 0 {
		vip, err := cc.repo.GetVipStatus(userID)
		if err == nil && vip != nil {
			resp.VipUntil = &vip.VipUntil
		}
	}

	responses.SendSuccess(c, http.StatusOK, "მოგებული ჯილდო: "+reward.Name, resp)
}
