// admin/controller.go
package admin

import (
	"net/http"

	"github.com/gegidze/arena/internal/schedule"
	"github.com/gegidze/arena/internal/team"
	"github.com/gegidze/arena/pkg/responses"
	"github.com/gin-gonic/gin"
)

// AdminController serves the admin dashboard aggregates.
type AdminController struct {
	teamRepo     team.TeamRepository
	scheduleRepo schedule.ScheduleRepository
}

func NewAdminController(teamRepo team.TeamRepository, scheduleRepo schedule.ScheduleRepository) *AdminController {
	return &AdminController{teamRepo: teamRepo, scheduleRepo: scheduleRepo}
}

// StatsResponse is the admin landing-page summary.
type StatsResponse struct {
	TeamsByStatus        map[string]int64 `json:"teams_by_status"`
	Schedules            int64            `json:"schedules"`
	PendingScrimRequests int64            `json:"pending_scrim_requests"`
}

// GetStats godoc
// @Summary Admin dashboard counters
// @Tags Admin
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=StatsResponse}
// @Security ApiKeyAuth
// @Router /admin/stats [get]
func (ac *AdminController) GetStats(c *gin.Context) {
	stats := StatsResponse{TeamsByStatus: make(map[string]int64)}

	for _, status := range []string{
		team.StatusDraft, team.StatusPending, team.StatusApproved,
		team.StatusRejected, team.StatusBlocked,
	} {
		count, err := ac.teamRepo.CountByStatus(status)
		if err != nil {
			responses.InternalServerError(c, "Failed to compute stats")
			return
		}
		stats.TeamsByStatus[status] = count
	}

	schedules, err := ac.scheduleRepo.CountSchedules()
	if err != nil {
		responses.InternalServerError(c, "Failed to compute stats")
		return
	}
	stats.Schedules = schedules

	pending, err := ac.scheduleRepo.CountPendingScrimRequests()
	if err != nil {
		responses.InternalServerError(c, "Failed to compute stats")
		return
	}
	stats.PendingScrimRequests = pending

	responses.SendSuccess(c, http.StatusOK, "Stats retrieved successfully", stats)
}
