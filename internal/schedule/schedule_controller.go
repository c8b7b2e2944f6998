package schedule

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gegidze/arena/config"
	"github.com/gegidze/arena/internal/middleware"
	"github.com/gegidze/arena/internal/team"
	"github.com/gegidze/arena/pkg/responses"
	"github.com/gin-gonic/gin"
)

// ScheduleController handles schedule and scrim-request HTTP requests.
type ScheduleController struct {
	repo      ScheduleRepository
	teamRepo  team.TeamRepository
	appConfig *config.Config
}

func NewScheduleController(repo ScheduleRepository, teamRepo team.TeamRepository, appConfig *config.Config) *ScheduleController {
	return &ScheduleController{
		repo:      repo,
		teamRepo:  teamRepo,
		appConfig: appConfig,
	}
}

// --- DTOs for requests ---

type CreateScheduleRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"max=1000"`
	Date        string `json:"date" binding:"required"` // RFC 3339
	MapName     string `json:"map_name" binding:"max=100"`
	MaxTeams    int    `json:"max_teams" binding:"required,gte=2"`
}

type ScrimRequestRequest struct {
	TeamID     uint `json:"team_id" binding:"required"`
	ScheduleID uint `json:"schedule_id" binding:"required"`
}

// GetActiveSchedules godoc
// @Summary List active scheduled matches
// @Tags Schedule
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]Schedule}
// @Router /schedules [get]
func (sc *ScheduleController) GetActiveSchedules(c *gin.Context) {
	schedules, err := sc.repo.GetActiveSchedules()
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve schedules")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Schedules retrieved successfully", schedules)
}

// CreateScrimRequest godoc
// @Summary Request to play a scheduled match
// @Description Creates a scrim request for the caller's team. A draft team
// moves to pending on its first successful request.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param body body ScrimRequestRequest true "Team and schedule"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security ApiKeyAuth
// @Router /scrim-request [post]
func (sc *ScheduleController) CreateScrimRequest(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req ScrimRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	// Ownership: the caller must be the leader of the team it acts for.
	t, err := sc.teamRepo.GetTeamByID(req.TeamID)
	if err != nil {
		log.Printf("scrim request: failed to load team %d: %v", req.TeamID, err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if t == nil || t.LeaderID != userID {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Team not found or unauthorized"})
		return
	}

	s, err := sc.repo.GetScheduleByID(req.ScheduleID)
	if err != nil {
		log.Printf("scrim request: failed to load schedule %d: %v", req.ScheduleID, err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if s == nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	existing, err := sc.repo.GetScrimRequest(req.TeamID, req.ScheduleID)
	if err != nil {
		log.Printf("scrim request: duplicate check failed: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if existing != nil {
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "თამაშის მოთხოვნა უკვე გაწერილია"})
		return
	}

	scrimRequest := ScrimRequest{
		TeamID:     req.TeamID,
		ScheduleID: req.ScheduleID,
		Status:     "pending",
	}

	// The request insert and the draft -> pending flip commit together.
	err = sc.repo.WithTransaction(func(repo ScheduleRepository) error {
		if err := repo.CreateScrimRequest(&scrimRequest); err != nil {
			return err
		}
		if team.CanTransition(t.Status, team.StatusPending, false) == nil {
			return repo.SetTeamStatus(t.ID, team.StatusPending)
		}
		return nil
	})
	if err != nil {
		log.Printf("scrim request: transaction failed: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "მოთხოვნა გაიგზავნა ადმინისტრაციისთვის",
		"data":    scrimRequest,
	})
}

// AdminCreateSchedule godoc
// @Summary Create a scheduled match (admin)
// @Tags Admin
// @Accept json
// @Produce json
// @Param body body CreateScheduleRequest true "Schedule data"
// @Success 201 {object} responses.SuccessResponse{data=Schedule}
// @Failure 400 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/schedules [post]
func (sc *ScheduleController) AdminCreateSchedule(c *gin.Context) {
	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		responses.BadRequest(c, "Invalid date, expected RFC 3339")
		return
	}

	s := Schedule{
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		MapName:     req.MapName,
		MaxTeams:    req.MaxTeams,
		IsActive:    true,
	}
	if err := sc.repo.CreateSchedule(&s); err != nil {
		responses.InternalServerError(c, "Failed to create schedule")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Schedule created successfully", s)
}

// AdminGetAllSchedules godoc
// @Summary List all schedules including inactive (admin)
// @Tags Admin
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]Schedule}
// @Security ApiKeyAuth
// @Router /admin/schedules [get]
func (sc *ScheduleController) AdminGetAllSchedules(c *gin.Context) {
	schedules, err := sc.repo.GetAllSchedules()
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve schedules")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Schedules retrieved successfully", schedules)
}

// AdminDeleteSchedule godoc
// @Summary Delete a schedule (admin)
// @Tags Admin
// @Produce json
// @Param schedule_id path uint true "Schedule ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/schedules/{schedule_id} [delete]
func (sc *ScheduleController) AdminDeleteSchedule(c *gin.Context) {
	scheduleID, err := strconv.ParseUint(c.Param("schedule_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid schedule ID")
		return
	}

	s, err := sc.repo.GetScheduleByID(uint(scheduleID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve schedule")
		return
	}
	if s == nil {
		responses.NotFound(c, "Schedule")
		return
	}

	if err := sc.repo.DeleteSchedule(s.ID); err != nil {
		responses.InternalServerError(c, "Failed to delete schedule")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Schedule deleted", nil)
}

// AdminGetScrimRequests godoc
// @Summary List pending scrim requests (admin)
// @Tags Admin
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]ScrimRequest}
// @Security ApiKeyAuth
// @Router /admin/scrim-requests [get]
func (sc *ScheduleController) AdminGetScrimRequests(c *gin.Context) {
	reqs, err := sc.repo.GetPendingScrimRequests()
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve scrim requests")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Scrim requests retrieved successfully", reqs)
}
