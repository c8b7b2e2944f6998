package team

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gegidze/arena/config"
	"github.com/gegidze/arena/internal/middleware"
	"github.com/gegidze/arena/internal/user"
	"github.com/gegidze/arena/pkg/responses"
	"github.com/gin-gonic/gin"
)

// TeamController handles team-related HTTP requests.
type TeamController struct {
	repo      TeamRepository
	appConfig *config.Config
}

// NewTeamController creates a new team controller.
func NewTeamController(repo TeamRepository, appConfig *config.Config) *TeamController {
	return &TeamController{
		repo:      repo,
		appConfig: appConfig,
	}
}

// --- DTOs for requests ---

type RegisterTeamRequest struct {
	Name         string `json:"team_name" binding:"required,min=2,max=100"`
	Tag          string `json:"team_tag" binding:"required,min=2,max=10"`
	PlayersCount int    `json:"players_count" binding:"required,gte=1,lte=4"`
	MapsCount    int    `json:"maps_count" binding:"required,gte=1,lte=5"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateSlotRequest struct {
	SlotNumber *int `json:"slot_number" binding:"omitempty,gte=1"`
}

// RegisterTeam godoc
// @Summary Register a new team
// @Description Creates a team in draft status and promotes the caller to leader.
// @Tags Teams
// @Accept json
// @Produce json
// @Param team body RegisterTeamRequest true "Team registration data"
// @Success 201 {object} responses.SuccessResponse{data=Team}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 401 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /teams [post]
func (tc *TeamController) RegisterTeam(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	var req RegisterTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	existing, err := tc.repo.GetNewestTeamByLeaderID(userID)
	if err != nil {
		responses.InternalServerError(c, "")
		return
	}
	if existing != nil {
		responses.Conflict(c, "You already lead a registered team")
		return
	}

	byName, err := tc.repo.GetTeamByName(req.Name)
	if err != nil {
		responses.InternalServerError(c, "")
		return
	}
	if byName != nil {
		responses.Conflict(c, "Team name already exists")
		return
	}

	t := Team{
		Name:         req.Name,
		Tag:          req.Tag,
		LeaderID:     userID,
		Status:       StatusDraft,
		PlayersCount: req.PlayersCount,
		MapsCount:    req.MapsCount,
	}

	// Team creation and the leader role promotion commit together.
	err = tc.repo.WithTransaction(func(repo TeamRepository) error {
		if err := repo.CreateTeam(&t); err != nil {
			return err
		}
		return repo.SetUserRole(userID, user.RoleLeader)
	})
	if err != nil {
		responses.InternalServerError(c, "Failed to register team")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Team registered successfully", t)
}

// GetMyTeam godoc
// @Summary Get the caller's newest registered team
// @Tags Teams
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=Team}
// @Failure 401 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /teams/mine [get]
func (tc *TeamController) GetMyTeam(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	t, err := tc.repo.GetNewestTeamByLeaderID(userID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve team")
		return
	}
	if t == nil {
		responses.NotFound(c, "Team")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team retrieved successfully", t)
}

// GetAllTeams godoc
// @Summary List all teams
// @Description Public team list, VIP teams first, then newest.
// @Tags Teams
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]Team}
// @Router /teams [get]
func (tc *TeamController) GetAllTeams(c *gin.Context) {
	teams, err := tc.repo.GetAllTeams()
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve teams")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Teams retrieved successfully", teams)
}

// AdminGetAllTeams godoc
// @Summary List all teams with pagination (admin)
// @Tags Admin
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} responses.PaginatedResponse{data=[]Team}
// @Security ApiKeyAuth
// @Router /admin/teams [get]
func (tc *TeamController) AdminGetAllTeams(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	teams, total, err := tc.repo.GetAllTeamsAdmin(page, limit)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve teams")
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", teams, total, page, limit)
}

// AdminUpdateStatus godoc
// @Summary Change a team's lifecycle status (admin)
// @Tags Admin
// @Accept json
// @Produce json
// @Param team_id path uint true "Team ID"
// @Param body body UpdateStatusRequest true "Target status"
// @Success 200 {object} responses.SuccessResponse{data=Team}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/teams/{team_id}/status [patch]
func (tc *TeamController) AdminUpdateStatus(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid team ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}
	if !IsValidStatus(req.Status) {
		responses.BadRequest(c, "Unknown status: "+req.Status)
		return
	}

	t, err := tc.repo.GetTeamByID(uint(teamID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve team")
		return
	}
	if t == nil {
		responses.NotFound(c, "Team")
		return
	}

	if err := CanTransition(t.Status, req.Status, true); err != nil {
		if errors.Is(err, ErrAdminOnly) {
			responses.Forbidden(c, "")
			return
		}
		responses.BadRequest(c, "Cannot move team from "+t.Status+" to "+req.Status)
		return
	}

	if err := tc.repo.UpdateStatus(t.ID, req.Status); err != nil {
		responses.InternalServerError(c, "Failed to update status")
		return
	}
	t.Status = req.Status
	responses.SendSuccess(c, http.StatusOK, "Team status updated", t)
}

// AdminToggleVip godoc
// @Summary Toggle a team's VIP flag (admin)
// @Description The VIP team flag is independent of lifecycle status.
// @Tags Admin
// @Produce json
// @Param team_id path uint true "Team ID"
// @Success 200 {object} responses.SuccessResponse{data=Team}
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/teams/{team_id}/vip-toggle [post]
func (tc *TeamController) AdminToggleVip(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid team ID")
		return
	}

	t, err := tc.repo.GetTeamByID(uint(teamID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve team")
		return
	}
	if t == nil {
		responses.NotFound(c, "Team")
		return
	}

	if err := tc.repo.SetVip(t.ID, !t.IsVip); err != nil {
		responses.InternalServerError(c, "Failed to update VIP flag")
		return
	}
	t.IsVip = !t.IsVip
	responses.SendSuccess(c, http.StatusOK, "Team VIP flag updated", t)
}

// AdminSetSlot godoc
// @Summary Assign or clear a team's slot number (admin)
// @Tags Admin
// @Accept json
// @Produce json
// @Param team_id path uint true "Team ID"
// @Param body body UpdateSlotRequest true "Slot number (null clears)"
// @Success 200 {object} responses.SuccessResponse{data=Team}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/teams/{team_id}/slot [patch]
func (tc *TeamController) AdminSetSlot(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid team ID")
		return
	}

	var req UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	t, err := tc.repo.GetTeamByID(uint(teamID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve team")
		return
	}
	if t == nil {
		responses.NotFound(c, "Team")
		return
	}

	if err := tc.repo.SetSlot(t.ID, req.SlotNumber); err != nil {
		responses.InternalServerError(c, "Failed to update slot")
		return
	}
	t.SlotNumber = req.SlotNumber
	responses.SendSuccess(c, http.StatusOK, "Team slot updated", t)
}

// AdminDeleteTeam godoc
// @Summary Delete a team (admin)
// @Description Removes the team and its scrim requests and resets the former
// leader's role to guest. The role reset only commits if the delete does.
// @Tags Admin
// @Produce json
// @Param team_id path uint true "Team ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/teams/{team_id} [delete]
func (tc *TeamController) AdminDeleteTeam(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid team ID")
		return
	}

	t, err := tc.repo.GetTeamByID(uint(teamID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve team")
		return
	}
	if t == nil {
		responses.NotFound(c, "Team")
		return
	}

	err = tc.repo.WithTransaction(func(repo TeamRepository) error {
		if err := repo.DeleteScrimRequestsByTeamID(t.ID); err != nil {
			return err
		}
		if err := repo.DeleteTeam(t.ID); err != nil {
			return err
		}
		return repo.SetUserRole(t.LeaderID, user.RoleGuest)
	})
	if err != nil {
		responses.InternalServerError(c, "Failed to delete team")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Team deleted", nil)
}
