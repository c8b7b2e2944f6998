package setting

import (
	"net/http"
	"strconv"

	"github.com/gegidze/arena/internal/middleware"
	"github.com/gegidze/arena/internal/team"
	"github.com/gegidze/arena/pkg/responses"
	"github.com/gin-gonic/gin"
)

// SettingController handles site settings and the room-info page.
type SettingController struct {
	repo     SettingRepository
	teamRepo team.TeamRepository
}

func NewSettingController(repo SettingRepository, teamRepo team.TeamRepository) *SettingController {
	return &SettingController{repo: repo, teamRepo: teamRepo}
}

type UpdateSettingRequest struct {
	Value string `json:"value"`
}

// RoomInfoResponse is the match join information shown to approved leaders.
type RoomInfoResponse struct {
	RoomID       string `json:"room_id"`
	RoomPassword string `json:"room_password"`
	StartTime    string `json:"start_time"`
	Map          string `json:"map"`
}

// GetRoomInfo godoc
// @Summary Get room credentials for the upcoming match
// @Description Only the leader of an approved team may read room info.
// @Tags Settings
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=RoomInfoResponse}
// @Failure 401 {object} responses.ErrorResponse
// @Failure 403 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /room-info [get]
func (sc *SettingController) GetRoomInfo(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	t, err := sc.teamRepo.GetNewestTeamByLeaderID(userID)
	if err != nil {
		responses.InternalServerError(c, "Failed to check team status")
		return
	}
	if t == nil || t.Status != team.StatusApproved {
		responses.Forbidden(c, "Room info is available to approved teams only")
		return
	}

	settings, err := sc.repo.GetSettingsByKeys(RoomInfoKeys)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve room info")
		return
	}

	info := RoomInfoResponse{}
	for _, s := range settings {
		switch s.Key {
		case "room_id":
			info.RoomID = s.Value
		case "room_password":
			info.RoomPassword = s.Value
		case "start_time":
			info.StartTime = s.Value
		case "map":
			info.Map = s.Value
		}
	}

	responses.SendSuccess(c, http.StatusOK, "Room info retrieved successfully", info)
}

// AdminGetSettings godoc
// @Summary List all site settings (admin)
// @Tags Admin
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]SiteSetting}
// @Security ApiKeyAuth
// @Router /admin/settings [get]
func (sc *SettingController) AdminGetSettings(c *gin.Context) {
	settings, err := sc.repo.GetAllSettings()
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve settings")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Settings retrieved successfully", settings)
}

// AdminUpdateSetting godoc
// @Summary Update a site setting's value (admin)
// @Tags Admin
// @Accept json
// @Produce json
// @Param setting_id path uint true "Setting ID"
// @Param body body UpdateSettingRequest true "New value"
// @Success 200 {object} responses.SuccessResponse{data=SiteSetting}
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/settings/{setting_id} [put]
func (sc *SettingController) AdminUpdateSetting(c *gin.Context) {
	settingID, err := strconv.ParseUint(c.Param("setting_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid setting ID")
		return
	}

	var req UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	s, err := sc.repo.GetSettingByID(uint(settingID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve setting")
		return
	}
	if s == nil {
		responses.NotFound(c, "Setting")
		return
	}

	if err := sc.repo.UpdateValue(s.ID, req.Value); err != nil {
		responses.InternalServerError(c, "Failed to update setting")
		return
	}
	s.Value = req.Value
	responses.SendSuccess(c, http.StatusOK, "Setting updated successfully", s)
}
