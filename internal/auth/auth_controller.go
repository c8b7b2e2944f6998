package auth

import (
	"net/http"
	"time"

	"github.com/gegidze/arena/config"
	"github.com/gegidze/arena/internal/caseopening"
	"github.com/gegidze/arena/internal/middleware"
	"github.com/gegidze/arena/internal/team"
	"github.com/gegidze/arena/internal/user"
	"github.com/gegidze/arena/pkg/responses"
	"github.com/gegidze/arena/pkg/token"
	"github.com/gegidze/arena/pkg/validator"
	"github.com/gegidze/arena/utils"
	"github.com/gin-gonic/gin"
)

// AuthController handles registration, login and profile requests.
type AuthController struct {
	repo     AuthRepository
	teamRepo team.TeamRepository
	caseRepo caseopening.CaseRepository
	config   *config.Config
}

func NewAuthController(repo AuthRepository, teamRepo team.TeamRepository, caseRepo caseopening.CaseRepository, cfg *config.Config) *AuthController {
	return &AuthController{
		repo:     repo,
		teamRepo: teamRepo,
		caseRepo: caseRepo,
		config:   cfg,
	}
}

// ProfileResponse aggregates the data the profile page shows: the account,
// the caller's newest team (if any) and an active VIP expiry (if any).
type ProfileResponse struct {
	User     *user.User `json:"user"`
	Team     *team.Team `json:"team,omitempty"`
	VipUntil *time.Time `json:"vip_until,omitempty"`
}

// Register godoc
// @Summary Register a new account
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 201 {object} responses.SuccessResponse{data=TokenResponse}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Router /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, validator.ParseError(err))
		return
	}

	existing, err := ac.repo.GetUserByEmail(req.Email)
	if err != nil {
		responses.InternalServerError(c, "")
		return
	}
	if existing != nil {
		responses.Conflict(c, "Email is already registered")
		return
	}

	existing, err = ac.repo.GetUserByUsername(req.Username)
	if err != nil {
		responses.InternalServerError(c, "")
		return
	}
	if existing != nil {
		responses.Conflict(c, "Username is already taken")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		responses.InternalServerError(c, "")
		return
	}

	u := user.User{
		Username:        req.Username,
		Email:           req.Email,
		DiscordUsername: req.DiscordUsername,
		Password:        hash,
		Role:            user.RoleGuest,
	}
	if err := ac.repo.CreateUser(&u); err != nil {
		responses.InternalServerError(c, "Failed to create account")
		return
	}

	accessToken, err := token.GenerateJWT(u.ID, u.Role, ac.config.JWT.Secret, ac.config.JWT.ExpiryHours)
	if err != nil {
		responses.InternalServerError(c, "")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Account created successfully", TokenResponse{AccessToken: accessToken})
}

// Login godoc
// @Summary Log in with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} responses.SuccessResponse{data=TokenResponse}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 401 {object} responses.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, validator.ParseError(err))
		return
	}

	u, err := ac.repo.GetUserByEmail(req.Email)
	if err != nil {
		responses.InternalServerError(c, "")
		return
	}
	if u == nil || !utils.CheckPassword(u.Password, req.Password) {
		responses.Unauthorized(c, "Invalid email or password")
		return
	}

	accessToken, err := token.GenerateJWT(u.ID, u.Role, ac.config.JWT.Secret, ac.config.JWT.ExpiryHours)
	if err != nil {
		responses.InternalServerError(c, "")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Logged in successfully", TokenResponse{AccessToken: accessToken})
}

// GetProfile godoc
// @Summary Get the authenticated user's profile
// @Tags Auth
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=ProfileResponse}
// @Failure 401 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /auth/me [get]
func (ac *AuthController) GetProfile(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	u, err := ac.repo.GetUserByID(userID)
	if err != nil || u == nil {
		responses.InternalServerError(c, "Failed to load profile")
		return
	}

	profile := ProfileResponse{User: u}

	// The newest team, the way the profile page surfaces it.
	t, err := ac.teamRepo.GetNewestTeamByLeaderID(userID)
	if err == nil && t != nil {
		profile.Team = t
	}

	vip, err := ac.caseRepo.GetVipStatus(userID)
	if err == nil && vip != nil && vip.VipUntil.After(time.Now()) {
		profile.VipUntil = &vip.VipUntil
	}

	responses.SendSuccess(c, http.StatusOK, "Profile retrieved successfully", profile)
}
