package team

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gegidze/arena/config"
	"github.com/gegidze/arena/internal/middleware"
	"github.com/gegidze/arena/internal/user"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTeamRepo struct {
	teams        map[uint]*Team
	roles        map[uint]string
	scrimsByTeam map[uint]int
	nextID       uint
	deleteErr    error
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{
		teams:        map[uint]*Team{},
		roles:        map[uint]string{},
		scrimsByTeam: map[uint]int{},
		nextID:       1,
	}
}

func (f *fakeTeamRepo) CreateTeam(t *Team) error {
	t.ID = f.nextID
	f.nextID++
	cp := *t
	f.teams[t.ID] = &cp
	return nil
}

func (f *fakeTeamRepo) GetTeamByID(id uint) (*Team, error) {
	return f.teams[id], nil
}

func (f *fakeTeamRepo) GetTeamByName(name string) (*Team, error) {
	for _, t := range f.teams {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeTeamRepo) GetNewestTeamByLeaderID(leaderID uint) (*Team, error) {
	var newest *Team
	for _, t := range f.teams {
		if t.LeaderID != leaderID {
			continue
		}
		if newest == nil || t.ID > newest.ID {
			newest = t
		}
	}
	return newest, nil
}

func (f *fakeTeamRepo) GetAllTeams() ([]Team, error) { return nil, nil }

func (f *fakeTeamRepo) GetAllTeamsAdmin(page, limit int) ([]Team, int64, error) {
	return nil, 0, nil
}

func (f *fakeTeamRepo) UpdateStatus(teamID uint, status string) error {
	f.teams[teamID].Status = status
	return nil
}

func (f *fakeTeamRepo) SetVip(teamID uint, vip bool) error {
	f.teams[teamID].IsVip = vip
	return nil
}

func (f *fakeTeamRepo) SetSlot(teamID uint, slot *int) error {
	f.teams[teamID].SlotNumber = slot
	return nil
}

func (f *fakeTeamRepo) DeleteTeam(teamID uint) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.teams, teamID)
	return nil
}

func (f *fakeTeamRepo) DeleteScrimRequestsByTeamID(teamID uint) error {
	f.scrimsByTeam[teamID] = 0
	return nil
}

func (f *fakeTeamRepo) SetUserRole(userID uint, role string) error {
	f.roles[userID] = role
	return nil
}

func (f *fakeTeamRepo) CountByStatus(status string) (int64, error) {
	var n int64
	for _, t := range f.teams {
		if t.Status == status {
			n++
		}
	}
	return n, nil
}

func (f *fakeTeamRepo) WithTransaction(txFunc func(TeamRepository) error) error {
	// Snapshot-and-restore stands in for a rollback.
	teams := map[uint]*Team{}
	for id, t := range f.teams {
		cp := *t
		teams[id] = &cp
	}
	roles := map[uint]string{}
	for id, r := range f.roles {
		roles[id] = r
	}

	if err := txFunc(f); err != nil {
		f.teams = teams
		f.roles = roles
		return err
	}
	return nil
}

func performJSON(t *testing.T, handler gin.HandlerFunc, method, target string, body interface{}, userID uint, params gin.Params) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, &buf)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params
	if userID != 0 {
		c.Set(middleware.AuthUserIDKey, userID)
	}

	handler(c)
	return w
}

func TestRegisterTeamPromotesLeader(t *testing.T) {
	repo := newFakeTeamRepo()
	repo.roles[5] = user.RoleGuest
	tc := NewTeamController(repo, &config.Config{})

	body := RegisterTeamRequest{Name: "Night Raid", Tag: "NR", PlayersCount: 4, MapsCount: 3}
	w := performJSON(t, tc.RegisterTeam, http.MethodPost, "/api/teams", body, 5, nil)

	assert.Equal(t, http.StatusCreated, w.Code)
	created, _ := repo.GetNewestTeamByLeaderID(5)
	require.NotNil(t, created)
	assert.Equal(t, StatusDraft, created.Status)
	assert.Equal(t, user.RoleLeader, repo.roles[5])
}

func TestRegisterTeamRejectsSecondTeam(t *testing.T) {
	repo := newFakeTeamRepo()
	require.NoError(t, repo.CreateTeam(&Team{Name: "Night Raid", LeaderID: 5, Status: StatusApproved}))
	tc := NewTeamController(repo, &config.Config{})

	body := RegisterTeamRequest{Name: "Second Wind", Tag: "SW", PlayersCount: 4, MapsCount: 3}
	w := performJSON(t, tc.RegisterTeam, http.MethodPost, "/api/teams", body, 5, nil)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Len(t, repo.teams, 1)
}

func TestRegisterTeamRejectsTakenName(t *testing.T) {
	repo := newFakeTeamRepo()
	require.NoError(t, repo.CreateTeam(&Team{Name: "Night Raid", LeaderID: 9}))
	tc := NewTeamController(repo, &config.Config{})

	body := RegisterTeamRequest{Name: "Night Raid", Tag: "NR", PlayersCount: 4, MapsCount: 3}
	w := performJSON(t, tc.RegisterTeam, http.MethodPost, "/api/teams", body, 5, nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterTeamUnauthorized(t *testing.T) {
	tc := NewTeamController(newFakeTeamRepo(), &config.Config{})

	body := RegisterTeamRequest{Name: "Night Raid", Tag: "NR", PlayersCount: 4, MapsCount: 3}
	w := performJSON(t, tc.RegisterTeam, http.MethodPost, "/api/teams", body, 0, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminUpdateStatusRespectsTransitions(t *testing.T) {
	repo := newFakeTeamRepo()
	require.NoError(t, repo.CreateTeam(&Team{Name: "Night Raid", LeaderID: 5, Status: StatusDraft}))
	tc := NewTeamController(repo, &config.Config{})
	params := gin.Params{{Key: "team_id", Value: "1"}}

	// draft -> approved is not a valid admin move.
	w := performJSON(t, tc.AdminUpdateStatus, http.MethodPatch, "/api/admin/teams/1/status",
		UpdateStatusRequest{Status: StatusApproved}, 1, params)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, StatusDraft, repo.teams[1].Status)

	// blocked -> approved is the only way out of a block.
	repo.teams[1].Status = StatusBlocked
	w = performJSON(t, tc.AdminUpdateStatus, http.MethodPatch, "/api/admin/teams/1/status",
		UpdateStatusRequest{Status: StatusApproved}, 1, params)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, StatusApproved, repo.teams[1].Status)
}

func TestAdminDeleteTeamResetsLeaderRole(t *testing.T) {
	repo := newFakeTeamRepo()
	require.NoError(t, repo.CreateTeam(&Team{Name: "Night Raid", LeaderID: 5, Status: StatusApproved}))
	repo.roles[5] = user.RoleLeader
	repo.scrimsByTeam[1] = 2
	tc := NewTeamController(repo, &config.Config{})

	w := performJSON(t, tc.AdminDeleteTeam, http.MethodDelete, "/api/admin/teams/1",
		nil, 1, gin.Params{{Key: "team_id", Value: "1"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, repo.teams)
	assert.Zero(t, repo.scrimsByTeam[1])
	assert.Equal(t, user.RoleGuest, repo.roles[5])
}

func TestAdminDeleteTeamFailureKeepsLeaderRole(t *testing.T) {
	repo := newFakeTeamRepo()
	require.NoError(t, repo.CreateTeam(&Team{Name: "Night Raid", LeaderID: 5, Status: StatusApproved}))
	repo.roles[5] = user.RoleLeader
	repo.deleteErr = errors.New("delete failed")
	tc := NewTeamController(repo, &config.Config{})

	w := performJSON(t, tc.AdminDeleteTeam, http.MethodDelete, "/api/admin/teams/1",
		nil, 1, gin.Params{{Key: "team_id", Value: "1"}})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Len(t, repo.teams, 1)
	assert.Equal(t, user.RoleLeader, repo.roles[5])
}

func TestAdminDeleteTeamNotFound(t *testing.T) {
	tc := NewTeamController(newFakeTeamRepo(), &config.Config{})

	w := performJSON(t, tc.AdminDeleteTeam, http.MethodDelete, "/api/admin/teams/42",
		nil, 1, gin.Params{{Key: "team_id", Value: "42"}})

	assert.Equal(t, http.StatusNotFound, w.Code)
}
