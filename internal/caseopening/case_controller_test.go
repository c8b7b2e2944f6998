package caseopening

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gegidze/arena/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performCase(t *testing.T, handler gin.HandlerFunc, method string, userID uint) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/api/case", nil)
	if userID != 0 {
		c.Set(middleware.AuthUserIDKey, userID)
	}

	handler(c)
	return w
}

func TestGetStatusRequiresAuth(t *testing.T) {
	repo := &fakeCaseRepo{}
	cc := NewCaseController(NewEngine(repo), repo)

	w := performCase(t, cc.GetStatus, http.MethodGet, 0)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetStatusListsRewardTable(t *testing.T) {
	repo := &fakeCaseRepo{}
	cc := NewCaseController(NewEngine(repo), repo)

	w := performCase(t, cc.GetStatus, http.MethodGet, 7)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data StatusResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.CanOpen)
	assert.Nil(t, resp.Data.NextOpenAt)
	assert.Len(t, resp.Data.Rewards, 4)
}

func TestOpenCaseCooldownResponse(t *testing.T) {
	opened := time.Now().Add(-24 * time.Hour)
	repo := &fakeCaseRepo{latest: &CaseOpening{UserID: 7, OpenedAt: opened}}
	cc := NewCaseController(NewEngine(repo), repo)

	w := performCase(t, cc.OpenCase, http.MethodPost, 7)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp["status"])
	assert.Equal(t, "Case-ის გახსნა შესაძლებელია 2 კვირაში ერთხელ", resp["message"])
	assert.NotEmpty(t, resp["next_open_at"])
}

func TestOpenCaseReturnsRewardAndVip(t *testing.T) {
	repo := &fakeCaseRepo{}
	engine := NewEngine(repo)
	engine.roll = func() float64 { return 60 } // vip_3_days
	cc := NewCaseController(engine, repo)

	w := performCase(t, cc.OpenCase, http.MethodPost, 7)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message string       `json:"message"`
		Data    OpenResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "მოგებული ჯილდო: 3 დღიანი VIP", resp.Message)
	assert.Equal(t, "vip_3_days", resp.Data.Reward.ID)
	require.NotNil(t, resp.Data.VipUntil)
	require.Len(t, repo.openings, 1)
}
