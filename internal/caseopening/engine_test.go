package caseopening

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCaseRepo struct {
	latest    *CaseOpening
	vip       *UserVipStatus
	openings  []CaseOpening
	createErr error
	upsertErr error
}

func (f *fakeCaseRepo) GetLatestOpening(userID uint) (*CaseOpening, error) {
	return f.latest, nil
}

func (f *fakeCaseRepo) CreateOpening(o *CaseOpening) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.openings = append(f.openings, *o)
	return nil
}

func (f *fakeCaseRepo) GetVipStatus(userID uint) (*UserVipStatus, error) {
	return f.vip, nil
}

func (f *fakeCaseRepo) UpsertVipStatus(s *UserVipStatus) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.vip = s
	return nil
}

func (f *fakeCaseRepo) WithTransaction(txFunc func(CaseRepository) error) error {
	// The fake has no rollback; tests that exercise failures make the
	// first write fail so nothing is mutated afterwards.
	return txFunc(f)
}

func newTestEngine(repo CaseRepository, at time.Time, roll float64) *Engine {
	e := NewEngine(repo)
	e.now = func() time.Time { return at }
	e.roll = func() float64 { return roll }
	return e
}

func TestRewardWeightsSumTo100(t *testing.T) {
	total := 0.0
	for _, r := range Rewards {
		total += r.Probability
	}
	assert.Equal(t, 100.0, total)
}

func TestDrawBoundaries(t *testing.T) {
	now := time.Now()
	tests := []struct {
		roll float64
		want string
	}{
		{0, "nothing"},
		{10, "nothing"},
		{10.01, "vip_1_day"},
		{50, "vip_1_day"},
		{50.01, "vip_3_days"},
		{85, "vip_3_days"},
		{85.01, "vip_1_week"},
		{99.99, "vip_1_week"},
	}
	for _, tc := range tests {
		e := newTestEngine(&fakeCaseRepo{}, now, tc.roll)
		assert.Equal(t, tc.want, e.Draw().ID, "roll %v", tc.roll)
	}
}

func TestDrawFrequencies(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	e := NewEngine(&fakeCaseRepo{})
	e.roll = func() float64 { return rng.Float64() * 100 }

	const trials = 100000
	counts := map[string]int{}
	for i := 0; i < trials; i++ {
		counts[e.Draw().ID]++
	}

	for _, r := range Rewards {
		got := float64(counts[r.ID]) / trials * 100
		assert.InDelta(t, r.Probability, got, 1.0, "reward %s", r.ID)
	}
}

func TestCanDrawNoPriorOpening(t *testing.T) {
	e := newTestEngine(&fakeCaseRepo{}, time.Now(), 0)

	ok, next, err := e.CanDraw(7)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Nil(t, next)
}

func TestCanDrawCooldownBoundary(t *testing.T) {
	opened := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakeCaseRepo{latest: &CaseOpening{UserID: 7, Reward: "nothing", OpenedAt: opened}}

	// One second before the window closes the draw is still locked.
	e := newTestEngine(repo, opened.Add(OpenCooldown-time.Second), 0)
	ok, next, err := e.CanDraw(7)
	require.NoError(t, err)
	assert.False(t, ok)
	require.NotNil(t, next)
	assert.True(t, next.Equal(opened.Add(OpenCooldown)))

	// Exactly at the boundary the window is open.
	e = newTestEngine(repo, opened.Add(OpenCooldown), 0)
	ok, next, err = e.CanDraw(7)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Nil(t, next)
}

func TestOpenRejectsInsideCooldown(t *testing.T) {
	opened := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakeCaseRepo{latest: &CaseOpening{UserID: 7, OpenedAt: opened}}
	e := newTestEngine(repo, opened.Add(24*time.Hour), 0)

	_, err := e.Open(7)
	var cdErr *CooldownError
	require.ErrorAs(t, err, &cdErr)
	assert.True(t, cdErr.NextOpenAt.Equal(opened.Add(OpenCooldown)))
	assert.Empty(t, repo.openings)
	assert.Nil(t, repo.vip)
}

func TestOpenGrantsVipWithoutExisting(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakeCaseRepo{}
	e := newTestEngine(repo, now, 60) // lands on vip_3_days

	reward, err := e.Open(7)
	require.NoError(t, err)
	assert.Equal(t, "vip_3_days", reward.ID)

	require.Len(t, repo.openings, 1)
	assert.Equal(t, "vip_3_days", repo.openings[0].Reward)
	require.NotNil(t, repo.vip)
	assert.True(t, repo.vip.VipUntil.Equal(now.Add(3*24*time.Hour)))
}

func TestOpenExtendsActiveVip(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakeCaseRepo{
		vip: &UserVipStatus{UserID: 7, VipUntil: now.Add(2 * 24 * time.Hour)},
	}
	e := newTestEngine(repo, now, 90) // lands on vip_1_week

	_, err := e.Open(7)
	require.NoError(t, err)
	assert.True(t, repo.vip.VipUntil.Equal(now.Add(9*24*time.Hour)))
}

func TestOpenIgnoresExpiredVip(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakeCaseRepo{
		vip: &UserVipStatus{UserID: 7, VipUntil: now.Add(-time.Hour)},
	}
	e := newTestEngine(repo, now, 20) // lands on vip_1_day

	_, err := e.Open(7)
	require.NoError(t, err)
	assert.True(t, repo.vip.VipUntil.Equal(now.Add(24*time.Hour)))
}

func TestOpenNothingLeavesVipUntouched(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	existing := &UserVipStatus{UserID: 7, VipUntil: now.Add(time.Hour)}
	repo := &fakeCaseRepo{vip: existing}
	e := newTestEngine(repo, now, 5) // lands on nothing

	reward, err := e.Open(7)
	require.NoError(t, err)
	assert.Equal(t, "nothing", reward.ID)
	assert.Same(t, existing, repo.vip)
	require.Len(t, repo.openings, 1)
}

func TestOpenFailedLogInsertGrantsNothing(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakeCaseRepo{createErr: errors.New("insert failed")}
	e := newTestEngine(repo, now, 60)

	_, err := e.Open(7)
	require.Error(t, err)
	assert.Empty(t, repo.openings)
	assert.Nil(t, repo.vip)
}
