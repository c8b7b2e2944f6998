package caseopening

import (
	"fmt"
	"math/rand"
	"time"
)

// Reward is one entry of the fixed case-opening table.
type Reward struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Days        int     `json:"days"`
	Probability float64 `json:"probability"`
}

// Rewards is the fixed table. Order matters for display only; the weights
// (which sum to 100) drive the draw.
var Rewards = []Reward{
	{ID: "nothing", Name: "ცარიელი", Description: "იღბალი შემდეგ ჯერზე!", Days: 0, Probability: 10},
	{ID: "vip_1_day", Name: "1 დღიანი VIP", Description: "VIP სტატუსი 24 საათით", Days: 1, Probability: 40},
	{ID: "vip_3_days", Name: "3 დღიანი VIP", Description: "VIP სტატუსი 3 დღით", Days: 3, Probability: 35},
	{ID: "vip_1_week", Name: "1 კვირიანი VIP", Description: "VIP სტატუსი 7 დღით", Days: 7, Probability: 15},
}

// OpenCooldown is how long a user waits between case openings.
const OpenCooldown = 14 * 24 * time.Hour

// CooldownError reports a draw attempt inside the cooldown window.
type CooldownError struct {
	NextOpenAt time.Time
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("case opening on cooldown until %s", e.NextOpenAt.Format(time.RFC3339))
}

// Engine draws rewards and applies their VIP effect. It is the authoritative
// eligibility guard: callers may show a countdown, but the engine re-checks
// against the store immediately before committing a draw.
type Engine struct {
	repo CaseRepository
	now  func() time.Time
	roll func() float64 // uniform in [0, 100)
}

// NewEngine creates an engine backed by the given repository.
func NewEngine(repo CaseRepository) *Engine {
	return &Engine{
		repo: repo,
		now:  time.Now,
		roll: func() float64 { return rand.Float64() * 100 },
	}
}

// CanDraw reports whether the user is out of the cooldown window. When not
// eligible, the returned timestamp is when the next draw unlocks.
func (e *Engine) CanDraw(userID uint) (bool, *time.Time, error) {
	last, err := e.repo.GetLatestOpening(userID)
	if err != nil {
		return false, nil, err
	}
	if last == nil {
		return true, nil, nil
	}

	nextOpenAt := last.OpenedAt.Add(OpenCooldown)
	if e.now().Before(nextOpenAt) {
		return false, &nextOpenAt, nil
	}
	return true, nil, nil
}

// Draw samples one reward from the fixed table by cumulative weight.
func (e *Engine) Draw() Reward {
	x := e.roll()
	cumulative := 0.0
	for _, reward := range Rewards {
		cumulative += reward.Probability
		if x <= cumulative {
			return reward
		}
	}
	// Unreachable while the weights sum to 100.
	return Rewards[0]
}

// Open re-verifies eligibility, draws a reward and commits the opening log
// row together with any VIP extension in a single transaction. A failed log
// insert means the draw never happened: no VIP mutation is committed.
func (e *Engine) Open(userID uint) (Reward, error) {
	ok, nextOpenAt, err := e.CanDraw(userID)
	if err != nil {
		return Reward{}, err
	}
	if !ok {
		return Reward{}, &CooldownError{NextOpenAt: *nextOpenAt}
	}

	reward := e.Draw()
	now := e.now()

	err = e.repo.WithTransaction(func(repo CaseRepository) error {
		opening := &CaseOpening{
			UserID:   userID,
			Reward:   reward.ID,
			OpenedAt: now,
		}
		if err := repo.CreateOpening(opening); err != nil {
			return err
		}

		if reward.Days == 0 {
			return nil
		}

		existing, err := repo.GetVipStatus(userID)
		if err != nil {
			return err
		}

		grant := time.Duration(reward.Days) * 24 * time.Hour
		var newVipUntil time.Time
		if existing != nil && existing.VipUntil.After(now) {
			// Still active: extend the running entitlement.
			newVipUntil = existing.VipUntil.Add(grant)
		} else {
			newVipUntil = now.Add(grant)
		}

		return repo.UpsertVipStatus(&UserVipStatus{
			UserID:   userID,
			VipUntil: newVipUntil,
		})
	})
	if err != nil {
		return Reward{}, err
	}

	return reward, nil
}
