package schedule

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// ScheduleRepository defines the interface for schedule and scrim-request
// data operations.
type ScheduleRepository interface {
	CreateSchedule(s *Schedule) error
	GetScheduleByID(id uint) (*Schedule, error)
	GetActiveSchedules() ([]Schedule, error)
	GetAllSchedules() ([]Schedule, error)
	CountSchedules() (int64, error)
	DeleteSchedule(id uint) error

	CreateScrimRequest(r *ScrimRequest) error
	GetScrimRequest(teamID, scheduleID uint) (*ScrimRequest, error)
	GetPendingScrimRequests() ([]ScrimRequest, error)
	CountPendingScrimRequests() (int64, error)

	SetTeamStatus(teamID uint, status string) error

	WithTransaction(txFunc func(ScheduleRepository) error) error
}

type scheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository creates a new instance of ScheduleRepository.
func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) CreateSchedule(s *Schedule) error {
	return r.db.Create(s).Error
}

func (r *scheduleRepository) GetScheduleByID(id uint) (*Schedule, error) {
	var s Schedule
	if err := r.db.First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// GetActiveSchedules lists upcoming matches for the public page, soonest first.
func (r *scheduleRepository) GetActiveSchedules() ([]Schedule, error) {
	var schedules []Schedule
	err := r.db.Where("is_active = ?", true).Order("date asc").Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) GetAllSchedules() ([]Schedule, error) {
	var schedules []Schedule
	if err := r.db.Order("date desc").Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) CountSchedules() (int64, error) {
	var count int64
	err := r.db.Model(&Schedule{}).Count(&count).Error
	return count, err
}

func (r *scheduleRepository) DeleteSchedule(id uint) error {
	return r.db.Delete(&Schedule{}, id).Error
}

func (r *scheduleRepository) CreateScrimRequest(req *ScrimRequest) error {
	return r.db.Create(req).Error
}

func (r *scheduleRepository) GetScrimRequest(teamID, scheduleID uint) (*ScrimRequest, error) {
	var req ScrimRequest
	err := r.db.Where("team_id = ? AND schedule_id = ?", teamID, scheduleID).First(&req).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &req, nil
}

func (r *scheduleRepository) GetPendingScrimRequests() ([]ScrimRequest, error) {
	var reqs []ScrimRequest
	err := r.db.Where("status = ?", "pending").Order("created_at desc").Find(&reqs).Error
	if err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *scheduleRepository) CountPendingScrimRequests() (int64, error) {
	var count int64
	err := r.db.Model(&ScrimRequest{}).Where("status = ?", "pending").Count(&count).Error
	return count, err
}

// SetTeamStatus flips a team's status as part of a scrim-request
// transaction. Raw table reference avoids importing the team package.
func (r *scheduleRepository) SetTeamStatus(teamID uint, status string) error {
	return r.db.Table("teams").Where("id = ?", teamID).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}).Error
}

func (r *scheduleRepository) WithTransaction(txFunc func(ScheduleRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return txFunc(&scheduleRepository{db: tx})
	})
}
