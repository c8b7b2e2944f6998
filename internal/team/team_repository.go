package team

import (
	"errors"

	"github.com/gegidze/arena/internal/user"
	"gorm.io/gorm"
)

// TeamRepository defines the interface for team data operations.
type TeamRepository interface {
	CreateTeam(t *Team) error
	GetTeamByID(id uint) (*Team, error)
	GetTeamByName(name string) (*Team, error)
	GetNewestTeamByLeaderID(leaderID uint) (*Team, error)
	GetAllTeams() ([]Team, error)
	GetAllTeamsAdmin(page, limit int) ([]Team, int64, error)
	UpdateStatus(teamID uint, status string) error
	SetVip(teamID uint, vip bool) error
	SetSlot(teamID uint, slot *int) error
	DeleteTeam(teamID uint) error
	DeleteScrimRequestsByTeamID(teamID uint) error
	SetUserRole(userID uint, role string) error
	CountByStatus(status string) (int64, error)
	WithTransaction(txFunc func(TeamRepository) error) error
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new instance of TeamRepository.
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) CreateTeam(t *Team) error {
	return r.db.Create(t).Error
}

func (r *teamRepository) GetTeamByID(id uint) (*Team, error) {
	var t Team
	if err := r.db.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *teamRepository) GetTeamByName(name string) (*Team, error) {
	var t Team
	if err := r.db.Where("name = ?", name).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// GetNewestTeamByLeaderID surfaces only the most recently registered team,
// latest-wins, which is how every page reads a leader's team.
func (r *teamRepository) GetNewestTeamByLeaderID(leaderID uint) (*Team, error) {
	var t Team
	err := r.db.Where("leader_id = ?", leaderID).
		Order("created_at desc").
		Limit(1).
		First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// GetAllTeams lists teams for the public page: VIP teams first, then newest.
func (r *teamRepository) GetAllTeams() ([]Team, error) {
	var teams []Team
	err := r.db.Preload("Leader").
		Order("is_vip desc").
		Order("created_at desc").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *teamRepository) GetAllTeamsAdmin(page, limit int) ([]Team, int64, error) {
	var teams []Team
	var total int64

	query := r.db.Model(&Team{}).Preload("Leader")
	query.Count(&total)

	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("created_at desc").Find(&teams).Error; err != nil {
		return nil, 0, err
	}
	return teams, total, nil
}

func (r *teamRepository) UpdateStatus(teamID uint, status string) error {
	return r.db.Model(&Team{}).Where("id = ?", teamID).Update("status", status).Error
}

func (r *teamRepository) SetVip(teamID uint, vip bool) error {
	return r.db.Model(&Team{}).Where("id = ?", teamID).Update("is_vip", vip).Error
}

func (r *teamRepository) SetSlot(teamID uint, slot *int) error {
	return r.db.Model(&Team{}).Where("id = ?", teamID).Update("slot_number", slot).Error
}

func (r *teamRepository) DeleteTeam(teamID uint) error {
	return r.db.Unscoped().Delete(&Team{}, teamID).Error
}

// DeleteScrimRequestsByTeamID removes the team's scrim requests. Raw table
// reference keeps this package from importing the schedule package.
func (r *teamRepository) DeleteScrimRequestsByTeamID(teamID uint) error {
	return r.db.Exec("DELETE FROM scrim_requests WHERE team_id = ?", teamID).Error
}

func (r *teamRepository) SetUserRole(userID uint, role string) error {
	return r.db.Model(&user.User{}).Where("id = ?", userID).Update("role", role).Error
}

func (r *teamRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&Team{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *teamRepository) WithTransaction(txFunc func(TeamRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return txFunc(&teamRepository{db: tx})
	})
}
