package caseopening

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CaseRepository defines the interface for case-opening data operations.
type CaseRepository interface {
	GetLatestOpening(userID uint) (*CaseOpening, error)
	CreateOpening(o *CaseOpening) error
	GetVipStatus(userID uint) (*UserVipStatus, error)
	UpsertVipStatus(s *UserVipStatus) error
	WithTransaction(txFunc func(CaseRepository) error) error
}

type caseRepository struct {
	db *gorm.DB
}

// NewCaseRepository creates a new instance of CaseRepository.
func NewCaseRepository(db *gorm.DB) CaseRepository {
	return &caseRepository{db: db}
}

func (r *caseRepository) GetLatestOpening(userID uint) (*CaseOpening, error) {
	var o CaseOpening
	err := r.db.Where("user_id = ?", userID).
		Order("opened_at desc").
		Limit(1).
		First(&o).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *caseRepository) CreateOpening(o *CaseOpening) error {
	return r.db.Create(o).Error
}

func (r *caseRepository) GetVipStatus(userID uint) (*UserVipStatus, error) {
	var s UserVipStatus
	if err := r.db.Where("user_id = ?", userID).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *caseRepository) UpsertVipStatus(s *UserVipStatus) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"vip_until", "updated_at"}),
	}).Create(s).Error
}

func (r *caseRepository) WithTransaction(txFunc func(CaseRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return txFunc(&caseRepository{db: tx})
	})
}
