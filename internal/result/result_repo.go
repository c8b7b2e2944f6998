package result

import (
	"errors"

	"gorm.io/gorm"
)

// ResultRepository defines the interface for result data operations.
type ResultRepository interface {
	CreateResult(r *Result) error
	GetResultByID(id uint) (*Result, error)
	GetAllResults() ([]Result, error)
	DeleteResult(id uint) error
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) CreateResult(res *Result) error {
	return r.db.Create(res).Error
}

func (r *resultRepository) GetResultByID(id uint) (*Result, error) {
	var res Result
	if err := r.db.First(&res, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

func (r *resultRepository) GetAllResults() ([]Result, error) {
	var results []Result
	if err := r.db.Order("created_at desc").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *resultRepository) DeleteResult(id uint) error {
	return r.db.Delete(&Result{}, id).Error
}
