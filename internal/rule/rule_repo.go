package rule

import (
	"errors"

	"gorm.io/gorm"
)

// RuleRepository defines the interface for rule data operations.
type RuleRepository interface {
	CreateRule(r *Rule) error
	GetRuleByID(id uint) (*Rule, error)
	GetAllRules() ([]Rule, error)
	UpdateRule(r *Rule) error
	DeleteRule(id uint) error
}

type ruleRepository struct {
	db *gorm.DB
}

func NewRuleRepository(db *gorm.DB) RuleRepository {
	return &ruleRepository{db: db}
}

func (r *ruleRepository) CreateRule(rule *Rule) error {
	return r.db.Create(rule).Error
}

func (r *ruleRepository) GetRuleByID(id uint) (*Rule, error) {
	var rule Rule
	if err := r.db.First(&rule, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rule, nil
}

func (r *ruleRepository) GetAllRules() ([]Rule, error) {
	var rules []Rule
	if err := r.db.Order("order_number asc").Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *ruleRepository) UpdateRule(rule *Rule) error {
	return r.db.Save(rule).Error
}

func (r *ruleRepository) DeleteRule(id uint) error {
	return r.db.Delete(&Rule{}, id).Error
}
