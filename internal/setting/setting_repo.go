package setting

import (
	"errors"

	"gorm.io/gorm"
)

// SettingRepository defines the interface for site-setting data operations.
type SettingRepository interface {
	GetAllSettings() ([]SiteSetting, error)
	GetSettingByID(id uint) (*SiteSetting, error)
	GetSettingsByKeys(keys []string) ([]SiteSetting, error)
	UpdateValue(id uint, value string) error
}

type settingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) GetAllSettings() ([]SiteSetting, error) {
	var settings []SiteSetting
	if err := r.db.Order("key asc").Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *settingRepository) GetSettingByID(id uint) (*SiteSetting, error) {
	var s SiteSetting
	if err := r.db.First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *settingRepository) GetSettingsByKeys(keys []string) ([]SiteSetting, error) {
	var settings []SiteSetting
	if err := r.db.Where("key IN ?", keys).Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *settingRepository) UpdateValue(id uint, value string) error {
	return r.db.Model(&SiteSetting{}).Where("id = ?", id).Update("value", value).Error
}
