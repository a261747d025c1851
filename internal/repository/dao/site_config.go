package dao

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SiteConfig struct {
	ID    uint   `gorm:"primaryKey"`
	Key   string `gorm:"column:key;size:100;uniqueIndex;not null"`
	Value string `gorm:"type:text"`
}

func (SiteConfig) TableName() string {
	return "site_config"
}

type SiteConfigDAO struct {
	db *gorm.DB
}

func NewSiteConfigDAO(db *gorm.DB) *SiteConfigDAO {
	return &SiteConfigDAO{
		db: db,
	}
}

func (d *SiteConfigDAO) FindAll(ctx context.Context) ([]SiteConfig, error) {
	var configs []SiteConfig

	if err := d.db.WithContext(ctx).Find(&configs).Error; err != nil {
		return nil, err
	}

	return configs, nil
}

// Upsert creates the row for key on first write and overwrites its value
// afterwards.
func (d *SiteConfigDAO) Upsert(ctx context.Context, key, value string) error {
	return d.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&SiteConfig{Key: key, Value: value}).Error
}
