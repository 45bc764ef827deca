package database

import (
	"encoding/json"
	"fmt"
	"time"

	"links-backend/internal/models"
	"links-backend/internal/store"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AppBlob 以单行 JSON 的形式保存整个数据快照，
// 键沿用前端 localStorage 时代的 linksManagerData
type AppBlob struct {
	Key       string    `gorm:"primaryKey;size:100"`
	Value     string    `gorm:"type:text"`
	UpdatedAt time.Time
}

// BlobStore 是 store.Store 的 Postgres 实现
type BlobStore struct {
	db *gorm.DB
}

func NewBlobStore(db *gorm.DB) (*BlobStore, error) {
	if err := db.AutoMigrate(&AppBlob{}); err != nil {
		return nil, fmt.Errorf("failed to auto migrate: %w", err)
	}
	return &BlobStore{db: db}, nil
}

func (s *BlobStore) Load() (*models.AppData, error) {
	var blob AppBlob
	if err := s.db.Where("key = ?", store.StorageKey).First(&blob).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return store.DefaultSeed(), nil
		}
		return nil, err
	}

	var data models.AppData
	if err := json.Unmarshal([]byte(blob.Value), &data); err != nil {
		return nil, fmt.Errorf("解析数据快照失败: %w", err)
	}
	return &data, nil
}

func (s *BlobStore) Save(data *models.AppData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}

	blob := AppBlob{Key: store.StorageKey, Value: string(raw), UpdatedAt: time.Now()}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&blob).Error
}
