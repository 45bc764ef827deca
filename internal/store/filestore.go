package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"links-backend/internal/models"

	"github.com/sirupsen/logrus"
)

// FileStore 把快照保存为单个 JSON 文件
type FileStore struct {
	path string
}

func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("创建数据目录失败: %w", err)
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Load() (*models.AppData, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSeed(), nil
		}
		return nil, fmt.Errorf("读取数据文件失败: %w", err)
	}

	var data models.AppData
	if err := json.Unmarshal(raw, &data); err != nil {
		// 文件损坏时退回示例数据，不让服务起不来
		logrus.WithError(err).Warn("数据文件解析失败，使用初始数据")
		return DefaultSeed(), nil
	}

	return &data, nil
}

func (s *FileStore) Save(data *models.AppData) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}

	// 先写临时文件再重命名，避免写一半留下坏文件
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return fmt.Errorf("写入数据文件失败: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("替换数据文件失败: %w", err)
	}

	return nil
}
