package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"links-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreLoadMissingFileReturnsSeed(t *testing.T) {
	fs, err := NewFileStore(filepath.Join(t.TempDir(), "data", "links.json"))
	require.NoError(t, err)

	data, err := fs.Load()
	require.NoError(t, err)

	seed := DefaultSeed()
	assert.Len(t, data.Categories, len(seed.Categories))
	assert.Len(t, data.Links, len(seed.Links))
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "links.json")
	fs, err := NewFileStore(path)
	require.NoError(t, err)

	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	original := &models.AppData{
		Links: []models.Link{
			{ID: "l1", Name: "Figma", URL: "https://figma.com", CategoryID: "c1", Tags: []string{"ui"}, CreatedAt: now, UpdatedAt: now},
		},
		Categories:    []models.Category{{ID: "c1", Name: "设计", CreatedAt: now}},
		Subcategories: []models.Subcategory{},
		Groups:        []models.Group{},
		ClickRecords:  []models.ClickRecord{},
	}

	require.NoError(t, fs.Save(original))

	loaded, err := fs.Load()
	require.NoError(t, err)
	assert.Equal(t, original, loaded)

	// 临时文件不应残留
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFileStoreLoadCorruptFileFallsBackToSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "links.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))

	fs, err := NewFileStore(path)
	require.NoError(t, err)

	data, err := fs.Load()
	require.NoError(t, err)
	assert.NotEmpty(t, data.Categories)
}
