package systems

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/ghosthand/logger"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

// SavedGameProgress represents the progress data stored on disk
type SavedGameProgress struct {
	LevelIndex int `json:"levelIndex"` // furthest level reached
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for progress storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "ghosthand",
	})
	if err != nil {
		return fmt.Errorf("open save data: %w", err)
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadGameProgress returns the saved progress, or nil when there is none.
func LoadGameProgress() (*SavedGameProgress, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("progress")
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var progress SavedGameProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		return nil, fmt.Errorf("parse progress: %w", err)
	}
	return &progress, nil
}

// SaveProgress records levelIndex if it is further than the saved level.
func SaveProgress(levelIndex int) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	saved, err := LoadGameProgress()
	if err != nil {
		logger.L().Warn("discarding unreadable progress", zap.Error(err))
	}
	if saved != nil && saved.LevelIndex >= levelIndex {
		return nil
	}

	data, err := json.Marshal(&SavedGameProgress{LevelIndex: levelIndex})
	if err != nil {
		return fmt.Errorf("serialize progress: %w", err)
	}
	if err := gdataManager.SaveItem("progress", data); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// ClearGameProgress removes any saved game progress
func ClearGameProgress() error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}
	// Save empty data to clear the progress
	if err := gdataManager.SaveItem("progress", nil); err != nil {
		return fmt.Errorf("clear progress: %w", err)
	}
	return nil
}
