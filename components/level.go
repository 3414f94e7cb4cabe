package components

import (
	"github.com/automoto/ghosthand/assets"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Levels     []assets.Level
	LevelIndex int // level currently spawned, -1 before the first load
	Deliveries int // Count collector hits since the last reset

	// A load requested this step, applied by the level system.
	PendingLoad  bool
	PendingIndex int
}

// Current returns the spawned level, or nil before the first load.
func (l *LevelData) Current() *assets.Level {
	if l.LevelIndex < 0 || l.LevelIndex >= len(l.Levels) {
		return nil
	}
	return &l.Levels[l.LevelIndex]
}

// RequestLoad queues a load of level index. The last request in a step wins.
func (l *LevelData) RequestLoad(index int) {
	l.PendingLoad = true
	l.PendingIndex = index
}

var Level = donburi.NewComponentType[LevelData]()
