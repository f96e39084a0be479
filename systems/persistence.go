package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
	"github.com/sleepysdevin/demolition-mp/components"
	cfg "github.com/sleepysdevin/demolition-mp/config"
	"github.com/yohamta/donburi/ecs"
)

var gdataManager *gdata.Manager
var gdataInitialized bool

// saveInterval is how many ticks pass between dirty-stat flushes.
const saveInterval = 10 * cfg.TickRate

var ticksSinceSave int

// InitPersistence initializes the gdata manager for stats storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "demolition",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadStats loads saved session counters from disk. Returns nil when there
// is nothing saved yet.
func LoadStats() (*components.Stats, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("demolition_stats")
	if err != nil {
		log.Printf("Warning: Could not load stats: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var stats components.Stats
	if err := json.Unmarshal(data, &stats); err != nil {
		log.Printf("Warning: Could not parse saved stats: %v", err)
		return nil, err
	}
	if stats.PropsDestroyed == nil {
		stats.PropsDestroyed = make(map[components.Category]int)
	}

	return &stats, nil
}

// SaveStats saves session counters to disk
func SaveStats(s *components.Stats) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize stats: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("demolition_stats", data); err != nil {
		log.Printf("Warning: Could not save stats: %v", err)
		return err
	}
	return nil
}

// UpdatePersistence flushes dirty stats on a coarse interval so destruction
// bursts never pay disk latency per frame.
func UpdatePersistence(e *ecs.ECS) {
	ticksSinceSave++
	if ticksSinceSave < saveInterval {
		return
	}
	ticksSinceSave = 0

	demo := components.MustDemolition(e.World)
	if !demo.StatsDirty {
		return
	}
	if err := SaveStats(&demo.Stats); err == nil {
		demo.StatsDirty = false
	}
}
