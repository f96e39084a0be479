package systems

import (
	"os"
	"testing"

	cfg "github.com/sleepysdevin/demolition-mp/config"
	"github.com/sleepysdevin/demolition-mp/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestMain(m *testing.M) {
	// Headless: no render backend is available under test.
	cfg.C.Visuals = false
	os.Exit(m.Run())
}

// newTestECS builds a world with the singletons and a flat 40x30 floor.
func newTestECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateTime(e)
	factory.CreateDemolition(e)
	factory.CreateSpace(e, 40, 30)
	factory.CreateGround(e, 0, 0, 40, 30, 0)
	return e
}
