package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sleepysdevin/demolition-mp/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ChainBlast is a deferred area-damage application queued by barrel
// destruction. Draining one per frame bounds the cost of clustered
// barrel cascades.
type ChainBlast struct {
	Center gamemath.Vec3
	Radius float64
	Damage float64
}

// ExplosionSlot is one borrowed visual from the explosion pool. Visual
// state must be reset before the slot re-enters the pool.
type ExplosionSlot struct {
	InUse      bool
	Pos        gamemath.Vec3
	FrameIndex int
	Opacity    float64
	Scale      float64
}

// ExplosionPool is the fixed-capacity VFX pool shared by frag explosions
// and barrel flashes.
type ExplosionPool struct {
	Slots []ExplosionSlot
}

func NewExplosionPool(size int) *ExplosionPool {
	return &ExplosionPool{Slots: make([]ExplosionSlot, size)}
}

// Acquire checks out a free slot and returns its index, or -1 when the pool
// is exhausted. A burst of simultaneous explosions degrades visual fidelity
// instead of stalling the frame.
func (p *ExplosionPool) Acquire() int {
	for i := range p.Slots {
		if !p.Slots[i].InUse {
			p.Slots[i] = ExplosionSlot{InUse: true, Opacity: 1, Scale: 1}
			return i
		}
	}
	return -1
}

// Release resets a slot's visual state and returns it to the pool.
func (p *ExplosionPool) Release(i int) {
	if i < 0 || i >= len(p.Slots) {
		return
	}
	p.Slots[i] = ExplosionSlot{}
}

// InUseCount reports how many slots are currently borrowed.
func (p *ExplosionPool) InUseCount() int {
	n := 0
	for i := range p.Slots {
		if p.Slots[i].InUse {
			n++
		}
	}
	return n
}

// Stats are session counters persisted between runs.
type Stats struct {
	PropsDestroyed      map[Category]int `json:"propsDestroyed"`
	GrenadesThrown      int              `json:"grenadesThrown"`
	ChainReactions      int              `json:"chainReactions"`
	BarrelVisualsLeaked int              `json:"barrelVisualsLeaked"`
}

// DemolitionData is the destruction subsystem singleton: the deferred work
// queues, the shared pools and the session stats. One per world, created at
// scene build, never package-level.
type DemolitionData struct {
	// FIFO queues, exactly one pop from each per update
	ChainQueue    []ChainBlast
	DisposalQueue []*ebiten.Image

	Pool *ExplosionPool

	// Shared debris geometry variants: relative fragment sizes reused by
	// every particle; tint comes from the prop category.
	DebrisSizes []float64

	Stats Stats

	StatsDirty bool
}

var Demolition = donburi.NewComponentType[DemolitionData]()

// NewDemolitionData builds the singleton with its pools pre-allocated.
func NewDemolitionData(poolSize, variantCount int) *DemolitionData {
	sizes := make([]float64, variantCount)
	for i := range sizes {
		sizes[i] = 0.25 + 0.15*float64(i)
	}
	return &DemolitionData{
		Pool:        NewExplosionPool(poolSize),
		DebrisSizes: sizes,
		Stats:       Stats{PropsDestroyed: make(map[Category]int)},
	}
}

// MustDemolition fetches the singleton; the scene creates it before any
// system runs.
func MustDemolition(w donburi.World) *DemolitionData {
	entry, ok := Demolition.First(w)
	if !ok {
		panic("demolition singleton missing; scene not built")
	}
	return Demolition.Get(entry)
}
