// internal/component/enemy.go
package component

// LifeState is the enemy life cycle: Alive -> Dying -> Dead, never backwards.
type LifeState int

const (
	Alive LifeState = iota
	Dying
	Dead
)

func (s LifeState) String() string {
	switch s {
	case Alive:
		return "alive"
	case Dying:
		return "dying"
	case Dead:
		return "dead"
	}
	return "unknown"
}

// Enemy is a mobile combatant steering toward the target point.
type Enemy struct {
	DefID             string
	Speed             float64 // constant for the enemy's lifetime
	OrientationOffset float64
	Orientation       float64 // radians, for renderers only
	State             LifeState
	ExitDuration      float64 // 0 waits for an external CompleteDeath
	ExitTimer         float64 // counts down while Dying
	// JustSpawned holds the enemy on its spawn point for the tick it was created in.
	JustSpawned bool
}
