// internal/app/autopilot.go
package app

import (
	"math"

	"go-point-defense/internal/component"
	"go-point-defense/internal/event"
)

// NearestThreat returns the living enemy closest to the target point.
func (s Snapshot) NearestThreat() (EntitySnapshot, bool) {
	best, found := EntitySnapshot{}, false
	bestDist := math.Inf(1)
	for _, e := range s.Entities {
		if e.State != component.Alive {
			continue
		}
		if d := e.Position.Dist(s.Target); d < bestDist {
			best, bestDist, found = e, d, true
		}
	}
	return best, found
}

// Tally counts notifications by type and projectile outcome.
type Tally struct {
	Spawned  int
	Fired    int
	Deaths   int
	Removed  int
	Outcomes map[component.Outcome]int
}

func (t *Tally) Add(events []event.Event) {
	if t.Outcomes == nil {
		t.Outcomes = make(map[component.Outcome]int)
	}
	for _, e := range events {
		switch e.Type {
		case event.EntitySpawned:
			t.Spawned++
		case event.ProjectileFired:
			t.Fired++
		case event.DeathBegan:
			t.Deaths++
		case event.EntityRemoved:
			t.Removed++
		case event.ProjectileRemoved:
			if o, ok := e.Data.(component.Outcome); ok {
				t.Outcomes[o]++
			}
		}
	}
}

// Autopilot aims at the nearest threat and fires whenever one exists.
// It drives a world without a human at the controls.
func Autopilot(w *World, deltaTime float64) error {
	if e, ok := w.Snapshot().NearestThreat(); ok {
		w.TriggerTurret(e.Position)
	}
	for _, c := range w.DetectContacts() {
		w.ReportCollision(c.ProjectileID, c.EntityID)
	}
	return w.Tick(deltaTime)
}
