// Package metrics counts simulation outcomes through OpenTelemetry.
// Without an installed meter provider every counter is a no-op.
package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "go-point-defense/internal/metrics"

// Recorder holds the simulation counters. A nil *Recorder records nothing.
type Recorder struct {
	spawned     metric.Int64Counter
	deaths      metric.Int64Counter
	fired       metric.Int64Counter
	resolutions metric.Int64Counter
	ignored     metric.Int64Counter
}

// New creates a Recorder on the global meter provider.
func New() (*Recorder, error) {
	return NewWithMeter(otel.Meter(instrumentationName))
}

// NewWithMeter creates a Recorder on m.
func NewWithMeter(m metric.Meter) (*Recorder, error) {
	r := &Recorder{}
	var err error

	if r.spawned, err = m.Int64Counter("sim.enemies.spawned",
		metric.WithDescription("Enemies created by the spawner")); err != nil {
		return nil, fmt.Errorf("creating spawned counter: %w", err)
	}
	if r.deaths, err = m.Int64Counter("sim.enemies.deaths",
		metric.WithDescription("Enemies whose health reached zero")); err != nil {
		return nil, fmt.Errorf("creating deaths counter: %w", err)
	}
	if r.fired, err = m.Int64Counter("sim.projectiles.fired",
		metric.WithDescription("Projectiles created")); err != nil {
		return nil, fmt.Errorf("creating fired counter: %w", err)
	}
	if r.resolutions, err = m.Int64Counter("sim.projectiles.resolved",
		metric.WithDescription("Projectiles resolved, by outcome")); err != nil {
		return nil, fmt.Errorf("creating resolved counter: %w", err)
	}
	if r.ignored, err = m.Int64Counter("sim.guards.ignored",
		metric.WithDescription("Operations dropped by invariant guards")); err != nil {
		return nil, fmt.Errorf("creating ignored counter: %w", err)
	}
	return r, nil
}

func (r *Recorder) Spawned(defID string) {
	if r == nil {
		return
	}
	r.spawned.Add(context.Background(), 1, metric.WithAttributes(attribute.String("enemy", defID)))
}

func (r *Recorder) DeathBegan(defID string) {
	if r == nil {
		return
	}
	r.deaths.Add(context.Background(), 1, metric.WithAttributes(attribute.String("enemy", defID)))
}

func (r *Recorder) Fired() {
	if r == nil {
		return
	}
	r.fired.Add(context.Background(), 1)
}

func (r *Recorder) Resolved(outcome string) {
	if r == nil {
		return
	}
	r.resolutions.Add(context.Background(), 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// Ignored counts an operation dropped by an invariant guard.
func (r *Recorder) Ignored(guard string) {
	if r == nil {
		return
	}
	r.ignored.Add(context.Background(), 1, metric.WithAttributes(attribute.String("guard", guard)))
}
