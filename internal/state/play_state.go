// internal/state/play_state.go
package state

import (
	"errors"

	"go-point-defense/internal/app"
	"go-point-defense/internal/render"
	pkgutils "go-point-defense/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
)

var _ State = (*PlayState)(nil)

// PlayState runs the simulation: the cursor aims the turret, the left
// button fires, P pauses and R starts a new spawn epoch.
type PlayState struct {
	sm       *StateMachine
	world    *app.World
	renderer *render.Renderer
	logger   zerolog.Logger
}

func NewPlayState(sm *StateMachine, world *app.World, renderer *render.Renderer, logger zerolog.Logger) *PlayState {
	return &PlayState{
		sm:       sm,
		world:    world,
		renderer: renderer,
		logger:   logger,
	}
}

func (s *PlayState) Enter() {}

func (s *PlayState) Exit() {}

func (s *PlayState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		s.sm.SetState(NewPauseState(s.sm, s))
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.world.ResetCounter()
	}

	x, y := ebiten.CursorPosition()
	cursor := pkgutils.V(float64(x), float64(y))
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		s.world.TriggerTurret(cursor)
	} else {
		s.world.AimTurret(cursor)
	}

	// contacts found this frame are resolved by the next tick
	for _, c := range s.world.DetectContacts() {
		s.world.ReportCollision(c.ProjectileID, c.EntityID)
	}

	if err := s.world.Tick(deltaTime); err != nil {
		if errors.Is(err, app.ErrNoTargetPoint) {
			s.logger.Warn().Err(err).Msg("tick without target")
			return nil
		}
		return err
	}
	return nil
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	snap := s.world.Snapshot()
	s.renderer.Draw(screen, snap)
	s.renderer.DrawHUD(screen, snap, false)
}

// drawPaused draws the frozen world under the pause banner.
func (s *PlayState) drawPaused(screen *ebiten.Image) {
	snap := s.world.Snapshot()
	s.renderer.Draw(screen, snap)
	s.renderer.DrawHUD(screen, snap, true)
}
