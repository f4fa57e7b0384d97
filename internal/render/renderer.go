// internal/render/renderer.go
package render

import (
	"fmt"
	"math"

	"go-point-defense/internal/app"
	"go-point-defense/internal/component"
	"go-point-defense/internal/config"
	pkgrender "go-point-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	healthBarWidth  = 28
	healthBarHeight = 4
	healthBarGap    = 6
	hudLineHeight   = 16
)

// Renderer draws world snapshots with ebiten vector shapes.
type Renderer struct {
	face    font.Face
	palette pkgrender.Palette
}

func NewRenderer() *Renderer {
	return &Renderer{
		face: basicfont.Face7x13,
		palette: pkgrender.Palette{
			Background: config.BackgroundColor,
			Turret:     config.TurretColor,
			Projectile: config.ProjectileColor,
			Text:       config.TextLightColor,
			HealthHigh: config.HealthHighColor,
			HealthMid:  config.HealthMidColor,
			HealthLow:  config.HealthLowColor,
			Dying:      config.DyingColor,
		},
	}
}

// Draw paints the whole frame.
func (r *Renderer) Draw(screen *ebiten.Image, snap app.Snapshot) {
	screen.Fill(r.palette.Background)
	r.drawTurret(screen, snap)
	for _, e := range snap.Entities {
		r.drawEnemy(screen, e)
	}
	for _, p := range snap.Projectiles {
		vector.DrawFilledCircle(screen, float32(p.Position.X), float32(p.Position.Y), float32(p.Radius), r.palette.Projectile, true)
	}
}

func (r *Renderer) drawTurret(screen *ebiten.Image, snap app.Snapshot) {
	if snap.Turret == nil {
		return
	}
	x, y := float32(snap.Turret.Position.X), float32(snap.Turret.Position.Y)
	vector.DrawFilledCircle(screen, x, y, config.TurretRadius, pkgrender.DarkenColor(r.palette.Turret), true)
	vector.StrokeCircle(screen, x, y, config.TurretRadius, 2, r.palette.Turret, true)

	heading := snap.Turret.Heading()
	bx := x + float32(math.Cos(heading)*config.TurretMuzzleX)
	by := y + float32(math.Sin(heading)*config.TurretMuzzleX)
	vector.StrokeLine(screen, x, y, bx, by, 6, r.palette.Turret, true)
}

func (r *Renderer) drawEnemy(screen *ebiten.Image, e app.EntitySnapshot) {
	x, y := float32(e.Position.X), float32(e.Position.Y)
	radius := float32(e.Radius)

	if e.State != component.Alive {
		vector.DrawFilledCircle(screen, x, y, radius, r.palette.Dying, true)
		return
	}
	vector.DrawFilledCircle(screen, x, y, radius, e.Color, true)

	top := y - radius - healthBarGap
	left := x - healthBarWidth/2
	vector.DrawFilledRect(screen, left, top, healthBarWidth, healthBarHeight, pkgrender.DarkenColor(r.palette.HealthLow), true)
	vector.DrawFilledRect(screen, left, top, healthBarWidth*float32(e.HealthFraction), healthBarHeight,
		r.palette.HealthColor(pkgrender.Band(e.Band)), true)
}

// DrawHUD writes the spawn counters and the pause banner.
func (r *Renderer) DrawHUD(screen *ebiten.Image, snap app.Snapshot, paused bool) {
	lines := []string{
		fmt.Sprintf("time %.1fs", snap.Time),
		fmt.Sprintf("enemies %d  projectiles %d", len(snap.Entities), len(snap.Projectiles)),
		fmt.Sprintf("spawned %d  epoch %d", snap.Spawned, snap.Epoch),
	}
	for i, line := range lines {
		text.Draw(screen, line, r.face, 10, 20+i*hudLineHeight, r.palette.Text)
	}
	if paused {
		msg := "PAUSED"
		x := config.ScreenWidth/2 - len(msg)*config.TextCharWidth/2
		text.Draw(screen, msg, r.face, x, config.ScreenHeight/2, r.palette.Text)
	}
}
