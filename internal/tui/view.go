// internal/tui/view.go
package tui

import (
	"fmt"

	"go-point-defense/internal/app"
	"go-point-defense/internal/component"
	pkgutils "go-point-defense/pkg/utils"

	"github.com/gdamore/tcell/v2"
)

// View maps a world of Width x Height units onto a terminal screen.
// The top row holds the status line.
type View struct {
	Screen tcell.Screen
	Width  float64
	Height float64
}

// Cell returns the terminal cell for a world point.
func (v *View) Cell(p pkgutils.Vec2) (int, int) {
	cols, rows := v.Screen.Size()
	x := int(p.X / v.Width * float64(cols))
	y := 1 + int(p.Y/v.Height*float64(rows-1))
	return x, y
}

// Point returns the world point at the centre of a terminal cell.
func (v *View) Point(x, y int) pkgutils.Vec2 {
	cols, rows := v.Screen.Size()
	if cols == 0 || rows < 2 {
		return pkgutils.Vec2{}
	}
	return pkgutils.V(
		(float64(x)+0.5)/float64(cols)*v.Width,
		(float64(y-1)+0.5)/float64(rows-1)*v.Height,
	)
}

func bandStyle(b component.HealthBand) tcell.Style {
	switch b {
	case component.BandHigh:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case component.BandMedium:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	}
	return tcell.StyleDefault.Foreground(tcell.ColorRed)
}

// Draw renders the snapshot and shows it.
func (v *View) Draw(snap app.Snapshot, aim pkgutils.Vec2) {
	v.Screen.Clear()
	cols, _ := v.Screen.Size()

	status := fmt.Sprintf(" t=%.1fs enemies=%d shots=%d spawned=%d epoch=%d  [space] fire  [r] reset  [q] quit",
		snap.Time, len(snap.Entities), len(snap.Projectiles), snap.Spawned, snap.Epoch)
	for i, ch := range status {
		if i >= cols {
			break
		}
		v.Screen.SetContent(i, 0, ch, nil, tcell.StyleDefault.Reverse(true))
	}

	if snap.Turret != nil {
		x, y := v.Cell(snap.Turret.Position)
		v.Screen.SetContent(x, y, '@', nil, tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true))
	}
	for _, e := range snap.Entities {
		x, y := v.Cell(e.Position)
		if e.State != component.Alive {
			v.Screen.SetContent(x, y, 'x', nil, tcell.StyleDefault.Foreground(tcell.ColorGray))
			continue
		}
		v.Screen.SetContent(x, y, 'E', nil, bandStyle(e.Band))
	}
	for _, p := range snap.Projectiles {
		x, y := v.Cell(p.Position)
		v.Screen.SetContent(x, y, '*', nil, tcell.StyleDefault.Foreground(tcell.ColorGold))
	}

	ax, ay := v.Cell(aim)
	v.Screen.SetContent(ax, ay, '+', nil, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	v.Screen.Show()
}
