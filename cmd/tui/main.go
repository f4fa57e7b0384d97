package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"go-point-defense/internal/app"
	"go-point-defense/internal/config"
	"go-point-defense/internal/logging"
	"go-point-defense/internal/tui"
	pkgutils "go-point-defense/pkg/utils"

	"github.com/gdamore/tcell/v2"
)

const frame = 33 * time.Millisecond

type game struct {
	world *app.World
	view  *tui.View
	aim   pkgutils.Vec2
	fire  bool
}

func (g *game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				g.fire = true
			case 'r':
				g.world.ResetCounter()
			}
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		g.aim = g.view.Point(x, y)
		if ev.Buttons()&tcell.Button1 != 0 {
			g.fire = true
		}
	case *tcell.EventResize:
		g.view.Screen.Sync()
	}
	return true
}

func (g *game) step(dt float64) error {
	if g.fire {
		g.world.TriggerTurret(g.aim)
		g.fire = false
	} else {
		g.world.AimTurret(g.aim)
	}
	for _, c := range g.world.DetectContacts() {
		g.world.ReportCollision(c.ProjectileID, c.EntityID)
	}
	return g.world.Tick(dt)
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	// the terminal owns stdout; logs go to stderr only when asked for
	var out io.Writer = io.Discard
	if os.Getenv("PD_LOG_STDERR") != "" {
		out = os.Stderr
	}
	logger := logging.New(out, cfg.LogLevel, false)

	world, err := app.FromConfig(cfg, logger, nil)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	g := &game{
		world: world,
		view:  &tui.View{Screen: screen, Width: config.ScreenWidth, Height: config.ScreenHeight},
		aim:   pkgutils.V(cfg.Target.X, cfg.Target.Y-100),
	}

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(frame)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return nil
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if dt > config.MaxDeltaTime {
				dt = config.MaxDeltaTime
			}
			if err := g.step(dt); err != nil {
				return err
			}
			g.view.Draw(world.Snapshot(), g.aim)
		}
	}
}

func main() {
	configPath := flag.String("config", "", "path to a config file (json, yaml or toml)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "point defense: %v\n", err)
		os.Exit(1)
	}
}
