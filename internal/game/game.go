package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/hexcrawl/internal/config"
	"github.com/samdwyer/hexcrawl/internal/ecs"
	"github.com/samdwyer/hexcrawl/internal/gamedata"
	"github.com/samdwyer/hexcrawl/internal/geomorph"
	"github.com/samdwyer/hexcrawl/internal/hex"
	"github.com/samdwyer/hexcrawl/internal/mapgen"
	"github.com/samdwyer/hexcrawl/internal/telemetry"
	"github.com/samdwyer/hexcrawl/internal/ui"
	"github.com/samdwyer/hexcrawl/internal/world"
)

// keyDirs maps movement keys to directions, laid out around 's' on a
// QWERTY keyboard.
var keyDirs = map[rune]hex.Dir6{
	'w': hex.North,
	'e': hex.NorthEast,
	'd': hex.SouthEast,
	's': hex.South,
	'a': hex.SouthWest,
	'q': hex.NorthWest,
}

var helpText = []string{
	"q w e    move northwest, north, northeast",
	"a s d    move southwest, south, southeast",
	">        take the stairs down",
	"?        this help",
	"Esc      quit",
}

// Game holds the entire game state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	registry *geomorph.Registry
	cfg      *config.Config
	log      logrus.FieldLogger

	world   *world.World
	player  ecs.Entity
	seed    int64
	state   State
	running bool
}

// New creates a new game instance drawing to screen.
func New(screen *ui.Screen, registry *geomorph.Registry, palette *gamedata.Palette, cfg *config.Config, log logrus.FieldLogger) *Game {
	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, palette),
		registry: registry,
		cfg:      cfg,
		log:      log.WithField("component", "game"),
		state:    StateExplore,
		running:  true,
	}
}

// Init builds the world and places the player.
func (g *Game) Init(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	g.seed = resolveSeed(g.cfg)
	g.world = world.New(world.Options{
		Chooser:      mapgen.NewSeededChooser(g.seed, g.registry),
		DungeonSight: g.cfg.Sight.DungeonRange,
		Logger:       g.log,
	})

	start := hex.NewLocation(0, 0, g.cfg.World.StartDepth)
	g.world.Prewarm(ctx, start, g.cfg.World.PrewarmRadius)
	loc, ok := g.world.FindOpen(start, searchRadius)
	if !ok {
		err := errors.New("no walkable cell near the start")
		span.RecordError(err)
		return err
	}

	g.player = g.world.Spawn(loc)
	g.world.GiveSight(g.player)
	g.world.DoFOV(g.player)

	span.SetAttributes(
		attribute.Int64("world.seed", g.seed),
		attribute.Int("player.x", loc.X),
		attribute.Int("player.y", loc.Y),
		attribute.Int("player.z", loc.Z),
	)
	g.log.WithFields(logrus.Fields{
		"seed":  g.seed,
		"start": loc.String(),
	}).Info("world ready")
	return nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	if err := g.Init(ctx); err != nil {
		return err
	}

	for g.running {
		g.render()
		g.handleInput(ctx)
	}

	g.screen.Close()
	return nil
}

func (g *Game) render() {
	if g.state == StateHelp {
		g.screen.Clear()
		for i, line := range helpText {
			g.renderer.RenderMessage(line, i)
		}
		g.screen.Show()
		return
	}
	g.renderer.Render(g.world, g.player, g.status())
}

func (g *Game) status() string {
	loc, ok := g.world.Location(g.player)
	if !ok {
		return fmt.Sprintf("turn %d", g.world.Tick())
	}
	return fmt.Sprintf("depth %d  turn %d  %v  [?] help", loc.Z, g.world.Tick(), loc)
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			g.handleRune(ctx, ev.Rune())
		} else {
			g.handleKey(ctx, ev.Key())
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKey processes non-character keys.
func (g *Game) handleKey(ctx context.Context, key tcell.Key) {
	if g.state == StateHelp {
		g.state = StateExplore
		return
	}

	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
	case tcell.KeyUp:
		g.tryStep(hex.North)
	case tcell.KeyDown:
		g.tryStep(hex.South)
	}
}

// handleRune processes character keys.
func (g *Game) handleRune(ctx context.Context, r rune) {
	if g.state == StateHelp {
		g.state = StateExplore
		return
	}

	if d, ok := keyDirs[r]; ok {
		g.tryStep(d)
		return
	}
	switch r {
	case '>':
		g.descend(ctx)
	case '?':
		g.state = StateHelp
	}
}

// tryStep moves the player, sliding along walls when the way ahead is
// blocked. A move ends the turn.
func (g *Game) tryStep(d hex.Dir6) bool {
	for _, dir := range []hex.Dir6{d, d.Rotate(1), d.Rotate(-1)} {
		if g.world.Step(g.player, dir) {
			g.world.NextTick()
			return true
		}
	}
	return false
}

// descend takes the player down one layer when standing on an exit.
func (g *Game) descend(ctx context.Context) bool {
	loc, ok := g.world.Location(g.player)
	if !ok || !g.world.Terrain(loc).IsExit() {
		return false
	}

	below := hex.NewLocation(loc.X, loc.Y, loc.Z+1)
	g.world.Prewarm(ctx, below, g.cfg.World.PrewarmRadius)
	dest, ok := g.world.FindOpen(below, searchRadius)
	if !ok {
		g.log.WithField("from", loc.String()).Warn("no landing spot below stairs")
		return false
	}

	g.world.SetEntityLocation(g.player, dest)
	g.world.NextTick()
	g.log.WithFields(logrus.Fields{
		"from": loc.String(),
		"to":   dest.String(),
	}).Info("descended")
	return true
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
