package birdloader

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the top-level object that owns the node tree and frame hooks.
type Scene struct {
	root  *Node
	debug bool

	// ClearColor fills the screen before drawing. A zero alpha leaves the
	// screen untouched.
	ClearColor Color

	updateFunc func() error

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir   string
	screenshotQueue []string

	testRunner *TestRunner
	stats      debugStats

	// commands is the per-frame draw list, reused across frames.
	commands []meshCommand
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	return &Scene{
		root:          NewContainer("root"),
		ScreenshotDir: "screenshots",
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// SetUpdateFunc registers a callback run at the start of every Update.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// Update runs the user update callback, advances the test runner and calls
// every node's OnUpdate hook with the fixed tick length.
func (s *Scene) Update() error {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.tick(1.0 / float64(ebiten.TPS()))

	if s.debug {
		s.stats.updateTime = time.Since(t0)
	}
	return nil
}

// tick advances every node by dt seconds.
func (s *Scene) tick(dt float64) {
	updateNodes(s.root, dt)
}

// Draw clears the screen with ClearColor, draws the node tree and flushes
// queued screenshots.
func (s *Scene) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	s.commands = drawTree(screen, s.root, identityTransform, 1.0, s.commands)
	s.flushScreenshots(screen)

	if s.debug {
		s.stats.drawTime = time.Since(t0)
		s.stats.meshCount = len(s.commands)
		s.debugLog(s.stats)
	}
}

// Loaders returns every loader attached anywhere below the root, in paint
// order.
func (s *Scene) Loaders() []*Loader {
	var out []*Loader
	var walk func(n *Node)
	walk = func(n *Node) {
		if l, ok := n.UserData.(*Loader); ok && l.node == n {
			out = append(out, l)
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(s.root)
	return out
}

// StopAll stops every loader in the scene.
func (s *Scene) StopAll() {
	for _, l := range s.Loaders() {
		l.Stop()
	}
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, per-frame timing is logged to stderr and every loader logs
// its phase transitions, including loaders attached after the call.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
	for _, l := range s.Loaders() {
		l.SetDebugMode(enabled)
	}
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations and loaders (which lack a Scene pointer) can check it cheaply.
var globalDebug bool
