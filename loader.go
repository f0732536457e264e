package birdloader

import (
	"fmt"
	"time"
)

// Loader is an animated chicken-face loading indicator. It is a passive
// decorative view: attach Node() to a scene, give it bounds with SetBounds
// and it animates until Stop is called.
//
// A Loader is not safe for concurrent use; drive it from the game loop.
type Loader struct {
	props Properties

	node        *Node
	regionNodes [RegionCount]*Node
	regions     [RegionCount]Region
	bounds      Rect
	built       bool

	sched scheduler
	sink  EventSink
	debug bool

	commands []meshCommand // Draw's buffer, reused across frames
}

// New creates a loader with the given configuration. Properties are copied
// and never change afterwards; values are not validated (see
// Properties.Validate). New panics when given zero-value Properties, which
// always means the caller forgot to configure it.
func New(props Properties) *Loader {
	if props == (Properties{}) {
		panic("birdloader: New called with zero-value Properties")
	}
	l := &Loader{props: props}
	l.node = NewContainer("birdloader")
	l.node.UserData = l
	l.node.OnUpdate = l.Update
	l.sched = scheduler{
		direction: props.Direction,
		duration:  float32(props.Duration.Seconds()),
		nodes:     &l.regionNodes,
		onPhase:   l.emit,
	}
	return l
}

// Node returns the loader's container node. Its children are the six region
// meshes in paint order once the loader has been laid out.
func (l *Loader) Node() *Node {
	return l.node
}

// ID returns the container node's ID, used to tell loaders apart in events.
func (l *Loader) ID() uint32 {
	return l.node.ID
}

// Properties returns the loader's configuration.
func (l *Loader) Properties() Properties {
	return l.props
}

// SetBounds is the layout hook. The first call with non-empty bounds builds
// the regions and starts the animation cycle. Later calls never rebuild:
// layout is one-shot, so a loader keeps the geometry of its first bounds.
func (l *Loader) SetBounds(bounds Rect) {
	if l.built {
		return
	}
	l.bounds = bounds
	if bounds.Empty() {
		return
	}
	l.build()
	if l.sched.state == StateIdle {
		l.sched.start()
	}
}

// build creates the region meshes and stacks them bottom to top.
func (l *Loader) build() {
	l.regions = BuildRegions(l.bounds, l.props)
	l.sched.travel = eyeTravel(l.bounds.MaxRadius())

	c := l.bounds.Center()
	l.node.SetPosition(c.X, c.Y)
	for i := range l.regions {
		r := &l.regions[i]
		n := NewPolygon(r.Kind.String(), r.Points)
		n.Color = r.Color
		l.regionNodes[i] = n
		l.node.AddChild(n)
	}
	l.built = true
}

// Built reports whether the regions have been laid out.
func (l *Loader) Built() bool {
	return l.built
}

// Bounds returns the bounds the regions were built for, or the last bounds
// given before the loader was built.
func (l *Loader) Bounds() Rect {
	return l.bounds
}

// Regions returns the laid-out regions in paint order. The zero value is
// returned before the first successful layout.
func (l *Loader) Regions() [RegionCount]Region {
	return l.regions
}

// RegionNode returns the mesh for the given region, or nil before layout.
func (l *Loader) RegionNode(kind RegionKind) *Node {
	if int(kind) >= RegionCount {
		return nil
	}
	return l.regionNodes[kind]
}

// Update advances the animation by dt seconds. It is wired to the container
// node's OnUpdate, so Scene.Update drives it automatically.
func (l *Loader) Update(dt float64) {
	l.sched.update(float32(dt))
}

// Stop halts the cycle. Movement already under way finishes, but no further
// phase is scheduled and a pending phase that has not begun is dropped.
// Stopping before the first layout keeps the loader from ever starting.
// Stop is idempotent.
func (l *Loader) Stop() {
	if !l.sched.stop() {
		return
	}
	l.emit(PhaseEvent{Counter: l.sched.counter, Phase: PhaseFor(l.sched.counter), Stopped: true})
}

// Dispose stops the loader, interrupts any animation in flight and disposes
// its node tree.
func (l *Loader) Dispose() {
	l.Stop()
	l.sched.cancel()
	l.node.Dispose()
}

// State returns the current lifecycle state.
func (l *Loader) State() State {
	return l.sched.state
}

// Counter returns the number of phases that completed naturally.
func (l *Loader) Counter() int {
	return l.sched.counter
}

// Phase returns the phase selected by the current counter.
func (l *Loader) Phase() Phase {
	return PhaseFor(l.sched.counter)
}

// Animating reports whether any animation is pending or in flight.
func (l *Loader) Animating() bool {
	return !l.sched.idle()
}

// SetEventSink sets the receiver of phase events. Pass nil to disable.
func (l *Loader) SetEventSink(sink EventSink) {
	l.sink = sink
}

// SetDebugMode enables or disables logging of phase transitions to stderr.
// Scene debug mode turns logging on for every loader regardless of this flag.
func (l *Loader) SetDebugMode(enabled bool) {
	l.debug = enabled
}

func (l *Loader) debugEnabled() bool {
	return l.debug || globalDebug
}

func (l *Loader) emit(e PhaseEvent) {
	e.LoaderID = l.ID()
	if l.debugEnabled() {
		debugLogPhase(e)
	}
	if l.sink != nil {
		l.sink.EmitPhase(e)
	}
}

// String describes the loader for debug output.
func (l *Loader) String() string {
	return fmt.Sprintf("birdloader#%d(%s, %s, counter=%d, %v)",
		l.ID(), l.props.Direction, l.sched.state, l.sched.counter, l.props.Duration.Round(time.Millisecond))
}
