package birdloader

import (
	"time"

	"github.com/tanema/gween/ease"
)

// State is the lifecycle state of a loader's animation cycle.
type State uint8

const (
	StateIdle    State = iota // constructed, no usable bounds yet
	StateRunning              // phases alternate forever
	StateStopped              // terminal; nothing is scheduled any more
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Phase is one half of the animation cycle, selected by counter parity.
type Phase uint8

const (
	PhaseA Phase = iota // even counter: small settles, eye slides across
	PhaseB              // odd counter: full spins, eye returns, beard blinks
)

func (p Phase) String() string {
	if p == PhaseA {
		return "A"
	}
	return "B"
}

// PhaseFor returns the phase run for the given cycle counter.
func PhaseFor(counter int) Phase {
	if counter%2 == 0 {
		return PhaseA
	}
	return PhaseB
}

// BeardPulses reports whether the phase for counter fades the beard.
func BeardPulses(counter int) bool {
	return counter%2 != 0
}

// timingCurve approximates the standard ease-in media timing curve.
var timingCurve ease.TweenFunc = ease.InQuad

// phaseBatch holds the concurrent animations of one phase. tweens[0] is
// the mouth rotation, the only one wired to report completion.
type phaseBatch struct {
	tweens []*TweenGroup
}

func (b *phaseBatch) started() bool {
	return len(b.tweens) > 0 && b.tweens[0].Started()
}

func (b *phaseBatch) done() bool {
	for _, tw := range b.tweens {
		if !tw.Done {
			return false
		}
	}
	return true
}

// scheduler drives the endless two-phase cycle over a loader's region nodes.
//
// Cancellation uses an epoch: each batch's completion handler captures the
// epoch it was scheduled under and is dropped when the epoch has moved on.
type scheduler struct {
	state   State
	counter int
	epoch   uint64

	direction Direction
	duration  float32
	travel    float64
	nodes     *[RegionCount]*Node

	batch  *phaseBatch
	pulses []*TweenGroup

	// onPhase is told about every scheduled phase.
	onPhase func(PhaseEvent)
}

// start enters Running(0) and schedules Phase A without delay. It only has
// an effect from Idle.
func (s *scheduler) start() bool {
	if s.state != StateIdle {
		return false
	}
	s.state = StateRunning
	s.counter = 0
	s.schedule(0)
	return true
}

// stop enters Stopped. It reports whether the state changed.
func (s *scheduler) stop() bool {
	if s.state == StateStopped {
		return false
	}
	s.state = StateStopped
	s.epoch++
	return true
}

// schedule issues the batch for the current counter after delay.
func (s *scheduler) schedule(delay time.Duration) {
	counter := s.counter
	phase := PhaseFor(counter)
	targets := RotationTargets(phase, s.direction)
	d := float32(delay.Seconds())
	epoch := s.epoch

	b := &phaseBatch{tweens: make([]*TweenGroup, 0, animatedRegionCount+1)}
	for i, kind := range animatedRegions {
		tw := TweenRotation(s.nodes[kind], targets[i], s.duration, timingCurve)
		tw.Delay = d
		if i == 0 {
			tw.OnComplete = func(finished bool) {
				s.complete(epoch, finished)
			}
		}
		b.tweens = append(b.tweens, tw)
	}

	eye := TweenX(s.nodes[RegionEye], s.eyeTarget(counter), s.duration, timingCurve)
	eye.Delay = d
	b.tweens = append(b.tweens, eye)

	pulse := BeardPulses(counter)
	if pulse {
		fade := TweenAlpha(s.nodes[RegionBeard], 0, s.duration*beardFadeRatio, timingCurve)
		fade.Delay = d
		fade.AutoReverse = true
		s.pulses = append(s.pulses, fade)
	}

	s.batch = b
	if s.onPhase != nil {
		s.onPhase(PhaseEvent{Counter: counter, Phase: phase, BeardPulse: pulse, Delay: delay})
	}
}

// eyeTarget returns the eye's X translation for the phase at counter.
func (s *scheduler) eyeTarget(counter int) float64 {
	if counter%2 != 0 {
		return 0
	}
	return 2 * s.direction.sign() * s.travel
}

// complete is the single completion handler of a batch. It is the only
// place the counter advances.
func (s *scheduler) complete(epoch uint64, finished bool) {
	if !finished || s.state != StateRunning || epoch != s.epoch {
		return
	}
	s.counter++
	s.schedule(PhaseDelay)
}

// update advances in-flight animations. After stop, animations that have
// not started yet are dropped; moving ones run to their end. Pulses are
// advanced first so one scheduled during this tick waits like its batch.
func (s *scheduler) update(dt float32) {
	live := s.pulses[:0]
	for _, p := range s.pulses {
		if s.state == StateStopped && !p.Started() {
			continue
		}
		p.Update(dt)
		if !p.Done {
			live = append(live, p)
		}
	}
	for i := len(live); i < len(s.pulses); i++ {
		s.pulses[i] = nil
	}
	s.pulses = live

	if b := s.batch; b != nil {
		if s.state == StateStopped && !b.started() {
			s.batch = nil
		} else {
			for _, tw := range b.tweens {
				tw.Update(dt)
			}
			if s.batch == b && b.done() {
				s.batch = nil
			}
		}
	}
}

// cancel interrupts everything in flight. Completion handlers see
// finished=false and do nothing.
func (s *scheduler) cancel() {
	if s.batch != nil {
		for _, tw := range s.batch.tweens {
			tw.Cancel()
		}
		s.batch = nil
	}
	for _, p := range s.pulses {
		p.Cancel()
	}
	s.pulses = nil
}

// idle reports whether nothing is in flight or pending.
func (s *scheduler) idle() bool {
	return s.batch == nil && len(s.pulses) == 0
}
