// Package birdloader is an animated loading indicator for [Ebitengine],
// drawn as a stylized chicken face built entirely from procedural shapes.
//
// A loader is six filled pie-slice regions (mouth, hair, forehead, beard,
// eye and beak) stacked in a fixed paint order. Once laid out it alternates
// forever between two phases: Phase A settles the head a quarter or half
// turn and slides the eye across, Phase B spins back through full turns,
// returns the eye and blinks the beard. Each phase is scheduled by the
// completion of the previous one after a short pause, until [Loader.Stop].
//
// # Quick start
//
//	scene := birdloader.NewScene()
//	loader := birdloader.New(birdloader.Properties{
//		HairColor:     birdloader.Color{R: 1, G: 0.23, B: 0.19, A: 1},
//		ForeheadColor: birdloader.ColorWhite,
//		BeardColor:    birdloader.Color{R: 0.56, G: 0.56, B: 0.58, A: 1},
//		BeakColor:     birdloader.Color{R: 1, G: 0.8, B: 0, A: 1},
//		MouthColor:    birdloader.Color{R: 1, G: 0.58, B: 0, A: 1},
//		EyeColor:      birdloader.Color{A: 1},
//		Direction:     birdloader.FacingRight,
//		Duration:      400 * time.Millisecond,
//	})
//	scene.Root().AddChild(loader.Node())
//	birdloader.Run(scene, birdloader.RunConfig{
//		Title: "Loading", Width: 300, Height: 300,
//		OnLayout: func(w, h int) {
//			loader.SetBounds(birdloader.Rect{X: float64(w)/2 - 75, Y: float64(h)/2 - 75, Width: 150, Height: 150})
//		},
//	})
//
// The loader does not size itself: the host gives it bounds with
// [Loader.SetBounds]. Animation starts the first time the bounds are
// non-empty; layout is one-shot, so later bounds changes are ignored.
//
// Loaders can also be driven without a Scene by calling [Loader.Update]
// and [Loader.Draw] from your own [ebiten.Game], and exported with
// [Loader.WriteSVG].
//
// Palettes can be loaded from YAML with [LoadConfig]. Phase transitions
// are reported to an [EventSink]; the birdloader/ecs module forwards them
// into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package birdloader
