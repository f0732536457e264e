package birdloader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"screenshot": true,
	"svg":        true,
	"wait":       true,
	"stop":       true,
}

// TestRunner sequences waits, captures and stop requests across frames for
// automated visual checks of loaders. Attach to a Scene via SetTestRunner.
//
// Supported actions:
//
//	{"action": "wait", "frames": 30}          // let the animation run
//	{"action": "screenshot", "label": "x"}    // PNG of the next frame
//	{"action": "svg", "label": "x"}           // SVG of every loader, now
//	{"action": "stop"}                        // Stop every loader
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Scene via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the scene. The runner's step method
// is called from Scene.Update before the nodes are advanced.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Scene.Update.
func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		s.Screenshot(st.Label)
	case "svg":
		s.writeLoaderSVGs(st.Label)
	case "stop":
		s.StopAll()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}

// writeLoaderSVGs writes <label>_<n>.svg for every loader in the scene.
func (s *Scene) writeLoaderSVGs(label string) {
	if err := os.MkdirAll(s.ScreenshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[birdloader] svg: mkdir %s: %v\n", s.ScreenshotDir, err)
		return
	}
	for i, l := range s.Loaders() {
		path := filepath.Join(s.ScreenshotDir, fmt.Sprintf("%s_%d.svg", sanitizeLabel(label), i))
		if err := writeSVGFile(path, l); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[birdloader] svg: %v\n", err)
		}
	}
}

func writeSVGFile(path string, l *Loader) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := l.WriteSVG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
