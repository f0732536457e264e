package birdloader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const sampleConfig = `
direction: left
duration: 400ms
colors:
  hair: "#FF3B30"
  forehead: "#FFFFFF"
  beard: "#8E8E93"
  beak: "#FFCC00"
  mouth: "#FF9500"
  eye: "#00000080"
`

func TestParseConfig(t *testing.T) {
	p, err := ParseConfig([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if p.Direction != FacingLeft {
		t.Errorf("Direction = %s, want left", p.Direction)
	}
	if p.Duration != 400*time.Millisecond {
		t.Errorf("Duration = %v, want 400ms", p.Duration)
	}
	if p.ForeheadColor != ColorWhite {
		t.Errorf("ForeheadColor = %v, want white", p.ForeheadColor)
	}
	if !approx(p.EyeColor.A, 128.0/255, 1e-9) || p.EyeColor.R != 0 {
		t.Errorf("EyeColor = %v, want half-transparent black", p.EyeColor)
	}
	if !approx(p.HairColor.G, 0x3B/255.0, 1e-9) {
		t.Errorf("HairColor = %v", p.HairColor)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"bad direction", "direction: up\nduration: 1s\n", ErrInvalidDirection},
		{"bad duration", "direction: left\nduration: soon\n", ErrInvalidDuration},
		{"zero duration", validColors("direction: left\nduration: 0s\n"), ErrInvalidDuration},
		{"negative duration", validColors("direction: left\nduration: -1s\n"), ErrInvalidDuration},
		{"missing color", "direction: left\nduration: 1s\ncolors:\n  hair: \"#FFFFFF\"\n", ErrInvalidColor},
		{"bad color", strings.Replace(validColors("direction: right\nduration: 1s\n"), "#000000", "#GG0000", 1), ErrInvalidColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func validColors(head string) string {
	return head + `colors:
  hair: "#FF3B30"
  forehead: "#FFFFFF"
  beard: "#8E8E93"
  beak: "#FFCC00"
  mouth: "#FF9500"
  eye: "#000000"
`
}

func TestParseConfigMalformedYAML(t *testing.T) {
	if _, err := ParseConfig([]byte("direction: [")); err == nil {
		t.Error("expected YAML error")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loader.yaml")
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if p.Direction != FacingLeft {
		t.Errorf("Direction = %s, want left", p.Direction)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v, want os.ErrNotExist", err)
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
		ok   bool
	}{
		{"right", FacingRight, true},
		{"LEFT", FacingLeft, true},
		{" Left ", FacingLeft, true},
		{"", 0, false},
		{"down", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseDirection(%q) err = %v", tt.in, err)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("ParseDirection(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#FFFFFF", ColorWhite},
		{"000000", Color{A: 1}},
		{"#FF000000", Color{R: 1}},
		{"#00ff00", Color{G: 1, A: 1}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "#FFF", "#12345", "#XYZXYZ", "#1234567"} {
		if _, err := ParseColor(bad); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseColor(%q) err = %v, want ErrInvalidColor", bad, err)
		}
	}
}

func TestPropertiesValidate(t *testing.T) {
	p := testProps(FacingRight)
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	bad := p
	bad.Direction = Direction(7)
	if err := bad.Validate(); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("err = %v, want ErrInvalidDirection", err)
	}

	bad = p
	bad.BeakColor.R = 1.5
	if err := bad.Validate(); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("err = %v, want ErrInvalidColor", err)
	}
}
