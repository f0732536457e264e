package birdloader

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration errors. Returned wrapped; test with errors.Is.
var (
	ErrInvalidDuration  = errors.New("duration must be positive")
	ErrInvalidDirection = errors.New("direction must be \"left\" or \"right\"")
	ErrInvalidColor     = errors.New("invalid color")
)

// Config is the YAML form of Properties:
//
//	direction: right
//	duration: 400ms
//	colors:
//	  hair: "#FF3B30"
//	  forehead: "#FFFFFF"
//	  beard: "#8E8E93"
//	  beak: "#FFCC00"
//	  mouth: "#FF9500"
//	  eye: "#000000"
type Config struct {
	Direction string       `yaml:"direction"`
	Duration  string       `yaml:"duration"`
	Colors    ColorsConfig `yaml:"colors"`
}

// ColorsConfig holds one hex color per region.
type ColorsConfig struct {
	Hair     string `yaml:"hair"`
	Forehead string `yaml:"forehead"`
	Beard    string `yaml:"beard"`
	Beak     string `yaml:"beak"`
	Mouth    string `yaml:"mouth"`
	Eye      string `yaml:"eye"`
}

// ParseConfig decodes a YAML document into validated Properties.
func ParseConfig(data []byte) (Properties, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Properties{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg.Properties()
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Properties, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Properties{}, fmt.Errorf("load config: %w", err)
	}
	props, err := ParseConfig(data)
	if err != nil {
		return Properties{}, fmt.Errorf("%s: %w", path, err)
	}
	return props, nil
}

// Properties converts the config into validated Properties.
func (c Config) Properties() (Properties, error) {
	var props Properties
	var err error

	if props.Direction, err = ParseDirection(c.Direction); err != nil {
		return Properties{}, err
	}
	if props.Duration, err = time.ParseDuration(c.Duration); err != nil {
		return Properties{}, fmt.Errorf("duration %q: %w", c.Duration, ErrInvalidDuration)
	}

	colors := []struct {
		name string
		hex  string
		dst  *Color
	}{
		{"hair", c.Colors.Hair, &props.HairColor},
		{"forehead", c.Colors.Forehead, &props.ForeheadColor},
		{"beard", c.Colors.Beard, &props.BeardColor},
		{"beak", c.Colors.Beak, &props.BeakColor},
		{"mouth", c.Colors.Mouth, &props.MouthColor},
		{"eye", c.Colors.Eye, &props.EyeColor},
	}
	for _, col := range colors {
		if *col.dst, err = ParseColor(col.hex); err != nil {
			return Properties{}, fmt.Errorf("%s color: %w", col.name, err)
		}
	}

	if err := props.Validate(); err != nil {
		return Properties{}, err
	}
	return props, nil
}

// Validate checks the properties for values that would produce a broken
// animation. The loader itself accepts anything; validation is for hosts
// that load configuration from outside.
func (p Properties) Validate() error {
	if p.Duration <= 0 {
		return fmt.Errorf("validate: %v: %w", p.Duration, ErrInvalidDuration)
	}
	if p.Direction != FacingLeft && p.Direction != FacingRight {
		return fmt.Errorf("validate: %d: %w", p.Direction, ErrInvalidDirection)
	}
	for name, c := range map[string]Color{
		"hair": p.HairColor, "forehead": p.ForeheadColor, "beard": p.BeardColor,
		"beak": p.BeakColor, "mouth": p.MouthColor, "eye": p.EyeColor,
	} {
		if !validChannel(c.R) || !validChannel(c.G) || !validChannel(c.B) || !validChannel(c.A) {
			return fmt.Errorf("validate: %s color %v: %w", name, c, ErrInvalidColor)
		}
	}
	return nil
}

func validChannel(v float64) bool {
	return v >= 0 && v <= 1
}

// ParseDirection accepts "left" or "right" (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "right":
		return FacingRight, nil
	case "left":
		return FacingLeft, nil
	default:
		return 0, fmt.Errorf("direction %q: %w", s, ErrInvalidDirection)
	}
}

// ParseColor parses "#RRGGBB" or "#RRGGBBAA" (the leading # is optional).
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("%q: %w", s, ErrInvalidColor)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%q: %w", s, ErrInvalidColor)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}
