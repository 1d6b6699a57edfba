// Package office loads the office layout and builds its static geometry, sensors and anchors.
package office

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// Kind selects what an entry becomes when the office is built.
type Kind string

const (
	KindCollider     Kind = "collider"
	KindSensor       Kind = "sensor"
	KindDynamic      Kind = "dynamic"
	KindInteractable Kind = "interactable"
	KindPoint        Kind = "point"
	KindRenderTarget Kind = "render_target"
	KindEmissive     Kind = "emissive"
	KindMesh         Kind = "mesh"
)

// legacyPrefixes maps authored name prefixes to kinds, checked in order.
var legacyPrefixes = []struct {
	prefix string
	kind   Kind
}{
	{"collider_", KindCollider},
	{"sensor_", KindSensor},
	{"dynamic_", KindDynamic},
	{"point3d_", KindPoint},
	{"render_target_", KindRenderTarget},
	{"emissive_", KindEmissive},
	{"interactable_", KindInteractable},
}

type Vec3 [3]float32

func (v Vec3) Vector3() rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// Entry is one authored object.
type Entry struct {
	Kind     Kind   `yaml:"kind,omitempty"`
	Name     string `yaml:"name"`
	Position Vec3   `yaml:"position"`
	Rotation Vec3   `yaml:"rotation,omitempty"`
	Size     Vec3   `yaml:"size,omitempty"`
	Color    string `yaml:"color,omitempty"`
	Label    string `yaml:"label,omitempty"`

	// Dynamic bodies.
	Mass        float32  `yaml:"mass,omitempty"`
	Friction    *float32 `yaml:"friction,omitempty"`
	Restitution *float32 `yaml:"restitution,omitempty"`

	// Sensors: scanner, painter or deleter. Painters also take a paint colour.
	Sensor string `yaml:"sensor,omitempty"`
	Paint  string `yaml:"paint,omitempty"`

	// Interactables: only terminal is placed by the layout.
	Interactable string `yaml:"interactable,omitempty"`
}

// Layout is the whole office file.
type Layout struct {
	Name    string  `yaml:"name"`
	Entries []Entry `yaml:"entries"`
}

// Load reads and parses a layout file. It does not validate it.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout %s: %w", path, err)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode layout %s: %w", path, err)
	}
	return l, nil
}

// Parse decodes layout YAML, rejecting unknown fields.
func Parse(data []byte) (*Layout, error) {
	var l Layout
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&l); err != nil {
		return nil, err
	}
	return &l, nil
}

// --- Color mapping ---

var colorByName = map[string]rl.Color{
	"red":       rl.Red,
	"blue":      rl.Blue,
	"green":     rl.Green,
	"orange":    rl.Orange,
	"yellow":    rl.Yellow,
	"skyblue":   rl.SkyBlue,
	"white":     rl.White,
	"lightgray": rl.LightGray,
	"gray":      rl.Gray,
	"darkgray":  rl.DarkGray,
	"black":     rl.Black,
	"brown":     rl.Brown,
	"beige":     rl.Beige,
	"darkblue":  rl.DarkBlue,
}

// ParseColor accepts a colour name or #RGB / #RRGGBB.
func ParseColor(s string) (rl.Color, bool) {
	s = strings.TrimSpace(s)
	if c, ok := colorByName[strings.ToLower(s)]; ok {
		return c, true
	}
	if len(s) < 4 || s[0] != '#' {
		return rl.White, false
	}
	hex := s[1:]
	for i := 0; i < len(hex); i++ {
		if _, ok := hexByte(hex[i]); !ok {
			return rl.White, false
		}
	}
	var r, g, b uint8
	switch len(hex) {
	case 3:
		r, g, b = nib(hex[0])*17, nib(hex[1])*17, nib(hex[2])*17
	case 6:
		r = nib(hex[0])<<4 + nib(hex[1])
		g = nib(hex[2])<<4 + nib(hex[3])
		b = nib(hex[4])<<4 + nib(hex[5])
	default:
		return rl.White, false
	}
	return rl.NewColor(r, g, b, 255), true
}

func nib(c byte) uint8 {
	v, _ := hexByte(c)
	return v
}

func hexByte(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
