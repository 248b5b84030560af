package tabletop

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LayoutFormat selects the decoder used by ParseLayout.
type LayoutFormat uint8

const (
	LayoutYAML LayoutFormat = iota
	LayoutTOML
)

//go:embed layouts/*.yaml layouts/*.toml
var builtinLayouts embed.FS

// ParseLayout decodes and validates a layout table.
func ParseLayout(data []byte, format LayoutFormat) (Layout, error) {
	var l Layout
	switch format {
	case LayoutYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&l); err != nil {
			return Layout{}, fmt.Errorf("parse layout yaml: %w", err)
		}
	case LayoutTOML:
		md, err := toml.Decode(string(data), &l)
		if err != nil {
			return Layout{}, fmt.Errorf("parse layout toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Layout{}, fmt.Errorf("parse layout toml: unknown key %q", undecoded[0].String())
		}
	default:
		return Layout{}, fmt.Errorf("parse layout: unknown format %d", format)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// BuiltinLayout returns one of the layouts compiled into the binary
// ("cards" or "zones").
func BuiltinLayout(name string) (Layout, error) {
	entries, err := builtinLayouts.ReadDir("layouts")
	if err != nil {
		return Layout{}, fmt.Errorf("builtin layout %q: %w", name, err)
	}
	for _, e := range entries {
		ext := path.Ext(e.Name())
		if strings.TrimSuffix(e.Name(), ext) != name {
			continue
		}
		data, err := builtinLayouts.ReadFile(path.Join("layouts", e.Name()))
		if err != nil {
			return Layout{}, fmt.Errorf("builtin layout %q: %w", name, err)
		}
		format := LayoutYAML
		if ext == ".toml" {
			format = LayoutTOML
		}
		return ParseLayout(data, format)
	}
	return Layout{}, fmt.Errorf("builtin layout %q: not found", name)
}

// BuiltinLayoutNames lists the embedded layouts in name order.
func BuiltinLayoutNames() []string {
	entries, err := builtinLayouts.ReadDir("layouts")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	return names
}
