// Package geo resolves supported city names to search coordinates.
package geo

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed cities.yaml
var defaultCities []byte

// Coordinates are kept as strings; they are sent upstream verbatim.
type Coordinates struct {
	Latitude  string `yaml:"latitude"`
	Longitude string `yaml:"longitude"`
}

type City struct {
	Name        string `yaml:"name"`
	Coordinates `yaml:",inline"`
}

type cityFile struct {
	Cities []City `yaml:"cities"`
}

// Directory is a fixed, case-insensitive city lookup table.
type Directory struct {
	cities []City
	byKey  map[string]City
}

// Default returns the built-in table of New York, Paris and London.
func Default() *Directory {
	d, err := Parse(defaultCities)
	if err != nil {
		panic(fmt.Sprintf("embedded city table: %v", err))
	}

	return d
}

// Load reads a YAML city table from path, or returns Default when path is
// empty.
func Load(path string) (*Directory, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read city table: %w", err)
	}

	return Parse(data)
}

func Parse(data []byte) (*Directory, error) {
	var file cityFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse city table: %w", err)
	}

	if len(file.Cities) == 0 {
		return nil, errors.New("city table is empty")
	}

	d := &Directory{byKey: make(map[string]City, len(file.Cities))}
	for _, c := range file.Cities {
		if c.Name == "" || c.Latitude == "" || c.Longitude == "" {
			return nil, fmt.Errorf("city entry %q is incomplete", c.Name)
		}
		d.cities = append(d.cities, c)
		d.byKey[key(c.Name)] = c
	}

	return d, nil
}

// Lookup returns the city with its canonical name.
func (d *Directory) Lookup(name string) (City, bool) {
	c, ok := d.byKey[key(name)]
	return c, ok
}

// Names lists the supported cities in table order.
func (d *Directory) Names() []string {
	names := make([]string, len(d.cities))
	for i, c := range d.cities {
		names[i] = c.Name
	}

	return names
}

// SupportedList renders the names as "A, B, or C".
func (d *Directory) SupportedList() string {
	names := d.Names()
	switch len(names) {
	case 1:
		return names[0]
	case 2:
		return names[0] + " or " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", or " + names[len(names)-1]
	}
}

func key(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
