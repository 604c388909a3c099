// README: Immutable reference data with lookups used by the quote engine and its callers.
package catalog

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrEmptyCatalog     = errors.New("catalog has no ports, vessels or styles")
	ErrDuplicateID      = errors.New("duplicate identifier")
	ErrInvalidVessel    = errors.New("invalid vessel class")
	ErrUnknownReference = errors.New("unknown reference")
	ErrInvalidFactor    = errors.New("multiplier must be positive")
)

// Catalog holds the reference data. It is built once and never mutated, so it can be
// shared by any number of goroutines without locking.
type Catalog struct {
	ports     []Port
	portIndex map[string]int

	vessels     []VesselClass
	vesselIndex map[string]int

	styles     []TravelStyle
	styleIndex map[string]int

	// port id -> ordered vessel class names
	allowed map[string][]string

	portFactors  map[string]float64
	styleFactors map[string]float64
}

// New validates raw reference data and returns an immutable Catalog.
func New(d Data) (*Catalog, error) {
	if len(d.Ports) == 0 || len(d.Vessels) == 0 || len(d.Styles) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		portIndex:    make(map[string]int, len(d.Ports)),
		vesselIndex:  make(map[string]int, len(d.Vessels)),
		styleIndex:   make(map[string]int, len(d.Styles)),
		allowed:      make(map[string][]string, len(d.Ports)),
		portFactors:  make(map[string]float64, len(d.PortMultipliers)),
		styleFactors: make(map[string]float64, len(d.StyleMultipliers)),
	}

	for _, v := range d.Vessels {
		if v.Name == "" {
			return nil, fmt.Errorf("%w: empty name", ErrInvalidVessel)
		}
		if _, ok := c.vesselIndex[v.Name]; ok {
			return nil, fmt.Errorf("vessel %q: %w", v.Name, ErrDuplicateID)
		}
		if v.BaseRate <= 0 || v.Capacity <= 0 {
			return nil, fmt.Errorf("%w: %q needs a positive base rate and capacity", ErrInvalidVessel, v.Name)
		}
		c.vesselIndex[v.Name] = len(c.vessels)
		c.vessels = append(c.vessels, v)
	}

	for _, p := range d.Ports {
		if p.ID == "" {
			return nil, fmt.Errorf("port: %w: empty id", ErrUnknownReference)
		}
		if _, ok := c.portIndex[p.ID]; ok {
			return nil, fmt.Errorf("port %q: %w", p.ID, ErrDuplicateID)
		}
		names := make([]string, 0, len(p.Vessels))
		for _, name := range p.Vessels {
			if _, ok := c.vesselIndex[name]; !ok {
				return nil, fmt.Errorf("port %q allows vessel %q: %w", p.ID, name, ErrUnknownReference)
			}
			if slices.Contains(names, name) {
				return nil, fmt.Errorf("port %q lists vessel %q twice: %w", p.ID, name, ErrDuplicateID)
			}
			names = append(names, name)
		}
		c.portIndex[p.ID] = len(c.ports)
		c.ports = append(c.ports, p.Port)
		c.allowed[p.ID] = names
	}

	for _, s := range d.Styles {
		if s.ID == "" {
			return nil, fmt.Errorf("style: %w: empty id", ErrUnknownReference)
		}
		if _, ok := c.styleIndex[s.ID]; ok {
			return nil, fmt.Errorf("style %q: %w", s.ID, ErrDuplicateID)
		}
		c.styleIndex[s.ID] = len(c.styles)
		c.styles = append(c.styles, s)
	}

	for id, f := range d.PortMultipliers {
		if f <= 0 {
			return nil, fmt.Errorf("port %q: %w (got %v)", id, ErrInvalidFactor, f)
		}
		c.portFactors[id] = f
	}
	for id, f := range d.StyleMultipliers {
		if f <= 0 {
			return nil, fmt.Errorf("style %q: %w (got %v)", id, ErrInvalidFactor, f)
		}
		c.styleFactors[id] = f
	}

	return c, nil
}

// MustNew is New for built-in data; it panics on invalid input.
func MustNew(d Data) *Catalog {
	c, err := New(d)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Port(id string) (Port, bool) {
	i, ok := c.portIndex[id]
	if !ok {
		return Port{}, false
	}
	return c.ports[i], true
}

func (c *Catalog) Vessel(name string) (VesselClass, bool) {
	i, ok := c.vesselIndex[name]
	if !ok {
		return VesselClass{}, false
	}
	return c.vessels[i], true
}

func (c *Catalog) Style(id string) (TravelStyle, bool) {
	i, ok := c.styleIndex[id]
	if !ok {
		return TravelStyle{}, false
	}
	return c.styles[i], true
}

// DefaultStyle is the first style in catalog order.
func (c *Catalog) DefaultStyle() TravelStyle {
	return c.styles[0]
}

// Ports returns a copy of the ports in catalog order.
func (c *Catalog) Ports() []Port {
	return slices.Clone(c.ports)
}

func (c *Catalog) Vessels() []VesselClass {
	return slices.Clone(c.vessels)
}

func (c *Catalog) Styles() []TravelStyle {
	return slices.Clone(c.styles)
}

// AllowedVessels returns the ordered vessel class names a port may be quoted with.
// Unknown ports have no allowed vessels.
func (c *Catalog) AllowedVessels(portID string) []string {
	return slices.Clone(c.allowed[portID])
}

// IsAllowed reports whether vessel belongs to the allowed set of portID.
func (c *Catalog) IsAllowed(portID, vessel string) bool {
	return slices.Contains(c.allowed[portID], vessel)
}

// ReconcileVessel applies the selection consistency rule after a port change: the current
// vessel is kept when the new port allows it, otherwise the port's first allowed vessel is
// selected, or "" when the port allows none.
func (c *Catalog) ReconcileVessel(portID, current string) string {
	names := c.allowed[portID]
	if current != "" && slices.Contains(names, current) {
		return current
	}
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

// PortFactor returns the location multiplier for a port, 1.0 when it has no entry.
func (c *Catalog) PortFactor(portID string) float64 {
	if f, ok := c.portFactors[portID]; ok {
		return f
	}
	return 1.0
}

// StyleFactor returns the travel-style multiplier, 1.0 when it has no entry.
func (c *Catalog) StyleFactor(styleID string) float64 {
	if f, ok := c.styleFactors[styleID]; ok {
		return f
	}
	return 1.0
}

// Data returns the catalog in its raw form, e.g. for writing it back to a file.
func (c *Catalog) Data() Data {
	d := Data{
		Vessels:          slices.Clone(c.vessels),
		Styles:           slices.Clone(c.styles),
		PortMultipliers:  make(map[string]float64, len(c.portFactors)),
		StyleMultipliers: make(map[string]float64, len(c.styleFactors)),
	}
	for _, p := range c.ports {
		d.Ports = append(d.Ports, PortEntry{Port: p, Vessels: slices.Clone(c.allowed[p.ID])})
	}
	for k, v := range c.portFactors {
		d.PortMultipliers[k] = v
	}
	for k, v := range c.styleFactors {
		d.StyleMultipliers[k] = v
	}
	return d
}
