// README: Reference data records (ports, vessel classes, travel styles) and their raw form.
package catalog

type Port struct {
	ID              string `json:"id" yaml:"id"`
	Name            string `json:"name" yaml:"name"`
	Tagline         string `json:"tagline" yaml:"tagline"`
	ScenicHighlight string `json:"scenic_highlight" yaml:"scenic_highlight"`
}

type VesselClass struct {
	Name     string `json:"name" yaml:"name"`
	BaseRate int64  `json:"base_rate" yaml:"base_rate"`
	Capacity int    `json:"capacity" yaml:"capacity"`
	Style    string `json:"style" yaml:"style"`
}

type TravelStyle struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// PortEntry is a port as operators write it: the record plus its allowed vessel classes.
type PortEntry struct {
	Port    `yaml:",inline"`
	Vessels []string `yaml:"vessels"`
}

// Data is the raw, unvalidated form of the reference data. It is what the YAML file and
// the Postgres store produce; New turns it into an immutable Catalog.
type Data struct {
	Ports            []PortEntry        `yaml:"ports"`
	Vessels          []VesselClass      `yaml:"vessels"`
	Styles           []TravelStyle      `yaml:"styles"`
	PortMultipliers  map[string]float64 `yaml:"port_multipliers"`
	StyleMultipliers map[string]float64 `yaml:"style_multipliers"`
}
