// README: Catalog tests (validation, lookups, selection consistency).
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogLookups(t *testing.T) {
	c := Default()

	p, ok := c.Port("haifa")
	require.True(t, ok)
	assert.Equal(t, "Haifa Marina", p.Name)

	v, ok := c.Vessel("Luxury Catamaran")
	require.True(t, ok)
	assert.EqualValues(t, 5400, v.BaseRate)
	assert.Equal(t, 12, v.Capacity)

	s, ok := c.Style("executive")
	require.True(t, ok)
	assert.Equal(t, "Executive retreat", s.Label)

	assert.Equal(t, "sunset", c.DefaultStyle().ID)
	assert.Len(t, c.Ports(), 4)
	assert.Len(t, c.Vessels(), 5)
	assert.Len(t, c.Styles(), 4)

	_, ok = c.Port("eilat")
	assert.False(t, ok)
	_, ok = c.Vessel("Rowboat")
	assert.False(t, ok)
	_, ok = c.Style("party")
	assert.False(t, ok)
}

func TestFactorsDefaultToOne(t *testing.T) {
	c := Default()

	assert.Equal(t, 1.18, c.PortFactor("limassol"))
	assert.Equal(t, 1.0, c.PortFactor("haifa"))
	assert.Equal(t, 1.0, c.PortFactor("eilat"))
	assert.Equal(t, 1.02, c.StyleFactor("sunset"))
	assert.Equal(t, 1.0, c.StyleFactor(""))
}

func TestAllowedVesselsPreservesOrder(t *testing.T) {
	c := Default()

	assert.Equal(t,
		[]string{"Mediterranean Superyacht", "Expedition Motor Yacht"},
		c.AllowedVessels("athens"))
	assert.Empty(t, c.AllowedVessels("eilat"))

	// callers must not be able to mutate the catalog through the returned slice
	got := c.AllowedVessels("athens")
	got[0] = "Rowboat"
	assert.Equal(t, "Mediterranean Superyacht", c.AllowedVessels("athens")[0])

	assert.True(t, c.IsAllowed("jaffa", "Performance Monohull"))
	assert.False(t, c.IsAllowed("athens", "Luxury Catamaran"))
}

func TestReconcileVessel(t *testing.T) {
	d := DefaultData()
	d.Ports = append(d.Ports, PortEntry{Port: Port{ID: "dry-dock", Name: "Dry dock"}})
	c := MustNew(d)

	cases := []struct {
		name    string
		port    string
		current string
		want    string
	}{
		{"kept when allowed", "haifa", "Expedition Motor Yacht", "Expedition Motor Yacht"},
		{"reset to first when not allowed", "athens", "Luxury Catamaran", "Mediterranean Superyacht"},
		{"nothing selected picks first", "limassol", "", "Ocean Crossing Catamaran"},
		{"port without vessels clears", "dry-dock", "Luxury Catamaran", ""},
		{"unknown port clears", "eilat", "Luxury Catamaran", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, c.ReconcileVessel(tc.port, tc.current))
		})
	}
}

func TestNewRejectsInvalidData(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Data)
		want   error
	}{
		{"empty", func(d *Data) { *d = Data{} }, ErrEmptyCatalog},
		{"zero port factor", func(d *Data) { d.PortMultipliers["jaffa"] = 0 }, ErrInvalidFactor},
		{"negative style factor", func(d *Data) { d.StyleMultipliers["sunset"] = -1 }, ErrInvalidFactor},
		{"duplicate port", func(d *Data) { d.Ports = append(d.Ports, d.Ports[0]) }, ErrDuplicateID},
		{"duplicate style", func(d *Data) { d.Styles = append(d.Styles, d.Styles[0]) }, ErrDuplicateID},
		{"unknown allowed vessel", func(d *Data) { d.Ports[0].Vessels = append(d.Ports[0].Vessels, "Rowboat") }, ErrUnknownReference},
		{"zero capacity", func(d *Data) { d.Vessels[0].Capacity = 0 }, ErrInvalidVessel},
		{"zero base rate", func(d *Data) { d.Vessels[1].BaseRate = 0 }, ErrInvalidVessel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := DefaultData()
			tc.mutate(&d)
			_, err := New(d)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDataRoundTrip(t *testing.T) {
	c := Default()
	again, err := New(c.Data())
	require.NoError(t, err)
	assert.Equal(t, c.Ports(), again.Ports())
	assert.Equal(t, c.AllowedVessels("jaffa"), again.AllowedVessels("jaffa"))
	assert.Equal(t, c.PortFactor("athens"), again.PortFactor("athens"))
}
