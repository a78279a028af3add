// Package region maps back-layer mesh names to canonical anatomical regions
// and to the descriptive content shown for each region.
package region

import "github.com/Faultbox/toothview/pkg/math"

// ID is a canonical region key.
type ID string

// None is the absent region.
const None ID = ""

// Nerves is the shared identity of the three nerve meshes.
const Nerves ID = "nerves"

// AliasTable maps raw mesh names to canonical region ids.
type AliasTable map[string]ID

// DefaultAliases groups the three nerve meshes under a single region.
func DefaultAliases() AliasTable {
	return AliasTable{
		"nerve_blue_back":   Nerves,
		"nerve_yellow_back": Nerves,
		"nerve_red_back":    Nerves,
	}
}

// Bundle is the static content presented for a region.
type Bundle struct {
	Name           string
	Image          string
	LinePath       [3]math.Vec3
	TextPosition   math.Vec3
	ImagePosition  math.Vec3
	ImageScale     [2]float32
	BorderPosition math.Vec3
	BorderGeometry [3]float32
	ImageVisible   bool
	BorderVisible  bool
}

// DefaultBundle is shown when no region is resolved: no name, nothing visible.
var DefaultBundle = Bundle{}

// IsDefault reports whether b carries no content.
func (b Bundle) IsDefault() bool {
	return b == DefaultBundle
}

// Table resolves mesh names and serves bundles. It is read-only after
// construction.
type Table struct {
	aliases AliasTable
	bundles map[ID]Bundle
}

// NewTable builds a table from aliases and bundles. Both maps are copied.
func NewTable(aliases AliasTable, bundles map[ID]Bundle) *Table {
	t := &Table{
		aliases: make(AliasTable, len(aliases)),
		bundles: make(map[ID]Bundle, len(bundles)),
	}
	for k, v := range aliases {
		t.aliases[k] = v
	}
	for k, v := range bundles {
		t.bundles[k] = v
	}
	return t
}

// Resolve returns the canonical id for a mesh name. Names without an alias
// are their own id.
func (t *Table) Resolve(meshName string) ID {
	if id, ok := t.aliases[meshName]; ok {
		return id
	}
	return ID(meshName)
}

// Lookup returns the bundle for id, or DefaultBundle when id is None or has
// no entry.
func (t *Table) Lookup(id ID) Bundle {
	if id == None {
		return DefaultBundle
	}
	if b, ok := t.bundles[id]; ok {
		return b
	}
	return DefaultBundle
}

// IDs returns every id that has a bundle.
func (t *Table) IDs() []ID {
	ids := make([]ID, 0, len(t.bundles))
	for id := range t.bundles {
		ids = append(ids, id)
	}
	return ids
}

// Live holds the active table and lets it be replaced between frames. It is
// not synchronized; swap it on the goroutine that reads it.
type Live struct {
	t *Table
}

// NewLive wraps t.
func NewLive(t *Table) *Live {
	return &Live{t: t}
}

// Set replaces the active table. A nil table is ignored.
func (l *Live) Set(t *Table) {
	if t != nil {
		l.t = t
	}
}

// Table returns the active table.
func (l *Live) Table() *Table {
	return l.t
}

// Resolve delegates to the active table.
func (l *Live) Resolve(meshName string) ID {
	return l.t.Resolve(meshName)
}

// Lookup delegates to the active table.
func (l *Live) Lookup(id ID) Bundle {
	return l.t.Lookup(id)
}
