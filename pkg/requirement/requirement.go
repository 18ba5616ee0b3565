package requirement

import (
	"slices"

	"github.com/scylladb/go-set/strset"
)

// Requirement is a parsed requirement line. It is either a [*Named] or a
// [*Location]; no other implementations exist.
type Requirement interface {
	// Fields returns the flat name/url/version_specs/extras view.
	Fields() Fields
	// String returns the canonical pip form. See [Format].
	String() string

	isRequirement()
}

// Fields is the flat view of a requirement shared by both variants.
// An absent name or URL is the empty string; slices are never nil.
type Fields struct {
	Name         string        `json:"name,omitempty" toml:"name,omitempty"`
	URL          string        `json:"url,omitempty" toml:"url,omitempty"`
	VersionSpecs []VersionSpec `json:"version_specs" toml:"version_specs,omitempty"`
	Extras       []string      `json:"extras" toml:"extras,omitempty"`
}

// Named is a requirement on a package by name, optionally with extras and
// version constraints.
type Named struct {
	name   string
	specs  []VersionSpec
	extras *strset.Set
}

// Name returns the lowercased package name.
func (n *Named) Name() string { return n.name }

// VersionSpecs returns a copy of the constraints in source order.
func (n *Named) VersionSpecs() []VersionSpec {
	if len(n.specs) == 0 {
		return []VersionSpec{}
	}
	return slices.Clone(n.specs)
}

// Extras returns the extras sorted ascending.
func (n *Named) Extras() []string {
	extras := n.extras.List()
	slices.Sort(extras)
	return extras
}

// HasExtra reports whether extra was requested.
func (n *Named) HasExtra(extra string) bool { return n.extras.Has(extra) }

func (n *Named) Fields() Fields {
	return Fields{
		Name:         n.name,
		VersionSpecs: n.VersionSpecs(),
		Extras:       n.Extras(),
	}
}

func (n *Named) isRequirement() {}

// Location is a requirement on a path, archive URL or VCS URL. The URL has
// its fragment removed; Name is set only when the fragment carried an egg
// name.
type Location struct {
	url  string
	name string
}

// URL returns the fragment-free, VCS-normalized location.
func (l *Location) URL() string { return l.url }

// Name returns the lowercased egg name, or "" when there was none.
func (l *Location) Name() string { return l.name }

func (l *Location) Fields() Fields {
	return Fields{
		Name:         l.name,
		URL:          l.url,
		VersionSpecs: []VersionSpec{},
		Extras:       []string{},
	}
}

func (l *Location) isRequirement() {}

// Equal reports whether a and b have the same name, URL, version specs
// (in order) and extras (as sets).
func Equal(a, b Requirement) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	fa, fb := a.Fields(), b.Fields()
	return fa.Name == fb.Name &&
		fa.URL == fb.URL &&
		slices.Equal(fa.VersionSpecs, fb.VersionSpecs) &&
		slices.Equal(fa.Extras, fb.Extras)
}
