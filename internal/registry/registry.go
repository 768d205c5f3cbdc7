package registry

import "slices"

// Registry is an immutable, indexed set of entry points.
type Registry struct {
	entries []EntryPoint
	byName  map[string]int
	latest  Version
}

// New validates entries and builds the name index. Every entry point that is
// not exempt must have a governing parameter; anything else could only be
// dispatched by guessing an implementation.
func New(entries []EntryPoint) (*Registry, error) {
	r := &Registry{
		entries: make([]EntryPoint, 0, len(entries)),
		byName:  make(map[string]int, len(entries)),
	}

	for _, ep := range entries {
		if ep.Name == "" {
			return nil, malformed("entry point #%d has no name", len(r.entries))
		}
		if _, dup := r.byName[ep.Name]; dup {
			return nil, malformed("entry point %s is defined more than once", ep.Name)
		}
		if ep.Exempt != IsExempt(ep.Name) {
			return nil, malformed("entry point %s: exemption flag disagrees with the exemption set", ep.Name)
		}
		if !ep.Exempt {
			if _, ok := ep.Governor(); !ok {
				return nil, malformed("entry point %s has no handle parameter and is not exempt", ep.Name)
			}
		}
		if r.latest.Less(ep.Version) {
			r.latest = ep.Version
		}

		r.byName[ep.Name] = len(r.entries)
		r.entries = append(r.entries, ep.clone())
	}

	return r, nil
}

// MustNew is New for tables known to be valid, such as generated ones.
func MustNew(entries []EntryPoint) *Registry {
	r, err := New(entries)
	if err != nil {
		panic(err)
	}
	return r
}

// Len returns the number of entry points.
func (r *Registry) Len() int {
	return len(r.entries)
}

// At returns the entry point in slot i.
func (r *Registry) At(i int) EntryPoint {
	return r.entries[i].clone()
}

// Entries returns a copy of every entry point in registry order.
func (r *Registry) Entries() []EntryPoint {
	out := make([]EntryPoint, len(r.entries))
	for i, ep := range r.entries {
		out[i] = ep.clone()
	}
	return out
}

// Lookup finds an entry point by name.
func (r *Registry) Lookup(name string) (EntryPoint, bool) {
	i, ok := r.byName[name]
	if !ok {
		return EntryPoint{}, false
	}
	return r.entries[i].clone(), true
}

// Index returns the slot of the named entry point.
func (r *Registry) Index(name string) (int, bool) {
	i, ok := r.byName[name]
	return i, ok
}

// VersionOf returns the version that introduced name. Extension entry points
// report the zero Version.
func (r *Registry) VersionOf(name string) (Version, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Version{}, false
	}
	return r.entries[i].Version, true
}

// Latest returns the highest core version any entry point requires.
func (r *Registry) Latest() Version {
	return r.latest
}

// Versions returns the distinct core versions that introduce at least one
// entry point, oldest first.
func (r *Registry) Versions() []Version {
	seen := make(map[Version]bool)
	var out []Version
	for _, ep := range r.entries {
		if ep.Version.IsZero() || seen[ep.Version] {
			continue
		}
		seen[ep.Version] = true
		out = append(out, ep.Version)
	}
	slices.SortFunc(out, Version.Compare)
	return out
}
