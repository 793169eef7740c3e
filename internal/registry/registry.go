package registry

import "strings"

// Category groups calculators on the catalog page.
type Category string

const (
	CategoryOutdoor    Category = "outdoor"
	CategoryInterior   Category = "interior"
	CategoryStructural Category = "structural"
	CategoryFinishing  Category = "finishing"
)

// Calculator describes one catalog entry. Entries are immutable after
// process start; the AI layer only reads them.
type Calculator struct {
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
}

// Registry is a read-only, ordered lookup table over the catalog.
type Registry struct {
	ordered []Calculator
	byName  map[string]Calculator
	bySlug  map[string]Calculator
}

// New builds a registry from the given catalog. Later entries with a
// duplicate name or slug are dropped so lookups stay unambiguous.
func New(catalog []Calculator) *Registry {
	r := &Registry{
		byName: make(map[string]Calculator, len(catalog)),
		bySlug: make(map[string]Calculator, len(catalog)),
	}
	for _, c := range catalog {
		name := strings.TrimSpace(c.Name)
		slug := strings.TrimSpace(c.Slug)
		if name == "" || slug == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, dup := r.byName[key]; dup {
			continue
		}
		if _, dup := r.bySlug[slug]; dup {
			continue
		}
		c.Name = name
		c.Slug = slug
		r.ordered = append(r.ordered, c)
		r.byName[key] = c
		r.bySlug[slug] = c
	}
	return r
}

// Default returns the registry backed by the built-in catalog.
func Default() *Registry { return New(Catalog) }

// All returns the catalog in declaration order. The returned slice is a
// copy; callers may not mutate registry state through it.
func (r *Registry) All() []Calculator {
	if r == nil {
		return nil
	}
	out := make([]Calculator, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Len reports the number of catalog entries.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.ordered)
}

// ByName resolves a calculator by exact name.
func (r *Registry) ByName(name string) (Calculator, bool) {
	c, ok := r.lookupName(name)
	if !ok || c.Name != strings.TrimSpace(name) {
		return Calculator{}, false
	}
	return c, true
}

// ByNameFold resolves a calculator by case-insensitive name. Slug
// resolution for UI navigation goes through this one.
func (r *Registry) ByNameFold(name string) (Calculator, bool) {
	return r.lookupName(name)
}

// BySlug resolves a calculator by slug.
func (r *Registry) BySlug(slug string) (Calculator, bool) {
	if r == nil {
		return Calculator{}, false
	}
	c, ok := r.bySlug[strings.TrimSpace(slug)]
	return c, ok
}

func (r *Registry) lookupName(name string) (Calculator, bool) {
	if r == nil {
		return Calculator{}, false
	}
	c, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}
