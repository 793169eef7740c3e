package directory

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
)

// MemoryStore serves deterministic sample listings. It backs local
// development and tests; production points the lookup at postgres.
type MemoryStore struct{}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

var listingTemplates = []struct {
	pattern string
	street  string
}{
	{"%s %s Co.", "120 Main St"},
	{"Reliable %s Services", "48 Oak Ave"},
	{"%s Pros of %s", "301 Elm Dr"},
	{"First Choice %s", "77 Cedar Ln"},
}

// Search returns four stable listings derived from the service and
// location strings. Same query, same listings.
func (m *MemoryStore) Search(_ context.Context, service, location string) ([]ServiceProvider, error) {
	service = strings.TrimSpace(service)
	location = strings.TrimSpace(location)
	if service == "" || location == "" {
		return nil, fmt.Errorf("directory: service and location are required")
	}

	title := titleCase(service)
	out := make([]ServiceProvider, 0, len(listingTemplates))
	for i, tpl := range listingTemplates {
		var name string
		switch strings.Count(tpl.pattern, "%s") {
		case 2:
			if i == 0 {
				name = fmt.Sprintf(tpl.pattern, titleCase(location), title)
			} else {
				name = fmt.Sprintf(tpl.pattern, title, titleCase(location))
			}
		default:
			name = fmt.Sprintf(tpl.pattern, title)
		}
		seed := hashString(name + "|" + location)
		out = append(out, ServiceProvider{
			Name:        name,
			Rating:      3.5 + float64(seed%16)/10.0, // 3.5 .. 5.0
			ReviewCount: 12 + int(seed%480),
			Address:     fmt.Sprintf("%s, %s", tpl.street, location),
		})
	}
	return out, nil
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func hashString(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return h.Sum32()
}
