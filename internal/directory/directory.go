package directory

import "context"

// ServiceProvider is one local-business listing returned by a lookup.
type ServiceProvider struct {
	Name        string  `json:"name"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
	Address     string  `json:"address"`
}

// Directory looks up local service providers. The AI layer consumes it
// through the findLocalServiceProviders tool and owns only this
// contract, not the implementation behind it.
type Directory interface {
	Search(ctx context.Context, service, location string) ([]ServiceProvider, error)
}

// NewFromConfig picks the postgres backend when a DSN is configured and
// reachable, otherwise the built-in in-memory dataset.
func NewFromConfig(dsn string, cacheSize int) Directory {
	if dsn == "" {
		return NewMemoryStore()
	}
	s, err := NewPostgresStore(dsn, cacheSize)
	if err != nil {
		return NewMemoryStore()
	}
	return s
}
