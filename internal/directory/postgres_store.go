package directory

import (
	"context"
	"database/sql"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresStore reads listings from a service_providers table. Results
// are cached per (service, location) pair; the cache belongs to this
// external collaborator, the AI core itself stays cache-free.
type PostgresStore struct {
	db    *sql.DB
	cache *lru.Cache[string, []ServiceProvider]
}

func NewPostgresStore(dsn string, cacheSize int) (*PostgresStore, error) {
	db, err := sql.Open("pgx", strings.TrimSpace(dsn))
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if cacheSize <= 0 {
		cacheSize = 256
	}
	cache, err := lru.New[string, []ServiceProvider](cacheSize)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &PostgresStore{db: db, cache: cache}, nil
}

func (s *PostgresStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *PostgresStore) Search(ctx context.Context, service, location string) ([]ServiceProvider, error) {
	service = strings.ToLower(strings.TrimSpace(service))
	location = strings.TrimSpace(location)

	key := service + "|" + strings.ToLower(location)
	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT name, rating, review_count, address
		FROM service_providers
		WHERE lower(service) = $1 AND location ILIKE $2
		ORDER BY rating DESC, review_count DESC
		LIMIT 10`,
		service, "%"+location+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ServiceProvider{}
	for rows.Next() {
		var p ServiceProvider
		if err := rows.Scan(&p.Name, &p.Rating, &p.ReviewCount, &p.Address); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	s.cache.Add(key, out)
	return out, nil
}
