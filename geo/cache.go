package geo

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"

	"github.com/sagip-ph/sagip-api/schema"
)

// CachedLocationResolver memoizes a wrapped resolver with LRU eviction.
// Keys are coordinates rounded to four decimals, about eleven meters, so
// nearby probes share an entry. Failed lookups are not cached and a flaky
// upstream can recover on the next call.
type CachedLocationResolver struct {
	resolver LocationResolver
	cache    *lru.Cache
}

func NewCachedLocationResolver(resolver LocationResolver, size int) (*CachedLocationResolver, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}

	return &CachedLocationResolver{
		resolver: resolver,
		cache:    cache,
	}, nil
}

func (r *CachedLocationResolver) GetPoliticalInfo(loc schema.Location) (schema.Location, error) {
	key := fmt.Sprintf("%.4f:%.4f", loc.Latitude, loc.Longitude)

	if cached, ok := r.cache.Get(key); ok {
		resolved := cached.(schema.Location)
		resolved.Latitude = loc.Latitude
		resolved.Longitude = loc.Longitude
		return resolved, nil
	}

	resolved, err := r.resolver.GetPoliticalInfo(loc)
	if err != nil {
		return resolved, err
	}

	r.cache.Add(key, resolved)

	return resolved, nil
}
