package geo

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sagip-ph/sagip-api/schema"
)

type countingResolver struct {
	calls int
	err   error
}

func (r *countingResolver) GetPoliticalInfo(loc schema.Location) (schema.Location, error) {
	r.calls++
	if r.err != nil {
		return schema.Location{}, r.err
	}

	loc.Country = "Philippines"
	loc.Province = "Metro Manila"
	loc.City = "Quezon City"
	return loc, nil
}

func TestCachedResolverReusesEntries(t *testing.T) {
	inner := &countingResolver{}
	resolver, err := NewCachedLocationResolver(inner, 10)
	assert.NoError(t, err)

	loc := schema.Location{Latitude: 14.6515, Longitude: 121.0493}

	first, err := resolver.GetPoliticalInfo(loc)
	assert.NoError(t, err)
	assert.Equal(t, "Quezon City", first.City)

	second, err := resolver.GetPoliticalInfo(loc)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.calls)

	// within rounding distance shares the entry
	_, err = resolver.GetPoliticalInfo(schema.Location{Latitude: 14.65151, Longitude: 121.04929})
	assert.NoError(t, err)
	assert.Equal(t, 1, inner.calls)
}

func TestCachedResolverSkipsFailures(t *testing.T) {
	inner := &countingResolver{err: fmt.Errorf("upstream down")}
	resolver, err := NewCachedLocationResolver(inner, 10)
	assert.NoError(t, err)

	loc := schema.Location{Latitude: 14.6515, Longitude: 121.0493}

	_, err = resolver.GetPoliticalInfo(loc)
	assert.Error(t, err)

	inner.err = nil
	resolved, err := resolver.GetPoliticalInfo(loc)
	assert.NoError(t, err)
	assert.Equal(t, "Philippines", resolved.Country)
	assert.Equal(t, 2, inner.calls)
}

func TestCachedResolverEviction(t *testing.T) {
	inner := &countingResolver{}
	resolver, err := NewCachedLocationResolver(inner, 1)
	assert.NoError(t, err)

	a := schema.Location{Latitude: 14.0, Longitude: 121.0}
	b := schema.Location{Latitude: 15.0, Longitude: 122.0}

	_, _ = resolver.GetPoliticalInfo(a)
	_, _ = resolver.GetPoliticalInfo(b)
	_, _ = resolver.GetPoliticalInfo(a)
	assert.Equal(t, 3, inner.calls)
}
