package logic

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"sync"
	"testing"

	"github.com/cenkalti/backoff/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expodir/internal/domain"
	"expodir/internal/gateway"
)

type fakeFetcher struct {
	mu       sync.Mutex
	calls    map[string]int
	failures map[string][]error // consumed one per call
	terms    map[string][]domain.Term
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		calls:    map[string]int{},
		failures: map[string][]error{},
		terms:    map[string][]domain.Term{},
	}
}

func (f *fakeFetcher) FetchTerms(_ context.Context, resource string, _ url.Values) ([]domain.Term, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[resource]++
	if errs := f.failures[resource]; len(errs) > 0 {
		f.failures[resource] = errs[1:]
		return nil, errs[0]
	}
	return f.terms[resource], nil
}

func (f *fakeFetcher) callCount(resource string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[resource]
}

func newTestLoader(f TermFetcher, store ReferenceStore) *ReferenceLoader {
	return NewReferenceLoader(f, store, nil, nil).WithRetry(3, func() backoff.BackOff {
		return &backoff.ZeroBackOff{}
	})
}

func transportErr(status int) error {
	return &gateway.TransportError{Resource: "x", Err: gateway.NewHTTPError(status, "http://x", http.StatusText(status))}
}

func TestLoadPopulatesBothTables(t *testing.T) {
	f := newFakeFetcher()
	f.terms[ResourceIndustry] = []domain.Term{{ID: 2, Name: "Tech"}, {ID: 1, Name: "Food"}}
	f.terms[ResourceCountry] = []domain.Term{{ID: 9, Name: "Indonesia"}}
	store := NewMemoryReferenceStore()

	res := newTestLoader(f, store).Load(context.Background())
	require.NoError(t, res.Err())

	assert.Equal(t, 2, res.Industries)
	assert.Equal(t, 1, res.Countries)
	assert.Equal(t, "Tech", store.Industries()[0].Name, "API order is kept")
	c, ok := store.Country(9)
	require.True(t, ok)
	assert.Equal(t, "Indonesia", c.Name)
}

func TestLoadRetriesTransientFailures(t *testing.T) {
	f := newFakeFetcher()
	f.failures[ResourceIndustry] = []error{transportErr(http.StatusBadGateway), transportErr(http.StatusServiceUnavailable)}
	f.terms[ResourceIndustry] = []domain.Term{{ID: 1, Name: "Food"}}
	store := NewMemoryReferenceStore()

	res := newTestLoader(f, store).Load(context.Background())
	require.NoError(t, res.Err())
	assert.Equal(t, 3, f.callCount(ResourceIndustry))
	assert.Equal(t, 1, f.callCount(ResourceCountry))
	assert.Len(t, store.Industries(), 1)
}

func TestLoadTablesAreIndependent(t *testing.T) {
	f := newFakeFetcher()
	f.failures[ResourceCountry] = []error{transportErr(500), transportErr(500), transportErr(500)}
	f.terms[ResourceIndustry] = []domain.Term{{ID: 1, Name: "Food"}}
	store := NewMemoryReferenceStore()

	res := newTestLoader(f, store).Load(context.Background())

	require.Error(t, res.Err())
	assert.NoError(t, res.IndustriesErr)
	assert.Error(t, res.CountriesErr)
	assert.Equal(t, 3, f.callCount(ResourceCountry), "bounded tries")
	assert.Len(t, store.Industries(), 1)
	assert.Empty(t, store.Countries())
}

func TestLoadDoesNotRetryPermanentFailures(t *testing.T) {
	f := newFakeFetcher()
	f.failures[ResourceIndustry] = []error{&gateway.DecodeError{Resource: ResourceIndustry, Reason: "expected a JSON array"}}
	f.failures[ResourceCountry] = []error{transportErr(http.StatusNotFound)}

	res := newTestLoader(f, NewMemoryReferenceStore()).Load(context.Background())

	var decodeErr *gateway.DecodeError
	assert.True(t, errors.As(res.IndustriesErr, &decodeErr))
	var httpErr *gateway.HTTPError
	require.True(t, errors.As(res.CountriesErr, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)

	assert.Equal(t, 1, f.callCount(ResourceIndustry))
	assert.Equal(t, 1, f.callCount(ResourceCountry))
}

func TestRetryable(t *testing.T) {
	assert.True(t, retryable(errors.New("connection reset")))
	assert.True(t, retryable(transportErr(http.StatusTooManyRequests)))
	assert.True(t, retryable(transportErr(http.StatusInternalServerError)))
	assert.False(t, retryable(transportErr(http.StatusForbidden)))
	assert.False(t, retryable(context.Canceled))
}
