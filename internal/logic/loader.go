package logic

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"expodir/internal/domain"
	"expodir/internal/eventbus"
	"expodir/internal/gateway"
)

// DefaultMaxTries bounds reference table retries
const DefaultMaxTries = 4

// ReferenceLoader fetches both reference tables once at startup
type ReferenceLoader struct {
	fetcher  TermFetcher
	store    ReferenceStore
	bus      eventbus.EventBus
	params   url.Values
	maxTries uint
	backOff  func() backoff.BackOff
}

// LoadResult reports the outcome of each table; a nil error means loaded
type LoadResult struct {
	Industries    int
	Countries     int
	IndustriesErr error
	CountriesErr  error
}

// Err joins the per-table errors
func (r LoadResult) Err() error {
	return errors.Join(r.IndustriesErr, r.CountriesErr)
}

// NewReferenceLoader creates a loader writing into store
func NewReferenceLoader(fetcher TermFetcher, store ReferenceStore, bus eventbus.EventBus, params url.Values) *ReferenceLoader {
	return &ReferenceLoader{
		fetcher:  fetcher,
		store:    store,
		bus:      bus,
		params:   params,
		maxTries: DefaultMaxTries,
		backOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 300 * time.Millisecond
			b.MaxInterval = 3 * time.Second
			return b
		},
	}
}

// WithRetry overrides the retry policy
func (l *ReferenceLoader) WithRetry(maxTries uint, b func() backoff.BackOff) *ReferenceLoader {
	l.maxTries = maxTries
	l.backOff = b
	return l
}

// Load fetches both tables concurrently. The tables are independent: one
// failing does not cancel or discard the other.
func (l *ReferenceLoader) Load(ctx context.Context) LoadResult {
	var (
		result     LoadResult
		industries []domain.Term
		countries  []domain.Term
	)

	var g errgroup.Group
	g.Go(func() error {
		industries, result.IndustriesErr = l.fetch(ctx, ResourceIndustry)
		return nil
	})
	g.Go(func() error {
		countries, result.CountriesErr = l.fetch(ctx, ResourceCountry)
		return nil
	})
	_ = g.Wait()

	if result.IndustriesErr == nil {
		l.store.SetIndustries(industries)
		result.Industries = len(industries)
		l.publish(eventbus.ReferenceLoadedEvent{Table: ResourceIndustry, Count: len(industries)})
	}
	if result.CountriesErr == nil {
		l.store.SetCountries(countries)
		result.Countries = len(countries)
		l.publish(eventbus.ReferenceLoadedEvent{Table: ResourceCountry, Count: len(countries)})
	}

	if err := result.Err(); err != nil {
		zap.S().Errorf("Reference data incomplete: %v", err)
		l.publish(eventbus.ErrorEvent{Message: "failed to load reference data", Err: err})
	} else {
		zap.S().Infof("Loaded %d industries and %d countries", result.Industries, result.Countries)
	}

	return result
}

func (l *ReferenceLoader) fetch(ctx context.Context, resource string) ([]domain.Term, error) {
	op := func() ([]domain.Term, error) {
		terms, err := l.fetcher.FetchTerms(ctx, resource, l.params)
		if err != nil && !retryable(err) {
			return nil, backoff.Permanent(err)
		}
		return terms, err
	}

	terms, err := backoff.Retry(ctx, op,
		backoff.WithBackOff(l.backOff()),
		backoff.WithMaxTries(l.maxTries),
		backoff.WithNotify(func(err error, next time.Duration) {
			zap.S().Warnf("Loading %s failed, retrying in %s: %v", resource, next, err)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", resource, err)
	}
	return terms, nil
}

// retryable reports whether another attempt could succeed. Malformed
// bodies and client errors other than rate limiting will not.
func retryable(err error) bool {
	var decodeErr *gateway.DecodeError
	if errors.As(err, &decodeErr) {
		return false
	}
	var httpErr *gateway.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode >= 500 || httpErr.StatusCode == http.StatusTooManyRequests
	}
	return !errors.Is(err, context.Canceled)
}

func (l *ReferenceLoader) publish(e eventbus.DomainEvent) {
	if l.bus != nil {
		l.bus.Publish(e)
	}
}
