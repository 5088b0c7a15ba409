package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/i474232898/weather-dashboard/internal/presentation"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

// Phase is the lifecycle position of the dashboard's current query.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseSuccess Phase = "success"
	PhaseFailure Phase = "failure"
)

// State is a snapshot of the dashboard. Forecast is set only in PhaseSuccess
// and Err only in PhaseFailure. Theme keeps the last successful forecast's
// theme while a new query loads or fails.
type State struct {
	Phase     Phase
	RequestID uint64
	Query     string
	Forecast  *weather.Forecast
	Theme     presentation.Theme
	Err       error
}

// Dashboard holds the query lifecycle for one dashboard. Every query gets a
// new, strictly increasing request id and only the latest id may settle the
// state, so a slow earlier query can never overwrite a newer one.
type Dashboard struct {
	mu     sync.RWMutex
	state  State
	lastID uint64

	fetcher  weather.Fetcher
	fallback string

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates an idle Dashboard. fallback is the location used by Retry.
func New(fetcher weather.Fetcher, fallback string) *Dashboard {
	ctx, cancel := context.WithCancel(context.Background())
	return &Dashboard{
		state:    State{Phase: PhaseIdle, Theme: presentation.DefaultTheme()},
		fetcher:  fetcher,
		fallback: fallback,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// State returns a copy of the current state.
func (d *Dashboard) State() State {
	d.mu.RLock()
	defer d.mu.RUnlock()

	s := d.state
	if s.Forecast != nil {
		f := s.Forecast.Clone()
		s.Forecast = &f
	}
	return s
}

// Begin enters Loading for query under a new request id. Any previous error
// is cleared.
func (d *Dashboard) Begin(query string) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.begin(query)
}

// begin requires d.mu to be held.
func (d *Dashboard) begin(query string) uint64 {
	d.lastID++
	d.state = State{
		Phase:     PhaseLoading,
		RequestID: d.lastID,
		Query:     query,
		Theme:     d.state.Theme,
	}
	return d.lastID
}

// Resolve settles request id with its result. It reports false and leaves the
// state untouched when id is not the latest issued request.
func (d *Dashboard) Resolve(id uint64, f weather.Forecast, err error) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if id != d.lastID {
		log.Printf("DEBUG: discarding stale result for request %d (latest %d)", id, d.lastID)
		return false
	}

	next := State{
		RequestID: id,
		Query:     d.state.Query,
		Theme:     d.state.Theme,
	}
	if err != nil {
		next.Phase = PhaseFailure
		next.Err = err
	} else {
		f = f.Clone()
		next.Phase = PhaseSuccess
		next.Forecast = &f
		next.Theme = presentation.SelectTheme(f.Current.Condition, f.Current.IsDay)
	}
	d.state = next
	return true
}

// Submit starts an acquisition for query and returns its request id. The
// result is applied asynchronously through Resolve.
func (d *Dashboard) Submit(query string) uint64 {
	id := d.Begin(query)
	d.fetch(id, query)
	return id
}

func (d *Dashboard) fetch(id uint64, query string) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		f, err := d.fetcher.FetchForecast(d.ctx, query)
		if !d.Resolve(id, f, err) {
			return
		}
		if err != nil {
			log.Printf("INFO: request %d for %q failed", id, query)
			return
		}
		log.Printf("INFO: request %d for %q settled: %s, %s", id, query, f.Location.City, f.Location.Country)
	}()
}

// Fallback returns the location Retry queries.
func (d *Dashboard) Fallback() string {
	return d.fallback
}

// Retry submits the fallback location.
func (d *Dashboard) Retry() uint64 {
	return d.Submit(d.fallback)
}

// Locate submits a query built from a geolocation reading. An unusable
// reading is recorded as a denied geolocation.
func (d *Dashboard) Locate(lat, lon float64) (uint64, error) {
	q, err := weather.CoordinatesQuery(lat, lon)
	if err != nil {
		id := d.fail("", err)
		return id, err
	}
	return d.Submit(q), nil
}

// DenyLocation records that the geolocation read was refused or failed. It
// supersedes any query in flight and is not retried.
func (d *Dashboard) DenyLocation(reason string) uint64 {
	err := weather.ErrGeolocationDenied
	if reason != "" {
		err = fmt.Errorf("%w: %s", weather.ErrGeolocationDenied, reason)
	}
	return d.fail("", err)
}

// Refresh resubmits the current query. It does nothing while a query is in
// flight, before the first query or after a denied geolocation.
func (d *Dashboard) Refresh() (uint64, bool) {
	d.mu.Lock()
	s := d.state
	if s.Phase == PhaseLoading || s.Query == "" {
		d.mu.Unlock()
		return 0, false
	}
	if s.Phase == PhaseFailure && errors.Is(s.Err, weather.ErrGeolocationDenied) {
		d.mu.Unlock()
		return 0, false
	}
	id := d.begin(s.Query)
	d.mu.Unlock()

	d.fetch(id, s.Query)
	return id, true
}

// Wait blocks until all in-flight acquisitions have settled.
func (d *Dashboard) Wait() {
	d.wg.Wait()
}

// Close cancels in-flight acquisitions and waits for them to return.
func (d *Dashboard) Close() {
	d.cancel()
	d.wg.Wait()
}

func (d *Dashboard) fail(query string, err error) uint64 {
	id := d.Begin(query)
	d.Resolve(id, weather.Forecast{}, err)
	return id
}
