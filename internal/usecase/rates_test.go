package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"RateWatch/pkg/cache"
	xlogger "RateWatch/pkg/logger"
)

type fakeSource struct {
	name  string
	value float64
	err   error
	calls int
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) Fetch(context.Context) (float64, error) {
	f.calls++
	return f.value, f.err
}

type noopMetrics struct{}

func (noopMetrics) RecordFetch(string)             {}
func (noopMetrics) RecordError(string)             {}
func (noopMetrics) RecordLastRate(string, float64) {}
func (noopMetrics) RecordLatency(string, float64)  {}
func (noopMetrics) RecordGuidance(string, string)  {}

func testLogger(t *testing.T) *xlogger.Logger {
	t.Helper()
	l, err := xlogger.New(&xlogger.Config{Level: "error", Format: "console", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l
}

func newTestFetcher(t *testing.T, treasury, mortgage *fakeSource, c cache.Service) *RateFetcher {
	t.Helper()
	return NewRateFetcher(treasury, mortgage, c, time.Hour, nil, 100, 100, noopMetrics{}, testLogger(t))
}

func TestSnapshotComplete(t *testing.T) {
	ts := &fakeSource{name: "treasury", value: 4.50}
	ms := &fakeSource{name: "mortgage", value: 6.92}
	f := newTestFetcher(t, ts, ms, nil)

	snap := f.Snapshot(context.Background())
	if !snap.Complete() {
		t.Fatalf("expected complete snapshot: %+v", snap)
	}
	if snap.Spread == nil || *snap.Spread != 2.42 {
		t.Fatalf("expected spread 2.42, got %v", snap.Spread)
	}
	if len(snap.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", snap.Warnings)
	}
}

func TestSnapshotAbsentPropagation(t *testing.T) {
	ts := &fakeSource{name: "treasury", err: fmt.Errorf("connection refused")}
	ms := &fakeSource{name: "mortgage", value: 6.92}
	f := newTestFetcher(t, ts, ms, nil)

	snap := f.Snapshot(context.Background())
	if snap.TreasuryYield != nil {
		t.Fatalf("expected absent treasury yield")
	}
	if snap.MortgageRate == nil || *snap.MortgageRate != 6.92 {
		t.Fatalf("expected mortgage rate 6.92, got %v", snap.MortgageRate)
	}
	if snap.Spread != nil {
		t.Fatalf("spread must be absent when an input is missing")
	}
	if len(snap.Warnings) != 1 {
		t.Fatalf("expected one warning, got %v", snap.Warnings)
	}
}

func TestTreasuryCached(t *testing.T) {
	ts := &fakeSource{name: "treasury", value: 4.50}
	ms := &fakeSource{name: "mortgage", value: 6.92}
	c := cache.NewMemoryCache()
	defer c.Close()
	f := newTestFetcher(t, ts, ms, c)

	ctx := context.Background()
	f.Snapshot(ctx)
	f.Snapshot(ctx)
	f.Snapshot(ctx)

	if ts.calls != 1 {
		t.Fatalf("treasury should be fetched once within the TTL, got %d", ts.calls)
	}
	if ms.calls != 3 {
		t.Fatalf("mortgage must be re-fetched every call, got %d", ms.calls)
	}
}

func TestMortgageNotCached(t *testing.T) {
	ts := &fakeSource{name: "treasury", err: fmt.Errorf("down")}
	ms := &fakeSource{name: "mortgage", err: fmt.Errorf("down")}
	c := cache.NewMemoryCache()
	defer c.Close()
	f := newTestFetcher(t, ts, ms, c)

	ctx := context.Background()
	f.Snapshot(ctx)
	snap := f.Snapshot(ctx)

	if snap.TreasuryYield != nil || snap.MortgageRate != nil {
		t.Fatalf("both values should be absent: %+v", snap)
	}
	// errors are never cached
	if ts.calls != 2 || ms.calls != 2 {
		t.Fatalf("expected 2 calls each, got treasury=%d mortgage=%d", ts.calls, ms.calls)
	}
}
