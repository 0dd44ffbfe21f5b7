package state

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"pingdash/internal/models"
)

func sampleSnapshot(ip string) *Snapshot {
	return NewSnapshot(
		models.SystemInfo{Brand: "Lenovo"},
		models.NetworkInfo{IPAddress: "192.168.0.2"},
		models.PingResultSet{SuccessfulPings: []models.PingOutcome{{IP: ip, Output: "ok"}}},
	)
}

func TestStore_EmptyUntilApplied(t *testing.T) {
	s := NewStore(nil)
	if s.Current() != nil {
		t.Fatal("new store should have no snapshot")
	}
}

func TestStore_ApplySuccessReplacesWholesale(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s := NewStore(zap.New(core))

	first := sampleSnapshot("10.0.0.1")
	if !s.Apply(first, nil) {
		t.Fatal("expected apply to succeed")
	}
	second := sampleSnapshot("10.0.0.9")
	if !s.Apply(second, nil) {
		t.Fatal("expected second apply to succeed")
	}

	if s.Current() != second {
		t.Fatal("store should point at the newest snapshot")
	}
	if first.Pings.SuccessfulPings[0].IP != "10.0.0.1" {
		t.Fatal("previous snapshot must not be mutated")
	}
	if n := logs.FilterMessage("snapshot_applied").Len(); n != 2 {
		t.Fatalf("want 2 snapshot_applied logs, got %d", n)
	}
}

func TestStore_ApplyFailureKeepsPrevious(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s := NewStore(zap.New(core))

	prev := sampleSnapshot("10.0.0.1")
	s.Replace(prev)

	if s.Apply(nil, errors.New("network-info: HTTP 500")) {
		t.Fatal("apply with error should report false")
	}
	if s.Current() != prev {
		t.Fatal("failed acquisition must leave state unchanged")
	}
	if logs.FilterMessage("acquisition_failed").Len() != 1 {
		t.Fatalf("expected acquisition_failed log, got %v", logs.All())
	}
}

func TestNewSnapshot_UniqueIDs(t *testing.T) {
	a, b := sampleSnapshot("a"), sampleSnapshot("b")
	if a.ID == b.ID {
		t.Fatal("snapshot ids should differ")
	}
	if a.FetchedAt.IsZero() {
		t.Fatal("FetchedAt should be set")
	}
}
