package state

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"pingdash/internal/models"
)

// Snapshot is everything one successful acquisition produced. It is never
// modified after NewSnapshot returns; a newer acquisition builds a new one.
type Snapshot struct {
	ID        uuid.UUID
	FetchedAt time.Time
	System    models.SystemInfo
	Network   models.NetworkInfo
	Pings     models.PingResultSet
}

// NewSnapshot assembles a snapshot from the three decoded payloads.
func NewSnapshot(sys models.SystemInfo, netw models.NetworkInfo, pings models.PingResultSet) *Snapshot {
	return &Snapshot{
		ID:        uuid.New(),
		FetchedAt: time.Now(),
		System:    sys,
		Network:   netw,
		Pings:     pings,
	}
}

// Store holds the current snapshot. Replacement is a single pointer swap so
// readers see either the previous snapshot or the new one, never a mix.
type Store struct {
	current *atomic.Pointer[Snapshot]
	logger  *zap.Logger
}

// NewStore creates an empty store
func NewStore(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		current: atomic.NewPointer[Snapshot](nil),
		logger:  logger,
	}
}

// Current returns the latest snapshot, or nil before the first success.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// Replace swaps in snap and returns the snapshot it replaced.
func (s *Store) Replace(snap *Snapshot) *Snapshot {
	return s.current.Swap(snap)
}

// Apply is the completion step of an acquisition. A failed acquisition is
// logged and leaves the current snapshot untouched.
func (s *Store) Apply(snap *Snapshot, err error) bool {
	if err != nil {
		s.logger.Error("acquisition_failed", zap.Error(err))
		return false
	}
	if snap == nil {
		return false
	}
	prev := s.Replace(snap)

	fields := []zap.Field{
		zap.String("snapshot_id", snap.ID.String()),
		zap.Int("successful_pings", len(snap.Pings.SuccessfulPings)),
		zap.Int("unsuccessful_pings", len(snap.Pings.UnsuccessfulPings)),
	}
	if prev != nil {
		fields = append(fields, zap.String("replaced_id", prev.ID.String()))
	}
	s.logger.Info("snapshot_applied", fields...)
	return true
}
