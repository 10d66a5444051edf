// Package store owns the canonical expense collection.
//
// A Store hydrates once from its persistence adapter, serves reads and
// mutations from memory, and persists asynchronously: every mutation
// marks the collection dirty and at most one write-back is in flight at a
// time, so the latest snapshot always wins and older snapshots can never
// overwrite newer ones. In-memory state is authoritative for the running
// session; a failed write-back is logged and retried by the next one.
package store

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/semaphore"

	"spendlog/internal/aggregate"
	"spendlog/internal/core"
	"spendlog/internal/kv"
	"spendlog/internal/log"
)

type state int

const (
	stateUninitialized state = iota
	stateHydrating
	stateReady
)

const defaultWriteTimeout = 10 * time.Second

// Store is the single source of truth for expense records.
type Store struct {
	kv           kv.Store
	key          string
	logger       *log.Logger
	writeTimeout time.Duration
	clock        func() time.Time

	mu     sync.Mutex
	state  state
	items  []core.Expense
	total  decimal.Decimal
	rev    uint64
	lastID int64

	// Single write-back slot: TryAcquire and Release happen under mu, so
	// "dirty but no writer running" can never be observed.
	writeSlot *semaphore.Weighted
	dirty     bool
	writes    sync.WaitGroup

	reports *reportCache
}

// Option configures a Store.
type Option func(*Store)

// WithKey overrides the persistence key.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithWriteTimeout bounds each write-back attempt.
func WithWriteTimeout(d time.Duration) Option {
	return func(s *Store) { s.writeTimeout = d }
}

// WithClock injects the time source. Test hook.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) { s.clock = clock }
}

// New creates an unhydrated store over the given persistence adapter.
func New(adapter kv.Store, opts ...Option) *Store {
	s := &Store{
		kv:           adapter,
		key:          kv.ExpensesKey,
		writeTimeout: defaultWriteTimeout,
		clock:        time.Now,
		total:        decimal.Zero,
		writeSlot:    semaphore.NewWeighted(1),
		reports:      newReportCache(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.New(log.DefaultConfig()).WithComponent(log.ComponentStore)
	}
	return s
}

// Hydrate loads the persisted collection. It runs at most once; later
// calls are no-ops. Hydration never fails: an adapter error or a corrupt
// blob is logged and the store comes up Ready with an empty collection,
// the same as first launch.
func (s *Store) Hydrate(ctx context.Context) {
	s.mu.Lock()
	if s.state != stateUninitialized {
		s.mu.Unlock()
		return
	}
	s.state = stateHydrating
	s.mu.Unlock()

	items := []core.Expense{}
	raw, ok, err := s.kv.Get(ctx, s.key)
	switch {
	case err != nil:
		s.logger.WarnContext(ctx, "hydration read failed, starting empty",
			log.FieldKey, s.key, log.FieldError, err)
	case ok:
		parsed, perr := core.DecodeCollection(raw)
		if perr != nil {
			s.logger.WarnContext(ctx, "persisted collection is corrupt, starting empty",
				log.FieldKey, s.key, log.FieldError, perr)
		} else {
			items = parsed
		}
	}

	s.mu.Lock()
	s.items = items
	s.total = aggregate.Total(items)
	s.state = stateReady
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "store hydrated", log.FieldKey, s.key, log.FieldCount, len(items))
}

// IsReady reports whether hydration has completed.
func (s *Store) IsReady() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == stateReady
}

// Items returns the full collection in store order, newest first. Before
// the store is Ready it reports the empty collection.
func (s *Store) Items() []core.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAll(s.items)
}

// Total returns the cached sum of all amounts.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// Count returns the number of records.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Snapshot is a consistent read of the consumer-facing surface.
type Snapshot struct {
	Items []core.Expense
	Total decimal.Decimal
	Ready bool
}

// Snapshot returns items, total and readiness from a single lock hold so
// a concurrent mutation can never produce a torn view.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Items: cloneAll(s.items),
		Total: s.total,
		Ready: s.state == stateReady,
	}
}

// Add creates a record from the caller-supplied fields, assigns ID and
// CreatedAt, prepends it and schedules a write-back. It never fails;
// validating title and amount is the caller's job before getting here.
func (s *Store) Add(partial core.Expense) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock().UTC()
	e := partial.Clone()
	e.ID = s.nextID(now)
	e.CreatedAt = now
	if e.Date.IsZero() {
		e.Date = core.DateOf(now)
	}
	e.Normalize()

	s.items = append([]core.Expense{e}, s.items...)
	s.total = s.total.Add(e.Amount)
	s.rev++
	s.scheduleWriteBack()

	s.logger.Debug("record added", log.FieldRecordID, e.ID, log.FieldAmount, e.Amount.String())
	return e.ID
}

// Update shallow-merges the patch into the record with the given ID,
// keeping ID and CreatedAt. Unknown IDs are a no-op and report false.
func (s *Store) Update(id string, patch core.Patch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		patch.Apply(&s.items[i])
		s.items[i].Normalize()
		s.total = aggregate.Total(s.items)
		s.rev++
		s.scheduleWriteBack()
		return true
	}
	return false
}

// Remove deletes the record with the given ID. Unknown IDs are a no-op
// and report false.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		s.total = s.total.Sub(s.items[i].Amount)
		s.items = append(s.items[:i], s.items[i+1:]...)
		s.rev++
		s.scheduleWriteBack()
		return true
	}
	return false
}

// Flush blocks until no write-back is in flight. Call before process
// exit so the last mutation reaches storage.
func (s *Store) Flush() {
	s.writes.Wait()
}

// nextID returns a monotonically distinguishable ID: the creation time in
// nanoseconds as a decimal string, bumped past the previous ID when two
// creations land on the same tick. Caller holds mu.
func (s *Store) nextID(now time.Time) string {
	ns := now.UnixNano()
	if ns <= s.lastID {
		ns = s.lastID + 1
	}
	s.lastID = ns
	return strconv.FormatInt(ns, 10)
}

// scheduleWriteBack marks the collection dirty and starts the writer
// goroutine unless one is already running. Disabled until the store is
// Ready so a write-back can never race hydration. Caller holds mu.
func (s *Store) scheduleWriteBack() {
	if s.state != stateReady {
		return
	}
	s.dirty = true
	if !s.writeSlot.TryAcquire(1) {
		return // in-flight writer will pick up the newer state
	}
	s.writes.Add(1)
	go s.writeLoop()
}

// writeLoop persists the current snapshot and repeats while mutations
// keep arriving, then releases the slot. Coalescing: only the state
// observed at each iteration is written, never intermediate versions.
func (s *Store) writeLoop() {
	defer s.writes.Done()

	for {
		s.mu.Lock()
		if !s.dirty {
			s.writeSlot.Release(1)
			s.mu.Unlock()
			return
		}
		s.dirty = false
		snapshot := cloneAll(s.items)
		rev := s.rev
		s.mu.Unlock()

		raw, err := core.EncodeCollection(snapshot)
		if err != nil {
			s.logger.Error("encode collection failed", log.FieldRevision, rev, log.FieldError, err)
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), s.writeTimeout)
		err = s.kv.Set(ctx, s.key, raw)
		cancel()
		if err != nil {
			// In-memory state stays authoritative; the next mutation's
			// write-back carries the data anyway.
			s.logger.Warn("write-back failed", log.FieldKey, s.key, log.FieldRevision, rev, log.FieldError, err)
		} else {
			s.logger.Debug("write-back complete", log.FieldKey, s.key, log.FieldRevision, rev, log.FieldCount, len(snapshot))
		}
	}
}

func cloneAll(items []core.Expense) []core.Expense {
	out := make([]core.Expense, len(items))
	for i, e := range items {
		out[i] = e.Clone()
	}
	return out
}
