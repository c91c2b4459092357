package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"veryracing/internal/app/ports"
	"veryracing/internal/domain/garage"
)

var (
	ErrActionInFlight      = errors.New("an action of this kind is already in flight")
	ErrAlreadyOwned        = errors.New("wallet already owns this vehicle category")
	ErrNotBreedable        = errors.New("selected vehicles cannot be bred")
	ErrSelectionIncomplete = errors.New("breeding requires two selected parents")
	ErrVehicleStaked       = errors.New("vehicle is staked")
)

// Controller drives user-initiated contract writes from intent through
// wallet approval, chain confirmation and terminal decay. One live record
// per action kind; admission only from idle. All transitions read current
// state under the mutex at the moment they fire, never from values captured
// at submission time.
type Controller struct {
	Ledger   ports.Ledger
	Watcher  ports.ReceiptWatcher
	Assets   ports.AssetStore
	Notifier ports.Notifier
	Metrics  ports.ActionMetrics
	Catalog  garage.Catalog
	Sched    Scheduler
	Delays   Delays
	Log      *slog.Logger

	mu        sync.Mutex
	records   map[ActionKind]*record
	selection garage.Selection
	seq       uint64
	subs      map[uint64]chan Record
	nextSub   uint64
}

// record sequence numbers give each accepted intent an identity; late
// ledger or receipt resolutions carrying a superseded sequence are dropped.
type record struct {
	status  Status
	message string
	handle  ports.TxHandle
	subject Subject
	seq     uint64
	cancels []func()
}

// SubmitMint accepts a mint intent for a catalog category. It returns the
// in-flight record immediately; the ledger write proceeds off the caller's
// goroutine.
func (c *Controller) SubmitMint(ctx context.Context, category garage.Category) (Record, error) {
	listing, ok := c.Catalog.Listing(category)
	if !ok {
		return Record{}, fmt.Errorf("%w: %s", garage.ErrUnknownCategory, category)
	}

	owned, err := c.Assets.Owned(ctx)
	if err != nil {
		return Record{}, err
	}
	if listing.Unique && owned.OwnsCategory(category) {
		c.notify(msgStarterOwned)
		return Record{}, ErrAlreadyOwned
	}

	c.mu.Lock()
	rec := c.rec(ActionMint)
	if rec.status != StatusIdle {
		c.mu.Unlock()
		return Record{}, ErrActionInFlight
	}
	seq := c.beginLocked(rec, Subject{Category: category}, msgWalletConfirm)
	snap := c.snapshotLocked(ActionMint)
	c.broadcastLocked(ActionMint)
	c.mu.Unlock()

	go c.drive(ActionMint, seq, ports.WriteRequest{
		Method: listing.Method,
		Value:  listing.PriceWei(),
	})
	return snap, nil
}

// SubmitBreed accepts a breed intent for the current selection. Pair
// validity is recomputed from the freshest owned snapshot at call time.
func (c *Controller) SubmitBreed(ctx context.Context) (Record, error) {
	c.mu.Lock()
	sel := c.selection
	c.mu.Unlock()
	if !sel.Complete() {
		return Record{}, ErrSelectionIncomplete
	}
	p1, p2 := *sel.Parent1, *sel.Parent2

	owned, err := c.Assets.Owned(ctx)
	if err != nil {
		return Record{}, err
	}
	if err := garage.BreedCheck(owned, p1, p2); err != nil {
		c.notify(msgNotBreedable)
		return Record{}, fmt.Errorf("%w: %s", ErrNotBreedable, err)
	}

	c.mu.Lock()
	rec := c.rec(ActionBreed)
	if rec.status != StatusIdle {
		c.mu.Unlock()
		return Record{}, ErrActionInFlight
	}
	seq := c.beginLocked(rec, Subject{Parent1: p1, Parent2: p2}, msgBreedingStarted)
	snap := c.snapshotLocked(ActionBreed)
	c.broadcastLocked(ActionBreed)
	c.mu.Unlock()

	go c.drive(ActionBreed, seq, ports.WriteRequest{
		Method: c.Catalog.Breeding.Method,
		Args:   []garage.VehicleID{p1, p2},
		Value:  c.Catalog.Breeding.PriceWei(),
	})
	return snap, nil
}

// Select applies one breeding-selection intent with toggle semantics.
// Staked or unowned vehicles are rejected outright with a notification and
// no state change.
func (c *Controller) Select(ctx context.Context, id garage.VehicleID) (garage.Selection, error) {
	owned, err := c.Assets.Owned(ctx)
	if err != nil {
		return garage.Selection{}, err
	}
	v, ok := owned.Find(id)
	if !ok {
		c.notify(msgSelectNotOwned)
		return c.Selection(), fmt.Errorf("vehicle %d: %w", id, ports.ErrNotFound)
	}
	if v.IsStaked {
		c.notify(msgSelectStaked)
		return c.Selection(), ErrVehicleStaked
	}

	c.mu.Lock()
	c.selection = c.selection.Toggle(id)
	sel := c.selection
	c.mu.Unlock()
	return sel, nil
}

func (c *Controller) Selection() garage.Selection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection
}

func (c *Controller) Record(kind ActionKind) Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked(kind)
}

func (c *Controller) Records() []Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	return []Record{c.snapshotLocked(ActionMint), c.snapshotLocked(ActionBreed)}
}

// Subscribe returns a channel of record snapshots emitted on every
// transition. Slow consumers drop transitions rather than blocking the
// controller.
func (c *Controller) Subscribe() (<-chan Record, func()) {
	c.mu.Lock()
	if c.subs == nil {
		c.subs = make(map[uint64]chan Record)
	}
	id := c.nextSub
	c.nextSub++
	ch := make(chan Record, 16)
	c.subs[id] = ch
	c.mu.Unlock()

	return ch, func() {
		c.mu.Lock()
		if sub, ok := c.subs[id]; ok {
			delete(c.subs, id)
			close(sub)
		}
		c.mu.Unlock()
	}
}

// drive runs in its own goroutine: submissions outlive the HTTP request
// that triggered them, so the ledger call carries a fresh context.
func (c *Controller) drive(kind ActionKind, seq uint64, req ports.WriteRequest) {
	ctx := context.Background()

	handle, err := c.Ledger.Write(ctx, req)
	if err != nil {
		c.failSubmission(kind, seq, err)
		return
	}
	if !c.beginConfirming(kind, seq, handle) {
		return
	}
	receipt, err := c.Watcher.Observe(ctx, handle)
	c.resolveReceipt(kind, seq, handle, receipt, err)
}

func (c *Controller) failSubmission(kind ActionKind, seq uint64, cause error) {
	outcome := Classify(cause)

	c.mu.Lock()
	rec := c.rec(kind)
	if rec.seq != seq || rec.status != StatusWalletConfirm {
		c.mu.Unlock()
		c.logger().Debug("dropping stale submission failure", "kind", string(kind), "seq", seq)
		return
	}
	rec.status = outcome.Status
	rec.message = c.failureMessage(kind, rec.subject, outcome)
	rec.handle = ""
	c.countOutcomeLocked(kind, outcome.Status)
	c.scheduleLocked(rec, c.delays().FailureReset, c.resetFn(kind, seq))
	c.broadcastLocked(kind)
	c.mu.Unlock()

	c.logger().Warn("submission failed",
		"kind", string(kind), "class", string(outcome.Class), "err", cause)
}

func (c *Controller) beginConfirming(kind ActionKind, seq uint64, handle ports.TxHandle) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	rec := c.rec(kind)
	if rec.seq != seq || rec.status != StatusWalletConfirm {
		return false
	}
	rec.status = StatusConfirming
	rec.handle = handle
	rec.message = msgConfirming
	c.broadcastLocked(kind)
	return true
}

func (c *Controller) resolveReceipt(kind ActionKind, seq uint64, handle ports.TxHandle, receipt ports.Receipt, err error) {
	c.mu.Lock()
	rec := c.rec(kind)
	// Checked by handle identity, not just sequence: a superseded record
	// must never be resurrected by a late watcher resolution.
	if rec.seq != seq || rec.status != StatusConfirming || rec.handle != handle {
		c.mu.Unlock()
		c.logger().Debug("dropping late receipt", "kind", string(kind), "handle", string(handle))
		return
	}

	if err != nil || !receipt.Confirmed {
		rec.status = StatusError
		rec.message = msgChainFailure
		c.countOutcomeLocked(kind, StatusError)
		c.scheduleLocked(rec, c.delays().FailureReset, c.resetFn(kind, seq))
		c.broadcastLocked(kind)
		c.mu.Unlock()
		c.logger().Warn("transaction failed on chain", "kind", string(kind), "handle", string(handle), "err", err)
		return
	}

	rec.status = StatusSuccess
	rec.message = successMessage(kind, rec.subject)
	if kind == ActionBreed {
		c.selection = garage.Selection{}
	}
	c.countOutcomeLocked(kind, StatusSuccess)
	c.scheduleLocked(rec, c.delays().IndexLag, func() { c.refetch("index lag") })
	c.scheduleLocked(rec, c.delays().SuccessReset, c.resetFn(kind, seq))
	c.broadcastLocked(kind)
	c.mu.Unlock()

	c.refetch("receipt confirmed")
}

func (c *Controller) resetFn(kind ActionKind, seq uint64) func() {
	return func() {
		c.mu.Lock()
		rec := c.rec(kind)
		if rec.seq != seq || !rec.status.Terminal() {
			c.mu.Unlock()
			return
		}
		// cancels are kept: a timer may still be pending (e.g. the
		// index-lag refetch) and the next admission sweeps the list.
		rec.status = StatusIdle
		rec.message = ""
		rec.handle = ""
		rec.subject = Subject{}
		c.broadcastLocked(kind)
		c.mu.Unlock()
	}
}

// beginLocked admits a fresh intent: pending timers from the previous
// lifecycle are canceled before the new sequence starts.
func (c *Controller) beginLocked(rec *record, sub Subject, message string) uint64 {
	for _, cancel := range rec.cancels {
		cancel()
	}
	rec.cancels = nil
	c.seq++
	rec.seq = c.seq
	rec.status = StatusWalletConfirm
	rec.message = message
	rec.handle = ""
	rec.subject = sub
	return rec.seq
}

func (c *Controller) scheduleLocked(rec *record, d time.Duration, fn func()) {
	rec.cancels = append(rec.cancels, c.scheduler().After(d, fn))
}

func (c *Controller) refetch(reason string) {
	if err := c.Assets.Refetch(context.Background()); err != nil {
		c.logger().Warn("vehicle refetch failed", "reason", reason, "err", err)
	}
}

func (c *Controller) rec(kind ActionKind) *record {
	if c.records == nil {
		c.records = make(map[ActionKind]*record)
	}
	r, ok := c.records[kind]
	if !ok {
		r = &record{status: StatusIdle}
		c.records[kind] = r
	}
	return r
}

func (c *Controller) snapshotLocked(kind ActionKind) Record {
	rec := c.rec(kind)
	return Record{
		Kind:     kind,
		Status:   rec.status,
		Message:  rec.message,
		TxHandle: rec.handle,
		Subject:  rec.subject,
	}
}

func (c *Controller) broadcastLocked(kind ActionKind) {
	if len(c.subs) == 0 {
		return
	}
	snap := c.snapshotLocked(kind)
	for _, sub := range c.subs {
		select {
		case sub <- snap:
		default:
		}
	}
}

func (c *Controller) countOutcomeLocked(kind ActionKind, status Status) {
	if c.Metrics == nil {
		return
	}
	switch status {
	case StatusSuccess:
		c.Metrics.RecordSuccess(string(kind))
	case StatusRejected:
		c.Metrics.RecordRejected(string(kind))
	default:
		c.Metrics.RecordFailure(string(kind))
	}
}

func (c *Controller) notify(message string) {
	if c.Notifier != nil {
		c.Notifier.Show(message)
	}
}

func (c *Controller) scheduler() Scheduler {
	if c.Sched != nil {
		return c.Sched
	}
	return timerScheduler{}
}

func (c *Controller) delays() Delays {
	if c.Delays == (Delays{}) {
		return DefaultDelays()
	}
	return c.Delays
}

func (c *Controller) logger() *slog.Logger {
	if c.Log != nil {
		return c.Log
	}
	return slog.Default()
}
