package simnet

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"math/big"
	"sync"
	"time"

	"veryracing/internal/app/ports"
	"veryracing/internal/domain/garage"
)

// Store is the chain's own view of ownership. Unlike an AssetStore
// snapshot it has no refetch lag: All sees staged vehicles immediately,
// and Stage lands a confirmed mint or breed result.
type Store interface {
	All() garage.OwnedSet
	Stage(v garage.Vehicle)
}

var mintStats = map[garage.Category][3]int{
	garage.CategoryBike:       {40, 45, 40},
	garage.CategoryCar:        {70, 65, 70},
	garage.CategoryTruck:      {60, 75, 55},
	garage.CategoryPremiumCar: {85, 80, 80},
}

// Chain simulates the racing contract and its receipt stream for local
// development and tests: it enforces the same reverts the deployed
// contract does (starter uniqueness, staking, breeding cooldown, balance)
// and lands minted vehicles in the store's staged set after a configurable
// confirmation delay.
type Chain struct {
	Store        Store
	Catalog      garage.Catalog
	ConfirmDelay time.Duration
	Cooldown     time.Duration
	Log          *slog.Logger
	Now          func() time.Time

	mu       sync.Mutex
	balance  *big.Int
	nextID   garage.VehicleID
	receipts map[ports.TxHandle]chan bool
	lastBred map[garage.VehicleID]time.Time
	nextErr  error
}

func New(store Store, catalog garage.Catalog) *Chain {
	return &Chain{
		Store:    store,
		Catalog:  catalog,
		Cooldown: 24 * time.Hour,
		nextID:   100,
		receipts: make(map[ports.TxHandle]chan bool),
		lastBred: make(map[garage.VehicleID]time.Time),
	}
}

// SetBalance caps the simulated wallet; nil means unlimited.
func (c *Chain) SetBalance(wei *big.Int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.balance = wei
}

// FailNextWrite injects a one-shot submission failure, e.g. a wallet
// rejection.
func (c *Chain) FailNextWrite(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextErr = err
}

func (c *Chain) Write(_ context.Context, req ports.WriteRequest) (ports.TxHandle, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.nextErr != nil {
		err := c.nextErr
		c.nextErr = nil
		return "", err
	}
	if c.balance != nil && c.balance.Cmp(req.Value) < 0 {
		return "", ports.ErrInsufficientFunds
	}

	minted, err := c.execute(req)
	if err != nil {
		return "", err
	}
	if c.balance != nil {
		c.balance = new(big.Int).Sub(c.balance, req.Value)
	}

	handle := newTxHandle()
	done := make(chan bool, 1)
	c.receipts[handle] = done
	go c.confirm(handle, minted, done)

	c.logger().Info("transaction accepted", "method", req.Method, "handle", string(handle))
	return handle, nil
}

func (c *Chain) Observe(ctx context.Context, handle ports.TxHandle) (ports.Receipt, error) {
	c.mu.Lock()
	done, ok := c.receipts[handle]
	c.mu.Unlock()
	if !ok {
		return ports.Receipt{}, fmt.Errorf("handle %s: %w", handle, ports.ErrNotFound)
	}
	select {
	case confirmed := <-done:
		return ports.Receipt{Handle: handle, Confirmed: confirmed}, nil
	case <-ctx.Done():
		return ports.Receipt{}, ctx.Err()
	}
}

// execute validates the call against chain state and returns the vehicle
// the receipt will land. Caller holds the mutex.
func (c *Chain) execute(req ports.WriteRequest) (garage.Vehicle, error) {
	if req.Method == c.Catalog.Breeding.Method {
		return c.breed(req.Args)
	}
	for _, l := range c.Catalog.Listings {
		if l.Method == req.Method {
			return c.mint(l)
		}
	}
	return garage.Vehicle{}, fmt.Errorf("method %s: %w", req.Method, ports.ErrNotFound)
}

func (c *Chain) mint(l garage.Listing) (garage.Vehicle, error) {
	if l.Unique && c.Store.All().OwnsCategory(l.Category) {
		return garage.Vehicle{}, &ports.PreconditionError{Reason: "Already has starter vehicle"}
	}
	stats := mintStats[l.Category]
	c.nextID++
	return garage.Vehicle{
		ID:           c.nextID,
		Name:         l.Name,
		Speed:        stats[0],
		Handling:     stats[1],
		Acceleration: stats[2],
	}, nil
}

func (c *Chain) breed(args []garage.VehicleID) (garage.Vehicle, error) {
	if len(args) != 2 {
		return garage.Vehicle{}, &ports.PreconditionError{Reason: "breeding requires two parents"}
	}
	owned := c.Store.All()
	p1, ok1 := owned.Find(args[0])
	p2, ok2 := owned.Find(args[1])
	if !ok1 || !ok2 {
		return garage.Vehicle{}, &ports.PreconditionError{Reason: "parent not owned"}
	}
	if p1.IsStaked || p2.IsStaked {
		return garage.Vehicle{}, &ports.PreconditionError{Reason: "staked"}
	}
	now := c.now()
	for _, p := range []garage.Vehicle{p1, p2} {
		if last, ok := c.lastBred[p.ID]; ok && now.Sub(last) < c.Cooldown {
			return garage.Vehicle{}, &ports.PreconditionError{Reason: "cooldown"}
		}
	}
	c.lastBred[p1.ID] = now
	c.lastBred[p2.ID] = now

	c.nextID++
	return garage.Vehicle{
		ID:           c.nextID,
		Name:         "Gen-X Hybrid",
		Speed:        blend(p1.Speed, p2.Speed),
		Handling:     blend(p1.Handling, p2.Handling),
		Acceleration: blend(p1.Acceleration, p2.Acceleration),
	}, nil
}

func (c *Chain) confirm(handle ports.TxHandle, v garage.Vehicle, done chan bool) {
	if c.ConfirmDelay > 0 {
		time.Sleep(c.ConfirmDelay)
	}
	c.Store.Stage(v)
	done <- true
	c.logger().Info("transaction confirmed", "handle", string(handle), "vehicle", uint64(v.ID), "name", v.Name)
}

// blend gives offspring the parents' average with a small hybrid-vigor
// bonus, capped at the stat ceiling.
func blend(a, b int) int {
	v := (a+b)/2 + 5
	if v > 100 {
		v = 100
	}
	return v
}

func (c *Chain) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *Chain) logger() *slog.Logger {
	if c.Log != nil {
		return c.Log
	}
	return slog.Default()
}

func newTxHandle() ports.TxHandle {
	var b [32]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	return ports.TxHandle("0x" + hex.EncodeToString(b[:]))
}
