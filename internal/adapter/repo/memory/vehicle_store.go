package memory

import (
	"context"
	"fmt"
	"sync"

	"veryracing/internal/app/ports"
	"veryracing/internal/domain/garage"
)

// VehicleStore is an in-memory AssetStore. Newly minted vehicles land in a
// staged set and become visible only after a Refetch, mimicking the lag of
// the chain indexer behind the production store.
type VehicleStore struct {
	mu      sync.RWMutex
	visible garage.OwnedSet
	staged  garage.OwnedSet
}

func NewVehicleStore() *VehicleStore {
	return &VehicleStore{}
}

// Seed makes vehicles immediately visible, bypassing the staging step.
func (s *VehicleStore) Seed(vehicles ...garage.Vehicle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible = append(s.visible, vehicles...)
}

// Stage queues a vehicle to appear on the next Refetch.
func (s *VehicleStore) Stage(v garage.Vehicle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staged = append(s.staged, v)
}

func (s *VehicleStore) SetStaked(id garage.VehicleID, staked bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.visible {
		if s.visible[i].ID == id {
			s.visible[i].IsStaked = staked
			return nil
		}
	}
	return fmt.Errorf("vehicle %d: %w", id, ports.ErrNotFound)
}

func (s *VehicleStore) Owned(context.Context) (garage.OwnedSet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(garage.OwnedSet(nil), s.visible...), nil
}

func (s *VehicleStore) Refetch(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible = append(s.visible, s.staged...)
	s.staged = nil
	return nil
}

// All returns visible and staged vehicles; the simulated contract uses it
// for ownership checks that the chain itself would see immediately.
func (s *VehicleStore) All() garage.OwnedSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := append(garage.OwnedSet(nil), s.visible...)
	return append(out, s.staged...)
}
