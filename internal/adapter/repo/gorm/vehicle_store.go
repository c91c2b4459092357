package gormrepo

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"veryracing/internal/app/ports"
	"veryracing/internal/domain/garage"
)

// VehicleStore is an AssetStore backed by the indexer's vehicles table.
// Owned serves a cached snapshot; Refetch reloads it from the database,
// which is when newly indexed vehicles become visible to callers.
type VehicleStore struct {
	db    *gorm.DB
	owner string

	mu     sync.RWMutex
	cached garage.OwnedSet
}

func NewVehicleStore(db *gorm.DB, owner string) *VehicleStore {
	return &VehicleStore{db: db, owner: owner}
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&vehicleRow{}); err != nil {
		return fmt.Errorf("migrate vehicles: %w", err)
	}
	return nil
}

func (s *VehicleStore) Owned(ctx context.Context) (garage.OwnedSet, error) {
	s.mu.RLock()
	cached := s.cached
	s.mu.RUnlock()
	if cached != nil {
		return append(garage.OwnedSet(nil), cached...), nil
	}
	if err := s.Refetch(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(garage.OwnedSet(nil), s.cached...), nil
}

func (s *VehicleStore) Refetch(ctx context.Context) error {
	owned, err := s.Current(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.cached = owned
	s.mu.Unlock()
	return nil
}

// Current reads the owner's rows directly, bypassing the cached snapshot.
func (s *VehicleStore) Current(ctx context.Context) (garage.OwnedSet, error) {
	var rows []vehicleRow
	if err := s.db.WithContext(ctx).
		Where("owner = ?", s.owner).
		Order("id").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load vehicles: %w", err)
	}
	owned := make(garage.OwnedSet, 0, len(rows))
	for _, r := range rows {
		owned = append(owned, garage.Vehicle{
			ID:           garage.VehicleID(r.ID),
			Name:         r.Name,
			Speed:        r.Speed,
			Handling:     r.Handling,
			Acceleration: r.Acceleration,
			Color:        r.Color,
			IsStaked:     r.IsStaked,
		})
	}
	return owned, nil
}

// Upsert writes an indexed vehicle row. It does not touch the cached
// snapshot; callers see the change after the next Refetch.
func (s *VehicleStore) Upsert(ctx context.Context, v garage.Vehicle) error {
	row := vehicleRow{
		ID:           uint64(v.ID),
		Owner:        s.owner,
		Name:         v.Name,
		Speed:        v.Speed,
		Handling:     v.Handling,
		Acceleration: v.Acceleration,
		Color:        v.Color,
		IsStaked:     v.IsStaked,
	}
	return s.db.WithContext(ctx).Save(&row).Error
}

func (s *VehicleStore) SetStaked(ctx context.Context, id garage.VehicleID, staked bool) error {
	res := s.db.WithContext(ctx).
		Model(&vehicleRow{}).
		Where("id = ? AND owner = ?", uint64(id), s.owner).
		Update("is_staked", staked)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return ports.ErrNotFound
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}
