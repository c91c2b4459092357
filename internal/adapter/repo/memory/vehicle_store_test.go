package memory

import (
	"context"
	"errors"
	"testing"

	"veryracing/internal/app/ports"
	"veryracing/internal/domain/garage"
)

func TestStagedVehiclesAppearAfterRefetch(t *testing.T) {
	store := NewVehicleStore()
	store.Seed(garage.Vehicle{ID: 1, Name: "Bike"})
	store.Stage(garage.Vehicle{ID: 2, Name: "Car"})

	owned, err := store.Owned(context.Background())
	if err != nil {
		t.Fatalf("owned error: %v", err)
	}
	if len(owned) != 1 {
		t.Fatalf("staged vehicle leaked before refetch: %+v", owned)
	}

	if err := store.Refetch(context.Background()); err != nil {
		t.Fatalf("refetch error: %v", err)
	}
	owned, _ = store.Owned(context.Background())
	if len(owned) != 2 {
		t.Fatalf("expected 2 vehicles after refetch, got %d", len(owned))
	}
	if _, ok := owned.Find(2); !ok {
		t.Fatalf("expected staged car to be visible")
	}
}

func TestSetStaked(t *testing.T) {
	store := NewVehicleStore()
	store.Seed(garage.Vehicle{ID: 1, Name: "Bike"})

	if err := store.SetStaked(1, true); err != nil {
		t.Fatalf("stake error: %v", err)
	}
	owned, _ := store.Owned(context.Background())
	if v, _ := owned.Find(1); !v.IsStaked {
		t.Fatalf("expected vehicle to be staked")
	}

	if err := store.SetStaked(99, true); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAllIncludesStaged(t *testing.T) {
	store := NewVehicleStore()
	store.Seed(garage.Vehicle{ID: 1, Name: "Bike"})
	store.Stage(garage.Vehicle{ID: 2, Name: "Car"})

	if got := len(store.All()); got != 2 {
		t.Fatalf("expected chain view of 2 vehicles, got %d", got)
	}
}
