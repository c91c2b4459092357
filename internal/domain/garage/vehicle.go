package garage

import "strings"

type VehicleID uint64

// Vehicle is a read-only view of an owned NFT. Stats are bounded 0-100 by
// the contract; this package never mutates them.
type Vehicle struct {
	ID           VehicleID `json:"id"`
	Name         string    `json:"name"`
	Speed        int       `json:"speed"`
	Handling     int       `json:"handling"`
	Acceleration int       `json:"acceleration"`
	Color        string    `json:"color,omitempty"`
	IsStaked     bool      `json:"is_staked"`
}

func (v Vehicle) TotalStats() int {
	return v.Speed + v.Handling + v.Acceleration
}

type Category string

const (
	CategoryBike       Category = "bike"
	CategoryCar        Category = "car"
	CategoryTruck      Category = "truck"
	CategoryPremiumCar Category = "premium_car"
	CategoryHybrid     Category = "hybrid"
)

// Matches reports whether a vehicle belongs to a category. The starter bike
// is additionally identified by token id 1, matching the contract's genesis
// mint.
func (c Category) Matches(v Vehicle) bool {
	switch c {
	case CategoryBike:
		return v.Name == "Bike" || v.ID == 1
	case CategoryCar:
		return v.Name == "Car"
	case CategoryTruck:
		return v.Name == "Truck"
	case CategoryPremiumCar:
		return v.Name == "Premium Car"
	case CategoryHybrid:
		return strings.Contains(v.Name, "Hybrid")
	default:
		return false
	}
}

// OwnedSet is the connected wallet's vehicles as of the latest refetch.
// Ids are unique within the set.
type OwnedSet []Vehicle

func (s OwnedSet) Find(id VehicleID) (Vehicle, bool) {
	for _, v := range s {
		if v.ID == id {
			return v, true
		}
	}
	return Vehicle{}, false
}

func (s OwnedSet) OwnsCategory(c Category) bool {
	for _, v := range s {
		if c.Matches(v) {
			return true
		}
	}
	return false
}
