package garage

import "errors"

var (
	ErrSameParent     = errors.New("a vehicle cannot breed with itself")
	ErrParentNotOwned = errors.New("breeding parent is not an owned vehicle")
	ErrParentStaked   = errors.New("breeding parent is staked")
)

// BreedCheck validates a candidate breeding pair against the current owned
// set. Cooldown and generation rules are enforced by the contract, not here.
func BreedCheck(owned OwnedSet, a, b VehicleID) error {
	if a == b {
		return ErrSameParent
	}
	va, ok := owned.Find(a)
	if !ok {
		return ErrParentNotOwned
	}
	vb, ok := owned.Find(b)
	if !ok {
		return ErrParentNotOwned
	}
	if va.IsStaked || vb.IsStaked {
		return ErrParentStaked
	}
	return nil
}

func CanBreed(owned OwnedSet, a, b VehicleID) bool {
	return BreedCheck(owned, a, b) == nil
}
