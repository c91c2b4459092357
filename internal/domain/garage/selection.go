package garage

// Selection is the ephemeral breeding pair under construction. A nil slot is
// empty. Parent1 != Parent2 whenever both are set.
type Selection struct {
	Parent1 *VehicleID `json:"parent1,omitempty"`
	Parent2 *VehicleID `json:"parent2,omitempty"`
}

// Toggle applies one "select vehicle" intent and returns the next selection:
// fill the first empty slot, deselect on a repeated id, or start a new pair
// when both slots are taken and the id matches neither.
func (s Selection) Toggle(id VehicleID) Selection {
	switch {
	case s.Parent1 == nil:
		s.Parent1 = &id
	case s.Parent2 == nil && id != *s.Parent1:
		s.Parent2 = &id
	case id == *s.Parent1:
		s.Parent1 = nil
	case s.Parent2 != nil && id == *s.Parent2:
		s.Parent2 = nil
	default:
		s.Parent1 = &id
		s.Parent2 = nil
	}
	return s
}

func (s Selection) Complete() bool {
	return s.Parent1 != nil && s.Parent2 != nil
}

func (s Selection) Contains(id VehicleID) bool {
	if s.Parent1 != nil && *s.Parent1 == id {
		return true
	}
	return s.Parent2 != nil && *s.Parent2 == id
}
