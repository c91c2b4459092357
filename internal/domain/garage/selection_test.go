package garage

import "testing"

func id(n VehicleID) *VehicleID { return &n }

func eqSlot(a, b *VehicleID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func TestSelectionToggle(t *testing.T) {
	cases := []struct {
		name  string
		start Selection
		tap   VehicleID
		want  Selection
	}{
		{"empty fills parent1", Selection{}, 5, Selection{Parent1: id(5)}},
		{"second distinct fills parent2", Selection{Parent1: id(5)}, 7, Selection{Parent1: id(5), Parent2: id(7)}},
		{"retap parent1 clears it", Selection{Parent1: id(5), Parent2: id(7)}, 5, Selection{Parent2: id(7)}},
		{"retap parent2 clears it", Selection{Parent1: id(5), Parent2: id(7)}, 7, Selection{Parent1: id(5)}},
		{"retap lone parent1 empties selection", Selection{Parent1: id(5)}, 5, Selection{}},
		{"third id restarts the pair", Selection{Parent1: id(5), Parent2: id(7)}, 9, Selection{Parent1: id(9)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.start.Toggle(tc.tap)
			if !eqSlot(got.Parent1, tc.want.Parent1) || !eqSlot(got.Parent2, tc.want.Parent2) {
				t.Fatalf("toggle(%d): got (%v,%v) want (%v,%v)",
					tc.tap, fmtSlot(got.Parent1), fmtSlot(got.Parent2), fmtSlot(tc.want.Parent1), fmtSlot(tc.want.Parent2))
			}
		})
	}
}

func fmtSlot(p *VehicleID) any {
	if p == nil {
		return nil
	}
	return *p
}

func TestSelectionToggle_DoubleTapReturnsToEmpty(t *testing.T) {
	sel := Selection{}.Toggle(3).Toggle(3)
	if sel.Parent1 != nil || sel.Parent2 != nil {
		t.Fatalf("expected empty selection, got (%v,%v)", fmtSlot(sel.Parent1), fmtSlot(sel.Parent2))
	}
}

func TestSelectionComplete(t *testing.T) {
	if (Selection{Parent1: id(1)}).Complete() {
		t.Fatalf("half-filled selection is not complete")
	}
	if !(Selection{Parent1: id(1), Parent2: id(2)}).Complete() {
		t.Fatalf("expected complete selection")
	}
}

func TestSelectionContains(t *testing.T) {
	sel := Selection{Parent1: id(1), Parent2: id(2)}
	if !sel.Contains(1) || !sel.Contains(2) {
		t.Fatalf("expected both parents to be contained")
	}
	if sel.Contains(3) {
		t.Fatalf("did not expect id 3")
	}
}
