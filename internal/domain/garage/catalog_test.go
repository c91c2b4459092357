package garage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseVery(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0.01", "10000000000000000"},
		{"0.05", "50000000000000000"},
		{"0.08", "80000000000000000"},
		{"1", "1000000000000000000"},
		{"1.5", "1500000000000000000"},
		{".25", "250000000000000000"},
		{"0", "0"},
	}
	for _, tc := range cases {
		wei, err := ParseVery(tc.in)
		if err != nil {
			t.Fatalf("ParseVery(%q) error: %v", tc.in, err)
		}
		if wei.String() != tc.want {
			t.Fatalf("ParseVery(%q)=%s want %s", tc.in, wei, tc.want)
		}
	}
}

func TestParseVery_Malformed(t *testing.T) {
	for _, in := range []string{"", ".", "-0.01", "0.0000000000000000001", "abc"} {
		if _, err := ParseVery(in); !errors.Is(err, ErrBadPrice) {
			t.Fatalf("ParseVery(%q): expected ErrBadPrice, got %v", in, err)
		}
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	if err := c.Validate(); err != nil {
		t.Fatalf("default catalog invalid: %v", err)
	}

	bike, ok := c.Listing(CategoryBike)
	if !ok {
		t.Fatalf("missing bike listing")
	}
	if !bike.Unique {
		t.Fatalf("the starter bike must be unique per wallet")
	}
	if got, want := bike.PriceWei().String(), "10000000000000000"; got != want {
		t.Fatalf("bike price: got=%s want=%s", got, want)
	}
	if got, want := c.Breeding.Method, "breedCars"; got != want {
		t.Fatalf("breeding method: got=%q want=%q", got, want)
	}
	if _, ok := c.Listing(CategoryHybrid); ok {
		t.Fatalf("hybrids are bred, never minted")
	}
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	body := `listings:
  - category: bike
    name: Bike
    method: mintBike
    price: "0.02"
    unique: true
breeding:
  method: breedCars
  price: "0.01"
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	bike, ok := c.Listing(CategoryBike)
	if !ok {
		t.Fatalf("missing bike listing")
	}
	if got, want := bike.PriceWei().String(), "20000000000000000"; got != want {
		t.Fatalf("override price: got=%s want=%s", got, want)
	}
}

func TestLoadCatalog_RejectsBadPrice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	body := `listings:
  - category: bike
    name: Bike
    method: mintBike
    price: "lots"
breeding:
  method: breedCars
  price: "0.01"
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	if _, err := LoadCatalog(path); err == nil {
		t.Fatalf("expected validation error")
	}
}
