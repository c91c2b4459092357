package garage

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownCategory = errors.New("unknown vehicle category")
	ErrBadPrice        = errors.New("malformed native-unit price")
)

// nativeDecimals is the VERY token precision.
const nativeDecimals = 18

// Listing is one mintable vehicle kind: the contract method that mints it
// and the exact native value the contract expects. Unique listings may be
// held at most once per wallet (the starter bike).
type Listing struct {
	Category Category `yaml:"category"`
	Name     string   `yaml:"name"`
	Method   string   `yaml:"method"`
	Price    string   `yaml:"price"`
	Unique   bool     `yaml:"unique"`
}

type Breeding struct {
	Method string `yaml:"method"`
	Price  string `yaml:"price"`
}

type Catalog struct {
	Listings []Listing `yaml:"listings"`
	Breeding Breeding  `yaml:"breeding"`
}

// DefaultCatalog mirrors the deployed racing contract.
func DefaultCatalog() Catalog {
	return Catalog{
		Listings: []Listing{
			{Category: CategoryBike, Name: "Bike", Method: "mintBike", Price: "0.01", Unique: true},
			{Category: CategoryCar, Name: "Car", Method: "mintCar", Price: "0.05"},
			{Category: CategoryTruck, Name: "Truck", Method: "mintTruck", Price: "0.08"},
			{Category: CategoryPremiumCar, Name: "Premium Car", Method: "mintPremiumCar", Price: "0.05"},
		},
		Breeding: Breeding{Method: "breedCars", Price: "0.01"},
	}
}

// LoadCatalog reads a catalog override from a YAML file.
func LoadCatalog(path string) (Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, err
	}
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

func (c Catalog) Validate() error {
	if len(c.Listings) == 0 {
		return errors.New("catalog has no listings")
	}
	for _, l := range c.Listings {
		if l.Method == "" {
			return fmt.Errorf("listing %s has no contract method", l.Category)
		}
		if _, err := ParseVery(l.Price); err != nil {
			return fmt.Errorf("listing %s: %w", l.Category, err)
		}
	}
	if c.Breeding.Method == "" {
		return errors.New("catalog has no breeding method")
	}
	if _, err := ParseVery(c.Breeding.Price); err != nil {
		return fmt.Errorf("breeding: %w", err)
	}
	return nil
}

func (c Catalog) Listing(cat Category) (Listing, bool) {
	for _, l := range c.Listings {
		if l.Category == cat {
			return l, true
		}
	}
	return Listing{}, false
}

// PriceWei panics on a malformed price; catalogs are validated at load time.
func (l Listing) PriceWei() *big.Int {
	return mustParseVery(l.Price)
}

func (b Breeding) PriceWei() *big.Int {
	return mustParseVery(b.Price)
}

// ParseVery converts a decimal native-unit amount ("0.01") to wei, the
// 18-decimal integer the contract call carries.
func ParseVery(amount string) (*big.Int, error) {
	whole, frac, _ := strings.Cut(strings.TrimSpace(amount), ".")
	if whole == "" && frac == "" || strings.HasPrefix(whole, "-") {
		return nil, ErrBadPrice
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > nativeDecimals {
		return nil, fmt.Errorf("%w: more than %d decimals", ErrBadPrice, nativeDecimals)
	}
	digits := whole + frac + strings.Repeat("0", nativeDecimals-len(frac))
	wei, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBadPrice, amount)
	}
	return wei, nil
}

func mustParseVery(amount string) *big.Int {
	wei, err := ParseVery(amount)
	if err != nil {
		panic(err)
	}
	return wei
}
