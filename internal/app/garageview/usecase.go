package garageview

import (
	"context"

	"veryracing/internal/app/lifecycle"
	"veryracing/internal/app/ports"
	"veryracing/internal/domain/garage"
)

// VehicleView is an owned vehicle enriched with its derived display tier.
type VehicleView struct {
	garage.Vehicle
	Tier         garage.Tier `json:"tier"`
	TierLabel    string      `json:"tier_label"`
	DisplayColor string      `json:"display_color"`
	Selected     bool        `json:"selected"`
}

type ListingView struct {
	Category garage.Category `json:"category"`
	Name     string          `json:"name"`
	Price    string          `json:"price"`
	Unique   bool            `json:"unique"`
	Owned    bool            `json:"owned"`
}

type Response struct {
	Wallet        string             `json:"wallet,omitempty"`
	Connected     bool               `json:"connected"`
	Vehicles      []VehicleView      `json:"vehicles"`
	Listings      []ListingView      `json:"listings"`
	Actions       []lifecycle.Record `json:"actions"`
	Selection     garage.Selection   `json:"selection"`
	CanBreed      bool               `json:"can_breed"`
	BreedingPrice string             `json:"breeding_price"`
}

// UseCase composes the presentation-facing snapshot: wallet identity,
// vehicles, catalog, in-flight actions and the breeding selection.
type UseCase struct {
	Assets     ports.AssetStore
	Controller *lifecycle.Controller
	Catalog    garage.Catalog
	Wallet     ports.WalletSession
}

func (u UseCase) Execute(ctx context.Context) (Response, error) {
	owned, err := u.Assets.Owned(ctx)
	if err != nil {
		return Response{}, err
	}

	sel := u.Controller.Selection()
	vehicles := make([]VehicleView, 0, len(owned))
	for _, v := range owned {
		tier := garage.TierOf(v)
		vehicles = append(vehicles, VehicleView{
			Vehicle:      v,
			Tier:         tier,
			TierLabel:    tier.Label(),
			DisplayColor: garage.ColorOf(v),
			Selected:     sel.Contains(v.ID),
		})
	}

	listings := make([]ListingView, 0, len(u.Catalog.Listings))
	for _, l := range u.Catalog.Listings {
		listings = append(listings, ListingView{
			Category: l.Category,
			Name:     l.Name,
			Price:    l.Price,
			Unique:   l.Unique,
			Owned:    owned.OwnsCategory(l.Category),
		})
	}

	canBreed := sel.Complete() && garage.CanBreed(owned, *sel.Parent1, *sel.Parent2)

	var wallet string
	var connected bool
	if u.Wallet != nil {
		wallet, connected = u.Wallet.Address()
	}

	return Response{
		Wallet:        wallet,
		Connected:     connected,
		Vehicles:      vehicles,
		Listings:      listings,
		Actions:       u.Controller.Records(),
		Selection:     sel,
		CanBreed:      canBreed,
		BreedingPrice: u.Catalog.Breeding.Price,
	}, nil
}
