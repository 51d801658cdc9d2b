package devserver

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/five82/cumplesito/internal/wishlist"
)

// Demo credentials created by Seed.
const (
	DemoEmail    = "demo@cumplesito.app"
	DemoPassword = "cumple123"
)

// Seed creates a demo account with one wishlist covering every item state
// and returns the wishlist id.
func Seed(store *Store) (string, error) {
	user, err := store.CreateUser("Sofía", DemoEmail, DemoPassword)
	if err != nil {
		return "", fmt.Errorf("seed user: %w", err)
	}
	w, err := store.CreateWishlist(user.ID, wishlist.NewWishlist{
		Title:                  "Mis 30 años",
		OwnerName:              "Sofía",
		EventDate:              "2026-11-20",
		Description:            "Lo que me haría ilusión para mi cumple",
		AllowAnonymousPurchase: true,
	})
	if err != nil {
		return "", fmt.Errorf("seed wishlist: %w", err)
	}
	if err := store.SetProfile(w.ID, "Le encanta el café de especialidad, la fotografía analógica y las plantas."); err != nil {
		return "", err
	}

	str := func(s string) *string { return &s }
	pooled := wishlist.TypePooled
	target := decimal.NewFromInt(300)
	items := []ItemPatch{
		{Title: str("Molino de café manual"), Description: str("Con muelas cónicas de acero"), ProductURL: str("https://example.com/molino")},
		{Title: str("Rollo Portra 400"), Description: str("Pack de 5 rollos 35mm")},
		{Title: str("Monstera deliciosa"), Description: str("Maceta mediana")},
		{Title: str("Cámara Pentax K1000"), Description: str("Regalo grupal"), Type: &pooled, TargetAmount: &target},
	}
	ids := make([]string, 0, len(items))
	for _, patch := range items {
		item, err := store.AddItem(w.ID, user.ID, patch)
		if err != nil {
			return "", fmt.Errorf("seed item: %w", err)
		}
		ids = append(ids, item.ID)
	}

	intents := []struct {
		itemID string
		in     wishlist.Intent
	}{
		{ids[1], wishlist.Intent{Action: wishlist.ActionReserve, Name: "Carlos"}},
		{ids[2], wishlist.Intent{Action: wishlist.ActionPurchase, Name: "Lucía"}},
		{ids[3], wishlist.Intent{Action: wishlist.ActionContribute, Name: "Marta", Amount: decimal.NewFromInt(50), Message: "¡Feliz cumple!"}},
		{ids[3], wishlist.Intent{Action: wishlist.ActionContribute, Name: "Pablo", Amount: decimal.NewFromInt(25)}},
	}
	for _, step := range intents {
		if _, err := store.Apply(w.ID, step.itemID, step.in); err != nil {
			return "", fmt.Errorf("seed %s: %w", step.in.Action, err)
		}
	}
	return w.ID, nil
}
