package config

// Appearance holds the player's cosmetic choices. They are persisted by the
// storage layer and only affect rendering.
type Appearance struct {
	Character  Character
	Background Background
	Bag        Bag
}

// DefaultAppearance returns the first entry of every cosmetic list.
func DefaultAppearance() Appearance {
	return Appearance{
		Character:  CharacterGardener,
		Background: BackgroundBlack,
		Bag:        BagBlack,
	}
}
