package config

import (
	"fmt"

	"github.com/vovakirdan/ecosnake/internal/core"
)

// Tier identifies a difficulty preset.
type Tier uint8

const (
	TierEasy Tier = iota
	TierMedium
	TierHard
)

var tierNames = []string{"easy", "medium", "hard"}

// TrashKind identifies the collectible spawned on the playfield.
// It only affects presentation, never gameplay.
type TrashKind uint8

const (
	TrashApple TrashKind = iota
	TrashBanana
	TrashBottle
	TrashCan
	TrashGlassBottle
	TrashPlasticPollution
	TrashLandfill
)

var trashNames = []string{"apple", "banana", "bottle", "can", "glass_bottle", "plastic_pollution", "landfill"}

// Character is the look of the collector's head.
type Character uint8

const (
	CharacterGardener Character = iota
	CharacterBlondeGirl
	CharacterChubbyChild
)

var characterNames = []string{"gardener", "blonde_girl", "chubby_child"}

// Background is the playfield backdrop.
type Background uint8

const (
	BackgroundBlack Background = iota
	BackgroundForest
	BackgroundBeach
)

var backgroundNames = []string{"black", "forest", "beach"}

// Bag is the look of the collector's body cells.
type Bag uint8

const (
	BagBlack Bag = iota
	BagSweet
	BagYellow
)

var bagNames = []string{"black_bag", "sweet_bag", "yellow_bag"}

// Look describes how an enum value is presented.
type Look struct {
	Title string
	Glyph rune
	Color core.Color
}

var trashLooks = []Look{
	TrashApple:            {"Apple", 'a', core.ColorBrightRed},
	TrashBanana:           {"Banana", 'b', core.ColorBrightYellow},
	TrashBottle:           {"Bottle", 'i', core.ColorBrightCyan},
	TrashCan:              {"Can", 'c', core.ColorGray},
	TrashGlassBottle:      {"Glass Bottle", 'g', core.ColorGreen},
	TrashPlasticPollution: {"Plastic Pollution", 'p', core.ColorBrightMagenta},
	TrashLandfill:         {"Landfill", 'L', core.ColorBrown},
}

var characterLooks = []Look{
	CharacterGardener:    {"Gardener", '@', core.ColorBrightGreen},
	CharacterBlondeGirl:  {"Blonde Girl", '@', core.ColorBrightYellow},
	CharacterChubbyChild: {"Chubby Child", '@', core.ColorOrange},
}

var backgroundLooks = []Look{
	BackgroundBlack:  {"Black", ' ', core.ColorDefault},
	BackgroundForest: {"Forest", '.', core.ColorGreen},
	BackgroundBeach:  {"Beach", '~', core.ColorYellow},
}

var bagLooks = []Look{
	BagBlack:  {"Black Bag", 'o', core.ColorGray},
	BagSweet:  {"Sweet Bag", 'o', core.ColorBrightMagenta},
	BagYellow: {"Yellow Bag", 'o', core.ColorBrightYellow},
}

func parseEnum(kind, name string, names []string) (uint8, error) {
	for i, n := range names {
		if n == name {
			return uint8(i), nil
		}
	}
	return 0, fmt.Errorf("config: unknown %s %q", kind, name)
}

func enumName(v uint8, names []string) string {
	if int(v) < len(names) {
		return names[v]
	}
	return "unknown"
}

// ParseTier resolves a difficulty tier name.
func ParseTier(name string) (Tier, error) {
	v, err := parseEnum("difficulty tier", name, tierNames)
	return Tier(v), err
}

func (t Tier) String() string { return enumName(uint8(t), tierNames) }

// MarshalText implements encoding.TextMarshaler.
func (t Tier) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tier) UnmarshalText(b []byte) error {
	v, err := ParseTier(string(b))
	*t = v
	return err
}

// ParseTrashKind resolves a trash kind name.
func ParseTrashKind(name string) (TrashKind, error) {
	v, err := parseEnum("trash kind", name, trashNames)
	return TrashKind(v), err
}

func (k TrashKind) String() string { return enumName(uint8(k), trashNames) }

// Look returns the presentation of the trash kind.
func (k TrashKind) Look() Look { return trashLooks[k] }

// MarshalText implements encoding.TextMarshaler.
func (k TrashKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *TrashKind) UnmarshalText(b []byte) error {
	v, err := ParseTrashKind(string(b))
	*k = v
	return err
}

// ParseCharacter resolves a character name.
func ParseCharacter(name string) (Character, error) {
	v, err := parseEnum("character", name, characterNames)
	return Character(v), err
}

func (c Character) String() string { return enumName(uint8(c), characterNames) }

// Look returns the presentation of the character.
func (c Character) Look() Look { return characterLooks[c] }

// ParseBackground resolves a background name.
func ParseBackground(name string) (Background, error) {
	v, err := parseEnum("background", name, backgroundNames)
	return Background(v), err
}

func (b Background) String() string { return enumName(uint8(b), backgroundNames) }

// Look returns the presentation of the background.
func (b Background) Look() Look { return backgroundLooks[b] }

// ParseBag resolves a garbage bag name.
func ParseBag(name string) (Bag, error) {
	v, err := parseEnum("bag", name, bagNames)
	return Bag(v), err
}

func (b Bag) String() string { return enumName(uint8(b), bagNames) }

// Look returns the presentation of the bag.
func (b Bag) Look() Look { return bagLooks[b] }

// Characters lists every character in menu order.
func Characters() []Character {
	return []Character{CharacterGardener, CharacterBlondeGirl, CharacterChubbyChild}
}

// Backgrounds lists every background in menu order.
func Backgrounds() []Background {
	return []Background{BackgroundBlack, BackgroundForest, BackgroundBeach}
}

// Bags lists every bag in menu order.
func Bags() []Bag {
	return []Bag{BagBlack, BagSweet, BagYellow}
}
