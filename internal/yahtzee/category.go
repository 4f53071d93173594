package yahtzee

import (
	"fmt"

	"github.com/rocketscienceinc/yahtzee-backend/internal/apperror"
)

type Section int

const (
	SectionUpper Section = iota
	SectionLower

	// SectionNone is reported for values outside the category catalog.
	SectionNone Section = -1
)

func (that Section) String() string {
	switch that {
	case SectionUpper:
		return "upper"
	case SectionLower:
		return "lower"
	default:
		return "none"
	}
}

type Category int

const (
	Aces Category = iota
	Twos
	Threes
	Fours
	Fives
	Sixes
	ThreeOfAKind
	FourOfAKind
	FullHouse
	SmallStraight
	LargeStraight
	Yahtzee
	Chance

	numCategories = int(Chance) + 1
)

type categoryInfo struct {
	name    string
	section Section
	face    int
}

var categoryTable = [numCategories]categoryInfo{
	Aces:          {name: "aces", section: SectionUpper, face: 1},
	Twos:          {name: "twos", section: SectionUpper, face: 2},
	Threes:        {name: "threes", section: SectionUpper, face: 3},
	Fours:         {name: "fours", section: SectionUpper, face: 4},
	Fives:         {name: "fives", section: SectionUpper, face: 5},
	Sixes:         {name: "sixes", section: SectionUpper, face: 6},
	ThreeOfAKind:  {name: "three_of_a_kind", section: SectionLower},
	FourOfAKind:   {name: "four_of_a_kind", section: SectionLower},
	FullHouse:     {name: "full_house", section: SectionLower},
	SmallStraight: {name: "small_straight", section: SectionLower},
	LargeStraight: {name: "large_straight", section: SectionLower},
	Yahtzee:       {name: "yahtzee", section: SectionLower},
	Chance:        {name: "chance", section: SectionLower},
}

var (
	allCategories   = []Category{Aces, Twos, Threes, Fours, Fives, Sixes, ThreeOfAKind, FourOfAKind, FullHouse, SmallStraight, LargeStraight, Yahtzee, Chance}
	upperCategories = allCategories[:Sixes+1]
	lowerCategories = allCategories[ThreeOfAKind:]

	categoryByName = func() map[string]Category {
		byName := make(map[string]Category, numCategories)
		for _, category := range allCategories {
			byName[categoryTable[category].name] = category
		}
		return byName
	}()
)

// Categories - returns all categories in declaration order.
func Categories() []Category {
	return append([]Category(nil), allCategories...)
}

// UpperCategories - returns ACES through SIXES.
func UpperCategories() []Category {
	return append([]Category(nil), upperCategories...)
}

// LowerCategories - returns THREE_OF_A_KIND through CHANCE.
func LowerCategories() []Category {
	return append([]Category(nil), lowerCategories...)
}

// CategoryForFace - returns the upper category scoring dice of the given face.
func CategoryForFace(face int) (Category, bool) {
	if face < minFace || face > maxFace {
		return 0, false
	}
	return Category(face - 1), true
}

// ParseCategory - resolves a snake_case category name such as "full_house".
func ParseCategory(name string) (Category, error) {
	category, ok := categoryByName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", apperror.ErrUnknownCategory, name)
	}
	return category, nil
}

func (that Category) IsValid() bool {
	return that >= Aces && that <= Chance
}

func (that Category) Section() Section {
	if !that.IsValid() {
		return SectionNone
	}
	return categoryTable[that].section
}

// Face - returns the die face an upper category counts, or 0 for the lower section.
func (that Category) Face() int {
	if !that.IsValid() {
		return 0
	}
	return categoryTable[that].face
}

func (that Category) IsUpper() bool {
	return that.IsValid() && that.Section() == SectionUpper
}

func (that Category) IsLower() bool {
	return that.IsValid() && that.Section() == SectionLower
}

func (that Category) String() string {
	if !that.IsValid() {
		return fmt.Sprintf("category(%d)", int(that))
	}
	return categoryTable[that].name
}

func (that Category) MarshalText() ([]byte, error) {
	if !that.IsValid() {
		return nil, fmt.Errorf("%w: %d", apperror.ErrUnknownCategory, int(that))
	}
	return []byte(categoryTable[that].name), nil
}

func (that *Category) UnmarshalText(text []byte) error {
	category, err := ParseCategory(string(text))
	if err != nil {
		return err
	}

	*that = category
	return nil
}
