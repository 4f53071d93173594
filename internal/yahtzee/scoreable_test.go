package yahtzee

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fill - writes a box directly, bypassing the rules, to stage a card.
func fill(card *Scorecard, category Category, value int) {
	card.boxes[category] = box{value: value, filled: true}
}

func TestIsScoreable_StandardRules(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		dice     []int
		want     bool
	}{
		{name: "upper box with matches", category: Fours, dice: []int{4, 4, 2, 3, 6}, want: true},
		{name: "upper box without matches", category: Sixes, dice: []int{1, 2, 3, 4, 5}, want: true},
		{name: "three of a kind", category: ThreeOfAKind, dice: []int{2, 2, 2, 4, 5}, want: true},
		{name: "three of a kind missing", category: ThreeOfAKind, dice: []int{2, 2, 3, 4, 5}},
		{name: "four of a kind from five", category: FourOfAKind, dice: []int{5, 5, 5, 5, 5}, want: true},
		{name: "four of a kind missing", category: FourOfAKind, dice: []int{5, 5, 5, 2, 2}},
		{name: "full house", category: FullHouse, dice: []int{3, 3, 3, 6, 6}, want: true},
		{name: "full house missing", category: FullHouse, dice: []int{3, 3, 4, 4, 6}},
		{name: "full house from first yahtzee", category: FullHouse, dice: []int{3, 3, 3, 3, 3}, want: true},
		{name: "small straight", category: SmallStraight, dice: []int{1, 2, 3, 4, 6}, want: true},
		{name: "small straight missing", category: SmallStraight, dice: []int{1, 1, 3, 4, 6}},
		{name: "large straight", category: LargeStraight, dice: []int{2, 3, 4, 5, 6}, want: true},
		{name: "large straight missing", category: LargeStraight, dice: []int{1, 2, 2, 4, 5}},
		{name: "yahtzee", category: Yahtzee, dice: []int{6, 6, 6, 6, 6}, want: true},
		{name: "yahtzee missing", category: Yahtzee, dice: []int{6, 6, 6, 6, 5}},
		{name: "chance", category: Chance, dice: []int{1, 2, 3, 4, 5}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: an empty card
			card := NewScorecard()

			// When: checking the category without zero fill
			got := IsScoreable(tt.category, MustHand(tt.dice...), card.View(), false)

			// Then: the hand's pattern decides
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsScoreable_AllowZero(t *testing.T) {
	// Given: an empty card and a hand that matches no lower pattern
	card := NewScorecard()
	hand := MustHand(1, 1, 3, 4, 6)

	// Then: every box is open when zero fill is allowed
	for _, category := range Categories() {
		assert.True(t, IsScoreable(category, hand, card.View(), true), "category %s", category)
	}
}

func TestIsScoreable_FilledCategory(t *testing.T) {
	// Given: a card with THREES and CHANCE recorded
	card := NewScorecard()
	fill(card, Threes, 9)
	fill(card, Chance, 0)
	hand := MustHand(3, 3, 3, 2, 1)

	// Then: neither can be scored again, zero fill or not
	for _, allowZero := range []bool{false, true} {
		assert.False(t, IsScoreable(Threes, hand, card.View(), allowZero))
		assert.False(t, IsScoreable(Chance, hand, card.View(), allowZero))
	}
}

func TestIsScoreable_UnknownInputs(t *testing.T) {
	card := NewScorecard()

	assert.False(t, IsScoreable(Category(-1), MustHand(1, 2, 3, 4, 5), card.View(), true))
	assert.False(t, IsScoreable(Chance, Hand{}, card.View(), true))
}

func TestIsScoreable_JokerRules(t *testing.T) {
	t.Run("Matching upper box must be used first", func(t *testing.T) {
		// Given: YAHTZEE scored 50 and FOURS open
		card := NewScorecard()
		fill(card, Yahtzee, YahtzeeScore)
		hand := MustHand(4, 4, 4, 4, 4)

		// Then: only FOURS is scoreable, even CHANCE is not
		for _, category := range Categories() {
			want := category == Fours
			assert.Equal(t, want, IsScoreable(category, hand, card.View(), false), "category %s", category)
		}

		// Then: zero fill does not lift the restriction
		assert.False(t, IsScoreable(Chance, hand, card.View(), true))
	})

	t.Run("Zeroed yahtzee box also activates the rules", func(t *testing.T) {
		// Given: YAHTZEE zeroed and THREES open
		card := NewScorecard()
		fill(card, Yahtzee, 0)
		hand := MustHand(3, 3, 3, 3, 3)

		// Then: the hand has to go to THREES
		assert.True(t, IsScoreable(Threes, hand, card.View(), false))
		assert.False(t, IsScoreable(FullHouse, hand, card.View(), false))
	})

	t.Run("Any open lower box once the upper match is filled", func(t *testing.T) {
		// Given: YAHTZEE zeroed, THREES filled, FULL_HOUSE filled
		card := NewScorecard()
		fill(card, Yahtzee, 0)
		fill(card, Threes, 6)
		fill(card, FullHouse, 25)
		hand := MustHand(3, 3, 3, 3, 3)

		// Then: the open lower boxes take the hand, the upper ones do not
		for _, category := range LowerCategories() {
			want := category != Yahtzee && category != FullHouse
			assert.Equal(t, want, IsScoreable(category, hand, card.View(), false), "category %s", category)
		}
		for _, category := range UpperCategories() {
			assert.False(t, IsScoreable(category, hand, card.View(), false), "category %s", category)
		}
	})

	t.Run("Any open upper box once the lower section is full", func(t *testing.T) {
		// Given: every lower box filled, FIVES filled, the rest of the upper section open
		card := NewScorecard()
		for _, category := range LowerCategories() {
			fill(card, category, 0)
		}
		fill(card, Fives, 10)
		hand := MustHand(5, 5, 5, 5, 5)

		// Then: the remaining upper boxes are open for a forced zero
		for _, category := range UpperCategories() {
			want := category != Fives
			assert.Equal(t, want, IsScoreable(category, hand, card.View(), false), "category %s", category)
		}
	})

	t.Run("Inactive for a hand that is not five of a kind", func(t *testing.T) {
		// Given: YAHTZEE scored and a plain hand
		card := NewScorecard()
		fill(card, Yahtzee, YahtzeeScore)
		hand := MustHand(4, 4, 4, 4, 1)

		// Then: standard rules apply
		assert.True(t, IsScoreable(Chance, hand, card.View(), false))
		assert.True(t, IsScoreable(FourOfAKind, hand, card.View(), false))
		assert.False(t, IsScoreable(FullHouse, hand, card.View(), false))
	})

	t.Run("Inactive while the yahtzee box is open", func(t *testing.T) {
		// Given: an empty card and five of a kind
		card := NewScorecard()
		hand := MustHand(2, 2, 2, 2, 2)

		// Then: standard rules apply, so every box but the straights may take the hand
		for _, category := range Categories() {
			want := category != SmallStraight && category != LargeStraight
			assert.Equal(t, want, IsScoreable(category, hand, card.View(), false), "category %s", category)
		}
	})
}

func TestOptions(t *testing.T) {
	t.Run("Lists the scoreable boxes with their points", func(t *testing.T) {
		// Given: a card with CHANCE and ACES filled
		card := NewScorecard()
		fill(card, Chance, 20)
		fill(card, Aces, 3)
		hand := MustHand(2, 2, 2, 5, 5)

		// When: asking for options
		options := Options(hand, card.View())

		// Then: the open upper boxes and matching lower boxes appear in order
		assert.Equal(t, []Option{
			{Category: Twos, Score: 6},
			{Category: Threes, Score: 0},
			{Category: Fours, Score: 0},
			{Category: Fives, Score: 10},
			{Category: Sixes, Score: 0},
			{Category: ThreeOfAKind, Score: 16},
			{Category: FullHouse, Score: 25},
		}, options)
	})

	t.Run("Joker forces the matching upper box", func(t *testing.T) {
		card := NewScorecard()
		fill(card, Yahtzee, YahtzeeScore)

		options := Options(MustHand(6, 6, 6, 6, 6), card.View())

		assert.Equal(t, []Option{{Category: Sixes, Score: 30}}, options)
	})
}
