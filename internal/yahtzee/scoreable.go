package yahtzee

// View is the read-only side of a Scorecard.
type View interface {
	IsScored(category Category) bool
	Score(category Category) (int, bool)
	TotalScore() int
	UnscoredCategories() []Category
}

// Option is a category the current hand may be claimed in, with the points it would earn.
type Option struct {
	Category Category `json:"category"`
	Score    int      `json:"score"`
}

// IsScoreable - reports whether the hand may be recorded in the category.
//
// A recorded category is never scoreable. When the hand is a five of a kind
// and the YAHTZEE box already holds a score (zero included), the Joker rules
// decide. Otherwise allowZero opens every free box, and without it the
// patterned lower categories require their pattern.
func IsScoreable(category Category, hand Hand, view View, allowZero bool) bool {
	if !category.IsValid() || !hand.isValid() {
		return false
	}

	if view.IsScored(category) {
		return false
	}

	if jokerActive(hand, view) {
		return isScoreableJoker(category, hand, view)
	}

	if allowZero {
		return true
	}

	return isScoreableStandard(category, hand)
}

// Options - lists every category the hand can be claimed in right now.
func Options(hand Hand, view View) []Option {
	var options []Option

	for _, category := range allCategories {
		if !IsScoreable(category, hand, view, false) {
			continue
		}

		score, err := CalculateScore(category, hand)
		if err != nil {
			continue
		}

		options = append(options, Option{Category: category, Score: score})
	}

	return options
}

func jokerActive(hand Hand, view View) bool {
	return hand.IsYahtzee() && view.IsScored(Yahtzee)
}

func isScoreableJoker(category Category, hand Hand, view View) bool {
	upperMatch, _ := hand.MatchingUpperCategory()

	// the matching upper box has to be filled first
	if !view.IsScored(upperMatch) {
		return category == upperMatch
	}

	if category.IsLower() {
		return true
	}

	// any free upper box, as a forced zero, once the lower section is full
	for _, lower := range lowerCategories {
		if !view.IsScored(lower) {
			return false
		}
	}

	return true
}

func isScoreableStandard(category Category, hand Hand) bool {
	switch category {
	case Aces, Twos, Threes, Fours, Fives, Sixes, Chance:
		return true
	case ThreeOfAKind:
		return hand.IsNOfAKind(3)
	case FourOfAKind:
		return hand.IsNOfAKind(4)
	case FullHouse:
		return hand.IsFullHouse()
	case SmallStraight:
		return hand.IsSmallStraight()
	case LargeStraight:
		return hand.IsLargeStraight()
	case Yahtzee:
		return hand.IsYahtzee()
	default:
		return false
	}
}
