package yahtzee

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/yahtzee-backend/internal/apperror"
)

type box struct {
	value  int
	filled bool
}

// Scorecard is one player's card for one game. Each box is filled at most
// once and the Yahtzee bonus counter only grows.
//
// A Scorecard is not safe for concurrent mutation; callers serialize writes.
type Scorecard struct {
	boxes             [numCategories]box
	yahtzeeBonusCount int
}

func NewScorecard() *Scorecard {
	return &Scorecard{}
}

// Claim - records the hand in the category and returns the points earned.
func (that *Scorecard) Claim(category Category, hand Hand) (int, error) {
	if err := that.checkClaimable(category, hand); err != nil {
		return 0, err
	}

	if !IsScoreable(category, hand, that, false) {
		return 0, fmt.Errorf("%w: %s with %s", apperror.ErrNotScoreable, category, hand)
	}

	score, err := CalculateScore(category, hand)
	if err != nil {
		return 0, fmt.Errorf("failed to calculate score: %w", err)
	}

	that.record(category, score, hand)

	return score, nil
}

// ForceZero - records a zero in the category. The Joker rules still apply to
// a five of a kind, so only the boxes they allow can be zeroed.
func (that *Scorecard) ForceZero(category Category, hand Hand) error {
	if err := that.checkClaimable(category, hand); err != nil {
		return err
	}

	if !IsScoreable(category, hand, that, true) {
		return fmt.Errorf("%w: %s with %s", apperror.ErrNotScoreable, category, hand)
	}

	that.record(category, 0, hand)

	return nil
}

func (that *Scorecard) checkClaimable(category Category, hand Hand) error {
	if !category.IsValid() {
		return fmt.Errorf("%w: %s", apperror.ErrUnknownCategory, category)
	}

	if !hand.isValid() {
		return fmt.Errorf("%w: hand was not rolled", apperror.ErrInvalidHand)
	}

	if that.boxes[category].filled {
		return fmt.Errorf("%w: %s", apperror.ErrCategoryAlreadyScored, category)
	}

	return nil
}

func (that *Scorecard) record(category Category, score int, hand Hand) {
	that.boxes[category] = box{value: score, filled: true}

	if category == Yahtzee || !hand.IsYahtzee() {
		return
	}

	if yahtzee := that.boxes[Yahtzee]; yahtzee.filled && yahtzee.value == YahtzeeScore {
		that.yahtzeeBonusCount++
	}
}

func (that *Scorecard) IsScored(category Category) bool {
	return category.IsValid() && that.boxes[category].filled
}

// Score - returns the recorded score; ok is false while the box is empty.
func (that *Scorecard) Score(category Category) (int, bool) {
	if !that.IsScored(category) {
		return 0, false
	}
	return that.boxes[category].value, true
}

func (that *Scorecard) YahtzeeBonusCount() int {
	return that.yahtzeeBonusCount
}

func (that *Scorecard) UpperSum() int {
	return that.sum(upperCategories)
}

func (that *Scorecard) LowerSum() int {
	return that.sum(lowerCategories)
}

func (that *Scorecard) UpperBonus() int {
	if that.UpperSum() >= UpperBonusThreshold {
		return UpperBonusScore
	}
	return 0
}

func (that *Scorecard) YahtzeeBonus() int {
	return that.yahtzeeBonusCount * YahtzeeBonusScore
}

func (that *Scorecard) TotalScore() int {
	return that.UpperSum() + that.UpperBonus() + that.LowerSum() + that.YahtzeeBonus()
}

// UnscoredCategories - returns the empty boxes in declaration order.
func (that *Scorecard) UnscoredCategories() []Category {
	unscored := make([]Category, 0, numCategories)
	for _, category := range allCategories {
		if !that.boxes[category].filled {
			unscored = append(unscored, category)
		}
	}
	return unscored
}

// IsComplete - true once all thirteen boxes are filled, which ends the game.
func (that *Scorecard) IsComplete() bool {
	for _, b := range that.boxes {
		if !b.filled {
			return false
		}
	}
	return true
}

// View - returns a read-only projection of the card.
func (that *Scorecard) View() View {
	return scorecardView{card: that}
}

func (that *Scorecard) sum(categories []Category) int {
	total := 0
	for _, category := range categories {
		total += that.boxes[category].value
	}
	return total
}

type scorecardView struct {
	card *Scorecard
}

func (that scorecardView) IsScored(category Category) bool {
	return that.card.IsScored(category)
}

func (that scorecardView) Score(category Category) (int, bool) {
	return that.card.Score(category)
}

func (that scorecardView) TotalScore() int {
	return that.card.TotalScore()
}

func (that scorecardView) UnscoredCategories() []Category {
	return that.card.UnscoredCategories()
}

type scorecardJSON struct {
	Scores            map[Category]int `json:"scores"`
	YahtzeeBonusCount int              `json:"yahtzee_bonus_count"`
}

func (that *Scorecard) MarshalJSON() ([]byte, error) {
	encoded := scorecardJSON{
		Scores:            make(map[Category]int, numCategories),
		YahtzeeBonusCount: that.yahtzeeBonusCount,
	}

	for _, category := range allCategories {
		if b := that.boxes[category]; b.filled {
			encoded.Scores[category] = b.value
		}
	}

	return json.Marshal(encoded)
}

func (that *Scorecard) UnmarshalJSON(data []byte) error {
	var decoded scorecardJSON
	if err := json.Unmarshal(data, &decoded); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidScorecard, err)
	}

	if decoded.YahtzeeBonusCount < 0 {
		return fmt.Errorf("%w: negative yahtzee bonus count %d", apperror.ErrInvalidScorecard, decoded.YahtzeeBonusCount)
	}

	card := Scorecard{yahtzeeBonusCount: decoded.YahtzeeBonusCount}
	for category, value := range decoded.Scores {
		if value < 0 {
			return fmt.Errorf("%w: negative score %d for %s", apperror.ErrInvalidScorecard, value, category)
		}
		if !reachableScore(category, value) {
			return fmt.Errorf("%w: score %d cannot be earned in %s", apperror.ErrInvalidScorecard, value, category)
		}
		card.boxes[category] = box{value: value, filled: true}
	}

	if card.yahtzeeBonusCount > 0 {
		if score, ok := card.Score(Yahtzee); !ok || score != YahtzeeScore {
			return fmt.Errorf("%w: yahtzee bonus without a scored yahtzee", apperror.ErrInvalidScorecard)
		}

		// each bonus is earned while filling a box other than YAHTZEE
		filled := numCategories - len(card.UnscoredCategories())
		if card.yahtzeeBonusCount > filled-1 {
			return fmt.Errorf("%w: %d yahtzee bonuses for %d filled boxes",
				apperror.ErrInvalidScorecard, card.yahtzeeBonusCount, filled)
		}
	}

	*that = card

	return nil
}

// reachableScore - reports whether some hand, or a forced zero, can leave value in the category's box.
func reachableScore(category Category, value int) bool {
	if value == 0 {
		return true
	}

	switch category {
	case FullHouse:
		return value == FullHouseScore
	case SmallStraight:
		return value == SmallStraightScore
	case LargeStraight:
		return value == LargeStraightScore
	case Yahtzee:
		return value == YahtzeeScore
	case ThreeOfAKind, FourOfAKind, Chance:
		return value >= HandSize*minFace && value <= HandSize*maxFace
	default:
		face := category.Face()
		return face > 0 && value%face == 0 && value/face <= HandSize
	}
}
