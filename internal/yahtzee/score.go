package yahtzee

import (
	"fmt"

	"github.com/rocketscienceinc/yahtzee-backend/internal/apperror"
)

const (
	FullHouseScore     = 25
	SmallStraightScore = 30
	LargeStraightScore = 40
	YahtzeeScore       = 50

	UpperBonusThreshold = 63
	UpperBonusScore     = 35
	YahtzeeBonusScore   = 100
)

// CalculateScore - returns the points the hand earns in the category.
// Scoreability is the caller's concern and is not checked here.
func CalculateScore(category Category, hand Hand) (int, error) {
	switch category {
	case Aces, Twos, Threes, Fours, Fives, Sixes:
		return upperScore(category.Face(), hand), nil
	case ThreeOfAKind, FourOfAKind, Chance:
		return hand.Sum(), nil
	case FullHouse:
		return FullHouseScore, nil
	case SmallStraight:
		return SmallStraightScore, nil
	case LargeStraight:
		return LargeStraightScore, nil
	case Yahtzee:
		return YahtzeeScore, nil
	default:
		return 0, fmt.Errorf("%w: %s", apperror.ErrUnknownCategory, category)
	}
}

func upperScore(face int, hand Hand) int {
	total := 0
	for _, value := range hand.dice {
		if value == face {
			total += value
		}
	}
	return total
}
