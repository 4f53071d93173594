package yahtzee

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/yahtzee-backend/internal/apperror"
)

const (
	HandSize = 5

	minFace = 1
	maxFace = 6
)

var smallStraights = [][]int{
	{1, 2, 3, 4},
	{2, 3, 4, 5},
	{3, 4, 5, 6},
}

// Hand is the result of a roll of five dice. Dice are kept sorted, so two
// hands holding the same values compare equal with ==.
type Hand struct {
	dice [HandSize]int
}

// NewHand - validates the dice and builds a Hand.
func NewHand(values ...int) (Hand, error) {
	if len(values) != HandSize {
		return Hand{}, fmt.Errorf("%w: expected %d dice, got %d", apperror.ErrInvalidHand, HandSize, len(values))
	}

	var hand Hand
	for i, value := range values {
		if value < minFace || value > maxFace {
			return Hand{}, fmt.Errorf("%w: die %d has value %d", apperror.ErrInvalidHand, i, value)
		}
		hand.dice[i] = value
	}

	slices.Sort(hand.dice[:])

	return hand, nil
}

// MustHand - like NewHand but panics on invalid dice.
func MustHand(values ...int) Hand {
	hand, err := NewHand(values...)
	if err != nil {
		panic(err)
	}
	return hand
}

// Values - returns the dice in ascending order.
func (that Hand) Values() []int {
	return append([]int(nil), that.dice[:]...)
}

func (that Hand) Sum() int {
	total := 0
	for _, value := range that.dice {
		total += value
	}
	return total
}

// ValueCounts - returns how many dice show each face 1-6.
func (that Hand) ValueCounts() map[int]int {
	counts := make(map[int]int, maxFace)
	for face := minFace; face <= maxFace; face++ {
		counts[face] = 0
	}
	for _, value := range that.dice {
		counts[value]++
	}
	return counts
}

func (that Hand) counts() [maxFace + 1]int {
	var counts [maxFace + 1]int
	for _, value := range that.dice {
		counts[value]++
	}
	return counts
}

func (that Hand) IsNOfAKind(n int) bool {
	counts := that.counts()
	for _, count := range counts[minFace:] {
		if count >= n {
			return true
		}
	}
	return false
}

// IsFullHouse - true for a three and a pair, and for five of a kind.
func (that Hand) IsFullHouse() bool {
	counts := that.counts()

	var nonZero []int
	for _, count := range counts[minFace:] {
		if count > 0 {
			nonZero = append(nonZero, count)
		}
	}

	slices.Sort(nonZero)

	return slices.Equal(nonZero, []int{2, 3}) || slices.Equal(nonZero, []int{5})
}

func (that Hand) IsSmallStraight() bool {
	counts := that.counts()

	for _, straight := range smallStraights {
		complete := true
		for _, face := range straight {
			if counts[face] == 0 {
				complete = false
				break
			}
		}
		if complete {
			return true
		}
	}

	return false
}

func (that Hand) IsLargeStraight() bool {
	return that.dice == [HandSize]int{1, 2, 3, 4, 5} || that.dice == [HandSize]int{2, 3, 4, 5, 6}
}

func (that Hand) IsYahtzee() bool {
	return that.isValid() && that.dice[0] == that.dice[HandSize-1]
}

// MatchingUpperCategory - returns the upper category of the face shown by a
// five of a kind. ok is false for any other hand.
func (that Hand) MatchingUpperCategory() (Category, bool) {
	if !that.IsYahtzee() {
		return 0, false
	}
	return CategoryForFace(that.dice[0])
}

func (that Hand) String() string {
	return fmt.Sprint(that.dice)
}

// isValid - false for the zero Hand, which was never built by NewHand.
func (that Hand) isValid() bool {
	return that.dice[0] >= minFace
}
