package entity

import "github.com/rocketscienceinc/yahtzee-backend/internal/yahtzee"

// Player owns one scorecard for the length of a game.
type Player struct {
	ID   string             `json:"id"`
	Card *yahtzee.Scorecard `json:"card"`
}

func NewPlayer(id string) *Player {
	return &Player{
		ID:   id,
		Card: yahtzee.NewScorecard(),
	}
}

// IsFinished - true once every box on the card is filled.
func (that *Player) IsFinished() bool {
	return that.Card != nil && that.Card.IsComplete()
}

func (that *Player) Total() int {
	if that.Card == nil {
		return 0
	}
	return that.Card.TotalScore()
}
