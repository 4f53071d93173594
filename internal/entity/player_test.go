package entity

import (
	"encoding/json"
	"testing"

	"github.com/rocketscienceinc/yahtzee-backend/internal/yahtzee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlayer(t *testing.T) {
	// When: creating a player
	player := NewPlayer("123")

	// Then: the card is empty and the game is not over
	require.NotNil(t, player.Card)
	assert.Equal(t, "123", player.ID)
	assert.False(t, player.IsFinished())
	assert.Zero(t, player.Total())
}

func TestPlayer_IsFinished(t *testing.T) {
	t.Run("Returns true when every box is filled", func(t *testing.T) {
		// Given: a player who zeroed the whole card
		player := NewPlayer("123")
		hand := yahtzee.MustHand(1, 1, 3, 4, 6)
		for _, category := range yahtzee.Categories() {
			require.NoError(t, player.Card.ForceZero(category, hand))
		}

		// Then: the game is over
		assert.True(t, player.IsFinished())
	})

	t.Run("Returns false without a card", func(t *testing.T) {
		player := &Player{ID: "123"}

		assert.False(t, player.IsFinished())
		assert.Zero(t, player.Total())
	})
}

func TestPlayer_JSON(t *testing.T) {
	// Given: a player with CHANCE claimed
	player := NewPlayer("123")
	_, err := player.Card.Claim(yahtzee.Chance, yahtzee.MustHand(6, 6, 5, 4, 1))
	require.NoError(t, err)

	// When: encoding the player
	data, err := json.Marshal(player)
	require.NoError(t, err)

	// Then: the card is nested with its scores
	assert.JSONEq(t, `{"id":"123","card":{"scores":{"chance":22},"yahtzee_bonus_count":0}}`, string(data))

	var restored Player
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, 22, restored.Total())
}
