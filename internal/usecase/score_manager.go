package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/yahtzee-backend/internal/entity"
	"github.com/rocketscienceinc/yahtzee-backend/internal/yahtzee"
)

type playerRepo interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
	DeleteByID(ctx context.Context, id string) error
}

// ScoreManager records rolled hands on players' scorecards. Writes to one
// player's card are serialized; different players proceed in parallel.
type ScoreManager struct {
	logger     *slog.Logger
	playerRepo playerRepo

	locksMu sync.Mutex
	locks   map[string]*playerLock
}

// playerLock is dropped from the map once no caller holds or waits on it.
type playerLock struct {
	mu   sync.Mutex
	refs int
}

func NewScoreManager(logger *slog.Logger, playerRepo playerRepo) *ScoreManager {
	return &ScoreManager{
		logger: logger.With("component", "score_manager"),

		playerRepo: playerRepo,

		locks: make(map[string]*playerLock),
	}
}

// CreatePlayer - starts a new player with an empty card.
func (that *ScoreManager) CreatePlayer(ctx context.Context) (*entity.Player, error) {
	player := entity.NewPlayer(uuid.NewString())

	if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	that.logger.Info("player created", "player_id", player.ID)

	return player, nil
}

func (that *ScoreManager) GetPlayer(ctx context.Context, id string) (*entity.Player, error) {
	player, err := that.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return player, nil
}

func (that *ScoreManager) DeletePlayer(ctx context.Context, id string) error {
	unlock := that.lock(id)
	defer unlock()

	if err := that.playerRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}

	return nil
}

// Options - lists the categories the dice can be claimed in on the player's card.
func (that *ScoreManager) Options(ctx context.Context, id string, dice []int) ([]yahtzee.Option, error) {
	hand, err := yahtzee.NewHand(dice...)
	if err != nil {
		return nil, fmt.Errorf("failed to build hand: %w", err)
	}

	player, err := that.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	return yahtzee.Options(hand, player.Card.View()), nil
}

// Claim - scores the dice in the category and returns the updated player and the points earned.
func (that *ScoreManager) Claim(ctx context.Context, id string, category yahtzee.Category, dice []int) (*entity.Player, int, error) {
	var points int

	player, err := that.update(ctx, id, dice, func(card *yahtzee.Scorecard, hand yahtzee.Hand) error {
		var err error
		points, err = card.Claim(category, hand)
		return err
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to claim %s: %w", category, err)
	}

	return player, points, nil
}

// ForceZero - records a zero in the category.
func (that *ScoreManager) ForceZero(ctx context.Context, id string, category yahtzee.Category, dice []int) (*entity.Player, error) {
	player, err := that.update(ctx, id, dice, func(card *yahtzee.Scorecard, hand yahtzee.Hand) error {
		return card.ForceZero(category, hand)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to zero %s: %w", category, err)
	}

	return player, nil
}

// update - loads the card, applies mutate and saves it, holding the player's lock throughout.
// Nothing is saved when mutate fails.
func (that *ScoreManager) update(
	ctx context.Context,
	id string,
	dice []int,
	mutate func(card *yahtzee.Scorecard, hand yahtzee.Hand) error,
) (*entity.Player, error) {
	log := that.logger.With("method", "update", "player_id", id)

	hand, err := yahtzee.NewHand(dice...)
	if err != nil {
		return nil, err
	}

	unlock := that.lock(id)
	defer unlock()

	player, err := that.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	bonusBefore := player.Card.YahtzeeBonusCount()

	if err = mutate(player.Card, hand); err != nil {
		log.Debug("card rejected hand", "hand", hand.String(), "error", err)
		return nil, err
	}

	if err = that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	if player.Card.YahtzeeBonusCount() > bonusBefore {
		log.Info("yahtzee bonus awarded", "bonus_count", player.Card.YahtzeeBonusCount())
	}

	if player.IsFinished() {
		log.Info("scorecard complete", "total", player.Total())
	}

	return player, nil
}

// lock - serializes writers of one player and returns the matching unlock.
func (that *ScoreManager) lock(id string) func() {
	that.locksMu.Lock()
	entry, ok := that.locks[id]
	if !ok {
		entry = &playerLock{}
		that.locks[id] = entry
	}
	entry.refs++
	that.locksMu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		that.locksMu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(that.locks, id)
		}
		that.locksMu.Unlock()
	}
}
