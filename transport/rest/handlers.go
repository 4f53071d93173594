package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rocketscienceinc/yahtzee-backend/internal/apperror"
	"github.com/rocketscienceinc/yahtzee-backend/internal/entity"
	"github.com/rocketscienceinc/yahtzee-backend/internal/yahtzee"
)

const maxBodyBytes = 1 << 12

var errBadRequest = errors.New("bad request")

type diceRequest struct {
	Dice []int `json:"dice"`
}

type categoryRequest struct {
	Category *yahtzee.Category `json:"category"`
	Dice     []int             `json:"dice"`
}

type playerResponse struct {
	ID                string                   `json:"id"`
	Scores            map[yahtzee.Category]int `json:"scores"`
	YahtzeeBonusCount int                      `json:"yahtzee_bonus_count"`
	UpperSum          int                      `json:"upper_sum"`
	UpperBonus        int                      `json:"upper_bonus"`
	LowerSum          int                      `json:"lower_sum"`
	YahtzeeBonus      int                      `json:"yahtzee_bonus"`
	Total             int                      `json:"total"`
	Unscored          []yahtzee.Category       `json:"unscored"`
	Complete          bool                     `json:"complete"`
}

type claimResponse struct {
	Player playerResponse `json:"player"`
	Points int            `json:"points"`
}

type optionsResponse struct {
	Options []yahtzee.Option `json:"options"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newPlayerResponse(player *entity.Player) playerResponse {
	card := player.Card

	scores := make(map[yahtzee.Category]int)
	for _, category := range yahtzee.Categories() {
		if score, ok := card.Score(category); ok {
			scores[category] = score
		}
	}

	return playerResponse{
		ID:                player.ID,
		Scores:            scores,
		YahtzeeBonusCount: card.YahtzeeBonusCount(),
		UpperSum:          card.UpperSum(),
		UpperBonus:        card.UpperBonus(),
		LowerSum:          card.LowerSum(),
		YahtzeeBonus:      card.YahtzeeBonus(),
		Total:             card.TotalScore(),
		Unscored:          card.UnscoredCategories(),
		Complete:          card.IsComplete(),
	}
}

func (that *Server) createPlayer(w http.ResponseWriter, r *http.Request) {
	player, err := that.scores.CreatePlayer(r.Context())
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, newPlayerResponse(player))
}

func (that *Server) getPlayer(w http.ResponseWriter, r *http.Request) {
	player, err := that.scores.GetPlayer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, newPlayerResponse(player))
}

func (that *Server) deletePlayer(w http.ResponseWriter, r *http.Request) {
	if err := that.scores.DeletePlayer(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *Server) options(w http.ResponseWriter, r *http.Request) {
	var req diceRequest
	if err := decodeBody(w, r, &req); err != nil {
		that.writeError(w, r, err)
		return
	}

	options, err := that.scores.Options(r.Context(), chi.URLParam(r, "id"), req.Dice)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	if options == nil {
		options = []yahtzee.Option{}
	}

	that.writeJSON(w, http.StatusOK, optionsResponse{Options: options})
}

func (that *Server) claim(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCategoryRequest(w, r)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	player, points, err := that.scores.Claim(r.Context(), chi.URLParam(r, "id"), *req.Category, req.Dice)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, claimResponse{Player: newPlayerResponse(player), Points: points})
}

func (that *Server) zero(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCategoryRequest(w, r)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	player, err := that.scores.ForceZero(r.Context(), chi.URLParam(r, "id"), *req.Category, req.Dice)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, newPlayerResponse(player))
}

func decodeCategoryRequest(w http.ResponseWriter, r *http.Request) (*categoryRequest, error) {
	var req categoryRequest
	if err := decodeBody(w, r, &req); err != nil {
		return nil, err
	}

	if req.Category == nil {
		return nil, fmt.Errorf("%w: category is required", errBadRequest)
	}

	return &req, nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		// unknown category names surface as ErrUnknownCategory from UnmarshalText
		if errors.Is(err, apperror.ErrUnknownCategory) {
			return err
		}
		return fmt.Errorf("%w: %w", errBadRequest, err)
	}

	return nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, apperror.ErrInvalidHand),
		errors.Is(err, apperror.ErrUnknownCategory):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrPlayerNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrCategoryAlreadyScored):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrNotScoreable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (that *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		message = http.StatusText(status)
	}

	that.writeJSON(w, status, errorResponse{Error: message})
}

func (that *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
