package apperror

import "errors"

var (
	ErrInvalidHand           = errors.New("invalid hand")
	ErrCategoryAlreadyScored = errors.New("category is already scored")
	ErrNotScoreable          = errors.New("category is not scoreable with this hand")
	ErrUnknownCategory       = errors.New("unknown category")

	ErrInvalidScorecard = errors.New("invalid scorecard")
	ErrPlayerNotFound   = errors.New("player not found")
)
