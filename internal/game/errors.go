package game

import "errors"

var (
	ErrGameEnded        = errors.New("the game is ended")
	ErrInvalidCardIndex = errors.New("invalid card index")
	ErrUndiscardable    = errors.New("card can't be discarded")
	ErrCardUnusable     = errors.New("card can't be used")
)
