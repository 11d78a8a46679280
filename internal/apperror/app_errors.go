package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrIllegalColor     = errors.New("color is not a legal move")
	ErrSpectator        = errors.New("spectators can't make moves")
	ErrUnknownClient    = errors.New("unknown client")
	ErrResultsDisabled  = errors.New("match results are disabled")
	ErrSessionClosed    = errors.New("session is closed")
)
