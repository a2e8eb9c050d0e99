// Package gametools provides reusable, rule-agnostic game apparatus:
// dice, playing cards, dominoes and spinners, meant to be composed into
// game logic by callers.
//
// The root package holds only the error kinds shared by the apparatus
// packages. Wrap them with fmt.Errorf("...: %w", ...) and test with
// errors.Is.
package gametools

import "errors"

// Error kinds for problematic game conditions.
var (
	// ErrInvalidTile reports a domino constructed with pip values
	// outside the allowed range.
	ErrInvalidTile = errors.New("tile pip value out of range")

	// ErrIndexOutOfRange reports removal or access by an invalid index.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrStackEmpty reports a draw from an empty deck or pile.
	ErrStackEmpty = errors.New("cannot draw from empty stack")

	// ErrStackTooSmall reports a multi-card draw that the stack cannot
	// satisfy.
	ErrStackTooSmall = errors.New("too few cards remain to satisfy need")

	// ErrCardNotFound reports that the card sought is not in the
	// collection.
	ErrCardNotFound = errors.New("card not found in this collection")

	// ErrInsufficientTiles reports a draw that the bone pile cannot
	// satisfy.
	ErrInsufficientTiles = errors.New("insufficient tiles left in the bone pile")

	// ErrTileUnconnected reports a tile that does not match the tail of
	// the train it was played on.
	ErrTileUnconnected = errors.New("tile does not match the tail of the train")

	// ErrTrainClosed reports a play on a closed train.
	ErrTrainClosed = errors.New("attempted to play on a closed train")
)
