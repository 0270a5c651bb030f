package types

import "errors"

// Game state machine errors. Every failed operation leaves the account
// untouched; the ledger discards all buffered writes on error.
var (
	ErrInvalidWager     = errors.New("the wager must be greater than zero")
	ErrDuplicateGame    = errors.New("a game already exists at the derived address")
	ErrGameNotOpen      = errors.New("can't join the game, the game has been joined or has finished")
	ErrUnauthorized     = errors.New("you are not a participant of this game")
	ErrMoveNotSelected  = errors.New("you have not selected a move yet")
	ErrGameAlreadyEnded = errors.New("the game has already ended")

	ErrOpponentNotJoined  = errors.New("can't ready up, no opponent has joined yet")
	ErrJoinSelfGame       = errors.New("can't join your own game")
	ErrInvalidMove        = errors.New("the move must be rock, paper or scissors")
	ErrGameNotEnded       = errors.New("the game has not ended yet")
	ErrRevealMismatch     = errors.New("the revealed move does not match the stored commitment")
	ErrAlreadyRevealed    = errors.New("you have already revealed your move")
	ErrGameNotResolved    = errors.New("can't settle yet, waiting for reveals or the reveal timeout")
	ErrGameAlreadySettled = errors.New("the game has already been settled")
	ErrInvalidGameAccount = errors.New("the game account does not match its derivation seeds")
)

// Ledger errors.
var (
	ErrAmount           = errors.New("invalid amount")
	ErrNoBalance        = errors.New("insufficient balance")
	ErrSendSameToRecv   = errors.New("can't transfer to the same address")
	ErrActionNotSupport = errors.New("action not supported")
	ErrSign             = errors.New("invalid transaction signature")
	ErrDupTx            = errors.New("transaction already committed")
	ErrExecerParse      = errors.New("unknown executor")
	ErrNotFound         = errors.New("not found")
)
