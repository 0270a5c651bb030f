package types

// RPSX is the executor name. The executor's derived address is the program
// identity that seeds every game address.
const RPSX = "rps"

// GameSeed is the constant prefix of the game address derivation.
const GameSeed = "game"

// Coin is the smallest-unit multiplier for one coin.
const Coin = int64(1e8)

// MaxCoin caps any single amount an operation may move.
const MaxCoin = int64(1e17)

// MaxTxsPerBlock spaces the per-transaction index so that
// height*MaxTxsPerBlock+txIndex is unique and ordered.
const MaxTxsPerBlock = int64(100000)

// rps action ty
const (
	RPSActionCreate = int32(iota + 1)
	RPSActionJoin
	RPSActionSelectMove
	RPSActionReadyUp
	RPSActionReveal
	RPSActionSettle
)

// game status, forward only
const (
	StatusOpen = int32(iota + 1)
	StatusCommitted
	StatusEnded
	StatusSettled
)

// moves, wire values fixed by the commitment format (single byte)
const (
	MoveRock     = int32(0)
	MovePaper    = int32(1)
	MoveScissors = int32(2)

	// MoveUnknown marks a move that has not been revealed yet.
	MoveUnknown = int32(-1)
)

// settle results
const (
	ResultDraw = int32(iota + 1)
	ResultCreatorWins
	ResultOpponentWins
	ResultTimeout
)

// CommitSize is the byte length of a move commitment (SHA-256).
const CommitSize = 32

// receipt log types
const (
	TyLogRPSCreate     = int32(711)
	TyLogRPSJoin       = int32(712)
	TyLogRPSSelectMove = int32(713)
	TyLogRPSReadyUp    = int32(714)
	TyLogRPSReveal     = int32(715)
	TyLogRPSSettle     = int32(716)

	TyLogTransfer = int32(731)
)

// transaction execution result
const (
	ExecErr = int32(0)
	ExecOk  = int32(1)
)

// signature types
const (
	SECP256K1 = int32(1)
)

// list query direction
const (
	ListDESC = int32(0)
	ListASC  = int32(1)
)

// DefaultListCount and MaxListCount bound page sizes of list queries.
const (
	DefaultListCount = int32(20)
	MaxListCount     = int32(100)
)

// DefaultRevealTimeout is how long after a game ends a lone revealer must
// wait before claiming the pot, in seconds.
const DefaultRevealTimeout = int64(24 * 60 * 60)

// StatusName returns a human readable name for a game status.
func StatusName(status int32) string {
	switch status {
	case StatusOpen:
		return "open"
	case StatusCommitted:
		return "committed"
	case StatusEnded:
		return "ended"
	case StatusSettled:
		return "settled"
	}
	return "unknown"
}

// MoveName returns a human readable name for a move.
func MoveName(move int32) string {
	switch move {
	case MoveRock:
		return "rock"
	case MovePaper:
		return "paper"
	case MoveScissors:
		return "scissors"
	}
	return "unknown"
}

// CheckMove reports whether move is a valid plaintext move.
func CheckMove(move int32) bool {
	return move >= MoveRock && move <= MoveScissors
}

// CheckAmount reports whether an amount can be moved by the coins ledger.
func CheckAmount(amount int64) bool {
	return amount > 0 && amount < MaxCoin
}
