package types

import "encoding/json"

// Game is the full state of one game account, keyed in the state db by its
// derived address. Creator and Wager are fixed at creation; Bump is the
// derivation nonce stored so any later operation can re-validate the
// account's own address without searching again.
type Game struct {
	GameId   string `json:"gameId"`
	Creator  string `json:"creator"`
	Opponent string `json:"opponent,omitempty"`

	// 32-byte SHA-256 move commitments, all zero until the party commits.
	CreatorCommit  []byte `json:"creatorCommit"`
	OpponentCommit []byte `json:"opponentCommit"`

	CreatorReady  bool `json:"creatorReady"`
	OpponentReady bool `json:"opponentReady"`

	Wager  uint64 `json:"wager"`
	Status int32  `json:"status"`
	Bump   uint8  `json:"bump"`

	// Revealed plaintext moves, MoveUnknown until the reveal step.
	CreatorMove  int32  `json:"creatorMove"`
	OpponentMove int32  `json:"opponentMove"`
	CreatorSalt  string `json:"creatorSalt,omitempty"`
	OpponentSalt string `json:"opponentSalt,omitempty"`
	Result       int32  `json:"result,omitempty"`

	CreateTime int64 `json:"createTime"`
	JoinTime   int64 `json:"joinTime,omitempty"`
	EndTime    int64 `json:"endTime,omitempty"`
	SettleTime int64 `json:"settleTime,omitempty"`

	// Index orders this game inside the status indexes; PrevIndex locates
	// the index entry of the previous status for deletion.
	Index     int64 `json:"index"`
	PrevIndex int64 `json:"prevIndex,omitempty"`

	CreateTxHash string `json:"createTxHash,omitempty"`
	LastTxHash   string `json:"lastTxHash,omitempty"`
}

// IsParticipant reports whether addr is the creator or the opponent.
func (g *Game) IsParticipant(addr string) bool {
	return addr == g.Creator || (g.Opponent != "" && addr == g.Opponent)
}

// Committed reports whether the given participant has a non-zero commitment.
func (g *Game) Committed(addr string) bool {
	var commit []byte
	if addr == g.Creator {
		commit = g.CreatorCommit
	} else {
		commit = g.OpponentCommit
	}
	for _, b := range commit {
		if b != 0 {
			return true
		}
	}
	return false
}

// Account is one coins ledger entry.
type Account struct {
	Addr    string `json:"addr"`
	Balance int64  `json:"balance"`
}

// GameRecord is the value stored under status/addr index keys.
type GameRecord struct {
	GameId string `json:"gameId"`
	Index  int64  `json:"index"`
}

// RPSAction is the payload of every rps transaction, a tagged union over the
// operation request types.
type RPSAction struct {
	Ty         int32          `json:"ty"`
	Create     *RPSCreate     `json:"create,omitempty"`
	Join       *RPSJoin       `json:"join,omitempty"`
	SelectMove *RPSSelectMove `json:"selectMove,omitempty"`
	ReadyUp    *RPSReadyUp    `json:"readyUp,omitempty"`
	Reveal     *RPSReveal     `json:"reveal,omitempty"`
	Settle     *RPSSettle     `json:"settle,omitempty"`
}

// RPSCreate opens a new game escrowing Wager from the creator.
type RPSCreate struct {
	Wager uint64 `json:"wager"`
}

// RPSJoin escrows a matching wager from the sender and fills the opponent
// slot of the game at GameId.
type RPSJoin struct {
	GameId string `json:"gameId"`
}

// RPSSelectMove commits the sender to Move without revealing it: the
// executor stores SHA-256(move byte || salt) only.
type RPSSelectMove struct {
	GameId string `json:"gameId"`
	Move   int32  `json:"move"`
	Salt   string `json:"salt"`
}

// RPSReadyUp irrevocably accepts the sender's committed move.
type RPSReadyUp struct {
	GameId string `json:"gameId"`
}

// RPSReveal discloses the sender's plaintext move and salt after the game
// has ended; the executor checks them against the stored commitment.
type RPSReveal struct {
	GameId string `json:"gameId"`
	Move   int32  `json:"move"`
	Salt   string `json:"salt"`
}

// RPSSettle resolves an ended game and releases the escrowed funds.
type RPSSettle struct {
	GameId string `json:"gameId"`
}

// ReceiptRPSGame is logged on every successful game transition.
type ReceiptRPSGame struct {
	GameId     string `json:"gameId"`
	Status     int32  `json:"status"`
	PrevStatus int32  `json:"prevStatus"`
	Addr       string `json:"addr"`
	CreateAddr string `json:"createAddr"`
	Opponent   string `json:"opponent,omitempty"`
	Index      int64  `json:"index"`
	PrevIndex  int64  `json:"prevIndex,omitempty"`
}

// ReceiptAccountTransfer records a balance change of one address.
type ReceiptAccountTransfer struct {
	Prev    *Account `json:"prev"`
	Current *Account `json:"current"`
}

// KeyValue is one pending state write; a nil Value deletes the key at
// commit time.
type KeyValue struct {
	Key   []byte `json:"key"`
	Value []byte `json:"value"`
}

// ReceiptLog is one typed event produced by an operation.
type ReceiptLog struct {
	Ty  int32  `json:"ty"`
	Log []byte `json:"log"`
}

// Receipt is the full observable effect of one executed transaction.
type Receipt struct {
	Ty   int32         `json:"ty"`
	KV   []*KeyValue   `json:"kv"`
	Logs []*ReceiptLog `json:"logs"`
}

// Encode marshals a state or receipt object. State objects are always
// written by the code that built them, so a marshal failure is a programming
// error and panics like a corrupted database would.
func Encode(v interface{}) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}

// Decode unmarshals data produced by Encode.
func Decode(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}
