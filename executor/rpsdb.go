package executor

import (
	"bytes"
	"fmt"

	"github.com/mrtoaf/rugpaperscissors/account"
	"github.com/mrtoaf/rugpaperscissors/common"
	"github.com/mrtoaf/rugpaperscissors/common/address"
	dbm "github.com/mrtoaf/rugpaperscissors/common/db"
	"github.com/mrtoaf/rugpaperscissors/types"
)

// Key is the state db key of a game account.
func Key(id string) []byte {
	return []byte(fmt.Sprintf("mavl-%s-game-%s", types.RPSX, id))
}

func calcStatusKey(status int32, index int64) []byte {
	return []byte(fmt.Sprintf("mavl-%s-status:%d:%018d", types.RPSX, status, index))
}

func calcStatusPrefix(status int32) []byte {
	return []byte(fmt.Sprintf("mavl-%s-status:%d:", types.RPSX, status))
}

func calcAddrKey(addr string, status int32, index int64) []byte {
	return []byte(fmt.Sprintf("mavl-%s-addr:%s:%d:%018d", types.RPSX, addr, status, index))
}

func calcAddrPrefix(addr string, status int32) []byte {
	return []byte(fmt.Sprintf("mavl-%s-addr:%s:%d:", types.RPSX, addr, status))
}

// Action carries the context of one transaction while its operation runs.
type Action struct {
	coinsAccount *account.DB
	db           dbm.KV
	txhash       []byte
	fromaddr     string
	blocktime    int64
	height       int64
	execaddr     string
	index        int
	cfg          *types.RPSConfig
}

// NewAction binds an executor and a transaction into an action context.
func NewAction(r *RPS, tx *types.Transaction, index int) *Action {
	return &Action{
		coinsAccount: r.coinsAccount,
		db:           r.statedb,
		txhash:       tx.Hash(),
		fromaddr:     tx.From(),
		blocktime:    r.blocktime,
		height:       r.height,
		execaddr:     r.execaddr,
		index:        index,
		cfg:          r.cfg,
	}
}

func (action *Action) getIndex() int64 {
	return action.height*types.MaxTxsPerBlock + int64(action.index)
}

func (action *Action) readGame(id string) (*types.Game, error) {
	value, err := action.db.Get(Key(id))
	if err != nil {
		if err == dbm.ErrNotFound {
			return nil, types.ErrNotFound
		}
		return nil, err
	}
	var game types.Game
	if err := types.Decode(value, &game); err != nil {
		return nil, err
	}
	// re-validate the account address from the stored bump on every read
	if !address.ValidateGame(types.GameSeed, game.Creator, game.Wager, action.execaddr, game.Bump, game.GameId) {
		return nil, types.ErrInvalidGameAccount
	}
	return &game, nil
}

func (action *Action) saveGame(game *types.Game) []*types.KeyValue {
	game.LastTxHash = common.ToHex(action.txhash)
	value := types.Encode(game)
	action.db.Set(Key(game.GameId), value)
	return []*types.KeyValue{{Key: Key(game.GameId), Value: value}}
}

// indexKVs maintains the status and address secondary indexes. New entries go
// in under the game's current status and Index; entries of the previous
// status are removed at PrevIndex. A nil value deletes the key at commit.
func (action *Action) indexKVs(game *types.Game, prevStatus int32) []*types.KeyValue {
	record := types.Encode(&types.GameRecord{GameId: game.GameId, Index: game.Index})
	var kvs []*types.KeyValue
	kvs = append(kvs, &types.KeyValue{Key: calcStatusKey(game.Status, game.Index), Value: record})
	kvs = append(kvs, &types.KeyValue{Key: calcAddrKey(game.Creator, game.Status, game.Index), Value: record})
	if game.Opponent != "" {
		kvs = append(kvs, &types.KeyValue{Key: calcAddrKey(game.Opponent, game.Status, game.Index), Value: record})
	}
	if prevStatus > 0 {
		kvs = append(kvs, &types.KeyValue{Key: calcStatusKey(prevStatus, game.PrevIndex)})
		kvs = append(kvs, &types.KeyValue{Key: calcAddrKey(game.Creator, prevStatus, game.PrevIndex)})
		// the opponent only gains index entries from Committed on
		if game.Opponent != "" && prevStatus > types.StatusOpen {
			kvs = append(kvs, &types.KeyValue{Key: calcAddrKey(game.Opponent, prevStatus, game.PrevIndex)})
		}
	}
	for _, kv := range kvs {
		action.db.Set(kv.Key, kv.Value)
	}
	return kvs
}

func (action *Action) receiptLog(ty int32, game *types.Game, prevStatus int32) *types.ReceiptLog {
	r := &types.ReceiptRPSGame{
		GameId:     game.GameId,
		Status:     game.Status,
		PrevStatus: prevStatus,
		Addr:       action.fromaddr,
		CreateAddr: game.Creator,
		Opponent:   game.Opponent,
		Index:      game.Index,
		PrevIndex:  game.PrevIndex,
	}
	return &types.ReceiptLog{Ty: ty, Log: types.Encode(r)}
}

// commitHash is the binding move commitment: SHA-256 over the single move
// byte followed by the raw salt bytes.
func commitHash(move int32, salt string) []byte {
	data := make([]byte, 0, 1+len(salt))
	data = append(data, byte(move))
	data = append(data, []byte(salt)...)
	return common.Sha256(data)
}

// GameCreate opens a new game at the address derived from the creator and
// the wager, and escrows the wager into it.
func (action *Action) GameCreate(create *types.RPSCreate) (*types.Receipt, error) {
	if create.Wager == 0 {
		glog.Error("create game", "addr", action.fromaddr, "err", types.ErrInvalidWager)
		return nil, types.ErrInvalidWager
	}
	wager := int64(create.Wager)
	// a decisive settle pays 2*wager out of the game account, so the doubled
	// amount must fit the ledger cap or the escrow could never leave
	if !types.CheckAmount(wager) || !types.CheckAmount(2*wager) {
		return nil, types.ErrAmount
	}
	gameAddr, bump, err := address.DeriveGame(types.GameSeed, action.fromaddr, create.Wager, action.execaddr)
	if err != nil {
		return nil, err
	}
	gameId := gameAddr.String()
	if _, err := action.db.Get(Key(gameId)); err == nil {
		glog.Error("create game", "addr", action.fromaddr, "gameId", gameId, "err", types.ErrDuplicateGame)
		return nil, types.ErrDuplicateGame
	} else if err != dbm.ErrNotFound {
		return nil, err
	}
	receipt, err := action.coinsAccount.Transfer(action.fromaddr, gameId, wager)
	if err != nil {
		glog.Error("create game", "addr", action.fromaddr, "wager", wager, "err", err)
		return nil, err
	}
	game := &types.Game{
		GameId:         gameId,
		Creator:        action.fromaddr,
		CreatorCommit:  make([]byte, types.CommitSize),
		OpponentCommit: make([]byte, types.CommitSize),
		Wager:          create.Wager,
		Status:         types.StatusOpen,
		Bump:           bump,
		CreatorMove:    types.MoveUnknown,
		OpponentMove:   types.MoveUnknown,
		CreateTime:     action.blocktime,
		Index:          action.getIndex(),
		CreateTxHash:   common.ToHex(action.txhash),
	}
	logs := []*types.ReceiptLog{action.receiptLog(types.TyLogRPSCreate, game, 0)}
	logs = append(logs, receipt.Logs...)
	kvs := action.saveGame(game)
	kvs = append(kvs, action.indexKVs(game, 0)...)
	kvs = append(kvs, receipt.KV...)
	return &types.Receipt{Ty: types.ExecOk, KV: kvs, Logs: logs}, nil
}

// GameJoin fills the opponent slot of an open game with the sender, escrowing
// a matching wager.
func (action *Action) GameJoin(join *types.RPSJoin) (*types.Receipt, error) {
	game, err := action.readGame(join.GameId)
	if err != nil {
		glog.Error("join game", "addr", action.fromaddr, "gameId", join.GameId, "err", err)
		return nil, err
	}
	if game.Status != types.StatusOpen {
		glog.Error("join game", "addr", action.fromaddr, "gameId", join.GameId, "status", game.Status, "err", types.ErrGameNotOpen)
		return nil, types.ErrGameNotOpen
	}
	// the per-side ready and reveal slots assume two distinct players; a
	// self-game could never reach Ended and would strand its escrow
	if action.fromaddr == game.Creator {
		return nil, types.ErrJoinSelfGame
	}
	receipt, err := action.coinsAccount.Transfer(action.fromaddr, game.GameId, int64(game.Wager))
	if err != nil {
		glog.Error("join game", "addr", action.fromaddr, "wager", game.Wager, "err", err)
		return nil, err
	}
	prevStatus := game.Status
	game.Opponent = action.fromaddr
	game.Status = types.StatusCommitted
	game.JoinTime = action.blocktime
	game.PrevIndex = game.Index
	game.Index = action.getIndex()
	logs := []*types.ReceiptLog{action.receiptLog(types.TyLogRPSJoin, game, prevStatus)}
	logs = append(logs, receipt.Logs...)
	kvs := action.saveGame(game)
	kvs = append(kvs, action.indexKVs(game, prevStatus)...)
	kvs = append(kvs, receipt.KV...)
	return &types.Receipt{Ty: types.ExecOk, KV: kvs, Logs: logs}, nil
}

// GameSelectMove stores the sender's move commitment. The commitment can be
// replaced until the game ends; replacing it withdraws any earlier ready.
func (action *Action) GameSelectMove(sel *types.RPSSelectMove) (*types.Receipt, error) {
	game, err := action.readGame(sel.GameId)
	if err != nil {
		return nil, err
	}
	if !game.IsParticipant(action.fromaddr) {
		glog.Error("select move", "addr", action.fromaddr, "gameId", sel.GameId, "err", types.ErrUnauthorized)
		return nil, types.ErrUnauthorized
	}
	if game.Status >= types.StatusEnded {
		return nil, types.ErrGameAlreadyEnded
	}
	if !types.CheckMove(sel.Move) {
		return nil, types.ErrInvalidMove
	}
	commit := commitHash(sel.Move, sel.Salt)
	if action.fromaddr == game.Creator {
		game.CreatorCommit = commit
		game.CreatorReady = false
	} else {
		game.OpponentCommit = commit
		game.OpponentReady = false
	}
	logs := []*types.ReceiptLog{action.receiptLog(types.TyLogRPSSelectMove, game, game.Status)}
	kvs := action.saveGame(game)
	return &types.Receipt{Ty: types.ExecOk, KV: kvs, Logs: logs}, nil
}

// GameReadyUp irrevocably accepts the sender's committed move. When both
// sides are ready the game ends and reveals may begin.
func (action *Action) GameReadyUp(ready *types.RPSReadyUp) (*types.Receipt, error) {
	game, err := action.readGame(ready.GameId)
	if err != nil {
		return nil, err
	}
	if !game.IsParticipant(action.fromaddr) {
		glog.Error("ready up", "addr", action.fromaddr, "gameId", ready.GameId, "err", types.ErrUnauthorized)
		return nil, types.ErrUnauthorized
	}
	if game.Status >= types.StatusEnded {
		return nil, types.ErrGameAlreadyEnded
	}
	if game.Status == types.StatusOpen {
		return nil, types.ErrOpponentNotJoined
	}
	if !game.Committed(action.fromaddr) {
		glog.Error("ready up", "addr", action.fromaddr, "gameId", ready.GameId, "err", types.ErrMoveNotSelected)
		return nil, types.ErrMoveNotSelected
	}
	prevStatus := game.Status
	if action.fromaddr == game.Creator {
		game.CreatorReady = true
	} else {
		game.OpponentReady = true
	}
	if game.CreatorReady && game.OpponentReady {
		game.Status = types.StatusEnded
		game.EndTime = action.blocktime
		game.PrevIndex = game.Index
		game.Index = action.getIndex()
	}
	logs := []*types.ReceiptLog{action.receiptLog(types.TyLogRPSReadyUp, game, prevStatus)}
	kvs := action.saveGame(game)
	if game.Status != prevStatus {
		kvs = append(kvs, action.indexKVs(game, prevStatus)...)
	}
	return &types.Receipt{Ty: types.ExecOk, KV: kvs, Logs: logs}, nil
}

// GameReveal discloses the sender's move and salt and checks them against
// the stored commitment.
func (action *Action) GameReveal(rev *types.RPSReveal) (*types.Receipt, error) {
	game, err := action.readGame(rev.GameId)
	if err != nil {
		return nil, err
	}
	if !game.IsParticipant(action.fromaddr) {
		return nil, types.ErrUnauthorized
	}
	if game.Status == types.StatusSettled {
		return nil, types.ErrGameAlreadySettled
	}
	if game.Status != types.StatusEnded {
		return nil, types.ErrGameNotEnded
	}
	if !types.CheckMove(rev.Move) {
		return nil, types.ErrInvalidMove
	}
	var commit []byte
	revealed := types.MoveUnknown
	if action.fromaddr == game.Creator {
		commit = game.CreatorCommit
		revealed = game.CreatorMove
	} else {
		commit = game.OpponentCommit
		revealed = game.OpponentMove
	}
	if revealed != types.MoveUnknown {
		return nil, types.ErrAlreadyRevealed
	}
	if !bytes.Equal(commit, commitHash(rev.Move, rev.Salt)) {
		glog.Error("reveal", "addr", action.fromaddr, "gameId", rev.GameId, "err", types.ErrRevealMismatch)
		return nil, types.ErrRevealMismatch
	}
	if action.fromaddr == game.Creator {
		game.CreatorMove = rev.Move
		game.CreatorSalt = rev.Salt
	} else {
		game.OpponentMove = rev.Move
		game.OpponentSalt = rev.Salt
	}
	logs := []*types.ReceiptLog{action.receiptLog(types.TyLogRPSReveal, game, game.Status)}
	kvs := action.saveGame(game)
	return &types.Receipt{Ty: types.ExecOk, KV: kvs, Logs: logs}, nil
}

// GameSettle resolves an ended game and pays the escrow out. With both moves
// revealed the usual rules apply; a lone revealer may claim the whole pot
// once the reveal timeout has passed.
func (action *Action) GameSettle(settle *types.RPSSettle) (*types.Receipt, error) {
	game, err := action.readGame(settle.GameId)
	if err != nil {
		return nil, err
	}
	if !game.IsParticipant(action.fromaddr) {
		return nil, types.ErrUnauthorized
	}
	if game.Status == types.StatusSettled {
		return nil, types.ErrGameAlreadySettled
	}
	if game.Status != types.StatusEnded {
		return nil, types.ErrGameNotEnded
	}
	wager := int64(game.Wager)
	creatorRevealed := game.CreatorMove != types.MoveUnknown
	opponentRevealed := game.OpponentMove != types.MoveUnknown
	var payouts []*types.Receipt
	switch {
	case creatorRevealed && opponentRevealed:
		game.Result = decideResult(game.CreatorMove, game.OpponentMove)
		switch game.Result {
		case types.ResultDraw:
			r1, err := action.coinsAccount.Transfer(game.GameId, game.Creator, wager)
			if err != nil {
				return nil, err
			}
			r2, err := action.coinsAccount.Transfer(game.GameId, game.Opponent, wager)
			if err != nil {
				return nil, err
			}
			payouts = append(payouts, r1, r2)
		case types.ResultCreatorWins:
			r, err := action.coinsAccount.Transfer(game.GameId, game.Creator, 2*wager)
			if err != nil {
				return nil, err
			}
			payouts = append(payouts, r)
		case types.ResultOpponentWins:
			r, err := action.coinsAccount.Transfer(game.GameId, game.Opponent, 2*wager)
			if err != nil {
				return nil, err
			}
			payouts = append(payouts, r)
		}
	case creatorRevealed || opponentRevealed:
		if action.blocktime < game.EndTime+action.cfg.RevealTimeout {
			return nil, types.ErrGameNotResolved
		}
		winner := game.Creator
		if opponentRevealed {
			winner = game.Opponent
		}
		game.Result = types.ResultTimeout
		r, err := action.coinsAccount.Transfer(game.GameId, winner, 2*wager)
		if err != nil {
			return nil, err
		}
		payouts = append(payouts, r)
	default:
		return nil, types.ErrGameNotResolved
	}
	prevStatus := game.Status
	game.Status = types.StatusSettled
	game.SettleTime = action.blocktime
	game.PrevIndex = game.Index
	game.Index = action.getIndex()
	logs := []*types.ReceiptLog{action.receiptLog(types.TyLogRPSSettle, game, prevStatus)}
	kvs := action.saveGame(game)
	kvs = append(kvs, action.indexKVs(game, prevStatus)...)
	for _, r := range payouts {
		logs = append(logs, r.Logs...)
		kvs = append(kvs, r.KV...)
	}
	return &types.Receipt{Ty: types.ExecOk, KV: kvs, Logs: logs}, nil
}

// decideResult applies rock beats scissors, scissors beats paper, paper
// beats rock.
func decideResult(creator, opponent int32) int32 {
	if creator == opponent {
		return types.ResultDraw
	}
	if opponent == (creator+1)%3 {
		return types.ResultOpponentWins
	}
	return types.ResultCreatorWins
}
