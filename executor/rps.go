package executor

import (
	"bytes"

	log "github.com/inconshreveable/log15"
	"github.com/mrtoaf/rugpaperscissors/account"
	"github.com/mrtoaf/rugpaperscissors/common/address"
	dbm "github.com/mrtoaf/rugpaperscissors/common/db"
	"github.com/mrtoaf/rugpaperscissors/types"
)

var glog = log.New("module", "execs."+types.RPSX)

// RPS executes rock-paper-scissors actions against the state db it is given.
// One instance is bound to one execution environment (height and block time);
// the ledger creates a fresh one per transaction over a write cache, so a
// failed action never touches persistent state.
type RPS struct {
	statedb      dbm.KV
	coinsAccount *account.DB
	height       int64
	blocktime    int64
	execaddr     string
	cfg          *types.RPSConfig
}

// New creates an executor over statedb for the given environment.
func New(statedb dbm.KV, height, blocktime int64, cfg *types.RPSConfig) *RPS {
	if cfg == nil {
		cfg = &types.RPSConfig{RevealTimeout: types.DefaultRevealTimeout}
	}
	return &RPS{
		statedb:      statedb,
		coinsAccount: account.NewCoinsAccount(statedb),
		height:       height,
		blocktime:    blocktime,
		execaddr:     address.ExecAddress(types.RPSX),
		cfg:          cfg,
	}
}

// GetCoinsAccount exposes the coins ledger bound to this executor's state db.
func (r *RPS) GetCoinsAccount() *account.DB {
	return r.coinsAccount
}

// ExecAddress is the program identity seeding every game address.
func (r *RPS) ExecAddress() string {
	return r.execaddr
}

// CheckTx validates a transaction without executing it.
func (r *RPS) CheckTx(tx *types.Transaction, index int) error {
	if !bytes.Equal(tx.Execer, []byte(types.RPSX)) {
		return types.ErrExecerParse
	}
	var action types.RPSAction
	if err := types.Decode(tx.Payload, &action); err != nil {
		return err
	}
	switch action.Ty {
	case types.RPSActionCreate:
		if action.Create == nil {
			return types.ErrActionNotSupport
		}
	case types.RPSActionJoin:
		if action.Join == nil {
			return types.ErrActionNotSupport
		}
	case types.RPSActionSelectMove:
		if action.SelectMove == nil {
			return types.ErrActionNotSupport
		}
		if !types.CheckMove(action.SelectMove.Move) {
			return types.ErrInvalidMove
		}
	case types.RPSActionReadyUp:
		if action.ReadyUp == nil {
			return types.ErrActionNotSupport
		}
	case types.RPSActionReveal:
		if action.Reveal == nil {
			return types.ErrActionNotSupport
		}
		if !types.CheckMove(action.Reveal.Move) {
			return types.ErrInvalidMove
		}
	case types.RPSActionSettle:
		if action.Settle == nil {
			return types.ErrActionNotSupport
		}
	default:
		return types.ErrActionNotSupport
	}
	return nil
}

// Exec decodes the action payload and dispatches to the matching operation.
func (r *RPS) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	if err := r.CheckTx(tx, index); err != nil {
		return nil, err
	}
	var action types.RPSAction
	if err := types.Decode(tx.Payload, &action); err != nil {
		return nil, err
	}
	glog.Debug("exec rps tx", "ty", action.Ty, "from", tx.From())
	actiondb := NewAction(r, tx, index)
	switch action.Ty {
	case types.RPSActionCreate:
		return actiondb.GameCreate(action.Create)
	case types.RPSActionJoin:
		return actiondb.GameJoin(action.Join)
	case types.RPSActionSelectMove:
		return actiondb.GameSelectMove(action.SelectMove)
	case types.RPSActionReadyUp:
		return actiondb.GameReadyUp(action.ReadyUp)
	case types.RPSActionReveal:
		return actiondb.GameReveal(action.Reveal)
	case types.RPSActionSettle:
		return actiondb.GameSettle(action.Settle)
	}
	return nil, types.ErrActionNotSupport
}
