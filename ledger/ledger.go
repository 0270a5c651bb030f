package ledger

import (
	"encoding/binary"
	"sync"
	"time"

	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"

	"github.com/mrtoaf/rugpaperscissors/account"
	"github.com/mrtoaf/rugpaperscissors/common"
	dbm "github.com/mrtoaf/rugpaperscissors/common/db"
	"github.com/mrtoaf/rugpaperscissors/executor"
	"github.com/mrtoaf/rugpaperscissors/types"
)

var llog = log.New("module", "ledger")

var heightKey = []byte("mavl-ledger-height")

func calcTxKey(hash []byte) []byte {
	return append([]byte("mavl-ledger-tx-"), []byte(common.ToHex(hash))...)
}

// Ledger is the single writer over the state db. Every transaction is
// verified, executed over a write cache and committed in one batch; a failed
// transaction leaves no trace in the store.
type Ledger struct {
	mu     sync.Mutex
	db     dbm.DB
	cfg    *types.Config
	height int64
}

// New opens (or creates) the ledger described by cfg. A fresh store is
// seeded with the genesis balances before the first transaction.
func New(cfg *types.Config) (*Ledger, error) {
	cfg.FillDefaults()
	db := dbm.NewDB("ledger", cfg.Ledger.Driver, cfg.Ledger.DbPath, cfg.Ledger.DbCache)
	l := &Ledger{db: db, cfg: cfg}
	value, err := db.Get(heightKey)
	if err == dbm.ErrNotFound {
		if err := l.genesisInit(); err != nil {
			db.Close()
			return nil, err
		}
		llog.Info("ledger created", "title", cfg.Title, "genesis", len(cfg.Genesis))
		return l, nil
	}
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "load ledger height")
	}
	l.height = int64(binary.BigEndian.Uint64(value))
	llog.Info("ledger opened", "title", cfg.Title, "height", l.height)
	return l, nil
}

func (l *Ledger) genesisInit() error {
	cache := dbm.NewTxCache(l.db)
	acc := account.NewCoinsAccount(cache)
	if err := acc.GenesisInit(l.cfg.Genesis); err != nil {
		return errors.Wrap(err, "genesis init")
	}
	batch := l.db.NewBatch(true)
	cache.Commit(batch)
	batch.Set(heightKey, encodeHeight(0))
	return batch.Write()
}

func encodeHeight(height int64) []byte {
	value := make([]byte, 8)
	binary.BigEndian.PutUint64(value, uint64(height))
	return value
}

// Apply verifies, executes and commits one transaction. On any error the
// state db is left exactly as it was.
func (l *Ledger) Apply(tx *types.Transaction) (*types.Receipt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if tx.Signature == nil || !tx.CheckSign() {
		llog.Error("apply tx", "err", types.ErrSign)
		return nil, types.ErrSign
	}
	hash := tx.Hash()
	if _, err := l.db.Get(calcTxKey(hash)); err == nil {
		return nil, types.ErrDupTx
	}
	cache := dbm.NewTxCache(l.db)
	exec := executor.New(cache, l.height+1, time.Now().Unix(), l.cfg.RPS)
	receipt, err := exec.Exec(tx, 0)
	if err != nil {
		llog.Debug("apply tx", "hash", common.ToHex(hash), "err", err)
		return nil, err
	}
	cache.Set(calcTxKey(hash), types.Encode(receipt))
	batch := l.db.NewBatch(true)
	cache.Commit(batch)
	batch.Set(heightKey, encodeHeight(l.height+1))
	if err := batch.Write(); err != nil {
		return nil, errors.Wrap(err, "commit tx")
	}
	l.height++
	llog.Info("apply tx", "hash", common.ToHex(hash), "height", l.height, "from", tx.From())
	return receipt, nil
}

// Height is the number of committed transactions.
func (l *Ledger) Height() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.height
}

// GetGame loads one game from committed state.
func (l *Ledger) GetGame(id string) (*types.Game, error) {
	return executor.NewQuery(l.db).GetGame(id)
}

// ListGames pages through committed games by status and optional address.
func (l *Ledger) ListGames(status int32, addr string, lastIndex int64, count, direction int32) ([]*types.Game, error) {
	return executor.NewQuery(l.db).ListGames(status, addr, lastIndex, count, direction)
}

// GetBalance reads the committed coins balance of an address.
func (l *Ledger) GetBalance(addr string) int64 {
	return account.NewCoinsAccount(l.db).LoadAccount(addr).Balance
}

// GetReceipt loads the receipt of a committed transaction by its hash.
func (l *Ledger) GetReceipt(hash []byte) (*types.Receipt, error) {
	value, err := l.db.Get(calcTxKey(hash))
	if err != nil {
		if err == dbm.ErrNotFound {
			return nil, types.ErrNotFound
		}
		return nil, err
	}
	var receipt types.Receipt
	if err := types.Decode(value, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

// Close flushes and closes the backing store.
func (l *Ledger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.db.Close()
}
