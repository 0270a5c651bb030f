package executor

import (
	"github.com/mrtoaf/rugpaperscissors/common/address"
	dbm "github.com/mrtoaf/rugpaperscissors/common/db"
	"github.com/mrtoaf/rugpaperscissors/types"
)

// Query serves read-only lookups over committed state. It runs directly on
// the backing store, never on a transaction's write cache.
type Query struct {
	db       dbm.KVDB
	execaddr string
}

// NewQuery creates a query handle over the committed state db.
func NewQuery(db dbm.KVDB) *Query {
	return &Query{db: db, execaddr: address.ExecAddress(types.RPSX)}
}

// GetGame loads one game by its derived address. Like the mutating path it
// re-validates the address from the stored bump, so a tampered store can
// never hand out a game under the wrong address.
func (q *Query) GetGame(id string) (*types.Game, error) {
	value, err := q.db.Get(Key(id))
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
	if !address.ValidateGame(types.GameSeed, game.Creator, game.Wager, q.execaddr, game.Bump, game.GameId) {
		return nil, types.ErrInvalidGameAccount
	}
	return &game, nil
}

// ListGames pages through games of one status, optionally narrowed to one
// participant address. lastIndex is the Index of the last game of the
// previous page, or 0 to start from the edge given by direction.
func (q *Query) ListGames(status int32, addr string, lastIndex int64, count, direction int32) ([]*types.Game, error) {
	if count <= 0 {
		count = types.DefaultListCount
	}
	if count > types.MaxListCount {
		count = types.MaxListCount
	}
	var prefix, key []byte
	if addr != "" {
		prefix = calcAddrPrefix(addr, status)
		if lastIndex > 0 {
			key = calcAddrKey(addr, status, lastIndex)
		}
	} else {
		prefix = calcStatusPrefix(status)
		if lastIndex > 0 {
			key = calcStatusKey(status, lastIndex)
		}
	}
	values, err := q.db.List(prefix, key, count, direction)
	if err != nil {
		if err == dbm.ErrNotFound {
			return nil, types.ErrNotFound
		}
		return nil, err
	}
	if len(values) == 0 {
		return nil, types.ErrNotFound
	}
	games := make([]*types.Game, 0, len(values))
	for _, value := range values {
		var record types.GameRecord
		if err := types.Decode(value, &record); err != nil {
			return nil, err
		}
		game, err := q.GetGame(record.GameId)
		if err != nil {
			return nil, err
		}
		games = append(games, game)
	}
	return games, nil
}
