package executor

import (
	"crypto/sha256"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrtoaf/rugpaperscissors/account"
	"github.com/mrtoaf/rugpaperscissors/common/address"
	"github.com/mrtoaf/rugpaperscissors/common/crypto"
	dbm "github.com/mrtoaf/rugpaperscissors/common/db"
	"github.com/mrtoaf/rugpaperscissors/types"
)

type testEnv struct {
	db        dbm.DB
	cfg       *types.RPSConfig
	height    int64
	blocktime int64

	privA *crypto.PrivKey
	privB *crypto.PrivKey
	privC *crypto.PrivKey
	addrA string
	addrB string
	addrC string
}

func newTestEnv(t *testing.T) *testEnv {
	env := &testEnv{
		db:        dbm.NewDB("test", "memdb", "", 0),
		cfg:       &types.RPSConfig{RevealTimeout: types.DefaultRevealTimeout},
		height:    1,
		blocktime: 1700000000,
	}
	var err error
	env.privA, err = crypto.GenKey()
	require.NoError(t, err)
	env.privB, err = crypto.GenKey()
	require.NoError(t, err)
	env.privC, err = crypto.GenKey()
	require.NoError(t, err)
	env.addrA = address.PubKeyToAddress(crypto.PubKeyBytes(env.privA)).String()
	env.addrB = address.PubKeyToAddress(crypto.PubKeyBytes(env.privB)).String()
	env.addrC = address.PubKeyToAddress(crypto.PubKeyBytes(env.privC)).String()
	acc := account.NewCoinsAccount(env.db)
	for _, addr := range []string{env.addrA, env.addrB, env.addrC} {
		_, err := acc.Deposit(addr, 1000*types.Coin)
		require.NoError(t, err)
	}
	return env
}

func signedTx(priv *crypto.PrivKey, action *types.RPSAction) *types.Transaction {
	tx := &types.Transaction{
		Execer:  []byte(types.RPSX),
		Payload: types.Encode(action),
		Nonce:   rand.Int63(),
	}
	tx.Sign(priv)
	return tx
}

// apply runs one action the way the ledger does: over a write cache that is
// committed only on success.
func (env *testEnv) apply(t *testing.T, priv *crypto.PrivKey, action *types.RPSAction) (*types.Receipt, error) {
	cache := dbm.NewTxCache(env.db)
	exec := New(cache, env.height, env.blocktime, env.cfg)
	receipt, err := exec.Exec(signedTx(priv, action), 0)
	if err != nil {
		return nil, err
	}
	batch := env.db.NewBatch(false)
	cache.Commit(batch)
	require.NoError(t, batch.Write())
	env.height++
	return receipt, nil
}

func (env *testEnv) create(t *testing.T, priv *crypto.PrivKey, wager uint64) string {
	receipt, err := env.apply(t, priv, &types.RPSAction{
		Ty:     types.RPSActionCreate,
		Create: &types.RPSCreate{Wager: wager},
	})
	require.NoError(t, err)
	require.NotEmpty(t, receipt.Logs)
	var log types.ReceiptRPSGame
	require.NoError(t, types.Decode(receipt.Logs[0].Log, &log))
	return log.GameId
}

func (env *testEnv) join(t *testing.T, priv *crypto.PrivKey, gameID string) error {
	_, err := env.apply(t, priv, &types.RPSAction{
		Ty:   types.RPSActionJoin,
		Join: &types.RPSJoin{GameId: gameID},
	})
	return err
}

func (env *testEnv) selectMove(t *testing.T, priv *crypto.PrivKey, gameID string, move int32, salt string) error {
	_, err := env.apply(t, priv, &types.RPSAction{
		Ty:         types.RPSActionSelectMove,
		SelectMove: &types.RPSSelectMove{GameId: gameID, Move: move, Salt: salt},
	})
	return err
}

func (env *testEnv) readyUp(t *testing.T, priv *crypto.PrivKey, gameID string) error {
	_, err := env.apply(t, priv, &types.RPSAction{
		Ty:      types.RPSActionReadyUp,
		ReadyUp: &types.RPSReadyUp{GameId: gameID},
	})
	return err
}

func (env *testEnv) reveal(t *testing.T, priv *crypto.PrivKey, gameID string, move int32, salt string) error {
	_, err := env.apply(t, priv, &types.RPSAction{
		Ty:     types.RPSActionReveal,
		Reveal: &types.RPSReveal{GameId: gameID, Move: move, Salt: salt},
	})
	return err
}

func (env *testEnv) settle(t *testing.T, priv *crypto.PrivKey, gameID string) error {
	_, err := env.apply(t, priv, &types.RPSAction{
		Ty:     types.RPSActionSettle,
		Settle: &types.RPSSettle{GameId: gameID},
	})
	return err
}

func (env *testEnv) game(t *testing.T, gameID string) *types.Game {
	game, err := NewQuery(env.db).GetGame(gameID)
	require.NoError(t, err)
	return game
}

func (env *testEnv) balance(addr string) int64 {
	return account.NewCoinsAccount(env.db).LoadAccount(addr).Balance
}

// commitPhase drives a fresh game to the point where both sides committed
// but nobody is ready yet.
func (env *testEnv) commitPhase(t *testing.T, wager uint64, moveA, moveB int32, saltA, saltB string) string {
	gameID := env.create(t, env.privA, wager)
	require.NoError(t, env.join(t, env.privB, gameID))
	require.NoError(t, env.selectMove(t, env.privA, gameID, moveA, saltA))
	require.NoError(t, env.selectMove(t, env.privB, gameID, moveB, saltB))
	return gameID
}

// endedGame drives a fresh game all the way to StatusEnded.
func (env *testEnv) endedGame(t *testing.T, wager uint64, moveA, moveB int32, saltA, saltB string) string {
	gameID := env.commitPhase(t, wager, moveA, moveB, saltA, saltB)
	require.NoError(t, env.readyUp(t, env.privA, gameID))
	require.NoError(t, env.readyUp(t, env.privB, gameID))
	return gameID
}

func TestCreateGame(t *testing.T) {
	env := newTestEnv(t)
	wager := uint64(100000000)
	gameID := env.create(t, env.privA, wager)

	game := env.game(t, gameID)
	assert.Equal(t, types.StatusOpen, game.Status)
	assert.Equal(t, env.addrA, game.Creator)
	assert.Empty(t, game.Opponent)
	assert.Equal(t, wager, game.Wager)
	assert.Equal(t, make([]byte, types.CommitSize), game.CreatorCommit)
	assert.Equal(t, make([]byte, types.CommitSize), game.OpponentCommit)
	assert.False(t, game.CreatorReady)
	assert.False(t, game.OpponentReady)
	assert.Equal(t, types.MoveUnknown, game.CreatorMove)
	assert.Equal(t, types.MoveUnknown, game.OpponentMove)

	// the wager sits in the game account, and the account address checks
	// out against the stored derivation nonce
	assert.Equal(t, int64(wager), env.balance(gameID))
	assert.Equal(t, 1000*types.Coin-int64(wager), env.balance(env.addrA))
	assert.True(t, address.ValidateGame(types.GameSeed, game.Creator, game.Wager,
		address.ExecAddress(types.RPSX), game.Bump, game.GameId))
}

func TestCreateGameZeroWager(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.apply(t, env.privA, &types.RPSAction{
		Ty:     types.RPSActionCreate,
		Create: &types.RPSCreate{Wager: 0},
	})
	assert.Equal(t, types.ErrInvalidWager, err)
}

func TestCreateGameDuplicate(t *testing.T) {
	env := newTestEnv(t)
	env.create(t, env.privA, 100000000)
	_, err := env.apply(t, env.privA, &types.RPSAction{
		Ty:     types.RPSActionCreate,
		Create: &types.RPSCreate{Wager: 100000000},
	})
	assert.Equal(t, types.ErrDuplicateGame, err)

	// same wager from another creator derives a different address
	other := env.create(t, env.privB, 100000000)
	assert.NotEmpty(t, other)
}

func TestCreateGameWagerSettleCap(t *testing.T) {
	env := newTestEnv(t)
	// a decisive settle moves 2*wager, so wagers from half the ledger cap
	// upward could never pay out and are rejected at create
	_, err := env.apply(t, env.privA, &types.RPSAction{
		Ty:     types.RPSActionCreate,
		Create: &types.RPSCreate{Wager: uint64(types.MaxCoin / 2)},
	})
	assert.Equal(t, types.ErrAmount, err)
	_, err = env.apply(t, env.privA, &types.RPSAction{
		Ty:     types.RPSActionCreate,
		Create: &types.RPSCreate{Wager: uint64(6e16)},
	})
	assert.Equal(t, types.ErrAmount, err)

	// just under the doubled cap the wager passes the amount gate and only
	// the balance check stops it
	_, err = env.apply(t, env.privA, &types.RPSAction{
		Ty:     types.RPSActionCreate,
		Create: &types.RPSCreate{Wager: uint64(types.MaxCoin/2 - 1)},
	})
	assert.Equal(t, types.ErrNoBalance, err)
}

func TestCreateGameNoBalance(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.apply(t, env.privA, &types.RPSAction{
		Ty:     types.RPSActionCreate,
		Create: &types.RPSCreate{Wager: uint64(2000 * types.Coin)},
	})
	assert.Equal(t, types.ErrNoBalance, err)
}

func TestJoinGame(t *testing.T) {
	env := newTestEnv(t)
	wager := uint64(100000000)
	gameID := env.create(t, env.privA, wager)
	require.NoError(t, env.join(t, env.privB, gameID))

	game := env.game(t, gameID)
	assert.Equal(t, types.StatusCommitted, game.Status)
	assert.Equal(t, env.addrB, game.Opponent)
	assert.Equal(t, int64(2*wager), env.balance(gameID))
	assert.Equal(t, 1000*types.Coin-int64(wager), env.balance(env.addrB))
}

func TestJoinGameNotOpen(t *testing.T) {
	env := newTestEnv(t)
	gameID := env.create(t, env.privA, 100000000)
	require.NoError(t, env.join(t, env.privB, gameID))

	err := env.join(t, env.privC, gameID)
	assert.Equal(t, types.ErrGameNotOpen, err)
	// the failed join must not touch the escrow
	assert.Equal(t, int64(200000000), env.balance(gameID))
	assert.Equal(t, 1000*types.Coin, env.balance(env.addrC))
}

func TestJoinOwnGame(t *testing.T) {
	env := newTestEnv(t)
	wager := uint64(100000000)
	gameID := env.create(t, env.privA, wager)

	// a self-game has no second ready or reveal slot and could never end,
	// stranding the escrow with no timeout path
	err := env.join(t, env.privA, gameID)
	assert.Equal(t, types.ErrJoinSelfGame, err)

	game := env.game(t, gameID)
	assert.Equal(t, types.StatusOpen, game.Status)
	assert.Empty(t, game.Opponent)
	assert.Equal(t, int64(wager), env.balance(gameID))
	assert.Equal(t, 1000*types.Coin-int64(wager), env.balance(env.addrA))
}

func TestJoinGameNotFound(t *testing.T) {
	env := newTestEnv(t)
	err := env.join(t, env.privB, "1missingGameAddress")
	assert.Equal(t, types.ErrNotFound, err)
}

func TestSelectMoveCommitment(t *testing.T) {
	env := newTestEnv(t)
	gameID := env.create(t, env.privA, 100000000)
	require.NoError(t, env.join(t, env.privB, gameID))
	require.NoError(t, env.selectMove(t, env.privA, gameID, types.MovePaper, "mysecret"))

	// the stored commitment is exactly SHA-256(move byte || salt)
	want := sha256.Sum256(append([]byte{byte(types.MovePaper)}, []byte("mysecret")...))
	game := env.game(t, gameID)
	assert.Equal(t, want[:], game.CreatorCommit)
	assert.Equal(t, make([]byte, types.CommitSize), game.OpponentCommit)
	// the plaintext move never appears in state
	assert.Equal(t, types.MoveUnknown, game.CreatorMove)
}

func TestSelectMoveUnauthorized(t *testing.T) {
	env := newTestEnv(t)
	gameID := env.create(t, env.privA, 100000000)
	require.NoError(t, env.join(t, env.privB, gameID))

	err := env.selectMove(t, env.privC, gameID, types.MoveRock, "salt")
	assert.Equal(t, types.ErrUnauthorized, err)
}

func TestSelectMoveOverwrite(t *testing.T) {
	env := newTestEnv(t)
	gameID := env.create(t, env.privA, 100000000)
	require.NoError(t, env.join(t, env.privB, gameID))
	require.NoError(t, env.selectMove(t, env.privA, gameID, types.MoveRock, "s1"))
	require.NoError(t, env.readyUp(t, env.privA, gameID))
	assert.True(t, env.game(t, gameID).CreatorReady)

	// re-committing replaces the hash and withdraws the earlier ready
	require.NoError(t, env.selectMove(t, env.privA, gameID, types.MoveScissors, "s2"))
	game := env.game(t, gameID)
	want := sha256.Sum256(append([]byte{byte(types.MoveScissors)}, []byte("s2")...))
	assert.Equal(t, want[:], game.CreatorCommit)
	assert.False(t, game.CreatorReady)
	assert.Equal(t, types.StatusCommitted, game.Status)
}

func TestReadyUpBeforeJoin(t *testing.T) {
	env := newTestEnv(t)
	gameID := env.create(t, env.privA, 100000000)
	err := env.readyUp(t, env.privA, gameID)
	assert.Equal(t, types.ErrOpponentNotJoined, err)
}

func TestReadyUpWithoutMove(t *testing.T) {
	env := newTestEnv(t)
	gameID := env.create(t, env.privA, 100000000)
	require.NoError(t, env.join(t, env.privB, gameID))

	err := env.readyUp(t, env.privB, gameID)
	assert.Equal(t, types.ErrMoveNotSelected, err)
}

func TestReadyUpEndsGame(t *testing.T) {
	env := newTestEnv(t)
	gameID := env.commitPhase(t, 100000000, types.MoveRock, types.MovePaper, "sa", "sb")

	require.NoError(t, env.readyUp(t, env.privA, gameID))
	game := env.game(t, gameID)
	assert.True(t, game.CreatorReady)
	assert.Equal(t, types.StatusCommitted, game.Status)
	assert.Zero(t, game.EndTime)

	require.NoError(t, env.readyUp(t, env.privB, gameID))
	game = env.game(t, gameID)
	assert.True(t, game.OpponentReady)
	assert.Equal(t, types.StatusEnded, game.Status)
	assert.Equal(t, env.blocktime, game.EndTime)
}

func TestActionsAfterEnd(t *testing.T) {
	env := newTestEnv(t)
	gameID := env.endedGame(t, 100000000, types.MoveRock, types.MovePaper, "sa", "sb")

	assert.Equal(t, types.ErrGameAlreadyEnded, env.readyUp(t, env.privA, gameID))
	assert.Equal(t, types.ErrGameAlreadyEnded, env.selectMove(t, env.privA, gameID, types.MoveRock, "sa"))
	assert.Equal(t, types.ErrGameNotOpen, env.join(t, env.privC, gameID))
}

func TestRevealAndSettleWinner(t *testing.T) {
	env := newTestEnv(t)
	wager := uint64(100000000)
	gameID := env.endedGame(t, wager, types.MovePaper, types.MoveRock, "sa", "sb")

	require.NoError(t, env.reveal(t, env.privA, gameID, types.MovePaper, "sa"))
	require.NoError(t, env.reveal(t, env.privB, gameID, types.MoveRock, "sb"))
	require.NoError(t, env.settle(t, env.privA, gameID))

	game := env.game(t, gameID)
	assert.Equal(t, types.StatusSettled, game.Status)
	assert.Equal(t, types.ResultCreatorWins, game.Result)
	assert.Equal(t, types.MovePaper, game.CreatorMove)
	assert.Equal(t, types.MoveRock, game.OpponentMove)

	// winner takes the whole pot
	assert.Zero(t, env.balance(gameID))
	assert.Equal(t, 1000*types.Coin+int64(wager), env.balance(env.addrA))
	assert.Equal(t, 1000*types.Coin-int64(wager), env.balance(env.addrB))
}

func TestSettleOpponentWins(t *testing.T) {
	env := newTestEnv(t)
	wager := uint64(100000000)
	gameID := env.endedGame(t, wager, types.MoveScissors, types.MoveRock, "sa", "sb")

	require.NoError(t, env.reveal(t, env.privA, gameID, types.MoveScissors, "sa"))
	require.NoError(t, env.reveal(t, env.privB, gameID, types.MoveRock, "sb"))
	require.NoError(t, env.settle(t, env.privB, gameID))

	game := env.game(t, gameID)
	assert.Equal(t, types.ResultOpponentWins, game.Result)
	assert.Equal(t, 1000*types.Coin+int64(wager), env.balance(env.addrB))
}

func TestSettleDraw(t *testing.T) {
	env := newTestEnv(t)
	wager := uint64(100000000)
	gameID := env.endedGame(t, wager, types.MoveRock, types.MoveRock, "sa", "sb")

	require.NoError(t, env.reveal(t, env.privA, gameID, types.MoveRock, "sa"))
	require.NoError(t, env.reveal(t, env.privB, gameID, types.MoveRock, "sb"))
	require.NoError(t, env.settle(t, env.privA, gameID))

	game := env.game(t, gameID)
	assert.Equal(t, types.ResultDraw, game.Result)
	assert.Zero(t, env.balance(gameID))
	assert.Equal(t, 1000*types.Coin, env.balance(env.addrA))
	assert.Equal(t, 1000*types.Coin, env.balance(env.addrB))
}

func TestRevealMismatch(t *testing.T) {
	env := newTestEnv(t)
	gameID := env.endedGame(t, 100000000, types.MoveRock, types.MovePaper, "sa", "sb")

	assert.Equal(t, types.ErrRevealMismatch, env.reveal(t, env.privA, gameID, types.MoveRock, "wrong"))
	assert.Equal(t, types.ErrRevealMismatch, env.reveal(t, env.privA, gameID, types.MovePaper, "sa"))
	// the failed reveals leave nothing behind
	assert.Equal(t, types.MoveUnknown, env.game(t, gameID).CreatorMove)
}

func TestRevealTwice(t *testing.T) {
	env := newTestEnv(t)
	gameID := env.endedGame(t, 100000000, types.MoveRock, types.MovePaper, "sa", "sb")

	require.NoError(t, env.reveal(t, env.privA, gameID, types.MoveRock, "sa"))
	assert.Equal(t, types.ErrAlreadyRevealed, env.reveal(t, env.privA, gameID, types.MoveRock, "sa"))
}

func TestRevealBeforeEnd(t *testing.T) {
	env := newTestEnv(t)
	gameID := env.commitPhase(t, 100000000, types.MoveRock, types.MovePaper, "sa", "sb")
	assert.Equal(t, types.ErrGameNotEnded, env.reveal(t, env.privA, gameID, types.MoveRock, "sa"))
}

func TestSettleNotResolved(t *testing.T) {
	env := newTestEnv(t)
	gameID := env.endedGame(t, 100000000, types.MoveRock, types.MovePaper, "sa", "sb")

	// nobody revealed
	assert.Equal(t, types.ErrGameNotResolved, env.settle(t, env.privA, gameID))

	// one revealed, timeout not reached
	require.NoError(t, env.reveal(t, env.privA, gameID, types.MoveRock, "sa"))
	assert.Equal(t, types.ErrGameNotResolved, env.settle(t, env.privA, gameID))
}

func TestSettleTimeout(t *testing.T) {
	env := newTestEnv(t)
	wager := uint64(100000000)
	gameID := env.endedGame(t, wager, types.MoveRock, types.MovePaper, "sa", "sb")
	require.NoError(t, env.reveal(t, env.privB, gameID, types.MovePaper, "sb"))

	// move block time past the reveal timeout
	env.blocktime += env.cfg.RevealTimeout
	require.NoError(t, env.settle(t, env.privB, gameID))

	game := env.game(t, gameID)
	assert.Equal(t, types.ResultTimeout, game.Result)
	assert.Equal(t, 1000*types.Coin+int64(wager), env.balance(env.addrB))
	assert.Equal(t, 1000*types.Coin-int64(wager), env.balance(env.addrA))
}

func TestSettleTwice(t *testing.T) {
	env := newTestEnv(t)
	gameID := env.endedGame(t, 100000000, types.MoveRock, types.MovePaper, "sa", "sb")
	require.NoError(t, env.reveal(t, env.privA, gameID, types.MoveRock, "sa"))
	require.NoError(t, env.reveal(t, env.privB, gameID, types.MovePaper, "sb"))
	require.NoError(t, env.settle(t, env.privA, gameID))

	assert.Equal(t, types.ErrGameAlreadySettled, env.settle(t, env.privB, gameID))
	assert.Equal(t, types.ErrGameAlreadySettled, env.reveal(t, env.privA, gameID, types.MoveRock, "sa"))
}

func TestSettleUnauthorized(t *testing.T) {
	env := newTestEnv(t)
	gameID := env.endedGame(t, 100000000, types.MoveRock, types.MovePaper, "sa", "sb")
	require.NoError(t, env.reveal(t, env.privA, gameID, types.MoveRock, "sa"))
	require.NoError(t, env.reveal(t, env.privB, gameID, types.MovePaper, "sb"))

	_, err := env.apply(t, env.privC, &types.RPSAction{
		Ty:     types.RPSActionSettle,
		Settle: &types.RPSSettle{GameId: gameID},
	})
	assert.Equal(t, types.ErrUnauthorized, err)
}

func TestListGames(t *testing.T) {
	env := newTestEnv(t)
	g1 := env.create(t, env.privA, 100000000)
	g2 := env.create(t, env.privB, 200000000)

	query := NewQuery(env.db)
	games, err := query.ListGames(types.StatusOpen, "", 0, 0, types.ListDESC)
	require.NoError(t, err)
	require.Len(t, games, 2)
	// descending index order, newest first
	assert.Equal(t, g2, games[0].GameId)
	assert.Equal(t, g1, games[1].GameId)

	games, err = query.ListGames(types.StatusOpen, env.addrA, 0, 0, types.ListDESC)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, g1, games[0].GameId)

	// joining moves the game out of the open index for both participants
	require.NoError(t, env.join(t, env.privB, g1))
	_, err = query.ListGames(types.StatusOpen, env.addrA, 0, 0, types.ListDESC)
	assert.Equal(t, types.ErrNotFound, err)
	games, err = query.ListGames(types.StatusCommitted, env.addrB, 0, 0, types.ListDESC)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, g1, games[0].GameId)
}

func TestListGamesPaging(t *testing.T) {
	env := newTestEnv(t)
	var ids []string
	wagers := []uint64{100000000, 200000000, 300000000}
	for _, w := range wagers {
		ids = append(ids, env.create(t, env.privA, w))
	}

	query := NewQuery(env.db)
	page, err := query.ListGames(types.StatusOpen, "", 0, 2, types.ListDESC)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, ids[2], page[0].GameId)
	assert.Equal(t, ids[1], page[1].GameId)

	page, err = query.ListGames(types.StatusOpen, "", page[1].Index, 2, types.ListDESC)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, ids[0], page[0].GameId)
}

func TestQueryRejectsTamperedGame(t *testing.T) {
	env := newTestEnv(t)
	gameID := env.create(t, env.privA, 100000000)

	// rewrite the stored game with a wager the address was not derived
	// from; the read path must refuse to hand it out
	game := env.game(t, gameID)
	game.Wager = 999999999
	require.NoError(t, env.db.Set(Key(gameID), types.Encode(game)))

	_, err := NewQuery(env.db).GetGame(gameID)
	assert.Equal(t, types.ErrInvalidGameAccount, err)
}

func TestCheckTx(t *testing.T) {
	env := newTestEnv(t)
	exec := New(dbm.NewTxCache(env.db), 1, env.blocktime, env.cfg)

	tx := signedTx(env.privA, &types.RPSAction{Ty: 99})
	assert.Equal(t, types.ErrActionNotSupport, exec.CheckTx(tx, 0))

	tx = signedTx(env.privA, &types.RPSAction{
		Ty:         types.RPSActionSelectMove,
		SelectMove: &types.RPSSelectMove{GameId: "x", Move: 7, Salt: "s"},
	})
	assert.Equal(t, types.ErrInvalidMove, exec.CheckTx(tx, 0))

	tx = signedTx(env.privA, &types.RPSAction{Ty: types.RPSActionCreate, Create: &types.RPSCreate{Wager: 1}})
	tx.Execer = []byte("other")
	assert.Equal(t, types.ErrExecerParse, exec.CheckTx(tx, 0))
}

func TestDecideResult(t *testing.T) {
	assert.Equal(t, types.ResultDraw, decideResult(types.MoveRock, types.MoveRock))
	assert.Equal(t, types.ResultCreatorWins, decideResult(types.MoveRock, types.MoveScissors))
	assert.Equal(t, types.ResultCreatorWins, decideResult(types.MovePaper, types.MoveRock))
	assert.Equal(t, types.ResultCreatorWins, decideResult(types.MoveScissors, types.MovePaper))
	assert.Equal(t, types.ResultOpponentWins, decideResult(types.MoveRock, types.MovePaper))
	assert.Equal(t, types.ResultOpponentWins, decideResult(types.MovePaper, types.MoveScissors))
	assert.Equal(t, types.ResultOpponentWins, decideResult(types.MoveScissors, types.MoveRock))
}
