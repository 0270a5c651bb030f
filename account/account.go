/*
Package account 实现账本资产操作
*/
package account

//package for account manger
//1. load from db
//2. save to db
//3. Transfer
//4. Account balance query

import (
	log "github.com/inconshreveable/log15"
	dbm "github.com/mrtoaf/rugpaperscissors/common/db"
	"github.com/mrtoaf/rugpaperscissors/types"
)

var alog = log.New("module", "account")

// DB for account
type DB struct {
	db               dbm.KV
	accountKeyPrefix []byte
}

//NewCoinsAccount 主币账户,游戏账户与普通账户共用同一命名空间,
//游戏地址由推导保证与公钥地址不冲突
func NewCoinsAccount(kv dbm.KV) *DB {
	return &DB{
		db:               kv,
		accountKeyPrefix: []byte("mavl-coins-" + types.RPSX + "-"),
	}
}

//AccountKey 账户存储key
func (acc *DB) AccountKey(addr string) []byte {
	key := make([]byte, 0, len(acc.accountKeyPrefix)+len(addr))
	key = append(key, acc.accountKeyPrefix...)
	key = append(key, addr...)
	return key
}

//LoadAccount 不存在的地址视为零余额账户
func (acc *DB) LoadAccount(addr string) *types.Account {
	value, err := acc.db.Get(acc.AccountKey(addr))
	if err != nil {
		return &types.Account{Addr: addr}
	}
	var acc1 types.Account
	err = types.Decode(value, &acc1)
	if err != nil {
		panic(err) //数据库已经损坏
	}
	return &acc1
}

//SaveAccount 保存账户
func (acc *DB) SaveAccount(acc1 *types.Account) {
	err := acc.db.Set(acc.AccountKey(acc1.Addr), types.Encode(acc1))
	if err != nil {
		panic(err)
	}
}

//CheckTransfer 只校验不执行
func (acc *DB) CheckTransfer(from, to string, amount int64) error {
	if !types.CheckAmount(amount) {
		return types.ErrAmount
	}
	if from == to {
		return types.ErrSendSameToRecv
	}
	accFrom := acc.LoadAccount(from)
	if accFrom.Balance-amount < 0 {
		return types.ErrNoBalance
	}
	return nil
}

//Transfer 余额划转,返回双方余额变化回执
func (acc *DB) Transfer(from, to string, amount int64) (*types.Receipt, error) {
	if err := acc.CheckTransfer(from, to, amount); err != nil {
		alog.Error("Transfer", "from", from, "to", to, "amount", amount, "err", err)
		return nil, err
	}
	accFrom := acc.LoadAccount(from)
	accTo := acc.LoadAccount(to)
	copyfrom := *accFrom
	copyto := *accTo

	accFrom.Balance -= amount
	accTo.Balance += amount

	acc.SaveAccount(accFrom)
	acc.SaveAccount(accTo)
	return acc.transferReceipt(accFrom, accTo, &copyfrom, &copyto), nil
}

//Deposit 凭空注入余额,只在创世初始化时使用
func (acc *DB) Deposit(addr string, amount int64) (*types.Receipt, error) {
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	acc1 := acc.LoadAccount(addr)
	copyacc := *acc1
	acc1.Balance += amount
	acc.SaveAccount(acc1)
	receipt := &types.ReceiptAccountTransfer{Prev: &copyacc, Current: acc1}
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   acc.GetKVSet(acc1),
		Logs: []*types.ReceiptLog{{Ty: types.TyLogTransfer, Log: types.Encode(receipt)}},
	}, nil
}

//GetKVSet 账户的KV表示
func (acc *DB) GetKVSet(acc1 *types.Account) []*types.KeyValue {
	return []*types.KeyValue{{
		Key:   acc.AccountKey(acc1.Addr),
		Value: types.Encode(acc1),
	}}
}

func (acc *DB) transferReceipt(accFrom, accTo, prevFrom, prevTo *types.Account) *types.Receipt {
	receiptFrom := &types.ReceiptAccountTransfer{Prev: prevFrom, Current: accFrom}
	receiptTo := &types.ReceiptAccountTransfer{Prev: prevTo, Current: accTo}
	var kv []*types.KeyValue
	kv = append(kv, acc.GetKVSet(accFrom)...)
	kv = append(kv, acc.GetKVSet(accTo)...)
	return &types.Receipt{
		Ty: types.ExecOk,
		KV: kv,
		Logs: []*types.ReceiptLog{
			{Ty: types.TyLogTransfer, Log: types.Encode(receiptFrom)},
			{Ty: types.TyLogTransfer, Log: types.Encode(receiptTo)},
		},
	}
}
