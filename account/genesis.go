package account

import (
	"github.com/mrtoaf/rugpaperscissors/types"
)

//GenesisInit 按配置为初始账户注入余额
func (acc *DB) GenesisInit(accounts []*types.GenesisAccount) error {
	for _, g := range accounts {
		if _, err := acc.Deposit(g.Addr, g.Balance); err != nil {
			alog.Error("GenesisInit", "addr", g.Addr, "balance", g.Balance, "err", err)
			return err
		}
	}
	return nil
}
