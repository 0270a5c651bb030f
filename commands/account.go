package commands

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// AccountCmd groups coins account queries.
func AccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Coins account queries",
	}
	cmd.AddCommand(balanceCmd())
	return cmd
}

func balanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show the balance of an address",
		Run: func(cmd *cobra.Command, args []string) {
			addr, _ := cmd.Flags().GetString("addr")
			l := openLedger(cmd)
			defer l.Close()
			balance := l.GetBalance(addr)
			result := struct {
				Addr    string `json:"addr"`
				Balance string `json:"balance"`
			}{addr, decimal.New(balance, -8).String()}
			printJSON(result)
		},
	}
	cmd.Flags().StringP("addr", "a", "", "address")
	cmd.MarkFlagRequired("addr")
	return cmd
}
