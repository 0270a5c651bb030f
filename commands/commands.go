package commands

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrtoaf/rugpaperscissors/common"
	"github.com/mrtoaf/rugpaperscissors/common/crypto"
	"github.com/mrtoaf/rugpaperscissors/common/log"
	"github.com/mrtoaf/rugpaperscissors/ledger"
	"github.com/mrtoaf/rugpaperscissors/types"
)

// NewRootCmd assembles the full command tree of the cli.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rps-cli",
		Short: "rock paper scissors ledger command line client",
	}
	rootCmd.PersistentFlags().String("config", "rps.toml", "config file path")
	rootCmd.AddCommand(
		KeyCmd(),
		GameCmd(),
		AccountCmd(),
	)
	return rootCmd
}

func loadConfig(cmd *cobra.Command) *types.Config {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := types.InitCfg(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg.FillDefaults()
	if cfg.Log != nil {
		log.SetFileLog(cfg.Log)
	}
	return cfg
}

func openLedger(cmd *cobra.Command) *ledger.Ledger {
	l, err := ledger.New(loadConfig(cmd))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return l
}

func loadPrivKey(cmd *cobra.Command) *crypto.PrivKey {
	keyHex, _ := cmd.Flags().GetString("key")
	b, err := common.FromHex(keyHex)
	if err != nil || len(b) != 32 {
		fmt.Fprintln(os.Stderr, "invalid private key")
		os.Exit(1)
	}
	return crypto.PrivKeyFromBytes(b)
}

// sendAction signs one rps action with priv and applies it to the ledger.
func sendAction(l *ledger.Ledger, priv *crypto.PrivKey, action *types.RPSAction) {
	tx := &types.Transaction{
		Execer:  []byte(types.RPSX),
		Payload: types.Encode(action),
		Nonce:   rand.Int63(),
	}
	tx.Sign(priv)
	receipt, err := l.Apply(tx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	result := struct {
		TxHash  string         `json:"txHash"`
		Receipt *types.Receipt `json:"receipt"`
	}{common.ToHex(tx.Hash()), receipt}
	printJSON(result)
}

func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}
