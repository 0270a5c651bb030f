package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrtoaf/rugpaperscissors/common"
	"github.com/mrtoaf/rugpaperscissors/common/address"
	"github.com/mrtoaf/rugpaperscissors/common/crypto"
)

// KeyCmd manages local secp256k1 keys.
func KeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Key management",
	}
	cmd.AddCommand(newKeyCmd(), keyAddrCmd())
	return cmd
}

func newKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Generate a new private key",
		Run: func(cmd *cobra.Command, args []string) {
			priv, err := crypto.GenKey()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			result := struct {
				PrivKey string `json:"privKey"`
				Addr    string `json:"addr"`
			}{
				common.ToHex(crypto.PrivKeyBytes(priv)),
				address.PubKeyToAddress(crypto.PubKeyBytes(priv)).String(),
			}
			printJSON(result)
		},
	}
}

func keyAddrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addr",
		Short: "Show the address of a private key",
		Run: func(cmd *cobra.Command, args []string) {
			priv := loadPrivKey(cmd)
			fmt.Println(address.PubKeyToAddress(crypto.PubKeyBytes(priv)).String())
		},
	}
	cmd.Flags().StringP("key", "k", "", "private key in hex")
	cmd.MarkFlagRequired("key")
	return cmd
}
