package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mrtoaf/rugpaperscissors/common/address"
	"github.com/mrtoaf/rugpaperscissors/types"
)

// GameCmd groups the game operations.
func GameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Create and play rock paper scissors games",
	}
	cmd.AddCommand(
		createGameCmd(),
		joinGameCmd(),
		selectMoveCmd(),
		readyUpCmd(),
		revealCmd(),
		settleCmd(),
		showGameCmd(),
		listGameCmd(),
		gameAddrCmd(),
	)
	return cmd
}

func parseCoins(cmd *cobra.Command, flag string) uint64 {
	amount, _ := cmd.Flags().GetString(flag)
	d, err := decimal.NewFromString(amount)
	if err != nil || d.Sign() < 0 {
		fmt.Fprintln(os.Stderr, "invalid amount:", amount)
		os.Exit(1)
	}
	return uint64(d.Mul(decimal.NewFromInt(types.Coin)).IntPart())
}

func parseMove(cmd *cobra.Command) int32 {
	name, _ := cmd.Flags().GetString("move")
	switch strings.ToLower(name) {
	case "rock":
		return types.MoveRock
	case "paper":
		return types.MovePaper
	case "scissors":
		return types.MoveScissors
	}
	fmt.Fprintln(os.Stderr, "invalid move:", name)
	os.Exit(1)
	return types.MoveUnknown
}

func createGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a game, escrowing the wager",
		Run: func(cmd *cobra.Command, args []string) {
			priv := loadPrivKey(cmd)
			l := openLedger(cmd)
			defer l.Close()
			sendAction(l, priv, &types.RPSAction{
				Ty:     types.RPSActionCreate,
				Create: &types.RPSCreate{Wager: parseCoins(cmd, "wager")},
			})
		},
	}
	cmd.Flags().StringP("key", "k", "", "private key in hex")
	cmd.MarkFlagRequired("key")
	cmd.Flags().StringP("wager", "w", "", "wager in coins, for example 1.5")
	cmd.MarkFlagRequired("wager")
	return cmd
}

func joinGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "join",
		Short: "Join an open game, escrowing the matching wager",
		Run: func(cmd *cobra.Command, args []string) {
			priv := loadPrivKey(cmd)
			gameID, _ := cmd.Flags().GetString("gameId")
			l := openLedger(cmd)
			defer l.Close()
			sendAction(l, priv, &types.RPSAction{
				Ty:   types.RPSActionJoin,
				Join: &types.RPSJoin{GameId: gameID},
			})
		},
	}
	cmd.Flags().StringP("key", "k", "", "private key in hex")
	cmd.MarkFlagRequired("key")
	cmd.Flags().StringP("gameId", "g", "", "game address")
	cmd.MarkFlagRequired("gameId")
	return cmd
}

func selectMoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Commit to a move without revealing it",
		Run: func(cmd *cobra.Command, args []string) {
			priv := loadPrivKey(cmd)
			gameID, _ := cmd.Flags().GetString("gameId")
			salt, _ := cmd.Flags().GetString("salt")
			if salt == "" {
				salt = uuid.New().String()
			}
			move := parseMove(cmd)
			l := openLedger(cmd)
			defer l.Close()
			fmt.Println("salt:", salt)
			sendAction(l, priv, &types.RPSAction{
				Ty:         types.RPSActionSelectMove,
				SelectMove: &types.RPSSelectMove{GameId: gameID, Move: move, Salt: salt},
			})
		},
	}
	cmd.Flags().StringP("key", "k", "", "private key in hex")
	cmd.MarkFlagRequired("key")
	cmd.Flags().StringP("gameId", "g", "", "game address")
	cmd.MarkFlagRequired("gameId")
	cmd.Flags().StringP("move", "m", "", "rock, paper or scissors")
	cmd.MarkFlagRequired("move")
	cmd.Flags().StringP("salt", "s", "", "commitment salt, keep it until reveal (random when empty)")
	return cmd
}

func readyUpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ready",
		Short: "Accept your committed move, ends the game when both are ready",
		Run: func(cmd *cobra.Command, args []string) {
			priv := loadPrivKey(cmd)
			gameID, _ := cmd.Flags().GetString("gameId")
			l := openLedger(cmd)
			defer l.Close()
			sendAction(l, priv, &types.RPSAction{
				Ty:      types.RPSActionReadyUp,
				ReadyUp: &types.RPSReadyUp{GameId: gameID},
			})
		},
	}
	cmd.Flags().StringP("key", "k", "", "private key in hex")
	cmd.MarkFlagRequired("key")
	cmd.Flags().StringP("gameId", "g", "", "game address")
	cmd.MarkFlagRequired("gameId")
	return cmd
}

func revealCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reveal",
		Short: "Reveal your move and salt after the game has ended",
		Run: func(cmd *cobra.Command, args []string) {
			priv := loadPrivKey(cmd)
			gameID, _ := cmd.Flags().GetString("gameId")
			salt, _ := cmd.Flags().GetString("salt")
			move := parseMove(cmd)
			l := openLedger(cmd)
			defer l.Close()
			sendAction(l, priv, &types.RPSAction{
				Ty:     types.RPSActionReveal,
				Reveal: &types.RPSReveal{GameId: gameID, Move: move, Salt: salt},
			})
		},
	}
	cmd.Flags().StringP("key", "k", "", "private key in hex")
	cmd.MarkFlagRequired("key")
	cmd.Flags().StringP("gameId", "g", "", "game address")
	cmd.MarkFlagRequired("gameId")
	cmd.Flags().StringP("move", "m", "", "rock, paper or scissors")
	cmd.MarkFlagRequired("move")
	cmd.Flags().StringP("salt", "s", "", "the salt used when committing")
	cmd.MarkFlagRequired("salt")
	return cmd
}

func settleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settle",
		Short: "Resolve an ended game and pay out the escrow",
		Run: func(cmd *cobra.Command, args []string) {
			priv := loadPrivKey(cmd)
			gameID, _ := cmd.Flags().GetString("gameId")
			l := openLedger(cmd)
			defer l.Close()
			sendAction(l, priv, &types.RPSAction{
				Ty:     types.RPSActionSettle,
				Settle: &types.RPSSettle{GameId: gameID},
			})
		},
	}
	cmd.Flags().StringP("key", "k", "", "private key in hex")
	cmd.MarkFlagRequired("key")
	cmd.Flags().StringP("gameId", "g", "", "game address")
	cmd.MarkFlagRequired("gameId")
	return cmd
}

func showGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show one game",
		Run: func(cmd *cobra.Command, args []string) {
			gameID, _ := cmd.Flags().GetString("gameId")
			l := openLedger(cmd)
			defer l.Close()
			game, err := l.GetGame(gameID)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			printJSON(game)
		},
	}
	cmd.Flags().StringP("gameId", "g", "", "game address")
	cmd.MarkFlagRequired("gameId")
	return cmd
}

func listGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List games by status, optionally for one address",
		Run: func(cmd *cobra.Command, args []string) {
			status, _ := cmd.Flags().GetInt32("status")
			addr, _ := cmd.Flags().GetString("addr")
			count, _ := cmd.Flags().GetInt32("count")
			lastIndex, _ := cmd.Flags().GetInt64("index")
			asc, _ := cmd.Flags().GetBool("asc")
			direction := types.ListDESC
			if asc {
				direction = types.ListASC
			}
			l := openLedger(cmd)
			defer l.Close()
			games, err := l.ListGames(status, addr, lastIndex, count, direction)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			printJSON(games)
		},
	}
	cmd.Flags().Int32P("status", "t", types.StatusOpen, "1 open, 2 committed, 3 ended, 4 settled")
	cmd.Flags().StringP("addr", "a", "", "filter by participant address")
	cmd.Flags().Int32P("count", "c", types.DefaultListCount, "page size")
	cmd.Flags().Int64P("index", "i", 0, "index of the last game of the previous page")
	cmd.Flags().Bool("asc", false, "list in ascending index order")
	return cmd
}

// gameAddrCmd derives a game address offline, without touching the ledger.
func gameAddrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addr",
		Short: "Derive the game address for a creator and wager",
		Run: func(cmd *cobra.Command, args []string) {
			creator, _ := cmd.Flags().GetString("creator")
			if err := address.CheckAddress(creator); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			wager := parseCoins(cmd, "wager")
			gameAddr, bump, err := address.DeriveGame(types.GameSeed, creator, wager, address.ExecAddress(types.RPSX))
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			result := struct {
				GameId string `json:"gameId"`
				Bump   uint8  `json:"bump"`
			}{gameAddr.String(), bump}
			printJSON(result)
		},
	}
	cmd.Flags().StringP("creator", "c", "", "creator address")
	cmd.MarkFlagRequired("creator")
	cmd.Flags().StringP("wager", "w", "", "wager in coins")
	cmd.MarkFlagRequired("wager")
	return cmd
}
