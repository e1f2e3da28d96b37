package cli

import (
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/picoin-network/picoin/x/dex/types"
)

// GetTxCmd returns the transaction commands for the dex module
func GetTxCmd() *cobra.Command {
	dexTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "DEX transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	dexTxCmd.AddCommand(
		CmdSwap(),
		CmdDeposit(),
		CmdWithdraw(),
		CmdPlaceLimitOrder(),
		CmdCancelLimitOrder(),
		CmdClaimRewards(),
	)

	return dexTxCmd
}

// CmdSwap returns a CLI command handler for swapping tokens
func CmdSwap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap [token-in] [token-out] [amount-in]",
		Short: "Swap one token for another through a liquidity pool",
		Long: `Swap an exact input amount of one token for the other token of a pool.

The output amount is determined by the pool's constant-product pricing at
execution time.

Example:
  $ picoind tx dex swap upicoin uatom 1000000 --from trader-key`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amountIn, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid amount: %s", args[2])
			}

			msg := types.NewMsgSwap(clientCtx.GetFromAddress().String(), args[0], args[1], amountIn)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdDeposit returns a CLI command handler for adding liquidity
func CmdDeposit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit [token-a] [token-b] [amount-a] [amount-b]",
		Short: "Add liquidity to a pool",
		Long: `Deposit both tokens of a pair into its liquidity pool. A pool is created
implicitly on the first deposit for a pair.

Example:
  $ picoind tx dex deposit upicoin uatom 1000000 1000000 --from provider-key`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amountA, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid amount: %s", args[2])
			}
			amountB, ok := math.NewIntFromString(args[3])
			if !ok {
				return fmt.Errorf("invalid amount: %s", args[3])
			}

			msg := types.NewMsgDeposit(clientCtx.GetFromAddress().String(), args[0], args[1], amountA, amountB)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdWithdraw returns a CLI command handler for removing liquidity
func CmdWithdraw() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw [token-a] [token-b] [amount-a] [amount-b]",
		Short: "Withdraw liquidity from a pool",
		Long: `Withdraw both tokens from a pool. The share balance redeemed equals the
sum of both amounts.

Example:
  $ picoind tx dex withdraw upicoin uatom 500000 500000 --from provider-key`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amountA, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid amount: %s", args[2])
			}
			amountB, ok := math.NewIntFromString(args[3])
			if !ok {
				return fmt.Errorf("invalid amount: %s", args[3])
			}

			msg := types.NewMsgWithdraw(clientCtx.GetFromAddress().String(), args[0], args[1], amountA, amountB)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdPlaceLimitOrder returns a CLI command handler for placing a limit order
func CmdPlaceLimitOrder() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "place-order [token-in] [token-out] [amount-in] [limit-price]",
		Short: "Place a limit order",
		Long: `Record a standing order and lock the input tokens. The limit price is
expressed as token-out per token-in.

Example:
  $ picoind tx dex place-order upicoin uatom 1000000 1.05 --from trader-key`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amountIn, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid amount: %s", args[2])
			}
			limitPrice, err := math.LegacyNewDecFromStr(args[3])
			if err != nil {
				return fmt.Errorf("invalid limit price %s: %w", args[3], err)
			}

			msg := types.NewMsgPlaceLimitOrder(clientCtx.GetFromAddress().String(), args[0], args[1], amountIn, limitPrice)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCancelLimitOrder returns a CLI command handler for cancelling an order
func CmdCancelLimitOrder() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel-order [order-id]",
		Short: "Cancel an open limit order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			orderID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid order id %s: %w", args[0], err)
			}

			msg := types.NewMsgCancelLimitOrder(clientCtx.GetFromAddress().String(), orderID)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdClaimRewards returns a CLI command handler for claiming rewards
func CmdClaimRewards() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim-rewards",
		Short: "Claim your full reward balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgClaimRewards(clientCtx.GetFromAddress().String())
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
