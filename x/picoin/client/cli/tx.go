package cli

import (
	"fmt"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/picoin-network/picoin/x/picoin/types"
)

// GetTxCmd returns the transaction commands for the picoin module
func GetTxCmd() *cobra.Command {
	picoinTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Picoin transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	picoinTxCmd.AddCommand(
		CmdTransfer(),
		CmdAdjustSupply(),
		CmdSetPriceFeed(),
	)

	return picoinTxCmd
}

// CmdTransfer returns a CLI command handler for a fee-bearing transfer
func CmdTransfer() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer [recipient] [amount]",
		Short: "Transfer picoin with the transaction fee applied",
		Long: `Transfer the pegged asset to a recipient. The configured transaction fee
is deducted from the amount and routed to module custody; the recipient
receives the remainder.

Example:
  $ picoind tx picoin transfer pic1abc... 1000000 --from sender-key`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			if _, err := sdk.AccAddressFromBech32(args[0]); err != nil {
				return fmt.Errorf("invalid recipient address %s: %w", args[0], err)
			}
			amount, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount: %s", args[1])
			}

			msg := types.NewMsgTransfer(clientCtx.GetFromAddress().String(), args[0], amount)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdAdjustSupply returns a CLI command handler for one peg controller step
func CmdAdjustSupply() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "adjust-supply",
		Short: "Run one supply adjustment against the oracle price",
		Long: `Mint or burn supply proportionally to the deviation of the oracle price
from the peg target. Owner only.

Example:
  $ picoind tx picoin adjust-supply --from owner-key`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgAdjustSupply(clientCtx.GetFromAddress().String())
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSetPriceFeed returns a CLI command handler for repointing the oracle
// asset the supply controller tracks
func CmdSetPriceFeed() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-price-feed [asset]",
		Short: "Set the oracle asset the supply controller tracks",
		Long: `Repoint the supply controller at a different oracle price feed. Owner only.

Example:
  $ picoind tx picoin set-price-feed PICOIN --from owner-key`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgSetPriceFeed(clientCtx.GetFromAddress().String(), args[0])
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
