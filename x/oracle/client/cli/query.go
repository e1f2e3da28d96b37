package cli

import (
	tmbytes "github.com/cometbft/cometbft/libs/bytes"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/picoin-network/picoin/x/oracle/keeper"
	"github.com/picoin-network/picoin/x/oracle/types"
)

// GetQueryCmd returns the cli query commands for the oracle module
func GetQueryCmd() *cobra.Command {
	oracleQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the oracle module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	oracleQueryCmd.AddCommand(
		GetCmdQueryPrice(),
	)

	return oracleQueryCmd
}

// GetCmdQueryPrice returns the command to query the posted price of an asset
func GetCmdQueryPrice() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price [asset]",
		Short: "Query the posted price for an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			res, _, err := clientCtx.QueryStore(tmbytes.HexBytes(keeper.PriceKey(args[0])), types.StoreKey)
			if err != nil {
				return err
			}
			if len(res) == 0 {
				return types.ErrPriceNotFound.Wrapf("asset %s", args[0])
			}

			return clientCtx.PrintString(string(res) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
