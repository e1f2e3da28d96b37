package cli

import (
	tmbytes "github.com/cometbft/cometbft/libs/bytes"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/picoin-network/picoin/x/picoin/keeper"
	"github.com/picoin-network/picoin/x/picoin/types"
)

// GetQueryCmd returns the cli query commands for the picoin module
func GetQueryCmd() *cobra.Command {
	picoinQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the picoin module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	picoinQueryCmd.AddCommand(
		GetCmdQueryParams(),
	)

	return picoinQueryCmd
}

// GetCmdQueryParams returns the command to query module parameters
func GetCmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the current picoin module parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			res, _, err := clientCtx.QueryStore(tmbytes.HexBytes(keeper.ParamsKey), types.StoreKey)
			if err != nil {
				return err
			}
			if len(res) == 0 {
				return clientCtx.PrintString("params not set, defaults apply\n")
			}

			return clientCtx.PrintString(string(res) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
