package cli

import (
	"fmt"
	"strconv"

	tmbytes "github.com/cometbft/cometbft/libs/bytes"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/picoin-network/picoin/x/dex/keeper"
	"github.com/picoin-network/picoin/x/dex/types"
)

// GetQueryCmd returns the cli query commands for the dex module
func GetQueryCmd() *cobra.Command {
	dexQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the dex module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	dexQueryCmd.AddCommand(
		GetCmdQueryPool(),
		GetCmdQueryParams(),
		GetCmdQueryOrder(),
	)

	return dexQueryCmd
}

// queryStoreJSON fetches a raw store value and prints it. Module records
// are stored as JSON, so the raw value is directly readable.
func queryStoreJSON(cmd *cobra.Command, key []byte, notFound string) error {
	clientCtx, err := client.GetClientQueryContext(cmd)
	if err != nil {
		return err
	}

	res, _, err := clientCtx.QueryStore(tmbytes.HexBytes(key), types.StoreKey)
	if err != nil {
		return err
	}
	if len(res) == 0 {
		return fmt.Errorf("%s", notFound)
	}

	return clientCtx.PrintString(string(res) + "\n")
}

// GetCmdQueryPool returns the command to query a pool by token pair
func GetCmdQueryPool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool [token-a] [token-b]",
		Short: "Query the pool for a token pair",
		Long: `Query reserves and total shares for a token pair.

Example:
  $ picoind query dex pool upicoin uatom`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairID := types.PairID(args[0], args[1])
			return queryStoreJSON(cmd, keeper.PoolKey(pairID), fmt.Sprintf("no pool for pair %s", pairID))
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryParams returns the command to query module parameters
func GetCmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the current dex module parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return queryStoreJSON(cmd, keeper.ParamsKey, "params not set, defaults apply")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryOrder returns the command to query a limit order by ID
func GetCmdQueryOrder() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order [order-id]",
		Short: "Query a limit order by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orderID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid order id %s: %w", args[0], err)
			}
			return queryStoreJSON(cmd, keeper.LimitOrderKey(orderID), fmt.Sprintf("order %d not found", orderID))
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
