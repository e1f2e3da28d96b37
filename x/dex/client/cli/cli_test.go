package cli_test

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/picoin-network/picoin/x/dex/client/cli"
	"github.com/picoin-network/picoin/x/dex/types"
)

// setFlag is a helper to set command flags
func setFlag(t *testing.T, flagSet *pflag.FlagSet, name, value string) {
	t.Helper()
	require.NoError(t, flagSet.Set(name, value))
}

func TestGetTxCmd_Wiring(t *testing.T) {
	cmd := cli.GetTxCmd()
	require.Equal(t, types.ModuleName, cmd.Use)

	subcommands := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		subcommands[sub.Name()] = true
	}
	for _, name := range []string{"swap", "deposit", "withdraw", "place-order", "cancel-order", "claim-rewards"} {
		require.True(t, subcommands[name], "missing tx subcommand %s", name)
	}
}

func TestGetQueryCmd_Wiring(t *testing.T) {
	cmd := cli.GetQueryCmd()
	require.Equal(t, types.ModuleName, cmd.Use)

	subcommands := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		subcommands[sub.Name()] = true
	}
	for _, name := range []string{"pool", "params", "order"} {
		require.True(t, subcommands[name], "missing query subcommand %s", name)
	}
}

func TestCmdSwap_ArgsAndFlags(t *testing.T) {
	cmd := cli.CmdSwap()

	require.Error(t, cmd.Args(cmd, []string{"uatom"}))
	require.NoError(t, cmd.Args(cmd, []string{"uatom", "upicoin", "1000"}))

	// Standard tx flags are attached.
	require.NotNil(t, cmd.Flags().Lookup(flags.FlagFrom))
	setFlag(t, cmd.Flags(), flags.FlagFrom, "trader-key")
}

func TestCmdPlaceLimitOrder_Args(t *testing.T) {
	cmd := cli.CmdPlaceLimitOrder()
	require.Error(t, cmd.Args(cmd, []string{"uatom", "upicoin"}))
	require.NoError(t, cmd.Args(cmd, []string{"uatom", "upicoin", "1000", "2"}))
}
