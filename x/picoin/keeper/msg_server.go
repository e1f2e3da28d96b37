package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/picoin-network/picoin/x/picoin/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the picoin MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// Transfer handles a fee-bearing transfer of the pegged asset
func (ms msgServer) Transfer(goCtx context.Context, msg *types.MsgTransfer) (*types.MsgTransferResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Transfer: validate: %w", err)
	}

	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, fmt.Errorf("Transfer: invalid sender address: %w", err)
	}
	recipient, err := sdk.AccAddressFromBech32(msg.Recipient)
	if err != nil {
		return nil, fmt.Errorf("Transfer: invalid recipient address: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	fee, err := ms.Keeper.Transfer(ctx, sender, recipient, msg.Amount)
	if err != nil {
		return nil, fmt.Errorf("Transfer: %w", err)
	}

	return &types.MsgTransferResponse{Fee: fee}, nil
}

// AdjustSupply handles one supply controller step
func (ms msgServer) AdjustSupply(goCtx context.Context, msg *types.MsgAdjustSupply) (*types.MsgAdjustSupplyResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("AdjustSupply: validate: %w", err)
	}

	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		return nil, fmt.Errorf("AdjustSupply: invalid authority address: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	direction, amount, err := ms.Keeper.AdjustSupply(ctx, authority)
	if err != nil {
		return nil, fmt.Errorf("AdjustSupply: %w", err)
	}

	return &types.MsgAdjustSupplyResponse{Direction: direction, Amount: amount}, nil
}

// Mint handles minting new supply
func (ms msgServer) Mint(goCtx context.Context, msg *types.MsgMint) (*types.MsgMintResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Mint: validate: %w", err)
	}

	recipient, err := sdk.AccAddressFromBech32(msg.Recipient)
	if err != nil {
		return nil, fmt.Errorf("Mint: invalid recipient address: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := ms.Keeper.Mint(ctx, msg.Authority, recipient, msg.Amount); err != nil {
		return nil, fmt.Errorf("Mint: %w", err)
	}

	return &types.MsgMintResponse{}, nil
}

// Burn handles burning supply
func (ms msgServer) Burn(goCtx context.Context, msg *types.MsgBurn) (*types.MsgBurnResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Burn: validate: %w", err)
	}

	holder, err := sdk.AccAddressFromBech32(msg.Holder)
	if err != nil {
		return nil, fmt.Errorf("Burn: invalid holder address: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := ms.Keeper.Burn(ctx, msg.Authority, holder, msg.Amount); err != nil {
		return nil, fmt.Errorf("Burn: %w", err)
	}

	return &types.MsgBurnResponse{}, nil
}

// UpdateTransactionFee handles changing the transfer fee
func (ms msgServer) UpdateTransactionFee(goCtx context.Context, msg *types.MsgUpdateTransactionFee) (*types.MsgUpdateTransactionFeeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("UpdateTransactionFee: validate: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := ms.Keeper.UpdateTransactionFee(ctx, msg.Authority, msg.FeeBps); err != nil {
		return nil, fmt.Errorf("UpdateTransactionFee: %w", err)
	}

	return &types.MsgUpdateTransactionFeeResponse{}, nil
}

// SetPriceFeed handles repointing the supply controller oracle asset
func (ms msgServer) SetPriceFeed(goCtx context.Context, msg *types.MsgSetPriceFeed) (*types.MsgSetPriceFeedResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SetPriceFeed: validate: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := ms.Keeper.SetPriceFeed(ctx, msg.Authority, msg.Asset); err != nil {
		return nil, fmt.Errorf("SetPriceFeed: %w", err)
	}

	return &types.MsgSetPriceFeedResponse{}, nil
}

// WithdrawFees handles paying out the collected fee total
func (ms msgServer) WithdrawFees(goCtx context.Context, msg *types.MsgWithdrawFees) (*types.MsgWithdrawFeesResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("WithdrawFees: validate: %w", err)
	}

	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		return nil, fmt.Errorf("WithdrawFees: invalid authority address: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	amount, err := ms.Keeper.WithdrawFees(ctx, authority)
	if err != nil {
		return nil, fmt.Errorf("WithdrawFees: %w", err)
	}

	return &types.MsgWithdrawFeesResponse{Amount: amount}, nil
}

// Pause handles halting module operations
func (ms msgServer) Pause(goCtx context.Context, msg *types.MsgPause) (*types.MsgPauseResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Pause: validate: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := ms.Keeper.Pause(ctx, msg.Authority); err != nil {
		return nil, fmt.Errorf("Pause: %w", err)
	}

	return &types.MsgPauseResponse{}, nil
}

// Unpause handles resuming module operations
func (ms msgServer) Unpause(goCtx context.Context, msg *types.MsgUnpause) (*types.MsgUnpauseResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Unpause: validate: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := ms.Keeper.Unpause(ctx, msg.Authority); err != nil {
		return nil, fmt.Errorf("Unpause: %w", err)
	}

	return &types.MsgUnpauseResponse{}, nil
}
