package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/picoin-network/picoin/x/dex/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the dex MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// Swap handles exchanging one token for another through a pool
func (ms msgServer) Swap(goCtx context.Context, msg *types.MsgSwap) (*types.MsgSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Swap: validate: %w", err)
	}

	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, fmt.Errorf("Swap: invalid trader address: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	amountOut, err := ms.Keeper.Swap(ctx, trader, msg.TokenIn, msg.TokenOut, msg.AmountIn)
	if err != nil {
		return nil, fmt.Errorf("Swap: %w", err)
	}

	return &types.MsgSwapResponse{AmountOut: amountOut}, nil
}

// Deposit handles adding liquidity to a pool
func (ms msgServer) Deposit(goCtx context.Context, msg *types.MsgDeposit) (*types.MsgDepositResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Deposit: validate: %w", err)
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("Deposit: invalid provider address: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	shares, err := ms.Keeper.Deposit(ctx, provider, msg.TokenA, msg.TokenB, msg.AmountA, msg.AmountB)
	if err != nil {
		return nil, fmt.Errorf("Deposit: %w", err)
	}

	return &types.MsgDepositResponse{Shares: shares}, nil
}

// Withdraw handles removing liquidity from a pool
func (ms msgServer) Withdraw(goCtx context.Context, msg *types.MsgWithdraw) (*types.MsgWithdrawResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Withdraw: validate: %w", err)
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("Withdraw: invalid provider address: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := ms.Keeper.Withdraw(ctx, provider, msg.TokenA, msg.TokenB, msg.AmountA, msg.AmountB); err != nil {
		return nil, fmt.Errorf("Withdraw: %w", err)
	}

	return &types.MsgWithdrawResponse{AmountA: msg.AmountA, AmountB: msg.AmountB}, nil
}

// WithdrawFees handles paying accrued protocol fees to the authority
func (ms msgServer) WithdrawFees(goCtx context.Context, msg *types.MsgWithdrawFees) (*types.MsgWithdrawFeesResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("WithdrawFees: validate: %w", err)
	}

	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		return nil, fmt.Errorf("WithdrawFees: invalid authority address: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	amount, err := ms.Keeper.WithdrawFees(ctx, authority, msg.Denom)
	if err != nil {
		return nil, fmt.Errorf("WithdrawFees: %w", err)
	}

	return &types.MsgWithdrawFeesResponse{Amount: amount}, nil
}

// UpdateFeePercentage handles changing the swap fee percentage
func (ms msgServer) UpdateFeePercentage(goCtx context.Context, msg *types.MsgUpdateFeePercentage) (*types.MsgUpdateFeePercentageResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("UpdateFeePercentage: validate: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := ms.Keeper.UpdateFeePercentage(ctx, msg.Authority, msg.FeePercentage); err != nil {
		return nil, fmt.Errorf("UpdateFeePercentage: %w", err)
	}

	return &types.MsgUpdateFeePercentageResponse{}, nil
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

// PlaceLimitOrder handles recording a standing order
func (ms msgServer) PlaceLimitOrder(goCtx context.Context, msg *types.MsgPlaceLimitOrder) (*types.MsgPlaceLimitOrderResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("PlaceLimitOrder: validate: %w", err)
	}

	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, fmt.Errorf("PlaceLimitOrder: invalid owner address: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	orderID, err := ms.Keeper.PlaceLimitOrder(ctx, owner, msg.TokenIn, msg.TokenOut, msg.AmountIn, msg.LimitPrice)
	if err != nil {
		return nil, fmt.Errorf("PlaceLimitOrder: %w", err)
	}

	return &types.MsgPlaceLimitOrderResponse{OrderID: orderID}, nil
}

// CancelLimitOrder handles cancelling an open order
func (ms msgServer) CancelLimitOrder(goCtx context.Context, msg *types.MsgCancelLimitOrder) (*types.MsgCancelLimitOrderResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CancelLimitOrder: validate: %w", err)
	}

	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, fmt.Errorf("CancelLimitOrder: invalid owner address: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := ms.Keeper.CancelLimitOrder(ctx, owner, msg.OrderID); err != nil {
		return nil, fmt.Errorf("CancelLimitOrder: %w", err)
	}

	return &types.MsgCancelLimitOrderResponse{}, nil
}

// DepositRewards handles funding a reward balance
func (ms msgServer) DepositRewards(goCtx context.Context, msg *types.MsgDepositRewards) (*types.MsgDepositRewardsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("DepositRewards: validate: %w", err)
	}

	depositor, err := sdk.AccAddressFromBech32(msg.Depositor)
	if err != nil {
		return nil, fmt.Errorf("DepositRewards: invalid depositor address: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := ms.Keeper.DepositRewards(ctx, depositor, msg.Amount); err != nil {
		return nil, fmt.Errorf("DepositRewards: %w", err)
	}

	return &types.MsgDepositRewardsResponse{}, nil
}

// ClaimRewards handles paying out a provider's full reward balance
func (ms msgServer) ClaimRewards(goCtx context.Context, msg *types.MsgClaimRewards) (*types.MsgClaimRewardsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("ClaimRewards: validate: %w", err)
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("ClaimRewards: invalid provider address: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	amount, err := ms.Keeper.ClaimRewards(ctx, provider)
	if err != nil {
		return nil, fmt.Errorf("ClaimRewards: %w", err)
	}

	return &types.MsgClaimRewardsResponse{Amount: amount}, nil
}
