package agentwallet

import "errors"

var (
	ErrAgentNotFound       = errors.New("agent_not_found")
	ErrWalletNotFound      = errors.New("wallet_not_found")
	ErrInsufficientBalance = errors.New("insufficient_balance")
	ErrNotDirectSubAgent   = errors.New("not_direct_sub_agent")
	ErrSelfTopupForbidden  = errors.New("self_topup_forbidden")
	ErrInvalidAmount       = errors.New("invalid_amount")
	ErrInvalidWalletType   = errors.New("invalid_wallet_type")
	ErrInvalidTrxType      = errors.New("invalid_trx_type")
)
