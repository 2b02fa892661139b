package agentwallet

import (
	"errors"
	"testing"

	"poinadmin/models"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		wantOK bool
	}{
		{name: "positive", amount: "400", wantOK: true},
		{name: "fractional", amount: "0.01", wantOK: true},
		{name: "zero", amount: "0", wantOK: false},
		{name: "negative", amount: "-10", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateAmount(dec(tt.amount))
			if tt.wantOK && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.wantOK && !errors.Is(err, ErrInvalidAmount) {
				t.Fatalf("err = %v, want ErrInvalidAmount", err)
			}
		})
	}
}

func TestValidWalletType(t *testing.T) {
	for _, walletType := range models.WalletTypes {
		if !validWalletType(walletType) {
			t.Fatalf("%q should be valid", walletType)
		}
	}
	if validWalletType("poker") {
		t.Fatal("unknown type accepted")
	}
}

func TestMovementTrxTypes(t *testing.T) {
	tests := []struct {
		trxType  string
		creditOK bool
		debitOK  bool
	}{
		{trxType: models.WalletTrxDeposit, creditOK: true, debitOK: false},
		{trxType: models.WalletTrxWithdraw, creditOK: false, debitOK: true},
		{trxType: models.WalletTrxAdjustment, creditOK: true, debitOK: true},
		{trxType: models.WalletTrxSettlement, creditOK: true, debitOK: true},
		{trxType: models.WalletTrxProviderFee, creditOK: false, debitOK: true},
		{trxType: models.WalletTrxTransferIn, creditOK: false, debitOK: false},
		{trxType: models.WalletTrxTransferOut, creditOK: false, debitOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.trxType, func(t *testing.T) {
			if got := validCreditType(tt.trxType); got != tt.creditOK {
				t.Fatalf("validCreditType = %v, want %v", got, tt.creditOK)
			}
			if got := validDebitType(tt.trxType); got != tt.debitOK {
				t.Fatalf("validDebitType = %v, want %v", got, tt.debitOK)
			}
		})
	}
}

func agentWithParent(id uint, parentID *uint) models.Agent {
	a := models.Agent{ParentID: parentID}
	a.ID = id
	return a
}

func TestValidateTopupAgents(t *testing.T) {
	one := uint(1)
	three := uint(3)

	tests := []struct {
		name    string
		master  models.Agent
		sub     models.Agent
		wantErr error
	}{
		{
			name:   "direct sub-agent",
			master: agentWithParent(1, nil),
			sub:    agentWithParent(2, &one),
		},
		{
			name:    "self top-up",
			master:  agentWithParent(1, nil),
			sub:     agentWithParent(1, nil),
			wantErr: ErrSelfTopupForbidden,
		},
		{
			name:    "orphan sub-agent",
			master:  agentWithParent(1, nil),
			sub:     agentWithParent(2, nil),
			wantErr: ErrNotDirectSubAgent,
		},
		{
			name:    "grandchild rejected",
			master:  agentWithParent(1, nil),
			sub:     agentWithParent(2, &three),
			wantErr: ErrNotDirectSubAgent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTopupAgents(tt.master, tt.sub)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLockOrder(t *testing.T) {
	low := &models.AgentWallet{}
	low.ID = 4
	high := &models.AgentWallet{}
	high.ID = 9

	first, second := lockOrder(high, low)
	if first != low || second != high {
		t.Fatalf("lock order = (%d, %d), want (4, 9)", first.ID, second.ID)
	}

	first, second = lockOrder(low, high)
	if first != low || second != high {
		t.Fatalf("lock order = (%d, %d), want (4, 9)", first.ID, second.ID)
	}
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults", limit: 0, offset: 0, wantLimit: 50, wantOffset: 0},
		{name: "explicit", limit: 20, offset: 40, wantLimit: 20, wantOffset: 40},
		{name: "capped", limit: 1000, offset: 0, wantLimit: 200, wantOffset: 0},
		{name: "negative offset", limit: 10, offset: -5, wantLimit: 10, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotLimit, gotOffset := clampPage(tt.limit, tt.offset)
			if gotLimit != tt.wantLimit || gotOffset != tt.wantOffset {
				t.Fatalf("clampPage = (%d, %d), want (%d, %d)",
					gotLimit, gotOffset, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}

func TestMetadataJSON(t *testing.T) {
	if got := metadataJSON(nil); got != nil {
		t.Fatalf("metadataJSON(nil) = %s, want nil", got)
	}

	raw := metadataJSON(map[string]any{"counterpart_agent_id": "2"})
	if raw == nil {
		t.Fatal("expected metadata payload")
	}
	if string(raw) != `{"counterpart_agent_id":"2"}` {
		t.Fatalf("metadata = %s", raw)
	}
}
