package clientledger

import (
	"errors"
	"strconv"
	"testing"

	"poinadmin/models"
)

func TestCreateBillingPostsShareDue(t *testing.T) {
	db := newTestDB(t)
	client := seedTestClient(t, db)

	billing, err := CreateBilling(db, client.ID, BillingInput{
		Month:        "2025-08",
		GameProvider: "pragmatic",
		ShareAmount:  dec("1000"),
		PlatformFee:  dec("50"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !billing.FinalAmount.Equal(dec("950")) {
		t.Fatalf("final amount = %s, want 950", billing.FinalAmount)
	}
	if billing.Status != models.BillingStatusUnpaid {
		t.Fatalf("status = %q, want Unpaid", billing.Status)
	}

	var entry models.ClientTransaction
	if err := db.Where("client_id = ?", client.ID).Order("id DESC").First(&entry).Error; err != nil {
		t.Fatalf("load entry: %v", err)
	}
	if entry.TrxType != models.ClientTrxShareDue || !entry.Amount.Equal(dec("-950")) {
		t.Fatalf("entry = %s %s, want Share Due -950", entry.TrxType, entry.Amount)
	}
	if entry.RelatedBillingID == nil || *entry.RelatedBillingID != billing.ID {
		t.Fatalf("entry billing link = %v, want %d", entry.RelatedBillingID, billing.ID)
	}

	_, err = CreateBilling(db, client.ID, BillingInput{
		Month:        "2025-08",
		GameProvider: "pragmatic",
		ShareAmount:  dec("1000"),
	})
	if !errors.Is(err, ErrDuplicateBilling) {
		t.Fatalf("err = %v, want ErrDuplicateBilling", err)
	}
}

func TestRecordPaymentSettlesBilling(t *testing.T) {
	db := newTestDB(t)
	client := seedTestClient(t, db)

	billing, err := CreateBilling(db, client.ID, BillingInput{
		Month:        "2025-08",
		GameProvider: "pragmatic",
		ShareAmount:  dec("1000"),
		PlatformFee:  dec("50"),
	})
	if err != nil {
		t.Fatalf("create billing: %v", err)
	}

	// Billing-only account: a payment without allocation is ambiguous
	// and leaves the ledger untouched.
	_, err = RecordPayment(db, client.ID, PaymentInput{Amount: dec("950")})
	if !errors.Is(err, ErrAllocationRequired) {
		t.Fatalf("err = %v, want ErrAllocationRequired", err)
	}
	if n := countClientTransactions(t, db, client.ID); n != 1 {
		t.Fatalf("transaction rows = %d, want 1 after rejected payment", n)
	}

	entry, err := RecordPayment(db, client.ID, PaymentInput{
		Amount:           dec("950"),
		PaymentMethod:    "wire",
		RelatedBillingID: strconv.FormatUint(uint64(billing.ID), 10),
	})
	if err != nil {
		t.Fatalf("record payment: %v", err)
	}
	if !entry.BalanceBefore.Equal(dec("-950")) || !entry.BalanceAfter.IsZero() {
		t.Fatalf("payment balances = %s → %s, want -950 → 0", entry.BalanceBefore, entry.BalanceAfter)
	}

	if status := reloadBilling(t, db, billing.ID).Status; status != models.BillingStatusPaid {
		t.Fatalf("billing status = %q, want Paid", status)
	}

	summary, err := Summarize(db, client.ID)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if !summary.OutstandingBalance.IsZero() || !summary.BillingDue.IsZero() {
		t.Fatalf("summary = %+v, want zero dues", summary)
	}
}

// Only the slice of a payment not tagged to a deposit counts toward the
// billing it references: 1500 with 1000 allocated to the security
// deposit covers 500 of a 950 billing, leaving it partially paid.
func TestRecordPaymentDepositSliceNotCountedTowardBilling(t *testing.T) {
	db := newTestDB(t)
	client := seedTestClient(t, db)

	_, err := AddCharge(db, client.ID, ChargeInput{
		TrxType:     models.ClientTrxDeposit,
		Amount:      dec("2000"),
		DepositKind: models.DepositKindSecurity,
	})
	if err != nil {
		t.Fatalf("deposit charge: %v", err)
	}

	billing, err := CreateBilling(db, client.ID, BillingInput{
		Month:        "2025-08",
		GameProvider: "pragmatic",
		ShareAmount:  dec("1000"),
		PlatformFee:  dec("50"),
	})
	if err != nil {
		t.Fatalf("create billing: %v", err)
	}

	entry, err := RecordPayment(db, client.ID, PaymentInput{
		Amount:           dec("1500"),
		DepositPayment:   true,
		DepositKind:      models.DepositKindSecurity,
		DepositAmount:    dec("1000"),
		RelatedBillingID: strconv.FormatUint(uint64(billing.ID), 10),
	})
	if err != nil {
		t.Fatalf("record payment: %v", err)
	}
	if !entry.DepositAmount.Equal(dec("1000")) || entry.DepositKind != models.DepositKindSecurity {
		t.Fatalf("deposit slice = %s %q", entry.DepositAmount, entry.DepositKind)
	}

	if status := reloadBilling(t, db, billing.ID).Status; status != models.BillingStatusPartiallyPaid {
		t.Fatalf("billing status = %q, want Partially Paid", status)
	}

	var dep models.ClientDeposit
	err = db.Where("client_id = ? AND kind = ?", client.ID, models.DepositKindSecurity).First(&dep).Error
	if err != nil {
		t.Fatalf("load deposit: %v", err)
	}
	if !dep.Paid.Equal(dec("1000")) {
		t.Fatalf("deposit paid = %s, want 1000", dep.Paid)
	}
	if dep.LastDepositDate == nil {
		t.Fatal("last deposit date not stamped")
	}

	// -2000 - 950 + 1500
	balance, err := currentBalance(db, client.ID)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if !balance.Equal(dec("-1450")) {
		t.Fatalf("balance = %s, want -1450", balance)
	}
}

// Disabled clients stop accruing obligations but can still pay down
// what they already owe.
func TestRecordPaymentAcceptedForInactiveClient(t *testing.T) {
	db := newTestDB(t)
	client := seedTestClient(t, db)

	_, err := AddCharge(db, client.ID, ChargeInput{
		TrxType: models.ClientTrxPenalty,
		Amount:  dec("100"),
	})
	if err != nil {
		t.Fatalf("charge: %v", err)
	}

	if _, err := DisableClient(db, client.ID); err != nil {
		t.Fatalf("disable: %v", err)
	}

	_, err = AddCharge(db, client.ID, ChargeInput{
		TrxType: models.ClientTrxPenalty,
		Amount:  dec("50"),
	})
	if !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("charge on inactive client: err = %v, want ErrClientNotFound", err)
	}

	entry, err := RecordPayment(db, client.ID, PaymentInput{Amount: dec("100")})
	if err != nil {
		t.Fatalf("payment on inactive client: %v", err)
	}
	if !entry.BalanceAfter.IsZero() {
		t.Fatalf("balance after = %s, want 0", entry.BalanceAfter)
	}
}
