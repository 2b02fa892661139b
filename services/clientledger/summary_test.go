package clientledger

import (
	"testing"
	"time"

	"poinadmin/models"
)

func TestTotalDueFloorsAtZero(t *testing.T) {
	tests := []struct {
		name       string
		billingDue string
		depositDue string
		want       string
	}{
		{name: "both due", billingDue: "950", depositDue: "3000", want: "3950"},
		{name: "nothing due", billingDue: "0", depositDue: "0", want: "0"},
		{name: "credit floored", billingDue: "-100", depositDue: "0", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := totalDue(dec(tt.billingDue), dec(tt.depositDue))
			if !got.Equal(dec(tt.want)) {
				t.Fatalf("totalDue = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDepositShortfall(t *testing.T) {
	tests := []struct {
		name     string
		required string
		paid     string
		want     string
	}{
		{name: "partially funded", required: "5000", paid: "2000", want: "3000"},
		{name: "fully funded", required: "5000", paid: "5000", want: "0"},
		{name: "overfunded floored", required: "5000", paid: "6000", want: "0"},
		{name: "untouched", required: "5000", paid: "0", want: "5000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dep := models.ClientDeposit{Required: dec(tt.required), Paid: dec(tt.paid)}
			if got := dep.Shortfall(); !got.Equal(dec(tt.want)) {
				t.Fatalf("shortfall = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDepositDueSumsBothKinds(t *testing.T) {
	deposits := []models.ClientDeposit{
		{Kind: models.DepositKindSecurity, Required: dec("5000"), Paid: dec("2000")},
		{Kind: models.DepositKindAdditional, Required: dec("1000"), Paid: dec("1200")},
	}

	if got := depositDue(deposits); !got.Equal(dec("3000")) {
		t.Fatalf("depositDue = %s, want 3000", got)
	}

	if got := depositDue(nil); !got.IsZero() {
		t.Fatalf("depositDue(empty) = %s, want 0", got)
	}
}

func TestMonthStart(t *testing.T) {
	now := time.Date(2025, time.August, 23, 14, 30, 0, 0, time.UTC)
	want := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)
	if got := monthStart(now); !got.Equal(want) {
		t.Fatalf("monthStart = %v, want %v", got, want)
	}
}
