package domain

import "testing"

func TestProductTypeForAccountTypeCoversEveryAccountType(t *testing.T) {
	tests := []struct {
		accountType AccountType
		want        ProductType
	}{
		{AccountTypeCurrent, ProductTypeCurrent},
		{AccountTypeSavings, ProductTypeSavings},
		{AccountTypeDeposit, ProductTypeDeposit},
		{AccountTypeCreditCard, ProductTypeCreditCard},
		{AccountTypeLoan, ProductTypeLoan},
		{AccountTypeInvestment, ProductTypeInvestment},
	}

	for _, tt := range tests {
		got, ok := ProductTypeForAccountType(tt.accountType)
		if !ok {
			t.Fatalf("no product type mapped for account type %s", tt.accountType)
		}
		if got != tt.want {
			t.Fatalf("product type for %s = %s, want %s", tt.accountType, got, tt.want)
		}
	}

	if len(tests) != len(accountTypeProducts) {
		t.Fatalf("mapping has %d entries, test covers %d", len(accountTypeProducts), len(tests))
	}
}

func TestProductTypeForAccountTypeUnknown(t *testing.T) {
	if _, ok := ProductTypeForAccountType(AccountType("CRYPTO")); ok {
		t.Fatal("unknown account type must not map to a product type")
	}
}
