package moneybox

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		err   bool
	}{
		{"50", 50, false},
		{"1300.25", 1300.25, false},
		{"1,234.56", 1234.56, false},
		{"  42 ", 42, false},
		{"", 0, true},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMoney(tt.input, "USD")
			if tt.err {
				if err == nil {
					t.Fatalf("ParseMoney(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMoney(%q) unexpected error: %v", tt.input, err)
			}
			if !got.Equal(usd(tt.want)) {
				t.Errorf("ParseMoney(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseMoney_RoundsToMinorUnit(t *testing.T) {
	got, err := ParseMoney("10.999", "USD")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(usd(11)) {
		t.Errorf("ParseMoney(\"10.999\") = %v, want 11.00", got)
	}

	// The parsed value survives persistence unchanged.
	data, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Money
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(got) {
		t.Errorf("round trip = %v, want %v", back, got)
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	balance := usd(1000).Sub(usd(1300))
	if !balance.IsNegative() {
		t.Error("1000 - 1300 should be negative")
	}
	if !balance.Equal(usd(-300)) {
		t.Errorf("balance = %v, want -300", balance)
	}
	if !balance.Neg().Equal(usd(300)) {
		t.Errorf("Neg() = %v, want 300", balance.Neg())
	}
}

func TestMoney_Masked(t *testing.T) {
	m := usd(1234.56)
	masked := m.Masked()
	if strings.ContainsAny(masked, "0123456789") {
		t.Errorf("Masked() = %q leaks digits", masked)
	}
	if !strings.HasPrefix(masked, "$") {
		t.Errorf("Masked() = %q lost the currency symbol", masked)
	}
}

func TestMoney_JSONRoundTrip(t *testing.T) {
	m := usd(1234.56)
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Money
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(m) {
		t.Errorf("round trip = %v, want %v", back, m)
	}
	if back.Currency() != "USD" {
		t.Errorf("Currency() = %q, want USD", back.Currency())
	}
}
