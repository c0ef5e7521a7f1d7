package main

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/shopspring/decimal"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read stdout: %v", err)
	}
	return buf.String()
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("expected short unchanged, got %q", got)
	}

	if got := truncate("longerstring", 6); got != "lon..." {
		t.Fatalf("expected lon..., got %q", got)
	}
}

func TestPrintJSON(t *testing.T) {
	out := captureOutput(t, func() {
		printJSON(struct {
			A int `json:"a"`
		}{A: 1})
	})

	expected := "{\n  \"a\": 1\n}\n"
	if out != expected {
		t.Fatalf("unexpected json output:\n%s", out)
	}
}

func TestVerifyBalancesClean(t *testing.T) {
	entries := []statementEntry{
		{ID: "e1", DebitAmount: dec("100"), Balance: dec("100")},
		{ID: "e2", CreditAmount: dec("40"), Balance: dec("60")},
		{ID: "e3", DebitAmount: dec("17.70"), Balance: dec("77.70")},
	}

	if mismatches := verifyBalances(entries); len(mismatches) != 0 {
		t.Fatalf("expected no mismatches, got %v", mismatches)
	}
}

func TestVerifyBalancesMismatch(t *testing.T) {
	entries := []statementEntry{
		{ID: "e1", DebitAmount: dec("100"), Balance: dec("100")},
		{ID: "e2", CreditAmount: dec("40"), Balance: dec("50")},
	}

	mismatches := verifyBalances(entries)
	if len(mismatches) != 1 {
		t.Fatalf("expected 1 mismatch, got %d", len(mismatches))
	}
	if mismatches[0].EntryID != "e2" {
		t.Fatalf("expected mismatch on e2, got %s", mismatches[0].EntryID)
	}
	if mismatches[0].Expected != "60.00" || mismatches[0].Actual != "50.00" {
		t.Fatalf("unexpected mismatch values: %+v", mismatches[0])
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
