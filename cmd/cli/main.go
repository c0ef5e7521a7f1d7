package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "openbooks-cli",
		Short: "OpenBooks CLI tool",
		Long:  `A command line interface for interacting with the OpenBooks API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the OpenBooks API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	statementCmd := &cobra.Command{
		Use:   "statement",
		Short: "Customer statement operations",
	}
	statementCmd.AddCommand(statementShowCmd())
	statementCmd.AddCommand(statementVerifyCmd())
	rootCmd.AddCommand(statementCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

type statementEntry struct {
	ID            string          `json:"id"`
	EntryDate     string          `json:"entry_date"`
	Description   string          `json:"description"`
	BillReference string          `json:"bill_reference"`
	DebitAmount   decimal.Decimal `json:"debit_amount"`
	CreditAmount  decimal.Decimal `json:"credit_amount"`
	Balance       decimal.Decimal `json:"balance"`
	Kind          string          `json:"kind"`
	Status        string          `json:"status"`
}

type statement struct {
	CustomerID     string           `json:"customer_id"`
	Entries        []statementEntry `json:"entries"`
	ClosingBalance decimal.Decimal  `json:"closing_balance"`
}

func statementShowCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "show <customer-id>",
		Short: "Print a customer statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := fetchStatement(args[0], from, to)
			if err != nil {
				return err
			}

			fmt.Printf("Statement for %s (%d entries)\n", st.CustomerID, len(st.Entries))
			for _, e := range st.Entries {
				fmt.Printf("%-10s  %-30s  %12s  %12s  %12s\n",
					e.EntryDate, truncate(e.Description, 30),
					e.DebitAmount.StringFixed(2), e.CreditAmount.StringFixed(2), e.Balance.StringFixed(2))
			}
			fmt.Printf("Closing balance: %s\n", st.ClosingBalance.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "End date (YYYY-MM-DD)")
	return cmd
}

func statementVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <customer-id>",
		Short: "Recompute running balances client-side and compare with the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := fetchStatement(args[0], "", "")
			if err != nil {
				return err
			}

			mismatches := verifyBalances(st.Entries)
			if len(mismatches) > 0 {
				fmt.Printf("Verification FAILED: %d mismatched entries\n", len(mismatches))
				printJSON(mismatches)
				os.Exit(1)
			}

			fmt.Printf("Verification PASSED: %d entries, closing balance %s\n",
				len(st.Entries), st.ClosingBalance.StringFixed(2))
			return nil
		},
	}
	return cmd
}

type balanceMismatch struct {
	EntryID  string `json:"entry_id"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
}

// verifyBalances folds debit minus credit over the entries in statement
// order and reports every entry whose server-side balance differs.
func verifyBalances(entries []statementEntry) []balanceMismatch {
	var mismatches []balanceMismatch

	running := decimal.Zero
	for _, e := range entries {
		running = running.Add(e.DebitAmount).Sub(e.CreditAmount)
		if !running.Equal(e.Balance) {
			mismatches = append(mismatches, balanceMismatch{
				EntryID:  e.ID,
				Expected: running.StringFixed(2),
				Actual:   e.Balance.StringFixed(2),
			})
		}
	}
	return mismatches
}

func fetchStatement(customerID, from, to string) (*statement, error) {
	client := &http.Client{Timeout: timeout}

	u := fmt.Sprintf("%s/api/v1/customers/%s/statement", baseURL, url.PathEscape(customerID))
	q := url.Values{}
	if from != "" {
		q.Set("from", from)
	}
	if to != "" {
		q.Set("to", to)
	}
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	resp, err := client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var st statement
	if err := json.Unmarshal(body, &st); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &st, nil
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to marshal: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
