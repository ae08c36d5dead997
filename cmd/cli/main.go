package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var (
	baseURL string
	timeout time.Duration

	bcryptGenerate = bcrypt.GenerateFromPassword
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fundledger-cli",
		Short: "FundLedger CLI tool",
		Long:  `A command line interface for interacting with the FundLedger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the FundLedger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Ledger commands
	ledgerCmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger operations",
	}

	consistencyCmd := &cobra.Command{
		Use:   "consistency <ledger-id>",
		Short: "Check that a ledger's balance matches the sum of its details",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			checkConsistency(args[0])
		},
	}

	balanceCmd := &cobra.Command{
		Use:   "balance <ledger-id>",
		Short: "Show a ledger's running balance",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			showBalance(args[0])
		},
	}

	ledgerCmd.AddCommand(consistencyCmd)
	ledgerCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(ledgerCmd)

	// Detail commands
	detailCmd := &cobra.Command{
		Use:   "detail",
		Short: "Transaction detail operations",
	}

	detailGetCmd := &cobra.Command{
		Use:   "get <detail-id>",
		Short: "Show a transaction detail with its evidence",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			printJSON(getJSON("/api/v1/ledger-details/" + args[0]))
		},
	}

	detailCmd.AddCommand(detailGetCmd)
	rootCmd.AddCommand(detailCmd)

	rootCmd.AddCommand(hashPasswordCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func checkConsistency(ledgerID string) {
	result := getJSON("/api/v1/ledgers/" + ledgerID + "/consistency")

	if consistent, ok := result["consistent"].(bool); ok && consistent {
		fmt.Println("Consistency check PASSED")
	} else {
		fmt.Println("Consistency check FAILED")
		os.Exit(1)
	}
}

func showBalance(ledgerID string) {
	result := getJSON("/api/v1/ledgers/" + ledgerID)

	fmt.Printf("Ledger:  %s\n", result["id"])
	fmt.Printf("Name:    %s\n", result["name"])
	fmt.Printf("Balance: %v\n", result["total_balance"])
}

func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Hash a password for seeding users",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := bcryptGenerate([]byte(args[0]), bcrypt.DefaultCost)
			if err != nil {
				return err
			}

			fmt.Println(string(hash))

			return nil
		},
	}
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to format response: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(data))
}

func getJSON(path string) map[string]any {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	return result
}
