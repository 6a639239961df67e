// Command payctl drives the payment tracker API from the terminal: submit a
// payment, fetch one by id (triggering reconciliation), or list everything.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var baseURL string

func main() {
	rootCmd := &cobra.Command{
		Use:   "payctl",
		Short: "Payment tracker client",
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", envOr("PAYMENTS_URL", "http://localhost:8000"), "payment tracker base URL")

	rootCmd.AddCommand(submitCmd())
	rootCmd.AddCommand(getCmd())
	rootCmd.AddCommand(listCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func submitCmd() *cobra.Command {
	var (
		sender   string
		receiver string
		amount   float64
		memo     string
		idemKey  string
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a new payment",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, _ := json.Marshal(map[string]interface{}{
				"sender_account":   sender,
				"receiver_account": receiver,
				"amount":           amount,
				"memo":             memo,
			})

			req, err := http.NewRequest(http.MethodPost, baseURL+"/payments/", strings.NewReader(string(body)))
			if err != nil {
				return err
			}
			req.Header.Set("Content-Type", "application/json")
			if idemKey != "" {
				req.Header.Set("Idempotency-Key", idemKey)
			}

			return doRequest(req)
		},
	}

	cmd.Flags().StringVar(&sender, "sender", "", "sender account")
	cmd.Flags().StringVar(&receiver, "receiver", "", "receiver account")
	cmd.Flags().Float64Var(&amount, "amount", 0, "payment amount")
	cmd.Flags().StringVar(&memo, "memo", "", "optional memo")
	cmd.Flags().StringVar(&idemKey, "idempotency-key", "", "optional Idempotency-Key header")
	cmd.MarkFlagRequired("sender")
	cmd.MarkFlagRequired("receiver")
	cmd.MarkFlagRequired("amount")

	return cmd
}

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [id]",
		Short: "Fetch a payment by id and reconcile its status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := http.NewRequest(http.MethodGet, baseURL+"/payments/"+args[0], nil)
			if err != nil {
				return err
			}
			return doRequest(req)
		},
	}
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tracked payments",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := http.NewRequest(http.MethodGet, baseURL+"/payments/", nil)
			if err != nil {
				return err
			}
			return doRequest(req)
		},
	}
}

// doRequest executes the request and pretty-prints the JSON response.
func doRequest(req *http.Request) error {
	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		pretty.Reset()
		pretty.Write(body)
	}

	fmt.Println(pretty.String())
	if resp.StatusCode >= 400 {
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}
	return nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
