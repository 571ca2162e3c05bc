package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"rtoctl/internal/api"
)

func init() {
	expensesCmd.Flags().Int("limit", 50, "Page size")

	expensesAddCmd.Flags().Int("category", 0, "Expense category id (required)")
	expensesAddCmd.Flags().String("amount", "", "Amount (required)")
	expensesAddCmd.Flags().String("date", "", "Date YYYY-MM-DD")
	expensesAddCmd.Flags().Int("payment-mode", 0, "Payment mode id")
	expensesAddCmd.Flags().String("description", "", "Free-form description")
	expensesAddCmd.Flags().String("receipt", "", "Receipt file to upload")
	expensesAddCmd.MarkFlagRequired("category")
	expensesAddCmd.MarkFlagRequired("amount")

	expensesCmd.AddCommand(expensesAddCmd)
	rootCmd.AddCommand(expensesCmd)
}

var expensesCmd = &cobra.Command{
	Use:   "expenses",
	Short: "List and record expenses",
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := newServices()
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			exit(1)
		}
		defer svc.Close()

		if !requireSession(cmd, svc) {
			exit(1)
			return
		}

		limit, _ := cmd.Flags().GetInt("limit")
		list, err := svc.client.ListExpenses(cmd.Context(), api.ListParams{Limit: limit})
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			exit(1)
		}
		summary, err := svc.client.GetExpenseSummary(cmd.Context(), api.ListParams{})
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			exit(1)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDATE\tAMOUNT\tDESCRIPTION")
		for _, e := range list.Items {
			fmt.Fprintf(w, "%d\t%s\t%.2f\t%s\n", e.ID, e.Date, e.Amount, e.Description)
		}
		w.Flush()
		fmt.Fprintf(cmd.OutOrStdout(), "\ntotal %.2f\n", summary.Total)
	},
}

var expensesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record an expense, optionally with a receipt",
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := newServices()
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			exit(1)
		}
		defer svc.Close()

		if !requireSession(cmd, svc) {
			exit(1)
			return
		}

		category, _ := cmd.Flags().GetInt("category")
		amount, _ := cmd.Flags().GetString("amount")
		date, _ := cmd.Flags().GetString("date")
		paymentMode, _ := cmd.Flags().GetInt("payment-mode")
		description, _ := cmd.Flags().GetString("description")
		receipt, _ := cmd.Flags().GetString("receipt")

		fields := map[string]string{
			"expCategoryId":    fmt.Sprintf("%d", category),
			"expAmount":        amount,
			"expDate":          date,
			"expPaymentModeId": fmt.Sprintf("%d", paymentMode),
			"expDescription":   description,
		}

		var exp *api.Expense
		if receipt == "" {
			exp, err = svc.client.CreateExpense(cmd.Context(), fields, "", nil)
		} else {
			f, openErr := os.Open(receipt)
			if openErr != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: opening receipt: %v\n", openErr)
				exit(1)
				return
			}
			defer f.Close()
			exp, err = svc.client.CreateExpense(cmd.Context(), fields, filepath.Base(receipt), f)
		}
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			exit(1)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Recorded expense of %.2f (id %d)\n", exp.Amount, exp.ID)
	},
}
