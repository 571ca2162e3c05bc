package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rtoctl/internal/api"
)

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the agency's headline numbers",
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

		stats, err := svc.client.GetDashboardStats(cmd.Context(), api.ListParams{})
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			exit(1)
		}
		status, err := svc.client.GetDocumentStatus(cmd.Context())
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			exit(1)
		}

		revenue, err := svc.client.GetMonthlyRevenue(cmd.Context(), api.ListParams{})
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			exit(1)
		}
		breakdown, err := svc.client.GetExpenseBreakdown(cmd.Context(), api.ListParams{})
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			exit(1)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Parties:    %d\n", stats.TotalParties)
		fmt.Fprintf(out, "Vehicles:   %d\n", stats.TotalVehicles)
		fmt.Fprintf(out, "Documents:  %d (%d valid, %d expiring, %d expired)\n",
			stats.TotalDocuments, status.Valid, status.Expiring, status.Expired)
		fmt.Fprintf(out, "Revenue:    %.2f this month\n", stats.MonthlyRevenue)
		fmt.Fprintf(out, "Expenses:   %.2f this month\n", stats.MonthlyExpenses)

		if len(revenue) > 0 {
			fmt.Fprintln(out, "\nRevenue by month:")
			for _, p := range revenue {
				fmt.Fprintf(out, "  %-10s %.2f\n", p.Month, p.Revenue)
			}
		}
		if len(breakdown) > 0 {
			fmt.Fprintln(out, "\nExpenses by category:")
			for _, s := range breakdown {
				fmt.Fprintf(out, "  %-20s %.2f\n", s.Category, s.Amount)
			}
		}
	},
}
