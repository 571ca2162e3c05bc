package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"rtoctl/internal/api"
)

func init() {
	partiesCmd.Flags().String("search", "", "Filter parties by name")
	partiesCmd.Flags().Int("page", 1, "Page number")
	partiesCmd.Flags().Int("limit", 20, "Page size")
	rootCmd.AddCommand(partiesCmd)
}

var partiesCmd = &cobra.Command{
	Use:   "parties",
	Short: "List parties",
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

		search, _ := cmd.Flags().GetString("search")
		page, _ := cmd.Flags().GetInt("page")
		limit, _ := cmd.Flags().GetInt("limit")

		list, err := svc.client.ListParties(cmd.Context(), api.ListParams{Page: page, Limit: limit, Search: search})
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			exit(1)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tTYPE\tCONTACT\tBALANCE\tVEHICLES")
		for _, p := range list.Items {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.2f %s\t%d\n",
				p.ID, p.Name, p.TypeName, p.ContactNo, p.CurrentBalance, p.BalanceType, p.VehicleCount)
		}
		w.Flush()
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d total\n", list.Pagination.Total)
	},
}
