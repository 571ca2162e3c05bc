package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"rtoctl/internal/api"
)

func init() {
	ledgersCmd.Flags().Int("party", 0, "Show entries for one party only")
	ledgersCmd.Flags().Int("limit", 50, "Page size")
	rootCmd.AddCommand(ledgersCmd)
}

var ledgersCmd = &cobra.Command{
	Use:   "ledgers",
	Short: "List ledger entries and totals",
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

		partyID, _ := cmd.Flags().GetInt("party")
		limit, _ := cmd.Flags().GetInt("limit")

		var (
			list    *api.List[api.Ledger]
			summary *api.LedgerSummary
		)
		if partyID > 0 {
			list, err = svc.client.GetPartyLedger(cmd.Context(), partyID, api.ListParams{Limit: limit})
			if err == nil {
				summary, err = svc.client.GetPartyLedgerSummary(cmd.Context(), partyID)
			}
		} else {
			list, err = svc.client.ListLedgers(cmd.Context(), api.ListParams{Limit: limit})
			if err == nil {
				summary, err = svc.client.GetLedgerSummary(cmd.Context())
			}
		}
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			exit(1)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDATE\tTYPE\tAMOUNT\tBALANCE\tDESCRIPTION")
		for _, e := range list.Items {
			fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%.2f\t%s\n",
				e.ID, e.Date, e.Type, e.Amount, e.BalanceAfter, e.Description)
		}
		w.Flush()
		fmt.Fprintf(cmd.OutOrStdout(), "\ncredit %.2f, debit %.2f, balance %.2f\n",
			summary.TotalCredit, summary.TotalDebit, summary.Balance)
	},
}
