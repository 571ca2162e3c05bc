package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"rtoctl/internal/api"
)

func init() {
	vehiclesCmd.Flags().Int("party", 0, "Party id (required)")
	vehiclesCmd.Flags().Int("limit", 50, "Page size")
	vehiclesCmd.MarkFlagRequired("party")

	vehiclesAddCmd.Flags().Int("party", 0, "Party id (required)")
	vehiclesAddCmd.Flags().String("number", "", "Vehicle number (required)")
	vehiclesAddCmd.MarkFlagRequired("party")
	vehiclesAddCmd.MarkFlagRequired("number")

	vehiclesUpdateCmd.Flags().String("number", "", "New vehicle number (required)")
	vehiclesUpdateCmd.MarkFlagRequired("number")

	vehiclesCmd.AddCommand(vehiclesAddCmd)
	vehiclesCmd.AddCommand(vehiclesUpdateCmd)
	rootCmd.AddCommand(vehiclesCmd)
}

var vehiclesCmd = &cobra.Command{
	Use:   "vehicles",
	Short: "List and manage a party's vehicles",
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

		list, err := svc.client.ListPartyVehicles(cmd.Context(), partyID, api.ListParams{Limit: limit})
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			exit(1)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNUMBER")
		for _, v := range list.Items {
			fmt.Fprintf(w, "%d\t%s\n", v.ID, v.Number)
		}
		w.Flush()
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d total\n", list.Pagination.Total)
	},
}

var vehiclesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a vehicle under a party",
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
		number, _ := cmd.Flags().GetString("number")

		created, err := svc.client.CreateVehicle(cmd.Context(), api.Vehicle{Number: number, PartyID: partyID})
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			exit(1)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Vehicle %s registered with id %d.\n", created.Number, created.ID)
	},
}

var vehiclesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change a vehicle's number",
	Args:  cobra.ExactArgs(1),
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

		id, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: vehicle id must be a number: %v\n", err)
			exit(1)
		}
		number, _ := cmd.Flags().GetString("number")

		updated, err := svc.client.UpdateVehicle(cmd.Context(), id, api.Vehicle{Number: number})
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			exit(1)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Vehicle %d is now %s.\n", updated.ID, updated.Number)
	},
}
