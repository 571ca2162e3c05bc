package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(logoutCmd)
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the locally stored session",
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := newServices()
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			exit(1)
		}
		defer svc.Close()

		svc.session.Restore(cmd.Context())
		svc.session.Logout()
		fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
	},
}
