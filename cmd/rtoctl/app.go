package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rtoctl/internal/ui"
)

func init() {
	appCmd := &cobra.Command{
		Use:   "app",
		Short: "Launch the interactive TUI",
		Long:  `Launch the full-screen terminal UI. This is also what running rtoctl with no subcommand does.`,
		Run: func(cmd *cobra.Command, args []string) {
			runApp(cmd)
		},
	}
	rootCmd.AddCommand(appCmd)
}

func runApp(cmd *cobra.Command) {
	svc, err := newServices()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		exit(1)
	}
	defer svc.Close()

	if err := ui.Run(svc.session, svc.broker, svc.client); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		exit(1)
	}
}
