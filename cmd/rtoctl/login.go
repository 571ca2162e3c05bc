package main

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"rtoctl/internal/validation"
)

func init() {
	loginCmd.Flags().String("email", "", "Account email (prompted when omitted)")
	rootCmd.AddCommand(loginCmd)
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and persist the session locally",
	Long: `Sign in against the configured back office. The returned token and
profile are stored in the local database, so later commands and the TUI
start already authenticated.`,
	Run: func(cmd *cobra.Command, args []string) {
		email, _ := cmd.Flags().GetString("email")
		if email == "" {
			if err := survey.AskOne(&survey.Input{Message: "Email:"}, &email); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				exit(1)
			}
		}
		var password string
		if err := survey.AskOne(&survey.Password{Message: "Password:"}, &password); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			exit(1)
		}

		if err := validation.Login(email, password); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			exit(1)
		}

		svc, err := newServices()
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			exit(1)
		}
		defer svc.Close()

		svc.session.Restore(cmd.Context())
		user, err := svc.session.Login(cmd.Context(), email, password)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			exit(1)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s <%s>\n", user.Name, user.Email)
	},
}
