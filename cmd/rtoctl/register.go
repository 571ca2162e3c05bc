package main

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"rtoctl/internal/api"
	"rtoctl/internal/validation"
)

func init() {
	rootCmd.AddCommand(registerCmd)
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and sign in",
	Run: func(cmd *cobra.Command, args []string) {
		var answers struct {
			Name     string
			Email    string
			Mobile   string
			Business string
			Password string
			Confirm  string
		}
		questions := []*survey.Question{
			{Name: "name", Prompt: &survey.Input{Message: "Name:"}},
			{Name: "email", Prompt: &survey.Input{Message: "Email:"}},
			{Name: "mobile", Prompt: &survey.Input{Message: "Mobile (10 digits):"}},
			{Name: "business", Prompt: &survey.Input{Message: "Business name (optional):"}},
			{Name: "password", Prompt: &survey.Password{Message: "Password:"}},
			{Name: "confirm", Prompt: &survey.Password{Message: "Confirm password:"}},
		}
		if err := survey.Ask(questions, &answers); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			exit(1)
		}

		if err := validation.Register(answers.Name, answers.Email, answers.Mobile, answers.Password, answers.Confirm); err != nil {
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
		user, err := svc.session.Register(cmd.Context(), api.RegisterRequest{
			Name:     answers.Name,
			Email:    answers.Email,
			Mobile:   answers.Mobile,
			Business: answers.Business,
			Password: answers.Password,
		})
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			exit(1)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Account created for %s <%s>\n", user.Name, user.Email)
	},
}
