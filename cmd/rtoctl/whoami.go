package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

func init() {
	whoamiCmd.Flags().Bool("full", false, "Render the full profile as formatted markdown")
	rootCmd.AddCommand(whoamiCmd)
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
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
		user := svc.session.User()

		full, _ := cmd.Flags().GetBool("full")
		if !full {
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", user.Name, user.Email)
			return
		}

		var md strings.Builder
		fmt.Fprintf(&md, "# %s\n\n", user.Name)
		fmt.Fprintf(&md, "- **Email**: %s\n", user.Email)
		fmt.Fprintf(&md, "- **Mobile**: %s\n", user.Mobile)
		if user.Business != "" {
			fmt.Fprintf(&md, "- **Business**: %s\n", user.Business)
		}
		if user.Address != "" {
			fmt.Fprintf(&md, "- **Address**: %s\n", user.Address)
		}

		out, err := glamour.Render(md.String(), "dark")
		if err != nil {
			// fall back to the raw markdown
			out = md.String()
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
	},
}
