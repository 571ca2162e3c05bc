package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"rtoctl/internal/api"
	"rtoctl/internal/masters"
)

func init() {
	mastersCmd.Flags().Bool("describe", false, "Render the master-table catalog as formatted markdown")
	rootCmd.AddCommand(mastersCmd)
}

var mastersCmd = &cobra.Command{
	Use:   "masters [kind]",
	Short: "List master-data tables",
	Long: `List the records of one master table, or all tables when no kind is
given. Kinds: partyType, documentType, expenseCategory, paymentMode,
notificationType.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if describe, _ := cmd.Flags().GetBool("describe"); describe {
			describeMasters(cmd)
			return
		}

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

		schemas := masters.All()
		if len(args) == 1 {
			s, err := masters.Lookup(masters.Kind(args[0]))
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				exit(1)
				return
			}
			schemas = []masters.Schema{s}
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, s := range schemas {
			list, err := svc.client.ListMaster(cmd.Context(), s.BasePath, api.ListParams{Limit: 100})
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				exit(1)
				return
			}
			fmt.Fprintf(w, "%s\t\t\n", strings.ToUpper(s.Title))
			for _, rec := range list.Items {
				var marks []string
				if pre, _ := rec.Bool(s.IsPredefinedKey); pre {
					marks = append(marks, "predefined")
				}
				if active, ok := rec.Bool(s.IsActiveKey); ok && !active {
					marks = append(marks, "inactive")
				}
				id, _ := rec.Int(s.IDKey)
				fmt.Fprintf(w, "%d\t%s\t%s\n", id, rec.String(s.NameKey), strings.Join(marks, ","))
			}
			fmt.Fprintln(w, "\t\t")
		}
		w.Flush()
	},
}

func describeMasters(cmd *cobra.Command) {
	var md strings.Builder
	md.WriteString("# Master tables\n\n")
	for _, s := range masters.All() {
		fmt.Fprintf(&md, "## %s\n\n", s.Title)
		fmt.Fprintf(&md, "Endpoint: `%s`\n\n", s.BasePath)
		for _, f := range s.Fields {
			req := ""
			if f.Required {
				req = " (required)"
			}
			fmt.Fprintf(&md, "- **%s** [%s]%s\n", f.Label, f.Type, req)
		}
		md.WriteString("\n")
	}

	out, err := glamour.Render(md.String(), "dark")
	if err != nil {
		out = md.String()
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
}
