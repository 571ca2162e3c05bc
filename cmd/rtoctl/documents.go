package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"rtoctl/internal/api"
)

func init() {
	documentsCmd.Flags().Bool("expiring", false, "Show only documents approaching expiry")
	documentsCmd.Flags().Bool("expired", false, "Show only expired documents")
	documentsCmd.Flags().Int("limit", 50, "Page size")

	documentsAddCmd.Flags().String("number", "", "Document number (required)")
	documentsAddCmd.Flags().Int("type", 0, "Document type id (required)")
	documentsAddCmd.Flags().Int("party", 0, "Party id (required)")
	documentsAddCmd.Flags().String("vehicle", "", "Vehicle number")
	documentsAddCmd.Flags().String("issue", "", "Issue date YYYY-MM-DD")
	documentsAddCmd.Flags().String("expiry", "", "Expiry date YYYY-MM-DD")
	documentsAddCmd.Flags().String("description", "", "Free-form description")
	documentsAddCmd.Flags().String("file", "", "Attachment to upload with the document")
	documentsAddCmd.MarkFlagRequired("number")
	documentsAddCmd.MarkFlagRequired("type")
	documentsAddCmd.MarkFlagRequired("party")

	documentsCmd.AddCommand(documentsAddCmd)
	rootCmd.AddCommand(documentsCmd)
}

var documentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "List and manage documents",
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

		limit, _ := cmd.Flags().GetInt("limit")
		expiring, _ := cmd.Flags().GetBool("expiring")
		expired, _ := cmd.Flags().GetBool("expired")

		var list *api.List[api.Document]
		switch {
		case expiring:
			list, err = svc.client.ListExpiringDocuments(cmd.Context(), api.ListParams{Limit: limit})
		case expired:
			list, err = svc.client.ListExpiredDocuments(cmd.Context())
		default:
			list, err = svc.client.ListDocuments(cmd.Context(), api.ListParams{Limit: limit})
		}
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			exit(1)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNUMBER\tVEHICLE\tISSUED\tEXPIRES")
		for _, d := range list.Items {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", d.ID, d.Number, d.VehicleNo, d.IssueDate, d.ExpiryDate)
		}
		w.Flush()
	},
}

var documentsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a document, optionally uploading an attachment",
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

		number, _ := cmd.Flags().GetString("number")
		typeID, _ := cmd.Flags().GetInt("type")
		partyID, _ := cmd.Flags().GetInt("party")
		vehicle, _ := cmd.Flags().GetString("vehicle")
		issue, _ := cmd.Flags().GetString("issue")
		expiry, _ := cmd.Flags().GetString("expiry")
		description, _ := cmd.Flags().GetString("description")
		file, _ := cmd.Flags().GetString("file")

		fields := map[string]string{
			"docNumber":      number,
			"docTypeId":      fmt.Sprintf("%d", typeID),
			"docPartyId":     fmt.Sprintf("%d", partyID),
			"docVehicleNo":   vehicle,
			"docIssueDate":   issue,
			"docExpiryDate":  expiry,
			"docDescription": description,
		}

		var doc *api.Document
		if file == "" {
			doc, err = svc.client.CreateDocument(cmd.Context(), fields, "", nil)
		} else {
			f, openErr := os.Open(file)
			if openErr != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: opening attachment: %v\n", openErr)
				exit(1)
				return
			}
			defer f.Close()
			doc, err = svc.client.CreateDocument(cmd.Context(), fields, filepath.Base(file), f)
		}
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			exit(1)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created document %s (id %d)\n", doc.Number, doc.ID)
	},
}
