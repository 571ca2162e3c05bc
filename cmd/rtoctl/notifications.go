package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rtoctl/internal/api"
	"rtoctl/internal/notify"
	"rtoctl/internal/telemetry"
)

func init() {
	notificationsCmd.Flags().Bool("read-all", false, "Mark every notification as read")
	notificationsCmd.Flags().Bool("forward", false, "Forward expiry notifications to Slack (needs notifications.slack.enabled)")
	notificationsCmd.Flags().Int("limit", 50, "Page size")
	rootCmd.AddCommand(notificationsCmd)
}

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "List expiry notifications",
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

		if readAll, _ := cmd.Flags().GetBool("read-all"); readAll {
			if err := svc.client.MarkAllNotificationsRead(cmd.Context()); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				exit(1)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All notifications marked read.")
			return
		}

		limit, _ := cmd.Flags().GetInt("limit")
		list, err := svc.client.ListNotifications(cmd.Context(), api.ListParams{Limit: limit})
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			exit(1)
		}
		unread, err := svc.client.GetUnreadCount(cmd.Context())
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			exit(1)
		}

		for _, n := range list.Items {
			marker := " "
			if !n.IsRead {
				marker = "*"
			}
			line := fmt.Sprintf("%s %s", marker, n.Message)
			if n.Party != "" {
				line += " (" + n.Party + ")"
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d unread\n", unread)

		if forward, _ := cmd.Flags().GetBool("forward"); forward {
			if !viper.GetBool("notifications.slack.enabled") {
				fmt.Fprintln(cmd.ErrOrStderr(), "Error: slack forwarding is disabled in config")
				exit(1)
			}
			manager := notify.NewManager(telemetry.LogInfof)
			var pending []api.Notification
			for _, n := range list.Items {
				if !n.IsRead {
					pending = append(pending, n)
				}
			}
			if err := manager.ForwardExpiries(cmd.Context(), pending); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				exit(1)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Forwarded %d notification(s) to Slack.\n", len(pending))
		}
	},
}
