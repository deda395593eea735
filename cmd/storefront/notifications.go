package main

import (
	"fmt"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
)

func newNotificationsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"notify"},
		Short:   "View and manage notifications",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			panel, err := a.notificationPanel()
			if err != nil {
				return err
			}

			if err := panel.Refresh(cmd.Context()); err != nil {
				return err
			}

			items := panel.Items()
			if len(items) == 0 {
				fmt.Println("no notifications")

				return nil
			}

			for _, n := range items {
				marker := " "
				if !n.IsRead {
					marker = "*"
				}
				fmt.Printf("%s #%d [%s] %s\n", marker, n.ID, n.Type, n.Message)
			}
			fmt.Printf("%d unread\n", panel.Unread())

			return nil
		},
	}

	read := &cobra.Command{
		Use:   "read <id>",
		Short: "Mark one notification as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid notification id %q", args[0])
			}

			panel, err := a.notificationPanel()
			if err != nil {
				return err
			}

			if err := panel.Refresh(cmd.Context()); err != nil {
				return err
			}

			return panel.MarkRead(cmd.Context(), id)
		},
	}

	readAll := &cobra.Command{
		Use:   "read-all",
		Short: "Mark every notification as read",
		RunE: func(cmd *cobra.Command, args []string) error {
			panel, err := a.notificationPanel()
			if err != nil {
				return err
			}

			if err := panel.Refresh(cmd.Context()); err != nil {
				return err
			}

			return panel.MarkAllRead(cmd.Context())
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one notification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid notification id %q", args[0])
			}

			panel, err := a.notificationPanel()
			if err != nil {
				return err
			}

			if err := panel.Refresh(cmd.Context()); err != nil {
				return err
			}

			return panel.Delete(cmd.Context(), id)
		},
	}

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Delete every notification",
		RunE: func(cmd *cobra.Command, args []string) error {
			panel, err := a.notificationPanel()
			if err != nil {
				return err
			}

			return panel.ClearAll(cmd.Context())
		},
	}

	watch := &cobra.Command{
		Use:   "watch",
		Short: "Poll for notifications until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			panel, err := a.notificationPanel()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			fmt.Printf("polling every %s, ctrl-c to stop\n", a.pollInterval())
			panel.Poll(ctx, a.pollInterval())

			return nil
		},
	}

	cmd.AddCommand(list, read, readAll, del, clear, watch)

	return cmd
}
