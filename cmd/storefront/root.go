package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pulsarbalaji/storefront-client/config"
	"github.com/pulsarbalaji/storefront-client/internal/checkout"
	"github.com/pulsarbalaji/storefront-client/internal/client"
	"github.com/pulsarbalaji/storefront-client/internal/notification"
	"github.com/pulsarbalaji/storefront-client/internal/session"
	"github.com/pulsarbalaji/storefront-client/internal/store"
)

// app holds the wired-up client stack shared by every subcommand.
type app struct {
	cfg      *config.Config
	sessions *session.Manager
	cart     *store.CartStore
	api      *client.Client
}

func (a *app) pollInterval() time.Duration {
	return time.Duration(a.cfg.PollIntervalSec) * time.Second
}

// customerID returns the logged-in customer or an error suitable for
// direct printing.
func (a *app) customerID() (int, error) {
	sess, ok := a.sessions.Snapshot()
	if !ok {
		return 0, fmt.Errorf("not logged in")
	}

	return sess.User.CustomerID, nil
}

func (a *app) checkoutFlow() *checkout.Flow {
	return checkout.NewFlow(a.cart, a.api, a.sessions)
}

func (a *app) notificationPanel() (*notification.Panel, error) {
	customerID, err := a.customerID()
	if err != nil {
		return nil, err
	}

	return notification.NewPanel(a.api, customerID), nil
}

func newApp() (*app, error) {
	cfg := config.Load()

	sessionStore, err := store.NewFileStore(cfg.StateDir)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	cartStore, err := store.NewCartStore(cfg.StateDir)
	if err != nil {
		return nil, fmt.Errorf("open cart store: %w", err)
	}

	manager := session.NewManager(sessionStore, func() {
		fmt.Println("session expired, please log in again")
	})

	api := client.New(cfg, sessionStore, manager.ForceLogout)

	manager.RestoreOnStartup()

	return &app{
		cfg:      cfg,
		sessions: manager,
		cart:     cartStore,
		api:      api,
	}, nil
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "storefront",
		Short:        "Command line storefront client",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			built, err := newApp()
			if err != nil {
				return err
			}
			*a = *built

			return nil
		},
	}

	root.AddCommand(
		newLoginCmd(a),
		newOTPCmd(a),
		newGoogleCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newProductsCmd(a),
		newCartCmd(a),
		newCheckoutCmd(a),
		newOrdersCmd(a),
		newNotificationsCmd(a),
	)

	return root
}
