package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckoutCmd(a *app) *cobra.Command {
	var place bool

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Reserve the cart against current stock, optionally placing the order",
		RunE: func(cmd *cobra.Command, args []string) error {
			flow := a.checkoutFlow()

			result, err := flow.Run(cmd.Context())
			if err != nil {
				return err
			}

			for _, warning := range result.Warnings {
				fmt.Printf("warn: %s\n", warning)
			}

			var total float64
			for _, line := range result.Reserved {
				fmt.Printf("#%d %s  x%d  @%.2f\n", line.ProductID, line.Name, line.Quantity, line.OfferPrice)
				total += line.OfferPrice * float64(line.Quantity)
			}
			fmt.Printf("reserved total %.2f\n", total)

			if !place {
				fmt.Println("run again with --place to place the order")

				return nil
			}

			placed, err := flow.PlaceOrder(cmd.Context(), result)
			if err != nil {
				return err
			}

			fmt.Printf("order placed: %s\n", placed.OrderID)

			return nil
		},
	}

	cmd.Flags().BoolVar(&place, "place", false, "place the order after reserving")

	return cmd
}

func newOrdersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "orders",
		Short: "List past orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			customerID, err := a.customerID()
			if err != nil {
				return err
			}

			orders, err := a.api.Orders(cmd.Context(), customerID)
			if err != nil {
				return err
			}

			if len(orders) == 0 {
				fmt.Println("no orders yet")

				return nil
			}

			for _, order := range orders {
				fmt.Printf("%s  %s  %.2f  %s\n", order.ID, order.Status, order.Total, order.CreatedAt)
			}

			return nil
		},
	}
}
