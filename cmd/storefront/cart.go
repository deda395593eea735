package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newProductsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "products [id]",
		Short: "List products, or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				id, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid product id %q", args[0])
				}

				p, err := a.api.Product(cmd.Context(), id)
				if err != nil {
					return err
				}

				fmt.Printf("#%d %s  %.2f (offer %.2f)  stock %d\n", p.ID, p.Name, p.Price, p.OfferPrice, p.Stock)

				return nil
			}

			products, err := a.api.Products(cmd.Context())
			if err != nil {
				return err
			}

			for _, p := range products {
				fmt.Printf("#%d %s  %.2f (offer %.2f)  stock %d\n", p.ID, p.Name, p.Price, p.OfferPrice, p.Stock)
			}

			return nil
		},
	}
}

func newCartCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the local cart",
	}

	add := &cobra.Command{
		Use:   "add <productID>",
		Short: "Add one unit of a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}

			p, err := a.api.Product(cmd.Context(), id)
			if err != nil {
				return err
			}

			if err := a.cart.Add(*p); err != nil {
				return err
			}

			fmt.Printf("added %s\n", p.Name)

			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "remove <productID>",
		Short: "Remove one unit of a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}

			if err := a.cart.Remove(id); err != nil {
				return err
			}

			fmt.Println("removed")

			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the cart contents",
		RunE: func(cmd *cobra.Command, args []string) error {
			lines := a.cart.Items()
			if len(lines) == 0 {
				fmt.Println("cart is empty")

				return nil
			}

			var total float64
			for _, line := range lines {
				fmt.Printf("#%d %s  x%d  @%.2f\n", line.ProductID, line.Name, line.Quantity, line.OfferPrice)
				total += line.OfferPrice * float64(line.Quantity)
			}
			fmt.Printf("total %.2f\n", total)

			return nil
		},
	}

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cart.Clear(); err != nil {
				return err
			}

			fmt.Println("cart cleared")

			return nil
		},
	}

	cmd.AddCommand(add, remove, show, clear)

	return cmd
}
