package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jasonnnn886/sheetstore/internal/seed"
)

var (
	seedProducts  int
	seedCustomers int
	seedOrders    int
	seedRandSeed  int64
)

func init() {
	seedCmd.Flags().IntVar(&seedProducts, "products", 10, "number of products")
	seedCmd.Flags().IntVar(&seedCustomers, "customers", 5, "number of customers")
	seedCmd.Flags().IntVar(&seedOrders, "orders", 20, "number of orders")
	seedCmd.Flags().Int64Var(&seedRandSeed, "rand-seed", 0, "random seed (0 means time-based)")
}

// sheetstore seed <file>
var seedCmd = &cobra.Command{
	Use:   "seed <file>",
	Short: "Generate a sample workbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rs := seedRandSeed
		if rs == 0 {
			rs = time.Now().UnixNano()
		}
		b, err := seed.Workbook(seed.Options{
			Products:  seedProducts,
			Customers: seedCustomers,
			Orders:    seedOrders,
			Seed:      rs,
		})
		if err != nil {
			return err
		}
		if err := b.SaveTo(args[0]); err != nil {
			return err
		}
		fmt.Println("sample workbook written to", args[0])
		return nil
	},
}
