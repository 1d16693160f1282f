package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jasonnnn886/sheetstore/internal/core"
)

var (
	importSheet  string
	importExport string
	clearConfirm bool
)

func init() {
	importCmd.Flags().StringVar(&importSheet, "sheet", "",
		"import only this sheet (products, customers or orders)")
	importCmd.Flags().StringVar(&importExport, "export", "",
		"also export the data to this workbook after importing")

	clearCmd.Flags().BoolVar(&clearConfirm, "confirm", false,
		"confirm the deletion")
}

// sheetstore import <file>
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import data from a workbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, st, svc, err := boot()
		if err != nil {
			return err
		}
		defer st.Close()

		report, err := svc.Process(cmd.Context(), core.Request{
			Input:  args[0],
			Output: importExport,
			Sheet:  importSheet,
		})
		if err != nil {
			return err
		}
		fmt.Println(report)
		return nil
	},
}

// sheetstore export <file>
var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export all data to a workbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, st, svc, err := boot()
		if err != nil {
			return err
		}
		defer st.Close()

		report, err := svc.Process(cmd.Context(), core.Request{Output: args[0]})
		if err != nil {
			return err
		}
		fmt.Println(report)
		return nil
	},
}

// sheetstore clear
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all products, customers and orders",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !clearConfirm {
			fmt.Println("Warning: pass --confirm to delete all data. Nothing was deleted.")
			return nil
		}

		_, st, svc, err := boot()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := svc.Clear(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("all data cleared")
		return nil
	},
}
