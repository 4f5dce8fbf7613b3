package main

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/MUNTAZIR1234/Invoice/internal/domain/billing"
)

func newWordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "words <amount>",
		Short: "Spell an amount in Indian-English words",
		Example: `  rentctl words 1234567
  rentctl words 25000.50`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(strings.ReplaceAll(args[0], ",", ""))
			if err != nil {
				return fmt.Errorf("amount %q is not a number", args[0])
			}
			if !billing.AmountInRange(amount) {
				return fmt.Errorf("amount %q exceeds %s", args[0], billing.MaxAmount)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "₹%s\n%s\n", billing.FormatINR(amount), billing.AmountInWords(amount))
			return nil
		},
	}
}

func newCycleCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "cycle",
		Short: "Show the current billing cycle and the cycles offered for new invoices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := c.services(cmd.Context())
			if err != nil {
				return err
			}
			resp := svc.Invoices.Cycle(cmd.Context())
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Today:   %s\n", resp.Today)
			fmt.Fprintf(out, "Current: %s (due %s)\n", resp.Current.Label, resp.Current.DueDate)
			for _, o := range resp.Options {
				fmt.Fprintf(out, "  %-8s %s\n", o.Half, o.Label)
			}
			return nil
		},
	}
}

func newNextIDCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "next-id",
		Short: "Print the id the next invoice will get",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := c.services(cmd.Context())
			if err != nil {
				return err
			}
			id, err := svc.Invoices.NextID(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
}

func newInvoiceCmd(c *cli) *cobra.Command {
	invoice := &cobra.Command{
		Use:   "invoice",
		Short: "Invoice documents",
	}

	var out string
	pdfCmd := &cobra.Command{
		Use:     "pdf <invoice-id>",
		Short:   "Render an invoice as PDF",
		Example: `  rentctl invoice pdf INV-007 -o invoices/INV-007.pdf`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := c.services(cmd.Context())
			if err != nil {
				return err
			}
			data, name, err := svc.InvoicePDF.DownloadInvoicePDF(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeOutput(cmd, out, name, data)
		},
	}
	pdfCmd.Flags().StringVarP(&out, "output", "o", "", "output file (- for stdout)")
	invoice.AddCommand(pdfCmd)
	return invoice
}
