package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MUNTAZIR1234/Invoice/internal/application/dto"
	"github.com/MUNTAZIR1234/Invoice/internal/application/report"
)

func newImportCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "import <tenants|properties> <file.csv>",
		Short: "Import tenants or properties from a CSV file",
		Example: `  rentctl import properties units.csv
  rentctl import tenants tenants.csv`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"tenants", "properties"},
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer f.Close()

			svc, err := c.services(cmd.Context())
			if err != nil {
				return err
			}
			var summary *dto.ImportSummary
			switch args[0] {
			case "tenants":
				summary, err = svc.Import.ImportTenants(f)
			case "properties":
				summary, err = svc.Import.ImportProperties(f)
			default:
				return fmt.Errorf("unknown import kind %q (tenants | properties)", args[0])
			}
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "imported %d, skipped %d\n", summary.Imported, summary.Skipped)
			for _, m := range summary.Messages {
				fmt.Fprintf(out, "  %s\n", m)
			}
			return nil
		},
	}
}

func newExportCmd(c *cli) *cobra.Command {
	var out, tenantID string
	names := make([]string, 0, len(report.Types))
	for _, t := range report.Types {
		names = append(names, string(t))
	}

	cmd := &cobra.Command{
		Use:   "export <" + strings.Join(names, "|") + ">",
		Short: "Export a report as CSV",
		Example: `  rentctl export invoices
  rentctl export ledger --tenant 6f1c... -o -`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, ok := report.ParseType(args[0])
			if !ok {
				return fmt.Errorf("unknown report %q (%s)", args[0], strings.Join(names, " | "))
			}
			svc, err := c.services(cmd.Context())
			if err != nil {
				return err
			}
			data, name, err := svc.Reports.ExportCSV(cmd.Context(), t, tenantID)
			if err != nil {
				return err
			}
			return writeOutput(cmd, out, name, data)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (- for stdout)")
	cmd.Flags().StringVar(&tenantID, "tenant", "", "tenant id (ledger report)")
	return cmd
}

func newBackupCmd(c *cli) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Write a JSON snapshot of every record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := c.services(cmd.Context())
			if err != nil {
				return err
			}
			data, name, err := svc.Backup.Export()
			if err != nil {
				return err
			}
			return writeOutput(cmd, out, name, data)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (- for stdout)")
	return cmd
}

func newRestoreCmd(c *cli) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "restore <backup.json>",
		Short: "Replace every record with a backup snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("restore replaces all current data; pass --yes to confirm")
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			svc, err := c.services(cmd.Context())
			if err != nil {
				return err
			}
			summary, err := svc.Backup.Restore(data)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "restored %d properties, %d tenants, %d invoices, %d expenses\n",
				summary.Properties, summary.Tenants, summary.Invoices, summary.Expenses)
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm replacing all data")
	return cmd
}
