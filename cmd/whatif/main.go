// Command whatif runs the hiring-impact calculation offline, without the API
// or a database.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Dan9191/runway-service/internal/runway"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type options struct {
	cash, revenue, expenses    string
	salary, benefits, overhead string
	role                       string
	asJSON                     bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "whatif",
		Short: "Estimate how a new hire changes runway",
		Long:  "Compute burn, runway and risk before and after adding one hire's monthly cost.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.OutOrStdout(), opts)
		},
		SilenceUsage: true,
	}

	f := cmd.Flags()
	f.StringVar(&opts.cash, "cash", "", "Current cash")
	f.StringVar(&opts.revenue, "revenue", "0", "Monthly revenue")
	f.StringVar(&opts.expenses, "expenses", "", "Monthly expenses")
	f.StringVar(&opts.salary, "salary", "", "Hire monthly salary")
	f.StringVar(&opts.benefits, "benefits", "0", "Hire monthly benefits")
	f.StringVar(&opts.overhead, "overhead", "0", "Hire monthly overhead")
	f.StringVar(&opts.role, "role", "New hire", "Role title")
	f.BoolVar(&opts.asJSON, "json", false, "Print the result as JSON")
	for _, name := range []string{"cash", "expenses", "salary"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func run(out io.Writer, opts *options) error {
	amounts := map[string]*decimal.Decimal{}
	values := map[string]string{
		"cash": opts.cash, "revenue": opts.revenue, "expenses": opts.expenses,
		"salary": opts.salary, "benefits": opts.benefits, "overhead": opts.overhead,
	}
	for name, raw := range values {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return fmt.Errorf("invalid --%s %q: %w", name, raw, err)
		}
		amounts[name] = &d
	}

	now := time.Now()
	snapshot, err := runway.NewFinancialSnapshot(*amounts["cash"], *amounts["revenue"], *amounts["expenses"], now)
	if err != nil {
		return err
	}
	hire, err := runway.NewHireScenario(opts.role, *amounts["salary"], *amounts["benefits"], *amounts["overhead"], now)
	if err != nil {
		return err
	}

	impact := runway.CalculateHiringImpact(snapshot, hire)
	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(impact)
	}

	fmt.Fprintf(out, "Hiring %s (%s/month)\n", hire.RoleTitle(), hire.TotalMonthlyCost().StringFixed(2))
	fmt.Fprintf(out, "  Monthly burn:  %s -> %s (%s)\n",
		impact.CurrentMonthlyBurn.StringFixed(2), impact.NewMonthlyBurn.StringFixed(2), impact.BurnDelta.StringFixed(2))
	fmt.Fprintf(out, "  Runway months: %s -> %s (%s)\n",
		impact.CurrentRunwayMonths.StringFixed(2), impact.NewRunwayMonths.StringFixed(2), impact.RunwayDeltaMonths.StringFixed(2))
	fmt.Fprintf(out, "  Risk level:    %s\n", impact.RiskLevel)
	return nil
}
