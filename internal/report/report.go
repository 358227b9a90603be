// Package report renders price breakdowns as plain-text tables for terminals.
package report

import (
	"fmt"
	"freight-tariff-service/internal/domain"
	"freight-tariff-service/internal/services"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"
)

// Money formats an amount as dollars with two decimals.
func Money(v float64) string {
	return "$" + decimal.NewFromFloat(v).StringFixed(2)
}

// Percent formats a decimal fraction as a percentage, e.g. 0.15 -> "15.00%".
func Percent(fraction float64) string {
	return decimal.NewFromFloat(fraction).Shift(2).StringFixed(2) + "%"
}

// WriteBreakdown writes the derived metrics followed by the component table.
func WriteBreakdown(w io.Writer, b domain.PriceBreakdown) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "Derived")
	fmt.Fprintf(tw, "  Zone\t%d\n", b.Zone)
	fmt.Fprintf(tw, "  Weight Bracket\t%s\n", b.WeightBracket)
	fmt.Fprintf(tw, "  Rate per lb\t%s\n", decimal.NewFromFloat(b.RatePerLb).StringFixed(3))
	fmt.Fprintf(tw, "  Minimum Charge by Zone\t%s\n", Money(b.MinimumCharge))
	fmt.Fprintf(tw, "  Base LTL\t%s\n", Money(b.BaseCharge))
	fmt.Fprintf(tw, "  Fuelable Subtotal\t%s\n", Money(b.FuelableSubtotal))
	fmt.Fprintf(tw, "  Fuel %% used\t%s\n", Percent(b.FuelPercent))
	fmt.Fprintf(tw, "  Fuel amount\t%s\n", Money(b.FuelAmount))
	fmt.Fprintf(tw, "  Grand Total\t%s\n", Money(b.GrandTotal))
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "Breakdown")
	fmt.Fprintln(tw, "  Component\tAmount ($)")
	for _, it := range b.Components() {
		fmt.Fprintf(tw, "  %s\t%s\n", it.Component, decimal.NewFromFloat(it.Amount).StringFixed(2))
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write breakdown: %w", err)
	}
	return nil
}

// WriteScenarios writes one row per scenario. Failed scenarios show their error
// in place of the numbers.
func WriteScenarios(w io.Writer, results []services.ScenarioResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "Scenario\tZone\tWeight Bracket\tRate per lb\tBase LTL\tOOA charge\t"+
		"Accessorials (non-fuel)\tWait Time charge\tExtra Stops amount\tFuelable Subtotal\t"+
		"Fuel % used\tFuel amount\tGrand Total")

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(tw, "%s\terror: %v\n", r.Name, r.Err)
			continue
		}
		b := r.Breakdown
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Name, b.Zone, b.WeightBracket,
			decimal.NewFromFloat(b.RatePerLb).StringFixed(3),
			Money(b.BaseCharge), Money(b.OutOfAreaCharge), Money(b.Accessorials),
			Money(b.WaitTimeCharge), Money(b.ExtraStopsAmount), Money(b.FuelableSubtotal),
			Percent(b.FuelPercent), Money(b.FuelAmount), Money(b.GrandTotal),
		)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write scenarios: %w", err)
	}
	return nil
}
