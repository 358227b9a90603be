package main

import (
	"errors"
	"flag"
	"fmt"
	"freight-tariff-service/internal/config"
	"freight-tariff-service/internal/domain"
	"freight-tariff-service/internal/report"
	"freight-tariff-service/internal/services"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
)

// accessorialFlags collects repeated -acc values.
type accessorialFlags []string

func (a *accessorialFlags) String() string { return strings.Join(*a, ", ") }

func (a *accessorialFlags) Set(v string) error {
	*a = append(*a, v)
	return nil
}

// optionalFloat records whether a float flag was given at all.
type optionalFloat struct {
	v   float64
	set bool
}

func (o *optionalFloat) String() string {
	if !o.set {
		return ""
	}
	return strconv.FormatFloat(o.v, 'f', -1, 64)
}

func (o *optionalFloat) Set(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	o.v, o.set = f, true
	return nil
}

func main() {
	log.SetFlags(0)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	engine := services.NewTariffEngine(domain.NovaXpressTariff().WithDefaultFuelPercent(cfg.FuelDefaultPercent))
	if err := run(os.Args[1:], os.Stdout, engine); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer, engine *services.TariffEngine) error {
	fs := flag.NewFlagSet("quote", flag.ContinueOnError)
	fs.SetOutput(out)

	var (
		accs     accessorialFlags
		override optionalFloat
	)
	distance := fs.Float64("distance", 50, "distance in km (0-500)")
	weight := fs.Float64("weight", 20, "shipment weight in lbs")
	ooaType := fs.String("ooa-type", "", `out-of-area type: FULL, "BACKHAUL EMPTY" or "BACKHAUL FULL" (enables out-of-area)`)
	ooaKm := fs.Float64("ooa-km", 0, "out-of-area km; a positive value enables out-of-area (type FULL unless -ooa-type is set)")
	fs.Var(&accs, "acc", "accessorial name, repeatable (see -list)")
	wait := fs.Float64("wait", 0, "wait time in minutes")
	stops := fs.Int("stops", 0, "extra stops at base rate")
	noFuel := fs.Bool("no-fuel", false, "do not apply the fuel surcharge")
	fs.Var(&override, "fuel", "fuel surcharge override in percent, e.g. 12")
	scenarios := fs.Bool("scenarios", false, "price the built-in example scenarios and exit")
	list := fs.Bool("list", false, "list accessorials and out-of-area types and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}

	switch {
	case *scenarios:
		return report.WriteScenarios(out, services.RunScenarios(engine))
	case *list:
		return writeOptions(out, engine.Tariff())
	}

	in := domain.ShipmentInput{
		DistanceKm:    *distance,
		WeightLbs:     *weight,
		OutOfAreaType: domain.OutOfAreaFull,
		OutOfAreaKm:   *ooaKm,
		Accessorials:  accs,
		WaitMinutes:   *wait,
		ExtraStops:    *stops,
		ApplyFuel:     !*noFuel,
	}
	if *ooaKm > 0 {
		in.OutOfArea = true
	}
	if t := strings.TrimSpace(*ooaType); t != "" {
		typ := domain.OutOfAreaType(strings.ToUpper(t))
		if _, ok := engine.Tariff().OutOfAreaRate(typ); !ok {
			return fmt.Errorf("unknown out-of-area type %q", t)
		}
		in.OutOfArea = true
		in.OutOfAreaType = typ
	}
	if override.set && in.ApplyFuel {
		in.FuelOverridePercent = &override.v
	}

	b, err := engine.Calculate(in)
	if err != nil {
		return err
	}
	return report.WriteBreakdown(out, b)
}

func writeOptions(out io.Writer, t *domain.Tariff) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "Accessorials:")
	for _, a := range t.Accessorials() {
		fmt.Fprintf(tw, "  %s\t%s\n", a.Name, report.Money(a.Charge))
	}
	fmt.Fprintln(tw, "Out-of-area types:")
	for _, r := range t.OutOfAreaRates() {
		fmt.Fprintf(tw, "  %s\t%s/km\n", r.Type, report.Money(r.PerKm))
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write options: %w", err)
	}
	return nil
}
