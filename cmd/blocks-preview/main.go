package main

import (
	"fmt"
	"os"
	_ "time/tzdata"

	"github.com/alecthomas/kong"

	"github.com/m04kA/SMC-ClinicScheduleService/internal/domain"
	"github.com/m04kA/SMC-ClinicScheduleService/internal/preview"
	"github.com/m04kA/SMC-ClinicScheduleService/internal/resolver"
	"github.com/m04kA/SMC-ClinicScheduleService/pkg/civiltime"
	"github.com/m04kA/SMC-ClinicScheduleService/pkg/logger"
)

var CLI struct {
	Rules        string `help:"JSON file with recurring blocks." type:"existingfile" required:""`
	Appointments string `help:"JSON file with appointments." type:"existingfile"`
	From         string `help:"First date, YYYY-MM-DD." required:""`
	To           string `help:"Last date, YYYY-MM-DD (defaults to --from)."`
	Timezone     string `help:"Clinic IANA timezone." default:"America/Sao_Paulo" env:"APP_TIMEZONE"`
	Format       string `help:"Output format." enum:"table,json" default:"table"`
	LogLevel     string `help:"Log level for skipped rules." enum:"debug,info,warn,error" default:"warn"`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("blocks-preview"),
		kong.Description("Expands recurring agenda blocks for a date range, cutting out appointments."),
		kong.UsageOnError(),
	)

	if err := run(); err != nil {
		kctx.Errorf("%v", err)
		os.Exit(1)
	}
}

func run() error {
	log, err := logger.NewWithOutput(os.Stderr, CLI.LogLevel)
	if err != nil {
		return err
	}
	defer log.Close()

	zone, err := civiltime.LoadZone(CLI.Timezone)
	if err != nil {
		return err
	}

	from, err := zone.ParseDate(CLI.From)
	if err != nil {
		return err
	}
	to := from
	if CLI.To != "" {
		if to, err = zone.ParseDate(CLI.To); err != nil {
			return err
		}
	}

	days, err := zone.DayCount(from, to)
	if err != nil {
		return err
	}
	if days > domain.MaxCalendarRangeDays {
		return fmt.Errorf("range of %d days exceeds %d", days, domain.MaxCalendarRangeDays)
	}

	dates, err := zone.Dates(from, to)
	if err != nil {
		return err
	}

	rules, err := readRules(CLI.Rules)
	if err != nil {
		return err
	}

	appointments := []domain.Appointment{}
	if CLI.Appointments != "" {
		if appointments, err = readAppointments(CLI.Appointments); err != nil {
			return err
		}
	}

	blocks := resolver.NewResolver(zone, log, nil).ResolvePeriod(dates, rules, appointments)
	log.Info("resolved %d blocks from %d rules over %d days", len(blocks), len(rules), len(dates))

	return preview.Render(os.Stdout, blocks, zone, CLI.Format)
}

func readRules(path string) ([]domain.RecurringBlock, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return preview.ReadRules(f)
}

func readAppointments(path string) ([]domain.Appointment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return preview.ReadAppointments(f)
}
