package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/expense-tracker/backend/internal/cli"
	"github.com/expense-tracker/backend/internal/types"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Params struct {
	Month    string `descr:"Month to report on in YYYY-MM format, defaults to the current month" positional:"true" optional:"true"`
	Config   string `descr:"Path to a YAML settings file" optional:"true"`
	Import   string `descr:"CSV or XLSX file with expenses to add before reporting" optional:"true"`
	PDF      bool   `descr:"Write the report as PDF" optional:"true"`
	XLSX     bool   `descr:"Write the report as Excel workbook" optional:"true"`
	Expenses bool   `descr:"List every expense of the month" optional:"true"`
	Color    bool   `descr:"Color the budget status" optional:"true"`
	Verbose  bool   `descr:"Log debug messages" optional:"true"`
}

func main() {
	boa.NewCmdT[Params]("expense-report").
		WithShort("Print and export the monthly expense report").
		WithLong("Reads the expenses stored by the expense tracker backend, prints the report for a month and optionally writes it as PDF and XLSX file.").
		WithRunFunc(func(params *Params) {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
			if params.Verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

			if err := run(params); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}).
		Run()
}

func run(params *Params) error {
	settings, err := cli.LoadSettings(params.Config)
	if err != nil {
		return err
	}

	opts := cli.Options{
		Import:   params.Import,
		PDF:      params.PDF,
		XLSX:     params.XLSX,
		Expenses: params.Expenses,
		Color:    params.Color,
		Now:      time.Now(),
	}

	if params.Month != "" {
		opts.Month, err = types.ParseMonth(params.Month)
		if err != nil {
			return err
		}
	}

	return cli.Run(context.Background(), settings, opts, os.Stdout)
}
