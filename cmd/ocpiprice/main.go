// Command ocpiprice prices a single OCPI CDR against its embedded
// tariffs and prints the resulting report as JSON.
//
// Usage:
//
//	ocpiprice cdr.json
package main

import (
	"encoding/json"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tandemdrive/ocpi-tariffs/internal/config"
	"github.com/tandemdrive/ocpi-tariffs/ocpi"
	"github.com/tandemdrive/ocpi-tariffs/pricer"
)

func main() {
	cfg := config.Load()
	zerolog.SetGlobalLevel(cfg.LogLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if len(os.Args) != 2 {
		log.Fatal().Msg("usage: ocpiprice <cdr.json>")
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatal().Err(err).Str("path", os.Args[1]).Msg("failed to read CDR file")
	}

	var cdr ocpi.Cdr
	if err := json.Unmarshal(data, &cdr); err != nil {
		log.Fatal().Err(err).Msg("failed to parse CDR")
	}

	report, err := pricer.New(cdr).DetectTimeZone(cfg.DetectTimeZone).BuildReport()
	if err != nil {
		log.Fatal().Err(err).Msg("pricing failed")
	}
	log.Info().Str("report_id", report.ID.String()).Msg("priced CDR")

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to render report")
	}

	os.Stdout.Write(out)
	os.Stdout.Write([]byte("\n"))
}
