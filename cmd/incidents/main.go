package main

import (
	"bytes"
	"os"

	"github.com/woozymasta/incidentmap/internal/config"
	"github.com/woozymasta/incidentmap/internal/incident"
	"github.com/woozymasta/incidentmap/internal/logger"
	"github.com/woozymasta/incidentmap/internal/processor"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config"     env:"CONFIG_FILE"        description:"Optional YAML file with extra country name corrections"`
	Incidents  string `short:"d" long:"incidents"  env:"INCIDENTS_CSV"      description:"Aircraft incident CSV" default:"data/Aircraft_Incident_Dataset.csv"`
	Boundaries string `short:"b" long:"boundaries" env:"BOUNDARIES_GEOJSON" description:"World boundaries GeoJSON with name and iso3 properties" default:"data/world-administrative-boundaries.geo.json"`
	Output     string `short:"o" long:"out"        env:"INCIDENTS_OUT"      description:"Output CSV path" default:"data/parsed_incident_data.csv"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	incidents, err := os.Open(opts.Incidents)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open incident dataset")
	}
	defer incidents.Close()

	boundaries, err := os.Open(opts.Boundaries)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open boundaries")
	}
	defer boundaries.Close()

	log.Info().
		Str("incidents", opts.Incidents).
		Str("boundaries", opts.Boundaries).
		Msg("Starting incident join")

	records, report, err := incident.Process(incidents, boundaries, cfg.Tables())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to process incidents")
	}

	logReport(report)

	var buf bytes.Buffer
	if err := incident.WriteCSV(&buf, records); err != nil {
		log.Fatal().Err(err).Msg("Failed to encode output")
	}
	if err := processor.SaveFile(opts.Output, buf.Bytes()); err != nil {
		log.Fatal().Err(err).Msg("Failed to write output")
	}

	log.Info().Str("path", opts.Output).Int("rows", len(records)).Msg("Incident data saved")
}

func logReport(r incident.Report) {
	log.Info().
		Int("read", r.Clean.Read).
		Int("dropped_date", r.Clean.DroppedDate).
		Int("dropped_unknown_country", r.Clean.DroppedUnknownCountry).
		Int("kept", r.Clean.Kept).
		Msg("Incidents cleaned")

	log.Info().
		Int("countries", r.Countries).
		Int("duplicates", len(r.Duplicates)).
		Int("joined", r.Join.Joined).
		Int("dropped", r.Join.Dropped).
		Msg("Country codes joined")

	for _, name := range r.UnmatchedNames() {
		log.Warn().
			Str("country", name).
			Int("rows", r.Join.Unmatched[name]).
			Msg("No ISO3 code for country")
	}
}
