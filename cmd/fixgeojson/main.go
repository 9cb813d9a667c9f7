package main

import (
	"os"

	"github.com/woozymasta/incidentmap/internal/logger"
	"github.com/woozymasta/incidentmap/internal/processor"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Input   string `short:"i" long:"in"      env:"GEOJSON_IN"  description:"Input GeoJSON FeatureCollection" default:"data/world-administrative-boundaries.geo.json"`
	Output  string `short:"o" long:"out"     env:"GEOJSON_OUT" description:"Output file path" default:"data/world-administrative-boundaries-fixed.geo.json"`
	Compact bool   `long:"compact"           description:"Write minified JSON instead of indented"`
	DryRun  bool   `short:"n" long:"dry-run" description:"Rewind and report without writing the output"`
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

	data, err := processor.LoadFile(opts.Input)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read input")
	}

	rewound, stats, err := processor.Rewind(data)
	if err != nil {
		log.Fatal().Err(err).Str("path", opts.Input).Msg("Failed to rewind polygons")
	}

	output, err := encode(rewound, opts.Compact)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to encode output")
	}

	log.Info().
		Int("features", stats.Features).
		Int("polygons", stats.Polygons).
		Int("multipolygons", stats.MultiPolygons).
		Int("passthrough", stats.Passthrough).
		Int("rings", stats.Rings).
		Int("ccw_before", stats.CCWBefore).
		Int("ccw_after", stats.CCWAfter).
		Msg("Rings reversed")

	if opts.DryRun {
		log.Info().Int("bytes", len(output)).Msg("Dry run, output not written")
		return
	}

	if err := processor.SaveFile(opts.Output, output); err != nil {
		log.Fatal().Err(err).Msg("Failed to write output")
	}

	log.Info().Str("path", opts.Output).Int("bytes", len(output)).Msg("GeoJSON saved")
}

func encode(data []byte, compact bool) ([]byte, error) {
	if compact {
		return processor.Compact(data)
	}
	return processor.Indent(data), nil
}
