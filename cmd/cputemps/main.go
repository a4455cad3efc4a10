package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"cputemps/pkg/analysis"
	"cputemps/pkg/config"
	"cputemps/pkg/report"
	"cputemps/pkg/samples"
)

// Exit codes
const (
	exitOK = iota
	exitUsage
	exitOpenInput
	exitAnalysis
	exitWrite
)

func main() {
	os.Exit(run(os.Args, os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(stdout)
	cfgFile := fs.String("config", "cputemps.yaml", "Path to config file")
	debug := fs.Bool("debug", false, "Turn on debugging output")
	if err := fs.Parse(args[1:]); err != nil {
		return exitUsage
	}

	// Validate inputs
	if fs.NArg() < 1 {
		fmt.Fprintf(stdout, "Usage: %s input_file_name\n", args[0])
		return exitUsage
	}
	inputPath := fs.Arg(0)

	cfg, err := config.LoadConfig(*cfgFile)
	if err != nil {
		fmt.Fprintf(stdout, "ERROR: %v\n", err)
		return exitUsage
	}

	// Set up our logger
	var zapLogger *zap.Logger
	if *debug || cfg.Output.Verbose {
		zapLogger, err = zap.NewDevelopment()
	} else {
		zapLogger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(stdout, "can't initialize zap logger: %v\n", err)
		return exitUsage
	}
	defer zapLogger.Sync()
	log := zapLogger.Sugar()

	input, err := os.Open(inputPath)
	if err != nil {
		fmt.Fprintf(stdout, "ERROR: %s could not be opened\n", inputPath)
		return exitOpenInput
	}
	readings, err := samples.ParseReadings(input, cfg.Processing.TimeStep)
	input.Close()
	if err != nil {
		log.Errorf("could not parse %s: %v", inputPath, err)
		return exitAnalysis
	}

	store, err := samples.NewStore(readings)
	if err != nil {
		log.Errorf("invalid input %s: %v", inputPath, err)
		return exitAnalysis
	}
	log.Infow("readings loaded", "path", inputPath, "readings", store.Len())

	analyzer := analysis.NewAnalyzer(store, &analysis.Params{
		Workers:        cfg.Processing.Workers,
		PivotTolerance: cfg.Processing.PivotTolerance,
	}, log)
	results, analysisErr := analyzer.Process()

	// Config was validated on load, so the names are known
	mode, err := report.ParseStemMode(cfg.Output.StemMode)
	if err != nil {
		log.Errorf("invalid stem mode: %v", err)
		return exitUsage
	}
	writer := report.NewWriter(cfg.Output.Dir, mode, log)

	var writeErr error
	if _, err := writer.WriteReports(inputPath, results[:]); err != nil {
		writeErr = err
	}
	if cfg.Output.ModelFormat != "" {
		format, err := report.ParseFormat(cfg.Output.ModelFormat)
		if err != nil {
			log.Errorf("invalid model format: %v", err)
			return exitUsage
		}
		if _, err := writer.WriteModels(inputPath, format, results[:]); err != nil {
			writeErr = errors.Join(writeErr, err)
		}
	}

	if writeErr != nil {
		log.Errorf("could not write output: %v", writeErr)
		return exitWrite
	}
	if analysisErr != nil {
		log.Errorf("some cores could not be modeled: %v", analysisErr)
		return exitAnalysis
	}

	return exitOK
}
