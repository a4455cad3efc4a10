// Package analysis runs the interpolation and least-squares models for every
// core of a sample store and assembles the per-core text reports.
package analysis

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"cputemps/internal/models"
	"cputemps/pkg/interpolation"
	"cputemps/pkg/linalg"
	"cputemps/pkg/regression"
	"cputemps/pkg/samples"
)

// Params holds the analysis parameters
type Params struct {
	// Workers bounds how many cores are modeled at the same time.
	// Values below 1 are treated as 1.
	Workers int

	// PivotTolerance is the relative singularity threshold for the
	// least-squares solve. Zero selects linalg.DefaultPivotTolerance.
	PivotTolerance float64
}

// ChannelResult holds both models of one core and its rendered report
type ChannelResult struct {
	// Channel is the core number
	Channel int

	// Series is the data the models were computed from
	Series models.ChannelSeries

	// Segments is the piecewise-linear interpolation
	Segments []models.LineSegment

	// Line is the global least-squares fit
	Line models.GlobalLine

	// Report is the interpolation report followed by the least-squares line.
	// It is empty when Err is set.
	Report string

	// Err is the reason this core could not be modeled
	Err error
}

// OK reports whether the core was modeled successfully
func (r ChannelResult) OK() bool {
	return r.Err == nil
}

// Analyzer models every core of a sample store
type Analyzer struct {
	store  *samples.Store
	params *Params
	log    *zap.SugaredLogger
}

// NewAnalyzer creates an analyzer over store. A nil params selects a single
// worker and the default tolerance; a nil logger discards log output.
func NewAnalyzer(store *samples.Store, params *Params, logger *zap.SugaredLogger) *Analyzer {
	if params == nil {
		params = &Params{}
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Analyzer{
		store:  store,
		params: params,
		log:    logger,
	}
}

// Process models all cores. Cores are independent: a failing core is
// reported in its ChannelResult and in the returned error, and does not
// affect the others. The results are the same for any number of workers.
func (a *Analyzer) Process() ([models.NumCores]ChannelResult, error) {
	var results [models.NumCores]ChannelResult

	workers := a.params.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > models.NumCores {
		workers = models.NumCores
	}

	a.log.Debugw("modeling cores", "cores", models.NumCores, "readings", a.store.Len(), "workers", workers)

	resultChan := make(chan ChannelResult)
	sem := make(chan struct{}, workers)

	for c := 0; c < models.NumCores; c++ {
		go func(channel int) {
			sem <- struct{}{}
			defer func() { <-sem }()
			resultChan <- a.processChannel(channel)
		}(c)
	}

	var errs []error
	for completed := 0; completed < models.NumCores; completed++ {
		res := <-resultChan
		results[res.Channel] = res

		if res.Err != nil {
			a.log.Errorw("core could not be modeled", "core", res.Channel, "error", res.Err)
			continue
		}
		a.log.Debugw("core modeled",
			"core", res.Channel,
			"segments", len(res.Segments),
			"slope", res.Line.Slope,
			"intercept", res.Line.Intercept)
	}

	// Collected in core order so the joined error is deterministic
	for _, res := range results {
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
	}

	return results, errors.Join(errs...)
}

// processChannel computes both models of a single core
func (a *Analyzer) processChannel(channel int) ChannelResult {
	res := ChannelResult{Channel: channel}

	series, err := a.store.Series(channel)
	if err != nil {
		res.Err = fmt.Errorf("core %d: %w", channel, err)
		return res
	}
	res.Series = series

	segments, err := interpolation.Calculate(series.Times, series.Values)
	if err != nil {
		res.Err = fmt.Errorf("core %d: interpolation failed: %w", channel, err)
		return res
	}
	res.Segments = segments

	tolerance := a.params.PivotTolerance
	if tolerance == 0 {
		tolerance = linalg.DefaultPivotTolerance
	}
	line, err := regression.CalculateWithTolerance(series.Times, series.Values, tolerance)
	if err != nil {
		res.Err = fmt.Errorf("core %d: least-squares fit failed: %w", channel, err)
		return res
	}
	res.Line = line

	res.Report = interpolation.Format(segments, series.Times) + regression.Format(line, series.Times)
	return res
}
