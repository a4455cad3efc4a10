// Package samples holds the raw multi-core temperature readings and exposes
// them as per-core time series.
package samples

import (
	"errors"
	"fmt"

	"cputemps/internal/models"
)

var (
	// ErrInputShape is returned when a reading does not carry one value per core
	ErrInputShape = errors.New("reading does not have one value per core")

	// ErrChannelOutOfRange is returned for a core index outside [0, NumCores)
	ErrChannelOutOfRange = errors.New("channel index out of range")
)

// Store is an immutable, column-oriented copy of the input readings.
// It is safe for concurrent readers.
type Store struct {
	times    []int64
	channels [models.NumCores][]float64
}

// NewStore builds a store from readings in acquisition order.
// A single malformed reading invalidates the whole input.
func NewStore(readings []models.Reading) (*Store, error) {
	s := &Store{
		times: make([]int64, 0, len(readings)),
	}
	for c := range s.channels {
		s.channels[c] = make([]float64, 0, len(readings))
	}

	for i, r := range readings {
		if len(r.Values) != models.NumCores {
			return nil, fmt.Errorf("reading %d at time %d has %d values, want %d: %w",
				i, r.Time, len(r.Values), models.NumCores, ErrInputShape)
		}
		s.times = append(s.times, r.Time)
		for c, v := range r.Values {
			s.channels[c] = append(s.channels[c], v)
		}
	}

	return s, nil
}

// Len returns the number of readings in the store
func (s *Store) Len() int {
	return len(s.times)
}

// Times returns the acquisition times in input order
func (s *Store) Times() []int64 {
	out := make([]int64, len(s.times))
	copy(out, s.times)
	return out
}

// ChannelValues returns the temperatures of one core, index-aligned with Times.
func (s *Store) ChannelValues(channel int) ([]float64, error) {
	if channel < 0 || channel >= models.NumCores {
		return nil, fmt.Errorf("channel %d: %w", channel, ErrChannelOutOfRange)
	}
	out := make([]float64, len(s.channels[channel]))
	copy(out, s.channels[channel])
	return out, nil
}

// Series returns the times and values of one core together
func (s *Store) Series(channel int) (models.ChannelSeries, error) {
	values, err := s.ChannelValues(channel)
	if err != nil {
		return models.ChannelSeries{}, err
	}
	return models.ChannelSeries{Times: s.Times(), Values: values}, nil
}
