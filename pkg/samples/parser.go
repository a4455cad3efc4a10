package samples

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cputemps/internal/models"
)

// DefaultTimeStep is the number of seconds between two consecutive readings
const DefaultTimeStep int64 = 30

// ErrParse is returned when an input field is not a temperature
var ErrParse = errors.New("malformed temperature field")

// ParseReadings reads one reading per non-blank line. Fields are separated by
// whitespace and may be written as sensor output, e.g. "+61.0°C". The n-th
// reading (0-based) is stamped n*step.
//
// The number of fields per line is not checked here; NewStore rejects
// readings with the wrong shape.
func ParseReadings(r io.Reader, step int64) ([]models.Reading, error) {
	if step <= 0 {
		step = DefaultTimeStep
	}

	var readings []models.Reading
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		values := make([]float64, 0, len(fields))
		for _, field := range fields {
			v, err := parseTemperature(field)
			if err != nil {
				return nil, fmt.Errorf("line %d: %q: %w", lineNum, field, ErrParse)
			}
			values = append(values, v)
		}

		readings = append(readings, models.Reading{
			Time:   int64(len(readings)) * step,
			Values: values,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}

	return readings, nil
}

func parseTemperature(field string) (float64, error) {
	field = strings.TrimPrefix(field, "+")
	field = strings.TrimSuffix(field, "°C")
	field = strings.TrimSuffix(field, "C")
	return strconv.ParseFloat(field, 64)
}
