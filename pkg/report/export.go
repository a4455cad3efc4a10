package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"cputemps/internal/models"
	"cputemps/pkg/analysis"
)

// Format is the encoding of an exported model file
type Format int

const (
	// FormatJSON encodes models as indented JSON
	FormatJSON Format = iota
	// FormatMsgPack encodes models as MessagePack using the JSON field names
	FormatMsgPack
)

// String returns the configuration name of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatMsgPack:
		return "msgpack"
	default:
		return "unknown"
	}
}

// Extension returns the file extension used for the format
func (f Format) Extension() string {
	return f.String()
}

// ParseFormat maps a configuration name to a Format
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return FormatJSON, nil
	case "msgpack":
		return FormatMsgPack, nil
	default:
		return 0, fmt.Errorf("unknown model format %q", name)
	}
}

// CoreModels is the exported form of one core's models
type CoreModels struct {
	Core     int                  `json:"core"`
	Start    int64                `json:"start"`
	End      int64                `json:"end"`
	Times    []int64              `json:"times"`
	Segments []models.LineSegment `json:"segments"`
	Line     models.GlobalLine    `json:"leastSquares"`
}

// ModelSet is the exported document
type ModelSet struct {
	Cores []CoreModels `json:"cores"`
}

// BuildModelSet collects the models of every successfully modeled core
func BuildModelSet(results []analysis.ChannelResult) ModelSet {
	set := ModelSet{Cores: make([]CoreModels, 0, len(results))}
	for _, res := range results {
		if !res.OK() {
			continue
		}
		cm := CoreModels{
			Core:     res.Channel,
			Times:    res.Series.Times,
			Segments: res.Segments,
			Line:     res.Line,
		}
		if n := len(res.Series.Times); n > 0 {
			cm.Start = res.Series.Times[0]
			cm.End = res.Series.Times[n-1]
		}
		set.Cores = append(set.Cores, cm)
	}
	return set
}

// ExportModels encodes the models of every successfully modeled core to w
func ExportModels(w io.Writer, format Format, results []analysis.ChannelResult) error {
	set := BuildModelSet(results)

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(set); err != nil {
			return fmt.Errorf("error encoding models as json: %w", err)
		}
	case FormatMsgPack:
		enc := msgpack.NewEncoder(w)
		enc.SetCustomStructTag("json")
		if err := enc.Encode(set); err != nil {
			return fmt.Errorf("error encoding models as msgpack: %w", err)
		}
	default:
		return fmt.Errorf("unsupported model format %d", format)
	}

	return nil
}
