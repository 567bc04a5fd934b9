// Package export writes query results to CSV or JSON.
//
// Both writers consume a lazy result stream and emit one record per close
// approach, with the fields of the linked NEO flattened in (CSV) or nested
// under a "neo" key (JSON). Approaches without a linked NEO export an empty
// name, NaN diameter and a false hazard flag.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"iter"
	"math"
	"strconv"

	"github.com/skywatch/neodb/codec"
	"github.com/skywatch/neodb/model"
)

type options struct {
	codec codec.Codec
}

// Option configures export behavior.
type Option func(*options)

// WithCodec configures the codec used for JSON output.
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		codec: codec.Default,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

// csvHeader is the stable column order of the CSV export.
var csvHeader = []string{
	"datetime_utc", "distance_au", "velocity_km_s",
	"designation", "name", "diameter_km", "potentially_hazardous",
}

// WriteCSV writes the approaches to w as CSV, one row per approach, with a
// header row. An unknown diameter is written as "nan" and an unknown
// distance or velocity as an empty cell.
func WriteCSV(w io.Writer, rows iter.Seq[*model.CloseApproach]) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("export: write CSV header: %w", err)
	}

	for ca := range rows {
		name := ""
		diameter := math.NaN()
		hazardous := false
		if neo, ok := ca.NEO(); ok {
			name, _ = neo.Name()
			diameter = neo.Diameter()
			hazardous = neo.Hazardous()
		}

		record := []string{
			ca.TimeStr(),
			formatFloat(ca.Distance(), ""),
			formatFloat(ca.Velocity(), ""),
			ca.Designation(),
			name,
			formatFloat(diameter, "nan"),
			strconv.FormatBool(hazardous),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("export: write CSV row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: flush CSV: %w", err)
	}
	return nil
}

func formatFloat(v float64, nan string) string {
	if math.IsNaN(v) {
		return nan
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteJSON writes the approaches to w as a JSON array of objects. The
// approach fields sit at the top level; the linked NEO's fields are nested
// under "neo". NaN is not representable in JSON, so unknown numeric values
// are emitted as null.
func WriteJSON(w io.Writer, rows iter.Seq[*model.CloseApproach], optFns ...Option) error {
	opts := applyOptions(optFns)

	records := []map[string]any{}
	for ca := range rows {
		record := ca.Serialize()
		record["distance_au"] = nullIfNaN(ca.Distance())
		record["velocity_km_s"] = nullIfNaN(ca.Velocity())
		delete(record, "designation")

		neoRecord := map[string]any{
			"designation":           ca.Designation(),
			"name":                  "",
			"diameter_km":           nil,
			"potentially_hazardous": false,
		}
		if neo, ok := ca.NEO(); ok {
			neoRecord = neo.Serialize()
			neoRecord["diameter_km"] = nullIfNaN(neo.Diameter())
		}
		record["neo"] = neoRecord

		records = append(records, record)
	}

	data, err := opts.codec.Marshal(records)
	if err != nil {
		return fmt.Errorf("export: marshal JSON: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("export: write JSON: %w", err)
	}
	return nil
}

func nullIfNaN(v float64) any {
	if math.IsNaN(v) {
		return nil
	}
	return v
}
