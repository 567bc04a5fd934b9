package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/skywatch/neodb/model"
)

// LoadNEOs reads near-Earth object data from a NASA small-body database CSV
// file. The required columns are pdes (primary designation), name, diameter
// and pha; any further columns are ignored.
func LoadNEOs(path string, optFns ...Option) ([]*model.NearEarthObject, error) {
	opts := applyOptions(optFns)

	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	neos, err := readNEOs(rc, opts)
	if err != nil {
		return nil, fmt.Errorf("loader: %s: %w", path, err)
	}
	return neos, nil
}

func readNEOs(r io.Reader, opts options) ([]*model.NearEarthObject, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, required := range []string{"pdes", "name", "diameter", "pha"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("CSV is missing required column %q", required)
		}
	}

	var (
		neos    []*model.NearEarthObject
		skipped int
	)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read CSV row: %w", err)
		}

		neo, err := neoFromRow(row, cols)
		if err != nil {
			skipped++
			opts.warn("skipping NEO row", "error", err)
			continue
		}
		neos = append(neos, neo)
	}

	if skipped > 0 {
		opts.warn("NEO rows skipped", "count", skipped)
	}
	return neos, nil
}

func neoFromRow(row []string, cols map[string]int) (*model.NearEarthObject, error) {
	var diameter float64
	hasDiameter := false
	if s := row[cols["diameter"]]; s != "" {
		var err error
		diameter, err = strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("parse diameter %q: %w", s, err)
		}
		hasDiameter = true
	}

	return model.NewNearEarthObject(row[cols["pdes"]], func(o *model.NEOOptions) {
		o.Name = row[cols["name"]]
		if hasDiameter {
			o.Diameter = diameter
		}
		o.Hazardous = row[cols["pha"]] == "Y"
	})
}
