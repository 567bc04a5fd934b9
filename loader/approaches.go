package loader

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/skywatch/neodb/model"
)

// cadDocument is the columnar layout of the NASA close approach data API:
// a fields header naming the columns, and one positional array per approach.
type cadDocument struct {
	Fields []string `json:"fields"`
	Data   [][]any  `json:"data"`
}

// LoadApproaches reads close approach data from a NASA cad JSON file.
// Column positions are resolved from the fields header; the required fields
// are des (designation), cd (calendar date), dist (distance in au) and
// v_rel (relative velocity in km/s).
func LoadApproaches(path string, optFns ...Option) ([]*model.CloseApproach, error) {
	opts := applyOptions(optFns)

	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("loader: read %s: %w", path, err)
	}

	var doc cadDocument
	if err := opts.codec.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("loader: decode %s: %w", path, err)
	}

	approaches, err := approachesFromDocument(doc, opts)
	if err != nil {
		return nil, fmt.Errorf("loader: %s: %w", path, err)
	}
	return approaches, nil
}

func approachesFromDocument(doc cadDocument, opts options) ([]*model.CloseApproach, error) {
	cols := make(map[string]int, len(doc.Fields))
	for i, name := range doc.Fields {
		cols[name] = i
	}
	for _, required := range []string{"des", "cd", "dist", "v_rel"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("cad document is missing required field %q", required)
		}
	}

	var (
		approaches []*model.CloseApproach
		skipped    int
	)
	for _, row := range doc.Data {
		ca, err := approachFromRow(row, cols)
		if err != nil {
			skipped++
			opts.warn("skipping approach row", "error", err)
			continue
		}
		approaches = append(approaches, ca)
	}

	if skipped > 0 {
		opts.warn("approach rows skipped", "count", skipped)
	}
	return approaches, nil
}

func approachFromRow(row []any, cols map[string]int) (*model.CloseApproach, error) {
	des, err := cell(row, cols["des"])
	if err != nil {
		return nil, fmt.Errorf("des: %w", err)
	}

	cd, err := cell(row, cols["cd"])
	if err != nil {
		return nil, fmt.Errorf("cd: %w", err)
	}

	// Empty distance and velocity cells stay unknown.
	dist, hasDist, err := numericCell(row, cols["dist"])
	if err != nil {
		return nil, fmt.Errorf("dist: %w", err)
	}

	vRel, hasVRel, err := numericCell(row, cols["v_rel"])
	if err != nil {
		return nil, fmt.Errorf("v_rel: %w", err)
	}

	// An empty calendar date stays an unknown time; an unparsable one
	// fails the row.
	var t time.Time
	if cd != "" {
		t, err = model.ParseApproachTime(cd)
		if err != nil {
			return nil, err
		}
	}

	return model.NewCloseApproach(des, func(o *model.ApproachOptions) {
		o.Time = t
		if hasDist {
			o.Distance = dist
		}
		if hasVRel {
			o.Velocity = vRel
		}
	})
}

// cell returns the row value at index i as a string. The cad API encodes
// every value as a JSON string or null.
func cell(row []any, i int) (string, error) {
	if i >= len(row) {
		return "", fmt.Errorf("row has %d cells, need index %d", len(row), i)
	}
	switch v := row[i].(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	default:
		return "", fmt.Errorf("unexpected cell type %T", v)
	}
}

func numericCell(row []any, i int) (float64, bool, error) {
	s, err := cell(row, i)
	if err != nil {
		return 0, false, err
	}
	if s == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, fmt.Errorf("parse %q: %w", s, err)
	}
	return v, true, nil
}
