package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/skywatch/neodb/export"
	"github.com/skywatch/neodb/filter"
)

type queryOptions struct {
	date      string
	startDate string
	endDate   string

	minDistance float64
	maxDistance float64
	minVelocity float64
	maxVelocity float64
	minDiameter float64
	maxDiameter float64

	hazardous    bool
	notHazardous bool

	limit   int
	outfile string
}

func newQueryCmd(root *rootOptions) *cobra.Command {
	opts := &queryOptions{}

	cmd := &cobra.Command{
		Use:   "query [criteria]",
		Short: "Query close approaches matching a set of criteria",
		Long: `Query close approaches that match all of the supplied criteria, sorted by
approach time. Without --outfile the first matches are printed (10 unless
--limit says otherwise); with --outfile all matches are written as CSV or
JSON, chosen by file extension.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			filters, err := opts.buildFilters(cmd)
			if err != nil {
				return err
			}

			db, err := root.openDatabase(cmd)
			if err != nil {
				return err
			}

			qb := db.Query(filters...).SortByTime()

			if opts.outfile == "" {
				limit := opts.limit
				if limit <= 0 {
					limit = 10
				}
				for ca := range qb.Limit(limit).Stream() {
					fmt.Fprintln(cmd.OutOrStdout(), ca)
				}
				return nil
			}

			f, err := os.Create(opts.outfile)
			if err != nil {
				return err
			}

			rows := qb.Limit(opts.limit).Stream()
			switch strings.ToLower(filepath.Ext(opts.outfile)) {
			case ".csv":
				err = export.WriteCSV(f, rows)
			case ".json":
				err = export.WriteJSON(f, rows)
			default:
				err = fmt.Errorf("unsupported output format %q (use .csv or .json)", opts.outfile)
			}
			if err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.date, "date", "", "approaches on this date (YYYY-MM-DD)")
	flags.StringVar(&opts.startDate, "start-date", "", "approaches on or after this date (YYYY-MM-DD)")
	flags.StringVar(&opts.endDate, "end-date", "", "approaches on or before this date (YYYY-MM-DD)")
	flags.Float64Var(&opts.minDistance, "min-distance", 0, "approach distance at least this far, in au")
	flags.Float64Var(&opts.maxDistance, "max-distance", 0, "approach distance at most this far, in au")
	flags.Float64Var(&opts.minVelocity, "min-velocity", 0, "approach velocity at least this fast, in km/s")
	flags.Float64Var(&opts.maxVelocity, "max-velocity", 0, "approach velocity at most this fast, in km/s")
	flags.Float64Var(&opts.minDiameter, "min-diameter", 0, "NEO diameter at least this large, in km")
	flags.Float64Var(&opts.maxDiameter, "max-diameter", 0, "NEO diameter at most this large, in km")
	flags.BoolVar(&opts.hazardous, "hazardous", false, "only potentially hazardous NEOs")
	flags.BoolVar(&opts.notHazardous, "not-hazardous", false, "only NEOs not classified as hazardous")
	flags.IntVar(&opts.limit, "limit", 0, "maximum number of results (0 = unlimited, 10 when printing)")
	flags.StringVar(&opts.outfile, "outfile", "", "write results to this .csv or .json file")

	return cmd
}

// buildFilters converts the supplied flags into a filter collection. Flags
// that were not set contribute no filter at all.
func (o *queryOptions) buildFilters(cmd *cobra.Command) ([]filter.Filter, error) {
	var filters []filter.Filter

	addDate := func(flag, value string, build func(time.Time) filter.Filter) error {
		if value == "" {
			return nil
		}
		t, err := time.ParseInLocation("2006-01-02", value, time.UTC)
		if err != nil {
			return fmt.Errorf("invalid --%s: %w", flag, err)
		}
		filters = append(filters, build(t))
		return nil
	}
	if err := addDate("date", o.date, filter.DateEquals); err != nil {
		return nil, err
	}
	if err := addDate("start-date", o.startDate, filter.DateMin); err != nil {
		return nil, err
	}
	if err := addDate("end-date", o.endDate, filter.DateMax); err != nil {
		return nil, err
	}

	addRange := func(flag string, value float64, build func(float64) (filter.Filter, error)) error {
		if !cmd.Flags().Changed(flag) {
			return nil
		}
		f, err := build(value)
		if err != nil {
			return fmt.Errorf("invalid --%s: %w", flag, err)
		}
		filters = append(filters, f)
		return nil
	}
	if err := addRange("min-distance", o.minDistance, filter.DistanceMin); err != nil {
		return nil, err
	}
	if err := addRange("max-distance", o.maxDistance, filter.DistanceMax); err != nil {
		return nil, err
	}
	if err := addRange("min-velocity", o.minVelocity, filter.VelocityMin); err != nil {
		return nil, err
	}
	if err := addRange("max-velocity", o.maxVelocity, filter.VelocityMax); err != nil {
		return nil, err
	}
	if err := addRange("min-diameter", o.minDiameter, filter.DiameterMin); err != nil {
		return nil, err
	}
	if err := addRange("max-diameter", o.maxDiameter, filter.DiameterMax); err != nil {
		return nil, err
	}

	if o.hazardous && o.notHazardous {
		return nil, fmt.Errorf("--hazardous and --not-hazardous are mutually exclusive")
	}
	if o.hazardous {
		filters = append(filters, filter.Hazardous(true))
	}
	if o.notHazardous {
		filters = append(filters, filter.Hazardous(false))
	}

	return filters, nil
}
