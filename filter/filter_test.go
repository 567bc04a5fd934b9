package filter

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/skywatch/neodb/model"
)

func mustNEO(t *testing.T, designation string, optFns ...func(o *model.NEOOptions)) *model.NearEarthObject {
	t.Helper()
	neo, err := model.NewNearEarthObject(designation, optFns...)
	if err != nil {
		t.Fatalf("NewNearEarthObject() error = %v", err)
	}
	return neo
}

func mustApproach(t *testing.T, designation string, optFns ...func(o *model.ApproachOptions)) *model.CloseApproach {
	t.Helper()
	ca, err := model.NewCloseApproach(designation, optFns...)
	if err != nil {
		t.Fatalf("NewCloseApproach() error = %v", err)
	}
	return ca
}

func mustLinked(t *testing.T, neo *model.NearEarthObject, ca *model.CloseApproach) *model.CloseApproach {
	t.Helper()
	if err := model.Link(neo, ca); err != nil {
		t.Fatalf("Link() error = %v", err)
	}
	return ca
}

func mustFilter(t *testing.T) func(Filter, error) Filter {
	return func(f Filter, err error) Filter {
		t.Helper()
		if err != nil {
			t.Fatalf("filter construction error = %v", err)
		}
		return f
	}
}

func TestFilterMatches(t *testing.T) {
	jan1 := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

	eros := mustNEO(t, "433", func(o *model.NEOOptions) {
		o.Name = "Eros"
		o.Diameter = 16.84
	})
	hazardous := mustNEO(t, "2020 PH", func(o *model.NEOOptions) {
		o.Hazardous = true
	})

	erosApproach := mustLinked(t, eros, mustApproach(t, "433", func(o *model.ApproachOptions) {
		o.Time = jan1.Add(6 * time.Hour)
		o.Distance = 0.15
		o.Velocity = 5.2
	}))
	hazardousApproach := mustLinked(t, hazardous, mustApproach(t, "2020 PH", func(o *model.ApproachOptions) {
		o.Time = jan1.AddDate(0, 0, 5)
		o.Distance = 0.02
		o.Velocity = 30.0
	}))
	orphan := mustApproach(t, "999", func(o *model.ApproachOptions) {
		o.Distance = 0.5
	})
	bare := mustApproach(t, "433")

	tests := []struct {
		name     string
		filter   Filter
		approach *model.CloseApproach
		want     bool
	}{
		{
			name:     "date equal matches same calendar day",
			filter:   DateEquals(jan1),
			approach: erosApproach,
			want:     true,
		},
		{
			name:     "date equal different day",
			filter:   DateEquals(jan1.AddDate(0, 0, 1)),
			approach: erosApproach,
			want:     false,
		},
		{
			name:     "date min inclusive",
			filter:   DateMin(jan1),
			approach: erosApproach,
			want:     true,
		},
		{
			name:     "date max inclusive",
			filter:   DateMax(jan1),
			approach: erosApproach,
			want:     true,
		},
		{
			name:     "date max excludes later approach",
			filter:   DateMax(jan1),
			approach: hazardousApproach,
			want:     false,
		},
		{
			name:     "unknown time never matches date",
			filter:   DateEquals(jan1),
			approach: bare,
			want:     false,
		},
		{
			name:     "distance max inclusive bound",
			filter:   mustFilter(t)(DistanceMax(0.15)),
			approach: erosApproach,
			want:     true,
		},
		{
			name:     "distance max excludes",
			filter:   mustFilter(t)(DistanceMax(0.05)),
			approach: erosApproach,
			want:     false,
		},
		{
			name:     "distance min",
			filter:   mustFilter(t)(DistanceMin(0.1)),
			approach: erosApproach,
			want:     true,
		},
		{
			name:     "NaN distance never in range",
			filter:   mustFilter(t)(DistanceMax(1000)),
			approach: bare,
			want:     false,
		},
		{
			name:     "velocity min",
			filter:   mustFilter(t)(VelocityMin(10)),
			approach: hazardousApproach,
			want:     true,
		},
		{
			name:     "velocity max",
			filter:   mustFilter(t)(VelocityMax(10)),
			approach: erosApproach,
			want:     true,
		},
		{
			name:     "diameter min",
			filter:   mustFilter(t)(DiameterMin(10)),
			approach: erosApproach,
			want:     true,
		},
		{
			name:     "diameter filter never matches unlinked approach",
			filter:   mustFilter(t)(DiameterMax(1000)),
			approach: orphan,
			want:     false,
		},
		{
			name:     "diameter filter never matches NaN diameter",
			filter:   mustFilter(t)(DiameterMax(1000)),
			approach: hazardousApproach,
			want:     false,
		},
		{
			name:     "hazardous true",
			filter:   Hazardous(true),
			approach: hazardousApproach,
			want:     true,
		},
		{
			name:     "hazardous false",
			filter:   Hazardous(false),
			approach: erosApproach,
			want:     true,
		},
		{
			name:     "hazardous never matches unlinked approach",
			filter:   Hazardous(false),
			approach: orphan,
			want:     false,
		},
		{
			name:     "designation matches without link",
			filter:   mustFilter(t)(Designation("999")),
			approach: orphan,
			want:     true,
		},
		{
			name:     "designation exact match only",
			filter:   mustFilter(t)(Designation("433")),
			approach: orphan,
			want:     false,
		},
		{
			name:     "name exact match",
			filter:   mustFilter(t)(Name("Eros")),
			approach: erosApproach,
			want:     true,
		},
		{
			name:     "name is case-sensitive",
			filter:   mustFilter(t)(Name("eros")),
			approach: erosApproach,
			want:     false,
		},
		{
			name:     "name never matches unnamed NEO",
			filter:   mustFilter(t)(Name("Eros")),
			approach: hazardousApproach,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Matches(tt.approach)
			if got != tt.want {
				t.Errorf("Filter.Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewRejectsMalformedFilters(t *testing.T) {
	jan1 := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		field Field
		op    Operator
		value any
	}{
		{"range operator on hazardous", FieldHazardous, OpMin, true},
		{"range operator on designation", FieldDesignation, OpMax, "433"},
		{"range operator on name", FieldName, OpMin, "Eros"},
		{"equality on distance", FieldDistance, OpEqual, 0.5},
		{"wrong operand type for date", FieldDate, OpEqual, "2020-01-01"},
		{"zero time", FieldDate, OpEqual, time.Time{}},
		{"NaN bound", FieldDistance, OpMin, math.NaN()},
		{"infinite bound", FieldVelocity, OpMax, math.Inf(1)},
		{"wrong operand type for diameter", FieldDiameter, OpMin, 5},
		{"empty designation", FieldDesignation, OpEqual, ""},
		{"empty name", FieldName, OpEqual, ""},
		{"wrong operand type for hazardous", FieldHazardous, OpEqual, "true"},
		{"unknown field", Field(99), OpEqual, jan1},
		{"unknown operator", FieldDate, Operator("between"), jan1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.field, tt.op, tt.value)
			if err == nil {
				t.Fatalf("New(%v, %v, %v) expected error", tt.field, tt.op, tt.value)
			}

			var opErr *ErrUnsupportedOperator
			var operandErr *ErrInvalidOperand
			if !errors.As(err, &opErr) && !errors.As(err, &operandErr) {
				t.Errorf("New() error = %v, want typed filter error", err)
			}
		})
	}
}

func TestSetMatches(t *testing.T) {
	jan1 := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

	eros := mustNEO(t, "433", func(o *model.NEOOptions) {
		o.Name = "Eros"
		o.Diameter = 16.84
	})
	approach := mustLinked(t, eros, mustApproach(t, "433", func(o *model.ApproachOptions) {
		o.Time = jan1
		o.Distance = 0.15
		o.Velocity = 5.2
	}))

	t.Run("EmptySetMatchesEverything", func(t *testing.T) {
		if !NewSet().Matches(approach) {
			t.Error("empty Set.Matches() = false, want true")
		}
	})

	t.Run("AllMustMatch", func(t *testing.T) {
		fs := NewSet(
			DateEquals(jan1),
			mustFilter(t)(DistanceMax(0.2)),
			Hazardous(false),
		)
		if !fs.Matches(approach) {
			t.Error("Set.Matches() = false, want true")
		}
	})

	t.Run("OneFailingFilterFailsTheSet", func(t *testing.T) {
		fs := NewSet(
			DateEquals(jan1),
			mustFilter(t)(DistanceMax(0.05)),
		)
		if fs.Matches(approach) {
			t.Error("Set.Matches() = true, want false")
		}
	})
}

func TestFilterString(t *testing.T) {
	tests := []struct {
		filter Filter
		want   string
	}{
		{DateEquals(time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)), "date eq 2020-01-01"},
		{mustFilter(t)(DistanceMax(0.05)), "distance max 0.05"},
		{Hazardous(true), "hazardous eq true"},
		{mustFilter(t)(Name("Eros")), "name eq Eros"},
	}

	for _, tt := range tests {
		if got := tt.filter.String(); got != tt.want {
			t.Errorf("Filter.String() = %q, want %q", got, tt.want)
		}
	}
}
