package model

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNearEarthObject(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		neo, err := NewNearEarthObject("2020 AB")
		require.NoError(t, err)

		assert.Equal(t, "2020 AB", neo.Designation())

		_, ok := neo.Name()
		assert.False(t, ok)

		assert.True(t, math.IsNaN(neo.Diameter()))
		assert.False(t, neo.Hazardous())
		assert.Empty(t, neo.Approaches())
	})

	t.Run("AllOptions", func(t *testing.T) {
		neo, err := NewNearEarthObject("433", func(o *NEOOptions) {
			o.Name = "Eros"
			o.Diameter = 16.84
			o.Hazardous = false
		})
		require.NoError(t, err)

		name, ok := neo.Name()
		require.True(t, ok)
		assert.Equal(t, "Eros", name)
		assert.Equal(t, 16.84, neo.Diameter())
	})

	t.Run("EmptyDesignation", func(t *testing.T) {
		_, err := NewNearEarthObject("")
		assert.ErrorIs(t, err, ErrEmptyDesignation)
	})

	t.Run("InvalidDiameter", func(t *testing.T) {
		for _, d := range []float64{-1, math.Inf(1), math.Inf(-1)} {
			_, err := NewNearEarthObject("433", func(o *NEOOptions) {
				o.Diameter = d
			})
			var invalid *ErrInvalidValue
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, "diameter", invalid.Field)
		}
	})

	t.Run("NaNDiameterIsNotAnError", func(t *testing.T) {
		neo, err := NewNearEarthObject("433", func(o *NEOOptions) {
			o.Diameter = math.NaN()
		})
		require.NoError(t, err)
		assert.True(t, math.IsNaN(neo.Diameter()))
	})
}

func TestNearEarthObjectFullname(t *testing.T) {
	named, err := NewNearEarthObject("433", func(o *NEOOptions) { o.Name = "Eros" })
	require.NoError(t, err)
	assert.Equal(t, "433 (Eros)", named.Fullname())

	unnamed, err := NewNearEarthObject("2020 AB")
	require.NoError(t, err)
	assert.Equal(t, "2020 AB", unnamed.Fullname())
}

func TestNearEarthObjectString(t *testing.T) {
	neo, err := NewNearEarthObject("433", func(o *NEOOptions) {
		o.Name = "Eros"
		o.Diameter = 16.84
	})
	require.NoError(t, err)
	assert.Equal(t, "NEO 433 (Eros) has a diameter of 16.840 km and is not potentially hazardous.", neo.String())

	unknown, err := NewNearEarthObject("2020 AB", func(o *NEOOptions) { o.Hazardous = true })
	require.NoError(t, err)
	assert.Equal(t, "NEO 2020 AB is potentially hazardous.", unknown.String())
}

func TestNearEarthObjectSerialize(t *testing.T) {
	neo, err := NewNearEarthObject("433", func(o *NEOOptions) {
		o.Name = "Eros"
		o.Diameter = 16.84
		o.Hazardous = false
	})
	require.NoError(t, err)

	got := neo.Serialize()
	assert.Equal(t, "433", got["designation"])
	assert.Equal(t, "Eros", got["name"])
	assert.Equal(t, 16.84, got["diameter_km"])
	assert.Equal(t, false, got["potentially_hazardous"])
}

func TestNewCloseApproach(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		ca, err := NewCloseApproach("433")
		require.NoError(t, err)

		assert.Equal(t, "433", ca.Designation())

		_, ok := ca.Time()
		assert.False(t, ok)

		assert.True(t, math.IsNaN(ca.Distance()))
		assert.True(t, math.IsNaN(ca.Velocity()))

		_, linked := ca.NEO()
		assert.False(t, linked)
	})

	t.Run("AllOptions", func(t *testing.T) {
		when := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
		ca, err := NewCloseApproach("433", func(o *ApproachOptions) {
			o.Time = when
			o.Distance = 0.15
			o.Velocity = 5.2
		})
		require.NoError(t, err)

		got, ok := ca.Time()
		require.True(t, ok)
		assert.True(t, got.Equal(when))
		assert.Equal(t, 0.15, ca.Distance())
		assert.Equal(t, 5.2, ca.Velocity())
	})

	t.Run("EmptyDesignation", func(t *testing.T) {
		_, err := NewCloseApproach("")
		assert.ErrorIs(t, err, ErrEmptyDesignation)
	})

	t.Run("InvalidValues", func(t *testing.T) {
		_, err := NewCloseApproach("433", func(o *ApproachOptions) {
			o.Distance = -0.1
		})
		var invalid *ErrInvalidValue
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "distance", invalid.Field)

		_, err = NewCloseApproach("433", func(o *ApproachOptions) {
			o.Velocity = math.Inf(1)
		})
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "velocity", invalid.Field)
	})
}

func TestParseApproachTime(t *testing.T) {
	got, err := ParseApproachTime("2020-Jan-01 12:30")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2020, time.January, 1, 12, 30, 0, 0, time.UTC)))

	_, err = ParseApproachTime("2020-01-01 12:30")
	assert.Error(t, err)
}

func TestCloseApproachTimeStr(t *testing.T) {
	ca, err := NewCloseApproach("433", func(o *ApproachOptions) {
		o.Time = time.Date(2020, time.January, 1, 12, 30, 45, 0, time.UTC)
	})
	require.NoError(t, err)
	// Seconds are not part of the display precision.
	assert.Equal(t, "2020-01-01 12:30", ca.TimeStr())

	unknown, err := NewCloseApproach("433")
	require.NoError(t, err)
	assert.Equal(t, "an unknown time", unknown.TimeStr())
}

func TestCloseApproachSerialize(t *testing.T) {
	ca, err := NewCloseApproach("433", func(o *ApproachOptions) {
		o.Time = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
		o.Distance = 0.15
		o.Velocity = 5.2
	})
	require.NoError(t, err)

	got := ca.Serialize()
	assert.Equal(t, "2020-01-01 00:00", got["datetime_utc"])
	assert.Equal(t, 0.15, got["distance_au"])
	assert.Equal(t, 5.2, got["velocity_km_s"])
	assert.Equal(t, "433", got["designation"])
}

func TestLink(t *testing.T) {
	t.Run("SetsBothSides", func(t *testing.T) {
		neo, err := NewNearEarthObject("433")
		require.NoError(t, err)
		ca, err := NewCloseApproach("433")
		require.NoError(t, err)

		require.NoError(t, Link(neo, ca))

		linked, ok := ca.NEO()
		require.True(t, ok)
		assert.Same(t, neo, linked)
		require.Len(t, neo.Approaches(), 1)
		assert.Same(t, ca, neo.Approaches()[0])
	})

	t.Run("RejectsDoubleLink", func(t *testing.T) {
		neo, err := NewNearEarthObject("433")
		require.NoError(t, err)
		ca, err := NewCloseApproach("433")
		require.NoError(t, err)

		require.NoError(t, Link(neo, ca))
		assert.Error(t, Link(neo, ca))
		assert.Len(t, neo.Approaches(), 1)
	})

	t.Run("RejectsMismatch", func(t *testing.T) {
		neo, err := NewNearEarthObject("433")
		require.NoError(t, err)
		ca, err := NewCloseApproach("999")
		require.NoError(t, err)

		assert.Error(t, Link(neo, ca))
		_, ok := ca.NEO()
		assert.False(t, ok)
	})
}
