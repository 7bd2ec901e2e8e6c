package utils

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntToString(t *testing.T) {
	assert.Equal(t, "42", IntToString(42))
	assert.Equal(t, "-1", IntToString(-1))
	assert.Equal(t, "0", IntToString(0))
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(1999, time.April, 30)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"1999-04-30"`, string(data))

	var parsed Date
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, 1999, parsed.Year())
	assert.Equal(t, time.April, parsed.Month())
	assert.Equal(t, 30, parsed.Day())
}

func TestDate_UnmarshalInvalid(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"not a string", `12345`},
		{"wrong layout", `"30.04.1999"`},
		{"empty string", `""`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var d Date
			assert.Error(t, json.Unmarshal([]byte(tc.input), &d))
		})
	}
}

func TestDate_ZeroMarshalsNull(t *testing.T) {
	var d Date
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestDate_Scan(t *testing.T) {
	t.Run("from time.Time", func(t *testing.T) {
		var d Date
		require.NoError(t, d.Scan(time.Date(1895, time.December, 28, 0, 0, 0, 0, time.UTC)))
		assert.Equal(t, 1895, d.Year())
	})

	t.Run("from string", func(t *testing.T) {
		var d Date
		require.NoError(t, d.Scan("1895-12-28"))
		assert.Equal(t, 1895, d.Year())
	})

	t.Run("from nil", func(t *testing.T) {
		var d Date
		require.NoError(t, d.Scan(nil))
		assert.True(t, d.IsZero())
	})

	t.Run("unsupported type", func(t *testing.T) {
		var d Date
		assert.Error(t, d.Scan(12345))
	})
}
