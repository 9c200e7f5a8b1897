package datematch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		label string
		token string
		found bool
	}{
		{"Report 2021-03-01", "2021-03-01", true},
		{"2020-07-15 Summary", "2020-07-15", true},
		{"a2019-12-31b", "2019-12-31", true},
		{"first 2020-01-01 then 2019-01-01", "2020-01-01", true},
		{"Notes", "", false},
		{"2021-3-01", "", false},
		{"2021/03/01", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			token, ok := Extract(tt.label)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.token, token)
			assert.Equal(t, tt.found, HasDate(tt.label))
		})
	}
}

func TestTimestampOrdering(t *testing.T) {
	early, err := Timestamp("2020-07-15")
	require.NoError(t, err)
	late, err := Timestamp("2021-03-01")
	require.NoError(t, err)

	assert.Less(t, early, late)

	epoch, err := Timestamp("1970-01-01")
	require.NoError(t, err)
	assert.Equal(t, int64(0), epoch)

	day, err := Timestamp("1970-01-02")
	require.NoError(t, err)
	assert.Equal(t, int64(86400000), day)
}

func TestTimestampMalformed(t *testing.T) {
	for _, token := range []string{"2021-02-30", "2021-13-01", "0000-00-00"} {
		_, err := Timestamp(token)
		assert.ErrorIs(t, err, ErrMalformedDate, token)
	}
}

func TestLabelTimestamp(t *testing.T) {
	ts, err := LabelTimestamp("Meeting 1999-12-31 notes")
	require.NoError(t, err)
	want, _ := Timestamp("1999-12-31")
	assert.Equal(t, want, ts)

	_, err = LabelTimestamp("no date here")
	assert.ErrorIs(t, err, ErrMalformedDate)
}
