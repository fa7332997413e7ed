package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	records := []Record{
		{Status: StatusPresent},
		{Status: StatusPresent},
		{Status: StatusLate},
		{Status: StatusAbsent},
		{Status: "unknown"},
	}

	summary := Summarize(records)
	assert.Equal(t, 2, summary.Present)
	assert.Equal(t, 1, summary.Absent)
	assert.Equal(t, 1, summary.Late)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestTimeInFor(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 15, 0, 0, time.UTC)

	require.Nil(t, TimeInFor(StatusAbsent, now))

	present := TimeInFor(StatusPresent, now)
	require.NotNil(t, present)
	assert.Equal(t, now, *present)

	late := TimeInFor(StatusLate, now)
	require.NotNil(t, late)
	assert.Equal(t, now, *late)
}

func TestValidStatus(t *testing.T) {
	for _, status := range Statuses {
		assert.True(t, ValidStatus(status), status)
	}
	assert.False(t, ValidStatus("vacation"))
	assert.False(t, ValidStatus(""))
	assert.False(t, ValidStatus("Present"))
}
