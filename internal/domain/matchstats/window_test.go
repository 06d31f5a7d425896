package matchstats

import (
	"testing"

	"github.com/riskibarqy/football-ai/internal/domain/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeWindow(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"whole_match", "first_half", "second_half", "overtime"} {
		got, err := ParseTimeWindow(raw)
		require.NoError(t, err)
		assert.Equal(t, TimeWindow(raw), got)
	}

	got, err := ParseTimeWindow("")
	require.NoError(t, err)
	assert.Equal(t, WholeMatch, got)

	got, err = ParseTimeWindow(" First_Half ")
	require.NoError(t, err)
	assert.Equal(t, FirstHalf, got)

	_, err = ParseTimeWindow("third_half")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "third_half")
}

func TestTimeWindow_Boundaries(t *testing.T) {
	t.Parallel()

	assert.True(t, FirstHalf.Contains(45))
	assert.False(t, FirstHalf.Contains(46))
	assert.False(t, SecondHalf.Contains(45))
	assert.True(t, SecondHalf.Contains(46))
	assert.True(t, SecondHalf.Contains(100))
	assert.False(t, Overtime.Contains(90))
	assert.True(t, Overtime.Contains(91))
	assert.True(t, WholeMatch.Contains(0))
}

func TestTimeWindow_FilterKeepsOrder(t *testing.T) {
	t.Parallel()

	events := []match.Event{{Index: 1, Minute: 10}, {Index: 2, Minute: 50}, {Index: 3, Minute: 95}}
	filtered := SecondHalf.Filter(events)
	require.Len(t, filtered, 2)
	assert.Equal(t, 2, filtered[0].Index)
	assert.Equal(t, 3, filtered[1].Index)
	assert.Len(t, WholeMatch.Filter(events), 3)
}
