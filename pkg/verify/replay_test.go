package verify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldentick/goldentick/pkg/csvsource"
	"github.com/goldentick/goldentick/pkg/indicator"
)

func TestReplayFile_SMAGolden(t *testing.T) {
	ind := indicator.NewSMA(3)
	report, err := ReplayFile("testdata/sma3.csv", "SMA", ind, InDelta(1e-9))
	require.NoError(t, err)

	assert.Equal(t, 6, report.Rows)
	assert.Equal(t, 4, report.Asserted)
	assert.Equal(t, 2, report.Skipped)
	assert.InDelta(t, 0, report.MaxDelta, 1e-9)
	assert.Equal(t, 6, ind.Samples())
}

func TestReplayFile_EWMAGolden(t *testing.T) {
	report, err := ReplayFile("testdata/ewma4.csv", "EMA", indicator.NewEWMA(4), InDelta(1e-6))
	require.NoError(t, err)
	assert.Equal(t, 3, report.Asserted)
	assert.Equal(t, 3, report.Skipped)
}

func TestReplayFile_EWMAConvergence(t *testing.T) {
	_, err := ReplayFile("testdata/ewma4.csv", "EMA", indicator.NewEWMA(4), Convergence(1e-9))
	assert.NoError(t, err)
}

func TestReplayFile_HeaderFailureBeforeAnyUpdate(t *testing.T) {
	ind := indicator.NewSMA(3)
	_, err := ReplayFile("testdata/sma3.csv", "RSI", ind, InDelta(1e-9))
	require.Error(t, err)

	var headerErr *csvsource.HeaderResolutionError
	assert.ErrorAs(t, err, &headerErr)
	assert.Equal(t, 0, ind.Samples())
}

func TestReplay_EmptyExpectedStillUpdates(t *testing.T) {
	give := "Date,Open,High,Low,Close,SMA\n2020-01-01,10,11,9,10.5,\n"
	scanner, err := csvsource.NewColumnScanner(strings.NewReader(give), "SMA")
	require.NoError(t, err)

	// window of one is ready after the first update, only the empty cell
	// suppresses the assertion
	ind := indicator.NewSMA(1)
	report, err := Replay(ind, scanner, func(indicator.Indicator, float64) error {
		t.Fatal("assertion must not fire for an empty expected cell")
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 1, ind.Samples())
	assert.Equal(t, 0, report.Asserted)
	assert.Equal(t, 1, report.Skipped)
}

func TestReplay_NotReadySkips(t *testing.T) {
	give := "Date,Close,SMA\n2020-01-01,10,99\n2020-01-02,11,99\n"
	scanner, err := csvsource.NewColumnScanner(strings.NewReader(give), "SMA")
	require.NoError(t, err)

	report, err := Replay(indicator.NewSMA(5), scanner, func(indicator.Indicator, float64) error {
		t.Fatal("assertion must not fire while warming up")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Skipped)
}

func TestReplay_AssertionFailureAborts(t *testing.T) {
	give := "Date,Close,SMA\n2020-01-01,10,10\n2020-01-02,99,99\n"
	scanner, err := csvsource.NewColumnScanner(strings.NewReader(give), "SMA")
	require.NoError(t, err)

	ind := indicator.NewSMA(1)
	report, err := Replay(ind, scanner, InDelta(1e-9))
	require.NoError(t, err)
	assert.Equal(t, 2, report.Asserted)

	scanner, err = csvsource.NewColumnScanner(strings.NewReader(give), "SMA")
	require.NoError(t, err)

	ind = indicator.NewSMA(2)
	report, err = Replay(ind, scanner, InDelta(1e-9))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")

	// the failing row was fed to the indicator before the assertion fired
	assert.Equal(t, 2, ind.Samples())
	assert.Equal(t, 0, report.Asserted)
}

func TestReplay_MalformedExpectedIsFatal(t *testing.T) {
	give := "Date,Close,SMA\n2020-01-01,10,abc\n"
	scanner, err := csvsource.NewColumnScanner(strings.NewReader(give), "SMA")
	require.NoError(t, err)

	_, err = Replay(indicator.NewSMA(1), scanner, InDelta(1e-9))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid expected value")
}

func TestReplay_SyntheticStreamThroughIndicator(t *testing.T) {
	ind := indicator.NewSMA(3)
	Generate(5, nil).Feed(ind.Update)
	assert.Equal(t, 5, ind.Samples())
	assert.True(t, ind.IsReady())
	// mean of 2,3,4
	assert.InDelta(t, 3, ind.Current().Value, 1e-9)
}
