package telemetry

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardIdle(t *testing.T) {
	d := NewDashboard(ModeLive)
	assert.False(t, d.Active)
	assert.Equal(t, RiskIdle, d.Risk())
	assert.Empty(t, d.Logs())
	assert.Empty(t, d.Samples())
	assert.False(t, d.Online())

	// readings are ignored while idle
	d.Apply(Reading{PeopleCount: 4, Risk: RiskLow}, time.Now())
	assert.Empty(t, d.Samples())
	assert.False(t, d.Accepts(""))
}

func TestDashboardApplyCapsHistoryAndLogs(t *testing.T) {
	d := NewDashboard(ModeLive)
	d.Start("abc")
	require.True(t, d.Accepts("abc"))
	assert.False(t, d.Accepts("old"))

	at := time.Date(2024, 1, 1, 12, 3, 0, 0, time.UTC)
	for i := 0; i < 15; i++ {
		d.Apply(Reading{PeopleCount: i, Risk: RiskLow}, at.Add(time.Duration(i)*time.Second))
	}

	assert.Len(t, d.Samples(), 10)
	assert.Equal(t, 5.0, d.Counts()[0])
	logs := d.Logs()
	require.Len(t, logs, 6)
	assert.Equal(t, "[03:14] TRK_OBJ: 14 | RSK_LVL: LOW", logs[0])
	assert.Equal(t, 15, d.Polls)
	assert.InDelta(t, 9.5, d.MeanCount(), 1e-9)
	assert.True(t, d.Online())
}

func TestDashboardFailAndRecover(t *testing.T) {
	d := NewDashboard(ModeVideo)
	d.Start("s")
	d.Fail(errors.New("offline"), 2*time.Second)
	assert.Equal(t, 1, d.Failures)
	assert.False(t, d.Online())
	assert.Equal(t, 2*time.Second, d.RetryIn)

	d.Apply(Reading{PeopleCount: 1, Risk: RiskHigh}, time.Now())
	assert.True(t, d.Online())
	assert.Equal(t, RiskHigh, d.Risk())
}

func TestDashboardStopResets(t *testing.T) {
	d := NewDashboard(ModeVideo)
	d.Start("s")
	d.Apply(Reading{PeopleCount: 9, Risk: RiskMedium}, time.Now())
	d.Stop()

	assert.False(t, d.Active)
	assert.Equal(t, ModeVideo, d.Mode)
	assert.Equal(t, RiskIdle, d.Risk())
	assert.Empty(t, d.Samples())
	assert.Empty(t, d.Logs())
	assert.Zero(t, d.Latest.PeopleCount)
	assert.Zero(t, d.MeanCount())
}

func TestRecorderWritesHeaderOnce(t *testing.T) {
	var buf bytes.Buffer
	rec := NewRecorder(&buf)
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, rec.Write(NewRecord(at, "s1", ModeLive, Reading{PeopleCount: 3, Risk: RiskLow})))
	require.NoError(t, rec.Write(NewRecord(at, "s1", ModeLive, Reading{PeopleCount: 16, Risk: RiskHigh})))
	require.NoError(t, rec.Close())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "time,session,mode,people_count,risk,motion,speed,place,status", lines[0])
	assert.Equal(t, "2024-05-01T10:00:00Z,s1,live,16,HIGH,,,,", lines[2])
}

func TestNilRecorderIsNoop(t *testing.T) {
	rec, err := OpenRecorder("")
	require.NoError(t, err)
	assert.Nil(t, rec)
	assert.NoError(t, rec.Write(Record{}))
	assert.NoError(t, rec.Close())
}

func TestMockSource(t *testing.T) {
	src := NewMockSource(rand.New(rand.NewSource(1)))
	for i := 0; i < 50; i++ {
		r, err := src.Fetch(context.Background(), ModeVideo)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, r.PeopleCount, 0)
		assert.Equal(t, ClassifyRisk(r.PeopleCount, 10, 15), r.Risk)
		if r.PeopleCount > 0 {
			assert.Equal(t, "ACTIVE", r.Motion)
		} else {
			assert.Equal(t, "IDLE", r.Motion)
		}
		assert.LessOrEqual(t, r.Progress, 100.0)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := src.Fetch(ctx, ModeLive)
	assert.Error(t, err)
}

func TestMockSourceResetRestartsVideoProgress(t *testing.T) {
	src := NewMockSource(rand.New(rand.NewSource(3)))
	ctx := context.Background()

	var r Reading
	for i := 0; i < 200 && r.Status != "completed"; i++ {
		var err error
		r, err = src.Fetch(ctx, ModeVideo)
		require.NoError(t, err)
	}
	require.Equal(t, "completed", r.Status)

	src.Reset()
	r, err := src.Fetch(ctx, ModeVideo)
	require.NoError(t, err)
	assert.Equal(t, "processing", r.Status)
	assert.LessOrEqual(t, r.Progress, 3.0)
}
