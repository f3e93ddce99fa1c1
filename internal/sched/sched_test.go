package sched

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestManualFiresInDeadlineOrder(t *testing.T) {
	m := NewManual(epoch)
	var got []string

	m.AfterFunc(300*time.Millisecond, func() { got = append(got, "c") })
	m.AfterFunc(100*time.Millisecond, func() { got = append(got, "a") })
	m.AfterFunc(100*time.Millisecond, func() { got = append(got, "b") })

	m.Advance(99 * time.Millisecond)
	assert.Empty(t, got)
	assert.Equal(t, 3, m.Pending())

	m.Advance(time.Second)
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Equal(t, 0, m.Pending())
	assert.Equal(t, epoch.Add(1099*time.Millisecond), m.Now())
}

func TestManualCallbackSeesFireTime(t *testing.T) {
	m := NewManual(epoch)
	var at time.Time
	m.AfterFunc(250*time.Millisecond, func() { at = m.Now() })

	m.Advance(time.Second)
	assert.Equal(t, epoch.Add(250*time.Millisecond), at)
}

func TestManualNestedScheduling(t *testing.T) {
	m := NewManual(epoch)
	count := 0
	var tick func()
	tick = func() {
		count++
		m.AfterFunc(100*time.Millisecond, tick)
	}
	m.AfterFunc(100*time.Millisecond, tick)

	m.Advance(450 * time.Millisecond)
	assert.Equal(t, 4, count)
	assert.Equal(t, 1, m.Pending())
}

func TestManualStop(t *testing.T) {
	m := NewManual(epoch)
	fired := false
	timer := m.AfterFunc(time.Second, func() { fired = true })

	require.True(t, timer.Stop())
	assert.False(t, timer.Stop(), "second stop should report false")

	m.Advance(2 * time.Second)
	assert.False(t, fired)

	fireOnce := m.AfterFunc(0, func() {})
	m.Advance(0)
	assert.False(t, fireOnce.Stop(), "stop after firing should report false")
}

func TestPostedRunsOnLoop(t *testing.T) {
	loop := NewLoop(4)
	clock := NewPosted(loop)

	result := make(chan int, 1)
	clock.AfterFunc(5*time.Millisecond, func() { result <- 42 })

	select {
	case fn := <-loop.C():
		require.Empty(t, result, "callback ran before the loop drained it")
		fn()
	case <-time.After(2 * time.Second):
		t.Fatal("callback was never posted")
	}
	assert.Equal(t, 42, <-result)
}

func TestPostedStopPreventsPost(t *testing.T) {
	loop := NewLoop(1)
	clock := NewPosted(loop)

	timer := clock.AfterFunc(time.Hour, func() { t.Error("stopped timer fired") })
	assert.True(t, timer.Stop())
}

func TestLoopPostAfterClose(t *testing.T) {
	loop := NewLoop(1)
	loop.Close()
	assert.False(t, loop.Post(func() {}))

	select {
	case <-loop.Done():
	default:
		t.Error("done channel still open after close")
	}
	loop.Close()
}
