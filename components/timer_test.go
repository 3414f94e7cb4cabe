package components

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimerOnceClampsAtDuration(t *testing.T) {
	timer := NewTimer(3*time.Second, TimerOnce)

	timer.Tick(time.Second)
	timer.Tick(time.Second)
	assert.False(t, timer.Finished())
	assert.Equal(t, 2*time.Second, timer.Elapsed())

	timer.Tick(2 * time.Second)
	assert.True(t, timer.Finished())
	assert.True(t, timer.JustFinished())
	assert.Equal(t, 3*time.Second, timer.Elapsed())

	timer.Tick(time.Second)
	assert.False(t, timer.JustFinished())
	assert.Equal(t, 3*time.Second, timer.Elapsed())
}

func TestTimerRepeatingWrapsWithRemainder(t *testing.T) {
	timer := NewTimer(3*time.Second, TimerRepeating)

	timer.Tick(2 * time.Second)
	assert.False(t, timer.JustFinished())

	timer.Tick(1500 * time.Millisecond)
	assert.True(t, timer.JustFinished())
	assert.False(t, timer.Finished())
	assert.Equal(t, 500*time.Millisecond, timer.Elapsed())

	timer.Tick(time.Second)
	assert.False(t, timer.JustFinished())
}

func TestTimerCompletesAfterWholeSteps(t *testing.T) {
	step := time.Second / 60
	timer := NewTimer(3*time.Second, TimerOnce)

	for i := 1; i < 180; i++ {
		timer.Tick(step)
		assert.False(t, timer.Finished(), "finished early at step %d", i)
	}
	timer.Tick(step)
	assert.True(t, timer.Finished())
}
