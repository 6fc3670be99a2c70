package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewJobClampsWeight(t *testing.T) {
	j := NewJob(1, -5.0, 10.0)
	assert.Equal(t, MinWeight, j.Weight)
}

func TestNewJobClampsEstimatedTime(t *testing.T) {
	j := NewJob(1, 1.0, -10.0)
	assert.Equal(t, 0.0, j.RemainingTime)
	assert.Equal(t, 0.0, j.TotalTime)
}

func TestJobProgress(t *testing.T) {
	j := NewJob(1, 1.0, 100.0)
	assert.Equal(t, 0.0, j.Progress())

	j.RemainingTime = 50.0
	assert.InDelta(t, 0.5, j.Progress(), 1e-9)

	j.RemainingTime = 0.0
	assert.Equal(t, 1.0, j.Progress())
}

func TestJobProgressZeroTotal(t *testing.T) {
	j := NewJob(1, 1.0, 0.0)
	assert.Equal(t, 1.0, j.Progress())
}

func TestJobIsComplete(t *testing.T) {
	j := NewJob(1, 1.0, 10.0)
	assert.False(t, j.IsComplete())

	j.RemainingTime = 0.0
	assert.True(t, j.IsComplete())
}
