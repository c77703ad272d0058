package services

import (
	"context"
	"testing"
	"time"

	"talktrack/internal/domain"
	"talktrack/internal/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatisticsService_GetStatistics(t *testing.T) {
	m := newMemStore()
	m.addEvent("ev-1", "A", "2025-05-01", "")
	m.addEvent("ev-2", "B", "2026-05-01", "")
	m.addSession("s-1", "Talk")
	m.addSubmission("sub-1", "s-1", "ev-1", domain.StateSelected)
	m.addSubmission("sub-2", "s-1", "ev-2", domain.StateSelected)

	svc := NewStatisticsService(m, time.Second)
	all, err := svc.GetStatistics(context.Background(), stats.Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, all.EventsAccepted)

	only2026, err := svc.GetStatistics(context.Background(), stats.Options{Year: 2026})
	require.NoError(t, err)
	assert.Equal(t, 1, only2026.EventsAccepted)

	m.err = errBoom
	_, err = svc.GetStatistics(context.Background(), stats.Options{})
	require.ErrorIs(t, err, errBoom)
}
