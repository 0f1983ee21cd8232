package impl

import (
	"testing"
	"time"

	"foodlink/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T {
	return &v
}

func TestReliabilityScore_NoHistory(t *testing.T) {
	_, ok := ReliabilityScore(nil, baseTime)
	assert.False(t, ok)

	_, ok = ReliabilityScore(&entity.OrganizationStats{TotalAccepted: 0}, baseTime)
	assert.False(t, ok)
}

func TestReliabilityScore_Composite(t *testing.T) {
	tests := []struct {
		name  string
		stats *entity.OrganizationStats
		want  int
	}{
		{
			name: "perfect record",
			stats: &entity.OrganizationStats{
				TotalAccepted:   5,
				TotalDelivered:  5,
				AvgResponseMins: ptr(10.0),
				LastActivityAt:  ptr(baseTime.Add(-12 * time.Hour)),
			},
			want: 100,
		},
		{
			// success 80, speed 85, cancellation 60, completion 80, recency 80
			name: "mixed record",
			stats: &entity.OrganizationStats{
				TotalAccepted:   10,
				TotalDelivered:  8,
				TotalFailed:     2,
				AvgResponseMins: ptr(20.0),
				LastActivityAt:  ptr(baseTime.Add(-48 * time.Hour)),
			},
			want: 78,
		},
		{
			// speed neutral 50, recency 60, everything else 0
			name: "only failures",
			stats: &entity.OrganizationStats{
				TotalAccepted:  4,
				TotalFailed:    4,
				LastActivityAt: ptr(baseTime.Add(-5 * 24 * time.Hour)),
			},
			want: 16,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, ok := ReliabilityScore(tt.stats, baseTime)
			assert.True(t, ok)
			assert.Equal(t, tt.want, score)
		})
	}
}

func TestReliabilityScore_StaysBoundedAndIdempotent(t *testing.T) {
	odd := &entity.OrganizationStats{
		TotalAccepted:   2,
		TotalDelivered:  5,
		TotalPickedUp:   3,
		AvgResponseMins: ptr(-4.0),
		LastActivityAt:  ptr(baseTime.Add(time.Hour)),
	}

	first, ok := ReliabilityScore(odd, baseTime)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, first, entity.MinReliabilityScore)
	assert.LessOrEqual(t, first, entity.MaxReliabilityScore)

	second, _ := ReliabilityScore(odd, baseTime)
	assert.Equal(t, first, second)
}

func TestRecencySteps(t *testing.T) {
	for _, tt := range []struct {
		days float64
		want float64
	}{
		{0.5, 100}, {1, 100}, {2, 80}, {5, 60}, {10, 35}, {14, 35}, {30, 15},
	} {
		assert.Equal(t, tt.want, stepScore(tt.days, recencySteps, recencyFloor), "days %.1f", tt.days)
	}
}
