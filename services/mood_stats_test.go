package services

import (
	"testing"
	"time"

	"github.com/Amitp2255/EchoMind/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryAt(emotion models.Emotion, ts time.Time) models.MoodEntry {
	return models.MoodEntry{
		ID:        ts.Format(time.RFC3339Nano),
		Timestamp: ts,
		Emotion:   emotion,
		Summary:   "test",
	}
}

func TestEmotionDistribution(t *testing.T) {
	base := time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)
	entries := []models.MoodEntry{
		entryAt(models.EmotionJoy, base),
		entryAt(models.EmotionJoy, base.Add(time.Hour)),
		entryAt(models.EmotionSadness, base.Add(2*time.Hour)),
	}

	dist := EmotionDistribution(entries)

	assert.Equal(t, map[models.Emotion]int{
		models.EmotionJoy:     2,
		models.EmotionSadness: 1,
	}, dist)
	// 没出现过的情绪不补零
	_, ok := dist[models.EmotionNeutral]
	assert.False(t, ok)
}

func TestEmotionDistribution_Empty(t *testing.T) {
	dist := EmotionDistribution(nil)
	require.NotNil(t, dist)
	assert.Empty(t, dist)
}

func TestDominantEmotionByDay_MajorityWins(t *testing.T) {
	base := time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC)
	entries := []models.MoodEntry{
		entryAt(models.EmotionJoy, base),
		entryAt(models.EmotionJoy, base.Add(time.Hour)),
		entryAt(models.EmotionSadness, base.Add(2*time.Hour)),
	}

	dominant := DominantEmotionByDay(entries)

	assert.Equal(t, map[string]models.Emotion{
		"2025-11-03": models.EmotionJoy,
	}, dominant)
}

// 平局时先达到最大计数的情绪（即先插入的）胜出
func TestDominantEmotionByDay_TieBreakFirstInserted(t *testing.T) {
	base := time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC)
	entries := []models.MoodEntry{
		entryAt(models.EmotionJoy, base),
		entryAt(models.EmotionSadness, base.Add(time.Hour)),
	}

	dominant := DominantEmotionByDay(entries)
	assert.Equal(t, models.EmotionJoy, dominant["2025-11-03"])

	// 反过来插入，Sadness先到
	reversed := []models.MoodEntry{
		entryAt(models.EmotionSadness, base),
		entryAt(models.EmotionJoy, base.Add(time.Hour)),
	}
	assert.Equal(t, models.EmotionSadness, DominantEmotionByDay(reversed)["2025-11-03"])
}

func TestDominantEmotionByDay_GroupsByCalendarDay(t *testing.T) {
	day1 := time.Date(2025, 11, 3, 23, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 11, 4, 1, 0, 0, 0, time.UTC)
	entries := []models.MoodEntry{
		entryAt(models.EmotionStress, day1),
		entryAt(models.EmotionCalm, day2),
		entryAt(models.EmotionCalm, day2.Add(time.Hour)),
	}

	dominant := DominantEmotionByDay(entries)

	require.Len(t, dominant, 2)
	assert.Equal(t, models.EmotionStress, dominant["2025-11-03"])
	assert.Equal(t, models.EmotionCalm, dominant["2025-11-04"])
}

func TestDominantEmotionByDay_Empty(t *testing.T) {
	assert.Empty(t, DominantEmotionByDay(nil))
}

func TestInsightEligible(t *testing.T) {
	base := time.Now()
	var entries []models.MoodEntry
	for i := 0; i < 5; i++ {
		want := i >= MinEntriesForInsight
		assert.Equal(t, want, InsightEligible(entries), "entries=%d", i)
		entries = append(entries, entryAt(models.EmotionJoy, base))
	}
}
