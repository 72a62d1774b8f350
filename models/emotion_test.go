package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmotion_CaseInsensitive(t *testing.T) {
	cases := []struct {
		input string
		want  Emotion
	}{
		{"Joy", EmotionJoy},
		{"joy", EmotionJoy},
		{"JOY", EmotionJoy},
		{"sAdNeSs", EmotionSadness},
		{"  Calm  ", EmotionCalm},
		{"disappointment", EmotionDisappointment},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeEmotion(tc.input), "input=%q", tc.input)
	}
}

func TestNormalizeEmotion_UnknownFallsBackToNeutral(t *testing.T) {
	for _, input := range []string{"", "happiness", "rage", "Ecstatic", "joy!"} {
		assert.Equal(t, EmotionNeutral, NormalizeEmotion(input), "input=%q", input)
	}
}

func TestIsValidEmotion(t *testing.T) {
	assert.True(t, IsValidEmotion("Anxiety"))
	assert.True(t, IsValidEmotion("anxiety"))
	assert.False(t, IsValidEmotion("panic"))
	assert.False(t, IsValidEmotion(""))
}

// 展示元数据必须覆盖整个情绪集合，缺项属于构建缺陷
func TestEmotionMetadataIsTotal(t *testing.T) {
	all := AllEmotions()
	assert.Len(t, EmotionColors, len(all))
	assert.Len(t, EmotionIcons, len(all))

	for _, e := range all {
		color, ok := EmotionColors[e]
		assert.True(t, ok, "缺少颜色: %s", e)
		assert.NotEmpty(t, color)

		icon, ok := EmotionIcons[e]
		assert.True(t, ok, "缺少图标: %s", e)
		assert.NotEmpty(t, icon)
	}
}
