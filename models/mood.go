package models

import "time"

// MoodEntry 情绪历史条目，每完成一轮AI回复生成一条，创建后不可变
type MoodEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Emotion   Emotion   `json:"emotion"`
	Summary   string    `json:"summary"` // 1-3个词的简短摘要
}

// MoodBalancerResult 情绪平衡器的结构化结果，完全由外部服务生成
// 不做持久化，生命周期只有一次展示
type MoodBalancerResult struct {
	DetectedEmotion    string `json:"detected_emotion"`
	EmotionIntensity   string `json:"emotion_intensity"`
	SuggestedVoiceTone string `json:"suggested_voice_tone"`
	ShortStoryOrQuote  string `json:"short_story_or_quote"`
	ActivitySuggestion string `json:"activity_suggestion"`
	AIReplyText        string `json:"ai_reply_text"`
	Language           string `json:"language"`
}
