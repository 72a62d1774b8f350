package models

import "strings"

// Emotion 情绪标签，固定封闭集合
type Emotion string

const (
	EmotionJoy            Emotion = "Joy"
	EmotionSadness        Emotion = "Sadness"
	EmotionAnger          Emotion = "Anger"
	EmotionFear           Emotion = "Fear"
	EmotionAnxiety        Emotion = "Anxiety"
	EmotionOptimism       Emotion = "Optimism"
	EmotionCalm           Emotion = "Calm"
	EmotionStress         Emotion = "Stress"
	EmotionNeutral        Emotion = "Neutral"
	EmotionAmusement      Emotion = "Amusement"
	EmotionGratitude      Emotion = "Gratitude"
	EmotionLove           Emotion = "Love"
	EmotionSurprise       Emotion = "Surprise"
	EmotionConfusion      Emotion = "Confusion"
	EmotionCuriosity      Emotion = "Curiosity"
	EmotionDisappointment Emotion = "Disappointment"
	EmotionExcitement     Emotion = "Excitement"
)

// AllEmotions 返回全部情绪标签，顺序固定
func AllEmotions() []Emotion {
	return []Emotion{
		EmotionJoy,
		EmotionSadness,
		EmotionAnger,
		EmotionFear,
		EmotionAnxiety,
		EmotionOptimism,
		EmotionCalm,
		EmotionStress,
		EmotionNeutral,
		EmotionAmusement,
		EmotionGratitude,
		EmotionLove,
		EmotionSurprise,
		EmotionConfusion,
		EmotionCuriosity,
		EmotionDisappointment,
		EmotionExcitement,
	}
}

// IsValidEmotion 判断候选字符串是否属于情绪集合（忽略大小写）
func IsValidEmotion(candidate string) bool {
	for _, e := range AllEmotions() {
		if strings.EqualFold(candidate, string(e)) {
			return true
		}
	}
	return false
}

// NormalizeEmotion 把外部字符串归一化为合法情绪标签
// 外部服务可能返回大小写不一致甚至凭空编造的标签，不匹配时统一回落到Neutral
func NormalizeEmotion(candidate string) Emotion {
	for _, e := range AllEmotions() {
		if strings.EqualFold(strings.TrimSpace(candidate), string(e)) {
			return e
		}
	}
	return EmotionNeutral
}

// EmotionColors 每个情绪对应的前端颜色token，必须对集合全覆盖
var EmotionColors = map[Emotion]string{
	EmotionJoy:            "text-yellow-400",
	EmotionSadness:        "text-blue-400",
	EmotionAnger:          "text-red-500",
	EmotionFear:           "text-purple-400",
	EmotionAnxiety:        "text-orange-400",
	EmotionOptimism:       "text-green-400",
	EmotionCalm:           "text-sky-400",
	EmotionStress:         "text-rose-500",
	EmotionNeutral:        "text-slate-400",
	EmotionAmusement:      "text-lime-400",
	EmotionGratitude:      "text-pink-400",
	EmotionLove:           "text-red-400",
	EmotionSurprise:       "text-cyan-400",
	EmotionConfusion:      "text-gray-400",
	EmotionCuriosity:      "text-indigo-400",
	EmotionDisappointment: "text-sky-600",
	EmotionExcitement:     "text-amber-400",
}

// EmotionIcons 每个情绪对应的图标token，必须对集合全覆盖
var EmotionIcons = map[Emotion]string{
	EmotionJoy:            "face-smile",
	EmotionSadness:        "face-frown",
	EmotionAnger:          "fire",
	EmotionFear:           "hand-raised",
	EmotionAnxiety:        "bolt",
	EmotionOptimism:       "sparkles",
	EmotionCalm:           "moon",
	EmotionStress:         "sun",
	EmotionNeutral:        "chat-bubble",
	EmotionAmusement:      "face-smile",
	EmotionGratitude:      "gift",
	EmotionLove:           "heart",
	EmotionSurprise:       "sparkles",
	EmotionConfusion:      "question-mark",
	EmotionCuriosity:      "light-bulb",
	EmotionDisappointment: "face-frown",
	EmotionExcitement:     "star",
}
