package services

import (
	"github.com/Amitp2255/EchoMind/models"
)

// MinEntriesForInsight 生成洞察所需的最少情绪条目数
const MinEntriesForInsight = 3

// EmotionDistribution 统计整个历史上各情绪出现的次数
// 没出现过的情绪不进结果（不补零）
func EmotionDistribution(entries []models.MoodEntry) map[models.Emotion]int {
	dist := make(map[models.Emotion]int)
	for _, entry := range entries {
		dist[entry.Emotion]++
	}
	return dist
}

// DominantEmotionByDay 按自然日（条目时间戳所在时区）分组，取每天出现最多的情绪
// 平局规则：按插入顺序最先达到最大计数的情绪胜出，这是约定行为不是未定义行为
func DominantEmotionByDay(entries []models.MoodEntry) map[string]models.Emotion {
	dominant := make(map[string]models.Emotion)
	counts := make(map[string]map[models.Emotion]int)
	best := make(map[string]int)

	for _, entry := range entries {
		day := entry.Timestamp.Format("2006-01-02")
		if counts[day] == nil {
			counts[day] = make(map[models.Emotion]int)
		}
		counts[day][entry.Emotion]++
		// 只有严格超过当前最大计数才换主导情绪，保证先到者赢
		if counts[day][entry.Emotion] > best[day] {
			best[day] = counts[day][entry.Emotion]
			dominant[day] = entry.Emotion
		}
	}
	return dominant
}

// InsightEligible 判断情绪历史是否足够生成洞察
func InsightEligible(entries []models.MoodEntry) bool {
	return len(entries) >= MinEntriesForInsight
}
