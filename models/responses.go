package models

// SendMessageResponse 一轮聊天的响应结构体：AI回复消息和它派生的情绪条目
type SendMessageResponse struct {
	Message   ChatMessage `json:"message"`
	MoodEntry MoodEntry   `json:"moodEntry"`
}

// DistributionItem 情绪分布响应条目
type DistributionItem struct {
	Emotion Emotion `json:"emotion"`
	Count   int     `json:"count"`
	Color   string  `json:"color"`
	Icon    string  `json:"icon"`
}

// CalendarDay 情绪日历响应条目：某天的主导情绪
type CalendarDay struct {
	Date    string  `json:"date"` // YYYY-MM-DD
	Emotion Emotion `json:"emotion"`
	Color   string  `json:"color"`
}

// InsightResponse 洞察生成响应结构体
type InsightResponse struct {
	Insight   string `json:"insight"`
	Generated bool   `json:"generated"` // false 表示数据不足时的占位文案
	Cached    bool   `json:"cached"`
}

// LanguageOption 情绪平衡器语言选项：语言名和客户端TTS用的语音tag
type LanguageOption struct {
	Language  string `json:"language"`
	VoiceLang string `json:"voiceLang"`
}

// BalancerResponse 情绪平衡器响应，附带客户端TTS用的语音tag
type BalancerResponse struct {
	Result    MoodBalancerResult `json:"result"`
	VoiceLang string             `json:"voiceLang,omitempty"`
}

// UserResponse 用户响应结构体
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
}
