package models

// CustomMapping 用户自定义的关键词到情绪的映射
// Keyword 存储前已做trim和小写归一化，作为优先提示传给分类器
// 允许重复关键词，最终情绪判定仍由外部服务负责
type CustomMapping struct {
	ID      string  `json:"id"`
	Keyword string  `json:"keyword"`
	Emotion Emotion `json:"emotion"`
}
