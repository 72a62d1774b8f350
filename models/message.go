package models

import "time"

// Sender 消息发送方
type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

// ChatMessage 单条聊天消息
// Emotion 只在完成情绪识别的AI消息上出现，创建后不再重算
// Reaction 是用户事后补加的反馈情绪，是消息里唯一可变的字段
type ChatMessage struct {
	ID        string    `json:"id"`
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	Emotion   Emotion   `json:"emotion,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Reaction  Emotion   `json:"reaction,omitempty"`
}
