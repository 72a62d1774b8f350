package models

// RegisterRequest 注册请求结构体
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest 登录请求结构体
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GoogleLoginRequest Google联合登录请求结构体
type GoogleLoginRequest struct {
	IDToken string `json:"id_token" binding:"required"`
}

// SendMessageRequest 发送聊天消息请求结构体
type SendMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// SetReactionRequest 设置消息反馈情绪请求结构体
// Reaction 为空表示清除已有反馈
type SetReactionRequest struct {
	MessageID string `json:"messageId" binding:"required"`
	Reaction  string `json:"reaction"`
}

// AddMappingRequest 新增自定义情绪映射请求结构体
type AddMappingRequest struct {
	Keyword string `json:"keyword" binding:"required"`
	Emotion string `json:"emotion" binding:"required"`
}

// WellnessRequest 生成放松工具内容请求结构体
type WellnessRequest struct {
	Tool  string `json:"tool" binding:"required"` // meditation, affirmation
	Topic string `json:"topic" binding:"required"`
}

// MoodBalancerRequest 情绪平衡器请求结构体
type MoodBalancerRequest struct {
	Message  string `json:"message" binding:"required"`
	Language string `json:"language"`
}
