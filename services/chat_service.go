package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Amitp2255/EchoMind/config"
	"github.com/Amitp2255/EchoMind/models"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

// 分类调用失败时的兜底回复
// 情绪固定为Anxiety，让失败在情绪趋势里可见，这是有意选择
const (
	FallbackReply   = "I'm having a little trouble understanding right now. Could you perhaps rephrase that?"
	FallbackSummary = "API Error"
)

// FallbackEmotion 兜底结果携带的情绪标签
const FallbackEmotion = models.EmotionAnxiety

// systemPrompt EchoMind人设和严格的JSON输出契约
const systemPrompt = `You are EchoMind, an empathetic AI emotional companion. Your mission is to help users reflect, understand, and manage their emotions safely and kindly.
You always respond with warmth, compassion, non-judgment, and understanding. Your tone is gentle, calm, and soothing.
You must analyze the user's text to detect their emotional state and generate supportive, human-like replies.
Your behavior is to listen first, then reflect back what the user might be feeling. For example: "It sounds like you've been feeling overwhelmed lately."
Ask gentle follow-up questions to help them explore their feelings, like "What do you think is making you feel this way?".
Never give robotic or flat replies. Always sound human and emotionally aware. Use context from past messages if provided.
IMPORTANT: Do not provide medical advice or use diagnostic language. Focus on reflection, empathy, and emotional awareness. Your purpose is to make users feel understood, supported, and emotionally aware in a private, comforting space.
This is a private, safe space. The user's words stay between you and them.

Your response MUST be a single JSON object with the following structure:
{
  "emotion": "...", // One of: Joy, Sadness, Anger, Fear, Anxiety, Optimism, Calm, Stress, Neutral, Amusement, Gratitude, Love, Surprise, Confusion, Curiosity, Disappointment, Excitement
  "reply": "...", // Your empathetic, conversational reply as a string.
  "summary": "..." // A brief, 1-3 word summary of the user's input.
}`

type ChatService struct {
	client *GeminiClient
}

func NewChatService(client *GeminiClient) *ChatService {
	return &ChatService{
		client: client,
	}
}

// ClassifyResult 一次分类调用的结构化结果
type ClassifyResult struct {
	Reply   string         `json:"reply"`
	Emotion models.Emotion `json:"emotion"`
	Summary string         `json:"summary"`
}

// classifyPayload 外部服务返回的原始JSON，指针字段用来发现缺key
type classifyPayload struct {
	Emotion *string `json:"emotion"`
	Reply   *string `json:"reply"`
	Summary *string `json:"summary"`
}

// Classify 调用外部服务识别用户消息的情绪并生成共情回复
// 永不向调用方抛错：网络失败、非JSON、缺key都降级为固定的兜底结果，
// 兜底结果同样满足ChatMessage/MoodEntry的全部不变量，下游聚合无需特判
func (s *ChatService) Classify(ctx context.Context, message string, history []models.ChatMessage, mappings []models.CustomMapping) ClassifyResult {
	prompt := buildClassifyPrompt(message, history, mappings)

	messages := []llms.MessageContent{
		{
			Role:  schema.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(systemPrompt)},
		},
		{
			Role:  schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(prompt)},
		},
	}

	response, err := s.client.JSONChat.GenerateContent(ctx, messages,
		llms.WithTemperature(0.7),
	)
	if err != nil {
		config.Logger.Errorw("情绪识别调用失败", "error", err)
		return fallbackResult()
	}

	if len(response.Choices) == 0 {
		config.Logger.Errorw("情绪识别返回空内容")
		return fallbackResult()
	}

	var payload classifyPayload
	raw := strings.TrimSpace(response.Choices[0].Content)
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		config.Logger.Errorw("情绪识别结果解析失败", "error", err, "raw", raw)
		return fallbackResult()
	}
	if payload.Emotion == nil || payload.Reply == nil || payload.Summary == nil || strings.TrimSpace(*payload.Reply) == "" {
		config.Logger.Errorw("情绪识别结果缺少必需字段", "raw", raw)
		return fallbackResult()
	}

	// 不盲信外部输出：大小写不一致或编造的标签统一归一化，落不到集合内就回Neutral
	return ClassifyResult{
		Reply:   *payload.Reply,
		Emotion: models.NormalizeEmotion(*payload.Emotion),
		Summary: *payload.Summary,
	}
}

func fallbackResult() ClassifyResult {
	return ClassifyResult{
		Reply:   FallbackReply,
		Emotion: FallbackEmotion,
		Summary: FallbackSummary,
	}
}

// buildClassifyPrompt 组装单次请求：自定义映射提示 + 最近历史 + 新消息
func buildClassifyPrompt(message string, history []models.ChatMessage, mappings []models.CustomMapping) string {
	var sb strings.Builder

	if len(mappings) > 0 {
		sb.WriteString("The user has provided personal emotion mappings. Please prioritize these when determining the emotion:\n---\n")
		for _, m := range mappings {
			sb.WriteString(fmt.Sprintf("- If the user says %q, the emotion is %s.\n", m.Keyword, m.Emotion))
		}
		sb.WriteString("---\n")
	}

	sb.WriteString("This is the recent conversation history for context:\n---\n")
	for _, msg := range history {
		sb.WriteString(fmt.Sprintf("%s: %s\n", msg.Sender, msg.Text))
	}
	sb.WriteString("---\n")

	sb.WriteString(fmt.Sprintf("Now, here is the new message from the user: %q\n", message))
	sb.WriteString("Please analyze the user's new message in the context of the history and their custom mappings, then respond according to your instructions.")

	return sb.String()
}
