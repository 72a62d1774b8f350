package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Amitp2255/EchoMind/models"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

var (
	// ErrNotEnoughEntries 情绪历史不足，不允许发起洞察生成
	ErrNotEnoughEntries = errors.New("情绪历史不足，无法生成洞察")
	// ErrInvalidTool 未知的放松工具类型
	ErrInvalidTool = errors.New("无效的放松工具类型")
)

// WellnessTool 放松工具类型
type WellnessTool string

const (
	ToolMeditation  WellnessTool = "meditation"
	ToolAffirmation WellnessTool = "affirmation"
)

// GenerateInsight 根据情绪历史生成仪表盘洞察文案
// 与分类不同，这里的失败原样抛给调用方，由调用方决定用户文案
func (s *ChatService) GenerateInsight(ctx context.Context, entries []models.MoodEntry) (string, error) {
	if !InsightEligible(entries) {
		return "", ErrNotEnoughEntries
	}

	var sb strings.Builder
	sb.WriteString(`You are EchoMind, an AI emotional companion. Your task is to analyze a user's emotional history and provide gentle, encouraging, and insightful observations.
- Identify patterns, trends, or potential triggers.
- Frame your insights positively and reflectively.
- Avoid making diagnoses or giving direct advice. Instead, pose gentle questions for self-reflection.
- Keep the insight concise, warm, and easy to understand.

Here is the user's recent mood history:
`)
	for _, entry := range entries {
		sb.WriteString(fmt.Sprintf("- %s: %s (Summary: %s)\n",
			entry.Timestamp.Format("2006-01-02"), entry.Emotion, entry.Summary))
	}
	sb.WriteString(`
Based on this data, provide one or two key insights for the user.
For example: "I've noticed you seem to feel more calm after moments of optimism. It's wonderful that you're finding light even on challenging days."
Another example: "It looks like stress has been a recurring feeling over the last week. I'm here to listen if you'd like to explore what might be contributing to that."`)

	return s.generateText(ctx, sb.String())
}

// GenerateWellnessContent 生成冥想脚本或肯定语列表
func (s *ChatService) GenerateWellnessContent(ctx context.Context, tool WellnessTool, topic string) (string, error) {
	var prompt string
	switch tool {
	case ToolMeditation:
		prompt = fmt.Sprintf(`You are a mindfulness expert and meditation guide named EchoMind. Your tone is gentle, calming, and reassuring. Write a short, soothing guided meditation script designed to be read aloud for about 2-3 minutes. The script should focus on helping the user with %s. Structure it with clear pauses (indicated by "..."), simple instructions, and a concluding sentence that brings them back gently.`, topic)
	case ToolAffirmation:
		prompt = fmt.Sprintf(`You are an optimistic and empowering AI coach named EchoMind. Your tone is encouraging and positive. Generate a list of 5 powerful, first-person affirmations to help someone with %s. Each affirmation should be on its own line and be easy to remember and repeat.`, topic)
	default:
		return "", ErrInvalidTool
	}

	return s.generateText(ctx, prompt)
}

// GenerateMoodBalancer 生成多语言情绪平衡内容，结果是严格的7字段JSON
func (s *ChatService) GenerateMoodBalancer(ctx context.Context, userText, language string) (models.MoodBalancerResult, error) {
	balancerSystemPrompt := fmt.Sprintf(`Analyze the user's message for their emotion, intensity, and mood trend.
Then create a voice-ready empathetic reply that includes:

A short comforting message (first line)

A 1-minute story, quote, or gentle activity suggestion to help improve their mood

A voice tone style (e.g., calm, cheerful, hopeful, relaxed, energetic)

Language output according to language_preference (%s).

The goal: help the user move from their current emotion to a "normal" or "positive" state.
Keep the tone emotionally intelligent, kind, and natural.

Your response MUST be a single JSON object with exactly these string fields:
detected_emotion, emotion_intensity, suggested_voice_tone, short_story_or_quote, activity_suggestion, ai_reply_text, language`, language)

	messages := []llms.MessageContent{
		{
			Role:  schema.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(balancerSystemPrompt)},
		},
		{
			Role:  schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(fmt.Sprintf("User message: %q\nLanguage preference: %q", userText, language))},
		},
	}

	response, err := s.client.JSONChat.GenerateContent(ctx, messages)
	if err != nil {
		return models.MoodBalancerResult{}, fmt.Errorf("情绪平衡器调用失败: %w", err)
	}
	if len(response.Choices) == 0 {
		return models.MoodBalancerResult{}, fmt.Errorf("情绪平衡器未返回有效内容")
	}

	var result models.MoodBalancerResult
	raw := strings.TrimSpace(response.Choices[0].Content)
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return models.MoodBalancerResult{}, fmt.Errorf("情绪平衡器结果解析失败: %w", err)
	}
	return result, nil
}

// generateText 一次性自由文本生成
func (s *ChatService) generateText(ctx context.Context, prompt string) (string, error) {
	messages := []llms.MessageContent{
		{
			Role:  schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(prompt)},
		},
	}

	response, err := s.client.TextChat.GenerateContent(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("生成内容失败: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("未生成有效内容")
	}
	return response.Choices[0].Content, nil
}
