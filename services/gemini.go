package services

import (
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const geminiModel = "gemini-2.5-flash"

// GeminiClient 封装两个模型句柄：
// JSONChat 用于要求严格JSON输出的调用（情绪识别、情绪平衡器）
// TextChat 用于自由文本输出的调用（洞察、放松工具）
type GeminiClient struct {
	JSONChat llms.Model
	TextChat llms.Model
}

// NewGeminiClient 通过Gemini的OpenAI兼容接口创建客户端
func NewGeminiClient(apiKey, apiEndpoint string) (*GeminiClient, error) {
	jsonChat, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithBaseURL(apiEndpoint),
		openai.WithModel(geminiModel),
		openai.WithResponseFormat(&openai.ResponseFormat{
			Type: "json_object",
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	textChat, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithBaseURL(apiEndpoint),
		openai.WithModel(geminiModel),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		JSONChat: jsonChat,
		TextChat: textChat,
	}, nil
}
