package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Amitp2255/EchoMind/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

// stubModel 替身模型，记录收到的prompt并返回预设结果
type stubModel struct {
	response  string
	err       error
	calls     int
	lastText  string
	lastRoles []schema.ChatMessageType
}

func (s *stubModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	s.calls++
	s.lastRoles = s.lastRoles[:0]
	for _, m := range messages {
		s.lastRoles = append(s.lastRoles, m.Role)
	}
	if len(messages) > 0 {
		last := messages[len(messages)-1]
		if len(last.Parts) > 0 {
			if tp, ok := last.Parts[0].(llms.TextContent); ok {
				s.lastText = tp.Text
			}
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: s.response}},
	}, nil
}

func (s *stubModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func newTestService(stub *stubModel) *ChatService {
	return NewChatService(&GeminiClient{
		JSONChat: stub,
		TextChat: stub,
	})
}

func TestClassify_ParsesStructuredResult(t *testing.T) {
	stub := &stubModel{response: `{"emotion":"joy","reply":"I hear you.","summary":"Feeling good"}`}
	svc := newTestService(stub)

	result := svc.Classify(context.Background(), "I got the job!", nil, nil)

	assert.Equal(t, "I hear you.", result.Reply)
	assert.Equal(t, models.EmotionJoy, result.Emotion) // 大小写已归一化
	assert.Equal(t, "Feeling good", result.Summary)
}

// 外部服务编造的标签落不到集合内，回Neutral但保留回复
func TestClassify_HallucinatedEmotionBecomesNeutral(t *testing.T) {
	stub := &stubModel{response: `{"emotion":"Ecstatic","reply":"Wonderful!","summary":"Great news"}`}
	svc := newTestService(stub)

	result := svc.Classify(context.Background(), "hi", nil, nil)

	assert.Equal(t, models.EmotionNeutral, result.Emotion)
	assert.Equal(t, "Wonderful!", result.Reply)
}

// 请求必须是system指令+human内容两条消息，角色用llms包的常量
func TestClassify_SendsSystemAndHumanRoles(t *testing.T) {
	stub := &stubModel{response: `{"emotion":"Calm","reply":"ok","summary":"ok"}`}
	svc := newTestService(stub)

	svc.Classify(context.Background(), "hello", nil, nil)

	assert.Equal(t, []schema.ChatMessageType{
		schema.ChatMessageTypeSystem,
		schema.ChatMessageTypeHuman,
	}, stub.lastRoles)
}

func TestClassify_NetworkErrorFallsBack(t *testing.T) {
	stub := &stubModel{err: errors.New("connection refused")}
	svc := newTestService(stub)

	result := svc.Classify(context.Background(), "hello", nil, nil)

	assert.Equal(t, ClassifyResult{
		Reply:   FallbackReply,
		Emotion: FallbackEmotion,
		Summary: FallbackSummary,
	}, result)
}

func TestClassify_MalformedResponseFallsBack(t *testing.T) {
	cases := []struct {
		name     string
		response string
	}{
		{"非JSON", "I feel like chatting instead"},
		{"缺少emotion", `{"reply":"hi","summary":"greeting"}`},
		{"缺少reply", `{"emotion":"Joy","summary":"greeting"}`},
		{"缺少summary", `{"emotion":"Joy","reply":"hi"}`},
		{"空reply", `{"emotion":"Joy","reply":"   ","summary":"greeting"}`},
		{"空字符串", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(&stubModel{response: tc.response})
			result := svc.Classify(context.Background(), "hello", nil, nil)
			assert.Equal(t, FallbackReply, result.Reply)
			assert.Equal(t, FallbackEmotion, result.Emotion)
			assert.Equal(t, FallbackSummary, result.Summary)
		})
	}
}

func TestClassify_PromptCarriesHistoryAndMappings(t *testing.T) {
	stub := &stubModel{response: `{"emotion":"Calm","reply":"ok","summary":"ok"}`}
	svc := newTestService(stub)

	history := []models.ChatMessage{
		{Sender: models.SenderUser, Text: "rough week"},
		{Sender: models.SenderAI, Text: "That sounds hard."},
	}
	mappings := []models.CustomMapping{
		{Keyword: "gym", Emotion: models.EmotionOptimism},
	}

	svc.Classify(context.Background(), "went to the gym", history, mappings)

	assert.Contains(t, stub.lastText, `"gym"`)
	assert.Contains(t, stub.lastText, "Optimism")
	assert.Contains(t, stub.lastText, "user: rough week")
	assert.Contains(t, stub.lastText, "ai: That sounds hard.")
	assert.Contains(t, stub.lastText, "went to the gym")
}

func someEntries(n int) []models.MoodEntry {
	base := time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)
	entries := make([]models.MoodEntry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, entryAt(models.EmotionJoy, base.Add(time.Duration(i)*time.Hour)))
	}
	return entries
}

// 门槛之下不允许发起外部调用
func TestGenerateInsight_GateBlocksCall(t *testing.T) {
	stub := &stubModel{response: "insight text"}
	svc := newTestService(stub)

	_, err := svc.GenerateInsight(context.Background(), someEntries(2))

	assert.ErrorIs(t, err, ErrNotEnoughEntries)
	assert.Zero(t, stub.calls)
}

func TestGenerateInsight_Success(t *testing.T) {
	stub := &stubModel{response: "You seem calmer lately."}
	svc := newTestService(stub)

	insight, err := svc.GenerateInsight(context.Background(), someEntries(3))

	require.NoError(t, err)
	assert.Equal(t, "You seem calmer lately.", insight)
	assert.Contains(t, stub.lastText, "2025-11-03")
	assert.Contains(t, stub.lastText, "Joy")
}

// 与分类不同，洞察的失败原样向上抛
func TestGenerateInsight_ErrorPropagates(t *testing.T) {
	svc := newTestService(&stubModel{err: errors.New("boom")})

	_, err := svc.GenerateInsight(context.Background(), someEntries(3))
	assert.Error(t, err)
}

func TestGenerateWellnessContent(t *testing.T) {
	stub := &stubModel{response: "Close your eyes..."}
	svc := newTestService(stub)

	content, err := svc.GenerateWellnessContent(context.Background(), ToolMeditation, "sleep")
	require.NoError(t, err)
	assert.Equal(t, "Close your eyes...", content)
	assert.Contains(t, stub.lastText, "sleep")

	_, err = svc.GenerateWellnessContent(context.Background(), ToolAffirmation, "confidence")
	require.NoError(t, err)
	assert.Contains(t, stub.lastText, "confidence")
}

func TestGenerateWellnessContent_InvalidTool(t *testing.T) {
	stub := &stubModel{response: "x"}
	svc := newTestService(stub)

	_, err := svc.GenerateWellnessContent(context.Background(), "yoga", "sleep")
	assert.ErrorIs(t, err, ErrInvalidTool)
	assert.Zero(t, stub.calls)
}

func TestGenerateMoodBalancer_ParsesResult(t *testing.T) {
	stub := &stubModel{response: `{
		"detected_emotion": "Sadness",
		"emotion_intensity": "moderate",
		"suggested_voice_tone": "calm",
		"short_story_or_quote": "Once upon a time...",
		"activity_suggestion": "Take a short walk",
		"ai_reply_text": "I'm here with you.",
		"language": "Hindi"
	}`}
	svc := newTestService(stub)

	result, err := svc.GenerateMoodBalancer(context.Background(), "feeling low", "Hindi")

	require.NoError(t, err)
	assert.Equal(t, "Sadness", result.DetectedEmotion)
	assert.Equal(t, "calm", result.SuggestedVoiceTone)
	assert.Equal(t, "Hindi", result.Language)
	assert.Contains(t, stub.lastText, "feeling low")
	assert.Equal(t, []schema.ChatMessageType{
		schema.ChatMessageTypeSystem,
		schema.ChatMessageTypeHuman,
	}, stub.lastRoles)
}

func TestGenerateMoodBalancer_ErrorsPropagate(t *testing.T) {
	svc := newTestService(&stubModel{err: errors.New("timeout")})
	_, err := svc.GenerateMoodBalancer(context.Background(), "hi", "English")
	assert.Error(t, err)

	svc = newTestService(&stubModel{response: "not json"})
	_, err = svc.GenerateMoodBalancer(context.Background(), "hi", "English")
	assert.Error(t, err)
}
