package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Amitp2255/EchoMind/models"
	"github.com/Amitp2255/EchoMind/utils"
)

// HistoryWindow 传给分类器的上下文消息条数上限
// 控制prompt体积和调用成本，不是正确性约束
const HistoryWindow = 6

var (
	// ErrEmptyMessage 消息去掉首尾空白后为空
	ErrEmptyMessage = errors.New("消息内容不能为空")
	// ErrEmptyKeyword 关键词去掉首尾空白后为空
	ErrEmptyKeyword = errors.New("关键词不能为空")
)

// Session 单个用户的会话状态：聊天记录、情绪历史、自定义映射
// 三个序列都是只追加的，插入顺序即时间顺序，会话内不删除
// 所有写入经过同一把锁，保证每个会话的写串行
type Session struct {
	mu          sync.Mutex
	userID      string
	messages    []models.ChatMessage
	moodHistory []models.MoodEntry
	mappings    []models.CustomMapping
}

// NewSession 创建会话并播种欢迎消息
// 欢迎消息是AI消息但不产生情绪条目，只有真实的分类结果才进历史
func NewSession(userID, displayName string) *Session {
	s := &Session{userID: userID}

	greeting := "there"
	if displayName != "" {
		greeting = displayName
	}
	s.messages = append(s.messages, models.ChatMessage{
		ID:        utils.GenerateID(),
		Sender:    models.SenderAI,
		Text:      fmt.Sprintf("Hello, %s. This is a private, safe space to reflect. How are you feeling today?", greeting),
		Emotion:   models.EmotionCalm,
		Timestamp: time.Now(),
	})
	return s
}

// AppendUserMessage 追加一条用户消息
func (s *Session) AppendUserMessage(text string) (models.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return models.ChatMessage{}, ErrEmptyMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := models.ChatMessage{
		ID:        utils.GenerateID(),
		Sender:    models.SenderUser,
		Text:      text,
		Timestamp: time.Now(),
	}
	s.messages = append(s.messages, msg)
	return msg, nil
}

// AppendAIMessage 追加一条带情绪标签的AI消息
// emotion 必须已经过taxonomy归一化，这里不再校验
func (s *Session) AppendAIMessage(text string, emotion models.Emotion) models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := models.ChatMessage{
		ID:        utils.GenerateID(),
		Sender:    models.SenderAI,
		Text:      text,
		Emotion:   emotion,
		Timestamp: time.Now(),
	}
	s.messages = append(s.messages, msg)
	return msg
}

// AppendMoodEntry 追加一条情绪历史条目，与一次完成的AI回复1:1对应
func (s *Session) AppendMoodEntry(emotion models.Emotion, summary string) models.MoodEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := models.MoodEntry{
		ID:        utils.GenerateID(),
		Timestamp: time.Now(),
		Emotion:   emotion,
		Summary:   summary,
	}
	s.moodHistory = append(s.moodHistory, entry)
	return entry
}

// SetReaction 设置或清除某条消息的反馈情绪
// 幂等操作：消息不存在时静默返回，不是错误
func (s *Session) SetReaction(messageID string, reaction models.Emotion) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		if s.messages[i].ID == messageID {
			s.messages[i].Reaction = reaction
			return
		}
	}
}

// Messages 返回全部消息的副本，保持追加顺序
func (s *Session) Messages() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// RecentWindow 返回最近n条消息，不足n条时返回全部
func (s *Session) RecentWindow(n int) []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n <= 0 {
		return nil
	}
	start := len(s.messages) - n
	if start < 0 {
		start = 0
	}
	out := make([]models.ChatMessage, len(s.messages)-start)
	copy(out, s.messages[start:])
	return out
}

// MoodEntries 返回全部情绪历史的副本，保持追加顺序
func (s *Session) MoodEntries() []models.MoodEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.MoodEntry, len(s.moodHistory))
	copy(out, s.moodHistory)
	return out
}

// AddMapping 新增自定义映射，关键词做trim加小写归一化
// 允许重复关键词，全部作为提示传给分类器
func (s *Session) AddMapping(keyword string, emotion models.Emotion) (models.CustomMapping, error) {
	normalized := strings.ToLower(strings.TrimSpace(keyword))
	if normalized == "" {
		return models.CustomMapping{}, ErrEmptyKeyword
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m := models.CustomMapping{
		ID:      utils.GenerateID(),
		Keyword: normalized,
		Emotion: emotion,
	}
	s.mappings = append(s.mappings, m)
	return m, nil
}

// DeleteMapping 按ID删除映射，返回是否删除成功
func (s *Session) DeleteMapping(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.mappings {
		if s.mappings[i].ID == id {
			s.mappings = append(s.mappings[:i], s.mappings[i+1:]...)
			return true
		}
	}
	return false
}

// Mappings 返回全部自定义映射的副本
func (s *Session) Mappings() []models.CustomMapping {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.CustomMapping, len(s.mappings))
	copy(out, s.mappings)
	return out
}

// SessionManager 按用户ID管理会话
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Session),
	}
}

// Peek 只查找已有会话，不存在时返回nil
func (m *SessionManager) Peek(userID string) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[userID]
}

// Get 获取用户会话，不存在时创建
func (m *SessionManager) Get(userID, displayName string) *Session {
	m.mu.RLock()
	s, ok := m.sessions[userID]
	m.mu.RUnlock()
	if ok {
		return s
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[userID]; ok {
		return s
	}
	s = NewSession(userID, displayName)
	m.sessions[userID] = s
	return s
}
