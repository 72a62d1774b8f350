package controllers

import (
	"errors"
	"net/http"

	"github.com/Amitp2255/EchoMind/config"
	"github.com/Amitp2255/EchoMind/models"
	"github.com/Amitp2255/EchoMind/services"
	"github.com/gin-gonic/gin"
)

type ChatController struct {
	chatService *services.ChatService
	sessions    *services.SessionManager
}

func NewChatController(chatService *services.ChatService, sessions *services.SessionManager) *ChatController {
	return &ChatController{
		chatService: chatService,
		sessions:    sessions,
	}
}

// sessionFor 取出用户会话，首次访问时查库拿展示名用于欢迎语
func sessionFor(sessions *services.SessionManager, uid string) *services.Session {
	if s := sessions.Peek(uid); s != nil {
		return s
	}

	displayName := ""
	var user models.User
	if err := config.DB.Where("id = ?", uid).First(&user).Error; err == nil {
		displayName = user.GetDisplayName()
	}
	return sessions.Get(uid, displayName)
}

// SendMessage 处理一轮聊天：识别情绪、生成回复、追加情绪历史
func (cc *ChatController) SendMessage(ctx *gin.Context) {
	uid, exists := ctx.Get("uid")
	if !exists {
		config.Logger.Errorw("未获取到用户ID")
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}

	var req models.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	session := sessionFor(cc.sessions, uid.(string))

	if _, err := session.AppendUserMessage(req.Message); err != nil {
		if errors.Is(err, services.ErrEmptyMessage) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "消息保存失败"})
		return
	}

	// 带上刚追加的用户消息在内的最近上下文
	history := session.RecentWindow(services.HistoryWindow)

	// Classify内部已兜底，永远会给出一个合法结果
	result := cc.chatService.Classify(ctx.Request.Context(), req.Message, history, session.Mappings())

	aiMessage := session.AppendAIMessage(result.Reply, result.Emotion)
	moodEntry := session.AppendMoodEntry(result.Emotion, result.Summary)

	ctx.JSON(http.StatusOK, models.SendMessageResponse{
		Message:   aiMessage,
		MoodEntry: moodEntry,
	})
}

// GetMessages 返回全部聊天记录，按追加顺序
func (cc *ChatController) GetMessages(ctx *gin.Context) {
	uid, exists := ctx.Get("uid")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}

	session := sessionFor(cc.sessions, uid.(string))
	ctx.JSON(http.StatusOK, gin.H{
		"messages": session.Messages(),
	})
}

// SetReaction 设置或清除某条AI消息的反馈情绪
// 消息不存在时按成功处理，这是UI层面的尽力而为操作
func (cc *ChatController) SetReaction(ctx *gin.Context) {
	uid, exists := ctx.Get("uid")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}

	var req models.SetReactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	var reaction models.Emotion
	if req.Reaction != "" {
		if !models.IsValidEmotion(req.Reaction) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的情绪标签"})
			return
		}
		reaction = models.NormalizeEmotion(req.Reaction)
	}

	session := sessionFor(cc.sessions, uid.(string))
	session.SetReaction(req.MessageID, reaction)

	ctx.JSON(http.StatusOK, gin.H{"message": "反馈已更新"})
}
