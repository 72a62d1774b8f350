package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Amitp2255/EchoMind/config"
	"github.com/Amitp2255/EchoMind/models"
	"github.com/Amitp2255/EchoMind/services"
	"github.com/gin-gonic/gin"
)

// 洞察缓存的过期时间
const insightCacheTTL = time.Hour

// 数据不足时的占位文案，不发起外部调用
const notEnoughDataInsight = "There isn't enough data yet to generate insights. Keep journaling to see your patterns."

// 生成失败时的静态致歉文案
const insightFailureMessage = "Sorry, I couldn't generate insights at this time. Please try again later."

type MoodController struct {
	chatService *services.ChatService
	sessions    *services.SessionManager
}

func NewMoodController(chatService *services.ChatService, sessions *services.SessionManager) *MoodController {
	return &MoodController{
		chatService: chatService,
		sessions:    sessions,
	}
}

// GetHistory 返回全部情绪历史，按追加顺序
func (mc *MoodController) GetHistory(ctx *gin.Context) {
	uid, exists := ctx.Get("uid")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}

	session := sessionFor(mc.sessions, uid.(string))
	ctx.JSON(http.StatusOK, gin.H{
		"moodHistory": session.MoodEntries(),
	})
}

// GetDistribution 返回情绪分布统计，附带展示元数据
func (mc *MoodController) GetDistribution(ctx *gin.Context) {
	uid, exists := ctx.Get("uid")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}

	session := sessionFor(mc.sessions, uid.(string))
	dist := services.EmotionDistribution(session.MoodEntries())

	// 按taxonomy固定顺序输出，保证响应确定性
	items := make([]models.DistributionItem, 0, len(dist))
	for _, e := range models.AllEmotions() {
		if count, ok := dist[e]; ok {
			items = append(items, models.DistributionItem{
				Emotion: e,
				Count:   count,
				Color:   models.EmotionColors[e],
				Icon:    models.EmotionIcons[e],
			})
		}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"distribution": items,
	})
}

// GetCalendar 返回每天的主导情绪，供日历视图使用
func (mc *MoodController) GetCalendar(ctx *gin.Context) {
	uid, exists := ctx.Get("uid")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}

	session := sessionFor(mc.sessions, uid.(string))
	dominant := services.DominantEmotionByDay(session.MoodEntries())

	days := make([]models.CalendarDay, 0, len(dominant))
	for date, emotion := range dominant {
		days = append(days, models.CalendarDay{
			Date:    date,
			Emotion: emotion,
			Color:   models.EmotionColors[emotion],
		})
	}

	ctx.JSON(http.StatusOK, gin.H{
		"calendar": days,
	})
}

// GenerateInsight 生成仪表盘洞察
// 数据不足时直接返回占位文案，不调用外部服务；结果按用户缓存
func (mc *MoodController) GenerateInsight(ctx *gin.Context) {
	uid, exists := ctx.Get("uid")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}

	session := sessionFor(mc.sessions, uid.(string))
	entries := session.MoodEntries()

	if !services.InsightEligible(entries) {
		ctx.JSON(http.StatusOK, models.InsightResponse{
			Insight:   notEnoughDataInsight,
			Generated: false,
		})
		return
	}

	// 先查缓存，命中则不再调用外部服务
	cacheKey := "insight:" + uid.(string)
	if config.RedisClient != nil {
		if cached, err := config.RedisClient.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			ctx.JSON(http.StatusOK, models.InsightResponse{
				Insight:   cached,
				Generated: true,
				Cached:    true,
			})
			return
		}
	}

	insight, err := mc.chatService.GenerateInsight(ctx.Request.Context(), entries)
	if err != nil {
		if errors.Is(err, services.ErrNotEnoughEntries) {
			ctx.JSON(http.StatusOK, models.InsightResponse{
				Insight:   notEnoughDataInsight,
				Generated: false,
			})
			return
		}
		config.Logger.Errorw("生成洞察失败", "error", err, "uid", uid)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": insightFailureMessage})
		return
	}

	// 缓存失败不影响响应
	if config.RedisClient != nil {
		if err := config.RedisClient.Set(ctx, cacheKey, insight, insightCacheTTL).Err(); err != nil {
			config.Logger.Errorw("缓存洞察失败", "error", err, "uid", uid)
		}
	}

	ctx.JSON(http.StatusOK, models.InsightResponse{
		Insight:   insight,
		Generated: true,
	})
}
