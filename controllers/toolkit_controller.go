package controllers

import (
	"errors"
	"net/http"

	"github.com/Amitp2255/EchoMind/config"
	"github.com/Amitp2255/EchoMind/models"
	"github.com/Amitp2255/EchoMind/services"
	"github.com/gin-gonic/gin"
)

// 放松工具生成失败时的静态致歉文案
const wellnessFailureMessage = "Sorry, I couldn't generate this tool right now. Please try again later."

type ToolkitController struct {
	chatService *services.ChatService
}

func NewToolkitController(chatService *services.ChatService) *ToolkitController {
	return &ToolkitController{
		chatService: chatService,
	}
}

// ListLanguages 返回情绪平衡器支持的语言列表，供客户端渲染选择器
func (tc *ToolkitController) ListLanguages(ctx *gin.Context) {
	languages := make([]models.LanguageOption, 0, len(models.SupportedLanguages))
	for _, lang := range models.SupportedLanguages {
		languages = append(languages, models.LanguageOption{
			Language:  lang,
			VoiceLang: models.LanguageTag(lang),
		})
	}

	ctx.JSON(http.StatusOK, gin.H{
		"languages": languages,
	})
}

// GenerateWellness 生成冥想脚本或肯定语
func (tc *ToolkitController) GenerateWellness(ctx *gin.Context) {
	var req models.WellnessRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	content, err := tc.chatService.GenerateWellnessContent(
		ctx.Request.Context(), services.WellnessTool(req.Tool), req.Topic)
	if err != nil {
		if errors.Is(err, services.ErrInvalidTool) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		config.Logger.Errorw("生成放松工具内容失败", "error", err, "tool", req.Tool)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": wellnessFailureMessage})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"content": content,
	})
}

// GenerateBalancer 生成多语言情绪平衡内容
func (tc *ToolkitController) GenerateBalancer(ctx *gin.Context) {
	var req models.MoodBalancerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	language := req.Language
	if language == "" {
		language = "English"
	}
	if !models.IsSupportedLanguage(language) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "不支持的语言"})
		return
	}

	result, err := tc.chatService.GenerateMoodBalancer(ctx.Request.Context(), req.Message, language)
	if err != nil {
		config.Logger.Errorw("生成情绪平衡内容失败", "error", err, "language", language)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": wellnessFailureMessage})
		return
	}

	ctx.JSON(http.StatusOK, models.BalancerResponse{
		Result:    result,
		VoiceLang: models.LanguageTag(result.Language),
	})
}
