package controllers

import (
	"errors"
	"net/http"

	"github.com/Amitp2255/EchoMind/models"
	"github.com/Amitp2255/EchoMind/services"
	"github.com/gin-gonic/gin"
)

type MappingController struct {
	sessions *services.SessionManager
}

func NewMappingController(sessions *services.SessionManager) *MappingController {
	return &MappingController{
		sessions: sessions,
	}
}

// ListMappings 返回全部自定义情绪映射
func (mc *MappingController) ListMappings(ctx *gin.Context) {
	uid, exists := ctx.Get("uid")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}

	session := sessionFor(mc.sessions, uid.(string))
	ctx.JSON(http.StatusOK, gin.H{
		"mappings": session.Mappings(),
	})
}

// AddMapping 新增自定义情绪映射
func (mc *MappingController) AddMapping(ctx *gin.Context) {
	uid, exists := ctx.Get("uid")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}

	var req models.AddMappingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if !models.IsValidEmotion(req.Emotion) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的情绪标签"})
		return
	}

	session := sessionFor(mc.sessions, uid.(string))
	mapping, err := session.AddMapping(req.Keyword, models.NormalizeEmotion(req.Emotion))
	if err != nil {
		if errors.Is(err, services.ErrEmptyKeyword) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "映射创建失败"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"mapping": mapping,
	})
}

// DeleteMapping 按ID删除自定义情绪映射
func (mc *MappingController) DeleteMapping(ctx *gin.Context) {
	uid, exists := ctx.Get("uid")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}

	id := ctx.Param("id")
	session := sessionFor(mc.sessions, uid.(string))
	if !session.DeleteMapping(id) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "映射不存在"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "映射已删除"})
}
