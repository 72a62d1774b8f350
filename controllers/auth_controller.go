package controllers

import (
	"net/http"
	"time"

	"github.com/Amitp2255/EchoMind/config"
	"github.com/Amitp2255/EchoMind/models"
	"github.com/Amitp2255/EchoMind/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthController 认证控制器
type AuthController struct{}

// Register 邮箱密码注册
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 邮箱查重
	var existing models.User
	if err := config.DB.Where("email = ? AND provider = ?", req.Email, "password").First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "该邮箱已注册"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "密码处理失败"})
		return
	}

	now := time.Now()
	user := models.User{
		ID:           utils.GenerateID(),
		Username:     req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Provider:     "password",
		CreatedAt:    now,
		LastLogin:    &now,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		config.Logger.Errorw("用户创建失败",
			"error", err,
			"email", req.Email,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "用户创建失败"})
		return
	}
	config.Logger.Infow("用户创建成功",
		"userID", user.ID,
		"provider", "password",
	)

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "令牌生成失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// Login 邮箱密码登录
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ? AND provider = ?", req.Email, "password").First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "邮箱或密码错误"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "邮箱或密码错误"})
		return
	}

	// 刷新最后登录时间
	now := time.Now()
	if err := config.DB.Model(&user).Update("last_login", now).Error; err != nil {
		config.Logger.Errorw("更新最后登录时间失败", "error", err, "userID", user.ID)
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "令牌生成失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// Logout 登出：把当前令牌加入Redis黑名单直到它自然过期
func (ac *AuthController) Logout(c *gin.Context) {
	tokenString := c.GetHeader("Authorization")
	claims, err := utils.ParseToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "无效的认证信息"})
		return
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl > 0 {
		if err := config.RedisClient.Set(c, "denylist:"+tokenString, 1, ttl).Err(); err != nil {
			config.Logger.Errorw("登出失败", "error", err, "userID", claims.UserID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "登出失败"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "已登出"})
}

// GoogleLogin Google联合登录
func (ac *AuthController) GoogleLogin(c *gin.Context) {
	var req models.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 验证Google身份令牌
	info, err := utils.VerifyGoogleIDToken(req.IDToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "身份验证失败"})
		return
	}

	now := time.Now()

	// 查找或创建用户
	var user models.User
	result := config.DB.Where("provider = ? AND provider_id = ?", "google", info.Sub).First(&user)
	if result.Error != nil {
		user = models.User{
			ID:         utils.GenerateID(),
			Provider:   "google",
			ProviderID: info.Sub,
			Username:   info.Name,
			Email:      info.Email,
			Avatar:     info.Picture,
			CreatedAt:  now,
			LastLogin:  &now,
		}
		if err := config.DB.Create(&user).Error; err != nil {
			config.Logger.Errorw("用户创建失败",
				"error", err,
				"provider", "google",
				"sub", info.Sub,
			)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "用户创建失败"})
			return
		}
		config.Logger.Infow("用户创建成功",
			"userID", user.ID,
			"provider", "google",
		)
	} else {
		// 已有用户合并最新资料，不覆盖已存在的自定义用户名
		updates := map[string]interface{}{"last_login": now}
		if user.Username == "" && info.Name != "" {
			updates["username"] = info.Name
		}
		if info.Picture != "" {
			updates["avatar"] = info.Picture
		}
		if err := config.DB.Model(&user).Updates(updates).Error; err != nil {
			config.Logger.Errorw("更新用户资料失败", "error", err, "userID", user.ID)
		}
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "令牌生成失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"avatar":   user.Avatar,
		},
	})
}
