package routes

import (
	"github.com/Amitp2255/EchoMind/controllers"
	"github.com/Amitp2255/EchoMind/middleware"
	"github.com/Amitp2255/EchoMind/services"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, client *services.GeminiClient) {
	chatService := services.NewChatService(client)
	sessions := services.NewSessionManager()

	authController := controllers.AuthController{}
	chatController := controllers.NewChatController(chatService, sessions)
	moodController := controllers.NewMoodController(chatService, sessions)
	mappingController := controllers.NewMappingController(sessions)
	toolkitController := controllers.NewToolkitController(chatService)
	userController := controllers.UserController{}

	// 公开路由（无需认证）
	public := r.Group("/api/v1")
	{
		public.POST("/auth/register", authController.Register)
		public.POST("/auth/login", authController.Login)
		public.POST("/auth/google", authController.GoogleLogin)
	}

	// 需要认证的路由
	private := r.Group("/api/v1")
	private.Use(middleware.AuthMiddleware()) // 应用认证中间件
	{
		private.POST("/auth/logout", authController.Logout)

		// Chat 相关接口
		private.POST("/chat", chatController.SendMessage)
		private.GET("/chat/messages", chatController.GetMessages)
		private.POST("/chat/reaction", chatController.SetReaction)

		// 情绪仪表盘接口
		private.GET("/mood/history", moodController.GetHistory)
		private.GET("/mood/distribution", moodController.GetDistribution)
		private.GET("/mood/calendar", moodController.GetCalendar)
		private.POST("/mood/insight", moodController.GenerateInsight)

		// 自定义情绪映射接口
		private.GET("/mappings", mappingController.ListMappings)
		private.POST("/mappings", mappingController.AddMapping)
		private.DELETE("/mappings/:id", mappingController.DeleteMapping)

		// 放松工具接口
		private.POST("/toolkit/wellness", toolkitController.GenerateWellness)
		private.GET("/toolkit/languages", toolkitController.ListLanguages)
		private.POST("/toolkit/balancer", toolkitController.GenerateBalancer)

		private.GET("/user", userController.GetUser)
	}

	// 测试路由
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
