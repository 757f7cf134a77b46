package api

import (
	"net/http"

	voicecallHandler "bati-server/internal/voicecall/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router           *gin.RouterGroup
	voiceCallHandler voicecallHandler.Handler
}

func New(router *gin.RouterGroup, voiceCallHandler voicecallHandler.Handler) API {
	return API{
		router:           router,
		voiceCallHandler: voiceCallHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	webhookGroup := a.router.Group("/webhook")
	{
		webhookGroup.POST("/incoming-call", a.voiceCallHandler.HandleIncomingCall)
		webhookGroup.POST("/ai-takeover", a.voiceCallHandler.HandleDialTakeover)
		webhookGroup.POST("/process-recording", a.voiceCallHandler.HandleRecordingComplete)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
