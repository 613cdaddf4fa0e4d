package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/Parallaxx203/audifyx-backend/internal/realtime"
	"github.com/Parallaxx203/audifyx-backend/internal/server/http/handlers"
	"github.com/Parallaxx203/audifyx-backend/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.AudifyxFacade, hub *realtime.Hub, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	pointsHandler := handlers.NewPointsHandler(facade)
	payoutHandler := handlers.NewPayoutHandler(facade)
	followHandler := handlers.NewFollowHandler(facade)
	messageHandler := handlers.NewMessageHandler(facade)
	contentHandler := handlers.NewContentHandler(facade)
	uploadHandler := handlers.NewUploadHandler(facade)
	wsHandler := handlers.NewWSHandler(facade, hub, logger)

	api := engine.Group("/api")
	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	auth := api.Group("")
	auth.Use(middleware.AuthRequired(facade))

	auth.GET("/user/me", authHandler.Me)
	auth.PATCH("/user/me", authHandler.UpdateProfile)

	auth.GET("/points", pointsHandler.Balance)
	auth.GET("/points/transactions", pointsHandler.Transactions)
	auth.POST("/points/award", pointsHandler.Award)

	auth.POST("/payouts", payoutHandler.Create)
	auth.GET("/payouts", payoutHandler.List)
	auth.GET("/admin/payouts", payoutHandler.AdminList)
	auth.POST("/admin/payouts/:id/resolve", payoutHandler.Resolve)

	auth.GET("/users/:id", authHandler.GetProfile)
	auth.POST("/users/:id/follow", followHandler.Follow)
	auth.DELETE("/users/:id/follow", followHandler.Unfollow)
	auth.GET("/users/:id/follow", followHandler.Status)
	auth.GET("/users/:id/follow-counts", followHandler.Counts)
	auth.GET("/users/:id/followers", followHandler.Followers)
	auth.GET("/users/:id/following", followHandler.Following)
	auth.GET("/users/:id/tracks", contentHandler.CreatorTracks)
	auth.GET("/users/:id/stats", contentHandler.CreatorStats)

	auth.POST("/messages", messageHandler.Send)
	auth.GET("/messages", messageHandler.Partners)
	auth.GET("/messages/:partnerID", messageHandler.History)
	auth.DELETE("/messages/:messageID", messageHandler.Delete)

	auth.POST("/groups", messageHandler.CreateGroup)
	auth.GET("/groups", messageHandler.Groups)
	auth.POST("/groups/:id/messages", messageHandler.SendGroupMessage)
	auth.GET("/groups/:id/messages", messageHandler.GroupHistory)
	auth.DELETE("/groups/messages/:messageID", messageHandler.DeleteGroupMessage)

	auth.POST("/tracks", contentHandler.PublishTrack)
	auth.GET("/tracks/:id", contentHandler.GetTrack)
	auth.POST("/tracks/:id/play", contentHandler.Play)

	auth.POST("/posts", contentHandler.CreatePost)
	auth.GET("/feed", contentHandler.Feed)

	auth.POST("/uploads/:bucket", uploadHandler.Upload)

	auth.GET("/ws", wsHandler.Connect)

	return engine
}
