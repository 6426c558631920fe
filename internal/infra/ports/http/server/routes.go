package server

import (
	"github.com/labstack/echo/v4"

	"github.com/aliasparty/backend/internal/application/config"
	"github.com/aliasparty/backend/internal/infra/ports/http/handlers"
	"github.com/aliasparty/backend/internal/infra/ports/http/middleware"
)

func New(
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	roomHandler *handlers.RoomHandler,
	teamHandler *handlers.TeamHandler,
	messageHandler *handlers.MessageHandler,
	wsHandler *handlers.WebSocketHandler,
) *echo.Echo {
	e := echo.New()

	e.HideBanner = true

	e.Use(middleware.SlogLogger())
	e.Use(middleware.PrometheusMiddleware())

	api := e.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		v1 := api.Group("/v1")
		v1.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
		{
			v1.GET("/me", authHandler.GetMe)

			v1.GET("/ws", wsHandler.Handle)

			v1.GET("/rooms", roomHandler.ListRoomsHandler)
			v1.POST("/rooms", roomHandler.CreateRoomHandler)
			v1.GET("/rooms/:roomID", roomHandler.GetRoomHandler)
			v1.DELETE("/rooms/:roomID", roomHandler.DeleteRoomHandler)
			v1.PATCH("/rooms/:roomID/calculate-scores", roomHandler.CalculateScoresHandler)

			v1.GET("/rooms/:roomID/teams", teamHandler.ListTeamsHandler)
			v1.POST("/rooms/:roomID/teams", teamHandler.CreateTeamHandler)
			v1.GET("/rooms/:roomID/teams/:teamID", teamHandler.GetTeamHandler)
			v1.DELETE("/rooms/:roomID/teams/:teamID", teamHandler.DeleteTeamHandler)
			v1.POST("/rooms/:roomID/teams/:teamID/players", teamHandler.AddPlayerHandler)
			v1.DELETE("/rooms/:roomID/teams/:teamID/players/:playerID", teamHandler.RemovePlayerHandler)
			v1.POST("/rooms/:roomID/teams/:teamID/rotate", teamHandler.RotateHandler)
			v1.POST("/rooms/:roomID/teams/:teamID/results", teamHandler.RecordResultHandler)

			v1.GET("/rooms/:roomID/messages", messageHandler.ListMessagesHandler)
			v1.POST("/rooms/:roomID/messages", messageHandler.PostMessageHandler)
		}
	}

	return e
}
