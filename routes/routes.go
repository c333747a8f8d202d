package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"langham-hms/controllers"
	"langham-hms/middleware"
	"langham-hms/utils"
)

func normalizeOrigins(raw []string) []string {
	origins := make([]string, 0, len(raw))
	for _, part := range raw {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter builds the read-only status API.
func SetupRouter(
	rc *controllers.RoomController,
	ac *controllers.AllocationController,
	corsOrigins []string,
	logger *logrus.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(logger))

	origins := normalizeOrigins(corsOrigins)
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			// must stay ahead of /:number
			rooms.GET("/available", rc.GetAvailableRooms)
			rooms.GET("/:number", rc.GetRoom)
		}

		allocations := api.Group("/allocations")
		{
			allocations.GET("", ac.GetAllocations)
			allocations.GET("/:room", ac.GetAllocation)
		}

		api.GET("/report", ac.GetReport)
	}

	r.NoRoute(func(c *gin.Context) {
		utils.JSONError(c, http.StatusNotFound, "route not found")
	})

	return r
}
