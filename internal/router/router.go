package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pcote/learningmachine/internal/auth"
	"github.com/pcote/learningmachine/internal/handlers"
	"github.com/pcote/learningmachine/internal/middleware"
)

var defaultOrigins = []string{
	"http://localhost:8080",
	"http://localhost:5173",
}

func New(h *handlers.Handler, sessions *auth.Sessions, allowedOrigins []string) *gin.Engine {
	r := gin.Default()

	if len(allowedOrigins) == 0 {
		allowedOrigins = defaultOrigins
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Static("/static", "./static")

	r.GET("/", h.Welcome)
	r.GET("/login", h.Login)
	r.GET("/logout", h.Logout)
	r.GET("/userinfo", h.UserInfo)

	authed := r.Group("/", middleware.SessionAuth(sessions))
	{
		authed.GET("/exercises", h.GetExercises)
		authed.GET("/exercisehistory", h.ExerciseHistory)
		authed.POST("/addexercise", middleware.RequireJSON("new_question", "new_answer"), h.AddExercise)
		authed.POST("/deleteexercise", middleware.RequireJSON("exercise_id"), h.DeleteExercise)
		authed.POST("/addscore", middleware.RequireJSON("exercise_id", "score"), h.AddScore)
		authed.POST("/addresource", middleware.RequireJSON("caption", "url"), h.AddResource)
		authed.POST("/deleteresource", middleware.RequireJSON("resource_id"), h.DeleteResource)
		authed.GET("/resources", h.GetResources)
		authed.GET("/resources/exercise/:exercise_id", h.GetResourcesForExercise)
	}

	return r
}
