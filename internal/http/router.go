package api

import (
	"log"
	stdhttp "net/http"

	intconfig "todoapi/internal/config"
	h "todoapi/internal/http/handlers"
	"todoapi/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		gin.Recovery(),
		middleware.CORS(env.CORSOrigins),
		middleware.Auth([]byte(env.JWTSecret)),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		api.GET("/viewer", h.Viewer)

		// Users
		users := api.Group("/users")
		users.GET("", h.GetUsers)
		users.GET("/:id", h.GetUserByID)
		users.POST("", h.CreateUser)
		users.PATCH("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
		users.GET("/:id/todos", h.GetUserTodos)
		users.POST("/:id/todos", h.CreateTodo)

		// Todos
		todos := api.Group("/todos")
		todos.GET("/:id", h.GetTodoByID)
		todos.PATCH("/:id", h.UpdateTodo)
		todos.DELETE("/:id", h.DeleteTodo)
		todos.POST("/:id/complete", h.CompleteTodo)
		todos.POST("/:id/uncomplete", h.UncompleteTodo)
	}

	return r
}
