package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/funkybooboo/alle-sub000/internal/adapter/http/handlers"
	"github.com/funkybooboo/alle-sub000/internal/adapter/http/middleware"
)

type Handlers struct {
	Health        *handlers.HealthHandler
	Tasks         *handlers.TaskHandler
	Extras        *handlers.ExtrasHandler
	Someday       *handlers.SomedayHandler
	Trash         *handlers.TrashHandler
	Settings      *handlers.SettingsHandler
	Presets       *handlers.PresetHandler
	Subscriptions http.Handler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.NoRoute(middleware.LanguageMiddleware(), middleware.NotFound())
	r.GET("/", handlers.Root)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware(), middleware.ErrorHandler())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		api.GET("/tasks", h.Tasks.ListTasks)
		api.POST("/tasks", h.Tasks.CreateTask)
		api.DELETE("/tasks", h.Tasks.DeleteAllTasks)
		api.GET("/tasks/:id", h.Tasks.GetTask)
		api.PATCH("/tasks/:id", h.Tasks.UpdateTask)
		api.DELETE("/tasks/:id", h.Tasks.DeleteTask)
		api.POST("/tasks/:id/toggle", h.Tasks.ToggleTask)
		api.POST("/tasks/:id/move", h.Tasks.MoveTask)

		api.POST("/tasks/:id/tags", h.Extras.AddTag)
		api.DELETE("/tasks/:id/tags/:tagId", h.Extras.RemoveTag)
		api.POST("/tasks/:id/links", h.Extras.AddLink)
		api.DELETE("/tasks/:id/links/:linkId", h.Extras.RemoveLink)
		api.GET("/tasks/:id/attachments", h.Extras.ListAttachments)
		api.GET("/attachments/:id", h.Extras.GetAttachment)
		api.GET("/attachments/:id/content", h.Extras.DownloadAttachment)
		api.DELETE("/attachments/:id", h.Extras.DeleteAttachment)
		api.POST("/upload", h.Extras.Upload)

		api.GET("/someday-lists", h.Someday.ListLists)
		api.POST("/someday-lists", h.Someday.CreateList)
		api.PUT("/someday-lists/order", h.Someday.ReorderLists)
		api.PATCH("/someday-lists/:id", h.Someday.RenameList)
		api.DELETE("/someday-lists/:id", h.Someday.DeleteList)

		api.GET("/trash", h.Trash.ListTrash)
		api.DELETE("/trash", h.Trash.Empty)
		api.POST("/trash/undo", h.Trash.Undo)
		api.POST("/trash/:id/restore", h.Trash.Restore)
		api.DELETE("/trash/:id", h.Trash.DeleteItem)

		api.GET("/settings", h.Settings.GetSettings)
		api.PATCH("/settings", h.Settings.UpdateSettings)
		api.POST("/settings/reset", h.Settings.ResetSettings)

		api.GET("/tag-presets", h.Presets.ListTagPresets)
		api.POST("/tag-presets", h.Presets.CreateTagPreset)
		api.PUT("/tag-presets/order", h.Presets.ReorderTagPresets)
		api.PATCH("/tag-presets/:id", h.Presets.UpdateTagPreset)
		api.DELETE("/tag-presets/:id", h.Presets.DeleteTagPreset)

		api.GET("/color-presets", h.Presets.ListColorPresets)
		api.POST("/color-presets", h.Presets.CreateColorPreset)
		api.PUT("/color-presets/order", h.Presets.ReorderColorPresets)
		api.PATCH("/color-presets/:id", h.Presets.UpdateColorPreset)
		api.DELETE("/color-presets/:id", h.Presets.DeleteColorPreset)

		if h.Subscriptions != nil {
			api.GET("/subscriptions", gin.WrapH(h.Subscriptions))
		}
	}
}

// NewRouter builds the engine with the shared middleware stack.
func NewRouter(logger *zap.Logger, h Handlers, corsOrigins, trustedProxies []string) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(trustedProxies); err != nil {
		return nil, err
	}
	r.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		middleware.GinZapMiddleware(logger),
		middleware.Metrics(),
		middleware.CORS(corsOrigins),
	)
	RegisterRoutes(r, h)
	return r, nil
}
