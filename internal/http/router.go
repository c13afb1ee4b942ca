package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RouterConfig bundles the controllers the router mounts. Using a config
// struct keeps the constructor signature stable as resources are added.
type RouterConfig struct {
	Categories *CategoriesController
	Topics     *TopicsController
	Lessons    *LessonsController
	Fabrics    *FabricsController
	Garments   *GarmentsController
	Terms      *TermsController
	Health     *HealthController
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Authorization", "Content-Type", "X-Requested-With"},
	}))

	router.GET("/health", cfg.Health.Status)

	api := router.Group("/api")
	{
		api.GET("/categories", cfg.Categories.List)
		api.GET("/categories/:id", cfg.Categories.Get)
		api.POST("/categories", cfg.Categories.Create)
		api.PUT("/categories/:id", cfg.Categories.Update)
		api.DELETE("/categories/:id", cfg.Categories.Delete)
		api.GET("/categories/:id/topics", cfg.Categories.ListTopics)

		api.GET("/topics", cfg.Topics.List)
		api.GET("/topics/:id", cfg.Topics.Get)
		api.POST("/topics", cfg.Topics.Create)
		api.PUT("/topics/:id", cfg.Topics.Update)
		api.DELETE("/topics/:id", cfg.Topics.Delete)
		api.GET("/topics/:id/lessons", cfg.Lessons.ListByTopic)

		api.GET("/lessons", cfg.Lessons.List)
		api.GET("/lessons/:id", cfg.Lessons.Get)
		api.POST("/lessons", cfg.Lessons.Create)
		api.PUT("/lessons/:id", cfg.Lessons.Update)
		api.DELETE("/lessons/:id", cfg.Lessons.Delete)
		api.GET("/lessons/:id/references", cfg.Lessons.GetReferences)
		api.POST("/lessons/:id/fabrics", cfg.Lessons.AddFabric)
		api.DELETE("/lessons/:id/fabrics/:fabricID", cfg.Lessons.RemoveFabric)
		api.POST("/lessons/:id/garments", cfg.Lessons.AddGarment)
		api.DELETE("/lessons/:id/garments/:garmentID", cfg.Lessons.RemoveGarment)
		api.POST("/lessons/:id/terms", cfg.Lessons.AddTerm)
		api.DELETE("/lessons/:id/terms/:termID", cfg.Lessons.RemoveTerm)
		api.POST("/lessons/:id/tags", cfg.Lessons.AddTag)
		api.DELETE("/lessons/:id/tags/:tagID", cfg.Lessons.RemoveTag)

		api.GET("/fabrics", cfg.Fabrics.List)
		api.GET("/fabrics/:id", cfg.Fabrics.Get)
		api.POST("/fabrics", cfg.Fabrics.Create)
		api.PUT("/fabrics/:id", cfg.Fabrics.Update)
		api.DELETE("/fabrics/:id", cfg.Fabrics.Delete)
		api.GET("/fabrics/:id/garments", cfg.Fabrics.ListGarments)
		api.POST("/fabrics/:id/garments", cfg.Fabrics.AddGarment)
		api.DELETE("/fabrics/:id/garments/:garmentID", cfg.Fabrics.RemoveGarment)

		api.GET("/garments", cfg.Garments.List)
		api.GET("/garments/:id", cfg.Garments.Get)
		api.POST("/garments", cfg.Garments.Create)
		api.PUT("/garments/:id", cfg.Garments.Update)
		api.DELETE("/garments/:id", cfg.Garments.Delete)

		api.GET("/terms", cfg.Terms.List)
		api.GET("/terms/:id", cfg.Terms.Get)
		api.POST("/terms", cfg.Terms.Create)
		api.PUT("/terms/:id", cfg.Terms.Update)
		api.DELETE("/terms/:id", cfg.Terms.Delete)
	}

	return router
}
