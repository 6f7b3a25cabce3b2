package router

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/activity-catalog-api/api/swagger"
	"github.com/noah-isme/activity-catalog-api/internal/handler"
	"github.com/noah-isme/activity-catalog-api/internal/middleware"
	"github.com/noah-isme/activity-catalog-api/internal/service"
	"github.com/noah-isme/activity-catalog-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/activity-catalog-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/activity-catalog-api/pkg/middleware/requestid"
)

// Options carries everything the route table needs.
type Options struct {
	Logger         *zap.Logger
	Metrics        *service.MetricsService
	AllowedOrigins []string
	QueryTimeout   time.Duration
	EnableDocs     bool

	Teachers      *handler.TeacherHandler
	Activities    *handler.ActivityHandler
	ActivityTypes *handler.ActivityTypeHandler
	Observability *handler.MetricsHandler
}

// New assembles the gin engine.
func New(opts Options) *gin.Engine {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(opts.Logger))
	r.Use(middleware.Metrics(opts.Metrics))
	r.Use(corsmiddleware.New(opts.AllowedOrigins))

	if opts.Observability != nil {
		r.GET("/health", opts.Observability.Health)
		r.GET("/ready", opts.Observability.Ready)
		if opts.Metrics != nil {
			r.GET("/metrics", opts.Observability.Prometheus)
		}
	}

	if opts.EnableDocs {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	catalog := r.Group("/", middleware.QueryTimeout(opts.QueryTimeout))

	if opts.Teachers != nil {
		catalog.GET("/teachers/", opts.Teachers.List)
		catalog.GET("/teachers/:id", opts.Teachers.Get)
	}

	if opts.Activities != nil {
		catalog.GET("/activities/", opts.Activities.List)
		catalog.GET("/activities/highlighted/", opts.Activities.Highlighted)
		catalog.GET("/activities/:id", opts.Activities.Get)
	}

	if opts.ActivityTypes != nil {
		catalog.GET("/activity-types/", opts.ActivityTypes.List)
		catalog.GET("/activity-types/:id", opts.ActivityTypes.Get)
	}

	return r
}
