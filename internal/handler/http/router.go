package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Folio/internal/handler/http/middleware"
	usecasecontract "github.com/mikiasgoitom/Folio/internal/usecase/contract"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterOptions carries the HTTP-level settings.
type RouterOptions struct {
	MaxUploadBytes     int64
	RateLimitPerSecond float64
}

type Router struct {
	blogHandler     *BlogHandler
	categoryHandler *CategoryHandler
	authHandler     *AuthHandler
	authUsecase     usecasecontract.IAuthUseCase
	rateLimit       float64
}

// NewRouter wires the handlers. A nil categoryUsecase runs the API without category routes.
func NewRouter(blogUsecase usecasecontract.IBlogUseCase, categoryUsecase usecasecontract.ICategoryUseCase, authUsecase usecasecontract.IAuthUseCase, opts RouterOptions) *Router {
	r := &Router{
		blogHandler: NewBlogHandler(blogUsecase, opts.MaxUploadBytes),
		authHandler: NewAuthHandler(authUsecase),
		authUsecase: authUsecase,
		rateLimit:   opts.RateLimitPerSecond,
	}
	if categoryUsecase != nil {
		r.categoryHandler = NewCategoryHandler(categoryUsecase)
	}
	return r
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	if r.rateLimit > 0 {
		lmt := tollbooth.NewLimiter(r.rateLimit, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
		lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
		lmt.SetMessage("Too many requests, please try again later.")
		router.Use(middleware.RateLimiter(lmt))
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", r.authHandler.Login)

	// Public blog routes
	blogs := v1.Group("/blogs")
	{
		blogs.GET("", r.blogHandler.GetBlogsHandler)
		blogs.GET("/recent", r.blogHandler.GetRecentBlogsHandler)
		blogs.GET("/:blogID", r.blogHandler.GetBlogDetailHandler)
	}

	if r.categoryHandler != nil {
		categories := v1.Group("/categories")
		{
			categories.GET("", r.categoryHandler.GetCategoriesHandler)
			categories.GET("/:categoryID/blogs", r.categoryHandler.GetCategoryBlogsHandler)
		}
	}

	// Admin routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleWare(r.authUsecase))
	{
		protected.POST("/blogs", r.blogHandler.CreateBlogHandler)
		protected.PUT("/blogs/:blogID", r.blogHandler.UpdateBlogHandler)
		protected.DELETE("/blogs/:blogID", r.blogHandler.DeleteBlogHandler)

		if r.categoryHandler != nil {
			protected.POST("/categories", r.categoryHandler.CreateCategoryHandler)
			protected.PUT("/categories/:categoryID", r.categoryHandler.UpdateCategoryHandler)
			protected.DELETE("/categories/:categoryID", r.categoryHandler.DeleteCategoryHandler)
		}
	}
}
