package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ADAPortal/controllers"
	"github.com/ADAPortal/initializers"
	"github.com/ADAPortal/metrics"
	"github.com/ADAPortal/middlewares"
	"github.com/ADAPortal/models"
	"github.com/ADAPortal/services"
	"github.com/ADAPortal/sessions"
	"github.com/ADAPortal/upstream"
	"github.com/ADAPortal/workflow"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectDB()
	services.InitEmailService()
}

func main() {
	api := upstream.NewClient(os.Getenv("UPSTREAM_API_URL"), os.Getenv("UPSTREAM_API_TOKEN"))
	events := upstream.NewEventsClient(os.Getenv("EVENTS_API_URL"), os.Getenv("EVENTS_API_TOKEN"))

	var geoip *upstream.GeoIPClient
	if base := os.Getenv("GEOIP_API_URL"); base != "" {
		geoip = upstream.NewGeoIPClient(base)
	} else {
		log.Println("GEOIP_API_URL not set; country pre-selection disabled")
	}

	idle := initializers.EnvSeconds("SESSION_IDLE_SECONDS", 180*time.Second)
	store := sessions.NewStore(initializers.DB, idle)

	reloader := workflow.NewReloader(func(ctx context.Context) ([]models.Update, error) {
		return api.ListUpdates(ctx, "")
	})
	reloader.Start(context.Background(), initializers.EnvSeconds("UPDATES_POLL_SECONDS", 2*time.Minute))

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	controllers.Setup(api, events, geoip, store, reloader, collector)

	router := gin.Default()

	getKey := func(c *gin.Context) string {
		if gin.Mode() == gin.DebugMode {
			return c.FullPath()
		}
		return c.ClientIP()
	}

	router.POST("/login", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.UserLogin)
	router.GET("/ping", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.Ping)
	router.GET("/metrics", gin.WrapH(metrics.Handler(registry)))

	// public site
	router.GET("/updates", controllers.PublicUpdates)
	router.GET("/faqs", controllers.PublicFAQs)
	router.GET("/history", controllers.PublicHistory)
	router.GET("/events", controllers.PublicEvents)
	router.GET("/locations", controllers.PublicLocations)
	router.GET("/locations/grouped", controllers.GroupedLocations)
	router.GET("/geoip", controllers.GeoIPCountry)
	router.GET("/translations/:lang", controllers.Translations)

	router.GET("/prayers", controllers.PublicPrayerWall)
	router.POST("/prayers", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.SubmitPrayer)
	router.POST("/prayers/:prayer_id/like", middlewares.RateLimitMiddleware(5, 5, getKey), controllers.LikePrayer)

	router.POST("/counselling", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.SubmitCounselling)
	router.POST("/decisions", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.SubmitDecision)

	auth := router.Group("/admin")
	auth.Use(middlewares.CheckAuth(store, api))
	auth.Use(middlewares.RateLimitMiddleware(10, 10, getKey))
	{
		auth.GET("/me", controllers.GetMe)
		auth.POST("/logout", controllers.UserLogout)
		auth.POST("/session/activity", controllers.SessionActivity)

		// updates & moderation
		auth.GET("/updates", controllers.AdminListUpdates)
		auth.POST("/updates", controllers.AdminCreateUpdate)
		auth.GET("/updates/:update_id", controllers.AdminGetUpdate)
		auth.PATCH("/updates/:update_id", controllers.AdminEditUpdate)
		auth.POST("/updates/:update_id/action/:action", controllers.UpdateModerationAction)
		auth.POST("/updates/notifications/dismiss", controllers.DismissReviewNotifications)

		// FAQ management
		auth.GET("/faqs", controllers.AdminListFAQs)
		auth.POST("/faqs", controllers.AdminCreateFAQ)
		auth.GET("/faqs/:faq_id", controllers.AdminGetFAQ)
		auth.PUT("/faqs/:faq_id", controllers.AdminUpdateFAQ)
		auth.DELETE("/faqs/:faq_id", controllers.AdminDeleteFAQ)

		// history management
		auth.GET("/history", controllers.AdminListHistory)
		auth.POST("/history", controllers.AdminCreateHistoryEvent)
		auth.GET("/history/:history_id", controllers.AdminGetHistoryEvent)
		auth.PUT("/history/:history_id", controllers.AdminUpdateHistoryEvent)
		auth.DELETE("/history/:history_id", controllers.AdminDeleteHistoryEvent)

		// manager only routes
		manager := auth.Group("/")
		manager.Use(middlewares.CheckManager)
		{
			manager.GET("/prayers", controllers.AdminListPrayers)
			manager.POST("/prayers/:prayer_id/approve", controllers.ApprovePrayer)
			manager.DELETE("/prayers/:prayer_id", controllers.DeletePrayer)

			manager.GET("/users", controllers.AdminListUsers)
			manager.POST("/users", controllers.AdminCreateUser)
			manager.GET("/users/:user_id", controllers.AdminGetUser)
			manager.PATCH("/users/:user_id", controllers.AdminPatchUser)
			manager.DELETE("/users/:user_id", controllers.AdminDeleteUser)
		}
	}

	if err := router.Run(); err != nil {
		log.Fatal(err)
	}
}
