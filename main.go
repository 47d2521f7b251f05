package main

import (
	"log"
	"net/http"

	"clickexpress-cms/config"
	"clickexpress-cms/handlers"
	"clickexpress-cms/helper"
	"clickexpress-cms/middleware"
	"clickexpress-cms/repositories"
	"clickexpress-cms/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()

	// Initialize database
	db := config.InitDB(cfg)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	tokenRepo := repositories.NewTokenRepository(db)
	blogRepo := repositories.NewBlogRepository(db)
	galleryRepo := repositories.NewGalleryRepository(db)
	contactRepo := repositories.NewContactRepository(db)
	newsletterRepo := repositories.NewNewsletterRepository(db)

	// Email providers. A nil sender means "not configured" and the
	// notifier treats it as a failed attempt.
	var primary, secondary services.EmailSender
	if s := services.NewMailgunSender(cfg); s != nil {
		primary = s
	}
	if s := services.NewSMTPSender(cfg); s != nil {
		secondary = s
	}
	notifier := services.NewNotifier(primary, secondary, cfg.AdminEmail)

	// Initialize services
	httpHelper := helper.NewHTTPHelper()
	authService := services.NewAuthService(cfg, userRepo, tokenRepo)
	blogService := services.NewBlogService(blogRepo, httpHelper)
	galleryService := services.NewGalleryService(galleryRepo, httpHelper)
	contactService := services.NewContactService(contactRepo, newsletterRepo, notifier, httpHelper)
	uploadService := services.NewUploadService(services.NewLocalStorage(cfg.MediaRoot), cfg.MediaBaseURL)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, httpHelper)
	blogHandler := handlers.NewBlogHandler(blogService, httpHelper)
	galleryHandler := handlers.NewGalleryHandler(galleryService, httpHelper)
	contactHandler := handlers.NewContactHandler(contactService, httpHelper)
	uploadHandler := handlers.NewUploadHandler(uploadService, httpHelper)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Uploaded images
	router.Static("/media", cfg.MediaRoot)

	authRequired := middleware.AuthMiddleware(authService)

	// API routes
	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
			auth.POST("/logout", authRequired, authHandler.Logout)
			auth.GET("/verify", authRequired, authHandler.Verify)
		}

		blog := v1.Group("/blog-posts")
		{
			blog.GET("", blogHandler.GetPublicPosts)
			blog.GET("/:id", blogHandler.GetPublicPost)
			blog.POST("/create", authRequired, blogHandler.CreatePost)
			blog.PUT("/:id/update", authRequired, blogHandler.UpdatePost)
			blog.DELETE("/:id/delete", authRequired, blogHandler.DeletePost)
		}

		gallery := v1.Group("/gallery-images")
		{
			gallery.GET("", galleryHandler.GetImages)
			gallery.GET("/:id", galleryHandler.GetImage)
			gallery.POST("/create", authRequired, galleryHandler.CreateImage)
			gallery.PUT("/:id/update", authRequired, galleryHandler.UpdateImage)
			gallery.DELETE("/:id/delete", authRequired, galleryHandler.DeleteImage)
		}

		contact := v1.Group("/contact")
		{
			contact.POST("", contactHandler.CreateMessage)
			contact.POST("/newsletter", contactHandler.Subscribe)
			contact.GET("/newsletter/subscribers", authRequired, contactHandler.GetSubscribers)
			contact.GET("/messages", authRequired, contactHandler.GetMessages)
			contact.GET("/messages/:id", authRequired, contactHandler.GetMessage)
			contact.PUT("/messages/:id/status", authRequired, contactHandler.UpdateMessageStatus)
			contact.DELETE("/messages/:id/delete", authRequired, contactHandler.DeleteMessage)
		}

		v1.POST("/upload/image", authRequired, uploadHandler.UploadImage)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	log.Fatal(router.Run(":" + cfg.Port))
}
