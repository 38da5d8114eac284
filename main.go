package main

import (
	"log"
	"time"

	"skillup/config"
	authController "skillup/controllers/auth"
	chatController "skillup/controllers/chat"
	communityController "skillup/controllers/community"
	progressController "skillup/controllers/progress"
	topicController "skillup/controllers/topic"
	userController "skillup/controllers/userControllers"
	"skillup/database"
	"skillup/middleware"
	"skillup/realtime"
	"skillup/routers/adminRoutes"
	"skillup/routers/authRoutes"
	"skillup/routers/chatRoutes"
	"skillup/routers/communityRoutes"
	"skillup/routers/progressRoutes"
	"skillup/routers/topicRoutes"
	"skillup/routers/userRoutes"
	"skillup/storage"
	"skillup/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg := config.LoadConfig()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	var media storage.MediaStore
	switch cfg.MediaDriver {
	case "s3":
		media, err = storage.NewObjectStore(cfg)
		if err != nil {
			log.Fatalf("Failed to init object store: %v", err)
		}
	default:
		media, err = storage.NewDiskStore(cfg.UploadDir, "/uploads")
		if err != nil {
			log.Fatalf("Failed to init disk store: %v", err)
		}
		// Orphan sweep only makes sense for the local directory
		utils.StartMediaCleanup(db, cfg.UploadDir)
	}

	jwt := middleware.NewJWT(cfg.JWTKey)
	mailer := utils.NewMailer(cfg.SendgridKey, cfg.EmailSender)
	hub := realtime.NewHub()

	auth := authController.New(db, jwt, cfg, mailer)
	user := userController.New(db, cfg, media)
	topic := topicController.New(db, media)
	progress := progressController.New(db)
	community := communityController.New(db, mailer)
	chat := chatController.New(db, hub)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
	}))

	app.Use(compress.New())

	// Serve uploaded media back to clients as static files
	app.Static("/uploads", cfg.UploadDir)

	authRoutes.SetupAuthRoutes(app, auth)
	userRoutes.SetupUserRoutes(app, jwt, user)
	topicRoutes.SetupTopicRoutes(app, jwt, topic)
	adminRoutes.SetupAdminRoutes(app, db, jwt, topic, community)
	progressRoutes.SetupProgressRoutes(app, progress)
	communityRoutes.SetupCommunityRoutes(app, jwt, community)
	chatRoutes.SetupChatRoutes(app, chat)

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
