package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"pizzeria_kassa/config"
	"pizzeria_kassa/database"
	"pizzeria_kassa/handler"
	"pizzeria_kassa/helper"
	"pizzeria_kassa/router"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // product images
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigDefault("CORS_ORIGINS", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()

	helper.InitRedis(config.Config("REDIS_ADDR"))
	defer helper.CloseRedis()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler.StartKitchenHub(ctx)
	helper.StartDailyCloseScheduler(database.DB)
	helper.StartAutoDeliverScheduler(database.DB)
	defer helper.StopSchedulers()

	router.SetupRoutes(app, helper.InitCloudinary())

	go func() {
		<-ctx.Done()
		log.Println("Shutting down")
		if err := app.Shutdown(); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	if err := app.Listen(":" + config.ConfigDefault("PORT", "8002")); err != nil {
		log.Fatal(err)
	}
}
