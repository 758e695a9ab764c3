package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"mali_scheduler_backend/internals/configs"
	database "mali_scheduler_backend/internals/databases"
	am "mali_scheduler_backend/internals/features/academics/model"
	hm "mali_scheduler_backend/internals/features/calendar/holidays/model"
	"mali_scheduler_backend/internals/features/calendar/scheduler"
	middlewares "mali_scheduler_backend/internals/middlewares"
	routes "mali_scheduler_backend/internals/route"
	"mali_scheduler_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
		// the xlsx export is sent whole
		BodyLimit: 4 * 1024 * 1024,
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	middlewares.SetupMiddlewares(app)

	// DB connect + pool + schema + warm-up
	database.ConnectDB()
	database.TunePool()
	database.AutoMigrate(
		&am.CourseModel{},
		&am.ProfessorModel{},
		&am.ModuleModel{},
		&am.SessionModel{},
		&hm.NationalHolidayModel{},
	)
	database.WarmUpQueries()

	// Redis is optional; nil disables the calendar cache
	database.ConnectRedis()

	svcs := routes.SetupRoutes(app, database.DB, database.RDB)

	if seeds.RunAllSeeds(database.DB) > 0 {
		svcs.Calendar.Invalidate(context.Background())
	}

	// scheduler after DB and routes are ready
	sched, err := scheduler.New(scheduler.ConfigFromEnv(), database.DB, svcs.Generator, svcs.Calendar)
	if err != nil {
		log.Fatalf("[SCHEDULER] %v", err)
	}
	sched.Start()

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := configs.GetEnv("PORT", "3000")

	go func() {
		log.Printf("[INFO] Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown: http, cron, redis, DB pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	sched.Stop(ctx)
	database.CloseRedis()
	database.Close()
	log.Println("[INFO] shutdown complete")
}
