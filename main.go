package main

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"renta-autos-backend/internal/fleet/alerts"
	"renta-autos-backend/internal/fleet/customers"
	"renta-autos-backend/internal/fleet/rentals"
	"renta-autos-backend/internal/fleet/repairs"
	"renta-autos-backend/internal/fleet/returns"
	"renta-autos-backend/internal/fleet/vehicles"
	"renta-autos-backend/internal/platform/auth"
	"renta-autos-backend/internal/platform/db"
	"renta-autos-backend/internal/platform/logger"
)

//go:embed web/templates
var templatesFS embed.FS

func main() {
	// .env is optional, real env always wins
	_ = godotenv.Load()

	cfg, err := db.LoadConfig("config/config.yaml")
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.Mode)
	defer log.Sync()

	conn, err := db.Connect(cfg.DB)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	defer conn.Close()

	log.Info("connected to database", zap.String("dbname", cfg.DB.DBName))

	if cfg.Mode != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	_ = r.SetTrustedProxies(nil)

	if cfg.Mode == "dev" {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowCredentials: true,
		}))
	}

	r.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "web/templates/*.html")))

	sessions := auth.NewSessionManager(time.Duration(cfg.Session.TTLMinutes) * time.Minute)

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/", func(c *gin.Context) { c.HTML(http.StatusOK, "index.html", nil) })

	auth.RegisterRoutes(r, auth.NewService(conn, sessions), sessions)

	customersSvc := customers.NewService(conn)
	customers.RegisterRoutes(r, customersSvc, sessions)
	customers.RegisterPageRoutes(r, customersSvc, sessions)

	vehiclesSvc := vehicles.NewService(conn)
	vehicles.RegisterRoutes(r, vehiclesSvc, sessions)
	vehicles.RegisterPageRoutes(r, vehiclesSvc, sessions)

	repairsSvc := repairs.NewService(conn)
	repairs.RegisterRoutes(r, repairsSvc, sessions)
	repairs.RegisterPageRoutes(r, repairsSvc, sessions)

	rentalsSvc := rentals.NewService(conn)
	rentals.RegisterRoutes(r, rentalsSvc, sessions)
	rentals.RegisterPageRoutes(r, rentalsSvc, sessions)

	returnsSvc := returns.NewService(conn)
	returns.RegisterRoutes(r, returnsSvc, sessions)
	returns.RegisterPageRoutes(r, returnsSvc, sessions)

	alerts.RegisterRoutes(r, alerts.NewService(conn), sessions)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: r,
	}

	go func() {
		log.Info("listening", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("shutdown failed", zap.Error(err))
	}
}
