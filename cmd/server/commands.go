package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"marketplace/internal/auth"
	"marketplace/internal/config"
	httpctl "marketplace/internal/controllers/http"
	"marketplace/internal/infra/cache"
	mmysql "marketplace/internal/infra/mysql"
	"marketplace/internal/infra/rabbitmq"
	mysqlrepo "marketplace/internal/repository/mysql"
	"marketplace/internal/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := bootstrap()
		if err != nil {
			return err
		}
		if err := mmysql.Migrate(db); err != nil {
			return err
		}
		log.Info("schema migrated")
		return nil
	},
}

var (
	promoteEmail  string
	promoteSecret string
)

var promoteAdminCmd = &cobra.Command{
	Use:   "promote-admin",
	Short: "Make an existing account the administrator",
	Long: `Promote an existing account to administrator.

Examples:
  marketplace promote-admin --email owner@example.com --secret $ADMIN_SECRET_CODE`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := bootstrap()
		if err != nil {
			return err
		}
		users := mysqlrepo.NewUserRepository(db)
		tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL, users)
		svc := services.NewAuthService(users, auth.NewHasher(bcrypt.DefaultCost), tokens, rabbitmq.NopPublisher{}, cfg.AdminSecretCode)

		u, err := svc.PromoteToAdmin(cmd.Context(), promoteEmail, promoteSecret)
		if err != nil {
			return err
		}
		log.WithFields(log.Fields{"user_id": u.ID, "email": u.Email}).Info("administrator set")
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&port, "port", "", "HTTP port (overrides PORT)")

	promoteAdminCmd.Flags().StringVar(&promoteEmail, "email", "", "Email of the account to promote")
	promoteAdminCmd.Flags().StringVar(&promoteSecret, "secret", "", "Admin secret code")
	_ = promoteAdminCmd.MarkFlagRequired("email")
	_ = promoteAdminCmd.MarkFlagRequired("secret")
}

// bootstrap loads configuration, sets up logging and opens the database.
func bootstrap() (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	setupLogging(cfg.LogLevel)

	db, err := mmysql.Open(cfg.MySQL)
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}

func setupLogging(level string) {
	log.SetFormatter(&log.JSONFormatter{})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.WithField("level", level).Warn("unknown log level, using info")
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}

func runServe(cmd *cobra.Command) error {
	cfg, db, err := bootstrap()
	if err != nil {
		return err
	}
	if port != "" {
		cfg.Port = port
	}
	if err := mmysql.Migrate(db); err != nil {
		return err
	}

	users := mysqlrepo.NewUserRepository(db)
	products := mysqlrepo.NewProductRepository(db)
	factories := mysqlrepo.NewFactoryRepository(db)
	orders := mysqlrepo.NewOrderRepository(db)
	settings := mysqlrepo.NewSettingsRepository(db)

	var publisher rabbitmq.PublisherInterface = rabbitmq.NopPublisher{}
	if cfg.RabbitMQURL != "" {
		pub, err := rabbitmq.NewPublisher(cfg.RabbitMQURL, cfg.RabbitMQExchange)
		if err != nil {
			return err
		}
		defer pub.Close()
		publisher = pub
	} else {
		log.Warn("RABBITMQ_URL not set, domain events will be dropped")
	}

	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL, users)
	stats := services.NewStatsService(users, products, orders)
	svc := httpctl.Services{
		Auth:      services.NewAuthService(users, auth.NewHasher(bcrypt.DefaultCost), tokens, publisher, cfg.AdminSecretCode),
		Profile:   services.NewProfileService(users),
		Products:  services.NewProductService(products, factories, users),
		Factories: services.NewFactoryService(factories),
		Orders:    services.NewOrderService(orders, products, publisher),
		Vendors:   services.NewVendorService(users, stats, publisher),
		Stats:     stats,
		Settings:  services.NewSettingsService(settings),
	}

	if cfg.RedisHost != "" {
		rdb := cache.NewRedisClient(cfg.RedisHost)
		defer rdb.Close()
		c := cache.NewRedisCache(rdb)
		svc.Auth.SetCache(c, cfg.CacheTTL)
		svc.Profile.SetCache(c, cfg.CacheTTL)
		svc.Products.SetCache(c, cfg.CacheTTL)
		svc.Factories.SetCache(c, cfg.CacheTTL)
		svc.Settings.SetCache(c, cfg.CacheTTL)
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), httpctl.RequestLogger())
	httpctl.NewHandler(svc, tokens).RegisterRoutes(r)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.WithField("port", cfg.Port).Info("starting marketplace API")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
