package main

import (
	"flag"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/qlindev/todosweep/database"
	"github.com/qlindev/todosweep/notify"
	"github.com/qlindev/todosweep/remote"
	"github.com/qlindev/todosweep/todo"
	"github.com/qlindev/todosweep/utils"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}

// Config holds all configuration parameters
type Config struct {
	AllowedUsers string
	Port         int
	Marker       string

	StoreBackend   string
	DataBasePath   string
	RemoteAddr     string
	RemoteUser     string
	RemotePassword string

	MailjetAPIKeyPublic  string
	MailjetAPIKeyPrivate string
	ReportSender         string
	ReportRecipient      string
	ReportRecipientName  string

	PurgePerMinute int
}

var (
	config    Config
	GitCommit string // Will be set at build time
)

func init() {
	flag.StringVar(&config.AllowedUsers, "allowed-users", "", "Comma-separated list of allowed users in the format 'username:password'")
	flag.IntVar(&config.Port, "port", 8080, "Port to run the server on")
	flag.StringVar(&config.Marker, "marker", todo.DefaultMarker, "Substring that classifies a todo item as related")

	flag.StringVar(&config.StoreBackend, "store", "sqlite", "Todo store backend: sqlite, memory or remote")
	flag.StringVar(&config.DataBasePath, "database-path", "", "Path to the SQLite database file")
	flag.StringVar(&config.RemoteAddr, "remote-addr", "", "Base URL of the remote todo API (store=remote)")
	flag.StringVar(&config.RemoteUser, "remote-user", "", "Basic auth username for the remote todo API")
	flag.StringVar(&config.RemotePassword, "remote-password", "", "Basic auth password for the remote todo API")

	flag.StringVar(&config.MailjetAPIKeyPublic, "mailjet-api-key-public", "", "The public API key for Mailjet")
	flag.StringVar(&config.MailjetAPIKeyPrivate, "mailjet-api-key-private", "", "The private API key for Mailjet")
	flag.StringVar(&config.ReportSender, "report-sender", "", "Sender email address for purge reports")
	flag.StringVar(&config.ReportRecipient, "report-recipient", "", "Recipient email address for purge reports")
	flag.StringVar(&config.ReportRecipientName, "report-recipient-name", "", "Recipient name for purge reports")

	flag.IntVar(&config.PurgePerMinute, "purge-per-minute", defaultPurgePerMinute, "Maximum purge requests per minute")
}

func setupStore(cfg Config) (TodoStore, error) {
	switch cfg.StoreBackend {
	case "sqlite":
		if cfg.DataBasePath == "" {
			return nil, fmt.Errorf("no database path provided, use --database-path to specify it")
		}
		return database.Open(cfg.DataBasePath)
	case "memory":
		return database.NewMemoryStore(), nil
	case "remote":
		if cfg.RemoteAddr == "" {
			return nil, fmt.Errorf("no remote address provided, use --remote-addr to specify it")
		}
		return remote.NewClient(cfg.RemoteAddr, cfg.RemoteUser, cfg.RemotePassword), nil
	default:
		return nil, fmt.Errorf("unsupported store backend: %s", cfg.StoreBackend)
	}
}

// setupNotifier builds the purge report mailer, or returns nil when mailjet
// keys are absent and reports are disabled.
func setupNotifier(cfg Config) (notify.Notifier, error) {
	if cfg.MailjetAPIKeyPublic == "" && cfg.MailjetAPIKeyPrivate == "" {
		return nil, nil
	}
	return notify.NewMailer(
		cfg.MailjetAPIKeyPublic,
		cfg.MailjetAPIKeyPrivate,
		cfg.ReportSender,
		cfg.ReportRecipient,
		cfg.ReportRecipientName,
	)
}

func setupRouter(allowedUsers gin.Accounts, app *App) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.Default()
	engine.Use(utils.RequestIDMiddleware(log))

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api", gin.BasicAuth(allowedUsers))
	api.Use(appMiddleware(app))
	api.GET("/todos/matching", HandleRetrieveMatching)
	api.POST("/todos", HandleCreateTodo)

	purgeLimit := app.PurgePerMinute
	if purgeLimit <= 0 {
		purgeLimit = defaultPurgePerMinute
	}
	v1 := api.Group("/v1")
	v1.Use(utils.RateLimitMiddleware(purgeLimit))
	v1.POST("/purge", HandlePurge)

	return engine
}

func main() {
	log.Infof("Server Starting time: %s", time.Now().Format(time.RFC3339))
	flag.Parse()

	if config.AllowedUsers == "" {
		log.Fatal("No allowed users provided. Use --allowed-users flag to specify them.")
	}

	store, err := setupStore(config)
	if err != nil {
		log.Fatalf("Failed to set up todo store: %v", err)
	}
	log.Infof("Todo store backend: %s", config.StoreBackend)

	notifier, err := setupNotifier(config)
	if err != nil {
		log.Fatalf("Failed to set up purge report mailer: %v", err)
	}
	if notifier == nil {
		log.Info("Purge report emails disabled (no mailjet keys provided)")
	}

	allowedUserMap, allowedUsersStrings := utils.ParseAllowedUsers(config.AllowedUsers)
	if len(allowedUserMap) == 0 {
		log.Fatal("No valid users found in the allowed users list.")
	}
	log.Infof("Allowed users (hidden passwords): %s", allowedUsersStrings)

	app := &App{
		Store:          store,
		Marker:         config.Marker,
		Notifier:       notifier,
		PurgePerMinute: config.PurgePerMinute,
	}

	engine := setupRouter(allowedUserMap, app)
	listenAddr := fmt.Sprintf(":%d", config.Port)
	log.Infof("Git commit: %s", GitCommit)
	log.Infof("Gin has started in %s mode on %s", gin.Mode(), listenAddr)

	if err := engine.Run(listenAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
