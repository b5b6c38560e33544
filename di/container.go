package di

import (
	"context"
	"time"

	"canteen-widget/api"
	"canteen-widget/api/mensa"
	"canteen-widget/config"
	"canteen-widget/dao/snapshot"
	"canteen-widget/db"
	"canteen-widget/models"
	"canteen-widget/server"
	"canteen-widget/server/handlers"
	services "canteen-widget/service"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const ENV_PROD = "prod"

// Container holds all application dependencies.
type Container struct {
	Settings             config.Settings
	Logger               *zap.Logger
	WidgetConfigs        []models.WidgetConfig
	KeyValueClient       db.KeyValueClient
	PlanSnapshotDao      *snapshot.PlanSnapshotDAO
	MensaAPI             mensa.MensaAPI
	MenuService          *services.MenuService
	WidgetService        *services.WidgetService
	PlanRefresherService *services.PlanRefresherService
	WidgetHandler        *handlers.WidgetHandler
	MuxRouter            *mux.Router
	Router               *server.Router
	WidgetHttpServer     *server.WidgetHttpServer

	redisStore *db.GoRedisClient
}

// NewContainer initializes and wires up all dependencies.
// configsPath overrides the configs file of the settings when non-empty.
func NewContainer(env, configsPath string, settings config.Settings, logger *zap.Logger) *Container {
	logger.Debug("[Container] Initializing container", zap.String("env", env))
	ctx := context.Background()

	if configsPath == "" {
		configsPath = settings.ConfigsPath
	}
	widgetConfigs, err := config.LoadWidgetConfigs(configsPath)
	if err != nil {
		logger.Error("[Container] Failed to load widget configs, using defaults", zap.Error(err))
		widgetConfigs = config.NormalizeWidgetConfigs(config.DefaultWidgetConfigs)
	}

	location, err := time.LoadLocation(settings.Timezone)
	if err != nil {
		logger.Warn("[Container] Unknown timezone, using local time",
			zap.String("timezone", settings.Timezone), zap.Error(err))
		location = time.Local
	}

	// Initialize the snapshot store
	var kvClient db.KeyValueClient
	var redisStore *db.GoRedisClient
	if settings.CacheBackend == config.CACHE_BACKEND_REDIS {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     settings.RedisAddress,
			Password: config.REDIS_DB_PASSWORD,
			DB:       config.REDIS_DB,
		})
		redisStore = db.NewGoRedisClient(ctx, redisInternalClient, logger)
		kvClient = redisStore
		logger.Debug("[Container] Using redis snapshot store", zap.String("addr", settings.RedisAddress))
	} else {
		kvClient = db.NewFileClient(ctx, settings.CacheDir)
		logger.Debug("[Container] Using file snapshot store", zap.String("dir", settings.CacheDir))
	}
	if err := kvClient.Ping(); err != nil {
		// the widget still renders live data without a snapshot store
		logger.Warn("[Container] Snapshot store unavailable", zap.Error(err))
	}

	planSnapshotDao := snapshot.NewPlanSnapshotDAO(kvClient, config.PLAN_SNAPSHOT_KEY, logger)

	// Initialize MensaAPI - the mock serves the bundled plan outside prod
	var mensaApi mensa.MensaAPI
	if env != ENV_PROD {
		mensaApi = mensa.NewMensaApiClientMock(config.GetResourcePath(config.PLAN_RESPONSE_RESOURCE))
		logger.Info("[Container] Using mock canteen api")
	} else {
		mensaApi = mensa.NewMensaApiClient(api.NewHTTPClientWithTimeout(
			settings.APIBaseURL, config.CANTEEN_API_TIMEOUT_SECONDS*time.Second))
		logger.Debug("[Container] Using prod canteen api", zap.String("url", settings.APIBaseURL))
	}

	menuService := services.NewMenuService(mensaApi, planSnapshotDao, logger)
	widgetService := services.NewWidgetService(menuService, time.Now, location, logger)
	planRefresherService := services.NewPlanRefresherService(widgetService, widgetConfigs, logger)

	widgetHandler := handlers.NewWidgetHandler(widgetService, widgetConfigs, logger)
	muxRouter := mux.NewRouter()
	router := server.NewRouter(widgetHandler, muxRouter, logger)
	widgetHttpServer := server.NewWidgetHttpServer(
		router, muxRouter, config.HTTP_SERVER_SHUTDOWN_SECONDS*time.Second, logger)

	return &Container{
		Settings:             settings,
		Logger:               logger,
		WidgetConfigs:        widgetConfigs,
		KeyValueClient:       kvClient,
		PlanSnapshotDao:      planSnapshotDao,
		MensaAPI:             mensaApi,
		MenuService:          menuService,
		WidgetService:        widgetService,
		PlanRefresherService: planRefresherService,
		WidgetHandler:        widgetHandler,
		MuxRouter:            muxRouter,
		Router:               router,
		WidgetHttpServer:     widgetHttpServer,
		redisStore:           redisStore,
	}
}

// Close releases the connections held by the container.
func (c *Container) Close() error {
	if c.redisStore != nil {
		return c.redisStore.Close()
	}
	return nil
}
