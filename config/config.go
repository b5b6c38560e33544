package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Canteen API config
const CANTEEN_API_BASE_URL = "https://ves.uni-mainz.de/services/python/spaiseplan"
const CANTEEN_API_PLAN_ENDPOINT = "/plan"
const CANTEEN_API_TIMEOUT_SECONDS = 10

// Snapshot cache config
const CACHE_BACKEND_FILE = "file"
const CACHE_BACKEND_REDIS = "redis"
const CACHE_DIRECTORY_NAME = "canteen"
const PLAN_SNAPSHOT_KEY = "meal_data"

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// HTTP server config
const HTTP_SERVER_ADDRESS = ":8080"
const HTTP_SERVER_SHUTDOWN_SECONDS = 5
const PLAN_REFRESHER_INTERVAL_MINUTES = 30

const DEFAULT_TIMEZONE = "Europe/Berlin"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const PLAN_RESPONSE_RESOURCE = "plan_response.json"
const PLAN_SNAPSHOT_RESOURCE = "plan_snapshot.json"
const WIDGET_CONFIGS_RESOURCE = "widget_configs.yaml"

// Environment variables
const ENV_API_URL = "CANTEEN_API_URL"
const ENV_CACHE_BACKEND = "CANTEEN_CACHE_BACKEND"
const ENV_CACHE_DIR = "CANTEEN_CACHE_DIR"
const ENV_REDIS_ADDRESS = "CANTEEN_REDIS_ADDRESS"
const ENV_TIMEZONE = "CANTEEN_TIMEZONE"
const ENV_HTTP_ADDRESS = "CANTEEN_HTTP_ADDRESS"
const ENV_CONFIGS_PATH = "CANTEEN_CONFIGS_PATH"

// Settings holds the deployment settings read from the environment.
type Settings struct {
	APIBaseURL   string
	CacheBackend string
	CacheDir     string
	RedisAddress string
	Timezone     string
	HTTPAddress  string
	ConfigsPath  string
}

// LoadSettings reads an optional .env file and the process environment.
func LoadSettings() Settings {
	// a missing .env file is fine
	_ = godotenv.Load()

	return Settings{
		APIBaseURL:   getEnv(ENV_API_URL, CANTEEN_API_BASE_URL),
		CacheBackend: getEnv(ENV_CACHE_BACKEND, CACHE_BACKEND_FILE),
		CacheDir:     getEnv(ENV_CACHE_DIR, DefaultCacheDir()),
		RedisAddress: getEnv(ENV_REDIS_ADDRESS, REDIS_DB_ADDRESS),
		Timezone:     getEnv(ENV_TIMEZONE, DEFAULT_TIMEZONE),
		HTTPAddress:  getEnv(ENV_HTTP_ADDRESS, HTTP_SERVER_ADDRESS),
		ConfigsPath:  os.Getenv(ENV_CONFIGS_PATH),
	}
}

// DefaultCacheDir returns the per user cache directory of the widget.
func DefaultCacheDir() string {
	root, err := os.UserCacheDir()
	if err != nil {
		root = BaseDir()
	}
	return filepath.Join(root, CACHE_DIRECTORY_NAME)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
