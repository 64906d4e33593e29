package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Logger is global since we will need it everywhere
var Logger *slog.Logger

// ServerConfig contains all of the server settings
type ServerConfig struct {
	ListenAddrIP   string
	ListenAddrPort string
	WebDir         string // directory holding app.wasm and wasm_exec.js
	BaseURL        string // public address, used as the canonical link
	FrontEndConfig
}

// FrontEndConfig stores the settings published to the browser
type FrontEndConfig struct {
	SuccessDuration     time.Duration
	VisibilityThreshold float64
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration gets a duration environment variable with a default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

// getEnvFloat gets a float environment variable with a default value
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return f
}

// SetupServer loads configuration and returns ServerConfig and Logger
func SetupServer() (ServerConfig, *slog.Logger) {
	serverConfigLive := ServerConfig{}

	// Load .env file (silently ignore if doesn't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load("config.env")

	logger := setupLogging()
	Logger = logger

	// Server configuration
	serverConfigLive.ListenAddrPort = getEnv("SERVER_PORT", "8000")
	serverConfigLive.ListenAddrIP = getEnv("SERVER_ADDR", "")
	serverConfigLive.BaseURL = getEnv("BASE_URL", "")
	if serverConfigLive.BaseURL != "" {
		logger.Info("Using Reverse Proxy", "baseURL", serverConfigLive.BaseURL)
	}

	webDir, err := filepath.Abs(filepath.ToSlash(getEnv("WEB_DIR", "web")))
	if err != nil {
		logger.Error("Failed creating absolute path for web directory", "error", err)
		webDir = "web"
	}
	serverConfigLive.WebDir = webDir

	serverConfigLive.FrontEndConfig = loadFrontEnd(logger)

	fmt.Println("\n========================================")
	fmt.Println("   DataViz - Landing Page")
	fmt.Println("========================================")
	fmt.Printf("Server will start on: %s:%s\n", serverConfigLive.ListenAddrIP, serverConfigLive.ListenAddrPort)
	if serverConfigLive.ListenAddrIP == "" {
		fmt.Println("(Listening on all network interfaces)")
	}

	logger.Info("Server configuration loaded",
		"port", serverConfigLive.ListenAddrPort,
		"webDir", serverConfigLive.WebDir,
		"successDuration", serverConfigLive.SuccessDuration,
		"visibilityThreshold", serverConfigLive.VisibilityThreshold)

	return serverConfigLive, logger
}

// loadFrontEnd reads the browser tunables, rejecting out of range values
func loadFrontEnd(logger *slog.Logger) FrontEndConfig {
	frontEnd := FrontEndConfig{
		SuccessDuration:     getEnvDuration("SUCCESS_DURATION", 3*time.Second),
		VisibilityThreshold: getEnvFloat("VISIBILITY_THRESHOLD", 0.1),
	}
	if frontEnd.VisibilityThreshold <= 0 || frontEnd.VisibilityThreshold > 1 {
		logger.Warn("Visibility threshold out of range, using default", "value", frontEnd.VisibilityThreshold)
		frontEnd.VisibilityThreshold = 0.1
	}
	return frontEnd
}

// setupLogging configures the application logger
func setupLogging() *slog.Logger {
	logLevel := getEnv("LOG_LEVEL", "info")
	var level slog.Level

	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOptions := &slog.HandlerOptions{Level: level}

	logOutput := getEnv("LOG_OUTPUT", "stdout")
	var logWriter io.Writer

	if logOutput == "stdout" {
		logWriter = os.Stdout
	} else {
		logPath, err := filepath.Abs(filepath.ToSlash(getEnv("LOG_FILE", "dataviz.log")))
		if err != nil {
			fmt.Printf("Error creating log file path: %v\n", err)
			logWriter = os.Stdout
		} else {
			logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
			if err != nil {
				fmt.Printf("Failed to open log file: %v\n", err)
				logWriter = os.Stdout
			} else {
				logWriter = logFile
				fmt.Println("Logging to file: ", logPath)
			}
		}
	}

	handler := slog.NewTextHandler(logWriter, handlerOptions)
	return slog.New(handler)
}

// CheckWebDir verifies the wasm build output is where the server expects it
func CheckWebDir(webDir string, logger *slog.Logger) error {
	info, err := os.Stat(filepath.Join(webDir, "app.wasm"))
	if err != nil {
		logger.Warn("app.wasm not found, the page will be served prerendered only", "webDir", webDir)
		return fmt.Errorf("checking wasm binary: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("app.wasm in %s is a directory", webDir)
	}
	logger.Debug("WASM binary found", "path", filepath.Join(webDir, "app.wasm"), "size", info.Size())
	return nil
}
