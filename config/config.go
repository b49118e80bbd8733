// Package config exposes environment-driven settings for the blog API
// along with the embedded version and name of the build.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("BLOG_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("BLOG_DEBUG") == "true"
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("BLOG_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "data"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("BLOG_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "logs"
	}
	return logFolderPath
}

// GetAssetFolder returns the root of the public asset namespace.
// Thumbnails live beneath it under assets/thumbnail.
func GetAssetFolder() string {
	assetFolder := os.Getenv("BLOG_ASSET_FOLDER")
	if assetFolder == "" {
		assetFolder = "public"
	}
	return assetFolder
}

func GetWebListen() string {
	return os.Getenv("BLOG_WEB_LISTEN")
}

func GetWebPort() int {
	port, err := strconv.Atoi(os.Getenv("BLOG_WEB_PORT"))
	if err != nil || port <= 0 {
		return 8080
	}
	return port
}

func GetJWTSecret() string {
	return os.Getenv("BLOG_JWT_SECRET")
}
