package main

import (
	"os"
	"strings"
)

// Config carries everything read from the environment. It is built once in
// main and handed to the collaborators; no other code reads env state.
type Config struct {
	Port        string
	DBDSN       string
	AutoMigrate bool
}

func loadConfig() Config {
	return Config{
		Port:        getEnv("PORT", "8081"),
		DBDSN:       getEnv("DB_DSN", ""),
		AutoMigrate: getEnvBool("DB_AUTO_MIGRATE", true),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	switch strings.ToLower(v) {
	case "false", "0", "no":
		return false
	}
	return true
}
