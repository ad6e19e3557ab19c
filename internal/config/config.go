package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	Port        string
	DatabaseURL string

	AdminEmail    string
	AdminPassword string
	CookieDomain  string

	UploadDir     string
	PublicBaseURL string

	AssetProxyUpstream string
}

func FromEnv() (Config, error) {
	var c Config

	c.Port = strings.TrimSpace(os.Getenv("PORT"))
	if c.Port == "" {
		c.Port = "3000"
	}

	c.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if c.DatabaseURL == "" {
		return c, fmt.Errorf("DATABASE_URL is empty")
	}

	c.AdminEmail = strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	c.AdminPassword = os.Getenv("ADMIN_PASSWORD")
	c.CookieDomain = strings.TrimSpace(os.Getenv("DOMAIN"))

	c.UploadDir = strings.TrimSpace(os.Getenv("UPLOAD_DIR"))
	if c.UploadDir == "" {
		c.UploadDir = "./uploads"
	}

	c.PublicBaseURL = strings.TrimRight(strings.TrimSpace(os.Getenv("PUBLIC_BASE_URL")), "/")
	if c.PublicBaseURL == "" {
		c.PublicBaseURL = "http://localhost:" + c.Port
	}

	c.AssetProxyUpstream = strings.TrimRight(strings.TrimSpace(os.Getenv("ASSET_PROXY_UPSTREAM")), "/")
	if c.AssetProxyUpstream == "" {
		c.AssetProxyUpstream = "https://unpkg.com"
	}

	return c, nil
}
