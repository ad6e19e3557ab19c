package types

import (
	"os"
	"strings"
)

const ContextUserKey = "user"

// Websocket channels the admin dashboard may subscribe to. Consumers refetch
// the whole table on every refresh event, so the channel name is the table name.
const (
	TableRegistrations      = "registrations"
	TableProjectSubmissions = "project_submissions"
)

// The fixed set of problem statements a project may be submitted against.
var ProblemStatements = []string{
	"Dynamic Web",
	"Kitchen Copilot",
}

func IsProblemStatement(value string) bool {
	for _, statement := range ProblemStatements {
		if value == statement {
			return true
		}
	}
	return false
}

var (
	// Default allowed origins for development
	defaultOrigins = []string{
		"http://localhost:3000",
		"http://localhost:5173",
	}

	AllowedOrigins = initAllowedOrigins()
)

func initAllowedOrigins() []string {
	origins := make([]string, len(defaultOrigins))
	copy(origins, defaultOrigins)

	if clientURL := os.Getenv("CLIENT_URL"); clientURL != "" {
		origins = append(origins, clientURL)
	}

	if allowedOrigins := os.Getenv("ALLOWED_ORIGINS"); allowedOrigins != "" {
		envOrigins := strings.Split(allowedOrigins, ",")
		for _, origin := range envOrigins {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	return origins
}
