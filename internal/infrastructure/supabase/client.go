package supabase

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/supabase-community/postgrest-go"

	"github.com/johnquangdev/sales-copilot/pkg/config"
)

const restPath = "/rest/v1"

// NewClient creates a PostgREST client for the project's REST endpoint.
// The service key is sent both as apikey and as bearer token.
func NewClient(cfg *config.SupabaseConfig) (*postgrest.Client, error) {
	endpoint, err := RestURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	headers := map[string]string{
		"apikey":        cfg.Key,
		"Authorization": "Bearer " + cfg.Key,
	}
	return postgrest.NewClient(endpoint, "public", headers), nil
}

// RestURL derives the REST endpoint from a project URL
func RestURL(projectURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(projectURL))
	if err != nil {
		return "", fmt.Errorf("invalid SUPABASE_URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid SUPABASE_URL %q: scheme and host are required", projectURL)
	}

	path := strings.TrimSuffix(u.Path, "/")
	if !strings.HasSuffix(path, restPath) {
		path += restPath
	}
	u.Path = path
	return u.String(), nil
}
