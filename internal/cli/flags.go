package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mlazarov/confminer/internal/model"
)

// Flags shared by the scraping commands.
var (
	pageURL      string
	timeout      time.Duration
	userAgent    string
	maxBytes     int64
	noCache      bool
	cacheDir     string
	noRobots     bool
	localArchive bool
	archiveDir   string
	llmEnabled   bool
	llmModel     string
)

// addFetchFlags registers the fetch-related flags on a command. The
// backing variables are shared; cobra runs exactly one command per
// invocation.
func addFetchFlags(cmd *cobra.Command) {
	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall command timeout")
	cmd.Flags().StringVar(&userAgent, "ua", "confminer/0.2 (+https://github.com/mlazarov/confminer)", "HTTP User-Agent")
	cmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh fetch)")
	cmd.Flags().StringVar(&cacheDir, "cache-dir", "", "page cache directory (default: $HOME/.confminer/cache)")
	cmd.Flags().BoolVar(&noRobots, "no-robots", false, "skip robots.txt checks")
	cmd.Flags().BoolVar(&localArchive, "local", false, "read pages from a local website mirror instead of the network")
	cmd.Flags().StringVar(&archiveDir, "archive-dir", "", "local mirror root (default: $HOME/Web)")
}

// buildConfig assembles the runtime configuration from defaults and
// flags. API keys come from the environment only.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = timeout
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.HTTP.RespectRobots = !noRobots
	cfg.Cache.Enabled = !noCache
	cfg.Cache.Dir = cacheDir
	cfg.Archive.Local = localArchive
	cfg.Archive.Dir = archiveDir
	cfg.Output.Verbose = verbose

	if cacheDir == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			cfg.Cache.Dir = home + "/.confminer/cache"
		}
	}

	if llmEnabled {
		cfg.LLM.Enabled = true
		cfg.LLM.Model = llmModel
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
		if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}

	return cfg, nil
}
