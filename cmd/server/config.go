package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/wordrush/wordrush/internal/factory"
)

// Config holds the server's command-line configuration
type Config struct {
	bind      string
	port      int
	storage   string
	redisURL  string
	wordLists []string // language=path pairs
	verbose   bool
}

func (c *Config) validate() error {
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	if c.storage != factory.StorageTypeMemory && c.storage != factory.StorageTypeRedis {
		return fmt.Errorf("invalid storage type %q (must be %q or %q)",
			c.storage, factory.StorageTypeMemory, factory.StorageTypeRedis)
	}
	if c.storage == factory.StorageTypeRedis && c.redisURL == "" {
		return fmt.Errorf("--redis-url is required when --storage=%s", factory.StorageTypeRedis)
	}
	for _, entry := range c.wordLists {
		if !strings.Contains(entry, "=") {
			return fmt.Errorf("invalid word list %q (expected language=path)", entry)
		}
	}
	return nil
}

// parsedWordLists splits the language=path pairs
func (c *Config) parsedWordLists() map[string]string {
	lists := make(map[string]string, len(c.wordLists))
	for _, entry := range c.wordLists {
		lang, path, ok := strings.Cut(entry, "=")
		if ok {
			lists[lang] = path
		}
	}
	return lists
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("WORDRUSH")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "wordrush-server",
		Short: "Real-time word search game server",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.bind, "bind", "b", "", "address to bind to (env: WORDRUSH_BIND)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: WORDRUSH_PORT)")
	fs.StringVar(&cfg.storage, "storage", factory.StorageTypeMemory, "storage backend: memory or redis (env: WORDRUSH_STORAGE)")
	fs.StringVar(&cfg.redisURL, "redis-url", "", "redis connection URL (env: WORDRUSH_REDIS_URL)")
	fs.StringSliceVar(&cfg.wordLists, "word-list", nil, "word list as language=path, repeatable (env: WORDRUSH_WORD_LIST)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "enable debug logging (env: WORDRUSH_VERBOSE)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.SilenceUsage = true

	return cmd
}
