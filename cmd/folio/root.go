package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eringen/folio"
)

// cli carries the state shared by every command: the resolved settings and
// a logger for commands that run without an App.
type cli struct {
	cfgFile string
	cfg     folio.Config
	logger  *log.Logger
}

// flagKeys maps command-line flags onto settings keys.
var flagKeys = map[string]string{
	"addr":      "addr",
	"url":       "url",
	"out":       "out_dir",
	"pages":     "pages_dir",
	"log-level": "log_level",
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "folio",
		Short: "folio - a portfolio and blog site engine",
		Long: `folio serves a personal portfolio and blog from a site.yaml record,
markdown posts and a pages directory, or exports it as static files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.initializeConfig(cmd)
		},
	}
	root.PersistentFlags().StringVar(&c.cfgFile, "config", "", "config file (default is ./folio.yaml)")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error or off")

	root.AddCommand(
		c.serveCmd(),
		c.buildCmd(),
		c.navCmd(),
		newNewCmd(),
		versionCmd(),
	)
	return root
}

// initializeConfig resolves settings from defaults, folio.yaml, FOLIO_*
// environment variables (a local .env file included) and flags, in
// increasing order of precedence.
func (c *cli) initializeConfig(cmd *cobra.Command) error {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return fmt.Errorf("load .env: %w", err)
		}
	}

	v := viper.New()
	v.SetDefault("addr", ":3000")
	v.SetDefault("url", "")
	v.SetDefault("pages_dir", "pages")
	v.SetDefault("posts_dir", "content/posts")
	v.SetDefault("site_file", "site.yaml")
	v.SetDefault("static_dir", "public")
	v.SetDefault("out_dir", "out")
	v.SetDefault("session_secret", "")
	v.SetDefault("cookie_secure", false)
	v.SetDefault("post_cache_ttl", "5m")
	v.SetDefault("log_level", "info")

	if c.cfgFile != "" {
		v.SetConfigFile(c.cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("folio")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("FOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	for flag, key := range flagKeys {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind flag %s: %w", flag, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if c.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.Unmarshal(&c.cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}

	c.logger = log.New("folio")
	c.logger.SetOutput(cmd.ErrOrStderr())
	c.logger.SetHeader("${level} ${prefix}")
	c.logger.SetLevel(folio.ParseLogLevel(c.cfg.LogLevel))
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the folio version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "folio %s\n", version)
		},
	}
}
