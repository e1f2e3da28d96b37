package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/picoin-network/picoin/api"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "picoin-api",
		Short: "HTTP API server for the picoin exchange",
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			v.SetEnvPrefix("PICOIN_API")
			v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			v.AutomaticEnv()
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return fmt.Errorf("bind flags: %w", err)
			}

			cfg := &api.Config{
				Host:            cast.ToString(v.Get("host")),
				Port:            cast.ToString(v.Get("port")),
				CORSOrigins:     cast.ToStringSlice(v.Get("cors-origins")),
				RateLimitRPS:    cast.ToInt(v.Get("rate-limit-rps")),
				ReadTimeout:     cast.ToDuration(v.Get("read-timeout")),
				WriteTimeout:    cast.ToDuration(v.Get("write-timeout")),
				ShutdownTimeout: cast.ToDuration(v.Get("shutdown-timeout")),
			}
			if secret := cast.ToString(v.Get("jwt-secret")); secret != "" {
				cfg.JWTSecret = []byte(secret)
			}

			server, err := api.NewServer(api.NewDevEngine(), cfg)
			if err != nil {
				return fmt.Errorf("create server: %w", err)
			}
			return server.Start()
		},
	}

	defaults := api.DefaultConfig()
	cmd.Flags().String("host", defaults.Host, "listen address")
	cmd.Flags().String("port", defaults.Port, "listen port")
	cmd.Flags().String("jwt-secret", "", "JWT signing secret (generated when empty)")
	cmd.Flags().StringSlice("cors-origins", defaults.CORSOrigins, "allowed CORS origins")
	cmd.Flags().Int("rate-limit-rps", defaults.RateLimitRPS, "per-IP requests per second")
	cmd.Flags().Duration("read-timeout", defaults.ReadTimeout, "HTTP read timeout")
	cmd.Flags().Duration("write-timeout", defaults.WriteTimeout, "HTTP write timeout")
	cmd.Flags().Duration("shutdown-timeout", 10*time.Second, "graceful shutdown timeout")

	return cmd
}
