package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Emynado01/portfolio/internal/config"
	"github.com/Emynado01/portfolio/internal/content"
	"github.com/Emynado01/portfolio/internal/logger"
	"github.com/Emynado01/portfolio/internal/relay"
	"github.com/Emynado01/portfolio/internal/server"
)

type serveFlags struct {
	port    string
	content string
}

func newServeCmd(root *rootFlags) *cobra.Command {
	flags := &serveFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), root, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.port, "port", "p", "", "Listen port (overrides PORT)")
	cmd.Flags().StringVar(&flags.content, "content", "", "YAML content file (overrides CONTENT_FILE)")

	return cmd
}

func loadConfig(root *rootFlags, flags *serveFlags) (*config.Config, error) {
	cfg, err := config.Load(root.envFile)
	if err != nil {
		return nil, err
	}
	if flags == nil {
		return cfg, nil
	}
	if flags.port != "" {
		cfg.Port = flags.port
	}
	if flags.content != "" {
		cfg.ContentFile = flags.content
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServe(ctx context.Context, root *rootFlags, flags *serveFlags) error {
	cfg, err := loadConfig(root, flags)
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Options{
		Level:         cfg.LogLevel,
		HumanReadable: cfg.LogFormat == "console",
		Writer:        os.Stderr,
	})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	data := content.Default()
	if cfg.ContentFile != "" {
		data, err = content.LoadFile(cfg.ContentFile)
		if err != nil {
			return err
		}
	}
	store, err := content.NewStore(data)
	if err != nil {
		return fmt.Errorf("content: %w", err)
	}

	sender, err := relay.FromConfig(cfg.Relay)
	if err != nil {
		return err
	}

	srv, err := server.New(server.Options{
		Config:  cfg,
		Content: store,
		Sender:  sender,
		Logger:  log,
	})
	if err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(map[string]any{"relay": cfg.Relay.Provider, "port": cfg.Port}).Info("starting portfolio")
	return srv.Run(ctx)
}
