// Package whogoesfirst wires the card site command.
package whogoesfirst

import (
	"context"
	"flag"
	"fmt"
	"net"
	"strconv"

	"github.com/louisbranch/whogoesfirst/internal/catalog"
	"github.com/louisbranch/whogoesfirst/internal/platform/cmd"
	"github.com/louisbranch/whogoesfirst/internal/platform/i18n/messages"
	"github.com/louisbranch/whogoesfirst/internal/services/web"
	"github.com/louisbranch/whogoesfirst/internal/services/web/routes"
	"github.com/louisbranch/whogoesfirst/internal/services/web/templates"
	"go.uber.org/zap"
)

// Config holds the command configuration. Environment values are flag
// defaults.
type Config struct {
	Host        string `env:"HOST" envDefault:"127.0.0.1"`
	Port        int    `env:"PORT" envDefault:"8080"`
	Debug       bool   `env:"DEBUG" envDefault:"false"`
	AnalyticsID string `env:"ANALYTICS_ID"`
}

// Addr returns the HTTP listen address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// ParseConfig reads environment defaults and then flags.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := cmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Host, "host", cfg.Host, "Hostname to listen on")
	fs.IntVar(&cfg.Port, "port", cfg.Port, "Port to listen on")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Log at debug level, including the route table")
	fs.StringVar(&cfg.AnalyticsID, "analytics-id", cfg.AnalyticsID, "Analytics property rendered on every page")
	if err := cmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d is out of range", cfg.Port)
	}
	return cfg, nil
}

// Build derives every startup value the server needs. A malformed catalog
// or colliding route fails here, before anything listens.
func Build() (web.Dependencies, error) {
	c, err := catalog.Default()
	if err != nil {
		return web.Dependencies{}, fmt.Errorf("load catalog: %w", err)
	}
	table, err := routes.Build(c)
	if err != nil {
		return web.Dependencies{}, fmt.Errorf("build routes: %w", err)
	}
	renderer, err := templates.NewRenderer()
	if err != nil {
		return web.Dependencies{}, fmt.Errorf("load templates: %w", err)
	}
	if err := checkTemplates(table, renderer); err != nil {
		return web.Dependencies{}, err
	}
	bundle, err := messages.LoadEmbedded()
	if err != nil {
		return web.Dependencies{}, fmt.Errorf("load messages: %w", err)
	}
	return web.Dependencies{Table: table, Renderer: renderer, Messages: bundle}, nil
}

// checkTemplates reports the first rendered route whose page template is
// missing.
func checkTemplates(table *routes.Table, renderer *templates.Renderer) error {
	for _, route := range table.Routes() {
		kind := route.Page.Kind
		if !kind.Localized() && kind != routes.KindRedirect {
			continue
		}
		if name := route.Page.TemplateName(); !renderer.Has(name) {
			return fmt.Errorf("route %s (%s): %w: %q", route.Path, route.Endpoint, templates.ErrTemplateNotFound, name)
		}
	}
	return nil
}

// warnMissingMessages logs every UI string a locale does not translate.
func warnMissingMessages(logger *zap.Logger, bundle *messages.Bundle) {
	for _, locale := range bundle.Locales() {
		if missing := bundle.MissingKeys(locale); len(missing) > 0 {
			logger.Warn("untranslated messages fall back to the base locale",
				zap.String("locale", locale),
				zap.Strings("keys", missing),
			)
		}
	}
}

// Run starts the web server and blocks until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	logger, err := cmd.NewLogger(cmd.ServiceWeb, cfg.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return cmd.RunWithTelemetry(ctx, cmd.ServiceWeb, logger, func(ctx context.Context) error {
		deps, err := Build()
		if err != nil {
			return err
		}
		logger.Info("route table built", zap.Int("routes", len(deps.Table.Routes())))
		warnMissingMessages(logger, deps.Messages)

		server, err := web.NewServer(web.Config{
			HTTPAddr:    cfg.Addr(),
			AnalyticsID: cfg.AnalyticsID,
			Logger:      logger,
		}, deps)
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
