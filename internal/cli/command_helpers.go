package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/readysetcloud/fitness-cli/internal/logging"
	"github.com/readysetcloud/fitness-cli/pkg/api"
	"github.com/readysetcloud/fitness-cli/pkg/catalog"
	"github.com/readysetcloud/fitness-cli/pkg/config"
	"github.com/readysetcloud/fitness-cli/pkg/form"
)

// CommandContext carries configuration shared by commands
type CommandContext struct {
	ConfigPath string
	Config     *config.Config
	catalog    *catalog.Catalog
}

// NewCommandContext loads configuration from path (empty for the default location)
func NewCommandContext(path string) (*CommandContext, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return &CommandContext{
		ConfigPath: path,
		Config:     cfg,
	}, nil
}

// InitLogging starts file logging as configured
func (c *CommandContext) InitLogging() {
	dir := c.Config.Log.Dir
	if dir == "" && c.Config.Log.Debug {
		dir = config.DefaultLogDir()
	}
	logging.Init(logging.Config{
		LogDir:     dir,
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		MaxSizeMB:  c.Config.Log.MaxSizeMB,
		MaxBackups: c.Config.Log.MaxBackups,
		Debug:      c.Config.Log.Debug,
	})
}

// Catalog loads the catalog once, honoring a configured override
func (c *CommandContext) Catalog() (*catalog.Catalog, error) {
	if c.catalog != nil {
		return c.catalog, nil
	}
	cat, err := catalog.Load(c.Config.Catalog)
	if err != nil {
		return nil, err
	}
	c.catalog = cat
	return cat, nil
}

// NewClient builds the settings API client from configuration
func (c *CommandContext) NewClient() (*api.Client, error) {
	if err := c.Config.Validate(); err != nil {
		return nil, err
	}
	return api.NewClient(api.Options{
		Endpoint: c.Config.API.Endpoint,
		Session: api.StaticSession{
			Token:  c.Config.API.Token,
			APIKey: c.Config.API.APIKey,
		},
		Timeout: c.Config.API.Timeout,
		Logger:  logging.ForComponent(logging.CompAPI),
	})
}

// NewController builds a form controller that reports through n
func (c *CommandContext) NewController(n form.Notifier) (*form.Controller, error) {
	client, err := c.NewClient()
	if err != nil {
		return nil, err
	}
	return form.NewController(client, client, n, logging.ForComponent(logging.CompForm)), nil
}

// RequestContext bounds a single command's API calls by the configured timeout
func (c *CommandContext) RequestContext(parent context.Context) (context.Context, context.CancelFunc) {
	if c.Config.API.Timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, c.Config.API.Timeout)
}

// Notifier prints form notifications as command output
type Notifier struct {
	Out io.Writer
	Err io.Writer
	log *slog.Logger
}

// NewNotifier creates a notifier writing successes to out and failures to errOut
func NewNotifier(out, errOut io.Writer) *Notifier {
	return &Notifier{Out: out, Err: errOut, log: logging.ForComponent(logging.CompCLI)}
}

func (n *Notifier) Notify(note form.Notification) {
	switch note.Kind {
	case form.NotifySuccess:
		FprintSuccess(n.Out, "%s", note.Message)
	default:
		FprintError(n.Err, "%s", note.Message)
	}
	n.log.Debug("notification", slog.Int("kind", int(note.Kind)), slog.String("message", note.Message))
}
