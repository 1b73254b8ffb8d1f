package form

import (
	"context"
	"log/slog"

	"github.com/readysetcloud/fitness-cli/pkg/models"
)

// Notification messages
const (
	SavedMessage      = "Settings saved"
	SaveFailedMessage = "Failed to update settings. Please try again"
)

// Querier fetches the caller's settings. Caller identity comes from the session
// the implementation was built with.
type Querier interface {
	GetMySettings(ctx context.Context) (*models.Settings, error)
}

// Mutator persists settings. ok is false when the service answered without
// confirming the update.
type Mutator interface {
	UpdateSettings(ctx context.Context, s *models.Settings) (ok bool, err error)
}

// NotificationKind distinguishes success from failure notifications
type NotificationKind int

const (
	NotifySuccess NotificationKind = iota
	NotifyFailure
)

// Notification is a transient message for the user
type Notification struct {
	Kind    NotificationKind
	Message string
}

// Notifier shows notifications. Implementations must not block.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

// SaveResult maps a mutation outcome to the single notification shown for it
func SaveResult(ok bool, err error) Notification {
	if err == nil && ok {
		return Notification{Kind: NotifySuccess, Message: SavedMessage}
	}
	return Notification{Kind: NotifyFailure, Message: SaveFailedMessage}
}

// Controller drives a Form against the settings services
type Controller struct {
	form    *Form
	querier Querier
	mutator Mutator
	notify  Notifier
	log     *slog.Logger
}

// NewController wires a fresh form to its collaborators. A nil logger discards.
func NewController(q Querier, m Mutator, n Notifier, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Controller{
		form:    New(),
		querier: q,
		mutator: m,
		notify:  n,
		log:     log,
	}
}

// Form returns the controlled form
func (c *Controller) Form() *Form {
	return c.form
}

// Load fetches the current settings into the form
func (c *Controller) Load(ctx context.Context) error {
	c.form.Retry()

	s, err := c.querier.GetMySettings(ctx)
	if err != nil {
		c.log.Error("settings_load_failed", slog.String("error", err.Error()))
		c.form.LoadFailed(err)
		return err
	}

	c.form.Load(s)
	c.log.Debug("settings_loaded",
		slog.Int("target_time", c.form.Settings().TargetTime),
		slog.Int("days", len(c.form.Settings().Frequency)))
	return nil
}

// Save sends the whole form to the mutation service and emits exactly one
// notification. Local edits are kept whatever the outcome. Nothing is sent
// before a successful load.
func (c *Controller) Save(ctx context.Context) bool {
	var n Notification
	snapshot := c.form.Snapshot()
	if err := c.form.CanSave(); err != nil {
		c.log.Warn("settings_save_blocked", slog.String("error", err.Error()))
		n = Notification{Kind: NotifyFailure, Message: SaveFailedMessage}
	} else {
		n = Persist(ctx, c.mutator, snapshot, c.log)
	}
	if n.Kind == NotifySuccess {
		c.form.MarkSaved(snapshot)
	}
	if c.notify != nil {
		c.notify.Notify(n)
	}
	return n.Kind == NotifySuccess
}

// Persist runs the mutation for a snapshot and returns the notification for its
// outcome. Errors are logged, never returned.
func Persist(ctx context.Context, m Mutator, snapshot *models.Settings, log *slog.Logger) Notification {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	ok, err := m.UpdateSettings(ctx, snapshot)
	switch {
	case err != nil:
		log.Error("settings_save_failed", slog.String("error", err.Error()))
	case !ok:
		log.Warn("settings_save_unconfirmed")
	default:
		log.Info("settings_saved")
	}
	return SaveResult(ok, err)
}
