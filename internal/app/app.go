package app

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/five82/cumplesito/internal/api"
	"github.com/five82/cumplesito/internal/config"
	"github.com/five82/cumplesito/internal/i18n"
	"github.com/five82/cumplesito/internal/logging"
	"github.com/five82/cumplesito/internal/mutation"
	"github.com/five82/cumplesito/internal/prefs"
	"github.com/five82/cumplesito/internal/session"
	"github.com/five82/cumplesito/internal/state"
	"github.com/five82/cumplesito/internal/ui"
)

const verifyTimeout = 3 * time.Second

// Options configure the Cumplesito client.
type Options struct {
	ConfigPath string
	EnvFiles   []string // empty loads ./.env when present
	Link       string   // wishlist id or share link to open at start
	Owner      bool     // show owner controls for Link
	Lang       string   // overrides the stored language
}

// Run boots the Cumplesito TUI until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath, opts.EnvFiles...)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, closeLog, err := logging.NewFile(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = closeLog() }()

	userPrefs, _ := prefs.Load(cfg.PrefsPath)
	lang := i18n.Parse(userPrefs.Language)
	if opts.Lang != "" {
		lang = i18n.Parse(opts.Lang)
	}
	tr := i18n.New(lang)

	sess := session.NewManager(cfg.SessionPath, session.WithLogger(log))
	if err := sess.Load(); err != nil {
		log.WithError(err).Warn("could not restore session")
	}

	client, err := api.NewClient(cfg.APIURL,
		api.WithTimeout(cfg.RequestTimeout),
		api.WithTokenSource(sess),
		api.WithLogger(log),
	)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	if sess.Authenticated() {
		verifySession(ctx, sess, client, log)
	}

	store := &state.Store{}
	svc := mutation.New(client, store,
		mutation.WithLogger(log),
		mutation.WithAnonymousLabel(func() string { return tr.T(i18n.Anonymous) }),
	)

	StartPoller(ctx, store, svc, cfg.RefreshInterval, log)

	log.WithFields(logrus.Fields{
		"api_url":   client.BaseURL(),
		"language":  string(lang),
		"signed_in": sess.Authenticated(),
	}).Info("cumplesito started")

	uiOpts := ui.Options{
		Context:    ctx,
		Service:    svc,
		Client:     client,
		Session:    sess,
		Store:      store,
		Config:     &cfg,
		Translator: tr,
		Log:        log,
		ThemeName:  userPrefs.Theme,
		PrefsPath:  cfg.PrefsPath,
		Link:       opts.Link,
		Owner:      opts.Owner,
	}
	return ui.Run(uiOpts)
}

// verifySession confirms a restored token before the UI starts. Failures are
// logged; the UI falls back to signed-out screens.
func verifySession(ctx context.Context, sess *session.Manager, client *api.Client, log logrus.FieldLogger) {
	vctx, cancel := context.WithTimeout(ctx, verifyTimeout)
	defer cancel()
	if err := sess.Verify(vctx, client); err != nil {
		log.WithError(err).Info("stored session not verified")
	}
}
