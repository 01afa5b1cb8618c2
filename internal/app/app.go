// Package app wires configuration, the Youdao client and the suggestion
// adapter together.
package app

import (
	"log/slog"

	"github.com/valpere/youdict/internal/clipboard"
	"github.com/valpere/youdict/internal/config"
	"github.com/valpere/youdict/internal/i18n"
	"github.com/valpere/youdict/internal/suggest"
	"github.com/valpere/youdict/internal/translator"
)

type App struct {
	Config    *config.Config
	Logger    *slog.Logger
	Client    *translator.Client
	Suggester *suggest.Suggester
	Clipboard clipboard.Writer
	Locale    *i18n.Translator
}

// New builds the application from an already loaded configuration. A nil
// clip uses the system clipboard.
func New(cfg *config.Config, logger *slog.Logger, clip clipboard.Writer) *App {
	if clip == nil {
		clip = clipboard.System{}
	}

	tr := i18n.NewTranslator(cfg.Locale)
	profile := cfg.ProviderProfile()

	parser := translator.NewParser(profile)
	parser.Labels = tr.Labels()

	client := translator.NewClient(
		translator.NewBuilder(profile, cfg.Credentials()),
		parser,
		cfg.ServiceConfig(),
	)

	logger.Debug("youdict configured", "profile", profile.Name, "scheme", profile.Scheme.String(), "locale", tr.Locale())

	return &App{
		Config:    cfg,
		Logger:    logger,
		Client:    client,
		Suggester: suggest.New(client, clip, tr, logger),
		Clipboard: clip,
		Locale:    tr,
	}
}

func (a *App) NewSession() *suggest.Session {
	return suggest.NewSession(a.Suggester, a.Config.Delay)
}
