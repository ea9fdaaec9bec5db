// Package cli собирает команды tier-dashboard поверх диспетчера действий.
package cli

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"tier-dashboard/internal/backend"
	"tier-dashboard/internal/config"
	"tier-dashboard/internal/model"
	"tier-dashboard/internal/service"
	"tier-dashboard/internal/ui"
)

type app struct {
	out    io.Writer
	errOut io.Writer

	envFiles []string
	baseURL  string
	team     string
	user     string
	xsrf     string
	session  string
	logLevel string

	log        *logrus.Logger
	dispatcher *service.Dispatcher
}

// NewRootCmd создаёт корневую команду. Вывод команд идёт в out, логи и предупреждения: в errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "tier-dashboard",
		Short:         "Act on a Tier team dashboard from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	f := root.PersistentFlags()
	f.StringSliceVar(&a.envFiles, "env-file", []string{".env", ".env.local"}, "dotenv files to load")
	f.StringVar(&a.baseURL, "base-url", "", "dashboard backend URL (TIER_BASE_URL)")
	f.StringVar(&a.team, "team", "", "current team (TIER_TEAM)")
	f.StringVar(&a.user, "user", "", "current user (TIER_USER)")
	f.StringVar(&a.xsrf, "xsrf", "", "value of the _xsrf cookie (TIER_XSRF)")
	f.StringVar(&a.session, "session", "", "value of the session cookie (TIER_SESSION)")
	f.StringVar(&a.logLevel, "log-level", "", "silent, error, warn, info or debug (LOG_LEVEL)")

	root.AddCommand(
		a.newsCmd(),
		a.joinCmd(),
		a.meetingsCmd(),
		a.assignmentsCmd(),
		a.deadlinesCmd(),
		a.teamCmd(),
		a.dashboardCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.envFiles...)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	override := func(name string, dst *string, v string) {
		if flags.Changed(name) {
			*dst = v
		}
	}
	override("base-url", &cfg.BaseURL, a.baseURL)
	override("team", &cfg.Team, a.team)
	override("user", &cfg.User, a.user)
	override("xsrf", &cfg.XSRF, a.xsrf)
	override("session", &cfg.Session, a.session)
	override("log-level", &cfg.LogLevel, a.logLevel)

	a.log = cfg.Logger(a.errOut)

	client, err := backend.NewClient(backend.Options{
		BaseURL: cfg.BaseURL,
		XSRF:    cfg.XSRF,
		Session: cfg.Session,
		Timeout: cfg.HTTPTimeout,
	})
	if err != nil {
		return fmt.Errorf("create backend client: %w", err)
	}

	page := ui.NewPage(cfg.FlashWindow, ui.AlerterFunc(func(msg string) {
		fmt.Fprintf(a.errOut, "alert: %s\n", msg)
	}))
	a.dispatcher = service.NewDispatcher(client, page, model.PageContext{Team: cfg.Team, User: cfg.User}, a.log)
	return nil
}

// reportFlash печатает success, если действие показало индикатор успеха.
func (a *app) reportFlash(res service.Result, indicator string) {
	if res.OK() && a.dispatcher.Page().Indicator(indicator).Visible() {
		fmt.Fprintln(a.out, "success")
	}
}

// printBoard печатает разметку доски.
func (a *app) printBoard(id string) error {
	markup, err := a.dispatcher.Page().Board(id).HTML()
	if err != nil {
		return fmt.Errorf("render %s: %w", id, err)
	}
	if markup != "" {
		fmt.Fprintln(a.out, markup)
	}
	return nil
}
