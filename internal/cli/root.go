package cli

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"checklist/internal/app"
	"checklist/internal/config"
	"checklist/internal/logging"
	"checklist/internal/prompt"
	"checklist/internal/storage"
	"checklist/internal/ui"
)

type App struct {
	ConfigPath string
	DBPath     string
	LogLevel   string
	Yes        bool
}

func NewRootCmd() *cobra.Command {
	a := &App{}

	cmd := &cobra.Command{
		Use:          "todo",
		Short:        "A small local task list",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  todo

  # Scriptable commands
  todo add Buy milk
  todo list --filter active
  todo toggle 4f2a9c
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(a)
		},
	}

	cmd.PersistentFlags().StringVar(&a.ConfigPath, "config", "", "Path to config.toml (default: $TODO_CONFIG or the user config dir)")
	cmd.PersistentFlags().StringVar(&a.DBPath, "db", "", "Path to the task database (overrides db_path)")
	cmd.PersistentFlags().StringVar(&a.LogLevel, "log-level", "", "Log level: debug|info|warn|error (overrides log_level)")
	cmd.PersistentFlags().BoolVarP(&a.Yes, "yes", "y", false, "Answer yes to confirmation prompts")

	cmd.AddCommand(newAddCmd(a))
	cmd.AddCommand(newListCmd(a))
	cmd.AddCommand(newToggleCmd(a))
	cmd.AddCommand(newEditCmd(a))
	cmd.AddCommand(newRmCmd(a))
	cmd.AddCommand(newClearCmd(a))
	cmd.AddCommand(newFilterCmd(a))
	cmd.AddCommand(newThemeCmd(a))
	cmd.AddCommand(newExportCmd(a))

	return cmd
}

type session struct {
	cfg    config.Config
	store  *storage.SQLite
	ctrl   *app.Controller
	logger *log.Logger
}

func (s *session) Close() error {
	return s.store.Close()
}

func (a *App) loadConfig() (config.Config, error) {
	path := a.ConfigPath
	if path == "" {
		path = config.ResolveConfigPath()
	}
	cfg, err := config.LoadOrCreate(path)
	if err != nil {
		return cfg, err
	}
	if a.DBPath != "" {
		cfg.DBPath = a.DBPath
	}
	if a.LogLevel != "" {
		cfg.LogLevel = a.LogLevel
	}
	return cfg, nil
}

func (a *App) open(logOut io.Writer) (*session, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}
	return a.openWith(cfg, logging.New(logOut, cfg.LogLevel))
}

func (a *App) openWith(cfg config.Config, logger *log.Logger) (*session, error) {
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	store.MaxValueBytes = cfg.MaxValueBytes
	return &session{
		cfg:    cfg,
		store:  store,
		ctrl:   app.Open(store, nil, logger),
		logger: logger,
	}, nil
}

func (a *App) prompter(cmd *cobra.Command) prompt.Prompter {
	if a.Yes {
		return prompt.Assume{Yes: true, Out: cmd.OutOrStdout()}
	}
	return prompt.NewTerminal(cmd.InOrStdin(), cmd.OutOrStdout())
}

func runTUI(a *App) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	logger, closer, err := logging.OpenFile(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		logger = logging.New(os.Stderr, "error")
	} else {
		defer closer.Close()
	}
	s, err := a.openWith(cfg, logger)
	if err != nil {
		return err
	}
	defer s.Close()
	logger.Info("starting tui", "db", cfg.DBPath)
	return ui.Run(s.ctrl, cfg)
}
