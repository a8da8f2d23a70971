package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/atomicstack/tmux-tab-picker/internal/app"
	"github.com/atomicstack/tmux-tab-picker/internal/backend"
)

// Config captures runtime configuration for the application.
type Config struct {
	App        app.Config
	Logging    Logging
	ConfigFile string
	Flags      map[string]string
	Args       []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	commandName = "tmux-tab-picker"
	envPrefix   = "TMUX_TAB_PICKER"

	keySocket       = "socket"
	keyWidth        = "width"
	keyHeight       = "height"
	keyFooter       = "footer"
	keyTrace        = "trace"
	keyLogFile      = "log-file"
	keyConfig       = "config"
	keyPollInterval = "poll-interval"
	keySet          = "set"

	// pickerTable is the config file table holding picker settings.
	pickerTable = "picker"
)

// ErrHelp is returned by LoadArgs when usage was requested and printed.
var ErrHelp = pflag.ErrHelp

// Load parses configuration from CLI arguments, the environment and the
// optional config file.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:])
}

// LoadArgs is Load with explicit arguments. Precedence is flag, then
// TMUX_TAB_PICKER_* environment variable, then config file, then default.
func LoadArgs(args []string) (Config, error) {
	return loadArgs(args, os.Stdout)
}

func loadArgs(args []string, out io.Writer) (Config, error) {
	v := viper.New()
	var (
		cfg Config
		ran bool
	)
	cmd := NewCommand(v, func(c Config) error {
		cfg = c
		ran = true
		return nil
	})
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		return Config{}, err
	}
	if !ran {
		return Config{}, ErrHelp
	}
	cfg.Args = append([]string(nil), args...)
	return cfg, nil
}

// NewCommand builds the root command. Flags are bound to v; run receives the
// resolved configuration.
func NewCommand(v *viper.Viper, run func(Config) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:           commandName,
		Short:         "Fuzzy-filter and switch between the windows of the current tmux session",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolve(v, cmd.Flags())
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}
	flags := cmd.Flags()
	flags.String(keySocket, "", "path to the tmux socket (overrides environment detection)")
	flags.Int(keyWidth, 0, "desired viewport width in cells (0 uses terminal width)")
	flags.Int(keyHeight, 0, "desired viewport height in rows (0 uses terminal height)")
	flags.Bool(keyFooter, false, "enable footer hint row (disabled by default)")
	flags.Bool(keyTrace, false, "enable verbose JSON trace logging")
	flags.String(keyLogFile, "", "path to the log file")
	flags.String(keyConfig, "", "path to a config file (yaml or toml)")
	flags.Duration(keyPollInterval, backend.DefaultInterval, "how often the window list is refreshed")
	flags.StringArray(keySet, nil, "picker setting as key=value (repeatable)")

	_ = v.BindPFlags(flags)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return cmd
}

func resolve(v *viper.Viper, flags *pflag.FlagSet) (Config, error) {
	configFile, err := readConfigFile(v)
	if err != nil {
		return Config{}, err
	}
	overrides, err := flags.GetStringArray(keySet)
	if err != nil {
		return Config{}, err
	}
	settings, err := pickerSettings(v, overrides)
	if err != nil {
		return Config{}, err
	}

	socket := v.GetString(keySocket)
	width := v.GetInt(keyWidth)
	height := v.GetInt(keyHeight)
	footer := v.GetBool(keyFooter)
	trace := v.GetBool(keyTrace)
	logFile := v.GetString(keyLogFile)
	interval := v.GetDuration(keyPollInterval)

	cfg := Config{
		App: app.Config{
			SocketPath:   socket,
			Width:        width,
			Height:       height,
			ShowFooter:   footer,
			PollInterval: interval,
			Settings:     settings,
		},
		Logging: Logging{
			FilePath: logFile,
			Trace:    trace,
		},
		ConfigFile: configFile,
		Flags: map[string]string{
			"socket":       socket,
			"width":        strconv.Itoa(width),
			"height":       strconv.Itoa(height),
			"footer":       strconv.FormatBool(footer),
			"trace":        strconv.FormatBool(trace),
			"logFile":      logFile,
			"config":       configFile,
			"pollInterval": interval.String(),
			"set":          formatSettings(settings),
		},
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// readConfigFile loads the explicit config file, or the default one under
// $XDG_CONFIG_HOME when present. It returns the path that was read.
func readConfigFile(v *viper.Viper) (string, error) {
	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return "", fmt.Errorf("read config file %s: %w", path, err)
		}
		return path, nil
	}
	dir := defaultConfigDir()
	if dir == "" {
		return "", nil
	}
	v.AddConfigPath(dir)
	v.SetConfigName("config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("read config file: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

func defaultConfigDir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, commandName)
}

// pickerSettings merges the config file's picker table with --set overrides.
// Keys are lower-cased on both paths, as viper does for the file.
func pickerSettings(v *viper.Viper, overrides []string) (map[string]string, error) {
	settings := make(map[string]string)
	for key, value := range v.GetStringMapString(pickerTable) {
		settings[key] = value
	}
	for _, pair := range overrides {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.ToLower(strings.TrimSpace(key))
		if !ok || key == "" {
			return nil, fmt.Errorf("--set expects key=value (got %q)", pair)
		}
		settings[key] = value
	}
	return settings, nil
}

func formatSettings(settings map[string]string) string {
	keys := make([]string, 0, len(settings))
	for key := range settings {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+"="+settings[key])
	}
	return strings.Join(parts, ",")
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if errors.Is(err, ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects values no component can run with.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	if cfg.App.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be > 0 (got %s)", cfg.App.PollInterval)
	}
	return nil
}
