// Package config resolves operational settings from flags, MANDELVIEW_* environment variables and an optional config file.
// View dynamics are compiled-in constants and not configurable.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lixenwraith/mandelview/headless"
	"github.com/lixenwraith/mandelview/terminal"
)

// EnvPrefix is prepended to upper-cased keys for environment overrides
const EnvPrefix = "MANDELVIEW"

// Backend names
const (
	BackendTerminal = "terminal"
	BackendWindow   = "window"
	BackendHeadless = "headless"
)

// Keys shared by flags, environment and config file
const (
	KeyBackend = "backend"
	KeyColor   = "color"
	KeyDebug   = "debug"
	KeyAudio   = "audio"
	KeyWorkers = "workers"
	KeyOut     = "out"
	KeyScript  = "script"
	KeyEvery   = "every"
	KeyLogDir  = "log-dir"
	KeyConfig  = "config"
)

var (
	// ErrUnknownBackend is returned for backend names other than terminal, window and headless
	ErrUnknownBackend = errors.New("unknown backend")

	// ErrInvalidValue is returned for out-of-range numeric settings
	ErrInvalidValue = errors.New("invalid setting")
)

// Settings is the resolved configuration
type Settings struct {
	Backend string
	Color   terminal.ColorMode
	Debug   bool
	Audio   bool
	Workers int
	LogDir  string

	// Headless only
	Out    string
	Script []headless.Step
	Every  int
}

// SetDefaults registers default values
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyBackend, BackendTerminal)
	v.SetDefault(KeyColor, "auto")
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyAudio, false)
	v.SetDefault(KeyWorkers, 0)
	v.SetDefault(KeyOut, "snapshots")
	v.SetDefault(KeyScript, "wheelup:10,idle:220")
	v.SetDefault(KeyEvery, 0)
	v.SetDefault(KeyLogDir, "logs")
}

// RegisterFlags defines the command flags and binds them into v
func RegisterFlags(cmd *cobra.Command, v *viper.Viper) error {
	f := cmd.Flags()
	f.StringP(KeyBackend, "b", BackendTerminal, "display backend: terminal, window, headless")
	f.String(KeyColor, "auto", "terminal color mode: auto, truecolor, 256")
	f.Bool(KeyDebug, false, "write debug logs to the log directory")
	f.Bool(KeyAudio, false, "play refinement cues")
	f.IntP(KeyWorkers, "w", 0, "escape-time workers (0 = GOMAXPROCS)")
	f.StringP(KeyOut, "o", "snapshots", "headless: PNG output directory")
	f.StringP(KeyScript, "s", "wheelup:10,idle:220", "headless: input script of action:ticks steps")
	f.Int(KeyEvery, 0, "headless: write every n-th frame (0 = last only)")
	f.String(KeyLogDir, "logs", "log directory")
	f.StringP(KeyConfig, "c", "", "config file (yaml, toml or json)")

	if err := v.BindPFlags(f); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	return nil
}

// Load reads the optional config file, applies environment overrides and validates the result
func Load(v *viper.Viper) (*Settings, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file := v.GetString(KeyConfig); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Settings, error) {
	s := &Settings{
		Backend: strings.ToLower(strings.TrimSpace(v.GetString(KeyBackend))),
		Debug:   v.GetBool(KeyDebug),
		Audio:   v.GetBool(KeyAudio),
		Workers: v.GetInt(KeyWorkers),
		LogDir:  v.GetString(KeyLogDir),
		Out:     v.GetString(KeyOut),
		Every:   v.GetInt(KeyEvery),
	}

	switch s.Backend {
	case BackendTerminal, BackendWindow, BackendHeadless:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, s.Backend)
	}

	mode, err := terminal.ParseColorMode(v.GetString(KeyColor))
	if err != nil {
		return nil, err
	}
	s.Color = mode

	if s.Workers < 0 {
		return nil, fmt.Errorf("%w: workers %d", ErrInvalidValue, s.Workers)
	}
	if s.Every < 0 {
		return nil, fmt.Errorf("%w: every %d", ErrInvalidValue, s.Every)
	}

	if s.Backend == BackendHeadless {
		steps, err := headless.ParseScript(v.GetString(KeyScript))
		if err != nil {
			return nil, fmt.Errorf("script: %w", err)
		}
		s.Script = steps
		if s.Out == "" {
			return nil, fmt.Errorf("%w: empty output directory", ErrInvalidValue)
		}
	}

	return s, nil
}
