// Package config defines the root CLI grammar parsed by Kong.
package config

import (
	"github.com/lklein/serimon/internal/cmd"
)

// LogConfig holds the logging flags shared by all commands.
type LogConfig struct {
	Level   string `help:"Log level (trace|debug|info|warn|error)" default:"info" env:"SERIMON_LOG_LEVEL"`
	File    string `help:"Write logs to a file instead of stdout/stderr" env:"SERIMON_LOG_FILE"`
	RawFile string `help:"Write raw protocol lines to a file" env:"SERIMON_LOG_RAW_FILE"`
}

// CLI is the root command structure.
type CLI struct {
	Log    LogConfig `embed:"" prefix:"log."`
	Config string    `help:"Path to a configuration file" env:"SERIMON_CONFIG"`

	Type      cmd.Type          `cmd:"" help:"Type text on the remote host"`
	Key       cmd.Key           `cmd:"" help:"Tap a single key by name"`
	Mouse     cmd.Mouse         `cmd:"" help:"Mouse movement, clicks and scrolling"`
	Shortcut  cmd.Shortcut      `cmd:"" help:"Send a common keyboard shortcut"`
	Monitor   cmd.Monitor       `cmd:"" help:"Decode and log protocol traffic from the device"`
	Forward   cmd.Forward       `cmd:"" help:"Forward local keystrokes to the remote host"`
	ConfigCmd cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration file utilities"`
}
