// Package cli turns command-line arguments into a validated app.Config.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/soapywu/xcgen/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config, a
// boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("xcgen", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
xcgen - Xcode project generator for the TENEX iOS client.

Generates <Target>.xcodeproj/project.pbxproj with the remote package
dependencies wired in, backing up any previous project first. With no
flags it generates the built-in TENEXiOS project.

Usage:
  xcgen [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	modeFlag := flagSet.String("mode", app.ModeProject, "Generation mode. Options: 'project' or 'manifest'.")
	descriptorFlag := flagSet.String("generate", "", "Path to an HCL project descriptor overriding the built-in spec.")
	gFlag := flagSet.String("g", "", "Path to an HCL project descriptor (shorthand).")
	dirFlag := flagSet.String("C", ".", "Directory to generate into.")
	interactiveFlag := flagSet.Bool("i", false, "Confirm mode and overwrites interactively.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", flagSet.Arg(0))}
	}

	descriptor := *descriptorFlag
	if descriptor == "" {
		descriptor = *gFlag
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		Mode:           strings.ToLower(*modeFlag),
		DescriptorPath: descriptor,
		OutputDir:      *dirFlag,
		Interactive:    *interactiveFlag,
		LogLevel:       logLevel,
		LogFormat:      logFormat,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
