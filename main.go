package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Build vars.
var (
	//nolint: gochecknoglobals
	Version   = ""
	CommitSHA = ""
)

func buildVersion() {
	if len(CommitSHA) >= 7 {
		vt := rootCmd.VersionTemplate()
		rootCmd.SetVersionTemplate(vt[:len(vt)-1] + " (" + CommitSHA[0:7] + ")\n")
	}
	if Version == "" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Sum != "" {
			Version = info.Main.Version
		} else {
			Version = "unknown (built from source)"
		}
	}
	rootCmd.Version = Version
}

func init() {
	initLogging()
	buildVersion()
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
}

// clipError is a wrapper around error adding additional context.
type clipError struct {
	err    error
	reason string
}

func (e clipError) Error() string {
	return e.err.Error()
}

var (
	config Config

	rootCmd = &cobra.Command{
		Use:   "clipfiles",
		Short: "Query the files on the system clipboard",
		Long: "Clipfiles reads the file list a file manager placed on the system\n" +
			"clipboard: count the entries, print their paths, inspect their\n" +
			"metadata, sum their sizes, or clear the clipboard.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if config.ShowSettings {
				return runShowSettings()
			}
			// bare invocation behaves like "clipfiles list"
			return runList()
		},
	}
)

func main() {
	var err error
	config, err = ensureConfig() // config is global
	if err != nil {
		handleError(clipError{err, "Could not load configuration."})
		os.Exit(1)
	}

	// must come after creating the config b/c config values used as defaults
	initFlags()

	if err := rootCmd.Execute(); err != nil {
		handleError(err)
		os.Exit(1)
	}
}

func handleError(err error) {
	// empty stdin
	if !isInputTerminal() {
		_, _ = io.ReadAll(os.Stdin)
	}

	format := "\n%s\n"

	var args []interface{}
	var cerr clipError
	if errors.As(err, &cerr) {
		format += "%s\n\n"
		args = []interface{}{
			stderrStyles().ErrPadding.Render(stderrStyles().ErrorHeader.String(), cerr.reason),
			stderrStyles().ErrPadding.Render(stderrStyles().ErrorDetails.Render(err.Error())),
		}
		logger.Error(cerr.Error(), "reason", cerr.reason)
	} else {
		args = []interface{}{
			stderrStyles().ErrPadding.Render(stderrStyles().ErrorDetails.Render(err.Error())),
		}
	}
	_, _ = fmt.Fprintf(os.Stderr, format, args...)
}
