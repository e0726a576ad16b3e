package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/bouchenineyakoub/clipfiles/filelist"
)

var (
	countCmd = &cobra.Command{
		Use:   "count",
		Short: "Print the number of files on the clipboard",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runCount()
		},
	}

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "Print the clipboard file paths",
		Example: "  clipfiles list\n" +
			"  clipfiles list -0 | xargs -0 du -sh",
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runList()
		},
	}

	infoCmd = &cobra.Command{
		Use:   "info",
		Short: "Print name, kind and size for each clipboard file",
		Example: "  clipfiles info\n" +
			"  clipfiles info -o json --mime",
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInfo()
		},
	}

	sizeCmd = &cobra.Command{
		Use:   "size",
		Short: "Print the total size of the clipboard files in bytes",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runSize()
		},
	}

	hasCmd = &cobra.Command{
		Use:   "has",
		Short: "Exit 0 if the clipboard holds files, 1 otherwise",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			if filelist.HasFiles() {
				color.Green("yes")
				return
			}
			color.Red("no")
			os.Exit(1)
		},
	}

	clearCmd = &cobra.Command{
		Use:   "clear",
		Short: "Empty the system clipboard",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runClear()
		},
	}
)

func init() {
	rootCmd.AddCommand(countCmd, listCmd, infoCmd, sizeCmd, hasCmd, clearCmd)
}

func initFlags() {
	const (
		flagDelimiter    = "delimiter"
		flagNul          = "null"
		flagMax          = "max"
		flagOutput       = "output"
		flagMIME         = "mime"
		flagHuman        = "human"
		flagCached       = "cached"
		flagForce        = "force"
		flagShowSettings = "show-config"
	)

	rootCmd.PersistentFlags().BoolVarP(&config.ShowSettings, flagShowSettings, "S", false, "Print the effective settings")
	rootCmd.PersistentFlags().IntVarP(&config.MaxEntries, flagMax, "m", config.MaxEntries, "Maximum number of entries to print; 0 prints all")

	listCmd.Flags().StringVarP(&config.Delimiter, flagDelimiter, "d", config.Delimiter, "Separator printed between paths")
	listCmd.Flags().BoolVarP(&config.NulSeparated, flagNul, "0", false, "Separate paths with NUL bytes, for xargs -0")

	infoCmd.Flags().StringVarP(&config.Output, flagOutput, "o", config.Output, "Output format: table, json or yaml")
	infoCmd.Flags().BoolVar(&config.MIME, flagMIME, false, "Sniff each file's content type")
	infoCmd.Flags().BoolVarP(&config.Humanize, flagHuman, "H", config.Humanize, "Print human-readable sizes")
	infoCmd.Flags().BoolVar(&config.Cache.Enabled, flagCached, config.Cache.Enabled, "Serve file metadata from the stat cache")

	sizeCmd.Flags().BoolVarP(&config.Humanize, flagHuman, "H", config.Humanize, "Print a human-readable size")
	sizeCmd.Flags().BoolVar(&config.Cache.Enabled, flagCached, config.Cache.Enabled, "Serve file metadata from the stat cache")

	clearCmd.Flags().BoolVarP(&config.Force, flagForce, "f", false, "Clear without asking for confirmation")
}

func runCount() error {
	n, err := filelist.Count()
	if err != nil {
		if !errors.Is(err, filelist.ErrNoFileList) {
			return clipError{err, "Could not read the clipboard."}
		}
		n = 0
	}
	fmt.Println(n)
	return nil
}

func runList() error {
	paths, err := filelist.Paths()
	if err != nil {
		if errors.Is(err, filelist.ErrNoFileList) {
			logger.Debug("no file list on clipboard")
			return nil
		}
		return clipError{err, "Could not read the clipboard."}
	}

	if config.MaxEntries > 0 && len(paths) > config.MaxEntries {
		logger.Debug("truncating output", "max", config.MaxEntries, "entries", len(paths))
		paths = paths[:config.MaxEntries]
	}

	switch {
	case config.NulSeparated:
		for _, p := range paths {
			fmt.Print(p + "\x00")
		}
	case config.Delimiter == "\n":
		for _, p := range paths {
			fmt.Println(p)
		}
	default:
		fmt.Println(strings.Join(paths, config.Delimiter))
	}
	return nil
}

func runInfo() error {
	paths, err := filelist.Paths()
	if err != nil && !errors.Is(err, filelist.ErrNoFileList) {
		return clipError{err, "Could not read the clipboard."}
	}

	if config.MaxEntries > 0 && len(paths) > config.MaxEntries {
		paths = paths[:config.MaxEntries]
	}

	stat, closeCache := classifyStat()
	defer closeCache()
	entries := infoEntries(filelist.ClassifyWith(paths, stat), config.MIME)

	switch config.Output {
	case outputJSON:
		out, err := renderJSON(entries)
		if err != nil {
			return clipError{err, "Could not encode the file list."}
		}
		fmt.Print(out)
	case outputYAML:
		out, err := renderYAML(entries)
		if err != nil {
			return clipError{err, "Could not encode the file list."}
		}
		fmt.Print(out)
	case outputTable:
		fmt.Print(renderTable(entries, config.Humanize, config.MIME))
	default:
		return clipError{fmt.Errorf("unknown output format %q", config.Output), "Use table, json or yaml."}
	}
	return nil
}

func runSize() error {
	var total int64
	if config.Cache.Enabled {
		paths, err := filelist.Paths()
		if err != nil && !errors.Is(err, filelist.ErrNoFileList) {
			return clipError{err, "Could not read the clipboard."}
		}
		stat, closeCache := classifyStat()
		defer closeCache()
		for _, r := range filelist.ClassifyWith(paths, stat) {
			if !r.IsDir {
				total += r.Size
			}
		}
	} else {
		t, err := filelist.TotalSize()
		if err != nil {
			return clipError{err, "Could not read the clipboard."}
		}
		total = t
	}

	fmt.Println(formatSize(total, config.Humanize))
	return nil
}

func runClear() error {
	if !config.Force && isInputTerminal() && isOutputTerminal() {
		var confirmed bool
		err := huh.NewConfirm().
			Title("Clear the system clipboard?").
			Description("Every application will see an empty clipboard afterwards.").
			Affirmative("Clear").
			Negative("Cancel").
			Value(&confirmed).
			Run()
		if err != nil {
			return clipError{err, "Could not read the confirmation."}
		}
		if !confirmed {
			fmt.Fprintln(os.Stderr, stderrStyles().Comment.Render("aborted, clipboard left untouched"))
			return nil
		}
	}

	if err := filelist.Clear(); err != nil {
		return clipError{err, "Could not clear the clipboard."}
	}
	logger.Debug("clipboard cleared")
	return nil
}

func runShowSettings() error {
	out, err := yaml.Marshal(config)
	if err != nil {
		return clipError{err, "Could not render the settings."}
	}
	fmt.Print(string(out))
	return nil
}
