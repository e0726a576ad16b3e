package main

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var isInputTerminal = sync.OnceValue(func() bool {
	return isatty.IsTerminal(os.Stdin.Fd())
})

var isOutputTerminal = sync.OnceValue(func() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
})

var stderrRenderer = sync.OnceValue(
	func() *lipgloss.Renderer {
		return lipgloss.NewRenderer(os.Stderr, termenv.WithColorCache(true))
	})

var stdoutRenderer = sync.OnceValue(
	func() *lipgloss.Renderer {
		return lipgloss.NewRenderer(os.Stdout, termenv.WithColorCache(true))
	})

var stderrStyles = sync.OnceValue(func() styles {
	return makeStyles(stderrRenderer())
})

var stdoutStyles = sync.OnceValue(func() styles {
	return makeStyles(stdoutRenderer())
})

type styles struct {
	Comment,
	ErrorHeader,
	ErrorDetails,
	ErrPadding,
	TableBorder,
	TableHeader,
	TableCell lipgloss.Style
}

func makeStyles(r *lipgloss.Renderer) (s styles) {
	const horizontalEdgePadding = 2
	s.Comment = r.NewStyle().Foreground(lipgloss.Color("#757575"))
	s.ErrorHeader = r.NewStyle().Foreground(lipgloss.Color("#F1F1F1")).Background(lipgloss.Color("#A33D56")).Bold(true).Padding(0, 1).SetString("ERROR")
	s.ErrorDetails = s.Comment
	s.ErrPadding = r.NewStyle().Padding(0, horizontalEdgePadding)
	s.TableBorder = r.NewStyle().Foreground(lipgloss.Color("#585858"))
	s.TableHeader = r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00B594", Dark: "#3EEFCF"}).Bold(true).Padding(0, 1)
	s.TableCell = r.NewStyle().Padding(0, 1)
	return s
}
