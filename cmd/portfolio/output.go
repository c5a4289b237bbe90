package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/m-zajac/portfoliobuilder/internal/extension/popup"
	"github.com/m-zajac/portfoliobuilder/internal/i18n"
)

const progressBarWidth = 20

// terminalNotifier prints popup feedback with colors.
type terminalNotifier struct {
	out io.Writer
	tr  *i18n.Translations
}

func (n *terminalNotifier) Notify(level popup.Level, msg string) {
	fmt.Fprintln(n.out, levelColor(level)(msg))
}

func (n *terminalNotifier) StepChanged(step int, status popup.Status, progress int) {
	gray := color.New(color.FgHiBlack).SprintFunc()

	filled := progress * progressBarWidth / 100
	bar := strings.Repeat("#", filled) + strings.Repeat(".", progressBarWidth-filled)
	fmt.Fprintf(
		n.out,
		"%s %s %s\n",
		gray(fmt.Sprintf("[%s] %3d%%", bar, progress)),
		fmt.Sprintf("step %d:", step),
		statusColor(status)(n.statusLabel(status)),
	)
}

func (n *terminalNotifier) statusLabel(status popup.Status) string {
	switch status {
	case popup.StatusInProgress:
		return n.tr.Message(i18n.StatusInProgress, nil)
	case popup.StatusCompleted:
		return n.tr.Message(i18n.StatusCompleted, nil)
	case popup.StatusError:
		return n.tr.Message(i18n.StatusError, nil)
	default:
		return n.tr.Message(i18n.StatusWaiting, nil)
	}
}

func levelColor(level popup.Level) func(a ...interface{}) string {
	switch level {
	case popup.LevelSuccess:
		return color.New(color.FgGreen).SprintFunc()
	case popup.LevelWarning:
		return color.New(color.FgYellow).SprintFunc()
	case popup.LevelDanger:
		return color.New(color.FgRed).SprintFunc()
	default:
		return color.New(color.FgCyan).SprintFunc()
	}
}

func statusColor(status popup.Status) func(a ...interface{}) string {
	switch status {
	case popup.StatusInProgress:
		return color.New(color.FgBlue).SprintFunc()
	case popup.StatusCompleted:
		return color.New(color.FgGreen).SprintFunc()
	case popup.StatusError:
		return color.New(color.FgRed).SprintFunc()
	default:
		return color.New(color.FgHiBlack).SprintFunc()
	}
}
