package main

import (
	"github.com/atotto/clipboard"
	"github.com/pkg/browser"
)

// systemClipboard writes to the system clipboard.
type systemClipboard struct{}

func (systemClipboard) WriteText(text string) error {
	return clipboard.WriteAll(text)
}

// systemOpener opens files in the default browser.
type systemOpener struct{}

func (systemOpener) Open(path string) error {
	return browser.OpenFile(path)
}
