package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Renderer selects how run progress is rendered.
type Renderer string

const (
	RendererAuto  Renderer = "auto"
	RendererPlain Renderer = "plain"
	RendererTUI   Renderer = "tui"
)

// UIModeEnv overrides terminal detection when set to plain or tui.
const UIModeEnv = "NEGO_UI"

// ParseRenderer accepts auto, plain or tui, case-insensitively. Empty means auto.
func ParseRenderer(s string) (Renderer, error) {
	switch mode := Renderer(strings.ToLower(strings.TrimSpace(s))); mode {
	case "", RendererAuto:
		return RendererAuto, nil
	case RendererPlain, RendererTUI:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown renderer %q (want auto, plain or tui)", s)
	}
}

// ResolveRenderer picks the renderer for output w. An explicit NEGO_UI wins;
// otherwise CI runs and dumb terminals get plain output and only real
// terminals get the interactive one.
func ResolveRenderer(w io.Writer, getenv func(string) string) Renderer {
	if mode, err := ParseRenderer(getenv(UIModeEnv)); err == nil && mode != RendererAuto {
		return mode
	}

	if getenv("CI") != "" || getenv("TERM") == "dumb" {
		return RendererPlain
	}

	if IsTTY(w) {
		return RendererTUI
	}

	return RendererPlain
}

// NewUI builds the UI for renderer. Auto is resolved against the
// command's output and the process environment.
func NewUI(cmd *cobra.Command, renderer Renderer) UI {
	if renderer == RendererAuto {
		renderer = ResolveRenderer(cmd.OutOrStdout(), os.Getenv)
	}

	if renderer == RendererTUI {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(file.Fd()))
}
