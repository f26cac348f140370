/*
Package console prints red-black trees to a terminal.

Trees are printed sideways, with the root in the leftmost column and the right
subtree above the left one. Red nodes are printed in red, black nodes in bold.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/rbtree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/term"
)

// T traces to the global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Config configures console output.
type Config struct {
	Width   int    // maximum line length in ‘en’s; 0 means unlimited
	Indent  int    // indentation per tree level; defaults to 4
	NoColor bool   // print color markers instead of terminal colors
	Empty   string // printed for an empty tree; defaults to "(empty)"
}

func (cfg *Config) normalized() Config {
	c := Config{}
	if cfg != nil {
		c = *cfg
	}
	if c.Indent <= 0 {
		c.Indent = 4
	}
	if c.Empty == "" {
		c.Empty = "(empty)"
	}
	return c
}

// Printer outputs trees with a fixed palette.
type Printer struct {
	cfg   Config
	red   *color.Color
	black *color.Color
}

// NewPrinter creates a printer. If cfg is nil, defaults apply and colors are
// used if the terminal supports them.
func NewPrinter(cfg *Config) *Printer {
	p := &Printer{
		cfg:   cfg.normalized(),
		red:   color.New(color.FgRed, color.Bold),
		black: color.New(color.Bold),
	}
	if p.cfg.NoColor {
		p.red.DisableColor()
		p.black.DisableColor()
	}
	return p
}

// Print outputs tree to w, using a printer configured by cfg.
func Print(tree *rbtree.Tree, w io.Writer, cfg *Config) error {
	return NewPrinter(cfg).Print(tree, w)
}

// Print outputs tree to w, one key per line.
func (p *Printer) Print(tree *rbtree.Tree, w io.Writer) error {
	if tree == nil {
		return fmt.Errorf("%w: nil tree", rbtree.ErrIllegalArguments)
	}
	if tree.IsEmpty() {
		_, err := fmt.Fprintln(w, p.cfg.Empty)
		return err
	}
	return p.print(tree.Root(), 0, w)
}

func (p *Printer) print(n *rbtree.Node, depth int, w io.Writer) error {
	if n.IsSentinel() {
		return nil
	}
	if err := p.print(n.Right(), depth+1, w); err != nil {
		return err
	}
	if err := p.line(n, depth, w); err != nil {
		return err
	}
	return p.print(n.Left(), depth+1, w)
}

func (p *Printer) line(n *rbtree.Node, depth int, w io.Writer) error {
	indent := strings.Repeat(" ", depth*p.cfg.Indent)
	label := fmt.Sprintf("%d", n.Key())
	if p.cfg.NoColor {
		if n.Color() == rbtree.Red {
			label += ":R"
		} else {
			label += ":B"
		}
	}
	if p.cfg.Width > 0 && len(indent)+len(label) > p.cfg.Width {
		if len(indent) >= p.cfg.Width {
			indent, label = indent[:p.cfg.Width-1], ""
		} else {
			label = label[:p.cfg.Width-len(indent)-1]
		}
		label += "…"
	}
	if _, err := io.WriteString(w, indent); err != nil {
		return err
	}
	c := p.black
	if n.Color() == rbtree.Red {
		c = p.red
	}
	if _, err := c.Fprint(w, label); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.Width parameter accordingly. For non-terminals, colors
// are switched off.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil || w <= 10 {
			config.Width = 80
		} else {
			config.Width = w - 1
		}
	} else {
		config.NoColor = true
	}
	T().P("print", "console").Infof("setting line length to %d en", config.Width)
	return config
}
