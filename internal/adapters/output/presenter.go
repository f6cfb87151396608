// Package output provides adapters for writing application output.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gx-cli/gx/internal/domain"
)

// Marker glyphs for the three tiers of an upstream-chain diagram.
const (
	tierTopGlyph    = "\u25c9" // ◉
	tierMiddleGlyph = "\u25cb" // ○
	tierBottomGlyph = "\u29bf" // ⦿
	tierConnector   = "\uff5c" // ｜
)

var (
	hashStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	branchStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	summaryStyle  = lipgloss.NewStyle().Bold(true)
	timeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	authorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	chainStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	upstreamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
)

// Presenter renders stack entries, upstream-chain diagrams and diagnostics
// as terminal lines. It implements domain.Presenter.
type Presenter struct {
	out   io.Writer
	color bool
}

// Option configures a Presenter.
type Option func(*Presenter)

// WithColor enables or disables ANSI styling. Disabled output is
// byte-deterministic regardless of the terminal.
func WithColor(enabled bool) Option {
	return func(p *Presenter) {
		p.color = enabled
	}
}

// NewPresenter creates a Presenter writing to stdout with color enabled.
func NewPresenter(opts ...Option) *Presenter {
	return NewPresenterWithOutput(os.Stdout, opts...)
}

// NewPresenterWithOutput creates a Presenter with a custom output destination.
// This is useful for testing.
func NewPresenterWithOutput(out io.Writer, opts ...Option) *Presenter {
	p := &Presenter{out: out, color: true}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Notice prints a single diagnostic line, unstyled.
func (p *Presenter) Notice(line string) {
	fmt.Fprintln(p.out, line)
}

// StackEntry prints one stack line:
//
//	* <short-hash> - (branch) <summary> (<timestamp>) <author>
//
// The branch segment is omitted for unannotated entries.
func (p *Presenter) StackEntry(entry domain.StackEntry) {
	c := entry.Commit

	parts := []string{
		"*",
		p.render(hashStyle, c.ShortHash()),
		"-",
	}
	if entry.Branch != "" {
		parts = append(parts, p.render(branchStyle, "("+entry.Branch+")"))
	}
	parts = append(parts,
		p.render(summaryStyle, c.Summary),
		p.render(timeStyle, fmt.Sprintf("(%d)", c.Timestamp)),
		p.render(authorStyle, fmt.Sprintf("<%s>", c.Author)),
	)

	fmt.Fprintln(p.out, strings.Join(parts, " "))
}

// UpstreamPair prints the fixed three-tier chain diagram for one pair.
// Each tier restates the same pair behind a different marker glyph; the
// diagram carries no information beyond the pair itself.
func (p *Presenter) UpstreamPair(pair domain.UpstreamPair) {
	p.tier(tierTopGlyph, pair)
	p.connectors()
	p.tier(tierMiddleGlyph, pair)
	p.connectors()
	p.tier(tierBottomGlyph, pair)
}

func (p *Presenter) tier(glyph string, pair domain.UpstreamPair) {
	fmt.Fprintf(p.out, "%s  branch: %s, upstream: %s\n",
		glyph,
		p.render(chainStyle, pair.Branch),
		p.render(upstreamStyle, pair.Upstream),
	)
}

func (p *Presenter) connectors() {
	for i := 0; i < 3; i++ {
		fmt.Fprintln(p.out, tierConnector)
	}
}

func (p *Presenter) render(style lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return style.Render(text)
}
