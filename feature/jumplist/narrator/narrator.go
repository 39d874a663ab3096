package narrator

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"jumplist-exporter/feature/jumplist/extract"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

// Detail selects how much of each shortcut is narrated.
type Detail int

const (
	// DetailPath prints only the reconstructed target path.
	DetailPath Detail = iota
	// DetailLink adds the string data and link information.
	DetailLink
	// DetailFull adds the header, shell items and extra blocks.
	DetailFull
)

// PropertyDescriber resolves a property key to a description.
type PropertyDescriber interface {
	Describe(guid, id string) string
}

// Options configures a Narrator.
type Options struct {
	// Layout is the Go time layout used for every timestamp.
	Layout     string
	Detail     Detail
	Color      bool
	Properties PropertyDescriber
	Vendors    extract.VendorLookup
}

// Narrator writes container walkthroughs to an output stream.
type Narrator struct {
	w      io.Writer
	opts   Options
	logger *zap.Logger
}

// New creates a narrator writing to w.
func New(w io.Writer, opts Options, logger *zap.Logger) *Narrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Narrator{w: w, opts: opts, logger: logger}
}

// ShouldColorize reports whether w is an interactive terminal.
func ShouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (n *Narrator) printf(format string, args ...any) {
	fmt.Fprintf(n.w, format+"\n", args...)
}

func (n *Narrator) blank() {
	fmt.Fprintln(n.w)
}

// heading prints a section title, colored on terminals.
func (n *Narrator) heading(color text.Color, format string, args ...any) {
	s := fmt.Sprintf(format, args...)
	if n.opts.Color {
		s = color.Sprint(s)
	}
	fmt.Fprintln(n.w, s)
}

// indented writes a pre-rendered block with every line prefixed.
func (n *Narrator) indented(prefix, block string) {
	for _, line := range strings.Split(block, "\n") {
		fmt.Fprintln(n.w, prefix+line)
	}
}

// stamp renders a timestamp, empty when it carries the sentinel year.
func (n *Narrator) stamp(t time.Time, sentinelYear int) string {
	return extract.Timestamp(t, sentinelYear, n.opts.Layout)
}

// optional renders an optional timestamp, empty when missing.
func (n *Narrator) optional(t *time.Time) string {
	v, ok := extract.NormalizePtr(t, extract.HeaderSentinelYear)
	return extract.Display(v, ok, n.opts.Layout)
}

func count(v int) string {
	return humanize.Comma(int64(v))
}

func orNone(v string) string {
	if v == "" {
		return "(None)"
	}
	return v
}
