// Command gridedit edits a multiview grid layout in the terminal and
// prints the result on exit.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/multiview/grid"
	"github.com/gogpu/multiview/internal/editor"
)

func main() {
	var (
		rows   = flag.Int("rows", 0, "start from an empty rows x cols grid; 0 uses the default template")
		cols   = flag.Int("cols", 0, "columns of the empty grid; defaults to -rows when only one is set")
		scenes = flag.String("scenes", "", "comma separated scene names for the default template")
	)
	flag.Parse()

	l, err := startLayout(*rows, *cols, *scenes)
	if err != nil {
		log.Fatalf("layout: %v", err)
	}
	model, err := grid.NewModel(l)
	if err != nil {
		log.Fatalf("layout: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("terminal: %v", err)
	}
	ed := editor.New(screen, model)
	ed.Run()
	ed.Close()
	screen.Fini()

	fmt.Printf("%d edits\n", ed.Edits())
	if err := printLayout(os.Stdout, model.Layout()); err != nil {
		log.Fatal(err)
	}
}

// startLayout returns an empty grid when either dimension is set, the
// missing one taking the value of the other, and the default template
// otherwise.
func startLayout(rows, cols int, scenes string) (grid.Layout, error) {
	switch {
	case rows > 0 && cols <= 0:
		cols = rows
	case cols > 0 && rows <= 0:
		rows = cols
	}
	if rows > 0 {
		return grid.NewLayout(rows, cols)
	}
	var names []string
	for _, n := range strings.Split(scenes, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return grid.DefaultTemplate(names).Instantiate(), nil
}

// printLayout writes one row per cell in layout order.
func printLayout(w io.Writer, l grid.Layout) error {
	fmt.Fprintf(w, "grid %dx%d, %d cells\n", l.Rows, l.Cols, len(l.Cells))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tPOS\tSPAN\tCONTENT\tLABEL")
	for i, c := range l.Cells {
		label := "-"
		if c.Label.Visible {
			label = fmt.Sprintf("%q %s/%s", c.Label.Text, c.Label.HAlign, c.Label.VAlign)
		}
		fmt.Fprintf(tw, "%d\t%s\t%dx%d\t%s\t%s\n", i,
			grid.Position{Row: c.Row, Col: c.Col}, c.RowSpan, c.ColSpan, c.Content, label)
	}
	return tw.Flush()
}
