// Command lookingglass opens a multiview window fed by animated test
// patterns, or renders a single frame of it to a PNG file.
package main

import (
	"flag"
	"image/png"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/multiview"
	"github.com/gogpu/multiview/compositor"
	"github.com/gogpu/multiview/fontdesc"
	"github.com/gogpu/multiview/grid"
	"github.com/gogpu/multiview/host/ebitenhost"
	"github.com/gogpu/multiview/host/headless"
	"github.com/gogpu/multiview/layout"
	"github.com/gogpu/multiview/overlay"
)

func main() {
	var (
		width       = flag.Int("width", 1280, "window width")
		height      = flag.Int("height", 720, "window height")
		rows        = flag.Int("rows", 0, "grid rows; 0 uses the default template")
		cols        = flag.Int("cols", 0, "grid columns; 0 uses the default template")
		scenes      = flag.String("scenes", "Camera 1,Camera 2,Slides,Remote", "comma separated scene names")
		border      = flag.Int("border", layout.DefaultBorder, "separator width in pixels (1-10)")
		icon        = flag.String("icon", "", "placeholder icon file; empty draws the built-in icon")
		fullscreen  = flag.Bool("fullscreen", false, "start fullscreen")
		snapshot    = flag.String("snapshot", "", "render one frame to this PNG file instead of opening a window")
		systemFonts = flag.Bool("system-fonts", false, "resolve label fonts among installed fonts")
		bgra        = flag.Bool("bgra", false, "store textures in BGRA order")
		verbose     = flag.Bool("v", false, "log to stderr")
	)
	flag.Parse()

	if *verbose {
		multiview.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	names := splitNames(*scenes)
	l, err := buildLayout(*rows, *cols, names)
	if err != nil {
		log.Fatalf("layout: %v", err)
	}

	var fontOpts []fontdesc.Option
	if *systemFonts {
		fontOpts = append(fontOpts, fontdesc.WithSystemFonts(""))
	}
	fonts := fontdesc.NewResolver(fontOpts...)
	defer fonts.Close()

	hostOpts := []headless.Option{headless.WithFontResolver(fonts)}
	if *bgra {
		hostOpts = append(hostOpts, headless.WithTextureFormat(gputypes.TextureFormatBGRA8Unorm))
	}
	host := headless.New(hostOpts...)
	defer host.Close()
	feeds := newFeeds(host, names)

	layoutOpts := []layout.Option{layout.WithBorder(*border)}
	if *icon != "" {
		layoutOpts = append(layoutOpts, layout.WithCompositorOptions(
			compositor.WithPlaceholderIcon(overlay.NewFileIcon(*icon))))
	}

	if *snapshot != "" {
		if err := renderSnapshot(host, l, *width, *height, *snapshot, layoutOpts); err != nil {
			log.Fatalf("snapshot: %v", err)
		}
		log.Printf("Frame saved to %s (%dx%d)\n", *snapshot, *width, *height)
		return
	}

	game, err := ebitenhost.New(host, l, *width, *height,
		ebitenhost.WithTick(feeds.advance),
		ebitenhost.WithFullscreen(*fullscreen),
		ebitenhost.WithLayoutOptions(layoutOpts...))
	if err != nil {
		log.Fatalf("window: %v", err)
	}
	if err := game.Run("Looking Glass"); err != nil {
		log.Fatalf("window: %v", err)
	}
}

func splitNames(s string) []string {
	var names []string
	for _, n := range strings.Split(s, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}

// buildLayout returns the default template, or a rows x cols grid whose
// cells show the scenes in order.
func buildLayout(rows, cols int, scenes []string) (grid.Layout, error) {
	if rows <= 0 || cols <= 0 {
		return grid.DefaultTemplate(scenes).Instantiate(), nil
	}
	l, err := grid.NewLayout(rows, cols)
	if err != nil {
		return grid.Layout{}, err
	}
	for i := range l.Cells {
		if i < len(scenes) {
			l.Cells[i].Content = grid.Scene(scenes[i])
		} else {
			l.Cells[i].Content = grid.Placeholder("")
		}
	}
	return l, nil
}

func renderSnapshot(host *headless.Host, l grid.Layout, w, h int, path string, opts []layout.Option) error {
	win := headless.NewWindow(host, w, h)
	ctrl, err := layout.New(host, win, opts...)
	if err != nil {
		return err
	}
	defer ctrl.Close()
	if err := ctrl.Build(l); err != nil {
		return err
	}
	// The first frame realizes the surfaces.
	win.Draw(ctrl)
	ctrl.ActivatePending()
	win.Draw(ctrl)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, win.Frame()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
