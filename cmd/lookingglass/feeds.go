package main

import (
	"log/slog"

	"github.com/gogpu/multiview"
	"github.com/gogpu/multiview/grid"
	"github.com/gogpu/multiview/host/headless"
	"github.com/gogpu/multiview/overlay"
)

// Test pattern size and animation pace.
const (
	feedW, feedH  = 320, 180
	framesPerStep = 6
	stepsPerSweep = 40
)

type feed struct {
	d      *headless.ImageDrawable
	offset float64
}

// feeds animates colour-bar sources standing in for live video.
type feeds struct {
	list  []feed
	frame int
}

func newFeeds(host *headless.Host, scenes []string) *feeds {
	f := &feeds{}
	add := func(kind grid.ContentKind, name string) {
		offset := float64(len(f.list)) / 7
		img, err := overlay.ColorBars(feedW, feedH, offset)
		if err != nil {
			multiview.Logger().Warn("lookingglass: test pattern", "err", err)
			return
		}
		f.list = append(f.list, feed{d: host.SetSource(kind, name, img), offset: offset})
	}
	add(grid.KindPreview, "")
	add(grid.KindProgram, "")
	add(grid.KindCanvas, "")
	for _, s := range scenes {
		add(grid.KindScene, s)
	}
	return f
}

// advance moves every marker one step every framesPerStep calls.
func (f *feeds) advance() {
	f.frame++
	if f.frame%framesPerStep != 0 {
		return
	}
	phase := float64(f.frame/framesPerStep%stepsPerSweep) / stepsPerSweep
	for _, fd := range f.list {
		img, err := overlay.ColorBars(feedW, feedH, phase+fd.offset)
		if err != nil {
			multiview.Logger().Debug("lookingglass: test pattern", slog.Any("err", err))
			continue
		}
		fd.d.SetImage(img)
	}
}
