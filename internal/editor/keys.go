package editor

// Help is the key summary shown in the title row.
const Help = "arrows move  shift+arrows extend  space toggle  m merge  s split  " +
	"[ ] cols  { } rows  p/P/c/h/n content  l label  esc clear  q quit"

// terminalCellAspect is the width/height ratio, in character cells, of a
// 16:9 grid cell on a terminal whose characters are twice as tall as wide.
const terminalCellAspect = 32.0 / 9.0

// Grid dimension limits offered by the editor.
const (
	MinDim = 1
	MaxDim = 8
)
