package grid

// DefaultTemplateName is the name of the built-in template.
const DefaultTemplateName = "Default"

// defaultFeedFont is the descriptor used for the preview and program
// labels of the default template.
const defaultFeedFont = ",20"

// Template is a reusable layout without window state.
type Template struct {
	Name            string
	Layout          Layout
	PreserveSources bool
}

// NewTemplate captures l as a template. Unless preserveSources is set,
// every cell with content becomes a placeholder labelled with its former
// role or name, so the template carries structure but no references.
func NewTemplate(name string, l Layout, preserveSources bool) Template {
	t := Template{Name: name, Layout: l.Clone(), PreserveSources: preserveSources}
	if preserveSources {
		return t
	}
	for i, c := range t.Layout.Cells {
		if c.Content.Kind == KindNone {
			continue
		}
		if c.Label.Text == "" && c.Content.Kind != KindPlaceholder {
			c.Label.Text = c.Content.DefaultLabelText()
		}
		c.Content = Placeholder("")
		t.Layout.Cells[i] = c
	}
	return t
}

// Instantiate returns a layout built from the template. The result shares
// no memory with t.
func (t Template) Instantiate() Layout {
	return t.Layout.Clone()
}

// DefaultTemplate returns the built-in 4x4 template: preview and program
// side by side across the top half, and the bottom two rows filled with
// the given scenes in order, then placeholders.
func DefaultTemplate(scenes []string) Template {
	l := Layout{Rows: 4, Cols: 4}

	preview := NewSpan(0, 0, 2, 2).WithContent(Preview())
	preview.Label.Text = "Preview"
	preview.Label.Font = defaultFeedFont
	program := NewSpan(0, 2, 2, 2).WithContent(Program())
	program.Label.Text = "Program"
	program.Label.Font = defaultFeedFont
	l.Cells = append(l.Cells, preview, program)

	next := 0
	for r := 2; r <= 3; r++ {
		for c := 0; c <= 3; c++ {
			cell := NewCell(r, c)
			if next < len(scenes) {
				cell.Content = Scene(scenes[next])
				cell.Label.Text = scenes[next]
				next++
			} else {
				cell.Content = Placeholder("")
			}
			l.Cells = append(l.Cells, cell)
		}
	}
	return Template{Name: DefaultTemplateName, Layout: l}
}
