// Package fontdesc parses label font descriptors and resolves them to
// gg text faces.
//
// Two descriptor forms are accepted:
//
//	Family,size[,bold][,italic]           e.g. "DejaVu Sans,24,bold"
//	Family,pt,px,hint,weight,style,...    a Qt QFont string
//
// Families are looked up among the system fonts when the resolver is built
// with [WithSystemFonts]; otherwise, or when the family is unknown, the Go
// fonts bundled with golang.org/x/image are used.
package fontdesc
