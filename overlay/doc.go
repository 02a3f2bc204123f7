// Package overlay rasterizes the pixels drawn on top of cell content:
// label text, the rounded label backdrop, and placeholder icons.
//
// Every function returns a premultiplied *image.RGBA sized exactly to its
// content, ready to upload with a gpucontext.TextureCreator. Drawing uses
// a software gg.Context; nothing here needs a GPU.
package overlay
