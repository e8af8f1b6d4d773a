// Package renderer draws the playground in a terminal and runs its event
// loop.
//
// A frame has three regions:
//
//	 HTML  CSS  JavaScript                  CodeForge
//	<focused buffer, scrolled to keep the caret visible>
//	 notice or shortcut hints               Ln 3, Col 7
//
// Text is laid out by grapheme cluster using uniseg widths, so combining
// marks and wide characters occupy the cells a terminal gives them. Colors
// come from the configured theme; derived shades are blended with
// go-colorful.
package renderer
