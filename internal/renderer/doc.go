// Package renderer draws a text field onto a terminal backend.
//
// A View keeps the scroll position of one field and renders its lines, the
// selections of every cursor, the secondary carets and a status line. The
// primary caret is the terminal cursor.
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	v := renderer.NewView(renderer.DefaultOptions())
//	v.ScrollToCursor(handler, width, height)
//	v.Render(term, handler, status)
package renderer
