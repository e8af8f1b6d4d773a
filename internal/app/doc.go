// Package app provides the main application structure and coordination
// for the CodeForge playground. It owns the three buffers (markup, style
// and script), routes key events through shortcuts, smart-edit rules and
// native input, keeps the live preview current and exports projects.
//
// The Application is single-threaded: every method must be called from
// the same goroutine, normally the terminal event loop. Work arriving from
// other goroutines, such as configuration reloads, is handed to that loop
// first.
package app
