// Package project packages the playground buffers as a downloadable
// project archive.
//
// Assemble turns the three buffers into archive entries: index.html wraps
// the markup in a complete HTML5 document that links style.css and
// script.js, and empty style or script buffers are replaced with a
// placeholder comment so every file in the archive is non-empty. An
// Exporter encodes the entries with the archive package and hands the
// bytes to a Sink.
package project
