// Package archive encodes files into an uncompressed ZIP container.
//
// The encoder writes every entry with the stored method: a local file
// header followed by the raw bytes, then a central directory listing every
// entry, then the end of central directory record. All multi-byte fields
// are little-endian. The output is readable by any standard ZIP reader.
//
// Entries are written in the order given. Names are written verbatim and
// must be unique; the encoder does not deduplicate or normalize them.
package archive
