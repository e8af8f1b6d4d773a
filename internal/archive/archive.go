package archive

import (
	"encoding/binary"
	"time"

	"github.com/Sadvi2004/CodeForge/internal/archive/crc"
)

// Record signatures.
const (
	localHeaderSig = 0x04034b50
	centralDirSig  = 0x02014b50
	endRecordSig   = 0x06054b50
)

// Fixed record sizes, excluding the variable-length name.
const (
	LocalHeaderLen = 30
	CentralDirLen  = 46
	EndRecordLen   = 22
)

// version is both the "made by" and "needed to extract" version (2.0).
const version = 20

// methodStore marks an entry as uncompressed.
const methodStore = 0

// Entry is a single file in an archive.
type Entry struct {
	Name string
	Data []byte
}

// Build encodes entries stamped with the current local time.
func Build(entries []Entry) []byte {
	return BuildAt(entries, time.Now())
}

// BuildAt encodes entries with every modification time set to t.
// It is deterministic for a fixed t.
func BuildAt(entries []Entry, t time.Time) []byte {
	mtime, mdate := dosTime(t), dosDate(t)

	size := EndRecordLen
	for _, e := range entries {
		size += LocalHeaderLen + CentralDirLen + 2*len(e.Name) + len(e.Data)
	}

	w := &writer{buf: make([]byte, 0, size)}
	central := make([]byte, 0, size)

	for _, e := range entries {
		sum := crc.Checksum(e.Data)
		offset := uint32(len(w.buf))

		w.u32(localHeaderSig)
		w.u16(version)
		w.u16(0) // flags
		w.u16(methodStore)
		w.u16(mtime)
		w.u16(mdate)
		w.u32(sum)
		w.u32(uint32(len(e.Data))) // compressed
		w.u32(uint32(len(e.Data))) // uncompressed
		w.u16(uint16(len(e.Name)))
		w.u16(0) // extra
		w.bytes([]byte(e.Name))
		w.bytes(e.Data)

		cd := &writer{buf: central}
		cd.u32(centralDirSig)
		cd.u16(version) // made by
		cd.u16(version) // needed
		cd.u16(0)
		cd.u16(methodStore)
		cd.u16(mtime)
		cd.u16(mdate)
		cd.u32(sum)
		cd.u32(uint32(len(e.Data)))
		cd.u32(uint32(len(e.Data)))
		cd.u16(uint16(len(e.Name)))
		cd.u16(0) // extra
		cd.u16(0) // comment
		cd.u16(0) // disk number start
		cd.u16(0) // internal attributes
		cd.u32(0) // external attributes
		cd.u32(offset)
		cd.bytes([]byte(e.Name))
		central = cd.buf
	}

	cdOffset := uint32(len(w.buf))
	w.bytes(central)

	w.u32(endRecordSig)
	w.u16(0) // this disk
	w.u16(0) // disk with central directory
	w.u16(uint16(len(entries)))
	w.u16(uint16(len(entries)))
	w.u32(uint32(len(central)))
	w.u32(cdOffset)
	w.u16(0) // comment

	return w.buf
}

type writer struct {
	buf []byte
}

func (w *writer) u16(v uint16) { w.buf = binary.LittleEndian.AppendUint16(w.buf, v) }
func (w *writer) u32(v uint32) { w.buf = binary.LittleEndian.AppendUint32(w.buf, v) }
func (w *writer) bytes(b []byte) {
	w.buf = append(w.buf, b...)
}
