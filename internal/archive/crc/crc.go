// Package crc computes the CRC-32 checksum used by ZIP archives.
package crc

import "sync"

// Polynomial is the reversed IEEE 802.3 polynomial.
const Polynomial = 0xEDB88320

var (
	tableOnce sync.Once
	table     [256]uint32
)

func buildTable() {
	for i := range table {
		c := uint32(i)
		for j := 0; j < 8; j++ {
			if c&1 != 0 {
				c = Polynomial ^ (c >> 1)
			} else {
				c >>= 1
			}
		}
		table[i] = c
	}
}

// Checksum returns the CRC-32 of b.
func Checksum(b []byte) uint32 {
	return Update(0, b)
}

// Update returns the result of adding b to a checksum previously returned
// by Checksum or Update. Start from 0.
func Update(crc uint32, b []byte) uint32 {
	tableOnce.Do(buildTable)

	c := ^crc
	for _, v := range b {
		c = table[byte(c)^v] ^ (c >> 8)
	}
	return ^c
}
