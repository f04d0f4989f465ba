// SPDX-License-Identifier: EPL-2.0

// Package id3 positions an MP3 stream past its leading metadata.
//
// ID3v2 tags sit in front of the first audio frame and can be hundreds of
// kilobytes of album art. Decoders that scan for a sync word would crawl
// through all of it, and can even be fooled by sync-like bytes inside the
// tag, so the tag is measured and jumped over before decoding starts. Only
// the tag length is ever inspected; parsing the tag content is a job for a
// metadata library, not a decoder.
package id3

import (
	"bytes"
	"fmt"
	"io"
)

// headerSize is the fixed ID3v2 tag header length in bytes: the "ID3"
// identifier, two version bytes, one flags byte and four size bytes.
const headerSize = 10

var tagMagic = []byte("ID3")

// Skip positions rs at the first byte after the leading ID3v2 tag and
// returns how many bytes were skipped. When the stream does not start with
// a tag, rs is positioned back at the start and Skip returns 0.
//
// The four size bytes are syncsafe: bit 7 of each is always clear, leaving
// seven payload bits per byte, and the stored value excludes the ten-byte
// header itself.
func Skip(rs io.ReadSeeker) (int64, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return 0, fmt.Errorf("%w", err)
	}

	var header [headerSize]byte
	if _, err := io.ReadFull(rs, header[:]); err != nil {
		return 0, fmt.Errorf("%w", err)
	}

	if !bytes.HasPrefix(header[:], tagMagic) {
		// The probe consumed ten bytes of audio; put them back.
		if _, err := rs.Seek(0, io.SeekStart); err != nil {
			return 0, fmt.Errorf("%w", err)
		}

		return 0, nil
	}

	size := int64(header[6]&0x7F)<<21 |
		int64(header[7]&0x7F)<<14 |
		int64(header[8]&0x7F)<<7 |
		int64(header[9]&0x7F)
	total := size + headerSize

	if _, err := rs.Seek(total, io.SeekStart); err != nil {
		return 0, fmt.Errorf("%w", err)
	}

	return total, nil
}
