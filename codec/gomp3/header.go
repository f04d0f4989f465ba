// SPDX-License-Identifier: EPL-2.0

package gomp3

// headerBytes is the fixed MPEG frame header length.
const headerBytes = 4

// MPEG version field values, header bits 19-20.
const (
	mpegVersion25       = 0
	mpegVersionReserved = 1
	mpegVersion2        = 2
	mpegVersion1        = 3
)

// mpegLayerIII is the layer field value for Layer III, header bits 17-18.
// The field counts down: Layer I is 3, Layer III is 1.
const mpegLayerIII = 1

// Bit rates in kbit/s by header index. Index 0 is the free-format escape and
// index 15 is forbidden; both stay 0 and are rejected during parsing.
var (
	bitratesV1 = [16]int{0, 32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 0}
	bitratesV2 = [16]int{0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160, 0}
)

// Sample rates in Hz by header index and MPEG version. Index 3 is reserved.
var (
	sampleRatesV1  = [4]int{44100, 48000, 32000, 0}
	sampleRatesV2  = [4]int{22050, 24000, 16000, 0}
	sampleRatesV25 = [4]int{11025, 12000, 8000, 0}
)

// frameHeader carries the fields of a parsed Layer III frame header that
// framing and reporting need. Fields that only matter to the decode engine,
// like the mode extension, are left to it.
type frameHeader struct {
	version    byte
	bitrate    int // bits per second
	sampleRate int // Hz
	padding    int // 0 or 1 extra byte at the end of the frame
	mono       bool
}

// parseFrameHeader reads the first four bytes of b as an MPEG Layer III
// frame header. ok is false for anything else: too few bytes, a missing
// sync word, other layers, free-format streams and reserved field values
// all fail, so a successful parse pins down the exact frame length.
func parseFrameHeader(b []byte) (h frameHeader, ok bool) {
	if len(b) < headerBytes {
		return h, false
	}
	if b[0] != 0xFF || b[1]&0xE0 != 0xE0 {
		return h, false
	}

	h.version = b[1] >> 3 & 0x03
	if h.version == mpegVersionReserved {
		return h, false
	}
	if layer := b[1] >> 1 & 0x03; layer != mpegLayerIII {
		return h, false
	}

	bitrateIndex := b[2] >> 4
	if bitrateIndex == 0 || bitrateIndex == 15 {
		return h, false
	}
	if h.version == mpegVersion1 {
		h.bitrate = bitratesV1[bitrateIndex] * 1000
	} else {
		h.bitrate = bitratesV2[bitrateIndex] * 1000
	}

	sampleRateIndex := b[2] >> 2 & 0x03
	if sampleRateIndex == 3 {
		return h, false
	}
	switch h.version {
	case mpegVersion1:
		h.sampleRate = sampleRatesV1[sampleRateIndex]
	case mpegVersion2:
		h.sampleRate = sampleRatesV2[sampleRateIndex]
	case mpegVersion25:
		h.sampleRate = sampleRatesV25[sampleRateIndex]
	}

	h.padding = int(b[2] >> 1 & 0x01)
	h.mono = b[3]>>6 == 3

	if b[3]&0x03 == 2 { // reserved emphasis
		return h, false
	}

	return h, true
}

// size returns the total frame length in bytes, header included. Layer III
// frames carry 144 bytes per kbit/s-over-kHz at MPEG-1 sample rates and
// half that at the low rates of MPEG-2 and 2.5.
func (h frameHeader) size() int {
	if h.version == mpegVersion1 {
		return 144*h.bitrate/h.sampleRate + h.padding
	}

	return 72*h.bitrate/h.sampleRate + h.padding
}

// samplesPerChannel returns how many PCM samples per channel one frame
// decodes to.
func (h frameHeader) samplesPerChannel() int {
	if h.version == mpegVersion1 {
		return 1152
	}

	return 576
}
