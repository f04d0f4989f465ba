// SPDX-License-Identifier: EPL-2.0

package mp3pull

import (
	goaudio "github.com/go-audio/audio"
)

// ReadPCMBuffer pulls decoded stereo frames into buf, for feeding the
// go-audio ecosystem (encoders, transforms) without converting by hand. The
// capacity of buf.Data decides how many frames are requested: one frame per
// two entries. On return buf.Data is resliced to the samples actually
// written and buf.Format and buf.SourceBitDepth describe the decoded
// stream, so a short final read can be handed to an encoder as is.
//
// The frame count and error follow the ReadFrames contract.
func (d *Decoder) ReadPCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if d == nil {
		return 0, ErrNilDecoder
	}
	if buf == nil || cap(buf.Data) < pcmChannels {
		return 0, ErrShortOutputBuffer
	}

	frames := cap(buf.Data) / pcmChannels
	samples := frames * pcmChannels

	if cap(d.scratch) < samples {
		d.scratch = make([]int16, samples)
	}
	d.scratch = d.scratch[:samples]

	n, err := d.ReadFrames(d.scratch, frames)

	buf.Data = buf.Data[:cap(buf.Data)]
	for i := 0; i < n*pcmChannels; i++ {
		buf.Data[i] = int(d.scratch[i])
	}
	buf.Data = buf.Data[:n*pcmChannels]
	buf.Format = &goaudio.Format{
		NumChannels: pcmChannels,
		SampleRate:  d.sampleRate,
	}
	buf.SourceBitDepth = 16

	return n, err
}
