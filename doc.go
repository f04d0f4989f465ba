// SPDX-License-Identifier: EPL-2.0

// Package mp3pull decodes MP3 files into 16-bit stereo PCM through a
// pull-style API.
//
// The package is built for callers that consume audio in small, fixed-size
// chunks on their own schedule, such as playback callbacks and streaming
// converters. Compressed data moves through a sliding window of a few
// frames, so memory use stays flat no matter how large the input file is.
//
// # Quick Start
//
// Open a file and pull frames until io.EOF:
//
//	dec, _ := mp3pull.Open("audio.mp3")
//	defer dec.Close()
//
//	buf := make([]int16, 512*2) // 512 stereo frames
//	for {
//		n, err := dec.ReadFrames(buf, 512)
//		play(buf[:n*2])
//		if err != nil {
//			break
//		}
//	}
//
// A frame is one left/right sample pair. Mono input is widened on the fly,
// so output is always interleaved stereo and buffer arithmetic never
// depends on the channel count of the file.
//
// # Stream Properties
//
// SampleRate and Bitrate report the most recently decoded frame and are
// valid as soon as Open returns, because opening decodes the first frame:
//
//	dec, _ := mp3pull.Open("audio.mp3")
//	fmt.Println(dec.SampleRate(), dec.Bitrate())
//
// For variable-bit-rate files, Bitrate changes as decoding progresses.
// FramesDecoded counts every frame handed out so far.
//
// # End of Stream
//
// The final ReadFrames returns the leftover frames together with io.EOF,
// and every call after that returns 0, io.EOF. Damaged regions inside the
// input are skipped by resynchronizing on the next frame header; input in
// which no frame can be found at all fails at Open with ErrNoMP3Frames.
//
// # go-audio Interop
//
// ReadPCMBuffer fills a github.com/go-audio/audio IntBuffer instead of a
// raw sample slice, for feeding go-audio encoders directly:
//
//	buf := &audio.IntBuffer{Data: make([]int, 512*2)}
//	n, _ := dec.ReadPCMBuffer(buf)
//	enc.Write(buf)
//
// # Frame Decoder Backends
//
// Decoding of individual frames is delegated to a codec.FrameDecoder. Open
// uses the gomp3 backend; OpenWithDecoder accepts any other implementation,
// which is also how the decode loop is exercised in tests.
//
// See the codec and id3 subpackages for the lower-level pieces.
package mp3pull
