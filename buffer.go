package wavpipe

import (
	"errors"
	"fmt"

	"github.com/go-audio/audio"
)

var errNilBuffer = errors.New("can't use a nil buffer")

// Format returns the audio format of the channel set.
func (s *ChannelSet[T]) Format() *audio.Format {
	if s == nil {
		return nil
	}

	return &audio.Format{
		NumChannels: int(s.NumChans),
		SampleRate:  int(s.SampleRate),
	}
}

// IntBuffer re-interleaves the channel set into a go-audio buffer, so the
// typed pipeline can feed encoders and transforms from the go-audio
// ecosystem.
func (s *ChannelSet[T]) IntBuffer() *audio.IntBuffer {
	if s == nil {
		return nil
	}

	chans := 1
	if s.NumChans == 2 {
		chans = 2
	}

	data := make([]int, int(s.NumSamples)*chans)
	for i := uint32(0); i < s.NumSamples; i++ {
		data[int(i)*chans] = int(s.Channel1[i])

		if chans == 2 {
			data[int(i)*chans+1] = int(s.Channel2[i])
		}
	}

	return &audio.IntBuffer{
		Data:           data,
		Format:         s.Format(),
		SourceBitDepth: int(s.BitDepth),
	}
}

// ChannelSetFromIntBuffer deinterleaves a go-audio buffer into a typed
// channel set. The buffer's source bit depth, when set, must match T.
func ChannelSetFromIntBuffer[T Sample](buf *audio.IntBuffer) (*ChannelSet[T], error) {
	if buf == nil || buf.Format == nil {
		return nil, errNilBuffer
	}

	width := sampleWidth[T]()
	if buf.SourceBitDepth != 0 && buf.SourceBitDepth != width*8 {
		return nil, fmt.Errorf("%w: buffer has %d bits, sample type has %d",
			ErrBitDepthMismatch, buf.SourceBitDepth, width*8)
	}

	chans := buf.Format.NumChannels
	if chans < 1 {
		chans = 1
	}

	frames := buf.NumFrames()

	s := &ChannelSet[T]{
		SampleRate: uint32(buf.Format.SampleRate),
		NumChans:   uint16(chans),
		BitDepth:   uint16(width * 8),
		NumSamples: uint32(frames),
		Channel1:   make([]T, frames),
	}

	if chans == 2 {
		s.Channel2 = make([]T, frames)
	}

	for i := 0; i < frames; i++ {
		s.Channel1[i] = T(buf.Data[i*chans])

		if chans == 2 {
			s.Channel2[i] = T(buf.Data[i*chans+1])
		}
	}

	return s, nil
}
