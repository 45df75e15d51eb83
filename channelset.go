package wavpipe

import (
	"encoding/binary"
	"fmt"
)

// Sample is the set of fixed-width integer types a PCM sample can decode to.
// The type's width must match the container's bit depth; 24-bit content has
// no matching fixed-width Go type and stays at the raw-byte level.
type Sample interface {
	int8 | int16 | int32 | uint8 | uint16 | uint32
}

// ChannelSet holds deinterleaved, typed audio data for up to two channels.
type ChannelSet[T Sample] struct {
	SampleRate uint32
	NumChans   uint16
	BitDepth   uint16
	// NumSamples is the number of frames per channel.
	NumSamples uint32

	// Channel1 is the left (or mono) channel.
	Channel1 []T
	// Channel2 is the right channel, empty unless NumChans is 2.
	Channel2 []T
}

// Split deinterleaves the container's payload into a typed channel set.
// T must match the container's bit depth exactly; a mismatch is a hard
// construction error, never a partially populated result. Channels beyond
// the second are not extracted.
func Split[T Sample](c *Container) (*ChannelSet[T], error) {
	width := sampleWidth[T]()
	if int(c.BitDepth) != width*8 {
		return nil, fmt.Errorf("%w: container has %d bits, sample type has %d",
			ErrBitDepthMismatch, c.BitDepth, width*8)
	}

	stereo := c.NumChans == 2

	frameBytes := width
	if stereo {
		frameBytes = 2 * width
	}

	if int(c.BlockAlign) < frameBytes {
		return nil, fmt.Errorf("%w: %d bytes can't hold %d channels at %d bits",
			ErrInvalidBlockAlign, c.BlockAlign, c.NumChans, c.BitDepth)
	}

	if need := int(c.NumSamples) * int(c.BlockAlign); len(c.RawData) < need {
		return nil, fmt.Errorf("%w: %d payload bytes for %d frames",
			ErrTruncatedStream, len(c.RawData), c.NumSamples)
	}

	s := &ChannelSet[T]{
		SampleRate: c.SampleRate,
		NumChans:   c.NumChans,
		BitDepth:   c.BitDepth,
		NumSamples: c.NumSamples,
		Channel1:   make([]T, c.NumSamples),
	}

	if stereo {
		s.Channel2 = make([]T, c.NumSamples)
	}

	for i := uint32(0); i < c.NumSamples; i++ {
		off := int(i) * int(c.BlockAlign)
		s.Channel1[i] = decodeSample[T](c.RawData[off : off+width])

		if stereo {
			s.Channel2[i] = decodeSample[T](c.RawData[off+width : off+2*width])
		}
	}

	return s, nil
}

// Join interleaves the channel set back into a container, recomputing the
// block align, data size and chunk size fields from the channel data.
func (s *ChannelSet[T]) Join() *Container {
	width := sampleWidth[T]()
	blockAlign := s.NumChans * uint16(width)
	dataSize := s.NumSamples * uint32(blockAlign)
	stereo := s.NumChans == 2

	raw := make([]byte, dataSize)
	for i := uint32(0); i < s.NumSamples; i++ {
		off := int(i) * int(blockAlign)
		encodeSample(raw[off:off+width], s.Channel1[i])

		if stereo {
			encodeSample(raw[off+width:off+2*width], s.Channel2[i])
		}
	}

	return &Container{
		ChunkSize:   riffOverhead + dataSize,
		AudioFormat: wavFormatPCM,
		NumChans:    s.NumChans,
		SampleRate:  s.SampleRate,
		BlockAlign:  blockAlign,
		BitDepth:    uint16(width * 8),
		DataSize:    dataSize,
		NumSamples:  s.NumSamples,
		RawData:     raw,
	}
}

// sampleWidth returns the byte width of the sample type.
func sampleWidth[T Sample]() int {
	var t T
	switch any(t).(type) {
	case int8, uint8:
		return 1
	case int16, uint16:
		return 2
	default:
		return 4
	}
}

func isSigned[T Sample]() bool {
	var t T
	switch any(t).(type) {
	case int8, int16, int32:
		return true
	default:
		return false
	}
}

// decodeSample reads one little-endian sample from the start of b.
func decodeSample[T Sample](b []byte) T {
	var v T

	switch p := any(&v).(type) {
	case *int8:
		*p = int8(b[0])
	case *uint8:
		*p = b[0]
	case *int16:
		*p = int16(binary.LittleEndian.Uint16(b))
	case *uint16:
		*p = binary.LittleEndian.Uint16(b)
	case *int32:
		*p = int32(binary.LittleEndian.Uint32(b))
	case *uint32:
		*p = binary.LittleEndian.Uint32(b)
	}

	return v
}

// encodeSample writes one little-endian sample to the start of b.
func encodeSample[T Sample](b []byte, v T) {
	switch s := any(v).(type) {
	case int8:
		b[0] = byte(s)
	case uint8:
		b[0] = s
	case int16:
		binary.LittleEndian.PutUint16(b, uint16(s))
	case uint16:
		binary.LittleEndian.PutUint16(b, s)
	case int32:
		binary.LittleEndian.PutUint32(b, uint32(s))
	case uint32:
		binary.LittleEndian.PutUint32(b, s)
	}
}
