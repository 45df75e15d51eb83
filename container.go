package wavpipe

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-audio/riff"
)

const (
	wavFormatPCM = 1

	// fmtChunkBodySize is the byte length of a plain PCM fmt chunk body.
	fmtChunkBodySize = 16
	// riffOverhead is the canonical chunk size minus the data payload:
	// "WAVE" + fmt header + fmt body + data header.
	riffOverhead = 36
)

var (
	// ErrInvalidHeader is returned when the RIFF or WAVE marker is missing.
	ErrInvalidHeader = errors.New("invalid RIFF/WAVE header")
	// ErrMissingFmtChunk is returned when no fmt chunk is found.
	ErrMissingFmtChunk = errors.New("fmt chunk not found")
	// ErrMissingDataChunk is returned when no data chunk is found.
	ErrMissingDataChunk = errors.New("data chunk not found")
	// ErrTruncatedStream is returned when fewer bytes are available than a
	// chunk declares.
	ErrTruncatedStream = errors.New("stream shorter than declared chunk size")
	// ErrInvalidBlockAlign is returned when the block align field can't
	// describe a sample frame.
	ErrInvalidBlockAlign = errors.New("invalid block align")
	// ErrBitDepthMismatch is returned when a typed view is requested at a
	// width that disagrees with the container's bit depth.
	ErrBitDepthMismatch = errors.New("bit depth doesn't match sample type")
)

// Container holds the header metadata and raw interleaved sample payload of
// a PCM wav file. It is produced by Parse or by ChannelSet.Join and consumed
// by Encode or Split.
type Container struct {
	// ChunkSize is the RIFF chunk size (file size minus 8). Stored verbatim
	// on parse, recomputed on encode.
	ChunkSize uint32
	// AudioFormat is the fmt chunk's format tag as parsed. Informational
	// only; Encode always claims PCM.
	AudioFormat uint16

	NumChans   uint16
	SampleRate uint32
	BlockAlign uint16
	BitDepth   uint16

	// DataSize is the byte length of RawData as declared by the data chunk.
	DataSize uint32
	// NumSamples is the number of frames per channel, DataSize / BlockAlign.
	// A trailing partial frame is dropped.
	NumSamples uint32
	// RawData is the interleaved sample payload.
	RawData []byte
}

// Parse reads a wav stream into a Container. The sub-chunk scan is
// order-agnostic: fmt and data may appear in any order, unknown chunks are
// skipped, and scanning stops once both were seen or the stream ends.
func Parse(r io.Reader) (*Container, error) {
	p := riff.New(r)

	id, size, err := p.IDnSize()
	if err != nil {
		return nil, fmt.Errorf("failed to read RIFF header: %w", truncated(err))
	}

	if id != riff.RiffID {
		return nil, fmt.Errorf("%w: got chunk ID %q", ErrInvalidHeader, id[:])
	}

	p.ID = id
	p.Size = size

	if err := binary.Read(r, binary.BigEndian, &p.Format); err != nil {
		return nil, fmt.Errorf("failed to read format marker: %w", truncated(err))
	}

	if p.Format != riff.WavFormatID {
		return nil, fmt.Errorf("%w: got format %q", ErrInvalidHeader, p.Format[:])
	}

	c := &Container{ChunkSize: size}

	var seenFmt, seenData bool
	for !seenFmt || !seenData {
		id, length, err := p.IDnSize()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return nil, fmt.Errorf("failed to read chunk header: %w", truncated(err))
		}

		switch id {
		case riff.FmtID:
			if err := c.readFmtChunk(r, length); err != nil {
				return nil, err
			}

			seenFmt = true
		case riff.DataFormatID:
			c.DataSize = length
			c.RawData = make([]byte, length)

			if _, err := io.ReadFull(r, c.RawData); err != nil {
				return nil, fmt.Errorf("%w: data chunk declares %d bytes", ErrTruncatedStream, length)
			}

			seenData = true
		default:
			if _, err := io.CopyN(io.Discard, r, int64(length)); err != nil {
				return nil, fmt.Errorf("%w: %q chunk declares %d bytes", ErrTruncatedStream, id[:], length)
			}
		}

		// all RIFF chunks are word aligned; odd payloads carry a pad byte
		// that is not part of the declared size.
		if length%2 == 1 {
			if _, err := io.CopyN(io.Discard, r, 1); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("failed to skip chunk padding: %w", err)
			}
		}
	}

	if !seenFmt {
		return nil, ErrMissingFmtChunk
	}

	if !seenData {
		return nil, ErrMissingDataChunk
	}

	if c.BlockAlign == 0 {
		return nil, fmt.Errorf("%w: block align is zero", ErrInvalidBlockAlign)
	}

	c.NumSamples = c.DataSize / uint32(c.BlockAlign)

	return c, nil
}

// ParseBytes reads a wav byte buffer into a Container.
func ParseBytes(b []byte) (*Container, error) {
	return Parse(bytes.NewReader(b))
}

func (c *Container) readFmtChunk(r io.Reader, size uint32) error {
	chunk := &riff.Chunk{
		ID:   riff.FmtID,
		Size: int(size),
		R:    io.LimitReader(r, int64(size)),
	}

	if err := chunk.ReadLE(&c.AudioFormat); err != nil {
		return fmt.Errorf("failed to read audio format: %w", truncated(err))
	}

	if err := chunk.ReadLE(&c.NumChans); err != nil {
		return fmt.Errorf("failed to read channels: %w", truncated(err))
	}

	if err := chunk.ReadLE(&c.SampleRate); err != nil {
		return fmt.Errorf("failed to read sample rate: %w", truncated(err))
	}

	// byte rate is recomputed on encode
	var byteRate uint32
	if err := chunk.ReadLE(&byteRate); err != nil {
		return fmt.Errorf("failed to read byte rate: %w", truncated(err))
	}

	if err := chunk.ReadLE(&c.BlockAlign); err != nil {
		return fmt.Errorf("failed to read block align: %w", truncated(err))
	}

	if err := chunk.ReadLE(&c.BitDepth); err != nil {
		return fmt.Errorf("failed to read bit depth: %w", truncated(err))
	}

	// extended fmt fields are not modeled
	chunk.Drain()

	return nil
}

// Encode writes the canonical 44-byte, two-subchunk wav layout followed by
// the raw payload. Byte rate, block align and chunk size are recomputed from
// the channel and bit-depth fields rather than trusting stored values, and
// the format tag always claims PCM. Chunks skipped during Parse are lost.
func (c *Container) Encode(w io.Writer) error {
	bytesPerFrame := c.NumChans * (c.BitDepth / 8)
	byteRate := c.SampleRate * uint32(bytesPerFrame)
	dataSize := uint32(len(c.RawData))

	fields := []any{
		riff.RiffID,
		riffOverhead + dataSize, // chunk size
		riff.WavFormatID,
		riff.FmtID,
		uint32(fmtChunkBodySize),
		uint16(wavFormatPCM),
		c.NumChans,
		c.SampleRate,
		byteRate,
		bytesPerFrame,
		c.BitDepth,
		riff.DataFormatID,
		dataSize,
	}

	for _, f := range fields {
		if err := binary.Write(w, binary.LittleEndian, f); err != nil {
			return fmt.Errorf("failed to write header field: %w", err)
		}
	}

	if _, err := w.Write(c.RawData); err != nil {
		return fmt.Errorf("failed to write PCM data: %w", err)
	}

	return nil
}

// Bytes serializes the container into a fresh byte buffer.
func (c *Container) Bytes() []byte {
	var buf bytes.Buffer

	// writing to an in-memory buffer can't fail
	c.Encode(&buf)

	return buf.Bytes()
}

// Duration returns the playback duration of the container's payload.
func (c *Container) Duration() time.Duration {
	if c == nil || c.SampleRate == 0 {
		return 0
	}

	return time.Duration(c.NumSamples) * (time.Second / time.Duration(c.SampleRate))
}

// String implements the Stringer interface.
func (c *Container) String() string {
	return fmt.Sprintf("wav: %d ch @ %d Hz, %d bit, %d frames (%s)",
		c.NumChans, c.SampleRate, c.BitDepth, c.NumSamples, c.Duration())
}

// truncated maps end-of-stream conditions inside a declared chunk onto
// ErrTruncatedStream.
func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncatedStream
	}

	return err
}
