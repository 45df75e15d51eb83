// Package wavpipe parses, constructs, and transforms PCM wav files.
//
// A file is read into a Container holding the header metadata and the raw
// interleaved sample payload. Split deinterleaves the payload into a typed
// ChannelSet, generic over the fixed-width integer sample types matching the
// container's bit depth. Resample converts a channel set to a new sample rate
// via linear interpolation, and Reencode remaps samples between integer bit
// depths with a full-range rescale. Join interleaves a channel set back into
// a Container ready for serialization.
//
// All transforms are pure: each consumes its input and produces a fresh,
// independently owned value, so the pipeline is safe to use from multiple
// goroutines as long as each works on its own buffers.
package wavpipe
