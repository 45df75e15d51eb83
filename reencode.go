package wavpipe

import "math"

// Reencode remaps the channel set from one integer sample type to another
// with a full-range linear rescale: the minimum representable From value maps
// to the minimum To value and the maximum to the maximum, which handles
// signed/unsigned and narrowing/widening conversions uniformly. Sample rate,
// channel count and frame count carry over unchanged; the bit depth is set
// from the target type.
func Reencode[From, To Sample](s *ChannelSet[From]) *ChannelSet[To] {
	out := &ChannelSet[To]{
		SampleRate: s.SampleRate,
		NumChans:   s.NumChans,
		BitDepth:   uint16(sampleWidth[To]() * 8),
		NumSamples: s.NumSamples,
		Channel1:   reencodeChannel[From, To](s.Channel1),
	}

	if s.NumChans == 2 {
		out.Channel2 = reencodeChannel[From, To](s.Channel2)
	}

	return out
}

func reencodeChannel[From, To Sample](src []From) []To {
	fromMin, fromMax := sampleRange[From]()
	toMin, toMax := sampleRange[To]()

	dst := make([]To, len(src))
	for i, v := range src {
		normalized := (float64(v) - fromMin) / (fromMax - fromMin)
		dst[i] = To(math.Round(normalized*(toMax-toMin) + toMin))
	}

	return dst
}

// sampleRange returns the full representable range of T: 0..max for the
// unsigned types, min..max for the signed ones.
func sampleRange[T Sample]() (min, max float64) {
	bits := sampleWidth[T]() * 8

	if isSigned[T]() {
		half := int64(1) << (bits - 1)
		return float64(-half), float64(half - 1)
	}

	return 0, float64(uint64(1)<<bits - 1)
}
