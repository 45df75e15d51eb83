package wavpipe

import "math"

// Resample converts the channel set to the target sample rate using linear
// interpolation, independently per channel. The output frame count is
// floor(NumSamples * target/source); the last output sample clamps to the
// last input sample instead of reading past the end. No anti-aliasing filter
// is applied, which trades quality for simplicity. The result is always a
// fresh value, even when the rate is unchanged.
func Resample[T Sample](s *ChannelSet[T], rate uint32) *ChannelSet[T] {
	ratio := float64(rate) / float64(s.SampleRate)
	numSamples := uint32(float64(s.NumSamples) * ratio)

	out := &ChannelSet[T]{
		SampleRate: rate,
		NumChans:   s.NumChans,
		BitDepth:   s.BitDepth,
		NumSamples: numSamples,
		Channel1:   resampleChannel(s.Channel1, numSamples, ratio),
	}

	if s.NumChans == 2 {
		out.Channel2 = resampleChannel(s.Channel2, numSamples, ratio)
	}

	return out
}

func resampleChannel[T Sample](src []T, numSamples uint32, ratio float64) []T {
	dst := make([]T, numSamples)
	last := len(src) - 1

	for i := range dst {
		pos := float64(i) / ratio

		idx0 := int(math.Floor(pos))
		if idx0 > last {
			idx0 = last
		}

		idx1 := idx0
		if idx0 < last {
			idx1 = idx0 + 1
		}

		frac := pos - float64(idx0)
		interp := (1-frac)*float64(src[idx0]) + frac*float64(src[idx1])
		dst[i] = T(math.Round(interp))
	}

	return dst
}
