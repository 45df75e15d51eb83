package wavpipe

import (
	"fmt"
	"log"
)

func Example() {
	set := &ChannelSet[int16]{
		SampleRate: 8000,
		NumChans:   1,
		BitDepth:   16,
		NumSamples: 4,
		Channel1:   []int16{0, 1000, -1000, 32767},
	}

	// interleave into a container and serialize to wav bytes
	raw := set.Join().Bytes()

	c, err := ParseBytes(raw)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(c)

	decoded, err := Split[int16](c)
	if err != nil {
		log.Fatal(err)
	}

	halved := Resample(decoded, 4000)
	fmt.Println(halved.Channel1)

	requantized := Reencode[int16, uint8](halved)
	fmt.Println(requantized.Channel1)
	// Output:
	// wav: 1 ch @ 8000 Hz, 16 bit, 4 frames (500µs)
	// [0 -1000]
	// [128 124]
}

func ExampleParse() {
	set := &ChannelSet[uint8]{
		SampleRate: 22050,
		NumChans:   2,
		BitDepth:   8,
		NumSamples: 2,
		Channel1:   []uint8{0, 255},
		Channel2:   []uint8{255, 0},
	}

	c, err := ParseBytes(set.Join().Bytes())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d ch, %d Hz, %d bit, %d frames\n",
		c.NumChans, c.SampleRate, c.BitDepth, c.NumSamples)
	// Output: 2 ch, 22050 Hz, 8 bit, 2 frames
}
