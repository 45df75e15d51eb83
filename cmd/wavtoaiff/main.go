// This tool converts a PCM wav file into an aiff file and stores it in the
// same folder as the source.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cwbudde/wavpipe"
	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"
)

var flagPath = flag.String("path", "", "The path to the wav file to convert to aiff")

func main() {
	flag.Parse()

	if *flagPath == "" {
		fmt.Println("You must set the -path flag")
		os.Exit(1)
	}

	file, err := os.Open(*flagPath)
	if err != nil {
		fmt.Println("Invalid path", *flagPath, err)
		os.Exit(1)
	}
	defer file.Close()

	c, err := wavpipe.Parse(file)
	if err != nil {
		fmt.Println("Failed to parse", *flagPath, err)
		os.Exit(1)
	}

	var buf *audio.IntBuffer

	switch c.BitDepth {
	case 8:
		// aiff stores signed samples, so promote unsigned 8-bit first
		set, splitErr := wavpipe.Split[uint8](c)
		if splitErr != nil {
			err = splitErr
			break
		}

		buf = wavpipe.Reencode[uint8, int16](set).IntBuffer()
	case 16:
		set, splitErr := wavpipe.Split[int16](c)
		if splitErr != nil {
			err = splitErr
			break
		}

		buf = set.IntBuffer()
	case 32:
		set, splitErr := wavpipe.Split[int32](c)
		if splitErr != nil {
			err = splitErr
			break
		}

		buf = set.IntBuffer()
	default:
		fmt.Println("Unsupported bit depth", c.BitDepth)
		os.Exit(1)
	}

	if err != nil {
		fmt.Println("Failed to split", *flagPath, err)
		os.Exit(1)
	}

	outPath := (*flagPath)[:len(*flagPath)-len(filepath.Ext(*flagPath))] + ".aif"

	outFile, err := os.Create(outPath)
	if err != nil {
		fmt.Println("Failed to create", outPath)
		os.Exit(1)
	}
	defer outFile.Close()

	encoder := aiff.NewEncoder(outFile,
		buf.Format.SampleRate,
		buf.SourceBitDepth,
		buf.Format.NumChannels)

	if err := encoder.Write(buf); err != nil {
		fmt.Println("Failed to encode", outPath, err)
		os.Exit(1)
	}

	if err := encoder.Close(); err != nil {
		fmt.Println("Failed to close encoder", err)
		os.Exit(1)
	}

	fmt.Println("Wrote", outPath)
}
