// This tool resamples and/or requantizes a PCM wav file and stores the
// result next to the source.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cwbudde/wavpipe"
)

var (
	flagPath = flag.String("path", "", "The path to the wav file to process")
	flagRate = flag.Uint("rate", 0, "The target sample rate in Hz (0 keeps the source rate)")
	flagBits = flag.Int("bits", 0, "The target bit depth, 8, 16 or 32 (0 keeps the source depth)")
)

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

	fmt.Println("Source ->", c)

	var out *wavpipe.Container

	switch c.BitDepth {
	case 8:
		out, err = transform[uint8](c, uint32(*flagRate), *flagBits)
	case 16:
		out, err = transform[int16](c, uint32(*flagRate), *flagBits)
	case 32:
		out, err = transform[int32](c, uint32(*flagRate), *flagBits)
	default:
		fmt.Println("Unsupported bit depth", c.BitDepth)
		os.Exit(1)
	}

	if err != nil {
		fmt.Println("Failed to transform", *flagPath, err)
		os.Exit(1)
	}

	ext := filepath.Ext(*flagPath)
	outPath := (*flagPath)[:len(*flagPath)-len(ext)] + "_out" + ext

	outFile, err := os.Create(outPath)
	if err != nil {
		fmt.Println("Failed to create", outPath, err)
		os.Exit(1)
	}
	defer outFile.Close()

	if err := out.Encode(outFile); err != nil {
		fmt.Println("Failed to write", outPath, err)
		os.Exit(1)
	}

	fmt.Println("Result ->", out)
}

func transform[T wavpipe.Sample](c *wavpipe.Container, rate uint32, bits int) (*wavpipe.Container, error) {
	set, err := wavpipe.Split[T](c)
	if err != nil {
		return nil, err
	}

	if rate != 0 && rate != set.SampleRate {
		set = wavpipe.Resample(set, rate)
	}

	switch bits {
	case 0, int(set.BitDepth):
		return set.Join(), nil
	case 8:
		return wavpipe.Reencode[T, uint8](set).Join(), nil
	case 16:
		return wavpipe.Reencode[T, int16](set).Join(), nil
	case 32:
		return wavpipe.Reencode[T, int32](set).Join(), nil
	default:
		return nil, fmt.Errorf("unsupported target bit depth %d", bits)
	}
}
