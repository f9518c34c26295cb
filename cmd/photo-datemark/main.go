package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/photo-datemark/internal/config"
	"github.com/aliskhannn/photo-datemark/internal/processor"
	"github.com/aliskhannn/photo-datemark/internal/storage/file"
	"github.com/aliskhannn/photo-datemark/internal/walker"
)

func main() {
	zlog.Init()

	fs := pflag.NewFlagSet("photo-datemark", pflag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <input_path>\n\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "Stamp the capture date onto photos.")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	config.RegisterFlags(fs)
	_ = fs.Parse(os.Args[1:]) // ExitOnError: parse failures exit here

	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(1)
	}
	inputPath := fs.Arg(0)

	cfg, err := config.Load(fs)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("invalid configuration")
		os.Exit(1)
	}

	info, err := os.Stat(inputPath)
	if err != nil {
		zlog.Logger.Error().Msgf("Input path not found: %s", inputPath)
		os.Exit(1)
	}

	storage := file.NewStorage(walker.OutputRoot(inputPath, info.IsDir()))
	w := walker.New(processor.New(storage, cfg))

	processed, err := w.Run(inputPath)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("batch failed")
		os.Exit(1)
	}

	fmt.Printf("Done. Processed %d image(s). Output: %s\n", processed, storage.Root())
}
