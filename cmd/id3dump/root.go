package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/irh/Symphonia/id3v2"
)

func newRootCommand() *cobra.Command {
	opts := defaultOptions()
	var configPath string

	cmd := &cobra.Command{
		Use:           "id3dump FILE...",
		Short:         "Dump the ID3v2 tags of audio files",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return nil
			}
			loaded, err := loadOptions(configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("json") {
				opts.JSON = loaded.JSON
			}
			if !cmd.Flags().Changed("frames") {
				opts.Frames = loaded.Frames
			}
			if !cmd.Flags().Changed("preview") {
				opts.Preview = loaded.Preview
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var nfailed int
			for _, path := range args {
				if err := dumpFile(cmd, path, opts); err != nil {
					fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
					nfailed++
				}
			}
			if nfailed > 0 {
				return fmt.Errorf("%d of %d files failed", nfailed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", opts.JSON, "Emit each tag as JSON")
	cmd.Flags().BoolVar(&opts.Frames, "frames", opts.Frames, "Render the frame table")
	cmd.Flags().IntVar(&opts.Preview, "preview", opts.Preview, "Bytes of frame payload to preview")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML file with output defaults")

	return cmd
}

func dumpFile(cmd *cobra.Command, path string, opts options) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	tag, err := id3v2.ReadTag(f)
	if err != nil {
		if errors.Is(err, id3v2.ErrUnsupported) || errors.Is(err, id3v2.ErrMalformed) {
			return err
		}
		return fmt.Errorf("read: %w", err)
	}

	if opts.JSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(tag)
	}

	renderTag(cmd.OutOrStdout(), path, tag, opts)
	return nil
}
