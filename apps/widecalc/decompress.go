//
// decompress.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"os"

	"github.com/juju/errors"
	"github.com/markkurossi/wide/decompress"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var decompressCommand = &cobra.Command{
	Use:   "decompress [flags] FILE",
	Short: "Decompress a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lossy, _ := cmd.Flags().GetBool("lossy")
		maxLen, _ := cmd.Flags().GetInt("max")
		output, _ := cmd.Flags().GetString("output")

		src, err := os.ReadFile(args[0])
		if err != nil {
			return errors.Trace(err)
		}
		var data []byte
		if lossy {
			data, err = decompress.Lossy(src, maxLen)
		} else {
			data, err = decompress.Lossless(src, maxLen)
		}
		if err != nil {
			return errors.Annotatef(err, "decompress %s", args[0])
		}
		logger.Info("decompressed",
			zap.String("file", args[0]),
			zap.Bool("lossy", lossy),
			zap.Int("input", len(src)),
			zap.Int("output", len(data)))

		if output == "" {
			_, err = cmd.OutOrStdout().Write(data)
			return errors.Trace(err)
		}
		return errors.Trace(os.WriteFile(output, data, 0o644))
	},
}

func init() {
	flags := decompressCommand.Flags()
	flags.Bool("lossy", false, "reconstruct a downsampled signal")
	flags.Int("max", 64*1024*1024, "maximum output length in bytes")
	flags.StringP("output", "o", "", "output file (default standard output)")
}
