/*
Copyright © 2025 blacktop

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"strconv"

	"github.com/blacktop/oodle-helper/internal/commands/decompress"
	"github.com/spf13/cobra"
)

func newDecompressCmd(opts *options) *cobra.Command {
	decompressCmd := &cobra.Command{
		Use:   "decompress <decompressed_size> [<input_path> <output_path>]",
		Short: "Decompress Oodle data from stdin (or a file) to stdout (or a file)",
		Example: `  # stdin -> stdout
  ❯ oodle-helper decompress 65536 < chunk.oodle > chunk.bin
  # file (or named pipe) -> file
  ❯ oodle-helper decompress 65536 /tmp/in.fifo /tmp/out.fifo`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 && len(args) != 3 {
				return fmt.Errorf("%w: accepts 1 or 3 arg(s), received %d", decompress.ErrUsage, len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("%w: %s", decompress.ErrInvalidSize, args[0])
			}

			conf := &decompress.Config{
				Size:    size,
				MaxSize: opts.conf.MaxBytes(),
			}
			if len(args) == 3 {
				conf.Input = args[1]
				conf.Output = args[2]
			}

			return decompress.Run(conf, opts.dec, opts.stdin, opts.stdout)
		},
	}
	// paths may start with '-'
	decompressCmd.Flags().SetInterspersed(false)

	return decompressCmd
}
