package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/Manu343726/mipsdis/pkg/config"
	"github.com/Manu343726/mipsdis/pkg/listing"
	"github.com/Manu343726/mipsdis/pkg/stream"
	"github.com/Manu343726/mipsdis/pkg/utils"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var ErrUndecodedWords = errors.New("some words could not be decoded")

// Input file used when none is given
const defaultInputFile = "bin"

var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Disassemble a binary file",
	Long: `Reads a file of consecutive 32-bit MIPS instruction words and prints one assembly line per word.

Words that cannot be decoded are reported inline and logged as warnings, and decoding goes on
with the next word. Use --strict to make the command fail if any word could not be decoded.

If no file is given, the file named "` + defaultInputFile + `" in the current directory is disassembled.

Example:
  mipsdis decode program.bin --addresses --raw --base-address 0x00400000
  mipsdis decode program.bin --format yaml --jobs 8`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDecode,
}

func init() {
	RootCmd.AddCommand(decodeCmd)

	flags := decodeCmd.Flags()
	flags.String("byte-order", "little", "Byte order of the instruction words: little, big")
	flags.Uint32("base-address", 0, "Address of the first instruction")
	flags.BoolP("addresses", "a", false, "Print instruction addresses")
	flags.BoolP("raw", "r", false, "Print raw instruction words")
	flags.StringP("format", "f", "text", "Output format: text, yaml, dump")
	flags.IntP("jobs", "j", 0, "Decode with up to this many goroutines (0 decodes sequentially while reading)")
	flags.Bool("strict", false, "Fail if any word cannot be decoded")

	for _, key := range []string{
		config.Key_ByteOrder,
		config.Key_BaseAddress,
		config.Key_Addresses,
		config.Key_Raw,
		config.Key_Format,
		config.Key_Jobs,
		config.Key_Strict,
	} {
		cobra.CheckErr(viper.BindPFlag(key, flags.Lookup(key)))
	}
}

func runDecode(cmd *cobra.Command, args []string) error {
	path := defaultInputFile
	if len(args) > 0 {
		path = args[0]
	}

	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	logger.Debug("disassembling file", slog.String("path", path), slog.String("byte-order", cfg.ByteOrder))

	summary, err := disassemble(cmd.Context(), file, cmd.OutOrStdout(), cfg, logger.Logger)
	if err != nil {
		return err
	}

	logger.Info("done",
		slog.String("path", path),
		slog.Int("total", summary.Total),
		slog.Int("decoded", summary.Decoded),
		slog.Int("failed", summary.Failed))

	if cfg.Strict && summary.HasFailures() {
		return utils.MakeError(ErrUndecodedWords, "%v of %v words failed", summary.Failed, summary.Total)
	}

	return nil
}

// Decodes all words from in and writes the listing to out
func disassemble(ctx context.Context, in io.Reader, out io.Writer, cfg config.Config, logger *slog.Logger) (stream.Summary, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	order, err := stream.ParseByteOrder(cfg.ByteOrder)
	if err != nil {
		return stream.Summary{}, err
	}

	format, err := listing.ParseFormat(cfg.Format)
	if err != nil {
		return stream.Summary{}, err
	}

	writer, err := listing.NewWriter(out, listing.Options{
		Format:    format,
		Addresses: cfg.Addresses,
		Raw:       cfg.Raw,
		Annotate:  cfg.Annotate,
		Color:     !color.NoColor,
	})
	if err != nil {
		return stream.Summary{}, err
	}

	decoder := stream.NewDecoder(stream.Options{
		BaseAddress: cfg.BaseAddress,
		Jobs:        cfg.Jobs,
		Logger:      logger,
	})
	reader := stream.NewWordReader(in, order)

	if cfg.Jobs > 0 {
		results, err := decoder.DecodeParallel(ctx, reader)
		if err != nil {
			return stream.Summary{}, err
		}

		return stream.Summarize(results), writer.WriteAll(results)
	}

	var summary stream.Summary
	err = decoder.Each(ctx, reader, func(result stream.Result) error {
		summary.Add(result)
		return writer.Write(result)
	})

	return summary, err
}
