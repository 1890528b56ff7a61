package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/dstv"
	"github.com/tsawler/dstv/format"
	"github.com/tsawler/dstv/internal/source"
)

type convertFlags struct {
	output   string
	png      string
	pngWidth int
	faces    string
	noBevels bool
}

func newConvertCmd(a *app) *cobra.Command {
	f := &convertFlags{}

	cmd := &cobra.Command{
		Use:   "convert <input>",
		Short: "Write an SVG drawing of a DSTV file",
		Long: `Parse a DSTV file and write its faces as one SVG drawing.

The output defaults to the input name with an .svg extension. With
--png a raster preview is written as well.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.convert(cmd, args[0], f)
		},
	}

	cmd.Flags().StringVarP(&f.output, "output", "o", "", "SVG output file (- for stdout)")
	cmd.Flags().StringVar(&f.png, "png", "", "also write a PNG preview to this file")
	cmd.Flags().IntVar(&f.pngWidth, "png-width", 0, "PNG width in pixels (default 1200)")
	cmd.Flags().StringVar(&f.faces, "faces", "", "comma separated faces to draw (v,o,u,h)")
	cmd.Flags().BoolVar(&f.noBevels, "no-bevels", false, "do not draw bevel lines")
	return cmd
}

func (a *app) convert(cmd *cobra.Command, input string, f *convertFlags) error {
	log := a.log.WithField("input", input)

	conv, err := a.converter(cmd, input)
	if err != nil {
		return err
	}
	faces, err := dstv.ParseFaces(f.faces)
	if err != nil {
		return err
	}
	conv = conv.Faces(faces...)
	if f.noBevels {
		conv = conv.WithoutBevels()
	}

	out, warnings, err := conv.SVG()
	log.LogWarnings(warnings)
	if err != nil {
		log.LogFailure("conversion failed", err)
		return err
	}

	output := f.output
	if output == "" {
		output = svgName(input)
	}
	if output == "-" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	if err := os.WriteFile(output, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	log.Info("wrote svg", zap.String("output", output), zap.Int("bytes", len(out)))

	if f.png == "" {
		return nil
	}
	img, _, err := conv.PNG(f.pngWidth)
	if err != nil {
		return err
	}
	if err := os.WriteFile(f.png, img, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", f.png, err)
	}
	log.Info("wrote png", zap.String("output", f.png), zap.Int("bytes", len(img)))
	return nil
}

// converter opens input with the configured style and object storage
// settings.
func (a *app) converter(cmd *cobra.Command, input string) (*dstv.Converter, error) {
	style, err := a.style()
	if err != nil {
		return nil, err
	}
	return dstv.Open(input).
		Context(cmd.Context()).
		Source(source.NewRouter(a.cfg.S3())).
		Style(style), nil
}

// svgName derives the default output name: the base name of the input with
// its extension replaced by .svg, in the current directory. A DSTV extension
// behind .gz is dropped along with it.
func svgName(input string) string {
	base := filepath.Base(input)
	if ext := filepath.Ext(base); format.Detect(base).IsDSTV() && strings.EqualFold(ext, ".gz") {
		base = strings.TrimSuffix(base, ext)
	}
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".svg"
}
