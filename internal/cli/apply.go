package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/internal/recipe"
)

const defaultQuality = 90

// applyOpts holds the flags of the apply command.
type applyOpts struct {
	recipe  string   // TOML recipe file
	filters []string // extra filter types run with their defaults
	output  string   // output image path
	quality int      // JPEG quality
}

func (c *CLI) applyCommand() *cobra.Command {
	var opts applyOpts

	cmd := &cobra.Command{
		Use:   "apply [image]",
		Short: "Run a filter recipe over an image",
		Long: `Run a filter recipe over an image.

The recipe is a TOML file of [[filter]] tables applied in order. Filters
named with --filter run after the recipe with their default options.

Input may be PNG, JPEG, GIF, BMP, TIFF or WebP. The output format follows
the extension of --output (png, jpg, gif, bmp, tif).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runApply(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.recipe, "recipe", "r", "", "TOML recipe file")
	cmd.Flags().StringSliceVarP(&opts.filters, "filter", "f", nil, "filter type to append with default options (repeatable)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <input>.out.png)")
	cmd.Flags().IntVar(&opts.quality, "quality", defaultQuality, "JPEG quality (1-100)")

	return cmd
}

// loadRecipe combines the recipe file and the --filter flags.
func loadRecipe(opts applyOpts) (*recipe.Recipe, error) {
	r := &recipe.Recipe{}
	if opts.recipe != "" {
		var err error
		if r, err = recipe.ParseFile(opts.recipe); err != nil {
			return nil, err
		}
	}
	r.Steps = append(r.Steps, lo.Map(opts.filters, func(t string, _ int) recipe.Step {
		return recipe.Step{Type: strings.TrimSpace(t)}
	})...)
	if len(r.Steps) == 0 {
		return nil, errors.New("nothing to apply: pass --recipe or --filter")
	}
	return r, nil
}

func defaultOutput(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".out.png"
}

// runApply decodes the input, runs the chain and writes the result.
func (c *CLI) runApply(ctx context.Context, input string, opts applyOpts) error {
	if opts.quality < 1 || opts.quality > 100 {
		return fmt.Errorf("quality %d out of range 1-100", opts.quality)
	}
	output := opts.output
	if output == "" {
		output = defaultOutput(input)
	}
	if _, err := encoderFor(output); err != nil {
		return err
	}

	r, err := loadRecipe(opts)
	if err != nil {
		return err
	}
	chain, err := r.Chain()
	if err != nil {
		return err
	}

	src, format, err := readImage(input)
	if err != nil {
		return err
	}
	w, h := src.Bounds()
	c.Logger.Debug("Decoded input", "path", input, "format", format, "width", w, "height", h)

	if err := ctx.Err(); err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	out, err := chain.Apply(src)
	if err != nil {
		return fmt.Errorf("apply: %w", err)
	}
	prog.done(fmt.Sprintf("Applied %d filters", chain.Len()))

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := writeImage(output, out, opts.quality); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}
	ggfx.Release(out)

	c.Logger.Info("Wrote output", "path", output)
	return nil
}
