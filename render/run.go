// Package render implements the render subcommand: compiling YAML stylesheet
// documents into CSS files.
package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"stylo/config"
	"stylo/css"
	"stylo/renderer"
	"stylo/sheet"
	"stylo/state"
)

// Run is the entry point for the render subcommand. Each source file gets a
// fresh renderer so documents never share identity state; per-file failures
// are accumulated and reported together at the end.
func Run(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.NArg() == 0 {
		return fmt.Errorf("no input files specified")
	}

	env.Overwrite = cmd.Bool("overwrite")
	env.OutDir = cmd.String("out")
	if cmd.Bool("verify") {
		env.Cfg.Document.Verify = true
	}
	if len(env.OutDir) > 0 {
		if err := os.MkdirAll(env.OutDir, 0755); err != nil {
			return fmt.Errorf("unable to create output directory '%s': %w", env.OutDir, err)
		}
	}

	var errs error
	for _, fname := range cmd.Args().Slice() {
		if err := renderDocument(env, fname); err != nil {
			env.Log.Error("Unable to render document", zap.String("file", fname), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("rendering '%s': %w", fname, err))
			continue
		}
	}
	return errs
}

func renderDocument(env *state.LocalEnv, fname string) error {
	log := env.Log.Named("render")

	data, err := os.ReadFile(fname)
	if err != nil {
		return fmt.Errorf("unable to read document: %w", err)
	}

	doc, err := sheet.Load(data)
	if err != nil {
		return fmt.Errorf("unable to load document: %w", err)
	}

	// Missing font files only produce a warning - serving them is outside of
	// our control.
	if err := sheet.CheckFonts(doc, filepath.Dir(fname)); err != nil {
		log.Warn("Font files did not pass validation", zap.Error(err))
	}

	plugins, err := env.Cfg.Renderer.BuildPlugins()
	if err != nil {
		return err
	}

	r := renderer.New(renderer.Config{
		Logger:           log,
		KeyframePrefixes: env.Cfg.Renderer.KeyframePrefixes,
		Plugins:          plugins,
	})

	res := sheet.Compile(doc, r)
	text := r.RenderToString()

	if env.Cfg.Document.Verify {
		if err := css.Verify(text); err != nil {
			return fmt.Errorf("generated CSS did not pass verification: %w", err)
		}
	}

	docName := slug.Make(strings.TrimSuffix(filepath.Base(fname), filepath.Ext(fname)))
	outName, err := expandTemplate("output_name_template", env.Cfg.Document.OutputNameTemplate, docName, fname)
	if err != nil {
		return fmt.Errorf("unable to expand output name: %w", err)
	}
	outName = filepath.Join(env.OutDir, config.CleanFileName(outName))

	if !env.Overwrite {
		if _, err := os.Stat(outName); err == nil {
			return fmt.Errorf("destination file '%s' already exists", outName)
		}
	}
	if err := os.WriteFile(outName, []byte(text), 0644); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}

	log.Info("Document rendered",
		zap.String("from", fname),
		zap.String("to", outName),
		zap.Int("classes", len(res.ClassNames)),
		zap.Int("animations", len(res.AnimationNames)),
		zap.Int("bytes", len(text)))
	return nil
}
