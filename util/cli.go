package util

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/kovetskiy/lorg"
	"github.com/reconquest/pkg/log"
	"github.com/urfave/cli/v3"

	"github.com/kovetskiy/decker/beamer"
	"github.com/kovetskiy/decker/diagram"
	"github.com/kovetskiy/decker/document"
	"github.com/kovetskiy/decker/highlight"
	"github.com/kovetskiy/decker/includes"
	"github.com/kovetskiy/decker/metadata"
	"github.com/kovetskiy/decker/pandoc"
	"github.com/kovetskiy/decker/resources"
)

func RunDecker(ctx context.Context, cmd *cli.Command) error {
	if err := SetLogLevel(cmd); err != nil {
		return err
	}

	if cmd.String("color") == "never" {
		log.GetLogger().SetFormat(
			lorg.NewFormat(
				`${time:2006-01-02 15:04:05.000} ${level:%s:left:true} ${prefix}%s`,
			),
		)
		log.GetLogger().SetOutput(os.Stderr)
	}

	files, err := doublestar.FilepathGlob(cmd.String("files"))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		msg := "No files matched"
		if cmd.Bool("ci") {
			log.Warning(msg)
		} else {
			log.Fatal(msg)
		}
	}

	log.Debug("config:")
	for _, f := range cmd.Flags {
		flag := f.Names()
		log.Debugf(nil, "%20s: %v", flag[0], cmd.Value(flag[0]))
	}

	resolver := beamer.NewResolver(
		highlight.DefaultRegistry(),
		resourceLocator(cmd),
	)

	engine := pandoc.New(cmd.String("pandoc-path"))

	if !cmd.Bool("dry-run") && !cmd.Bool("compile-only") {
		version, err := engine.Version(ctx)
		if err != nil {
			return err
		}

		log.Debugf(nil, "conversion backend: %s", version)
	}

	fatalErrorHandler := NewErrorHandler(cmd.Bool("continue-on-error"))

	// Loop through decks matched by glob pattern
	for _, file := range files {
		log.Infof(
			nil,
			"processing %s",
			file,
		)

		processDeck(ctx, file, cmd, resolver, engine, fatalErrorHandler)
	}

	return nil
}

func resourceLocator(cmd *cli.Command) resources.Locator {
	if root := cmd.String("resource-path"); root != "" {
		return resources.DirLocator{Root: root}
	}

	return resources.InstallLocator{}
}

// OptionsFromCommand derives deck options from the command line; front
// matter overrides are layered on top per deck.
func OptionsFromCommand(cmd *cli.Command) beamer.Options {
	opts := beamer.DefaultOptions()

	opts.TOC = cmd.Bool("toc")
	opts.SlideLevel = int(cmd.Int("slide-level"))
	opts.Incremental = cmd.Bool("incremental")

	opts.Figure.Width = cmd.Float("fig-width")
	opts.Figure.Height = cmd.Float("fig-height")
	opts.Figure.Crop = cmd.Bool("fig-crop")
	opts.Figure.Device = cmd.String("fig-format")
	opts.Figure.Caption = cmd.Bool("fig-caption")

	opts.Theme = beamer.ThemeFromConfig(cmd.String("theme"))
	opts.ColorTheme = beamer.ThemeFromConfig(cmd.String("colortheme"))
	opts.FontTheme = beamer.ThemeFromConfig(cmd.String("fonttheme"))

	opts.Highlight = cmd.String("highlight-style")
	opts.Template = beamer.TemplateFromConfig(cmd.String("template"))
	opts.KeepTex = cmd.Bool("keep-tex")

	opts.Includes = includes.ContentIncludes{
		BeforeBody: cmd.StringSlice("include-before-body"),
		InHeader:   cmd.StringSlice("include-in-header"),
		AfterBody:  cmd.StringSlice("include-after-body"),
	}

	opts.ExtraArgs = cmd.StringSlice("pandoc-arg")

	return opts
}

func processDeck(
	ctx context.Context,
	file string,
	cmd *cli.Command,
	resolver *beamer.Resolver,
	engine *pandoc.Engine,
	fatalErrorHandler *FatalErrorHandler,
) {
	markdown, err := os.ReadFile(file)
	if err != nil {
		fatalErrorHandler.Handle(err, "unable to read deck %q", file)
		return
	}

	markdown = bytes.ReplaceAll(markdown, []byte("\r\n"), []byte("\n"))

	meta, body, err := metadata.ExtractMeta(markdown)
	if err != nil {
		fatalErrorHandler.Handle(err, "unable to extract front matter from deck %q", file)
		return
	}

	opts := OptionsFromCommand(cmd)
	meta.MergeInto(&opts)

	var (
		base      = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		outputDir = cmd.String("output-dir")
	)

	if outputDir == "" {
		outputDir = filepath.Dir(file)
	}

	outline, err := document.Parse(body)
	if err != nil {
		fatalErrorHandler.Handle(err, "unable to parse deck %q", file)
		return
	}

	slideLevel := opts.SlideLevel
	if slideLevel == 0 {
		slideLevel = outline.InferSlideLevel()
		log.Debugf(nil, "inferred slide level %d for %q", slideLevel, file)
	}

	if cmd.Bool("dry-run") {
		format, err := resolver.Resolve(opts)
		if err != nil {
			fatalErrorHandler.Handle(err, "unable to resolve conversion arguments for %q", file)
			return
		}

		fmt.Printf(
			"%s: %d slides at level %d\n",
			file,
			outline.SlideCount(slideLevel),
			slideLevel,
		)
		fmt.Println(strings.Join(format.PandocArgs, " "))

		return
	}

	workdir := filepath.Join(outputDir, base+"_files")

	err = os.MkdirAll(workdir, 0o755)
	if err != nil {
		fatalErrorHandler.Handle(err, "unable to create work directory %q", workdir)
		return
	}

	opts.Includes, err = includes.RenderTemplated(
		filepath.Dir(file),
		cmd.String("include-path"),
		workdir,
		opts.Includes,
		meta.TemplateData(),
	)
	if err != nil {
		fatalErrorHandler.Handle(err, "unable to render templated includes for %q", file)
		return
	}

	markdown, artifacts, err := diagram.Process(
		markdown,
		workdir,
		opts.Figure,
		cmd.StringSlice("features"),
	)
	if err != nil {
		fatalErrorHandler.Handle(err, "unable to render diagrams for %q", file)
		return
	}

	if len(artifacts) > 0 {
		log.Infof(nil, "rendered %d diagram(s) for %q", len(artifacts), file)
	}

	format, err := resolver.Resolve(opts)
	if err != nil {
		fatalErrorHandler.Handle(err, "unable to resolve conversion arguments for %q", file)
		return
	}

	intermediate := filepath.Join(workdir, base+".md")

	err = os.WriteFile(intermediate, markdown, 0o644)
	if err != nil {
		fatalErrorHandler.Handle(err, "unable to write intermediate deck %q", intermediate)
		return
	}

	if cmd.Bool("compile-only") {
		fmt.Println(intermediate)
		return
	}

	output := filepath.Join(outputDir, base+".pdf")

	err = engine.Convert(ctx, intermediate, output, format.PandocArgs)
	if err != nil {
		fatalErrorHandler.Handle(err, "unable to convert deck %q", file)
		return
	}

	if opts.KeepTex {
		tex := filepath.Join(outputDir, base+".tex")

		err = engine.Convert(ctx, intermediate, tex, format.PandocArgs)
		if err != nil {
			fatalErrorHandler.Handle(err, "unable to produce LaTeX source for deck %q", file)
			return
		}

		log.Infof(nil, "intermediate LaTeX source kept at %s", tex)
	}

	if format.CleanSupporting {
		err = os.RemoveAll(workdir)
		if err != nil {
			log.Warningf(err, "unable to clean supporting files in %q", workdir)
		}
	}

	log.Infof(
		nil,
		"deck successfully rendered: %s",
		output,
	)
	fmt.Println(output)
}

func ConfigFilePath() string {
	fp, err := os.UserConfigDir()
	if err != nil {
		log.Fatal(err)
	}
	return filepath.Join(fp, "decker.toml")
}

func SetLogLevel(cmd *cli.Command) error {
	logLevel := cmd.String("log-level")
	switch strings.ToUpper(logLevel) {
	case lorg.LevelTrace.String():
		log.SetLevel(lorg.LevelTrace)
	case lorg.LevelDebug.String():
		log.SetLevel(lorg.LevelDebug)
	case lorg.LevelInfo.String():
		log.SetLevel(lorg.LevelInfo)
	case lorg.LevelWarning.String():
		log.SetLevel(lorg.LevelWarning)
	case lorg.LevelError.String():
		log.SetLevel(lorg.LevelError)
	case lorg.LevelFatal.String():
		log.SetLevel(lorg.LevelFatal)
	default:
		return fmt.Errorf("unknown log level: %s", logLevel)
	}

	return nil
}
