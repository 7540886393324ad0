package util

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	altsrctoml "github.com/urfave/cli-altsrc/v3/toml"
	"github.com/urfave/cli/v3"
)

var configpath string

var Flags = []cli.Flag{
	&cli.StringFlag{
		Name:      "files",
		Aliases:   []string{"f"},
		Value:     "",
		Usage:     "render specified markdown deck(s) to PDF. Supports file globbing patterns (needs to be quoted).",
		TakesFile: true,
		Sources:   cli.NewValueSourceChain(cli.EnvVar("DECKER_FILES"), altsrctoml.TOML("files", altsrc.NewStringPtrSourcer(&configpath))),
	},
	&cli.StringFlag{
		Name:      "output-dir",
		Aliases:   []string{"o"},
		Value:     "",
		Usage:     "write rendered decks into the specified directory instead of next to their sources.",
		TakesFile: true,
		Sources:   cli.NewValueSourceChain(cli.EnvVar("DECKER_OUTPUT_DIR"), altsrctoml.TOML("output-dir", altsrc.NewStringPtrSourcer(&configpath))),
	},
	&cli.BoolFlag{
		Name:    "continue-on-error",
		Value:   false,
		Usage:   "don't exit if an error occurs while processing a deck, continue processing remaining decks.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("DECKER_CONTINUE_ON_ERROR"), altsrctoml.TOML("continue-on-error", altsrc.NewStringPtrSourcer(&configpath))),
	},
	&cli.BoolFlag{
		Name:    "dry-run",
		Value:   false,
		Usage:   "resolve conversion arguments and the deck outline, print them and exit without invoking pandoc.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("DECKER_DRY_RUN"), altsrctoml.TOML("dry-run", altsrc.NewStringPtrSourcer(&configpath))),
	},
	&cli.BoolFlag{
		Name:    "compile-only",
		Value:   false,
		Usage:   "preprocess the deck (includes, diagrams) and keep the intermediate markdown, don't invoke pandoc.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("DECKER_COMPILE_ONLY"), altsrctoml.TOML("compile-only", altsrc.NewStringPtrSourcer(&configpath))),
	},
	&cli.BoolFlag{
		Name:    "toc",
		Value:   false,
		Usage:   "include a table of contents slide built from top-level headings.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("DECKER_TOC"), altsrctoml.TOML("toc", altsrc.NewStringPtrSourcer(&configpath))),
	},
	&cli.IntFlag{
		Name:    "slide-level",
		Value:   0,
		Usage:   "heading level that defines individual slides. 0 lets pandoc infer it from the deck structure.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("DECKER_SLIDE_LEVEL"), altsrctoml.TOML("slide-level", altsrc.NewStringPtrSourcer(&configpath))),
	},
	&cli.BoolFlag{
		Name:    "incremental",
		Aliases: []string{"i"},
		Value:   false,
		Usage:   "reveal bullet lists one item at a time.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("DECKER_INCREMENTAL"), altsrctoml.TOML("incremental", altsrc.NewStringPtrSourcer(&configpath))),
	},
	&cli.StringFlag{
		Name:    "theme",
		Value:   "default",
		Usage:   "beamer theme. 'default' keeps the backend default.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("DECKER_THEME"), altsrctoml.TOML("theme", altsrc.NewStringPtrSourcer(&configpath))),
	},
	&cli.StringFlag{
		Name:    "colortheme",
		Value:   "default",
		Usage:   "beamer color theme. 'default' keeps the backend default.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("DECKER_COLORTHEME"), altsrctoml.TOML("colortheme", altsrc.NewStringPtrSourcer(&configpath))),
	},
	&cli.StringFlag{
		Name:    "fonttheme",
		Value:   "default",
		Usage:   "beamer font theme. 'default' keeps the backend default.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("DECKER_FONTTHEME"), altsrctoml.TOML("fonttheme", altsrc.NewStringPtrSourcer(&configpath))),
	},
	&cli.StringFlag{
		Name:    "highlight-style",
		Value:   "default",
		Usage:   "syntax highlighting style for code blocks. 'default' keeps the backend default, 'none' disables highlighting.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("DECKER_HIGHLIGHT_STYLE"), altsrctoml.TOML("highlight-style", altsrc.NewStringPtrSourcer(&configpath))),
	},
	&cli.StringFlag{
		Name:      "template",
		Value:     "default",
		Usage:     "pandoc template. 'default' uses the bundled beamer template, 'none' suppresses the --template argument, anything else is a template path.",
		TakesFile: true,
		Sources:   cli.NewValueSourceChain(cli.EnvVar("DECKER_TEMPLATE"), altsrctoml.TOML("template", altsrc.NewStringPtrSourcer(&configpath))),
	},
	&cli.BoolFlag{
		Name:    "keep-tex",
		Value:   false,
		Usage:   "preserve the intermediate LaTeX source and supporting files after conversion.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("DECKER_KEEP_TEX"), altsrctoml.TOML("keep-tex", altsrc.NewStringPtrSourcer(&configpath))),
	},
	&cli.FloatFlag{
		Name:    "fig-width",
		Value:   10,
		Usage:   "default figure width in inches.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("DECKER_FIG_WIDTH"), altsrctoml.TOML("fig-width", altsrc.NewStringPtrSourcer(&configpath))),
	},
	&cli.FloatFlag{
		Name:    "fig-height",
		Value:   7,
		Usage:   "default figure height in inches.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("DECKER_FIG_HEIGHT"), altsrctoml.TOML("fig-height", altsrc.NewStringPtrSourcer(&configpath))),
	},
	&cli.BoolFlag{
		Name:    "fig-crop",
		Value:   true,
		Usage:   "crop figures to their content.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("DECKER_FIG_CROP"), altsrctoml.TOML("fig-crop", altsrc.NewStringPtrSourcer(&configpath))),
	},
	&cli.StringFlag{
		Name:    "fig-format",
		Value:   "pdf",
		Usage:   "graphics device/format identifier for figures.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("DECKER_FIG_FORMAT"), altsrctoml.TOML("fig-format", altsrc.NewStringPtrSourcer(&configpath))),
	},
	&cli.BoolFlag{
		Name:    "fig-caption",
		Value:   false,
		Usage:   "render figures with captions.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("DECKER_FIG_CAPTION"), altsrctoml.TOML("fig-caption", altsrc.NewStringPtrSourcer(&configpath))),
	},
	&cli.StringSliceFlag{
		Name:      "include-in-header",
		Usage:     "file(s) to inject into the document header. Files ending in .tmpl are rendered as templates first.",
		TakesFile: true,
		Sources:   cli.NewValueSourceChain(cli.EnvVar("DECKER_INCLUDE_IN_HEADER"), altsrctoml.TOML("include-in-header", altsrc.NewStringPtrSourcer(&configpath))),
	},
	&cli.StringSliceFlag{
		Name:      "include-before-body",
		Usage:     "file(s) to inject before the document body. Files ending in .tmpl are rendered as templates first.",
		TakesFile: true,
		Sources:   cli.NewValueSourceChain(cli.EnvVar("DECKER_INCLUDE_BEFORE_BODY"), altsrctoml.TOML("include-before-body", altsrc.NewStringPtrSourcer(&configpath))),
	},
	&cli.StringSliceFlag{
		Name:      "include-after-body",
		Usage:     "file(s) to inject after the document body. Files ending in .tmpl are rendered as templates first.",
		TakesFile: true,
		Sources:   cli.NewValueSourceChain(cli.EnvVar("DECKER_INCLUDE_AFTER_BODY"), altsrctoml.TOML("include-after-body", altsrc.NewStringPtrSourcer(&configpath))),
	},
	&cli.StringSliceFlag{
		Name:    "pandoc-arg",
		Usage:   "additional raw argument(s) appended verbatim to the pandoc invocation.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("DECKER_PANDOC_ARG"), altsrctoml.TOML("pandoc-arg", altsrc.NewStringPtrSourcer(&configpath))),
	},
	&cli.StringFlag{
		Name:    "pandoc-path",
		Value:   "pandoc",
		Usage:   "path to the pandoc binary.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("DECKER_PANDOC_PATH"), altsrctoml.TOML("pandoc-path", altsrc.NewStringPtrSourcer(&configpath))),
	},
	&cli.StringFlag{
		Name:      "include-path",
		Value:     "",
		Usage:     "path for shared includes, used as a fallback if an include doesn't exist next to the deck.",
		TakesFile: true,
		Sources:   cli.NewValueSourceChain(cli.EnvVar("DECKER_INCLUDE_PATH"), altsrctoml.TOML("include-path", altsrc.NewStringPtrSourcer(&configpath))),
	},
	&cli.StringFlag{
		Name:      "resource-path",
		Value:     "",
		Usage:     "override the bundled resource directory (default: resolved relative to the decker binary).",
		TakesFile: true,
		Sources:   cli.NewValueSourceChain(cli.EnvVar("DECKER_RESOURCE_PATH"), altsrctoml.TOML("resource-path", altsrc.NewStringPtrSourcer(&configpath))),
	},
	&cli.StringSliceFlag{
		Name:    "features",
		Value:   []string{"mermaid"},
		Usage:   "enables optional diagram renderers. Current features: mermaid, d2.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("DECKER_FEATURES"), altsrctoml.TOML("features", altsrc.NewStringPtrSourcer(&configpath))),
	},
	&cli.BoolFlag{
		Name:    "ci",
		Value:   false,
		Usage:   "run on CI mode. It won't fail if files are not found.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("DECKER_CI"), altsrctoml.TOML("ci", altsrc.NewStringPtrSourcer(&configpath))),
	},
	&cli.StringFlag{
		Name:    "color",
		Value:   "auto",
		Usage:   "display logs in color. Possible values: auto, never.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("DECKER_COLOR"), altsrctoml.TOML("color", altsrc.NewStringPtrSourcer(&configpath))),
	},
	&cli.StringFlag{
		Name:    "log-level",
		Value:   "info",
		Usage:   "set the log level. Possible values: TRACE, DEBUG, INFO, WARNING, ERROR, FATAL.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("DECKER_LOG_LEVEL"), altsrctoml.TOML("log-level", altsrc.NewStringPtrSourcer(&configpath))),
	},
	&cli.StringFlag{
		Name:        "config",
		Aliases:     []string{"c"},
		Value:       ConfigFilePath(),
		Usage:       "use the specified configuration file.",
		TakesFile:   true,
		Sources:     cli.NewValueSourceChain(cli.EnvVar("DECKER_CONFIG")),
		Destination: &configpath,
	},
}
