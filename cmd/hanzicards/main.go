package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/jask/hanzicards/internal/audio"
	"github.com/jask/hanzicards/internal/catalog"
	"github.com/jask/hanzicards/internal/config"
	"github.com/jask/hanzicards/internal/database"
	"github.com/jask/hanzicards/internal/flow"
	"github.com/jask/hanzicards/internal/logging"
	"github.com/jask/hanzicards/internal/quiz"
	"github.com/jask/hanzicards/internal/testdata"
	"github.com/jask/hanzicards/internal/tui"
)

const usage = `usage:
  hanzicards [flags]                          run the flashcard app
  hanzicards validate [flags]                 check the catalog and report issues
  hanzicards import <catalog.json> <db path>  load a JSON catalog into sqlite
  hanzicards sample <catalog.json>            write a generated sample catalog
`

func main() {
	args := os.Args[1:]
	cmd := ""
	if len(args) > 0 {
		switch args[0] {
		case "validate", "import", "sample", "help":
			cmd, args = args[0], args[1:]
		}
	}

	switch cmd {
	case "validate":
		os.Exit(runValidate(args, os.Stdout))
	case "import":
		os.Exit(runImport(args, os.Stdout))
	case "sample":
		os.Exit(runSample(args, os.Stdout))
	case "help":
		fmt.Print(usage)
	default:
		runApp(args)
	}
}

func loadConfig(name string, args []string) (config.Config, error) {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	config.RegisterFlags(flags)
	flags.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(config.Options{Flags: flags})
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runApp(args []string) {
	cfg, err := loadConfig("hanzicards", args)
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, logFile, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("log: %v", err)
	}
	defer logFile.Close()
	defer func() { _ = logger.Sync() }()

	src, base, err := openSource(cfg)
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var player audio.Player = audio.NopPlayer{}
	if cfg.Audio.Player != "" {
		cp, err := audio.NewCommandPlayer(cfg.Audio.Player)
		if err != nil {
			log.Fatalf("audio: %v", err)
		}
		defer cp.Stop()
		player = cp
	} else {
		logger.Info("audio disabled")
	}

	imageDir := cfg.Assets.Base(base)
	audioDir := cfg.Assets.AudioDir
	if !filepath.IsAbs(audioDir) {
		audioDir = filepath.Join(imageDir, audioDir)
	}
	logger.Info("starting",
		zap.Stringer("source", src),
		zap.String("assets", imageDir),
		zap.String("audio_dir", audioDir),
		zap.Int64("seed", cfg.Quiz.Seed),
	)

	model := tui.New(tui.Deps{
		Ctx:      ctx,
		Source:   src,
		Machine:  flow.NewMachine(quiz.NewGenerator(cfg.Quiz.Seed), logger),
		Player:   player,
		Log:      logger,
		ImageDir: imageDir,
		AudioDir: audioDir,
		AudioExt: cfg.Assets.AudioExt,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", zap.Error(err))
		fmt.Printf("error: %v\n", err)
	}
}

// openSource builds the catalog source named by catalog.source. The second
// result is the directory relative asset references resolve against.
func openSource(cfg config.Config) (catalog.Source, string, error) {
	kind, loc, err := catalog.ParseSource(cfg.Catalog.Source)
	if err != nil {
		return nil, "", err
	}
	switch kind {
	case catalog.SourceHTTP:
		return catalog.HTTPSource{URL: loc}, ".", nil
	case catalog.SourceSQLite:
		return database.SQLiteSource{Path: loc}, filepath.Dir(loc), nil
	default:
		src := catalog.FileSource{Path: loc}
		return src, src.Dir(), nil
	}
}

func runValidate(args []string, out io.Writer) int {
	cfg, err := loadConfig("hanzicards validate", args)
	if err != nil {
		fmt.Fprintf(out, "config: %v\n", err)
		return 2
	}
	src, _, err := openSource(cfg)
	if err != nil {
		fmt.Fprintf(out, "catalog: %v\n", err)
		return 2
	}
	c, err := src.Load(context.Background())
	if err != nil {
		fmt.Fprintf(out, "load %s: %v\n", src, err)
		return 1
	}
	return report(out, src.String(), c)
}

// report prints the catalog's validation issues and returns 1 if any of
// them blocks a lesson.
func report(out io.Writer, name string, c *catalog.Catalog) int {
	entries := 0
	for _, l := range c.Lessons {
		entries += len(l.Vocab)
	}
	issues := catalog.Validate(c)
	fmt.Fprintf(out, "%s: %d lessons, %d entries, %d issues\n", name, c.Len(), entries, len(issues))

	code := 0
	for _, is := range issues {
		mark := "warn "
		if is.Blocking() {
			mark = "error"
			code = 1
		}
		fmt.Fprintf(out, "  %s %s\n", mark, is)
	}
	return code
}

func runImport(args []string, out io.Writer) int {
	if len(args) != 2 {
		fmt.Fprint(out, usage)
		return 2
	}
	src := catalog.FileSource{Path: args[0]}
	c, err := src.Load(context.Background())
	if err != nil {
		fmt.Fprintf(out, "load %s: %v\n", src, err)
		return 1
	}
	_ = report(out, src.String(), c)

	if err := os.MkdirAll(filepath.Dir(args[1]), 0o755); err != nil {
		fmt.Fprintf(out, "mkdir db dir: %v\n", err)
		return 1
	}
	res, err := database.Import(context.Background(), args[1], c)
	if err != nil {
		fmt.Fprintf(out, "import: %v\n", err)
		return 1
	}
	fmt.Fprintf(out, "imported %d lessons, %d entries into %s\n", res.Lessons, res.Entries, args[1])
	return 0
}

func runSample(args []string, out io.Writer) int {
	flags := pflag.NewFlagSet("hanzicards sample", pflag.ContinueOnError)
	flags.SetOutput(out)
	lessons := flags.Int("lessons", 3, "number of lessons")
	per := flags.Int("entries", 6, "entries per lesson")
	seed := flags.Int64("seed", 0, "generator seed, 0 uses the clock")
	if err := flags.Parse(args); err != nil {
		return 2
	}
	if flags.NArg() != 1 || *lessons < 1 || *per < 1 {
		fmt.Fprint(out, usage)
		return 2
	}

	path := flags.Arg(0)
	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(out, "create %s: %v\n", path, err)
		return 1
	}
	defer f.Close()
	c := testdata.Catalog(*seed, *lessons, *per)
	if err := catalog.Encode(f, c); err != nil {
		fmt.Fprintf(out, "write %s: %v\n", path, err)
		return 1
	}
	fmt.Fprintf(out, "wrote %d lessons to %s\n", c.Len(), path)
	return 0
}
