// Package main runs clubctl: it generates a club workspace from onboarding
// answers, applies the follow-up invites and tasks, and prints the result.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/demogorgan123/Club/config"
	"github.com/demogorgan123/Club/internal/catalog"
	"github.com/demogorgan123/Club/internal/generator"
	"github.com/demogorgan123/Club/internal/models"
	"github.com/demogorgan123/Club/internal/realtime"
	"github.com/demogorgan123/Club/internal/workspace"
	"github.com/demogorgan123/Club/pkg/idgen"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	var (
		file        string
		club        string
		clubType    string
		teams       []string
		output      string
		logLevel    string
		listCatalog bool
	)
	flagSet := pflag.NewFlagSet("clubctl", pflag.ContinueOnError)
	flagSet.StringVarP(&file, "file", "f", "", "onboarding answers (YAML)")
	flagSet.StringVar(&club, "club", "", "workspace name (overrides the answers file)")
	flagSet.StringVar(&clubType, "type", "", "club type, e.g. \"Chess Club\"")
	flagSet.StringSliceVar(&teams, "team", nil, "team name; repeatable (used when the answers name no teams)")
	flagSet.StringVarP(&output, "output", "o", "yaml", "output format: yaml or json")
	flagSet.StringVar(&logLevel, "log-level", "", "log level (overrides LOG_LEVEL)")
	flagSet.BoolVar(&listCatalog, "catalog", false, "print club types, tools and team icons, then exit")
	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	logger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()

	encode, err := encoder(output, stdout)
	if err != nil {
		return err
	}
	if listCatalog {
		return encode(catalogListing())
	}

	var answers Answers
	if file != "" {
		if answers, err = readAnswers(file); err != nil {
			return err
		}
	}
	if len(teams) == 0 {
		teams = cfg.Workspace.Teams
	}
	fillDefaults(&answers, club, clubType, cfg.Workspace.CreatorID, teams)

	ids := idgen.New(cfg.Workspace.IDMode)
	gen := generator.New(logger,
		generator.WithIDs(ids),
		generator.WithTimeLayout(cfg.Workspace.MessageTimeLayout),
	)
	st, err := gen.Generate(answers.Input)
	if err != nil {
		return err
	}

	hub := realtime.NewHub(logger)
	sub := hub.Subscribe(realtime.DefaultBuffer)
	defer sub.Close()
	svc := workspace.NewService(st, logger,
		workspace.WithHub(hub),
		workspace.WithIDs(ids),
		workspace.WithTimeLayout(cfg.Workspace.MessageTimeLayout),
		workspace.WithDefaultTools(cfg.Workspace.DefaultToolCount),
	)
	if err := apply(svc, answers); err != nil {
		return err
	}
	logEvents(logger, sub)

	return encode(st.Snapshot())
}

// apply files the answers' invites and tasks as the workspace creator.
func apply(svc *workspace.Service, a Answers) error {
	creator := svc.Store().Info().CreatorID
	for _, email := range a.Invites {
		if _, err := svc.InviteUser(email); err != nil {
			return err
		}
	}
	for _, t := range a.Tasks {
		if _, err := svc.CreateTask(creator, t.Team, t.Task); err != nil {
			return err
		}
	}
	return nil
}

func logEvents(logger *zap.Logger, sub *realtime.Subscription) {
	for {
		select {
		case ev := <-sub.C:
			logger.Debug("store changed",
				zap.String("kind", string(ev.Kind)),
				zap.String("id", ev.ID),
				zap.String("op", string(ev.Op)),
			)
		default:
			return
		}
	}
}

type listing struct {
	ClubTypes []catalog.ClubCategory `json:"club_types" yaml:"club_types"`
	Tools     []models.Tool          `json:"tools" yaml:"tools"`
	Icons     []string               `json:"icons" yaml:"icons"`
}

func catalogListing() listing {
	return listing{
		ClubTypes: catalog.Categories(),
		Tools:     catalog.Tools(),
		Icons:     catalog.TeamIcons(),
	}
}

func encoder(format string, w io.Writer) (func(v any) error, error) {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return func(v any) error {
			enc := yaml.NewEncoder(w)
			enc.SetIndent(2)
			if err := enc.Encode(v); err != nil {
				return fmt.Errorf("encode yaml: %w", err)
			}
			return enc.Close()
		}, nil
	case "json":
		return func(v any) error {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			if err := enc.Encode(v); err != nil {
				return fmt.Errorf("encode json: %w", err)
			}
			return nil
		}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	config := zap.NewProductionConfig()
	if cfg.Format == "console" {
		config = zap.NewDevelopmentConfig()
	}
	config.Level = zap.NewAtomicLevelAt(level)
	config.OutputPaths = []string{"stderr"}
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return config.Build()
}
