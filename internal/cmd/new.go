package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/appforge/cli/internal/config"
	"github.com/appforge/cli/internal/output"
	"github.com/appforge/cli/internal/prompt"
	"github.com/appforge/cli/internal/scaffold"
	"github.com/appforge/cli/internal/vcs"
)

// newOptions carries the new command's flags plus its injectable
// collaborators (swapped out in tests).
type newOptions struct {
	db        bool
	auth      bool
	reactScan bool
	yes       bool
	noGit     bool
	dir       string

	repo      vcs.Initializer
	runPrompt func(prompt.Options) (prompt.Answers, error)
}

// NewNewCmd creates the new command.
func NewNewCmd() *cobra.Command {
	opts := &newOptions{
		repo:      vcs.New(),
		runPrompt: prompt.Run,
	}

	c := &cobra.Command{
		Use:   "new [name]",
		Short: "Create a new project",
		Long: `Create a new Next.js/TypeScript project skeleton.

Without --yes, forge prompts for a project name and a feature selection.
Flags pre-select features; with --yes all prompts are skipped and the
flags (or configured defaults) are used as given.

Examples:
  # Interactive
  forge new

  # Non-interactive with features
  forge new my-app --db --auth --yes

  # Into a parent directory
  forge new my-app --dir ~/code --yes`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runNew(c.Context(), args, opts)
		},
	}

	c.Flags().BoolVar(&opts.db, "db", false, "pre-select the database feature")
	c.Flags().BoolVar(&opts.auth, "auth", false, "pre-select the authentication feature")
	c.Flags().BoolVar(&opts.reactScan, "react-scan", false, "pre-select the performance-instrumentation feature")
	c.Flags().BoolVarP(&opts.yes, "yes", "y", false, "skip all prompts and use defaults")
	c.Flags().BoolVar(&opts.noGit, "no-git", false, "skip repository initialization")
	c.Flags().StringVarP(&opts.dir, "dir", "d", "", "parent directory to create the project in")

	return c
}

func runNew(ctx context.Context, args []string, opts *newOptions) error {
	cfg := loadConfig()

	// Seed the feature set from flags and configured defaults.
	preselect := scaffold.FeatureSet{
		Database:  opts.db || cfg.Defaults.Database,
		Auth:      opts.auth || cfg.Defaults.Auth,
		ReactScan: opts.reactScan || cfg.Defaults.ReactScan,
	}

	var name string
	if len(args) > 0 {
		name = args[0]
		if err := scaffold.ValidateProjectName(name); err != nil {
			return err
		}
	}

	features := preselect
	if !opts.yes && output.IsTTY() {
		answers, err := opts.runPrompt(prompt.Options{Name: name, Preselected: preselect})
		if err != nil {
			return err
		}
		name = answers.Name
		features = answers.Features
	} else if name == "" {
		name = cfg.Defaults.Name
		if err := scaffold.ValidateProjectName(name); err != nil {
			return err
		}
	}

	// Cross-feature correction, applied once, idempotent.
	features, notices := scaffold.ApplyCrossFeatureRules(features)
	for _, n := range notices {
		output.Info(n)
	}
	output.Debug("resolved features", "enabled", strings.Join(features.Enabled(), ","))

	secret, err := scaffold.GenerateSecret()
	if err != nil {
		return err
	}

	artifacts, err := scaffold.Derive(name, features, secret)
	if err != nil {
		return err
	}

	targetDir := filepath.Join(opts.dir, name)
	emitter := scaffold.NewEmitter(targetDir)

	output.Info("creating project", "name", name, "dir", targetDir)
	if err := emitter.CreateRoot(); err != nil {
		return err
	}

	if err := output.RunWithSpinner(ctx, func() error {
		return emitter.WriteArtifacts(artifacts)
	}, output.WithTitle("Scaffolding files...")); err != nil {
		return err
	}

	// Repository initialization is best-effort: failure is a warning and
	// never changes the exit status.
	if !opts.noGit && cfg.GitEnabled() {
		if err := output.RunWithSpinner(ctx, func() error {
			return opts.repo.Init(targetDir)
		}, output.WithTitle("Initializing repository...")); err != nil {
			output.Warn("repository initialization failed", "error", err)
		}
	}
	emitter.FinishRepo()
	emitter.Finish()

	printSummary(name, artifacts)
	return nil
}

// loadConfig loads user defaults; a broken config file degrades to built-in
// defaults with a warning rather than failing the run.
func loadConfig() *config.Config {
	cfg, err := config.NewLoader().LoadWithDefaults(flagConfig)
	if err != nil {
		output.Warn("could not load config, using defaults", "error", err)
		return (&config.Config{}).WithDefaults()
	}
	return cfg
}

// printSummary prints the created file tree and next-step instructions.
func printSummary(name string, artifacts []scaffold.Artifact) {
	styles := output.GetStyles()

	files := make(map[string]string, len(artifacts))
	for _, a := range artifacts {
		files[a.Path] = a.Description
	}

	output.Println("")
	output.Println(output.FormatCheckmark(fmt.Sprintf("Created %s", styles.Noun.Render(name))))
	output.Println("")
	output.Print(output.RenderFileTree(name, files))
	output.Println("")
	output.Println(styles.Summary.Render("Next steps:"))
	output.Println(fmt.Sprintf("  cd %s", name))
	output.Println("  npm install")
	output.Println("  npm run dev")
}
