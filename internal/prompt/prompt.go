// Package prompt collects the project name and feature selections
// interactively.
package prompt

import (
	"errors"

	"github.com/charmbracelet/huh"

	ferrors "github.com/appforge/cli/internal/errors"
	"github.com/appforge/cli/internal/scaffold"
)

// Options seeds the interactive prompt sequence.
type Options struct {
	// Name, when non-empty, skips the project-name prompt (it was already
	// supplied as a positional argument).
	Name string

	// Preselected marks features already chosen via flags or config.
	Preselected scaffold.FeatureSet
}

// Answers is the result of a completed prompt sequence.
type Answers struct {
	Name     string
	Features scaffold.FeatureSet
}

// Run walks the user through the prompt sequence. Cancelling any prompt
// returns ErrCancelled.
func Run(opts Options) (Answers, error) {
	name := opts.Name

	var fields []huh.Field

	if name == "" {
		fields = append(fields, huh.NewInput().
			Title("Project name").
			Placeholder("my-app").
			Validate(scaffold.ValidateProjectName).
			Value(&name))
	}

	selected := preselectedNames(opts.Preselected)
	fields = append(fields, huh.NewMultiSelect[string]().
		Title("Features").
		Description("Space to toggle, enter to confirm. Selecting none is fine.").
		Options(featureOptions(opts.Preselected)...).
		Value(&selected))

	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return Answers{}, ferrors.Wrap(ferrors.ErrCancelled, "prompt aborted")
		}
		return Answers{}, err
	}

	return Answers{
		Name:     name,
		Features: featureSetFromNames(selected),
	}, nil
}

// featureOptions builds the multi-select options from the feature registry.
func featureOptions(pre scaffold.FeatureSet) []huh.Option[string] {
	var opts []huh.Option[string]
	for _, f := range scaffold.Features() {
		opts = append(opts, huh.NewOption(f.Label, f.Name).Selected(f.Enabled(pre)))
	}
	return opts
}

// preselectedNames returns the names of features enabled in pre.
func preselectedNames(pre scaffold.FeatureSet) []string {
	return pre.Enabled()
}

// featureSetFromNames converts selected option values back to a FeatureSet.
func featureSetFromNames(names []string) scaffold.FeatureSet {
	var fs scaffold.FeatureSet
	for _, n := range names {
		switch n {
		case scaffold.FeatureDatabase:
			fs.Database = true
		case scaffold.FeatureAuth:
			fs.Auth = true
		case scaffold.FeatureReactScan:
			fs.ReactScan = true
		}
	}
	return fs
}
