package scaffold

import (
	"fmt"
	"regexp"

	ferrors "github.com/appforge/cli/internal/errors"
)

// FeatureSet is the resolved set of optional features for one invocation.
// It is immutable after ApplyCrossFeatureRules.
type FeatureSet struct {
	// Database enables the Prisma data-access layer.
	Database bool

	// Auth enables Better Auth and forces Database on.
	Auth bool

	// ReactScan enables render-performance instrumentation.
	ReactScan bool
}

// projectNameRegex restricts project names to lowercase letters, digits,
// hyphen, and underscore.
var projectNameRegex = regexp.MustCompile(`^[a-z0-9-_]+$`)

// ValidateProjectName checks whether name is usable as a project directory
// name and package-manifest name field.
func ValidateProjectName(name string) error {
	if name == "" {
		return ferrors.NewValidationError(
			"project name cannot be empty",
			"Use lowercase letters, digits, hyphens, and underscores.",
		)
	}

	if !projectNameRegex.MatchString(name) {
		return ferrors.NewValidationError(
			fmt.Sprintf("invalid project name %q", name),
			"Use lowercase letters, digits, hyphens, and underscores.",
		)
	}

	return nil
}

// ApplyCrossFeatureRules returns the corrected feature set plus any
// informational notices. Authentication requires a database, so enabling auth
// without one silently gets the database feature added. The correction is
// idempotent.
func ApplyCrossFeatureRules(fs FeatureSet) (FeatureSet, []string) {
	var notices []string

	if fs.Auth && !fs.Database {
		fs.Database = true
		notices = append(notices, "authentication requires a database; enabling the database feature")
	}

	return fs, notices
}

// Enabled returns the names of enabled features in registry order.
func (fs FeatureSet) Enabled() []string {
	var names []string
	for _, f := range Features() {
		if f.Enabled(fs) {
			names = append(names, f.Name)
		}
	}
	return names
}
