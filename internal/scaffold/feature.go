// Package scaffold derives and emits the artifact set for a new project.
package scaffold

// TemplateRef maps an embedded template file to its output path.
type TemplateRef struct {
	// Source is the path within the embedded template filesystem.
	Source string

	// Target is the output path relative to the project root.
	Target string

	// Description is shown next to the file in the summary tree.
	Description string
}

// Feature describes one optional feature as a self-contained registration:
// the flag that enables it, the package-manifest entries it adds, the
// artifacts it contributes, and the fragments it injects into the root
// layout's named slots. New features are added to the registry, not wired
// into the derivation function.
type Feature struct {
	// Name is the flag name (e.g. "database").
	Name string

	// Label is the human-readable prompt label.
	Label string

	// Dependencies are package-manifest dependency entries to insert.
	Dependencies map[string]string

	// DevDependencies are package-manifest devDependency entries to insert.
	DevDependencies map[string]string

	// Scripts are package-manifest script entries to insert.
	Scripts map[string]string

	// Templates are the artifact templates this feature contributes.
	Templates []TemplateRef

	// LayoutImports are import statements injected at the top of the root
	// layout, in registry order.
	LayoutImports []string

	// LayoutBody are JSX fragments injected into the root layout's body
	// slot, in registry order.
	LayoutBody []string

	// EnvLines are lines appended to the generated .env file. The secret
	// placeholder {{secret}} is substituted at derivation time.
	EnvLines []string

	// EnvExampleLines are lines appended to .env.example. Example files
	// hold placeholders, never generated secrets.
	EnvExampleLines []string

	// Enabled reports whether the feature is active for a feature set.
	Enabled func(FeatureSet) bool
}
