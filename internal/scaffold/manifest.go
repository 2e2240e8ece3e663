package scaffold

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	ferrors "github.com/appforge/cli/internal/errors"
)

// Artifact is one file to be written relative to the project root.
type Artifact struct {
	// Path is the output path relative to the project root.
	Path string

	// Content is the rendered file content.
	Content []byte

	// Description is shown next to the file in the summary tree.
	Description string
}

// TemplateData is the data substituted into artifact templates.
type TemplateData struct {
	// Name is the project name.
	Name string

	// Features is the resolved feature set.
	Features FeatureSet

	// LayoutImports are import fragments contributed to the root layout.
	LayoutImports []string

	// LayoutBody are JSX fragments contributed to the root layout's body slot.
	LayoutBody []string
}

// baseTemplates is the fixed artifact set present for every feature set.
var baseTemplates = []TemplateRef{
	{Source: "templates/base/next.config.ts.tmpl", Target: "next.config.ts", Description: "Next.js configuration"},
	{Source: "templates/base/tsconfig.json.tmpl", Target: "tsconfig.json", Description: "TypeScript configuration"},
	{Source: "templates/base/gitignore.tmpl", Target: ".gitignore", Description: "Ignore rules"},
	{Source: "templates/base/README.md.tmpl", Target: "README.md", Description: "Project readme"},
	{Source: "templates/base/layout.tsx.tmpl", Target: "app/layout.tsx", Description: "Root layout"},
	{Source: "templates/base/page.tsx.tmpl", Target: "app/page.tsx", Description: "Home page"},
	{Source: "templates/base/providers.tsx.tmpl", Target: "app/providers.tsx", Description: "Client providers"},
	{Source: "templates/base/globals.css.tmpl", Target: "styles/globals.css", Description: "Global stylesheet"},
	{Source: "templates/base/utils.ts.tmpl", Target: "lib/utils.ts", Description: "Shared utilities"},
	{Source: "templates/base/components.json.tmpl", Target: "components.json", Description: "Component library config"},
	{Source: "templates/base/tailwind.config.ts.tmpl", Target: "tailwind.config.ts", Description: "Tailwind configuration"},
	{Source: "templates/base/postcss.config.mjs.tmpl", Target: "postcss.config.mjs", Description: "PostCSS configuration"},
	{Source: "templates/base/biome.json.tmpl", Target: "biome.json", Description: "Lint and format config"},
	{Source: "templates/base/vscode-settings.json.tmpl", Target: ".vscode/settings.json", Description: "Editor settings"},
}

// gitkeepPaths are empty directories realized as .gitkeep files so the
// initial commit tracks them.
var gitkeepPaths = []string{
	"components/.gitkeep",
	"components/ui/.gitkeep",
}

// Derive computes the full artifact manifest for a project. It is a pure
// function of its inputs: no filesystem access, no process state. Holding
// secret fixed, identical inputs produce byte-identical artifacts.
func Derive(name string, fs FeatureSet, secret string) ([]Artifact, error) {
	if err := ValidateProjectName(name); err != nil {
		return nil, err
	}

	active := enabledFeatures(fs)

	data := TemplateData{
		Name:     name,
		Features: fs,
	}
	for _, f := range active {
		data.LayoutImports = append(data.LayoutImports, f.LayoutImports...)
		data.LayoutBody = append(data.LayoutBody, f.LayoutBody...)
	}

	var artifacts []Artifact

	// Package manifest: fixed base mapping plus feature entries.
	pkg := BasePackageManifest(name)
	for _, f := range active {
		pkg.Apply(f)
	}
	pkgJSON, err := pkg.Marshal()
	if err != nil {
		return nil, err
	}
	artifacts = append(artifacts, Artifact{
		Path:        "package.json",
		Content:     pkgJSON,
		Description: "Package manifest",
	})

	// Base templates.
	for _, ref := range baseTemplates {
		a, err := renderRef(ref, data)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, a)
	}

	// Environment files.
	artifacts = append(artifacts,
		Artifact{Path: ".env", Content: renderEnv(name, secret, active, false), Description: "Environment variables"},
		Artifact{Path: ".env.example", Content: renderEnv(name, secret, active, true), Description: "Environment template"},
	)

	// Tracked empty directories.
	for _, p := range gitkeepPaths {
		artifacts = append(artifacts, Artifact{Path: p, Content: []byte{}})
	}

	// Feature artifacts.
	for _, f := range active {
		for _, ref := range f.Templates {
			a, err := renderRef(ref, data)
			if err != nil {
				return nil, err
			}
			artifacts = append(artifacts, a)
		}
	}

	// Paths must be unique within one manifest.
	seen := make(map[string]bool, len(artifacts))
	for _, a := range artifacts {
		if seen[a.Path] {
			return nil, fmt.Errorf("duplicate artifact path %q", a.Path)
		}
		seen[a.Path] = true
	}

	return artifacts, nil
}

// renderRef renders one embedded template to an artifact.
func renderRef(ref TemplateRef, data TemplateData) (Artifact, error) {
	content, err := templateFS.ReadFile(ref.Source)
	if err != nil {
		return Artifact{}, fmt.Errorf("template %s: %w: %w", ref.Source, ferrors.ErrNotFound, err)
	}

	tmpl, err := template.New(ref.Source).Parse(string(content))
	if err != nil {
		return Artifact{}, fmt.Errorf("parsing template %s: %w", ref.Source, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return Artifact{}, fmt.Errorf("executing template %s: %w", ref.Source, err)
	}

	return Artifact{
		Path:        ref.Target,
		Content:     buf.Bytes(),
		Description: ref.Description,
	}, nil
}

// renderEnv assembles the .env or .env.example content from the active
// features' declared lines. The real env file carries the generated secret;
// the example file only ever carries placeholders.
func renderEnv(name, secret string, active []Feature, example bool) []byte {
	var b strings.Builder
	b.WriteString("# Generated by forge\n")

	for _, f := range active {
		lines := f.EnvLines
		if example {
			lines = f.EnvExampleLines
		}
		for _, line := range lines {
			line = strings.ReplaceAll(line, "{{name}}", name)
			line = strings.ReplaceAll(line, "{{secret}}", secret)
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	return []byte(b.String())
}
