package scaffold

import (
	"encoding/json"
	"fmt"
)

// PackageManifest models the generated package.json. Dependency maps are
// unordered; serialization sorts keys, so output is deterministic.
type PackageManifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Private         bool              `json:"private"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// BasePackageManifest returns the manifest every project starts from,
// before feature entries are inserted.
func BasePackageManifest(name string) *PackageManifest {
	return &PackageManifest{
		Name:    name,
		Version: "0.1.0",
		Private: true,
		Scripts: map[string]string{
			"dev":   "next dev",
			"build": "next build",
			"start": "next start",
			"check": "biome check .",
		},
		Dependencies: map[string]string{
			"next":           "15.1.6",
			"react":          "^19.0.0",
			"react-dom":      "^19.0.0",
			"clsx":           "^2.1.1",
			"tailwind-merge": "^2.6.0",
		},
		DevDependencies: map[string]string{
			"typescript":       "^5.7.3",
			"@types/node":      "^22.10.7",
			"@types/react":     "^19.0.7",
			"@types/react-dom": "^19.0.3",
			"tailwindcss":      "^3.4.17",
			"postcss":          "^8.5.1",
			"autoprefixer":     "^10.4.20",
			"@biomejs/biome":   "1.9.4",
		},
	}
}

// Apply inserts a feature's dependency, devDependency, and script entries.
// Entries are only ever added, never removed.
func (m *PackageManifest) Apply(f Feature) {
	for k, v := range f.Dependencies {
		m.Dependencies[k] = v
	}
	for k, v := range f.DevDependencies {
		m.DevDependencies[k] = v
	}
	for k, v := range f.Scripts {
		m.Scripts[k] = v
	}
}

// Marshal serializes the manifest as indented JSON with a trailing newline.
func (m *PackageManifest) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling package manifest: %w", err)
	}
	return append(data, '\n'), nil
}
