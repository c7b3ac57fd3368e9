// Package manifest implements the release-preparation file operations:
// reading and rewriting a project manifest, incrementing its
// dotted-decimal version, and pruning stale entries from the build
// output directory.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Level selects which component of a dotted version an increment bumps.
type Level string

const (
	Patch Level = "patch"
	Minor Level = "minor"
	Major Level = "major"
)

// Manifest is a JSON manifest with a name and version. Keys other
// than the two it understands are preserved verbatim across rewrites.
type Manifest struct {
	Name    string
	Version string

	extra map[string]json.RawMessage
}

// Load reads and decodes the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("manifest: decode %s: %w", path, err)
	}

	m := &Manifest{extra: raw}
	if v, ok := raw["name"]; ok {
		if err := json.Unmarshal(v, &m.Name); err != nil {
			return nil, fmt.Errorf("manifest: %s: name is not a string", path)
		}
	}
	v, ok := raw["version"]
	if !ok {
		return nil, fmt.Errorf("manifest: %s: missing version", path)
	}
	if err := json.Unmarshal(v, &m.Version); err != nil {
		return nil, fmt.Errorf("manifest: %s: version is not a string", path)
	}
	return m, nil
}

// Save writes the manifest back to path, keeping unrecognized keys.
func (m *Manifest) Save(path string) error {
	out := make(map[string]json.RawMessage, len(m.extra)+2)
	for k, v := range m.extra {
		out[k] = v
	}
	name, err := json.Marshal(m.Name)
	if err != nil {
		return fmt.Errorf("manifest: %w", err)
	}
	version, err := json.Marshal(m.Version)
	if err != nil {
		return fmt.Errorf("manifest: %w", err)
	}
	if m.Name != "" {
		out["name"] = name
	}
	out["version"] = version

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("manifest: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("manifest: %w", err)
	}
	return nil
}

// Bump increments the manifest version in place and returns the new
// version string.
func (m *Manifest) Bump(level Level) (string, error) {
	next, err := BumpVersion(m.Version, level)
	if err != nil {
		return "", err
	}
	m.Version = next
	return next, nil
}

// BumpVersion increments one component of a dotted-decimal version
// string (major.minor.patch), resetting the components below it.
// Fewer than three components are padded with zeros.
func BumpVersion(v string, level Level) (string, error) {
	parts := strings.Split(strings.TrimSpace(v), ".")
	if len(parts) > 3 {
		return "", fmt.Errorf("manifest: version %q has more than three components", v)
	}
	nums := [3]int{}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return "", fmt.Errorf("manifest: version %q is not dotted-decimal", v)
		}
		nums[i] = n
	}

	switch level {
	case Major:
		nums[0]++
		nums[1], nums[2] = 0, 0
	case Minor:
		nums[1]++
		nums[2] = 0
	case Patch, "":
		nums[2]++
	default:
		return "", fmt.Errorf("manifest: unknown bump level %q", level)
	}
	return fmt.Sprintf("%d.%d.%d", nums[0], nums[1], nums[2]), nil
}

// PruneStale removes every entry of dir whose name is not in keep and
// returns the removed names. A missing dir is a no-op; any other
// filesystem error propagates unchanged.
func PruneStale(dir string, keep map[string]bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}

	var removed []string
	for _, e := range entries {
		if keep[e.Name()] {
			continue
		}
		if err := os.RemoveAll(filepath.Join(dir, e.Name())); err != nil {
			return removed, fmt.Errorf("manifest: %w", err)
		}
		removed = append(removed, e.Name())
	}
	return removed, nil
}
