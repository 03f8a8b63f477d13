package profile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"

	"cipherlab/internal/analysis"
	"cipherlab/internal/ctxlog"
)

var ErrUnknownProfile = errors.New("profile: unknown profile")

// Registry resolves profiles by name. Built-in profiles take precedence;
// everything else is looked up as <dir>/<name>.yaml. The directory is never
// written to and is allowed not to exist.
type Registry struct {
	dir string
}

func NewRegistry(dir string) *Registry { return &Registry{dir: dir} }

// profileFile is the on-disk YAML shape.
type profileFile struct {
	Name        string             `yaml:"name"`
	Frequencies map[string]float64 `yaml:"frequencies"`
}

// Load resolves name to a validated profile. Unknown names report
// ErrUnknownProfile.
func (r *Registry) Load(ctx context.Context, name string) (Profile, error) {
	if name == English().Name {
		return English(), nil
	}
	if r.dir == "" {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}

	path := filepath.Join(r.dir, name+".yaml")
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
		}
		return Profile{}, fmt.Errorf("open %q: %w", path, err)
	}
	defer ctxlog.Close(ctx, "profile file", file)

	dec := yaml.NewDecoder(file, yaml.Strict())

	var pf profileFile
	if err := dec.Decode(&pf); err != nil {
		return Profile{}, fmt.Errorf("yaml %q: %w", path, err)
	}

	p, err := fromFile(pf)
	if err != nil {
		return Profile{}, fmt.Errorf("%s: %w", path, err)
	}

	ctxlog.Get(ctx).Debug("loaded profile", "name", p.Name, "path", path)
	return p, nil
}

// List returns the names of every resolvable profile, built-ins merged with
// the *.yaml files of the directory, sorted and deduplicated.
func (r *Registry) List(ctx context.Context) ([]string, error) {
	seen := map[string]bool{English().Name: true}

	if r.dir != "" {
		entries, err := os.ReadDir(r.dir)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read profile dir %q: %w", r.dir, err)
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
				continue
			}
			seen[strings.TrimSuffix(e.Name(), ".yaml")] = true
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// fromFile converts the YAML shape into a validated Profile. Single-letter
// keys are required so the table stays keyed by runes.
func fromFile(pf profileFile) (Profile, error) {
	table := make(analysis.FrequencyTable, len(pf.Frequencies))
	for letter, freq := range pf.Frequencies {
		if len(letter) != 1 || letter[0] < 'a' || letter[0] > 'z' {
			return Profile{}, fmt.Errorf("%w %q: bad letter key %q", ErrInvalidProfile, pf.Name, letter)
		}
		table[rune(letter[0])] = freq
	}
	p := Profile{Name: pf.Name, Table: table}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}
