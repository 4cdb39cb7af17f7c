package units

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/larder/internal/core/domain"
	"github.com/custodia-labs/larder/internal/core/ports/driven"
)

// Ensure Table implements the interface.
var _ driven.UnitLookup = (*Table)(nil)

var (
	//go:embed data/units.yaml
	unitData []byte

	defaultOnce  sync.Once
	defaultTable *Table
	defaultErr   error
)

// unitFile is the on-disk shape of a unit table.
type unitFile struct {
	Units []unitRecord `yaml:"units"`
}

type unitRecord struct {
	Name     string   `yaml:"name"`
	Kind     string   `yaml:"kind"`
	Plural   string   `yaml:"plural"`
	Variants []string `yaml:"variants"`
}

// Table maps unit spellings to canonical units. It is immutable after
// construction and safe for concurrent use.
type Table struct {
	units   []domain.Unit
	byName  map[string]int
	byToken map[string]string
}

// Default returns the embedded unit table. The table is parsed once.
func Default() (*Table, error) {
	defaultOnce.Do(func() {
		units, err := decode(unitData)
		if err != nil {
			defaultErr = fmt.Errorf("failed to load embedded units: %w", err)
			return
		}
		defaultTable, defaultErr = New(units)
	})
	return defaultTable, defaultErr
}

// Load returns the embedded table extended with the units in extraPath.
// An empty extraPath returns the embedded table.
func Load(extraPath string) (*Table, error) {
	base, err := Default()
	if err != nil {
		return nil, err
	}
	if extraPath == "" {
		return base, nil
	}

	data, err := os.ReadFile(extraPath)
	if err != nil {
		return nil, fmt.Errorf("read units file: %w", err)
	}
	extra, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("parse units file %s: %w", extraPath, err)
	}
	return base.Merge(extra)
}

// New builds a table from units. Names and variants must be unique across
// the table and every kind must be recognised.
func New(units []domain.Unit) (*Table, error) {
	t := &Table{
		units:   make([]domain.Unit, 0, len(units)),
		byName:  make(map[string]int, len(units)),
		byToken: make(map[string]string),
	}
	for _, u := range units {
		if err := t.add(u); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Merge returns a new table with extra applied on top of t.
// A unit whose name already exists gains the extra variants and, when
// given, the new plural. Unknown names are added as new units.
func (t *Table) Merge(extra []domain.Unit) (*Table, error) {
	merged := make([]domain.Unit, len(t.units))
	for i, u := range t.units {
		merged[i] = cloneUnit(u)
	}

	for _, u := range extra {
		name := key(u.Name)
		idx, ok := t.byName[name]
		if !ok {
			merged = append(merged, u)
			continue
		}
		existing := &merged[idx]
		if u.Kind != "" && u.Kind != existing.Kind {
			return nil, fmt.Errorf("%w: unit %q is %s, not %s", domain.ErrInvalidInput, u.Name, existing.Kind, u.Kind)
		}
		for _, v := range u.Variants {
			if !containsKey(existing.Variants, v) {
				existing.Variants = append(existing.Variants, v)
			}
		}
		if u.Plural != "" {
			existing.Plural = u.Plural
		}
	}

	return New(merged)
}

func (t *Table) add(u domain.Unit) error {
	name := key(u.Name)
	if name == "" {
		return fmt.Errorf("%w: unit without a name", domain.ErrInvalidInput)
	}
	if !u.Kind.IsValid() {
		return fmt.Errorf("%w: unit %q has kind %q", domain.ErrUnknownUnitKind, u.Name, u.Kind)
	}
	if _, dup := t.byName[name]; dup {
		return fmt.Errorf("%w: unit %q listed twice", domain.ErrInvalidInput, u.Name)
	}

	unit := domain.Unit{Name: name, Kind: u.Kind, Plural: u.Plural}
	tokens := append([]string{name}, u.Variants...)
	for _, v := range tokens {
		token := key(v)
		if token == "" {
			continue
		}
		if owner, taken := t.byToken[token]; taken {
			if owner == name {
				continue
			}
			return fmt.Errorf("%w: %q resolves to both %q and %q", domain.ErrInvalidInput, v, owner, name)
		}
		t.byToken[token] = name
		unit.Variants = append(unit.Variants, token)
	}

	t.byName[name] = len(t.units)
	t.units = append(t.units, unit)
	return nil
}

// Resolve maps a spelling to its canonical unit name.
func (t *Table) Resolve(token string) (string, bool) {
	name, ok := t.byToken[key(token)]
	return name, ok
}

// Kind returns the kind of a canonical unit.
func (t *Table) Kind(canonical string) (domain.UnitKind, bool) {
	idx, ok := t.byName[key(canonical)]
	if !ok {
		return "", false
	}
	return t.units[idx].Kind, true
}

// Variants returns the spellings of the units of the given kinds, sorted
// longest first so that alternations prefer the longest match.
// With no kinds, the spellings of every unit are returned.
func (t *Table) Variants(kinds ...domain.UnitKind) []string {
	var out []string
	for _, u := range t.units {
		if len(kinds) > 0 && !hasKind(kinds, u.Kind) {
			continue
		}
		out = append(out, u.Variants...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i]) > len(out[j])
	})
	return out
}

// Units returns a copy of the table in declaration order.
func (t *Table) Units() []domain.Unit {
	out := make([]domain.Unit, len(t.units))
	for i, u := range t.units {
		out[i] = cloneUnit(u)
	}
	return out
}

// Plural returns the display plural of a canonical unit, or the name itself
// when the unit does not pluralise or is unknown.
func (t *Table) Plural(canonical string) string {
	idx, ok := t.byName[key(canonical)]
	if !ok || t.units[idx].Plural == "" {
		return canonical
	}
	return t.units[idx].Plural
}

func decode(data []byte) ([]domain.Unit, error) {
	var file unitFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	units := make([]domain.Unit, 0, len(file.Units))
	for _, r := range file.Units {
		units = append(units, domain.Unit{
			Name:     r.Name,
			Kind:     domain.UnitKind(r.Kind),
			Plural:   r.Plural,
			Variants: r.Variants,
		})
	}
	return units, nil
}

// key folds a spelling for lookup: lower case, no periods, single spaces.
func key(token string) string {
	token = strings.ToLower(strings.ReplaceAll(token, ".", ""))
	return strings.Join(strings.Fields(token), " ")
}

func containsKey(list []string, token string) bool {
	k := key(token)
	for _, v := range list {
		if key(v) == k {
			return true
		}
	}
	return false
}

func hasKind(kinds []domain.UnitKind, kind domain.UnitKind) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}

func cloneUnit(u domain.Unit) domain.Unit {
	u.Variants = append([]string(nil), u.Variants...)
	return u
}
