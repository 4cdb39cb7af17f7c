package units

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/larder/internal/core/domain"
)

func TestDefault_Loads(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)
	require.NotNil(t, table)

	assert.NotEmpty(t, table.Units())

	again, err := Default()
	require.NoError(t, err)
	assert.Same(t, table, again)
}

func TestTable_Resolve(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)

	tests := []struct {
		token    string
		expected string
	}{
		{"tbsp", "tablespoon"},
		{"Tbsp.", "tablespoon"},
		{"TBSPNS", "tablespoon"},
		{"tsp", "teaspoon"},
		{"cups", "cup"},
		{"C.", "cup"},
		{"oz", "ounce"},
		{"lbs.", "pound"},
		{"fl. oz.", "fluid ounce"},
		{"fl  oz", "fluid ounce"},
		{"feet", "foot"},
		{"pkgs", "package"},
		{"cans", "can"},
		{"lg", "large"},
		{"med.", "medium"},
		{"g", "gram"},
		{"ml", "milliliter"},
		{"litres", "liter"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := table.Resolve(tt.token)
			require.True(t, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTable_Resolve_Unknown(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)

	for _, token := range []string{"", "handful", "cupful", "tablespoonful"} {
		_, ok := table.Resolve(token)
		assert.False(t, ok, token)
	}
}

func TestTable_Kind(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)

	kind, ok := table.Kind("can")
	require.True(t, ok)
	assert.Equal(t, domain.UnitKindPackage, kind)

	kind, ok = table.Kind("gram")
	require.True(t, ok)
	assert.Equal(t, domain.UnitKindWeight, kind)

	_, ok = table.Kind("handful")
	assert.False(t, ok)
}

func TestTable_Variants(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)

	pkg := table.Variants(domain.UnitKindPackage)
	assert.Contains(t, pkg, "can")
	assert.Contains(t, pkg, "pkgs")
	assert.NotContains(t, pkg, "cup")

	all := table.Variants()
	assert.Contains(t, all, "cup")
	assert.Contains(t, all, "can")
	assert.Contains(t, all, "fluid ounce")

	for i := 1; i < len(all); i++ {
		assert.GreaterOrEqual(t, len(all[i-1]), len(all[i]), "variants must be sorted longest first")
	}
}

func TestTable_Plural(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "cups", table.Plural("cup"))
	assert.Equal(t, "feet", table.Plural("foot"))
	assert.Equal(t, "boxes", table.Plural("box"))
	assert.Equal(t, "large", table.Plural("large"))
	assert.Equal(t, "handful", table.Plural("handful"))
}

func TestTable_UnitsIsCopy(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)

	units := table.Units()
	units[0].Variants[0] = "changed"

	assert.NotEqual(t, "changed", table.Units()[0].Variants[0])
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name  string
		units []domain.Unit
		err   error
	}{
		{
			name:  "missing name",
			units: []domain.Unit{{Kind: domain.UnitKindCount}},
			err:   domain.ErrInvalidInput,
		},
		{
			name:  "unknown kind",
			units: []domain.Unit{{Name: "degree", Kind: "temperature"}},
			err:   domain.ErrUnknownUnitKind,
		},
		{
			name: "duplicate name",
			units: []domain.Unit{
				{Name: "cup", Kind: domain.UnitKindVolume},
				{Name: "cup", Kind: domain.UnitKindVolume},
			},
			err: domain.ErrInvalidInput,
		},
		{
			name: "variant claimed twice",
			units: []domain.Unit{
				{Name: "cup", Kind: domain.UnitKindVolume, Variants: []string{"c"}},
				{Name: "centimeter", Kind: domain.UnitKindLength, Variants: []string{"c"}},
			},
			err: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.units)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestTable_Merge(t *testing.T) {
	base, err := New([]domain.Unit{
		{Name: "cup", Kind: domain.UnitKindVolume, Plural: "cups", Variants: []string{"cups"}},
	})
	require.NoError(t, err)

	merged, err := base.Merge([]domain.Unit{
		{Name: "cup", Variants: []string{"cupful"}},
		{Name: "handful", Kind: domain.UnitKindCount, Plural: "handfuls", Variants: []string{"handfuls"}},
	})
	require.NoError(t, err)

	got, ok := merged.Resolve("cupful")
	require.True(t, ok)
	assert.Equal(t, "cup", got)

	got, ok = merged.Resolve("handfuls")
	require.True(t, ok)
	assert.Equal(t, "handful", got)

	_, ok = base.Resolve("cupful")
	assert.False(t, ok, "merge must not modify the receiver")
}

func TestTable_Merge_KindConflict(t *testing.T) {
	base, err := New([]domain.Unit{{Name: "cup", Kind: domain.UnitKindVolume}})
	require.NoError(t, err)

	_, err = base.Merge([]domain.Unit{{Name: "cup", Kind: domain.UnitKindWeight}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLoad_ExtraFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "units.yaml")
	content := `units:
  - name: handful
    kind: count
    plural: handfuls
    variants: [handful, handfuls]
  - name: cup
    variants: [cupful, cupfuls]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	table, err := Load(path)
	require.NoError(t, err)

	got, ok := table.Resolve("handfuls")
	require.True(t, ok)
	assert.Equal(t, "handful", got)

	got, ok = table.Resolve("cupfuls")
	require.True(t, ok)
	assert.Equal(t, "cup", got)

	// Embedded units are still present.
	_, ok = table.Resolve("tbsp")
	assert.True(t, ok)
}

func TestLoad_NoExtraFile(t *testing.T) {
	table, err := Load("")
	require.NoError(t, err)

	base, err := Default()
	require.NoError(t, err)
	assert.Same(t, base, table)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("units: [unclosed"), 0o600))
	_, err = Load(bad)
	assert.Error(t, err)
}
