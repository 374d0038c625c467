package faker

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/fakery/internal/dictionary"
	"github.com/roach88/fakery/internal/errdefs"
	"github.com/roach88/fakery/internal/provider"
	"github.com/roach88/fakery/internal/testutil"
)

var quiet = WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

func newFaker(t *testing.T, opts ...Option) *Faker {
	t.Helper()
	f, err := New(append([]Option{quiet}, opts...)...)
	require.NoError(t, err)
	return f
}

// TestFaker_SameSeedSameValues tests that two fakers seeded alike produce
// identical sequences.
func TestFaker_SameSeedSameValues(t *testing.T) {
	ctx := context.Background()
	refs := []string{
		"Address.full_address",
		"Name.name",
		"PhoneNumber.formats",
		"PhoneNumber.cell_phone",
		"Company.catch_phrase",
		"Internet.email",
		"Lorem.paragraph",
	}

	generate := func(f *Faker) []string {
		var out []string
		for i := 0; i < 5; i++ {
			for _, ref := range refs {
				v, err := f.Generate(ctx, ref)
				require.NoError(t, err, ref)
				out = append(out, v)
			}
		}
		return out
	}

	a := generate(newFaker(t, WithSeed(42)))
	b := generate(newFaker(t, WithSeed(42)))
	assert.Equal(t, a, b)

	for _, v := range a {
		assert.NotContains(t, v, "#")
	}
}

// TestFaker_SeedWinsOverRandom tests that WithSeed takes precedence when
// both random options are given.
func TestFaker_SeedWinsOverRandom(t *testing.T) {
	ctx := context.Background()
	scripted := testutil.NewSequenceSource(3, 1, 4)

	withBoth := newFaker(t, WithRandom(scripted), WithSeed(7))
	seedOnly := newFaker(t, WithSeed(7))

	for i := 0; i < 10; i++ {
		a, err := withBoth.Generate(ctx, "Address.city")
		require.NoError(t, err)
		b, err := seedOnly.Generate(ctx, "Address.city")
		require.NoError(t, err)
		assert.Equal(t, b, a)
	}
	assert.Equal(t, 0, scripted.Calls())
}

func TestFaker_ScriptedRandom(t *testing.T) {
	f := newFaker(t, WithRandom(testutil.NewSequenceSource(0)))
	ctx := context.Background()

	v, err := f.Generate(ctx, "Name.first_name")
	require.NoError(t, err)
	assert.Equal(t, "Aaron", v)

	v, err = f.Generate(ctx, "Address.streetAddress")
	require.NoError(t, err)
	assert.Equal(t, "00000 Aaron Alley", v)

	v, err = f.Format(ctx, "#{Name.first_name} ###")
	require.NoError(t, err)
	assert.Equal(t, "Aaron 000", v)

	v, err = f.Resolve(ctx, "phone_number", "cell_phone")
	require.NoError(t, err)
	assert.Equal(t, "###.###.####", v)

	v, err = f.ResolveWithNumerals(ctx, "phone_number", "cell_phone")
	require.NoError(t, err)
	assert.Equal(t, "000.000.0000", v)
}

func TestFaker_DefaultLocale(t *testing.T) {
	f := newFaker(t, WithSeed(1))
	ctx := context.Background()

	assert.Equal(t, "en", f.Locale())
	assert.Equal(t,
		[]string{"address", "company", "internet", "lorem", "name", "phone_number"},
		f.Dictionary().Names())

	for i := 0; i < 20; i++ {
		v, err := f.Generate(ctx, "PhoneNumber.formats")
		require.NoError(t, err)
		assert.Regexp(t, `^(\d{3}-\d{3}-\d{4}|\(\d{3}\) \d{3}-\d{4}|1-\d{3}-\d{3}-\d{4} x\d{3})$`, v)
	}

	_, err := f.Expand(ctx, "address", "#{street_address}, #{city}")
	require.NoError(t, err)
}

// TestFaker_OverrideLocale tests that override keys win while default-only
// keys and categories survive.
func TestFaker_OverrideLocale(t *testing.T) {
	ctx := context.Background()

	gb := newFaker(t, WithLocale("en_GB"), WithSeed(1))
	assert.Equal(t, "en-GB", gb.Locale())

	v, err := gb.Generate(ctx, "PhoneNumber.countryCode")
	require.NoError(t, err)
	assert.Equal(t, "44", v)

	county, err := gb.RawCategory("address")
	require.NoError(t, err)
	assert.Contains(t, county.Keys(), "county")
	assert.Contains(t, county.Keys(), "state_abbr")

	v, err = gb.Generate(ctx, "Lorem.words")
	require.NoError(t, err)
	assert.NotEmpty(t, v)

	de := newFaker(t, WithLocale("de"), WithSeed(1))
	cities := []string{"Berlin", "Bremen", "Dresden", "Hamburg", "Hannover", "Köln", "Leipzig", "München", "Nürnberg", "Stuttgart"}
	for i := 0; i < 10; i++ {
		v, err := de.Generate(ctx, "Address.city")
		require.NoError(t, err)
		assert.True(t, slices.Contains(cities, v), v)

		v, err = de.Generate(ctx, "Address.street_address")
		require.NoError(t, err)
		assert.Regexp(t, `^\p{L}+ \d{1,3}$`, v)
	}
}

func TestFaker_UnknownLocale(t *testing.T) {
	_, err := New(quiet, WithLocale("fr"))
	require.Error(t, err)
	assert.True(t, errdefs.IsConfiguration(err))

	_, err = New(quiet, WithDefaultLocale("xx"))
	assert.True(t, errdefs.IsConfiguration(err))
}

// TestFaker_CustomProviderShadowsCategory tests that a custom provider wins
// over the category provider of the same name, for direct calls and for
// placeholders inside dictionary entries.
func TestFaker_CustomProviderShadowsCategory(t *testing.T) {
	custom := provider.NewFuncs("name").
		AddString("firstName", func() string { return "Ada" }).
		AddString("lastName", func() string { return "Lovelace" })
	f := newFaker(t, WithProvider(custom), WithSeed(3))
	ctx := context.Background()

	p, err := f.Provider("Name")
	require.NoError(t, err)
	assert.Same(t, custom, p)

	v, err := f.Generate(ctx, "Name.first_name")
	require.NoError(t, err)
	assert.Equal(t, "Ada", v)

	v, err = f.Generate(ctx, "Internet.domain_word")
	require.NoError(t, err)
	assert.Equal(t, "Lovelace", v)

	_, err = f.Generate(ctx, "Name.prefix")
	assert.True(t, errdefs.IsNotFound(err))

	// The dictionary itself is untouched.
	v, err = f.Resolve(ctx, "name", "prefix")
	require.NoError(t, err)
	assert.NotEmpty(t, v)
}

func TestFaker_DuplicateCustomProviders(t *testing.T) {
	_, err := New(quiet,
		WithProvider(provider.NewFuncs("Dota")),
		WithProvider(provider.NewFuncs("DOTA")))
	require.Error(t, err)
	assert.True(t, errdefs.IsConfiguration(err))
}

func TestFaker_GenerateErrors(t *testing.T) {
	f := newFaker(t, WithSeed(1))
	ctx := context.Background()

	for _, ref := range []string{"Name", ".first_name", "Name.", ""} {
		_, err := f.Generate(ctx, ref)
		assert.Error(t, err, ref)
		assert.Empty(t, errdefs.KindOf(err), ref)
	}

	_, err := f.Generate(ctx, "Nope.thing")
	assert.True(t, errdefs.IsNotFound(err))
	_, err = f.Generate(ctx, "Name.nope")
	assert.True(t, errdefs.IsNotFound(err))

	_, err = f.Format(ctx, "#{first_name}")
	assert.True(t, errdefs.IsNotFound(err))
}

func TestFaker_Describe(t *testing.T) {
	f := newFaker(t, WithSeed(1))

	d, err := provider.DescribeProvider(f.Registry(), "phonenumber")
	require.NoError(t, err)
	assert.Equal(t, "PhoneNumber", d.Provider)
	assert.Equal(t, []string{"areaCode", "cellPhone", "countryCode", "exchangeCode", "formats"}, d.Capabilities)

	var names []string
	for _, d := range provider.Describe(f.Registry()) {
		names = append(names, d.Provider)
	}
	assert.Equal(t, []string{"Address", "Company", "Internet", "Lorem", "Name", "PhoneNumber"}, names)
}

const collidingYAML = `
en:
  faker:
    phone_number:
      cell_phone: ["555-0100"]
    phoneNumber:
      cell_phone: ["555-0199"]
      fax: ["555-0142"]
`

// TestFaker_CollidingCategoryNames tests that a category whose provider name
// is already taken by an earlier category is skipped rather than failing.
func TestFaker_CollidingCategoryNames(t *testing.T) {
	src := dictionary.NewYAMLSource(fstest.MapFS{
		"en.yml": {Data: []byte(collidingYAML)},
	})
	f := newFaker(t, WithSource(src), WithSeed(1))
	ctx := context.Background()

	v, err := f.Generate(ctx, "PhoneNumber.cellPhone")
	require.NoError(t, err)
	assert.Equal(t, "555-0100", v)

	_, err = f.Generate(ctx, "PhoneNumber.fax")
	assert.True(t, errdefs.IsNotFound(err))

	// Both categories stay reachable through Resolve.
	v, err = f.Resolve(ctx, "phoneNumber", "fax")
	require.NoError(t, err)
	assert.Equal(t, "555-0142", v)

	assert.Len(t, provider.Describe(f.Registry()), 1)
}

const cyclicYAML = `
en:
  faker:
    loop:
      a: ["#{b}"]
      b: ["#{Loop.c}"]
      c: ["#{a}"]
      ok: ["fine ##"]
`

func TestFaker_CyclicDictionary(t *testing.T) {
	src := dictionary.NewYAMLSource(fstest.MapFS{
		"en.yml": {Data: []byte(cyclicYAML)},
	})
	f := newFaker(t, WithSource(src), WithSeed(1), WithMaxDepth(10))
	ctx := context.Background()

	_, err := f.Generate(ctx, "Loop.a")
	require.Error(t, err)
	assert.True(t, errdefs.IsCyclic(err))

	v, err := f.Generate(ctx, "Loop.ok")
	require.NoError(t, err)
	assert.Regexp(t, `^fine \d\d$`, v)
}

func TestFaker_InvalidLimits(t *testing.T) {
	_, err := New(quiet, WithMaxPasses(0))
	assert.True(t, errdefs.IsConfiguration(err))
}
