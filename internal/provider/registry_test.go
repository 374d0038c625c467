package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/fakery/internal/errdefs"
)

func nameProvider() *Funcs {
	return NewFuncs("Name").
		AddString("firstName", func() string { return "Ada" }).
		AddString("lastName", func() string { return "Lovelace" })
}

func TestRegistry_ProviderLookupIgnoresCase(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(nameProvider()))

	for _, name := range []string{"Name", "name", "NAME", "nAmE"} {
		p, err := r.Provider(name)
		require.NoError(t, err, name)
		assert.Equal(t, "Name", p.Name())
	}
	assert.True(t, r.Has("name"))
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_UnknownProvider(t *testing.T) {
	r := NewRegistry()
	_, err := r.Provider("Nope")
	require.Error(t, err)
	assert.True(t, errdefs.IsNotFound(err))
	assert.False(t, r.Has("Nope"))
}

func TestRegistry_DuplicateRegistration(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(nameProvider()))

	err := r.Register(NewFuncs("NAME"))
	require.Error(t, err)
	assert.True(t, errdefs.IsConfiguration(err))

	err = r.Register(NewFuncs("  "))
	assert.True(t, errdefs.IsConfiguration(err))
}

func TestRegistry_Capability(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(nameProvider()))
	p, err := r.Provider("name")
	require.NoError(t, err)

	capability, err := r.Capability(p, "firstName")
	require.NoError(t, err)
	v, err := capability(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ada", v)

	// Capability names match exactly.
	_, err = r.Capability(p, "firstname")
	assert.True(t, errdefs.IsNotFound(err))
	_, err = r.Capability(p, "first_name")
	assert.True(t, errdefs.IsNotFound(err))
}

func TestRegistry_ProvidersKeepOrder(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(NewFuncs("Zelda")))
	require.NoError(t, r.Register(NewFuncs("Address")))

	var names []string
	for _, p := range r.Providers() {
		names = append(names, p.Name())
	}
	assert.Equal(t, []string{"Zelda", "Address"}, names)
}

func TestFuncs(t *testing.T) {
	boom := errors.New("boom")
	f := NewFuncs("Test").
		AddString("a", func() string { return "1" }).
		Add("b", func(context.Context) (string, error) { return "", boom }).
		AddString("a", func() string { return "2" })

	assert.Equal(t, []string{"a", "b"}, f.Capabilities())

	v, err := f.Invoke(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "2", v)

	_, err = f.Invoke(context.Background(), "b")
	assert.ErrorIs(t, err, boom)

	_, err = f.Invoke(context.Background(), "c")
	assert.True(t, errdefs.IsNotFound(err))
}

func TestCapabilityName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"street_address", "streetAddress"},
		{"firstName", "firstName"},
		{"city", "city"},
		{"country_code_long", "countryCodeLong"},
		{"a__b", "aB"},
		{"trailing_", "trailing"},
		{"über_straße", "überStraße"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CapabilityName(tt.in))
		})
	}
}

func TestProviderName(t *testing.T) {
	assert.Equal(t, "PhoneNumber", ProviderName("phone_number"))
	assert.Equal(t, "Address", ProviderName("address"))
	assert.Equal(t, "DrWho", ProviderName("dr_who"))
}

func TestDescribe(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(NewFuncs("zelda").AddString("game", nil)))
	require.NoError(t, r.Register(NewFuncs("Address").
		AddString("streetName", nil).
		AddString("city", nil).
		AddString("buildingNumber", nil)))

	got := Describe(r)
	assert.Equal(t, []Description{
		{Provider: "Address", Capabilities: []string{"buildingNumber", "city", "streetName"}},
		{Provider: "zelda", Capabilities: []string{"game"}},
	}, got)

	d, err := DescribeProvider(r, "ADDRESS")
	require.NoError(t, err)
	assert.Equal(t, "Address", d.Provider)

	_, err = DescribeProvider(r, "Dota")
	assert.True(t, errdefs.IsNotFound(err))
}
