// In file: internal/tools/registry_test.go
package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoSpec(name string) Spec {
	return Spec{
		Name:        name,
		Description: "echoes its argument",
		Args:        ArgsText,
		MinArgs:     1,
		MaxArgs:     1,
		Fn: func(args []Value) (Value, error) {
			return args[0], nil
		},
	}
}

func TestRegistryRoundTrip(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(echoSpec("echo")))

	spec, ok := r.Lookup("echo")
	require.True(t, ok)
	assert.Equal(t, "echo", spec.Name)

	// The registered callable must come back intact.
	out, err := spec.Fn([]Value{StringValue("ping")})
	require.NoError(t, err)
	assert.Equal(t, "ping", out.Text())
}

func TestRegistryRejectsDuplicateName(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(echoSpec("echo")))

	err := r.Register(echoSpec("echo"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateTool)
	assert.Equal(t, 1, r.Count())
}

func TestRegistryLookupMissing(t *testing.T) {
	r := NewRegistry()
	_, ok := r.Lookup("nope")
	assert.False(t, ok)
}

func TestRegistryCatalogPreservesRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	names := []string{"zeta", "alpha", "mid"}
	for _, name := range names {
		require.NoError(t, r.Register(echoSpec(name)))
	}

	catalog := r.Catalog()
	require.Len(t, catalog, len(names))
	for i, entry := range catalog {
		assert.Equal(t, names[i], entry.Name)
		assert.NotEmpty(t, entry.Description)
	}
}

func TestBuiltinCatalogsRegisterCleanly(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, RegisterMathTools(r))
	require.NoError(t, RegisterStringTools(r))
	assert.Equal(t, 19, r.Count())

	// Catalog must lead with the math tools, in their registration order.
	catalog := r.Catalog()
	assert.Equal(t, "average", catalog[0].Name)
	assert.Equal(t, "square_root", catalog[1].Name)
}
