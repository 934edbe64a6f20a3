package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewMemoryDependencies(t *testing.T) {
	deps := NewMemoryDependencies()

	require.NotNil(t, deps.Customers)
	require.NotNil(t, deps.Products)
	require.NotNil(t, deps.Orders)
	require.Nil(t, deps.Store)

	// Close без postgres-хранилища не должен паниковать.
	deps.Close(nil)
}
