package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupChain(t *testing.T) {
	minimal := MinimalModules()
	normal := NormalModules()
	all := AllModules()

	assert.Subset(t, normal, minimal)
	assert.Subset(t, all, normal)
	assert.Greater(t, len(normal), len(minimal))
	assert.Greater(t, len(all), len(normal))

	// the simulator is never part of a group
	assert.NotContains(t, all, ModuleSimulator)
}

func TestResolveModulesDefault(t *testing.T) {
	modules, err := ResolveModules(nil, "")
	require.NoError(t, err)
	assert.ElementsMatch(t, NormalModules(), modules)
}

func TestResolveModulesUnion(t *testing.T) {
	modules, err := ResolveModules([]string{"sandbox", "simulator"}, GroupMinimal)
	require.NoError(t, err)

	expected := append(MinimalModules(), ModuleSandbox, ModuleSimulator)
	assert.ElementsMatch(t, expected, modules)
}

func TestResolveModulesExplicitOnly(t *testing.T) {
	modules, err := ResolveModules([]string{"thermal"}, "")
	require.NoError(t, err)
	assert.Equal(t, []Module{ModuleThermal}, modules)
}

func TestResolveModulesDeduplicates(t *testing.T) {
	modules, err := ResolveModules([]string{"broker", "broker"}, "")
	require.NoError(t, err)
	assert.Equal(t, []Module{ModuleBroker}, modules)
}

func TestResolveModulesUnknown(t *testing.T) {
	_, err := ResolveModules([]string{"warp-drive"}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "warp-drive")
}

func TestResolveModulesSorted(t *testing.T) {
	modules, err := ResolveModules(nil, GroupAll)
	require.NoError(t, err)

	for i := 1; i < len(modules); i++ {
		assert.Less(t, modules[i-1], modules[i])
	}
}
