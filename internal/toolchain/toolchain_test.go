package toolchain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-ledgerbuild/internal/config"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		override   string
		wantPath   string
		wantSource Source
	}{
		{name: "no override", override: "", wantPath: DefaultObjcopy, wantSource: SourceDefault},
		{name: "blank override", override: "   ", wantPath: DefaultObjcopy, wantSource: SourceDefault},
		{name: "explicit override", override: "/opt/arm/bin/arm-none-eabi-objcopy", wantPath: "/opt/arm/bin/arm-none-eabi-objcopy", wantSource: SourceOverride},
		{name: "override is trimmed", override: " llvm-objcopy\n", wantPath: "llvm-objcopy", wantSource: SourceOverride},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := Resolve("objcopy", tt.override, DefaultObjcopy)
			assert.Equal(t, "objcopy", tool.Name)
			assert.Equal(t, tt.wantPath, tool.Path)
			assert.Equal(t, tt.wantSource, tool.Source)
		})
	}
}

func TestNewSet(t *testing.T) {
	t.Run("nil config gives defaults", func(t *testing.T) {
		set := NewSet(nil)
		assert.Equal(t, DefaultObjcopy, set.Objcopy.Path)
		assert.Equal(t, DefaultSize, set.Size.Path)
		assert.Equal(t, DefaultProvisioner, set.Provisioner.Path)
		assert.Equal(t, DefaultInterpreter, set.Interpreter.Path)
		assert.Equal(t, DefaultProvisionerModule, set.ProvisionerModule.Path)
		assert.Equal(t, SourceDefault, set.Size.Source)
	})

	t.Run("overrides are applied per tool", func(t *testing.T) {
		set := NewSet(&config.ToolsConfig{Size: "llvm-size", Interpreter: "python3.11"})
		assert.Equal(t, SourceDefault, set.Objcopy.Source)
		assert.Equal(t, "llvm-size", set.Size.Path)
		assert.Equal(t, SourceOverride, set.Size.Source)
		assert.Equal(t, "python3.11", set.Interpreter.Path)
		assert.Equal(t, SourceOverride, set.Interpreter.Source)
	})
}

func TestSource_MarshalText(t *testing.T) {
	data, err := json.Marshal(Tool{Name: "size", Path: DefaultSize, Source: SourceDefault})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"size","path":"arm-none-eabi-size","source":"default"}`, string(data))
	assert.Equal(t, "override", SourceOverride.String())
	assert.Equal(t, "Source(7)", Source(7).String())
}
