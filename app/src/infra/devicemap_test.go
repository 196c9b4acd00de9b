package infra

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDeviceMetadata(t *testing.T) {
	metadata := DefaultDeviceMetadata()

	require.NotEmpty(t, metadata)
	granville, ok := metadata["Granville St"]
	require.True(t, ok)
	assert.Equal(t, 49.2827, granville.Lat)
	assert.Equal(t, -123.1187, granville.Lng)
}

func TestLoadDeviceMetadataEmptyPathUsesBuiltIn(t *testing.T) {
	metadata, err := LoadDeviceMetadata("")

	require.NoError(t, err)
	assert.Equal(t, DefaultDeviceMetadata(), metadata)
}

func TestLoadDeviceMetadataFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devices.yaml")
	content := "sensor-1:\n  lat: 10.5\n  lng: -20.25\nsensor-2:\n  lat: 0\n  lng: 0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	metadata, err := LoadDeviceMetadata(path)

	require.NoError(t, err)
	require.Len(t, metadata, 2)
	assert.Equal(t, 10.5, metadata["sensor-1"].Lat)
	assert.Equal(t, -20.25, metadata["sensor-1"].Lng)
}

func TestLoadDeviceMetadataMissingFile(t *testing.T) {
	_, err := LoadDeviceMetadata(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Error(t, err)
}

func TestLoadDeviceMetadataMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devices.yaml")
	require.NoError(t, os.WriteFile(path, []byte("::nonsense\n\t"), 0o600))

	_, err := LoadDeviceMetadata(path)

	assert.Error(t, err)
}
