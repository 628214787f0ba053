package apimodels

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validManifest = `{
	"v": 2,
	"uuid": "a93fda38-80aa-11e1-b8c1-8b1f33cd9007",
	"owner": "352971aa-31ba-496c-9ade-a1212577d6ee",
	"name": "zeldman",
	"version": "1.0.0",
	"description": "Zeldman's favorite zone",
	"state": "active",
	"disabled": false,
	"public": false,
	"published_at": "2012-04-07T04:14:33Z",
	"type": "zone-dataset",
	"os": "smartos",
	"files": [
		{
			"sha1": "2f7f1f90ac0a23eef2e5ffddeff4fa9fe3fee4e1",
			"size": 43356514,
			"compression": "bzip2",
			"stor": "local"
		}
	],
	"acl": ["8b5a4b49-0b89-4b39-8b7e-9a9e4e48f12a"],
	"requirements": {
		"networks": [{"name": "net0", "description": "public"}],
		"brand": "kvm",
		"min_ram": 512,
		"max_ram": 4096,
		"boot_rom": "bios"
	},
	"users": [{"name": "root"}, {"name": "admin"}],
	"billing_tags": ["xxl"],
	"tags": {"role": "web", "retention": 7},
	"generate_passwords": false,
	"inherited_directories": ["/opt/local"],
	"nic_driver": "virtio",
	"disk_driver": "virtio",
	"cpu_type": "qemu64",
	"image_size": 10240,
	"channels": ["release", "staging"]
}`

func TestImageDecode(t *testing.T) {
	var image Image
	require.NoError(t, json.Unmarshal([]byte(validManifest), &image))
	require.NoError(t, image.Validate())

	assert.Equal(t, int32(2), image.V)
	assert.Equal(t, uuid.MustParse("a93fda38-80aa-11e1-b8c1-8b1f33cd9007"), image.UUID)
	assert.Equal(t, uuid.MustParse("352971aa-31ba-496c-9ade-a1212577d6ee"), image.Owner)
	assert.Equal(t, "zeldman", image.Name)
	assert.Equal(t, "1.0.0", image.Version)
	assert.Equal(t, StateActive, image.State)
	assert.False(t, image.Disabled)
	assert.False(t, image.Public)
	require.NotNil(t, image.PublishedAt)
	assert.Equal(t, time.Date(2012, time.April, 7, 4, 14, 33, 0, time.UTC), image.PublishedAt.UTC())
	assert.Equal(t, TypeZoneDataset, image.Type)
	assert.Equal(t, OsSmartOS, image.OS)

	require.Len(t, image.Files, 1)
	assert.Equal(t, CompressionBzip2, image.Files[0].Compression)
	assert.Equal(t, int64(43356514), image.Files[0].Size)

	require.Len(t, image.Acl, 1)
	assert.Equal(t, uuid.MustParse("8b5a4b49-0b89-4b39-8b7e-9a9e4e48f12a"), image.Acl[0])

	require.NotNil(t, image.Requirements)
	assert.Equal(t, "kvm", image.Requirements.Brand)
	assert.Equal(t, int64(512), image.Requirements.MinRam)
	assert.Equal(t, int64(4096), image.Requirements.MaxRam)
	assert.Equal(t, BootRomBios, image.Requirements.BootRom)
	require.Len(t, image.Requirements.Networks, 1)
	assert.Equal(t, "net0", image.Requirements.Networks[0].Name)

	require.Len(t, image.Users, 2)
	assert.Equal(t, "root", image.Users[0].Name)
	assert.Equal(t, []string{"xxl"}, image.BillingTags)
	assert.Equal(t, "web", image.Tags["role"])
	assert.Equal(t, float64(7), image.Tags["retention"])

	require.NotNil(t, image.GeneratePasswords)
	assert.False(t, *image.GeneratePasswords)
	assert.Equal(t, []string{"/opt/local"}, image.InheritedDirectories)

	assert.Equal(t, "virtio", image.NicDriver)
	assert.Equal(t, "qemu64", image.CpuType)
	assert.Equal(t, int64(10240), image.ImageSize)
	assert.Equal(t, []string{"release", "staging"}, image.Channels)
}

// The administrative stor field is accepted on input but never re-emitted.
func TestImageFileStorNotEmitted(t *testing.T) {
	var image Image
	require.NoError(t, json.Unmarshal([]byte(validManifest), &image))
	assert.Equal(t, "", image.Files[0].Stor)

	encoded, err := json.Marshal(image)
	require.NoError(t, err)
	assert.NotContains(t, string(encoded), "stor")
}

func TestImageGeneratePasswordsDefault(t *testing.T) {
	image := Image{}
	assert.True(t, image.GeneratePasswordsEnabled())

	enabled := true
	image.GeneratePasswords = &enabled
	assert.True(t, image.GeneratePasswordsEnabled())

	disabled := false
	image.GeneratePasswords = &disabled
	assert.False(t, image.GeneratePasswordsEnabled())
}

func TestImageValidateMissingFields(t *testing.T) {
	base := func() Image {
		var image Image
		require.NoError(t, json.Unmarshal([]byte(validManifest), &image))
		return image
	}

	tests := []struct {
		name     string
		mutate   func(*Image)
		expected string
	}{
		{"v", func(i *Image) { i.V = 0 }, `missing required field "v"`},
		{"uuid", func(i *Image) { i.UUID = uuid.Nil }, `missing required field "uuid"`},
		{"name", func(i *Image) { i.Name = "" }, `missing required field "name"`},
		{"version", func(i *Image) { i.Version = "" }, `missing required field "version"`},
		{"state", func(i *Image) { i.State = "" }, `missing required field "state"`},
		{"type", func(i *Image) { i.Type = "" }, `missing required field "type"`},
		{"os", func(i *Image) { i.OS = "" }, `missing required field "os"`},
		{"files", func(i *Image) { i.Files = nil }, `missing required field "files"`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			image := base()
			tc.mutate(&image)
			err := image.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expected)
		})
	}
}

func TestImageValidateUnknownState(t *testing.T) {
	var image Image
	require.NoError(t, json.Unmarshal([]byte(validManifest), &image))
	image.State = "retired"

	err := image.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown state "retired"`)
}

// An unowned public image carries the all-zero owner uuid; Validate accepts
// it.
func TestImageValidateNilOwner(t *testing.T) {
	var image Image
	require.NoError(t, json.Unmarshal([]byte(validManifest), &image))
	image.Owner = uuid.Nil
	assert.NoError(t, image.Validate())
}

// An empty files array satisfies key presence, only an absent key fails.
func TestImageValidateEmptyFiles(t *testing.T) {
	var image Image
	require.NoError(t, json.Unmarshal([]byte(validManifest), &image))
	image.Files = []File{}
	assert.NoError(t, image.Validate())
}

func TestImageValidateBadFile(t *testing.T) {
	var image Image
	require.NoError(t, json.Unmarshal([]byte(validManifest), &image))
	image.Files[0].Compression = "zip"

	err := image.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown compression "zip"`)
	assert.Contains(t, err.Error(), "image a93fda38-80aa-11e1-b8c1-8b1f33cd9007")
}

func TestImageFailedStateCarriesError(t *testing.T) {
	manifest := `{
		"v": 2,
		"uuid": "ed5cf6b0-3f91-4bea-b3c4-6d8b46e5a1e4",
		"owner": "352971aa-31ba-496c-9ade-a1212577d6ee",
		"name": "broken-image",
		"version": "0.0.1",
		"state": "failed",
		"error": {
			"message": "VM has no origin",
			"code": "VmHasNoOrigin",
			"stack": "InternalError: VM has no origin"
		},
		"disabled": false,
		"public": false,
		"type": "zvol",
		"os": "linux",
		"files": [{"sha1": "da39a3ee5e6b4b0d3255bfef95601890afd80709", "size": 0, "compression": "none"}]
	}`

	var image Image
	require.NoError(t, json.Unmarshal([]byte(manifest), &image))
	require.NoError(t, image.Validate())

	assert.Equal(t, StateFailed, image.State)
	require.NotNil(t, image.Error)
	assert.Equal(t, "VM has no origin", image.Error.Message)
	assert.Equal(t, ErrorCodeVmHasNoOrigin, image.Error.Code)
	assert.Equal(t, "VM has no origin", image.Error.String())
}

// Unknown image types pass through untouched; the known set is only for
// display names.
func TestImageTypeDisplayName(t *testing.T) {
	assert.Equal(t, "SmartOS zone dataset", TypeZoneDataset.DisplayName())
	assert.Equal(t, "zvol", TypeZvol.DisplayName())
	assert.Equal(t, "Docker image", TypeDocker.DisplayName())
	assert.Equal(t, "tarball", ImageType("tarball").DisplayName())
}

func TestBootRomDisplayName(t *testing.T) {
	assert.Equal(t, "BIOS", BootRomBios.DisplayName())
	assert.Equal(t, "UEFI", BootRomUefi.DisplayName())
	assert.Equal(t, "openfirmware", BootRom("openfirmware").DisplayName())
}
