package apimodels

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Image is one catalog entry as returned by the service. Records are only
// ever decoded from responses, never sent back; treat them as immutable.
type Image struct {
	V           int32           `json:"v" yaml:"v"`
	UUID        uuid.UUID       `json:"uuid" yaml:"uuid"`
	Owner       uuid.UUID       `json:"owner" yaml:"owner"`
	Name        string          `json:"name" yaml:"name"`
	Version     string          `json:"version" yaml:"version"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
	Homepage    string          `json:"homepage,omitempty" yaml:"homepage,omitempty"`
	Eula        string          `json:"eula,omitempty" yaml:"eula,omitempty"`
	Icon        bool            `json:"icon,omitempty" yaml:"icon,omitempty"`
	State       ImageState      `json:"state" yaml:"state"`
	// Error is documented to accompany the failed state only. The server is
	// authoritative, so the correlation is not enforced on decode.
	Error       *ImageError     `json:"error,omitempty" yaml:"error,omitempty"`
	Disabled    bool            `json:"disabled" yaml:"disabled"`
	Public      bool            `json:"public" yaml:"public"`
	PublishedAt *time.Time      `json:"published_at,omitempty" yaml:"published_at,omitempty"`
	Type        ImageType       `json:"type" yaml:"type"`
	OS          OperatingSystem `json:"os" yaml:"os"`
	Origin      *uuid.UUID      `json:"origin,omitempty" yaml:"origin,omitempty"`
	Files       []File          `json:"files" yaml:"files"`
	// Acl only carries meaning for private images.
	Acl          []uuid.UUID            `json:"acl,omitempty" yaml:"acl,omitempty"`
	Requirements *Requirements          `json:"requirements,omitempty" yaml:"requirements,omitempty"`
	Users        []User                 `json:"users,omitempty" yaml:"users,omitempty"`
	BillingTags  []string               `json:"billing_tags,omitempty" yaml:"billing_tags,omitempty"`
	Traits       map[string]interface{} `json:"traits,omitempty" yaml:"traits,omitempty"`
	Tags         map[string]interface{} `json:"tags,omitempty" yaml:"tags,omitempty"`
	// GeneratePasswords defaults to true when absent, see
	// GeneratePasswordsEnabled.
	GeneratePasswords    *bool    `json:"generate_passwords,omitempty" yaml:"generate_passwords,omitempty"`
	InheritedDirectories []string `json:"inherited_directories,omitempty" yaml:"inherited_directories,omitempty"`
	// Drivers, cpu type and image size only apply to zvol images.
	NicDriver  string   `json:"nic_driver,omitempty" yaml:"nic_driver,omitempty"`
	DiskDriver string   `json:"disk_driver,omitempty" yaml:"disk_driver,omitempty"`
	CpuType    string   `json:"cpu_type,omitempty" yaml:"cpu_type,omitempty"`
	ImageSize  int64    `json:"image_size,omitempty" yaml:"image_size,omitempty"`
	Channels   []string `json:"channels,omitempty" yaml:"channels,omitempty"`
}

// GeneratePasswordsEnabled resolves the absent-means-true default.
func (i *Image) GeneratePasswordsEnabled() bool {
	return i.GeneratePasswords == nil || *i.GeneratePasswords
}

// Validate checks the fields every manifest is required to carry. The owner
// field is exempt because the service uses the all-zero UUID for unowned
// public images, which is indistinguishable from an absent field.
func (i *Image) Validate() error {
	if i.V == 0 {
		return missingField("v")
	}
	if i.UUID == uuid.Nil {
		return missingField("uuid")
	}
	if i.Name == "" {
		return missingField("name")
	}
	if i.Version == "" {
		return missingField("version")
	}
	if i.State == "" {
		return missingField("state")
	}
	if !i.State.Valid() {
		return errors.Errorf("image %s has unknown state %q", i.UUID, i.State)
	}
	if i.Type == "" {
		return missingField("type")
	}
	if i.OS == "" {
		return missingField("os")
	}
	if i.Files == nil {
		return missingField("files")
	}
	for idx := range i.Files {
		if err := i.Files[idx].Validate(); err != nil {
			return errors.Wrapf(err, "image %s", i.UUID)
		}
	}
	return nil
}

func missingField(name string) error {
	return errors.Errorf("image manifest missing required field %q", name)
}
