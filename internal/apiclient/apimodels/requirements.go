package apimodels

// BootRom is the boot ROM a zvol image boots with.
type BootRom string

const (
	BootRomBios BootRom = "bios"
	BootRomUefi BootRom = "uefi"
)

var bootRomNames = map[BootRom]string{
	BootRomBios: "BIOS",
	BootRomUefi: "UEFI",
}

func (b BootRom) DisplayName() string {
	if name, ok := bootRomNames[b]; ok {
		return name
	}
	return string(b)
}

// Requirements describes what provisioning with an image needs. Ram values
// are in MiB; the platform maps key an SDC version to a platform timestamp.
type Requirements struct {
	Networks    []Network         `json:"networks,omitempty" yaml:"networks,omitempty"`
	Brand       string            `json:"brand,omitempty" yaml:"brand,omitempty"`
	SshKey      *bool             `json:"ssh_key,omitempty" yaml:"ssh_key,omitempty"`
	MinRam      int64             `json:"min_ram,omitempty" yaml:"min_ram,omitempty"`
	MaxRam      int64             `json:"max_ram,omitempty" yaml:"max_ram,omitempty"`
	MinPlatform map[string]string `json:"min_platform,omitempty" yaml:"min_platform,omitempty"`
	MaxPlatform map[string]string `json:"max_platform,omitempty" yaml:"max_platform,omitempty"`
	BootRom     BootRom           `json:"boot_rom,omitempty" yaml:"boot_rom,omitempty"`
}

type Network struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}
