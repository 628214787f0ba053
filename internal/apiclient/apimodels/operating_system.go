package apimodels

import (
	"fmt"
	"strings"
)

// OperatingSystem is the family of software an image runs. The constant
// values double as the short query-parameter form; DisplayName gives the
// human form, which differs from the wire form for most entries.
type OperatingSystem string

const (
	OsSmartOS OperatingSystem = "smartos"
	OsLinux   OperatingSystem = "linux"
	OsWindows OperatingSystem = "windows"
	OsBSD     OperatingSystem = "bsd"
	OsIllumos OperatingSystem = "illumos"
	OsOther   OperatingSystem = "other"
)

var operatingSystemNames = map[OperatingSystem]string{
	OsSmartOS: "SmartOS",
	OsLinux:   "Linux",
	OsWindows: "Windows",
	OsBSD:     "BSD",
	OsIllumos: "illumos",
	OsOther:   "Other",
}

// knownOperatingSystems keeps a stable order for error messages.
var knownOperatingSystems = []OperatingSystem{OsSmartOS, OsLinux, OsWindows, OsBSD, OsIllumos, OsOther}

// QueryParam is the short textual form used on the wire.
func (o OperatingSystem) QueryParam() string {
	return string(o)
}

func (o OperatingSystem) DisplayName() string {
	if name, ok := operatingSystemNames[o]; ok {
		return name
	}
	return string(o)
}

func (o OperatingSystem) Valid() bool {
	_, ok := operatingSystemNames[o]
	return ok
}

// ParseOperatingSystem is case-insensitive.
func ParseOperatingSystem(value string) (OperatingSystem, error) {
	os := OperatingSystem(strings.ToLower(value))
	if !os.Valid() {
		names := make([]string, 0, len(knownOperatingSystems))
		for _, known := range knownOperatingSystems {
			names = append(names, string(known))
		}
		return "", fmt.Errorf("os must be one of: %s", strings.Join(names, ", "))
	}
	return os, nil
}
