package apimodels

// ImageType covers the documented set of image types. Manifests carry the
// type as a plain string and unknown values pass through untouched; the
// constants exist for callers and for display.
type ImageType string

const (
	TypeZoneDataset ImageType = "zone-dataset"
	TypeLxDataset   ImageType = "lx-dataset"
	TypeZvol        ImageType = "zvol"
	TypeDocker      ImageType = "docker"
	TypeOther       ImageType = "other"
)

var imageTypeNames = map[ImageType]string{
	TypeZoneDataset: "SmartOS zone dataset",
	TypeLxDataset:   "Lx-brand dataset",
	TypeZvol:        "zvol",
	TypeDocker:      "Docker image",
	TypeOther:       "Other",
}

func (t ImageType) DisplayName() string {
	if name, ok := imageTypeNames[t]; ok {
		return name
	}
	return string(t)
}
