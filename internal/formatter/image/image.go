package image

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"imgapi-client/internal/apiclient/apimodels"
	"imgapi-client/internal/formatter"
	"imgapi-client/internal/helpers"
)

const (
	defaultImageListing = "table {{.UUID}}\t{{.Name}}\t{{.Version}}\t{{.OS}}" +
		"\t{{.Type}}\t{{.Public}}\t{{.State}}\t{{.Published}}"
	osHeader        = "OS"
	typeHeader      = "Type"
	publicHeader    = "Public"
	publishedHeader = "Published"
)

// Context for image outputs
type Context struct {
	formatter.HeaderContext
	formatter.Context
	i apimodels.Image
}

// NewImageFormat for formatting output
func NewImageFormat(source string) formatter.Format {
	switch source {
	case formatter.TableFormatKey, "":
		format := defaultImageListing
		return formatter.Format(format)
	default: // custom format or json or pretty
		return formatter.Format(source)
	}
}

// Write renders the context for a list of Images
func Write(ctx formatter.Context, images []apimodels.Image) error {
	render := func(format func(subContext formatter.SubContext) error) error {
		for _, img := range images {
			err := format(&Context{i: img})
			if err != nil {
				logrus.Debugf("Error rendering image: %v", err)
				return err
			}
		}
		return nil
	}
	return ctx.Write(NewImageContext(), render)
}

// NewImageContext creates a new context for rendering image
func NewImageContext() *Context {
	imageCtx := Context{}
	imageCtx.Header = formatter.SubHeaderContext{
		"UUID":      formatter.UUIDHeader,
		"Name":      formatter.NameHeader,
		"Version":   formatter.VersionHeader,
		"OS":        osHeader,
		"Type":      typeHeader,
		"Public":    publicHeader,
		"State":     formatter.StateHeader,
		"Published": publishedHeader,

		"Description":          formatter.DescriptionHeader,
		"Disabled":             disabledHeader,
		"Owner":                ownerHeader,
		"Origin":               originHeader,
		"Channels":             channelsHeader,
		"Homepage":             homepageHeader,
		"Eula":                 eulaHeader,
		"ErrorMessage":         errorMessageHeader,
		"ErrorCode":            errorCodeHeader,
		"Brand":                brandHeader,
		"MinRam":               minRAMHeader,
		"MaxRam":               maxRAMHeader,
		"BootRom":              bootROMHeader,
		"NicDriver":            nicDriverHeader,
		"DiskDriver":           diskDriverHeader,
		"CpuType":              cpuTypeHeader,
		"ImageSize":            imageSizeHeader,
		"Tags":                 tagsHeader,
		"BillingTags":          billingTagsHeader,
		"Acl":                  aclHeader,
		"GeneratePasswords":    generatePasswordsHeader,
		"InheritedDirectories": inheritedDirectoriesHeader,
	}
	return &imageCtx
}

// UUID fetches the image id
func (c *Context) UUID() string {
	return c.i.UUID.String()
}

// Name fetches the image name
func (c *Context) Name() string {
	return c.i.Name
}

// Version fetches the image version
func (c *Context) Version() string {
	return c.i.Version
}

// OS fetches the operating system family of the image
func (c *Context) OS() string {
	return c.i.OS.DisplayName()
}

// Type fetches the image type
func (c *Context) Type() string {
	return c.i.Type.DisplayName()
}

// Public fetches the public flag of the image
func (c *Context) Public() string {
	return fmt.Sprintf("%t", c.i.Public)
}

// State fetches the image state
func (c *Context) State() string {
	state := string(c.i.State)
	switch c.i.State {
	case apimodels.StateActive:
		return formatter.Colorize(state, formatter.GreenColor)
	case apimodels.StateFailed:
		return formatter.Colorize(state, formatter.RedColor)
	case apimodels.StateCreating:
		return formatter.Colorize(state, formatter.BlueColor)
	default:
		return formatter.Colorize(state, formatter.YellowColor)
	}
}

// Published fetches the publish timestamp of the image
func (c *Context) Published() string {
	return helpers.FormatTimestamp(c.i.PublishedAt)
}

// Description fetches the image description
func (c *Context) Description() string {
	if c.i.Description == "" {
		return "-"
	}
	return c.i.Description
}

// Disabled fetches the disabled flag of the image
func (c *Context) Disabled() string {
	return fmt.Sprintf("%t", c.i.Disabled)
}

// Owner fetches the account id owning the image
func (c *Context) Owner() string {
	return c.i.Owner.String()
}

// Origin fetches the origin image id for incremental images
func (c *Context) Origin() string {
	if c.i.Origin == nil {
		return "-"
	}
	return c.i.Origin.String()
}

// Channels fetches the channel names carrying the image
func (c *Context) Channels() string {
	if len(c.i.Channels) == 0 {
		return "-"
	}
	return strings.Join(c.i.Channels, ", ")
}

// Homepage fetches the homepage URL of the image
func (c *Context) Homepage() string {
	if c.i.Homepage == "" {
		return "-"
	}
	return c.i.Homepage
}

// Eula fetches the EULA URL of the image
func (c *Context) Eula() string {
	if c.i.Eula == "" {
		return "-"
	}
	return c.i.Eula
}

// ErrorMessage fetches the failure message of a failed image
func (c *Context) ErrorMessage() string {
	if c.i.Error == nil {
		return "-"
	}
	return c.i.Error.Message
}

// ErrorCode fetches the failure code of a failed image
func (c *Context) ErrorCode() string {
	if c.i.Error == nil || c.i.Error.Code == "" {
		return "-"
	}
	return c.i.Error.Code
}

// Brand fetches the required zone brand
func (c *Context) Brand() string {
	if c.i.Requirements == nil || c.i.Requirements.Brand == "" {
		return "-"
	}
	return c.i.Requirements.Brand
}

// MinRam fetches the minimum RAM requirement
func (c *Context) MinRam() string {
	if c.i.Requirements == nil || c.i.Requirements.MinRam == 0 {
		return "-"
	}
	return humanize.IBytes(uint64(c.i.Requirements.MinRam) * humanize.MiByte)
}

// MaxRam fetches the maximum RAM requirement
func (c *Context) MaxRam() string {
	if c.i.Requirements == nil || c.i.Requirements.MaxRam == 0 {
		return "-"
	}
	return humanize.IBytes(uint64(c.i.Requirements.MaxRam) * humanize.MiByte)
}

// BootRom fetches the required boot ROM
func (c *Context) BootRom() string {
	if c.i.Requirements == nil || c.i.Requirements.BootRom == "" {
		return "-"
	}
	return c.i.Requirements.BootRom.DisplayName()
}

// NicDriver fetches the NIC driver of a virtual machine image
func (c *Context) NicDriver() string {
	if c.i.NicDriver == "" {
		return "-"
	}
	return c.i.NicDriver
}

// DiskDriver fetches the disk driver of a virtual machine image
func (c *Context) DiskDriver() string {
	if c.i.DiskDriver == "" {
		return "-"
	}
	return c.i.DiskDriver
}

// CpuType fetches the CPU type of a virtual machine image
func (c *Context) CpuType() string {
	if c.i.CpuType == "" {
		return "-"
	}
	return c.i.CpuType
}

// ImageSize fetches the disk size of a virtual machine image
func (c *Context) ImageSize() string {
	if c.i.ImageSize == 0 {
		return "-"
	}
	return humanize.IBytes(uint64(c.i.ImageSize) * humanize.MiByte)
}

// Tags fetches the tag mapping of the image
func (c *Context) Tags() string {
	if len(c.i.Tags) == 0 {
		return "-"
	}
	keys := make([]string, 0, len(c.i.Tags))
	for k := range c.i.Tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, c.i.Tags[k]))
	}
	return strings.Join(pairs, ", ")
}

// BillingTags fetches the billing tags of the image
func (c *Context) BillingTags() string {
	if len(c.i.BillingTags) == 0 {
		return "-"
	}
	return strings.Join(c.i.BillingTags, ", ")
}

// Acl fetches the access control list of a private image
func (c *Context) Acl() string {
	if len(c.i.Acl) == 0 {
		return "-"
	}
	ids := make([]string, 0, len(c.i.Acl))
	for _, id := range c.i.Acl {
		ids = append(ids, id.String())
	}
	return strings.Join(ids, ", ")
}

// GeneratePasswords fetches the generate-passwords flag of a zone dataset
func (c *Context) GeneratePasswords() string {
	return fmt.Sprintf("%t", c.i.GeneratePasswordsEnabled())
}

// InheritedDirectories fetches the inherited directory list of a zone dataset
func (c *Context) InheritedDirectories() string {
	if len(c.i.InheritedDirectories) == 0 {
		return "-"
	}
	return strings.Join(c.i.InheritedDirectories, ", ")
}

// MarshalJSON function
func (c *Context) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.i)
}
