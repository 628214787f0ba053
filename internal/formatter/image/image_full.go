package image

import (
	"bytes"
	"encoding/json"
	"os"
	"text/template"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"imgapi-client/internal/apiclient/apimodels"
	"imgapi-client/internal/formatter"
)

const (
	defaultFullImageGeneral = "table {{.Name}}\t{{.UUID}}\t{{.Version}}\t{{.State}}"
	imageDetails1           = "table {{.OS}}\t{{.Type}}\t{{.Public}}\t{{.Disabled}}" +
		"\t{{.Published}}"
	imageDetails2    = "table {{.Owner}}\t{{.Origin}}\t{{.Channels}}"
	imageDescription = "table {{.Description}}\t{{.Homepage}}\t{{.Eula}}"
	imageFailure     = "table {{.ErrorMessage}}\t{{.ErrorCode}}"
	imageRequirement = "table {{.Brand}}\t{{.MinRam}}\t{{.MaxRam}}\t{{.BootRom}}"
	imageMachine     = "table {{.NicDriver}}\t{{.DiskDriver}}\t{{.CpuType}}\t{{.ImageSize}}"
	imageDataset     = "table {{.GeneratePasswords}}\t{{.InheritedDirectories}}"
	imageTagsTable   = "table {{.Tags}}\t{{.BillingTags}}"
	imageAclTable    = "table {{.Acl}}"

	disabledHeader             = "Disabled"
	ownerHeader                = "Owner"
	originHeader               = "Origin"
	channelsHeader             = "Channels"
	homepageHeader             = "Homepage"
	eulaHeader                 = "EULA"
	errorMessageHeader         = "Message"
	errorCodeHeader            = "Code"
	brandHeader                = "Brand"
	minRAMHeader               = "Min RAM"
	maxRAMHeader               = "Max RAM"
	bootROMHeader              = "Boot ROM"
	nicDriverHeader            = "NIC Driver"
	diskDriverHeader           = "Disk Driver"
	cpuTypeHeader              = "CPU Type"
	imageSizeHeader            = "Disk Size"
	tagsHeader                 = "Tags"
	billingTagsHeader          = "Billing Tags"
	aclHeader                  = "ACL"
	generatePasswordsHeader    = "Generate Passwords"
	inheritedDirectoriesHeader = "Inherited Directories"
)

// FullImageContext to render Image Details output
type FullImageContext struct {
	formatter.HeaderContext
	formatter.Context
	i apimodels.Image
}

// SetFullImage initializes the context with the image data
func (fi *FullImageContext) SetFullImage(image apimodels.Image) {
	fi.i = image
}

// NewFullImageFormat for formatting output
func NewFullImageFormat(source string) formatter.Format {
	switch source {
	case formatter.TableFormatKey, "":
		format := defaultImageListing
		return formatter.Format(format)
	default: // custom format or json or pretty
		return formatter.Format(source)
	}
}

type fullImageContext struct {
	Image *Context
}

// Write populates the output table to be displayed in the command line
func (fi *FullImageContext) Write() error {
	var err error
	fic := &fullImageContext{
		Image: &Context{},
	}
	fic.Image.i = fi.i

	// Section 1
	tmpl, err := fi.startSubsection(defaultFullImageGeneral)
	if err != nil {
		logrus.Errorf("%s", err.Error())
		return err
	}
	fi.Output.Write([]byte(formatter.Colorize("General", formatter.GreenColor)))
	fi.Output.Write([]byte("\n"))
	if err := fi.ContextFormat(tmpl, fic.Image); err != nil {
		logrus.Errorf("%s", err.Error())
		return err
	}
	fi.PostFormat(tmpl, NewImageContext())
	fi.Output.Write([]byte("\n"))

	// Section 2: Image Details subSection 1
	tmpl, err = fi.startSubsection(imageDetails1)
	if err != nil {
		logrus.Errorf("%s", err.Error())
		return err
	}
	fi.subSection("Image Details")
	if err := fi.ContextFormat(tmpl, fic.Image); err != nil {
		logrus.Errorf("%s", err.Error())
		return err
	}
	fi.PostFormat(tmpl, NewImageContext())
	fi.Output.Write([]byte("\n"))

	// Section 2: Image Details subSection 2
	tmpl, err = fi.startSubsection(imageDetails2)
	if err != nil {
		logrus.Errorf("%s", err.Error())
		return err
	}
	if err := fi.ContextFormat(tmpl, fic.Image); err != nil {
		logrus.Errorf("%s", err.Error())
		return err
	}
	fi.PostFormat(tmpl, NewImageContext())
	fi.Output.Write([]byte("\n"))

	// Section 3: description, when the manifest carries any of it
	if fi.i.Description != "" || fi.i.Homepage != "" || fi.i.Eula != "" {
		tmpl, err = fi.startSubsection(imageDescription)
		if err != nil {
			logrus.Errorf("%s", err.Error())
			return err
		}
		fi.subSection("Description")
		if err := fi.ContextFormat(tmpl, fic.Image); err != nil {
			logrus.Errorf("%s", err.Error())
			return err
		}
		fi.PostFormat(tmpl, NewImageContext())
		fi.Output.Write([]byte("\n"))
	}

	// Section 4: failure details of a failed image
	if fi.i.Error != nil {
		tmpl, err = fi.startSubsection(imageFailure)
		if err != nil {
			logrus.Errorf("%s", err.Error())
			return err
		}
		fi.subSection("Failure Details")
		if err := fi.ContextFormat(tmpl, fic.Image); err != nil {
			logrus.Errorf("%s", err.Error())
			return err
		}
		fi.PostFormat(tmpl, NewImageContext())
		fi.Output.Write([]byte("\n"))
	}

	// Section 5: provisioning requirements
	if fi.i.Requirements != nil {
		tmpl, err = fi.startSubsection(imageRequirement)
		if err != nil {
			logrus.Errorf("%s", err.Error())
			return err
		}
		fi.subSection("Requirements")
		if err := fi.ContextFormat(tmpl, fic.Image); err != nil {
			logrus.Errorf("%s", err.Error())
			return err
		}
		fi.PostFormat(tmpl, NewImageContext())
		fi.Output.Write([]byte("\n"))

		noOfNetworks := len(fi.i.Requirements.Networks)
		if noOfNetworks > 0 {
			logrus.Debugf("Number of Networks: %d", noOfNetworks)
			fi.subSection("Networks")
			for i, v := range fi.i.Requirements.Networks {
				networkContext := *NewNetworkContext()
				networkContext.Output = os.Stdout
				networkContext.Format = NewFullImageFormat(viper.GetString("output"))
				networkContext.SetNetwork(v)
				networkContext.Write(i)
			}
		}
	}

	// Section 6: virtual machine disk details
	if fi.i.NicDriver != "" || fi.i.DiskDriver != "" || fi.i.CpuType != "" ||
		fi.i.ImageSize != 0 {
		tmpl, err = fi.startSubsection(imageMachine)
		if err != nil {
			logrus.Errorf("%s", err.Error())
			return err
		}
		fi.subSection("Virtual Machine Details")
		if err := fi.ContextFormat(tmpl, fic.Image); err != nil {
			logrus.Errorf("%s", err.Error())
			return err
		}
		fi.PostFormat(tmpl, NewImageContext())
		fi.Output.Write([]byte("\n"))
	}

	// Section 7: zone dataset details
	if fi.i.Type == apimodels.TypeZoneDataset &&
		(fi.i.GeneratePasswords != nil || len(fi.i.InheritedDirectories) > 0) {
		tmpl, err = fi.startSubsection(imageDataset)
		if err != nil {
			logrus.Errorf("%s", err.Error())
			return err
		}
		fi.subSection("Zone Dataset Details")
		if err := fi.ContextFormat(tmpl, fic.Image); err != nil {
			logrus.Errorf("%s", err.Error())
			return err
		}
		fi.PostFormat(tmpl, NewImageContext())
		fi.Output.Write([]byte("\n"))
	}

	// Section 8: tags
	if len(fi.i.Tags) > 0 || len(fi.i.BillingTags) > 0 {
		tmpl, err = fi.startSubsection(imageTagsTable)
		if err != nil {
			logrus.Errorf("%s", err.Error())
			return err
		}
		fi.subSection("Tags")
		if err := fi.ContextFormat(tmpl, fic.Image); err != nil {
			logrus.Errorf("%s", err.Error())
			return err
		}
		fi.PostFormat(tmpl, NewImageContext())
		fi.Output.Write([]byte("\n"))
	}

	// Section 9: access control list of a private image
	if len(fi.i.Acl) > 0 {
		tmpl, err = fi.startSubsection(imageAclTable)
		if err != nil {
			logrus.Errorf("%s", err.Error())
			return err
		}
		fi.subSection("Access Control List")
		if err := fi.ContextFormat(tmpl, fic.Image); err != nil {
			logrus.Errorf("%s", err.Error())
			return err
		}
		fi.PostFormat(tmpl, NewImageContext())
		fi.Output.Write([]byte("\n"))
	}

	// Files subSection
	logrus.Debugf("Number of Files: %d", len(fi.i.Files))
	fi.subSection("Files")
	for i, v := range fi.i.Files {
		fileContext := *NewFileContext()
		fileContext.Output = os.Stdout
		fileContext.Format = NewFullImageFormat(viper.GetString("output"))
		fileContext.SetFile(v)
		fileContext.Write(i)
	}

	return nil
}

func (fi *FullImageContext) startSubsection(format string) (*template.Template, error) {
	fi.Buffer = bytes.NewBufferString("")
	fi.ContextHeader = ""
	fi.Format = formatter.Format(format)
	fi.PreFormat()

	return fi.ParseFormat()
}

func (fi *FullImageContext) subSection(name string) {
	fi.Output.Write([]byte("\n"))
	fi.Output.Write([]byte(formatter.Colorize(name, formatter.GreenColor)))
	fi.Output.Write([]byte("\n"))
}

// NewFullImageContext creates a new context for rendering image
func NewFullImageContext() *FullImageContext {
	imageCtx := FullImageContext{}
	imageCtx.Header = formatter.SubHeaderContext{}
	return &imageCtx
}

// MarshalJSON function
func (fi *FullImageContext) MarshalJSON() ([]byte, error) {
	return json.Marshal(fi.i)
}
