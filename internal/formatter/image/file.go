package image

import (
	"bytes"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"imgapi-client/internal/apiclient/apimodels"
	"imgapi-client/internal/formatter"
)

const (
	defaultFile = "table {{.Sha1}}\t{{.Size}}\t{{.Compression}}"
	fileDigests = "table {{.DatasetGuid}}\t{{.Digest}}\t{{.UncompressedDigest}}"

	sha1Header               = "SHA1"
	sizeHeader               = "Size"
	compressionHeader        = "Compression"
	datasetGUIDHeader        = "Dataset GUID"
	digestHeader             = "Digest"
	uncompressedDigestHeader = "Uncompressed Digest"
)

// FileContext for image file outputs
type FileContext struct {
	formatter.HeaderContext
	formatter.Context
	f apimodels.File
}

// NewFileFormat for formatting output
func NewFileFormat(source string) formatter.Format {
	switch source {
	case formatter.TableFormatKey, "":
		format := defaultFile
		return formatter.Format(format)
	default: // custom format or json or pretty
		return formatter.Format(source)
	}
}

// SetFile initializes the context with the file data
func (f *FileContext) SetFile(file apimodels.File) {
	f.f = file
}

type fileContext struct {
	File *FileContext
}

// Write populates the output table to be displayed in the command line
func (f *FileContext) Write(index int) error {
	var err error
	fc := &fileContext{
		File: &FileContext{},
	}
	fc.File.f = f.f

	// Section 1
	tmpl, err := f.startSubsection(defaultFile)
	if err != nil {
		logrus.Errorf("%s", err.Error())
		return err
	}
	f.Output.Write([]byte(formatter.Colorize(
		fmt.Sprintf("File %d: Details", index+1), formatter.BlueColor)))
	f.Output.Write([]byte("\n"))
	if err := f.ContextFormat(tmpl, fc.File); err != nil {
		logrus.Errorf("%s", err.Error())
		return err
	}
	f.PostFormat(tmpl, NewFileContext())
	f.Output.Write([]byte("\n"))

	// Section 2: dataset and container digests, when present
	if f.f.DatasetGuid != nil || f.f.Digest != "" || f.f.UncompressedDigest != "" {
		tmpl, err = f.startSubsection(fileDigests)
		if err != nil {
			logrus.Errorf("%s", err.Error())
			return err
		}
		if err := f.ContextFormat(tmpl, fc.File); err != nil {
			logrus.Errorf("%s", err.Error())
			return err
		}
		f.PostFormat(tmpl, NewFileContext())
		f.Output.Write([]byte("\n"))
	}

	return nil
}

func (f *FileContext) startSubsection(format string) (*template.Template, error) {
	f.Buffer = bytes.NewBufferString("")
	f.ContextHeader = ""
	f.Format = formatter.Format(format)
	f.PreFormat()

	return f.ParseFormat()
}

// NewFileContext creates a new context for rendering image files
func NewFileContext() *FileContext {
	fileCtx := FileContext{}
	fileCtx.Header = formatter.SubHeaderContext{
		"Sha1":               sha1Header,
		"Size":               sizeHeader,
		"Compression":        compressionHeader,
		"DatasetGuid":        datasetGUIDHeader,
		"Digest":             digestHeader,
		"UncompressedDigest": uncompressedDigestHeader,
	}
	return &fileCtx
}

// Sha1 of the image file content
func (f *FileContext) Sha1() string {
	return f.f.Sha1
}

// Size of the image file
func (f *FileContext) Size() string {
	return humanize.IBytes(uint64(f.f.Size))
}

// Compression of the image file
func (f *FileContext) Compression() string {
	return f.f.Compression.String()
}

// DatasetGuid of the image file
func (f *FileContext) DatasetGuid() string {
	if f.f.DatasetGuid == nil {
		return "-"
	}
	return f.f.DatasetGuid.String()
}

// Digest of the image file
func (f *FileContext) Digest() string {
	if f.f.Digest == "" {
		return "-"
	}
	return f.f.Digest
}

// UncompressedDigest of the image file
func (f *FileContext) UncompressedDigest() string {
	if f.f.UncompressedDigest == "" {
		return "-"
	}
	return f.f.UncompressedDigest
}

// MarshalJSON function
func (f *FileContext) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.f)
}
