package apimodels

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type Compression string

const (
	CompressionBzip2 Compression = "bzip2"
	CompressionGzip  Compression = "gzip"
	CompressionNone  Compression = "none"
)

var knownCompressions = map[Compression]bool{
	CompressionBzip2: true,
	CompressionGzip:  true,
	CompressionNone:  true,
}

func (c Compression) Valid() bool {
	return knownCompressions[c]
}

func (c Compression) String() string {
	return string(c)
}

// File is one storage artifact of an image. The service caps size at 20 GiB;
// that bound is not enforced here.
type File struct {
	Sha1        string      `json:"sha1" yaml:"sha1"`
	Size        int64       `json:"size" yaml:"size"`
	Compression Compression `json:"compression" yaml:"compression"`
	DatasetGuid *uuid.UUID  `json:"dataset_guid,omitempty" yaml:"dataset_guid,omitempty"`
	// Stor is the administrative storage location. It is accepted on input
	// but never decoded or re-emitted.
	Stor string `json:"-" yaml:"-"`
	// Digest and UncompressedDigest only apply to docker-type images.
	Digest             string `json:"digest,omitempty" yaml:"digest,omitempty"`
	UncompressedDigest string `json:"uncompressedDigest,omitempty" yaml:"uncompressed_digest,omitempty"`
}

func (f *File) Validate() error {
	if f.Sha1 == "" {
		return errors.Errorf("file entry missing required field %q", "sha1")
	}
	if f.Compression == "" {
		return errors.Errorf("file entry missing required field %q", "compression")
	}
	if !f.Compression.Valid() {
		return errors.Errorf("file entry has unknown compression %q", f.Compression)
	}
	return nil
}
