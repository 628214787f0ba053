package helpers

import (
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/url"
	"os"
	"strings"

	"imgapi-client/internal/clientmodels"
	"imgapi-client/internal/constants"

	"github.com/pkg/errors"
)

func Sha256Hash(input string) string {
	hashed := sha256.Sum256([]byte(input))
	return hex.EncodeToString(hashed[:])
}

// Sha1HashOfFile streams path through SHA-1 for integrity checks against
// manifest file digests.
func Sha1HashOfFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	hasher := sha1.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return "", errors.Wrapf(err, "hashing %s", path)
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// GetHostUrl normalizes a configured host, defaulting the scheme to https
// and dropping any trailing slash. The result is validated as a URL.
func GetHostUrl(host string) (string, error) {
	if host == "" {
		return "", &clientmodels.UrlConstructionError{Base: host, Cause: errors.New("host cannot be empty")}
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "https://" + host
	}
	host = strings.TrimSuffix(host, "/")

	parsed, err := url.Parse(host)
	if err != nil {
		return "", &clientmodels.UrlConstructionError{Base: host, Cause: err}
	}
	if parsed.Host == "" {
		return "", &clientmodels.UrlConstructionError{Base: host, Cause: errors.New("host has no authority part")}
	}
	return host, nil
}

// GetCatalogBaseUrl returns the images endpoint for a configured host.
func GetCatalogBaseUrl(host string) (string, error) {
	hostUrl, err := GetHostUrl(host)
	if err != nil {
		return "", err
	}
	return hostUrl + constants.IMAGES_PATH, nil
}

// JoinUrlPath appends one escaped path segment to base.
func JoinUrlPath(base string, segment string) string {
	return strings.TrimSuffix(base, "/") + "/" + url.PathEscape(segment)
}
