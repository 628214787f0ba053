package apiclient

import (
	"context"

	"imgapi-client/internal/clientmodels"
	"imgapi-client/internal/helpers"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DownloadImageFile streams the image's file artifact to destinationPath and
// returns the bytes written. The id is validated before any request; the
// caller is responsible for checking the artifact against the manifest's
// sha1.
func DownloadImageFile(ctx context.Context, config HostConfig, imageId string, destinationPath string) (int64, error) {
	if _, err := uuid.Parse(imageId); err != nil {
		return 0, &clientmodels.ValidationError{
			Field:  "image id",
			Value:  imageId,
			Reason: "image id must be a valid UUID",
		}
	}

	baseUrl, err := helpers.GetCatalogBaseUrl(config.Host)
	if err != nil {
		return 0, err
	}
	requestUrl := helpers.JoinUrlPath(baseUrl, imageId) + "/file"

	client := helpers.NewHttpCaller(ctx, config.DisableTlsValidation, config.Timeout)

	written, err := client.DownloadFileFromUrl(requestUrl, destinationPath)
	if err != nil {
		return 0, err
	}

	logrus.Debugf("downloaded %d bytes from %s", written, requestUrl)
	return written, nil
}
