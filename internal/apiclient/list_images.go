package apiclient

import (
	"context"

	"imgapi-client/internal/apiclient/apimodels"
	"imgapi-client/internal/clientmodels"
	"imgapi-client/internal/helpers"

	"github.com/sirupsen/logrus"
)

// ListImages fetches the catalog entries matching filter. A nil filter
// requests the whole catalog. The response is decoded as one JSON array;
// a single bad element fails the call, there are no partial results.
func ListImages(ctx context.Context, config HostConfig, filter *ImageFilter) ([]apimodels.Image, error) {
	baseUrl, err := helpers.GetCatalogBaseUrl(config.Host)
	if err != nil {
		return nil, err
	}

	requestUrl := baseUrl
	if filter != nil {
		if query := filter.QueryString(); query != "" {
			requestUrl = baseUrl + "?" + query
		}
	}

	client := helpers.NewHttpCaller(ctx, config.DisableTlsValidation, config.Timeout)

	var images []apimodels.Image
	if _, err := client.GetDataFromClient(requestUrl, nil, &images); err != nil {
		return nil, err
	}

	for idx := range images {
		if err := images[idx].Validate(); err != nil {
			return nil, &clientmodels.DecodeError{Url: requestUrl, Cause: err}
		}
	}

	logrus.Debugf("found %d image(s) in catalog %s", len(images), baseUrl)
	return images, nil
}
