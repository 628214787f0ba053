package apiclient

import (
	"context"

	"imgapi-client/internal/apiclient/apimodels"
	"imgapi-client/internal/clientmodels"
	"imgapi-client/internal/helpers"

	"github.com/google/uuid"
)

// GetImage fetches a single catalog entry by id. The id is validated
// locally first; no request goes out for a malformed id.
func GetImage(ctx context.Context, config HostConfig, imageId string) (*apimodels.Image, error) {
	if _, err := uuid.Parse(imageId); err != nil {
		return nil, &clientmodels.ValidationError{
			Field:  "image id",
			Value:  imageId,
			Reason: "image id must be a valid UUID",
		}
	}

	baseUrl, err := helpers.GetCatalogBaseUrl(config.Host)
	if err != nil {
		return nil, err
	}
	requestUrl := helpers.JoinUrlPath(baseUrl, imageId)

	client := helpers.NewHttpCaller(ctx, config.DisableTlsValidation, config.Timeout)

	var image apimodels.Image
	if _, err := client.GetDataFromClient(requestUrl, nil, &image); err != nil {
		return nil, err
	}
	if err := image.Validate(); err != nil {
		return nil, &clientmodels.DecodeError{Url: requestUrl, Cause: err}
	}

	return &image, nil
}
