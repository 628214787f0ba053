package apiclient

import (
	"context"

	"imgapi-client/internal/apiclient/apimodels"
	"imgapi-client/internal/constants"
	"imgapi-client/internal/helpers"
)

// ListChannels fetches the distribution channels the service exposes.
// Servers not running with channel support answer 404 here.
func ListChannels(ctx context.Context, config HostConfig) ([]apimodels.Channel, error) {
	hostUrl, err := helpers.GetHostUrl(config.Host)
	if err != nil {
		return nil, err
	}
	requestUrl := hostUrl + constants.CHANNELS_PATH

	client := helpers.NewHttpCaller(ctx, config.DisableTlsValidation, config.Timeout)

	var channels []apimodels.Channel
	if _, err := client.GetDataFromClient(requestUrl, nil, &channels); err != nil {
		return nil, err
	}

	return channels, nil
}
