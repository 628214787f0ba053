package apiclient

import (
	"context"

	"imgapi-client/internal/apiclient/apimodels"
	"imgapi-client/internal/constants"
	"imgapi-client/internal/helpers"
)

// Ping checks that the service is reachable and reports its version.
func Ping(ctx context.Context, config HostConfig) (*apimodels.PingResponse, error) {
	hostUrl, err := helpers.GetHostUrl(config.Host)
	if err != nil {
		return nil, err
	}
	requestUrl := hostUrl + constants.PING_PATH

	client := helpers.NewHttpCaller(ctx, config.DisableTlsValidation, config.Timeout)

	var ping apimodels.PingResponse
	if _, err := client.GetDataFromClient(requestUrl, nil, &ping); err != nil {
		return nil, err
	}

	return &ping, nil
}
