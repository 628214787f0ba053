package helpers

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"reflect"
	"time"

	"imgapi-client/internal/clientmodels"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type HttpCallerVerb string

const HttpCallerVerbGet HttpCallerVerb = "GET"

func (v HttpCallerVerb) String() string {
	return string(v)
}

type HttpCaller struct {
	ctx                    context.Context
	disableTlsVerification bool
	timeout                time.Duration
}

type HttpCallerResponse struct {
	StatusCode int
	Data       interface{}
	ApiError   *clientmodels.APIErrorResponse
}

// NewHttpCaller builds a caller for one operation. A zero timeout imposes
// none; cancellation rides on ctx either way.
func NewHttpCaller(ctx context.Context, disableTlsVerification bool, timeout time.Duration) *HttpCaller {
	return &HttpCaller{
		ctx:                    ctx,
		disableTlsVerification: disableTlsVerification,
		timeout:                timeout,
	}
}

func (c *HttpCaller) GetDataFromClient(url string, headers map[string]string, destination interface{}) (*HttpCallerResponse, error) {
	return c.RequestDataToClient(HttpCallerVerbGet, url, headers, destination)
}

func (c *HttpCaller) RequestDataToClient(verb HttpCallerVerb, url string, headers map[string]string, destination interface{}) (*HttpCallerResponse, error) {
	logrus.Debugf("%v data from %s", verb, url)
	clientResponse := HttpCallerResponse{}

	if destination != nil {
		destType := reflect.TypeOf(destination)
		if destType.Kind() != reflect.Ptr {
			return &clientResponse, errors.New("destination must be a pointer type")
		}
	}

	if url == "" {
		return &clientResponse, errors.New("url cannot be empty")
	}

	req, err := http.NewRequestWithContext(c.ctx, verb.String(), url, nil)
	if err != nil {
		return &clientResponse, &clientmodels.UrlConstructionError{Base: url, Cause: err}
	}

	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	response, err := c.httpClient().Do(req)
	if err != nil {
		return &clientResponse, &clientmodels.TransportError{Url: url, Cause: err}
	}
	defer response.Body.Close()

	clientResponse.StatusCode = response.StatusCode
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		var apiError clientmodels.APIErrorResponse
		body, bodyErr := io.ReadAll(response.Body)
		if bodyErr == nil {
			if err := json.Unmarshal(body, &apiError); err == nil {
				clientResponse.ApiError = &apiError
			}
		}
		if clientResponse.ApiError == nil {
			clientResponse.ApiError = &clientmodels.APIErrorResponse{
				Code: http.StatusText(response.StatusCode),
			}
		}
		logrus.Debugf("error getting data from %s, status code: %d", url, response.StatusCode)
		return &clientResponse, &clientmodels.TransportError{
			Url:        url,
			StatusCode: response.StatusCode,
			ApiError:   clientResponse.ApiError,
		}
	}

	if destination != nil {
		body, err := io.ReadAll(response.Body)
		if err != nil {
			return &clientResponse, &clientmodels.TransportError{Url: url, Cause: errors.Wrap(err, "reading response body")}
		}
		if err := json.Unmarshal(body, destination); err != nil {
			return &clientResponse, &clientmodels.DecodeError{Url: url, Cause: err}
		}
		clientResponse.Data = destination
	}

	return &clientResponse, nil
}

// DownloadFileFromUrl streams url into destinationPath and returns the bytes
// written. The destination file is only created once the request succeeds.
func (c *HttpCaller) DownloadFileFromUrl(url string, destinationPath string) (int64, error) {
	logrus.Debugf("downloading %s to %s", url, destinationPath)

	req, err := http.NewRequestWithContext(c.ctx, HttpCallerVerbGet.String(), url, nil)
	if err != nil {
		return 0, &clientmodels.UrlConstructionError{Base: url, Cause: err}
	}

	response, err := c.httpClient().Do(req)
	if err != nil {
		return 0, &clientmodels.TransportError{Url: url, Cause: err}
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return 0, &clientmodels.TransportError{Url: url, StatusCode: response.StatusCode}
	}

	file, err := os.Create(destinationPath)
	if err != nil {
		return 0, errors.Wrapf(err, "creating %s", destinationPath)
	}
	defer file.Close()

	written, err := io.Copy(file, response.Body)
	if err != nil {
		return written, errors.Wrapf(err, "writing %s", destinationPath)
	}
	return written, nil
}

func (c *HttpCaller) httpClient() *http.Client {
	if !c.disableTlsVerification && c.timeout == 0 {
		return http.DefaultClient
	}
	client := &http.Client{Timeout: c.timeout}
	if c.disableTlsVerification {
		client.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}
	return client
}
