package aggregator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const requestTimeout = time.Second * 10

type httpResponseGetter struct {
	client *http.Client
}

// NewHttpResponseGetter returns a new instance of a httpResponseGetter
func NewHttpResponseGetter() (*httpResponseGetter, error) {
	return &httpResponseGetter{
		client: &http.Client{
			Timeout: requestTimeout,
		},
	}, nil
}

// Get will execute a get operation on the provided URL and unmarshal the JSON body
// in the provided response object. Network failures, timeouts and non-2xx status
// codes are all reported as ErrEndpointUnavailable
func (getter *httpResponseGetter) Get(ctx context.Context, url string, response interface{}) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := getter.client.Do(request)
	if err != nil {
		return fmt.Errorf("%w, %s", ErrEndpointUnavailable, err.Error())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w, status code %d for url %s", ErrEndpointUnavailable, resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w, %s", ErrEndpointUnavailable, err.Error())
	}

	return json.Unmarshal(body, response)
}

type httpResponsePoster struct {
	client *http.Client
}

// NewHttpResponsePoster returns a new instance of a httpResponsePoster
func NewHttpResponsePoster() (*httpResponsePoster, error) {
	return &httpResponsePoster{
		client: &http.Client{
			Timeout: requestTimeout,
		},
	}, nil
}

// Post will marshal the provided request object, execute a JSON post operation on
// the provided URL and unmarshal the body in the provided response object
func (poster *httpResponsePoster) Post(ctx context.Context, url string, requestBody interface{}, response interface{}) error {
	payload, err := json.Marshal(requestBody)
	if err != nil {
		return err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/json")

	resp, err := poster.client.Do(request)
	if err != nil {
		return fmt.Errorf("%w, %s", ErrEndpointUnavailable, err.Error())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w, status code %d for url %s", ErrEndpointUnavailable, resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w, %s", ErrEndpointUnavailable, err.Error())
	}

	return json.Unmarshal(body, response)
}
