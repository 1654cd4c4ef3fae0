package mock

import "context"

// HttpResponsePosterStub -
type HttpResponsePosterStub struct {
	PostCalled func(ctx context.Context, url string, request interface{}, response interface{}) error
}

// Post -
func (stub *HttpResponsePosterStub) Post(ctx context.Context, url string, request interface{}, response interface{}) error {
	if stub.PostCalled != nil {
		return stub.PostCalled(ctx, url, request, response)
	}

	return nil
}
