package platform

import (
	"errors"

	"github.com/go-resty/resty/v2"
	"github.com/projhub/projhub-cli/helper"
)

// ErrNoToken means no session token is stored for the active remote; the
// caller should be sent through the login flow before any request is made.
var ErrNoToken = errors.New("no session token found, maybe try `projhub login`")

var ErrNoURL = errors.New("API URL is not defined, maybe try `projhub configure remote`")

// Client builds a resty client for the active remote with the stored session
// token attached as a bearer Authorization header.
func Client(verbose bool) (*resty.Client, error) {
	token := helper.CurrentConfig("token")
	if token == "" {
		return nil, ErrNoToken
	}

	client, err := AnonymousClient(verbose)
	if err != nil {
		return nil, err
	}
	client.SetHeader("Authorization", "Bearer "+token)

	return client, nil
}

// AnonymousClient builds a resty client for the active remote without
// credentials, for the login call and the public endpoints.
func AnonymousClient(verbose bool) (*resty.Client, error) {
	baseURL := helper.CurrentConfig("url")
	if baseURL == "" {
		return nil, ErrNoURL
	}

	client := resty.New()
	client.SetHostURL(baseURL)
	client.SetDebug(verbose)

	return client, nil
}
