package gdata

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/jamuseum/go-gdata/internal"
)

// HTTPClient performs HTTP requests. It's implemented by *http.Client.
type HTTPClient = internal.HTTPClient

// Client is a generic GData service: it issues authenticated GET, POST, PUT
// and DELETE requests against a single server and decodes Atom responses.
//
// The configuration (server, headers) is fixed after construction; a Client
// holds no other state across calls.
type Client struct {
	ic     *internal.Client
	server string
}

// NewClient creates a client for the given server hostname. An empty server
// selects DefaultServer. If c is nil, http.DefaultClient is used.
func NewClient(c HTTPClient, server string) (*Client, error) {
	if server == "" {
		server = DefaultServer
	}
	ic, err := internal.NewClient(c, "http://"+server)
	if err != nil {
		return nil, err
	}
	ic.SetHeader(VersionHeader, DefaultVersion)
	return &Client{ic: ic, server: server}, nil
}

// Server returns the configured server hostname.
func (c *Client) Server() string {
	return c.server
}

// SetAuthToken sets a GoogleLogin authorization token on every request.
func (c *Client) SetAuthToken(token string) {
	c.ic.SetHeader("Authorization", "GoogleLogin auth="+token)
}

// SetAuthorization sets a raw Authorization header value, for callers that
// obtain credentials through another scheme.
func (c *Client) SetAuthorization(value string) {
	c.ic.SetHeader("Authorization", value)
}

func (c *Client) SetBasicAuth(username, password string) {
	c.ic.SetBasicAuth(username, password)
}

// SetVersion overrides the GData protocol version requested by the client.
func (c *Client) SetVersion(version string) {
	c.ic.SetHeader(VersionHeader, version)
}

// CleanURI strips the http://<server> prefix from a server-issued URI,
// keeping the leading slash, so that edit links can be reissued against the
// configured connection. URIs with another scheme or host pass through
// unchanged.
func (c *Client) CleanURI(uri string) string {
	prefix := "http://" + c.server
	if strings.HasPrefix(uri, prefix) {
		return uri[len(prefix):]
	}
	return uri
}

// Get issues a GET request and decodes the XML response into v. A nil v
// discards the response body.
func (c *Client) Get(uri string, params url.Values, v interface{}) error {
	req, err := c.ic.NewRequest(http.MethodGet, withParams(uri, params), nil)
	if err != nil {
		return err
	}
	return c.ic.DoXML(req, v)
}

// GetMedia issues a GET request and returns the raw response body.
func (c *Client) GetMedia(uri string) ([]byte, error) {
	req, err := c.ic.NewRequest(http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.ic.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// Post serializes entry as Atom XML, issues a POST request and decodes the
// response into v.
func (c *Client) Post(entry interface{}, uri string, params url.Values, v interface{}) error {
	req, err := c.ic.NewXMLRequest(http.MethodPost, withParams(uri, params), entry)
	if err != nil {
		return err
	}
	return c.ic.DoXML(req, v)
}

// Put serializes entry as Atom XML, issues a PUT request and decodes the
// response into v.
func (c *Client) Put(entry interface{}, uri string, params url.Values, v interface{}) error {
	req, err := c.ic.NewXMLRequest(http.MethodPut, withParams(uri, params), entry)
	if err != nil {
		return err
	}
	return c.ic.DoXML(req, v)
}

// PutMedia issues a PUT request carrying a binary payload, for example a
// contact photo.
func (c *Client) PutMedia(media *MediaSource, uri string) error {
	if media.ContentType == "" {
		return fmt.Errorf("gdata: media source has no content type")
	}
	req, err := c.ic.NewRequest(http.MethodPut, uri, media.Data)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", media.ContentType)
	if media.ContentLength > 0 {
		req.ContentLength = media.ContentLength
		req.Header.Set("Content-Length", strconv.FormatInt(media.ContentLength, 10))
	}
	return c.ic.DoXML(req, nil)
}

// Delete issues a DELETE request.
func (c *Client) Delete(uri string, params url.Values) error {
	req, err := c.ic.NewRequest(http.MethodDelete, withParams(uri, params), nil)
	if err != nil {
		return err
	}
	// Entries are deleted regardless of intervening updates.
	req.Header.Set("If-Match", "*")
	return c.ic.DoXML(req, nil)
}

func withParams(uri string, params url.Values) string {
	if len(params) == 0 {
		return uri
	}
	sep := "?"
	if strings.Contains(uri, "?") {
		sep = "&"
	}
	return uri + sep + params.Encode()
}
