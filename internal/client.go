package internal

import (
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
)

// HTTPClient performs HTTP requests. It's implemented by *http.Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	http     HTTPClient
	endpoint *url.URL
	header   http.Header
}

func NewClient(c HTTPClient, endpoint string) (*Client, error) {
	if c == nil {
		c = http.DefaultClient
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, err
	}
	if u.Path == "" {
		// This is important to avoid issues with path.Join
		u.Path = "/"
	}
	return &Client{http: c, endpoint: u, header: make(http.Header)}, nil
}

// Host returns the host the client was configured with.
func (c *Client) Host() string {
	return c.endpoint.Host
}

// SetHeader sets a header on every request issued by the client.
func (c *Client) SetHeader(key, value string) {
	c.header.Set(key, value)
}

func (c *Client) SetBasicAuth(username, password string) {
	c.header.Set("Authorization", "Basic "+basicAuth(username, password))
}

func (c *Client) ResolveHref(p string) *url.URL {
	if !strings.HasPrefix(p, "/") {
		p = path.Join(c.endpoint.Path, p)
	}
	return &url.URL{
		Scheme: c.endpoint.Scheme,
		User:   c.endpoint.User,
		Host:   c.endpoint.Host,
		Path:   p,
	}
}

func (c *Client) NewRequest(method string, uri string, body io.Reader) (*http.Request, error) {
	u := uri
	if !strings.Contains(uri, "://") {
		u = c.ResolveHref(uri).String()
	}
	req, err := http.NewRequest(method, u, body)
	if err != nil {
		return nil, err
	}
	for k, vs := range c.header {
		for _, v := range vs {
			req.Header.Set(k, v)
		}
	}
	return req, nil
}

func (c *Client) NewXMLRequest(method string, uri string, v interface{}) (*http.Request, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	if err := xml.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}

	req, err := c.NewRequest(method, uri, &buf)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/atom+xml; charset=\"utf-8\"")

	return req, nil
}

// Do sends the request. A non-2xx response is drained and reported as a
// *RequestError carrying the status code, reason phrase and body.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode/100 != 2 {
		defer resp.Body.Close()

		var buf bytes.Buffer
		io.Copy(&buf, resp.Body)
		return nil, &RequestError{
			Status: resp.StatusCode,
			Reason: reasonPhrase(resp),
			Body:   buf.String(),
		}
	}
	return resp, nil
}

// DoXML sends the request and decodes the XML response body into v. A nil v
// drains and discards the body.
func (c *Client) DoXML(req *http.Request, v interface{}) error {
	resp, err := c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if v == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	return xml.NewDecoder(resp.Body).Decode(v)
}

func reasonPhrase(resp *http.Response) string {
	s := strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode))
	return strings.TrimSpace(s)
}

func basicAuth(username, password string) string {
	return base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
}
