// Package gdata implements a client for Google Data (GData) APIs.
//
// GData is an Atom-based HTTP protocol: feeds of entries are fetched with
// GET, created with POST, and mutated with PUT and DELETE against
// server-issued edit URIs. This package provides the generic request layer;
// protocol bindings such as the contacts subpackage sit on top of it.
package gdata

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"

	"github.com/jamuseum/go-gdata/internal"
)

const (
	// VersionHeader is the HTTP header carrying the GData protocol version.
	VersionHeader = "GData-Version"

	// DefaultVersion is the protocol version requested by default.
	DefaultVersion = "3.0"

	// DefaultServer is the host GData requests are sent to when none is
	// configured.
	DefaultServer = "www.google.com"
)

// RequestError reports a non-success HTTP response. The status code, reason
// phrase and response body are carried verbatim from the server.
type RequestError = internal.RequestError

// IsNotFound returns true if err reports an HTTP 404.
func IsNotFound(err error) bool {
	return internal.IsNotFound(err)
}

// A MediaSource wraps a binary payload, for example a contact photo, together
// with its content type and length.
type MediaSource struct {
	Data          io.ReadCloser
	ContentType   string
	ContentLength int64
}

// NewMediaSource wraps an open reader. The caller must supply the content
// length, since a bare reader has no intrinsic size.
func NewMediaSource(r io.Reader, contentType string, contentLength int64) *MediaSource {
	rc, ok := r.(io.ReadCloser)
	if !ok {
		rc = io.NopCloser(r)
	}
	return &MediaSource{Data: rc, ContentType: contentType, ContentLength: contentLength}
}

// NewMediaSourceFromBytes wraps an in-memory payload.
func NewMediaSourceFromBytes(b []byte, contentType string) *MediaSource {
	return &MediaSource{
		Data:          io.NopCloser(bytes.NewReader(b)),
		ContentType:   contentType,
		ContentLength: int64(len(b)),
	}
}

// NewMediaSourceFromPath opens the named file, inferring the content length
// from the file size. If contentType is empty it is guessed from the file
// extension. The caller is responsible for closing the source.
func NewMediaSourceFromPath(p string, contentType string) (*MediaSource, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(p))
	}
	if contentType == "" {
		f.Close()
		return nil, fmt.Errorf("gdata: cannot determine content type of %v", p)
	}
	return &MediaSource{Data: f, ContentType: contentType, ContentLength: fi.Size()}, nil
}

// Close closes the underlying reader.
func (ms *MediaSource) Close() error {
	return ms.Data.Close()
}
