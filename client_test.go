package gdata

import (
	"encoding/xml"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.Client(), strings.TrimPrefix(srv.URL, "http://"))
	if err != nil {
		t.Fatalf("NewClient() = %v", err)
	}
	return c
}

func TestClient_CleanURI(t *testing.T) {
	c, err := NewClient(nil, "www.google.com")
	if err != nil {
		t.Fatalf("NewClient() = %v", err)
	}

	tests := []struct {
		uri  string
		want string
	}{
		{"http://www.google.com/m8/feeds/contacts/default/full/1", "/m8/feeds/contacts/default/full/1"},
		{"/m8/feeds/contacts/default/full/1", "/m8/feeds/contacts/default/full/1"},
		// Only the http scheme against the exact configured host is stripped.
		{"https://www.google.com/m8/feeds/contacts/default/full/1", "https://www.google.com/m8/feeds/contacts/default/full/1"},
		{"http://example.org/m8/feeds/contacts/default/full/1", "http://example.org/m8/feeds/contacts/default/full/1"},
	}
	for _, test := range tests {
		if got := c.CleanURI(test.uri); got != test.want {
			t.Errorf("CleanURI(%q) = %q, expected %q", test.uri, got, test.want)
		}
	}
}

func TestClient_Get(t *testing.T) {
	var gotPath, gotQuery, gotVersion string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotVersion = r.Header.Get(VersionHeader)
		w.Write([]byte(`<?xml version="1.0"?><entry><title>Alice</title></entry>`))
	})

	var v struct {
		Title string `xml:"title"`
	}
	params := url.Values{"max-results": {"5"}}
	if err := c.Get("/m8/feeds/contacts/default/full", params, &v); err != nil {
		t.Fatalf("Get() = %v", err)
	}

	if gotPath != "/m8/feeds/contacts/default/full" {
		t.Errorf("path = %q", gotPath)
	}
	if gotQuery != "max-results=5" {
		t.Errorf("query = %q, expected %q", gotQuery, "max-results=5")
	}
	if gotVersion != DefaultVersion {
		t.Errorf("%v = %q, expected %q", VersionHeader, gotVersion, DefaultVersion)
	}
	if v.Title != "Alice" {
		t.Errorf("decoded title = %q, expected %q", v.Title, "Alice")
	}
}

func TestClient_Get_requestError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("no such feed"))
	})

	err := c.Get("/m8/feeds/contacts/default/full", nil, nil)
	reqErr, ok := err.(*RequestError)
	if !ok {
		t.Fatalf("Get() = %v (%T), expected *RequestError", err, err)
	}
	if reqErr.Status != http.StatusNotFound || reqErr.Reason != "Not Found" || reqErr.Body != "no such feed" {
		t.Errorf("RequestError = %+v", *reqErr)
	}
	if !IsNotFound(err) {
		t.Errorf("IsNotFound() = false, expected true")
	}
}

func TestClient_Post_sendsAtom(t *testing.T) {
	var gotContentType, gotBody string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`<?xml version="1.0"?><entry></entry>`))
	})

	entry := struct {
		XMLName xml.Name `xml:"entry"`
		Title   string   `xml:"title"`
	}{Title: "Bob"}

	if err := c.Post(&entry, "/m8/feeds/contacts/default/full", nil, nil); err != nil {
		t.Fatalf("Post() = %v", err)
	}
	if !strings.HasPrefix(gotContentType, "application/atom+xml") {
		t.Errorf("Content-Type = %q", gotContentType)
	}
	if !strings.Contains(gotBody, "<title>Bob</title>") {
		t.Errorf("body = %q, expected a serialized entry", gotBody)
	}
}

func TestClient_PutMedia(t *testing.T) {
	var gotContentType, gotBody string
	var gotLength int64
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		gotContentType = r.Header.Get("Content-Type")
		gotLength = r.ContentLength
	})

	media := NewMediaSourceFromBytes([]byte("binary photo data"), "image/jpeg")
	if err := c.PutMedia(media, "/m8/feeds/photos/media/default/1"); err != nil {
		t.Fatalf("PutMedia() = %v", err)
	}

	if gotContentType != "image/jpeg" {
		t.Errorf("Content-Type = %q, expected %q", gotContentType, "image/jpeg")
	}
	if gotLength != int64(len("binary photo data")) {
		t.Errorf("Content-Length = %v, expected %v", gotLength, len("binary photo data"))
	}
	if gotBody != "binary photo data" {
		t.Errorf("body = %q", gotBody)
	}
}

func TestClient_PutMedia_missingContentType(t *testing.T) {
	c, err := NewClient(nil, "www.google.com")
	if err != nil {
		t.Fatalf("NewClient() = %v", err)
	}
	media := NewMediaSource(strings.NewReader("x"), "", 1)
	if err := c.PutMedia(media, "/photo"); err == nil {
		t.Error("PutMedia() with no content type returned a nil error")
	}
}

func TestClient_GetMedia(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte{0x89, 'P', 'N', 'G'})
	})

	b, err := c.GetMedia("/m8/feeds/photos/media/default/1")
	if err != nil {
		t.Fatalf("GetMedia() = %v", err)
	}
	if string(b) != "\x89PNG" {
		t.Errorf("GetMedia() = %q", b)
	}
}

func TestClient_Delete(t *testing.T) {
	var gotMethod, gotIfMatch string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotIfMatch = r.Header.Get("If-Match")
	})

	if err := c.Delete("/m8/feeds/contacts/default/full/1", nil); err != nil {
		t.Fatalf("Delete() = %v", err)
	}
	if gotMethod != http.MethodDelete {
		t.Errorf("method = %q", gotMethod)
	}
	if gotIfMatch != "*" {
		t.Errorf("If-Match = %q, expected %q", gotIfMatch, "*")
	}
}
