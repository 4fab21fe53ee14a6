// Package contacts implements a client for the Google Contacts GData API.
//
// The API exposes four resource kinds: contact entries, contact groups,
// domain profiles and contact photos, all reachable under the /m8/feeds
// hierarchy. Every operation is a single synchronous HTTP round trip; the
// package keeps no state beyond the client configuration.
package contacts

import (
	"net/url"
	"strings"
)

// Kind selects the type of feed a URI is built for.
type Kind string

const (
	KindContacts Kind = "contacts"
	KindGroups   Kind = "groups"
	KindProfiles Kind = "profiles"
)

const (
	// DefaultContactList is the contact list of the authenticated user.
	DefaultContactList = "default"

	// DefaultProjection selects the complete representation of each entry.
	DefaultProjection = "full"

	// DefaultBatchPath is the batch endpoint for the default contacts feed.
	DefaultBatchPath = "/m8/feeds/contacts/default/full/batch"

	// DefaultProfilesBatchPath is the batch endpoint for the default profiles
	// feed.
	DefaultProfilesBatchPath = "/m8/feeds/profiles/default/full/batch"
)

// Default feed paths used by the query builders.
const (
	defaultContactsFeed = "/m8/feeds/contacts/default/full"
	defaultGroupsFeed   = "/m8/feeds/groups/default/full"
	defaultProfilesFeed = "/m8/feeds/profiles/default/full"
)

// A ContactsQuery builds the URI of a contacts feed request. The zero value
// queries the default contacts feed.
type ContactsQuery struct {
	// Feed is the base feed path. Empty selects the default contacts feed.
	Feed string
	// Text is a free-text search term, sent as the q parameter.
	Text string
	// Categories restricts the feed to the given categories. They are added
	// to the feed path, not the query string.
	Categories []string
	// Group restricts results to members of a single group, identified by
	// the group entry's ID URI. Sent as the group parameter only when set.
	Group string
	// Params holds additional URL parameters.
	Params url.Values
}

// URI compiles the query into a feed URI with an encoded query string.
func (q *ContactsQuery) URI() string {
	extra := url.Values{}
	if q.Group != "" {
		extra.Set("group", q.Group)
	}
	return buildQueryURI(q.Feed, defaultContactsFeed, q.Text, q.Categories, q.Params, extra)
}

// A GroupsQuery builds the URI of a groups feed request. The zero value
// queries the default groups feed.
type GroupsQuery struct {
	Feed       string
	Text       string
	Categories []string
	Params     url.Values
}

func (q *GroupsQuery) URI() string {
	return buildQueryURI(q.Feed, defaultGroupsFeed, q.Text, q.Categories, q.Params, nil)
}

// A ProfilesQuery builds the URI of a profiles feed request. The zero value
// queries the default profiles feed.
type ProfilesQuery struct {
	Feed       string
	Text       string
	Categories []string
	Params     url.Values
}

func (q *ProfilesQuery) URI() string {
	return buildQueryURI(q.Feed, defaultProfilesFeed, q.Text, q.Categories, q.Params, nil)
}

func buildQueryURI(feed, defaultFeed, text string, categories []string, params, extra url.Values) string {
	if feed == "" {
		feed = defaultFeed
	}
	if len(categories) > 0 {
		escaped := make([]string, len(categories))
		for i, c := range categories {
			escaped[i] = url.PathEscape(c)
		}
		feed += "/-/" + strings.Join(escaped, "/")
	}

	values := url.Values{}
	for k, vs := range params {
		values[k] = vs
	}
	for k, vs := range extra {
		values[k] = vs
	}
	if text != "" {
		values.Set("q", text)
	}
	if len(values) == 0 {
		return feed
	}
	return feed + "?" + values.Encode()
}

// A PhotoTarget identifies a contact photo: either an explicit URI, or a
// contact entry whose photo links are consulted.
type PhotoTarget interface {
	photoLink() string
	photoEditLink() string
}

// PhotoURI is a photo URI used directly as a PhotoTarget.
type PhotoURI string

func (u PhotoURI) photoLink() string     { return string(u) }
func (u PhotoURI) photoEditLink() string { return string(u) }
