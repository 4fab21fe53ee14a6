package contacts

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/jamuseum/go-gdata"
)

// ErrNoPhotoLink is returned when a photo operation targets a contact entry
// that carries no photo (or photo edit) link.
var ErrNoPhotoLink = errors.New("contacts: entry has no photo link")

// Client provides access to the Google Contacts service.
//
// Mutating operations must target a server-issued edit URI; the client never
// derives one itself, it only strips a matching http://<server> prefix
// before reissuing the request.
type Client struct {
	*gdata.Client

	contactList string
}

// NewClient creates a client for the given server hostname and default
// contact list. Empty arguments select gdata.DefaultServer and
// DefaultContactList. If c is nil, http.DefaultClient is used.
func NewClient(c gdata.HTTPClient, server, contactList string) (*Client, error) {
	gc, err := gdata.NewClient(c, server)
	if err != nil {
		return nil, err
	}
	if contactList == "" {
		contactList = DefaultContactList
	}
	return &Client{Client: gc, contactList: contactList}, nil
}

// FeedURI builds a feed URI for the given kind. Empty arguments select the
// defaults: the contacts kind, the client's contact list and the full
// projection. For the profiles kind the contact list is rewritten to the
// domain/<contactList> path segment. When scheme is empty the result is a
// host-relative path.
func (c *Client) FeedURI(kind Kind, contactList, projection, scheme string) string {
	if kind == "" {
		kind = KindContacts
	}
	if contactList == "" {
		contactList = c.contactList
	}
	if projection == "" {
		projection = DefaultProjection
	}
	if kind == KindProfiles {
		contactList = "domain/" + contactList
	}
	prefix := ""
	if scheme != "" {
		prefix = scheme + "://" + c.Server()
	}
	return fmt.Sprintf("%v/m8/feeds/%v/%v/%v", prefix, kind, contactList, projection)
}

// ListContacts fetches a contacts feed. An empty uri selects the default
// contacts feed.
func (c *Client) ListContacts(uri string) (*ContactsFeed, error) {
	if uri == "" {
		uri = c.FeedURI(KindContacts, "", "", "")
	}
	var feed ContactsFeed
	if err := c.Get(uri, nil, &feed); err != nil {
		return nil, err
	}
	return &feed, nil
}

// QueryContacts fetches the contacts feed selected by the query.
func (c *Client) QueryContacts(q *ContactsQuery) (*ContactsFeed, error) {
	return c.ListContacts(q.URI())
}

// GetContact fetches a single contact entry. There is no default entry URI;
// uri must name one, typically an entry's self link.
func (c *Client) GetContact(uri string) (*ContactEntry, error) {
	if uri == "" {
		return nil, fmt.Errorf("contacts: no contact URI given")
	}
	var entry ContactEntry
	if err := c.Get(uri, nil, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// CreateContact adds a new contact and returns the server's representation
// of it. An empty insertURI selects the default contacts feed.
func (c *Client) CreateContact(entry *ContactEntry, insertURI string, params url.Values) (*ContactEntry, error) {
	if insertURI == "" {
		insertURI = c.FeedURI(KindContacts, "", "", "")
	}
	var created ContactEntry
	if err := c.Post(entry, insertURI, params, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateContact replaces the contact stored at editURI and returns the
// server's representation of it.
func (c *Client) UpdateContact(editURI string, entry *ContactEntry, params url.Values) (*ContactEntry, error) {
	var updated ContactEntry
	if err := c.Put(entry, c.CleanURI(editURI), params, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteContact removes the contact stored at editURI.
func (c *Client) DeleteContact(editURI string, params url.Values) error {
	return c.Delete(c.CleanURI(editURI), params)
}

// ListGroups fetches a groups feed. An empty uri selects the default groups
// feed.
func (c *Client) ListGroups(uri string) (*GroupsFeed, error) {
	if uri == "" {
		uri = c.FeedURI(KindGroups, "", "", "")
	}
	var feed GroupsFeed
	if err := c.Get(uri, nil, &feed); err != nil {
		return nil, err
	}
	return &feed, nil
}

// QueryGroups fetches the groups feed selected by the query.
func (c *Client) QueryGroups(q *GroupsQuery) (*GroupsFeed, error) {
	return c.ListGroups(q.URI())
}

// GetGroup fetches a single group entry.
func (c *Client) GetGroup(uri string) (*GroupEntry, error) {
	if uri == "" {
		return nil, fmt.Errorf("contacts: no group URI given")
	}
	var entry GroupEntry
	if err := c.Get(uri, nil, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// CreateGroup adds a new contact group. An empty insertURI selects the
// default groups feed.
func (c *Client) CreateGroup(entry *GroupEntry, insertURI string, params url.Values) (*GroupEntry, error) {
	if insertURI == "" {
		insertURI = c.FeedURI(KindGroups, "", "", "")
	}
	var created GroupEntry
	if err := c.Post(entry, insertURI, params, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateGroup replaces the group stored at editURI.
func (c *Client) UpdateGroup(editURI string, entry *GroupEntry, params url.Values) (*GroupEntry, error) {
	var updated GroupEntry
	if err := c.Put(entry, c.CleanURI(editURI), params, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteGroup removes the group stored at editURI.
func (c *Client) DeleteGroup(editURI string, params url.Values) error {
	return c.Delete(c.CleanURI(editURI), params)
}

// ListProfiles fetches a profiles feed. An empty uri selects the default
// domain profiles feed.
func (c *Client) ListProfiles(uri string) (*ProfilesFeed, error) {
	if uri == "" {
		uri = c.FeedURI(KindProfiles, "", "", "")
	}
	var feed ProfilesFeed
	if err := c.Get(uri, nil, &feed); err != nil {
		return nil, err
	}
	return &feed, nil
}

// QueryProfiles fetches the profiles feed selected by the query.
func (c *Client) QueryProfiles(q *ProfilesQuery) (*ProfilesFeed, error) {
	return c.ListProfiles(q.URI())
}

// GetProfile fetches a single profile entry, for example
// /m8/feeds/profiles/domain/example.com/full/username.
func (c *Client) GetProfile(uri string) (*ProfileEntry, error) {
	if uri == "" {
		return nil, fmt.Errorf("contacts: no profile URI given")
	}
	var entry ProfileEntry
	if err := c.Get(uri, nil, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// CreateProfile adds a new profile entry. An empty insertURI selects the
// default profiles feed. Most deployments manage profiles server-side;
// servers that do reject the insert with a RequestError.
func (c *Client) CreateProfile(entry *ProfileEntry, insertURI string, params url.Values) (*ProfileEntry, error) {
	if insertURI == "" {
		insertURI = c.FeedURI(KindProfiles, "", "", "")
	}
	var created ProfileEntry
	if err := c.Post(entry, insertURI, params, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProfile replaces the profile stored at editURI.
func (c *Client) UpdateProfile(editURI string, entry *ProfileEntry, params url.Values) (*ProfileEntry, error) {
	var updated ProfileEntry
	if err := c.Put(entry, c.CleanURI(editURI), params, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteProfile removes the profile stored at editURI.
func (c *Client) DeleteProfile(editURI string, params url.Values) error {
	return c.Delete(c.CleanURI(editURI), params)
}

// SetPhoto uploads a new photo for a contact. The target is either an
// explicit PhotoURI or a contact entry, in which case the entry's photo edit
// link is used; ErrNoPhotoLink is reported if the entry has none.
func (c *Client) SetPhoto(media *gdata.MediaSource, target PhotoTarget) error {
	uri := target.photoEditLink()
	if uri == "" {
		return ErrNoPhotoLink
	}
	return c.PutMedia(media, c.CleanURI(uri))
}

// GetPhoto fetches the raw photo bytes for a contact. If the target entry
// has no photo link, GetPhoto returns nil without issuing a request.
func (c *Client) GetPhoto(target PhotoTarget) ([]byte, error) {
	uri := target.photoLink()
	if uri == "" {
		return nil, nil
	}
	return c.GetMedia(c.CleanURI(uri))
}

// DeletePhoto removes the photo of a contact. It is a no-op if no photo edit
// URI resolves from the target.
func (c *Client) DeletePhoto(target PhotoTarget) error {
	uri := target.photoEditLink()
	if uri == "" {
		return nil
	}
	return c.Delete(c.CleanURI(uri), nil)
}

// ExecuteBatch sends a feed of batch-tagged contact entries (see MarkBatch)
// to a batch endpoint and returns the result feed, whose entries carry a
// per-entry BatchStatus. An empty uri selects DefaultBatchPath. The client
// does not interpret per-entry outcomes.
func (c *Client) ExecuteBatch(feed *ContactsFeed, uri string) (*ContactsFeed, error) {
	if uri == "" {
		uri = DefaultBatchPath
	}
	var result ContactsFeed
	if err := c.Post(feed, uri, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ExecuteBatchProfiles is ExecuteBatch for profile feeds. An empty uri
// selects DefaultProfilesBatchPath.
func (c *Client) ExecuteBatchProfiles(feed *ProfilesFeed, uri string) (*ProfilesFeed, error) {
	if uri == "" {
		uri = DefaultProfilesBatchPath
	}
	var result ProfilesFeed
	if err := c.Post(feed, uri, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
