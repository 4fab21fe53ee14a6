package contacts

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/jamuseum/go-gdata"
)

const batchResultXML = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom" xmlns:batch="http://schemas.google.com/gdata/batch">
  <title>Batch result</title>
  <entry>
    <batch:id>create-bob</batch:id>
    <batch:operation type="insert"/>
    <batch:status code="201" reason="Created"/>
    <title>Bob Gopher</title>
  </entry>
  <entry>
    <batch:id>remove-eve</batch:id>
    <batch:operation type="delete"/>
    <batch:status code="404" reason="Not Found"/>
  </entry>
</feed>`

func TestMarkBatch(t *testing.T) {
	e := NewContact()
	id := e.MarkBatch(gdata.BatchInsert, "create-bob")
	if id != "create-bob" {
		t.Errorf("MarkBatch() = %q, expected the given id", id)
	}
	if e.BatchID == nil || e.BatchID.Value != "create-bob" {
		t.Errorf("BatchID = %+v", e.BatchID)
	}
	if e.BatchOperation == nil || e.BatchOperation.Type != gdata.BatchInsert {
		t.Errorf("BatchOperation = %+v", e.BatchOperation)
	}
}

func TestMarkBatch_generatesID(t *testing.T) {
	e := NewContact()
	id := e.MarkBatch(gdata.BatchDelete, "")
	if id == "" {
		t.Fatal("MarkBatch() generated an empty id")
	}
	if e.BatchID == nil || e.BatchID.Value != id {
		t.Errorf("BatchID = %+v, expected the returned id %q", e.BatchID, id)
	}

	other := NewContact()
	if otherID := other.MarkBatch(gdata.BatchDelete, ""); otherID == id {
		t.Errorf("two generated batch ids collide: %q", id)
	}
}

func TestClient_ExecuteBatch(t *testing.T) {
	var gotMethod, gotPath, gotBody string
	var requests int
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		gotMethod = r.Method
		gotPath = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Write([]byte(batchResultXML))
	})

	var feed ContactsFeed
	create := NewContact()
	create.Title = "Bob Gopher"
	create.MarkBatch(gdata.BatchInsert, "create-bob")
	remove := NewContact()
	remove.MarkBatch(gdata.BatchDelete, "remove-eve")
	feed.Entries = append(feed.Entries, *create, *remove)

	result, err := c.ExecuteBatch(&feed, "")
	if err != nil {
		t.Fatalf("ExecuteBatch() = %v", err)
	}

	if requests != 1 {
		t.Errorf("issued %v requests, expected a single POST", requests)
	}
	if gotMethod != http.MethodPost || gotPath != DefaultBatchPath {
		t.Errorf("request = %v %v, expected POST %v", gotMethod, gotPath, DefaultBatchPath)
	}
	for _, want := range []string{"create-bob", "remove-eve", `type="insert"`, `type="delete"`} {
		if !strings.Contains(gotBody, want) {
			t.Errorf("body = %q, missing %q", gotBody, want)
		}
	}

	if len(result.Entries) != 2 {
		t.Fatalf("result entries = %v, expected 2", len(result.Entries))
	}
	first := result.Entries[0]
	if first.BatchStatus == nil || first.BatchStatus.Code != 201 || first.BatchStatus.Reason != "Created" {
		t.Errorf("first batch status = %+v", first.BatchStatus)
	}
	second := result.Entries[1]
	if second.BatchID == nil || second.BatchID.Value != "remove-eve" {
		t.Errorf("second batch id = %+v", second.BatchID)
	}
	if second.BatchStatus == nil || second.BatchStatus.Code != 404 {
		t.Errorf("second batch status = %+v", second.BatchStatus)
	}
}

func TestClient_ExecuteBatchProfiles_defaultURI(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`<?xml version="1.0"?><feed xmlns="http://www.w3.org/2005/Atom"></feed>`))
	})

	var feed ProfilesFeed
	if _, err := c.ExecuteBatchProfiles(&feed, ""); err != nil {
		t.Fatalf("ExecuteBatchProfiles() = %v", err)
	}
	if gotPath != DefaultProfilesBatchPath {
		t.Errorf("path = %v, expected %v", gotPath, DefaultProfilesBatchPath)
	}
}
