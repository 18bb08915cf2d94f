package output_test

import (
	"encoding/json"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/temirov/dirlist/internal/output"
	"github.com/temirov/dirlist/internal/types"
)

func sampleListing(rootPath string) types.Listing {
	return types.Listing{
		Root:        rootPath,
		DisplayName: projectDisplayName,
		Entries: []types.Entry{
			{Name: "a.txt", Depth: 0},
			{Name: "sub", Depth: 0, IsDirectory: true},
			{Name: "b.txt", Depth: 1},
		},
	}
}

func TestRenderJSONSingleListing(t *testing.T) {
	rendered, renderError := output.RenderJSON([]types.Listing{sampleListing("/tmp/proj")})
	if renderError != nil {
		t.Fatalf("RenderJSON error: %v", renderError)
	}
	var decoded types.Listing
	if decodeError := json.Unmarshal([]byte(rendered), &decoded); decodeError != nil {
		t.Fatalf("decode: %v\n%s", decodeError, rendered)
	}
	if decoded.Root != "/tmp/proj" || decoded.DisplayName != projectDisplayName || len(decoded.Entries) != 3 {
		t.Fatalf("unexpected decoded listing %+v", decoded)
	}
	if !decoded.Entries[1].IsDirectory || decoded.Entries[2].Depth != 1 {
		t.Fatalf("entry attributes were not preserved: %+v", decoded.Entries)
	}
}

func TestRenderJSONEmptyEntriesEncodeAsArray(t *testing.T) {
	rendered, renderError := output.RenderJSON([]types.Listing{{Root: "/tmp/proj", DisplayName: projectDisplayName}})
	if renderError != nil {
		t.Fatalf("RenderJSON error: %v", renderError)
	}
	if !strings.Contains(rendered, `"entries": []`) {
		t.Fatalf("expected empty entries array, got %s", rendered)
	}
}

func TestRenderJSONMultipleListings(t *testing.T) {
	rendered, renderError := output.RenderJSON([]types.Listing{sampleListing("/a/proj"), sampleListing("/b/proj")})
	if renderError != nil {
		t.Fatalf("RenderJSON error: %v", renderError)
	}
	var decoded []types.Listing
	if decodeError := json.Unmarshal([]byte(rendered), &decoded); decodeError != nil {
		t.Fatalf("decode: %v", decodeError)
	}
	if len(decoded) != 2 || decoded[0].Root != "/a/proj" || decoded[1].Root != "/b/proj" {
		t.Fatalf("unexpected listings %+v", decoded)
	}
}

func TestRenderXML(t *testing.T) {
	rendered, renderError := output.RenderXML([]types.Listing{sampleListing("/tmp/proj")})
	if renderError != nil {
		t.Fatalf("RenderXML error: %v", renderError)
	}
	if !strings.HasPrefix(rendered, xml.Header) {
		t.Fatalf("missing xml header: %s", rendered)
	}
	var decoded types.Listing
	if decodeError := xml.Unmarshal([]byte(strings.TrimPrefix(rendered, xml.Header)), &decoded); decodeError != nil {
		t.Fatalf("decode: %v", decodeError)
	}
	if len(decoded.Entries) != 3 || decoded.Entries[2].Name != "b.txt" {
		t.Fatalf("unexpected decoded listing %+v", decoded)
	}

	multiple, multipleError := output.RenderXML([]types.Listing{sampleListing("/a"), sampleListing("/b")})
	if multipleError != nil {
		t.Fatalf("RenderXML error: %v", multipleError)
	}
	if !strings.Contains(multiple, "<results>") || strings.Count(multiple, "<listing>") != 2 {
		t.Fatalf("expected two wrapped listings, got %s", multiple)
	}
}
