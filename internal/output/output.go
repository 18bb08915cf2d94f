package output

import (
	"encoding/json"
	"encoding/xml"

	"github.com/temirov/dirlist/internal/types"
)

const (
	indentPrefix = ""
	indentSpacer = "  "

	xmlHeader = xml.Header
)

// RenderJSON marshals listings as JSON. A single listing is emitted as an object,
// several listings as an array.
func RenderJSON(listings []types.Listing) (string, error) {
	if len(listings) == 0 {
		return "[]", nil
	}
	if len(listings) == 1 {
		encoded, jsonEncodeError := json.MarshalIndent(normalizeListing(listings[0]), indentPrefix, indentSpacer)
		return string(encoded), jsonEncodeError
	}
	normalized := make([]types.Listing, 0, len(listings))
	for _, listing := range listings {
		normalized = append(normalized, normalizeListing(listing))
	}
	encoded, jsonEncodeError := json.MarshalIndent(normalized, indentPrefix, indentSpacer)
	return string(encoded), jsonEncodeError
}

// RenderXML marshals listings as an XML document. Several listings are wrapped in a results element.
func RenderXML(listings []types.Listing) (string, error) {
	if len(listings) == 1 {
		encoded, xmlMarshalError := xml.MarshalIndent(listings[0], indentPrefix, indentSpacer)
		if xmlMarshalError != nil {
			return "", xmlMarshalError
		}
		return xmlHeader + string(encoded), nil
	}
	wrapper := struct {
		XMLName  xml.Name        `xml:"results"`
		Listings []types.Listing `xml:"listing"`
	}{Listings: listings}
	encoded, xmlMarshalError := xml.MarshalIndent(wrapper, indentPrefix, indentSpacer)
	if xmlMarshalError != nil {
		return "", xmlMarshalError
	}
	return xmlHeader + string(encoded), nil
}

// normalizeListing replaces a nil entry slice so empty roots encode as [] rather than null.
func normalizeListing(listing types.Listing) types.Listing {
	if listing.Entries == nil {
		listing.Entries = []types.Entry{}
	}
	return listing
}
