// Package types defines every cross‑package data structure used by the dirlist CLI.
package types

import "encoding/xml"

const (
	CommandList = "list"
	CommandInit = "init"

	FormatRaw  = "raw"
	FormatJSON = "json"
	FormatXML  = "xml"

	SortNone       = "none"
	SortName       = "name"
	SortDirsFirst  = "dirs-first"
	OutputFileName = "list_dir_output.txt"
)

// Entry is one filesystem object discovered while walking a root directory.
// Depth 0 denotes a direct child of the root.
type Entry struct {
	Name        string `json:"name" xml:"name"`
	Depth       int    `json:"depth" xml:"depth"`
	IsDirectory bool   `json:"isDirectory" xml:"isDirectory"`
}

// DefaultExcludedNames lists the names skipped when the caller supplies no exclusions.
func DefaultExcludedNames() []string {
	return []string{".git", "node_modules", "vendor", ".idea", ".vsc"}
}

// Listing is the structured form of one walked root, used by the json and xml formats.
type Listing struct {
	XMLName     xml.Name `json:"-" xml:"listing"`
	Root        string   `json:"root" xml:"root"`
	DisplayName string   `json:"name" xml:"name"`
	Entries     []Entry  `json:"entries" xml:"entries>entry"`
}
