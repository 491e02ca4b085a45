package coda

import "strings"

// Identifier prefixes. Every addressable resource except a doc carries a
// fixed structural prefix on its id; that shape is what tells an id apart
// from a display name when a method accepts either.
const (
	// TableIDPrefix prefixes table ids.
	TableIDPrefix = "grid-"

	// ViewIDPrefix prefixes view ids.
	ViewIDPrefix = "table-"

	// ColumnIDPrefix prefixes column ids.
	ColumnIDPrefix = "c-"

	// RowIDPrefix prefixes row ids.
	RowIDPrefix = "i-"

	// SectionIDPrefix prefixes section ids.
	SectionIDPrefix = "canvas-"

	// FolderIDPrefix prefixes folder ids. The prefix predates the folder
	// naming in the API and does not match it.
	FolderIDPrefix = "section-"

	// FormulaIDPrefix prefixes formula ids.
	FormulaIDPrefix = "f-"

	// ControlIDPrefix prefixes control ids.
	ControlIDPrefix = "ctrl-"
)

// IsTableID reports whether s has the structural shape of a table id.
func IsTableID(s string) bool {
	return strings.HasPrefix(s, TableIDPrefix)
}

// IsViewID reports whether s has the structural shape of a view id.
func IsViewID(s string) bool {
	return strings.HasPrefix(s, ViewIDPrefix)
}

// IsColumnID reports whether s has the structural shape of a column id.
func IsColumnID(s string) bool {
	return strings.HasPrefix(s, ColumnIDPrefix)
}

// IsRowID reports whether s has the structural shape of a row id.
func IsRowID(s string) bool {
	return strings.HasPrefix(s, RowIDPrefix)
}

// IsSectionID reports whether s has the structural shape of a section id.
func IsSectionID(s string) bool {
	return strings.HasPrefix(s, SectionIDPrefix)
}

// IsFolderID reports whether s has the structural shape of a folder id.
// Folder ids use the "section-" prefix, so a folder id is never mistaken
// for a section id or vice versa.
func IsFolderID(s string) bool {
	return strings.HasPrefix(s, FolderIDPrefix)
}

// IsFormulaID reports whether s has the structural shape of a formula id.
func IsFormulaID(s string) bool {
	return strings.HasPrefix(s, FormulaIDPrefix)
}

// IsControlID reports whether s has the structural shape of a control id.
func IsControlID(s string) bool {
	return strings.HasPrefix(s, ControlIDPrefix)
}
