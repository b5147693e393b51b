// Package textutil cleans raw spreadsheet cell values.
//
// Source spreadsheets are maintained by hand: cells carry curly quotes and
// non-breaking spaces pasted from word processors, carriage returns inside
// bios, placeholder markers for fields nobody filled in yet, and URLs buried
// in free text. Everything downstream (identity extraction, slugs, merge
// comparisons) assumes the cleaned form produced here.
package textutil
