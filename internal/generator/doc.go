// Package generator orchestrates a generation run: it validates the dimension
// tables, plans and renders every page in a fixed kind order, writes the pages
// and then the sitemap, and reports the result.
//
// A run is all-or-nothing from the caller's point of view. Every page is
// rendered before the first byte is written, so a defect in the tables never
// leaves a partial tree behind, and the sitemap is written only after every
// page it lists exists on disk.
package generator
