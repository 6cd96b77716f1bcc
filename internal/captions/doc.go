// Package captions locates the caption track list embedded in a watch
// page and selects tracks from it.
//
// The watch page is not parsed as HTML. The track list sits inside a
// larger script payload that is not valid standalone JSON, so the
// locator cuts the document between two anchor substrings and decodes
// only the bounded region. That makes the anchors deliberately brittle
// configuration: when the page format drifts, operators fix the anchor
// strings instead of waiting for a code change.
package captions
