// Package language defines the closed set of caption language codes the
// extractor accepts, with parsing at the input boundary and English
// display names for listings.
package language
