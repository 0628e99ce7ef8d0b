// Package content decodes CMS page payloads into typed course sections.
//
// Section kinds form a closed set. A section whose type is not recognized
// decodes to an UnknownSection and renders nothing. Sections keep the order
// the backend sent them in.
package content
