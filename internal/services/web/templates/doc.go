// Package templates renders the course front-end pages.
//
// Markup is built as gomponents node trees and exposed as templ components
// so pages compose through templ.WithChildren.
package templates
