// Package navigation defines the site header menu.
package navigation

import "strings"

// Hotline is the support phone number shown in the header.
const Hotline = "16910"

// Item is one menu entry. LabelKey is a catalog message key.
type Item struct {
	LabelKey string
	Href     string
	Children []Item
}

// HasChildren reports whether the item opens a submenu.
func (i Item) HasChildren() bool {
	return len(i.Children) > 0
}

// Active reports whether the item or one of its children matches path.
func (i Item) Active(path string) bool {
	path = strings.TrimSpace(path)
	if i.Href != "" && i.Href == path {
		return true
	}
	for _, child := range i.Children {
		if child.Active(path) {
			return true
		}
	}
	return false
}

// Menu returns the header menu in display order.
func Menu() []Item {
	return []Item{
		{LabelKey: "nav.menu.class", Children: []Item{
			{LabelKey: "nav.menu.class_6", Href: "/class-6"},
			{LabelKey: "nav.menu.class_7", Href: "/class-7"},
			{LabelKey: "nav.menu.class_8", Href: "/class-8"},
		}},
		{LabelKey: "nav.menu.skills", Children: []Item{
			{LabelKey: "nav.menu.skill_development", Href: "/skill-development"},
			{LabelKey: "nav.menu.professional_courses", Href: "/professional-courses"},
		}},
		{LabelKey: "nav.menu.admission", Href: "/admission"},
		{LabelKey: "nav.menu.online_batch", Children: []Item{
			{LabelKey: "nav.menu.hsc_batch", Href: "/hsc-batch"},
			{LabelKey: "nav.menu.ssc_batch", Href: "/ssc-batch"},
		}},
		{LabelKey: "nav.menu.english_centre", Children: []Item{
			{LabelKey: "nav.menu.spoken_english", Href: "/spoken-english"},
			{LabelKey: "nav.menu.ielts_preparation", Href: "/ielts-preparation"},
		}},
		{LabelKey: "nav.menu.more", Children: []Item{
			{LabelKey: "nav.menu.about", Href: "/about"},
			{LabelKey: "nav.menu.reviews", Href: "/reviews"},
			{LabelKey: "nav.menu.contact", Href: "/contact"},
		}},
	}
}
