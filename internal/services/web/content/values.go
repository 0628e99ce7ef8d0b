package content

// Offer is a promotional text card.
type Offer struct {
	ID   ID     `json:"id"`
	Key  string `json:"-"`
	Text string `json:"text"`
}

// Instructor is one instructor card. Description is CMS HTML.
type Instructor struct {
	ID               ID     `json:"id"`
	Key              string `json:"-"`
	Image            string `json:"image"`
	Name             string `json:"name"`
	ShortDescription string `json:"short_description"`
	Description      string `json:"description"`
}

// Feature is one course feature card.
type Feature struct {
	ID          ID     `json:"id"`
	Key         string `json:"-"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
}

// Pointer is one checklist line.
type Pointer struct {
	ID   ID     `json:"id"`
	Key  string `json:"-"`
	Text string `json:"text"`
}

// Background holds a section background image.
type Background struct {
	Image string `json:"image"`
}

// CTA is a call-to-action link.
type CTA struct {
	Text       string `json:"text"`
	ClickedURL string `json:"clicked_url"`
}

// GroupJoin is a community engagement banner.
type GroupJoin struct {
	ID          ID         `json:"id"`
	Key         string     `json:"-"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Background  Background `json:"background"`
	CTA         CTA        `json:"cta"`
}

// Testimonial is one student quote.
type Testimonial struct {
	ID           ID     `json:"id"`
	Key          string `json:"-"`
	Name         string `json:"name"`
	ProfileImage string `json:"profile_image"`
	Testimonial  string `json:"testimonial"`
}

// About is one course information block. Title and Description are CMS HTML.
type About struct {
	ID          ID     `json:"id"`
	Key         string `json:"-"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
