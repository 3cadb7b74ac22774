package domain

import "strings"

// Exhibitor represents a single directory listing
type Exhibitor struct {
	ID            int    `json:"id"`
	Name          string `json:"exhibitor_name"`
	Logo          string `json:"logo"`
	Premium       bool   `json:"is_premium"`
	BannerLogo    string `json:"banner_logo"`
	ContentHTML   string `json:"content"` // content.rendered
	CountryIDs    []int  `json:"country"`
	IndustryIDs   []int  `json:"industry_category"`
	Stand         string `json:"stand"`
	CompanyURL    string `json:"company_url"`
	CompanyEmail  string `json:"company_email"`
	CompanyPhone  string `json:"company_phone"`
	Address       string `json:"address"`
	FacebookURL   string `json:"fb_url"`
	InstagramURL  string `json:"ig_url"`
	TwitterURL    string `json:"twitter_url"`
	YoutubeURL    string `json:"yt_url"`
	LinkedinURL   string `json:"linkedln_url"`
	GalleryImage1 string `json:"gallery_image_1"`
	GalleryImage2 string `json:"gallery_image_2"`
	GalleryTitle1 string `json:"gallery_title_1"`
	GalleryTitle2 string `json:"gallery_title_2"`
}

// Term is an industry category or country reference record
type Term struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

// ResultPage is one page of listing results with its pagination totals
type ResultPage struct {
	Items      []Exhibitor
	TotalCount int
	TotalPages int
}

// IsEmpty reports whether the page has no items
func (p ResultPage) IsEmpty() bool {
	return len(p.Items) == 0
}

// Link is a labelled external link of an exhibitor
type Link struct {
	Label string
	URL   string
}

// Links returns the exhibitor's usable external links in display order
func (e Exhibitor) Links() []Link {
	candidates := []Link{
		{Label: "Website", URL: e.CompanyURL},
		{Label: "Facebook", URL: e.FacebookURL},
		{Label: "Twitter", URL: e.TwitterURL},
		{Label: "YouTube", URL: e.YoutubeURL},
		{Label: "Instagram", URL: e.InstagramURL},
		{Label: "LinkedIn", URL: e.LinkedinURL},
	}
	var links []Link
	for _, l := range candidates {
		if HasValue(l.URL) {
			links = append(links, l)
		}
	}
	return links
}

// Gallery returns the titles of the gallery images that are present
func (e Exhibitor) Gallery() []string {
	var titles []string
	if HasValue(e.GalleryImage1) || HasValue(e.GalleryTitle1) {
		titles = append(titles, ValueOrDash(e.GalleryTitle1))
	}
	if HasValue(e.GalleryImage2) || HasValue(e.GalleryTitle2) {
		titles = append(titles, ValueOrDash(e.GalleryTitle2))
	}
	return titles
}

// HasValue reports whether a contact field carries a real value. The
// directory uses "#" as an empty placeholder.
func HasValue(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && v != "#"
}

// ValueOrDash returns v, or "-" when it is empty or a placeholder
func ValueOrDash(v string) string {
	if !HasValue(v) {
		return "-"
	}
	return strings.TrimSpace(v)
}
