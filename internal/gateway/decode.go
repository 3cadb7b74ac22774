package gateway

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/net/html"

	"expodir/internal/domain"
)

// parseArray checks that body is a JSON array of objects and returns its elements
func parseArray(resource string, body []byte) ([]gjson.Result, error) {
	if !gjson.ValidBytes(body) {
		return nil, &DecodeError{Resource: resource, Reason: "body is not valid JSON"}
	}
	root := gjson.ParseBytes(body)
	if !root.IsArray() {
		return nil, &DecodeError{Resource: resource, Reason: "expected a JSON array"}
	}

	elems := root.Array()
	for i, e := range elems {
		if !e.IsObject() {
			return nil, &DecodeError{Resource: resource, Reason: "element " + strconv.Itoa(i) + " is not an object"}
		}
	}
	return elems, nil
}

// DecodeExhibitors decodes a listing response body. Custom fields are
// tolerated in whatever shape the API sends: empty values come back as
// false or null, and is_premium may be a bool, number or string.
func DecodeExhibitors(resource string, body []byte) ([]domain.Exhibitor, error) {
	elems, err := parseArray(resource, body)
	if err != nil {
		return nil, err
	}

	items := make([]domain.Exhibitor, 0, len(elems))
	for _, e := range elems {
		items = append(items, exhibitorFrom(e))
	}
	return items, nil
}

func exhibitorFrom(r gjson.Result) domain.Exhibitor {
	return domain.Exhibitor{
		ID:            int(r.Get("id").Int()),
		Name:          html.UnescapeString(text(r.Get("exhibitor_name"))),
		Logo:          text(r.Get("logo")),
		Premium:       flag(r.Get("is_premium")),
		BannerLogo:    text(r.Get("banner_logo")),
		ContentHTML:   text(r.Get("content.rendered")),
		CountryIDs:    ids(r.Get("country")),
		IndustryIDs:   ids(r.Get("industry_category")),
		Stand:         text(r.Get("stand")),
		CompanyURL:    text(r.Get("company_url")),
		CompanyEmail:  text(r.Get("company_email")),
		CompanyPhone:  text(r.Get("company_phone")),
		Address:       text(r.Get("address")),
		FacebookURL:   text(r.Get("fb_url")),
		InstagramURL:  text(r.Get("ig_url")),
		TwitterURL:    text(r.Get("twitter_url")),
		YoutubeURL:    text(r.Get("yt_url")),
		LinkedinURL:   text(r.Get("linkedln_url")),
		GalleryImage1: text(r.Get("gallery_image_1")),
		GalleryImage2: text(r.Get("gallery_image_2")),
		GalleryTitle1: text(r.Get("gallery_title_1")),
		GalleryTitle2: text(r.Get("gallery_title_2")),
	}
}

// DecodeTerms decodes a reference table response body
func DecodeTerms(resource string, body []byte) ([]domain.Term, error) {
	elems, err := parseArray(resource, body)
	if err != nil {
		return nil, err
	}

	terms := make([]domain.Term, 0, len(elems))
	for _, e := range elems {
		id := e.Get("id")
		if id.Type != gjson.Number {
			return nil, &DecodeError{Resource: resource, Reason: "term without numeric id"}
		}
		terms = append(terms, domain.Term{
			ID:    int(id.Int()),
			Name:  html.UnescapeString(text(e.Get("name"))),
			Slug:  text(e.Get("slug")),
			Count: int(e.Get("count").Int()),
		})
	}
	return terms, nil
}

// text returns string and number values as text; false, null and
// missing values are empty
func text(r gjson.Result) string {
	switch r.Type {
	case gjson.String:
		return r.Str
	case gjson.Number:
		return r.Raw
	default:
		return ""
	}
}

func flag(r gjson.Result) bool {
	switch r.Type {
	case gjson.True:
		return true
	case gjson.Number:
		return r.Num != 0
	case gjson.String:
		s := strings.ToLower(strings.TrimSpace(r.Str))
		if b, err := strconv.ParseBool(s); err == nil {
			return b
		}
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return n != 0
		}
		return s == "yes"
	default:
		return false
	}
}

// ids reads a term id list. A bare number is treated as a one-element list.
func ids(r gjson.Result) []int {
	var out []int
	add := func(v gjson.Result) {
		switch v.Type {
		case gjson.Number:
			out = append(out, int(v.Int()))
		case gjson.String:
			if n, err := strconv.Atoi(strings.TrimSpace(v.Str)); err == nil {
				out = append(out, n)
			}
		}
	}

	if r.IsArray() {
		r.ForEach(func(_, v gjson.Result) bool {
			add(v)
			return true
		})
		return out
	}
	add(r)
	return out
}
