//go:build e2e && unix

package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// fakeDirectory serves a fixed directory of 42 exhibitors, 5 per page
type fakeDirectory struct {
	*httptest.Server

	mu       sync.Mutex
	requests []string
}

var exhibitorNames = []string{
	"Acme Foods", "Bakery Co", "Brewer Ltd", "Candle Works", "Dairy Union", "Echo Packaging",
	"Fresh Farms", "Golden Rice", "Harbor Fish", "Indo Spices", "Java Coffee", "Kopi Mas",
	"Lotus Tea", "Mango Grove", "Nusantara Oil", "Orchid Sweets", "Palm Sugar", "Quartz Mills",
	"Rattan Crafts", "Sago House", "Teak Tools", "Ubud Organics", "Vanilla Isle", "Wok Masters",
	"Xylo Foods", "Yam Kitchen", "Zest Juices", "Aroma Bakers", "Banyan Nuts", "Cocoa Point",
	"Durian King", "Emerald Herbs", "Fig Tree", "Ginger Root", "Honey Hive", "Iris Noodles",
	"Jasmine Rice", "Kelp Farm", "Lime Light", "Melon Patch", "Nutmeg Co", "Olive Bay",
}

func newFakeDirectory(t *testing.T) *fakeDirectory {
	t.Helper()

	fd := &fakeDirectory{}
	mux := http.NewServeMux()
	mux.HandleFunc("/v2/industry_category", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id": 5, "name": "Food Processing", "count": 30}, {"id": 8, "name": "Packaging", "count": 12}]`))
	})
	mux.HandleFunc("/v2/country", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id": 3, "name": "Indonesia", "count": 40}, {"id": 4, "name": "Germany", "count": 2}]`))
	})
	mux.HandleFunc("/v2/ciptadusa_directory", fd.listing)

	fd.Server = httptest.NewServer(mux)
	t.Cleanup(fd.Close)
	return fd
}

func (fd *fakeDirectory) listing(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	fd.mu.Lock()
	fd.requests = append(fd.requests, q.Encode())
	fd.mu.Unlock()

	var matched []int
	for i, name := range exhibitorNames {
		if s := q.Get("search"); s != "" && !strings.Contains(strings.ToLower(name), strings.ToLower(s)) {
			continue
		}
		if l := q.Get("search_first"); l != "" && !strings.HasPrefix(name, l) {
			continue
		}
		matched = append(matched, i)
	}

	perPage, _ := strconv.Atoi(q.Get("per_page"))
	if perPage < 1 {
		perPage = 10
	}
	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	totalPages := (len(matched) + perPage - 1) / perPage

	items := make([]string, 0, perPage)
	for i := (page - 1) * perPage; i < len(matched) && i < page*perPage; i++ {
		idx := matched[i]
		items = append(items, fmt.Sprintf(
			`{"id": %d, "exhibitor_name": %q, "is_premium": %t, "stand": "S%d", "country": [3], "industry_category": [5],
"content": {"rendered": "<p>%s makes good things.</p>"}, "company_url": "https://ex%d.test", "company_email": "hello@ex%d.test"}`,
			idx+1, exhibitorNames[idx], idx == 0, idx+1, exhibitorNames[idx], idx+1, idx+1))
	}

	w.Header().Set("X-WP-Total", strconv.Itoa(len(matched)))
	w.Header().Set("X-WP-TotalPages", strconv.Itoa(totalPages))
	_, _ = w.Write([]byte("[" + strings.Join(items, ",") + "]"))
}

// Requests returns the listing queries received so far
func (fd *fakeDirectory) Requests() []string {
	fd.mu.Lock()
	defer fd.mu.Unlock()
	return append([]string(nil), fd.requests...)
}
