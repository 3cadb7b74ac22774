// Package query serializes listing query state into API request parameters.
package query

import (
	"slices"
	"strconv"
	"strings"

	"expodir/internal/ui/services/filter"
)

// Build serializes a filter state. Id lists are sorted and comma-joined;
// empty filters are left out rather than sent as empty strings.
func Build(s filter.State) Params {
	p := Params{
		ParamFields:  strings.Join(s.Fields, ","),
		ParamOrderBy: s.SortField,
		ParamOrder:   s.SortOrder,
		ParamPage:    strconv.Itoa(s.Page),
		ParamPerPage: strconv.Itoa(s.PageSize),
	}

	if ids := joinIDs(s.IndustryIDs); ids != "" {
		p[ParamIndustry] = ids
	}
	if ids := joinIDs(s.CountryIDs); ids != "" {
		p[ParamCountry] = ids
	}
	if s.Search != "" {
		p[ParamSearch] = s.Search
	}
	if s.Alpha != "" {
		p[ParamSearchFirst] = s.Alpha
	}

	return p
}

// ReferenceParams returns the query for an industry or country table
func ReferenceParams() Params {
	return Params{
		ParamFields:  "id,name,slug,count",
		ParamPerPage: "100",
		ParamOrder:   "desc",
		ParamOrderBy: "id",
	}
}

func joinIDs(ids []int) string {
	if len(ids) == 0 {
		return ""
	}
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	parts := make([]string, len(sorted))
	for i, id := range sorted {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
