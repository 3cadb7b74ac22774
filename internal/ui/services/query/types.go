package query

import (
	"maps"
	"net/url"
)

// Parameter names understood by the directory API
const (
	ParamIndustry    = "industry_category"
	ParamCountry     = "country"
	ParamSearch      = "search"
	ParamSearchFirst = "search_first"
	ParamFields      = "_fields"
	ParamOrderBy     = "orderby"
	ParamOrder       = "order"
	ParamPage        = "page"
	ParamPerPage     = "per_page"
)

// Params is a flat mapping of parameter name to scalar value
type Params map[string]string

// Values converts the params to url.Values
func (p Params) Values() url.Values {
	v := make(url.Values, len(p))
	for k, val := range p {
		v.Set(k, val)
	}
	return v
}

// Encode returns the params as a sorted query string
func (p Params) Encode() string {
	return p.Values().Encode()
}

// Equal reports whether two param sets are identical
func (p Params) Equal(o Params) bool {
	return maps.Equal(p, o)
}
