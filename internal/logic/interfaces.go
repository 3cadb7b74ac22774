package logic

import (
	"context"
	"net/url"

	"expodir/internal/domain"
)

// Reference table resources
const (
	ResourceIndustry = "industry_category"
	ResourceCountry  = "country"
)

// ReferenceStore provides access to the industry and country tables
type ReferenceStore interface {
	Industries() []domain.Term
	Countries() []domain.Term
	Industry(id int) (domain.Term, bool)
	Country(id int) (domain.Term, bool)
	SetIndustries(terms []domain.Term)
	SetCountries(terms []domain.Term)
}

// TermFetcher loads one reference table
type TermFetcher interface {
	FetchTerms(ctx context.Context, resource string, params url.Values) ([]domain.Term, error)
}

// ListingFetcher loads one page of exhibitors
type ListingFetcher interface {
	FetchExhibitors(ctx context.Context, resource string, params url.Values) (domain.ResultPage, error)
}

// Directory is the full remote API the application reads from
type Directory interface {
	TermFetcher
	ListingFetcher
}
