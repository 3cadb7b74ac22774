package gateway

import (
	"context"
	"net/url"

	"expodir/internal/domain"
)

// FetchExhibitors fetches one page of listings
func (c *Client) FetchExhibitors(ctx context.Context, resource string, params url.Values) (domain.ResultPage, error) {
	resp, err := c.Get(ctx, resource, params)
	if err != nil {
		return domain.ResultPage{}, err
	}

	items, err := DecodeExhibitors(resource, resp.Body)
	if err != nil {
		return domain.ResultPage{}, err
	}

	return domain.ResultPage{
		Items:      items,
		TotalCount: resp.Total,
		TotalPages: resp.TotalPages,
	}, nil
}

// FetchTerms fetches a reference table with the given query
func (c *Client) FetchTerms(ctx context.Context, resource string, params url.Values) ([]domain.Term, error) {
	resp, err := c.Get(ctx, resource, params)
	if err != nil {
		return nil, err
	}
	return DecodeTerms(resource, resp.Body)
}
