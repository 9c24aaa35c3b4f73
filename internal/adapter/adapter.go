package adapter

import (
	"context"

	"github.com/go-resty/resty/v2"
)

// ServerAdapter is the full client of the inventory API.
type ServerAdapter interface {
	AuthClient
	InventoryAPI

	// Do sends req with the current bearer token and recovers once from a
	// 401 as described in the package documentation. Non-401 responses, and
	// a 401 on a request already retried, are returned unchanged.
	Do(ctx context.Context, req *Request) (*resty.Response, error)
}
