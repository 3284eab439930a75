package client

import "context"

// Repository is the data-access collaborator for clients. Getters return
// (nil, nil) when nothing matches.
type Repository interface {
	Create(ctx context.Context, c *Client) error
	GetByID(ctx context.Context, id uint) (*Client, error)
	GetBySID(ctx context.Context, sid string) (*Client, error)
	// List returns every client in insertion order.
	List(ctx context.Context) ([]*Client, error)
	Update(ctx context.Context, c *Client) error
	Delete(ctx context.Context, id uint) error
}

type PaymentRepository interface {
	Create(ctx context.Context, p *Payment) error
	// ListByClient returns the client's payments, newest first.
	ListByClient(ctx context.Context, clientID uint) ([]*Payment, error)
}
