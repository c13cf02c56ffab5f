package domain

// Client is an end-user who submits tickets.
type Client struct {
	ID                 string
	Name               string
	Email              string
	OpenTicketIDs      []string
	InteractionHistory []string
}

// NewClient creates a client with no tickets.
func NewClient(id, name, email string) *Client {
	return &Client{ID: id, Name: name, Email: email}
}
