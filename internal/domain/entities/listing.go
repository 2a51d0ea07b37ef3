package entities

// Listing is a marketplace offer for surplus material or equipment.
type Listing struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Seller   string  `json:"seller,omitempty"`
	Category string  `json:"category,omitempty"`
	Price    float64 `json:"price,omitempty"`
	Quantity float64 `json:"quantity,omitempty"`
	Status   string  `json:"status,omitempty"`
}

func (l Listing) RecordID() string { return l.ID }
