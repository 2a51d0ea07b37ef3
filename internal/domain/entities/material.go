package entities

type Material struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Unit      string  `json:"unit,omitempty"`
	Quantity  float64 `json:"quantity,omitempty"`
	UnitPrice float64 `json:"unit_price,omitempty"`
	Supplier  string  `json:"supplier,omitempty"`
	ProjectID string  `json:"project_id,omitempty"`
}

func (m Material) RecordID() string { return m.ID }
