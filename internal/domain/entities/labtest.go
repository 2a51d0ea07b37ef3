package entities

// LabTest is a laboratory test run on a site sample (concrete, soil, steel).
type LabTest struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	ProjectID string `json:"project_id,omitempty"`
	Sample    string `json:"sample,omitempty"`
	TestType  string `json:"test_type,omitempty"`
	Result    string `json:"result,omitempty"`
	Status    string `json:"status,omitempty"`
	TestedAt  string `json:"tested_at,omitempty"`
}

func (l LabTest) RecordID() string { return l.ID }
