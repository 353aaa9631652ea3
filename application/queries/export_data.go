package queries

// ExportDataQuery asks for a downloadable backup of the user document
type ExportDataQuery struct{}

// Validate validates the query
func (q ExportDataQuery) Validate() error {
	return nil
}

// ExportDataResult carries the serialized backup and the suggested filename
type ExportDataResult struct {
	Filename string `json:"filename"`
	Payload  []byte `json:"payload"`
}
