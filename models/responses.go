package models

// ErrorResponse is the JSON body returned by the cloud API on any
// non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RemoveResponse reports whether a DELETE actually removed a document.
// Removing an absent ID is not an error; Removed is simply false.
type RemoveResponse struct {
	Removed bool `json:"removed"`
}

// ListResponse wraps a favourite collection listing. Length duplicates
// len(Items) so clients can validate the payload without iterating it.
type ListResponse[T Favourite] struct {
	Items  []T `json:"items"`
	Length int `json:"length"`
}
