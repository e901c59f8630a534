package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// deleteResponse mirrors the delete count of a single-document removal.
type deleteResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}
