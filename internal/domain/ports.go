package domain

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound reports a remote 404: the referenced identifier does not exist.
var ErrNotFound = errors.New("backend: not found")

// StatusError is any other non-2xx answer from the backend.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string { return fmt.Sprintf("backend: status %d", e.Code) }

// PropertyBackend is the outbound port to the remote property service.
// The dashboard owns no data: every read and every computation goes
// through this interface.
type PropertyBackend interface {
	ListProperties(ctx context.Context) (ListResponse, error)
	GetProperty(ctx context.Context, id int64) (DetailResponse, error)
	CompareByID(ctx context.Context, id1, id2 int64) (CompareResponse, error)
	FindProperties(ctx context.Context, req SearchRequest) (ListResponse, error)
	Predict(ctx context.Context, req PredictRequest) (PredictResponse, error)
	Recommend(ctx context.Context, req RecommendRequest) (RecommendResponse, error)
}
