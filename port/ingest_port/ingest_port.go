package ingest_port

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=ingest_port.go -destination=../../mocks/mock_ingest_port.go -package=mocks

// IngestPort triggers one ingestion pass over the configured feeds and
// reports how many new articles were inserted.
type IngestPort interface {
	Execute(ctx context.Context) (int, error)
}
