// Package audit records who changed what in the product catalog. The recorder
// is an injected interface so business logic stays decoupled from the sink.
package audit

import "github.com/rs/zerolog"

// Recorder receives audit events for catalog mutations.
type Recorder interface {
	ProductAdded(productID, actor string)
	ProductEdited(productID, actor string, fields []string)
	ProductDeleted(productID, actor string)
}

type zerologRecorder struct {
	logger zerolog.Logger
}

// NewZerologRecorder returns a Recorder that writes structured audit events
// through the given logger.
func NewZerologRecorder(logger *zerolog.Logger) Recorder {
	return &zerologRecorder{
		logger: logger.With().Str("component", "audit").Logger(),
	}
}

func (r *zerologRecorder) ProductAdded(productID, actor string) {
	r.logger.Info().
		Str("event", "product_added").
		Str("product_id", productID).
		Str("actor", actor).
		Msg("product added")
}

func (r *zerologRecorder) ProductEdited(productID, actor string, fields []string) {
	r.logger.Info().
		Str("event", "product_edited").
		Str("product_id", productID).
		Str("actor", actor).
		Strs("fields", fields).
		Msg("product edited")
}

func (r *zerologRecorder) ProductDeleted(productID, actor string) {
	r.logger.Info().
		Str("event", "product_deleted").
		Str("product_id", productID).
		Str("actor", actor).
		Msg("product deleted")
}
