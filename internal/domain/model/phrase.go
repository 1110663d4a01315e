package model

import "github.com/google/uuid"

// Phrase is one input line traveling through the pipeline. The reader fills
// LineNo and Raw, a normalize worker fills the derived fields, the store
// stamps RunID when the batch is written.
type Phrase struct {
	RunID      uuid.UUID
	LineNo     int
	Raw        string
	Normalized string
	Terms      []string
	Quantity   *int64
	ErrorType  string
}
