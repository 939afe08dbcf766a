package guidex

// Results represents a ranked window of guidelines with metadata.
// Scores only determine the order of Items and are not exposed.
type Results struct {
	// Items contains the guidelines in ranked order.
	Items []Guideline

	// Total is the number of guidelines that matched before windowing.
	Total int64

	// Took is the time taken to execute the search in milliseconds.
	Took int64

	// Query is the original query string for reference.
	Query string

	// NextOffset can be used for pagination.
	NextOffset *int
}
