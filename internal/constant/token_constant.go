package constant

const (
	// SortAsc / SortDesc are the explorer txlist orderings.
	SortAsc  = "asc"
	SortDesc = "desc"

	// StartBlock is where address discovery begins scanning token history.
	StartBlock uint64 = 0
)
