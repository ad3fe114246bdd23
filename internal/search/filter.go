package search

// Matcher is implemented by every row variant; rows decide which fields they
// can match on.
type Matcher interface {
	Match(field, value string) bool
}

// Filter maps match fields to the substring each has to contain.
type Filter map[string]string

// Apply returns the rows matching every entry of the filter. An empty filter
// passes all rows through unchanged.
func Apply[R Matcher](rows []R, filter Filter) []R {
	if len(filter) == 0 {
		return rows
	}

	var matched []R
	for _, row := range rows {
		keep := true
		for field, value := range filter {
			if !row.Match(field, value) {
				keep = false
				break
			}
		}
		if keep {
			matched = append(matched, row)
		}
	}
	return matched
}
