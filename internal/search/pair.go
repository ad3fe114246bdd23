package search

// Pair identifies one (account, region) combination to query.
type Pair struct {
	Account string
	Region  string
}

// Pairs returns the cartesian product of accounts and regions, account-major
// then region-minor, preserving input order.
func Pairs(accounts, regions []string) []Pair {
	pairs := make([]Pair, 0, len(accounts)*len(regions))
	for _, account := range accounts {
		for _, region := range regions {
			pairs = append(pairs, Pair{Account: account, Region: region})
		}
	}
	return pairs
}
