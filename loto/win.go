package loto

// WinResult summarises how a ticket stands against the numbers called
// so far.
type WinResult struct {
	Rows      []int `json:"rows"`       // row indices with all 5 numbers called
	Matched   int   `json:"matched"`    // placed numbers already called
	FullHouse bool  `json:"full_house"` // all 15 called
}

// CheckWin evaluates a grid against the set of called numbers. A row
// with all five of its numbers called is a line win; all fifteen is a
// full house. The grid itself is never modified.
func CheckWin(g Grid, called map[int]bool) WinResult {
	res := WinResult{Rows: []int{}}
	for r := 0; r < Rows; r++ {
		hits := 0
		for c := 0; c < Cols; c++ {
			if g[r][c] != Empty && called[g[r][c]] {
				hits++
			}
		}
		res.Matched += hits
		if hits == NumbersPerRow {
			res.Rows = append(res.Rows, r)
		}
	}
	res.FullHouse = res.Matched == TotalNumbers
	return res
}
