package service

// DamerauLevenshtein returns the minimum number of single-character
// insertions, deletions, substitutions, or adjacent transpositions needed to
// transform a into b. Unit cost per operation.
func DamerauLevenshtein(a, b string) int {
	lenA, lenB := len(a), len(b)
	if lenA == 0 {
		return lenB
	}
	if lenB == 0 {
		return lenA
	}

	// d has two extra rows/columns: row/column 0 holds the "maximum
	// distance" sentinel used by the transposition lookup.
	maxDist := lenA + lenB
	d := make([][]int, lenA+2)
	for i := range d {
		d[i] = make([]int, lenB+2)
	}
	d[0][0] = maxDist
	for i := 0; i <= lenA; i++ {
		d[i+1][0] = maxDist
		d[i+1][1] = i
	}
	for j := 0; j <= lenB; j++ {
		d[0][j+1] = maxDist
		d[1][j+1] = j
	}

	// lastRow[c] is the last row in which byte c occurred in a.
	var lastRow [256]int

	for i := 1; i <= lenA; i++ {
		lastColInRow := 0
		for j := 1; j <= lenB; j++ {
			row := lastRow[b[j-1]]
			col := lastColInRow

			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
				lastColInRow = j
			}

			substitution := d[i][j] + cost
			insertion := d[i+1][j] + 1
			deletion := d[i][j+1] + 1
			transposition := d[row][col] + (i - row - 1) + 1 + (j - col - 1)

			d[i+1][j+1] = min(substitution, insertion, deletion, transposition)
		}
		lastRow[a[i-1]] = i
	}

	return d[lenA+1][lenB+1]
}

// minDistanceFilter implements AdmissionFilter over a fixed minimum distance.
type minDistanceFilter struct {
	minDistance int
}

// NewMinDistanceFilter creates an admission filter that accepts a code only
// if it is at least minDistance away (Damerau-Levenshtein) from every
// already-accepted code. This is the dominant cost of a generation run:
// O(|accepted| * L^2) per candidate.
func NewMinDistanceFilter(minDistance int) AdmissionFilter {
	return &minDistanceFilter{minDistance: minDistance}
}

// Admit reports whether code keeps the minimum distance to all accepted codes.
// An empty accepted set admits vacuously.
func (f *minDistanceFilter) Admit(code string, accepted map[string]struct{}) bool {
	for other := range accepted {
		if DamerauLevenshtein(code, other) < f.minDistance {
			return false
		}
	}
	return true
}
