package parsers

import (
	"bytes"
	"strings"
)

func normalizeHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(s)
}

// findColumn searches for a column by multiple possible names (case-insensitive).
// Spaces, underscores, and hyphens are ignored.
func findColumn(header []string, possibleNames []string) int {
	for _, name := range possibleNames {
		want := normalizeHeader(name)
		for i, col := range header {
			if normalizeHeader(col) == want {
				return i
			}
		}
	}
	return -1
}

// preprocessCSVData strips a UTF-8 BOM, normalizes line endings and detects
// whether the file is comma or tab separated.
func preprocessCSVData(data []byte) (string, rune, error) {
	if len(data) == 0 {
		return "", ',', ErrEmptyFile
	}

	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	cleaned := string(bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n")))

	lines := strings.SplitN(cleaned, "\n", 6)
	if len(lines) > 5 {
		lines = lines[:5]
	}

	commaCount, tabCount := 0, 0
	for _, line := range lines {
		commaCount += strings.Count(line, ",")
		tabCount += strings.Count(line, "\t")
	}

	delimiter := ','
	if tabCount > commaCount {
		delimiter = '\t'
	}
	return cleaned, delimiter, nil
}

// detectHeaderRow scans the first rows for one containing a name column.
// Meeting reports put a summary block above the participant table, so the
// row with the most recognized columns wins. Returns -1 if none is found.
func detectHeaderRow(rows [][]string) int {
	maxRows := min(len(rows), 10)

	var known []string
	for _, group := range [][]string{teamColumns, nameColumns, attendedColumns, pointsColumns, sessionsColumns} {
		for _, c := range group {
			known = append(known, normalizeHeader(c))
		}
	}

	bestScore, bestRow := 0, -1
	for rowIdx := 0; rowIdx < maxRows; rowIdx++ {
		if findColumn(rows[rowIdx], nameColumns) < 0 {
			continue
		}
		score := 0
		for _, c := range rows[rowIdx] {
			norm := normalizeHeader(c)
			for _, k := range known {
				if norm == k {
					score++
					break
				}
			}
		}
		if score > bestScore {
			bestScore, bestRow = score, rowIdx
		}
	}
	return bestRow
}
