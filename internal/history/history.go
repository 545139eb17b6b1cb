// Package history selects the window of logged measurements shown on the
// dashboard.
package history

// Size is the number of most recent rows the dashboard displays.
const Size = 18

// Tail returns the last n elements of rows in their original order. When
// fewer than n exist all of them are returned. The result never aliases rows.
func Tail[T any](rows []T, n int) []T {
	if n <= 0 || len(rows) == 0 {
		return nil
	}
	start := len(rows) - min(n, len(rows))
	out := make([]T, len(rows)-start)
	copy(out, rows[start:])
	return out
}
