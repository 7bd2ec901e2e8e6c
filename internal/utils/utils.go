package utils

import "strconv"

// IntToString converts an integer to string
func IntToString(i int) string {
	return strconv.Itoa(i)
}
