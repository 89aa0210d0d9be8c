package repositories_test

import "strconv"

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
