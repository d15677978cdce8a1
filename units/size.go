package units

import (
	"errors"
	"github.com/dustin/go-humanize"
	"math"
	"strconv"
	"strings"
)

// Size parsing errors. The messages are shown to the user.
var (
	ErrEmpty    = errors.New("No input")
	ErrOverflow = errors.New("Size too big")
	ErrInvalid  = errors.New("Invalid input")
)

// ParseSize parses a human readable size like '4096', '10MB', '10 MiB' or '1.5gb'.
// Decimal units (kB, MB, GB, ...) are powers of 1000, binary units (KiB, MiB, GiB, ...) powers of 1024.
// The result is in bytes.
func ParseSize(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmpty
	}

	n, err := humanize.ParseBytes(s)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return 0, ErrOverflow
		}
		if strings.HasPrefix(err.Error(), "too large") {
			return 0, ErrOverflow
		}
		return 0, ErrInvalid
	}

	// the result is used as file offset
	if n > math.MaxInt64 {
		return 0, ErrOverflow
	}
	return int64(n), nil
}

// Format returns a human readable size (binary units) for log messages.
// Example: 1572864 -> '1.5 MiB'
func Format(size int64) string {
	if size < 0 {
		return "-" + humanize.IBytes(uint64(-size))
	}
	return humanize.IBytes(uint64(size))
}
