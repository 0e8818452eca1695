package summarizer

import (
	"fmt"

	"github.com/dustin/go-humanize"

	apperrors "github.com/yanqian/protoform/pkg/errors"
)

var weekOrdinals = [...]string{
	"first", "second", "third", "fourth", "fifth", "sixth",
	"seventh", "eighth", "ninth", "tenth", "eleventh", "twelfth",
}

// weekOrdinal names the week at index i: spelled out up to the twelfth week,
// numeric ("13th") after that. A negative index is an error.
func weekOrdinal(i int) (string, error) {
	if i < 0 {
		return "", apperrors.Wrap(apperrors.CodeOutOfRange, fmt.Sprintf("no ordinal label for week index %d", i), nil)
	}
	if i < len(weekOrdinals) {
		return weekOrdinals[i], nil
	}
	return humanize.Ordinal(i + 1), nil
}
