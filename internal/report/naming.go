package report

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// maxSuffix bounds the search for a free report name.
const maxSuffix = 10_000

// FormatThreshold prints a threshold in its shortest form ("80", "85.5").
func FormatThreshold(threshold float64) string {
	return strconv.FormatFloat(threshold, 'f', -1, 64)
}

// OutputName returns the preferred report file name for an input file:
// similarity_<input base name>_<threshold>%.xlsx.
func OutputName(input string, threshold float64) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	return fmt.Sprintf("similarity_%s_%s%%.xlsx", base, FormatThreshold(threshold))
}

// SheetName returns the title of the report sheet.
func SheetName(threshold float64) string {
	return fmt.Sprintf("Similarity %s%%+", FormatThreshold(threshold))
}

// CreateUnique creates name in dir, or name_1, name_2, ... when it is taken.
// The file is opened with O_EXCL so an existing report is never truncated.
func CreateUnique(dir, name string) (*os.File, error) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	for i := 0; i <= maxSuffix; i++ {
		candidate := name
		if i > 0 {
			candidate = fmt.Sprintf("%s_%d%s", stem, i, ext)
		}

		path := filepath.Join(dir, candidate)

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return f, nil
		}

		if !errors.Is(err, fs.ErrExist) {
			return nil, &WriteError{Path: path, Err: err}
		}
	}

	return nil, &WriteError{
		Path: filepath.Join(dir, name),
		Err:  fmt.Errorf("no free file name after %d attempts", maxSuffix),
	}
}
