package scan

import (
	"os"
	"regexp"
	"strconv"
)

var (
	intPattern   = regexp.MustCompile(`\d+`)
	floatPattern = regexp.MustCompile(`\d+\.\d+`)
)

// Ints returns every maximal digit run in s, converted to int, in order of
// appearance. A run that overflows int is an error from strconv.
func Ints(s string) ([]int, error) {
	matches := intPattern.FindAllString(s, -1)
	res := make([]int, 0, len(matches))
	for _, m := range matches {
		n, err := strconv.Atoi(m)
		if err != nil {
			return nil, err
		}
		res = append(res, n)
	}

	return res, nil
}

// Floats returns every "digits.digits" match in s, converted to float64, in
// order of appearance.
func Floats(s string) ([]float64, error) {
	matches := floatPattern.FindAllString(s, -1)
	res := make([]float64, 0, len(matches))
	for _, m := range matches {
		f, err := strconv.ParseFloat(m, 64)
		if err != nil {
			return nil, err
		}
		res = append(res, f)
	}

	return res, nil
}

// IntsFromFile extracts every integer from the contents of the named file.
func IntsFromFile(path string) ([]int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Ints(string(content))
}

// FloatsFromFile extracts every float from the contents of the named file.
func FloatsFromFile(path string) ([]float64, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Floats(string(content))
}
