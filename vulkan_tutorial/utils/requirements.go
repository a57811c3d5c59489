package utils

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
)

// SortedNames returns the keys of an extension or layer map in lexical order.
func SortedNames[V any](available map[string]V) []string {
	names := make([]string, 0, len(available))
	for name := range available {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MissingNames returns every entry of required that is not a key of available,
// in the order they were required.
func MissingNames[V any](available map[string]V, required []string) []string {
	var missing []string
	for _, name := range required {
		if _, ok := available[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// CheckRequirements prints the available and required lists under title and
// returns an error marked with kind naming everything that is missing.
func CheckRequirements[V any](out io.Writer, title string, available map[string]V, required []string, kind error) error {
	PrintNames(out, "Available "+title, SortedNames(available))
	PrintNames(out, "Required "+title, required)

	missing := MissingNames(available, required)
	if len(missing) > 0 {
		for _, name := range missing {
			fmt.Fprintf(out, "ERROR! Missing %s\n", name)
		}
		return errors.Wrapf(kind, "%s", strings.Join(missing, ", "))
	}

	fmt.Fprintf(out, "%s requirements fulfilled!\n", title)
	return nil
}

func PrintNames(out io.Writer, title string, names []string) {
	fmt.Fprintf(out, "\n%s:\n~~~~~~~~~~~~~~~~~~~~~~~~\n", title)
	for _, name := range names {
		fmt.Fprintf(out, "\t%s\n", name)
	}
}
