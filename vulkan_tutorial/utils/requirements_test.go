package utils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestMissingNames(t *testing.T) {
	available := map[string]int{"a": 1, "b": 2, "c": 3}

	if missing := MissingNames(available, []string{"a", "c"}); len(missing) != 0 {
		t.Errorf("MissingNames() = %v, want none", missing)
	}

	missing := MissingNames(available, []string{"d", "a", "e"})
	if len(missing) != 2 || missing[0] != "d" || missing[1] != "e" {
		t.Errorf("MissingNames() = %v, want [d e]", missing)
	}

	if missing := MissingNames(map[string]int{}, nil); len(missing) != 0 {
		t.Errorf("MissingNames() = %v, want none", missing)
	}
}

func TestSortedNames(t *testing.T) {
	names := SortedNames(map[string]struct{}{"VK_b": {}, "VK_c": {}, "VK_a": {}})
	if strings.Join(names, ",") != "VK_a,VK_b,VK_c" {
		t.Errorf("SortedNames() = %v", names)
	}
}

func TestCheckRequirements(t *testing.T) {
	available := map[string]struct{}{
		"VK_KHR_surface":     {},
		"VK_KHR_xcb_surface": {},
		"VK_EXT_debug_utils": {},
	}

	var out bytes.Buffer
	err := CheckRequirements(&out, "instance extensions", available, []string{"VK_KHR_surface", "VK_KHR_xcb_surface"}, ErrMissingExtension)
	if err != nil {
		t.Fatalf("CheckRequirements() = %v", err)
	}
	for _, want := range []string{"Available instance extensions", "Required instance extensions", "\tVK_EXT_debug_utils\n", "requirements fulfilled"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}

	out.Reset()
	err = CheckRequirements(&out, "validation layers", map[string]struct{}{}, ValidationLayers, ErrMissingLayer)
	if !errors.Is(err, ErrMissingLayer) {
		t.Fatalf("CheckRequirements() = %v, want ErrMissingLayer", err)
	}
	if !strings.Contains(err.Error(), "VK_LAYER_KHRONOS_validation") {
		t.Errorf("error %q does not name the missing layer", err)
	}
	if !strings.Contains(out.String(), "ERROR! Missing VK_LAYER_KHRONOS_validation") {
		t.Errorf("output does not report the missing layer:\n%s", out.String())
	}
}
