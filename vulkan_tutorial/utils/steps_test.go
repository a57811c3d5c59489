package utils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestRunSteps(t *testing.T) {
	var out bytes.Buffer
	var ran []string
	step := func(name string, err error) Step {
		return Step{
			Name:   "create " + name,
			Banner: name + " created.",
			Run: func() error {
				ran = append(ran, name)
				return err
			},
		}
	}

	err := RunSteps(&out, []Step{step("instance", nil), step("surface", nil)})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(ran, ",") != "instance,surface" {
		t.Errorf("ran %v", ran)
	}
	if !strings.Contains(out.String(), "{########## instance created. ##########}") ||
		!strings.Contains(out.String(), "{########## surface created. ##########}") {
		t.Errorf("missing banners:\n%s", out.String())
	}

	out.Reset()
	ran = nil
	failure := errors.New("boom")
	err = RunSteps(&out, []Step{step("instance", nil), step("device", failure), step("swapchain", nil)})
	if !errors.Is(err, failure) {
		t.Fatalf("err = %v, want boom", err)
	}
	if !strings.HasPrefix(err.Error(), "create device") {
		t.Errorf("err = %q, want it prefixed with the step name", err)
	}
	if strings.Join(ran, ",") != "instance,device" {
		t.Errorf("ran %v, want the sequence to stop at the failure", ran)
	}
	if strings.Contains(out.String(), "device created.") {
		t.Errorf("banner printed for failed step:\n%s", out.String())
	}
}
