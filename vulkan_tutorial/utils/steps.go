package utils

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/loov/hrtime"
)

type Step struct {
	// Name is used to wrap a failure, e.g. "create swapchain".
	Name string
	// Banner is printed on success, e.g. "Swap chain created.".
	Banner string
	Run    func() error
}

// RunSteps runs each step in order, printing a banner once it succeeds. The
// first failure stops the sequence and is returned wrapped with the step name.
func RunSteps(out io.Writer, steps []Step) error {
	for _, step := range steps {
		start := hrtime.Now()

		err := step.Run()
		if err != nil {
			return errors.Wrapf(err, "%s", step.Name)
		}

		fmt.Fprintf(out, "\n{########## %s ##########} (%s)\n", step.Banner, hrtime.Since(start))
	}

	return nil
}
