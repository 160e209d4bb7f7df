package cel

// Window is the visibility interval of a single cel, expressed as
// percentage offsets of the total animation duration. The cel is visible
// for [Start, End) and hidden outside it.
type Window struct {
	Start float64
	End   float64
}

// Timeline is the result of partitioning a Spec: the total cycle length,
// the share of the timeline a single frame occupies (in percentage points)
// and one visibility window per cel, in cel order.
type Timeline struct {
	TotalFrames   int
	FrameFraction float64
	Windows       []Window
}

// Partition validates the spec and splits the [0, 100] timeline into one
// window per cel, proportional to its frame count.
//
// Windows are contiguous and non-overlapping: window i starts at the exact
// float64 value window i-1 ends at, and each boundary is computed from the
// running frame total as cum*100/totalFrames, so the final window ends at
// exactly 100 with no rounding residue (totalFrames*100/totalFrames is
// exact in IEEE 754). Single pass, O(n).
func Partition(cels Spec) (*Timeline, error) {
	if err := cels.Validate(); err != nil {
		return nil, err
	}

	total := cels.TotalFrames()
	tl := &Timeline{
		TotalFrames:   total,
		FrameFraction: 100 / float64(total),
		Windows:       make([]Window, 0, len(cels)),
	}

	var cum int
	prev := 0.0
	for _, frames := range cels {
		cum += frames
		end := float64(cum) * 100 / float64(total)
		tl.Windows = append(tl.Windows, Window{Start: prev, End: end})
		prev = end
	}
	return tl, nil
}
