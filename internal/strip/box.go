package strip

import "fmt"

// Box is the layout box of a tab in cell space. Right and Bottom are
// exclusive.
type Box struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

func (b Box) Width() int  { return b.Right - b.Left }
func (b Box) Height() int { return b.Bottom - b.Top }

func (b Box) String() string {
	return fmt.Sprintf("[%d,%d]-[%d,%d]", b.Left, b.Top, b.Right, b.Bottom)
}
