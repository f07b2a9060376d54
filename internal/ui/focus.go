package ui

// FocusID names a focusable region of the screen.
type FocusID string

const (
	FocusInput FocusID = "input"
	FocusGrid  FocusID = "grid"
)

// FocusManager tracks and rotates focus across regions.
type FocusManager struct {
	Current  FocusID
	Order    []FocusID // Tab order
	OnChange func(from, to FocusID)
}

// NewFocusManager starts focused on the first region in order.
func NewFocusManager(order ...FocusID) *FocusManager {
	f := &FocusManager{Order: order}
	if len(order) > 0 {
		f.Current = order[0]
	}
	return f
}

// Next advances focus to the next region, wrapping around.
func (f *FocusManager) Next() FocusID {
	return f.step(1)
}

// Prev moves focus to the previous region, wrapping around.
func (f *FocusManager) Prev() FocusID {
	return f.step(-1)
}

// Is reports whether id currently has focus.
func (f *FocusManager) Is(id FocusID) bool {
	return f.Current == id
}

// SetFocus focuses id. Returns false if id is not in Order.
func (f *FocusManager) SetFocus(id FocusID) bool {
	for _, o := range f.Order {
		if o == id {
			f.change(id)
			return true
		}
	}
	return false
}

func (f *FocusManager) step(delta int) FocusID {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	idx := -1
	for i, id := range f.Order {
		if id == f.Current {
			idx = i
			break
		}
	}
	if idx < 0 && delta < 0 {
		idx = 0
	}
	f.change(f.Order[((idx+delta)%n+n)%n])
	return f.Current
}

func (f *FocusManager) change(to FocusID) {
	from := f.Current
	f.Current = to
	if f.OnChange != nil && from != to {
		f.OnChange(from, to)
	}
}
