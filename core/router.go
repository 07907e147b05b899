package core

// ScreenStack holds the overlay screens above the active tab, bottom to
// top. Only the top screen receives input.
type ScreenStack struct {
	items []Screen
}

func (s *ScreenStack) Push(screen Screen) {
	if screen == nil {
		return
	}
	s.items = append(s.items, screen)
}

func (s *ScreenStack) Pop() Screen {
	if len(s.items) == 0 {
		return nil
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return last
}

// ReplaceTop swaps the top screen in place after an Update returned a new
// value. No-op on an empty stack or a nil replacement.
func (s *ScreenStack) ReplaceTop(screen Screen) {
	if screen == nil || len(s.items) == 0 {
		return
	}
	s.items[len(s.items)-1] = screen
}

func (s ScreenStack) Top() Screen {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

// HasScope reports whether any screen on the stack carries the scope,
// not just the top one. Used to keep singleton overlays from stacking.
func (s ScreenStack) HasScope(scope string) bool {
	for _, screen := range s.items {
		if screen.Scope() == scope {
			return true
		}
	}
	return false
}

func (s ScreenStack) Len() int {
	return len(s.items)
}
