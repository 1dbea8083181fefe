package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 2)
	tests := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},
		{5, 4, true},
		{6, 4, false},
		{5, 5, false},
		{1, 3, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("%v.Contains(%d, %d) = %v, want %v", r, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectIntersect(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 10, 10)

	if got := a.Intersect(b); got != NewRect(5, 5, 5, 5) {
		t.Errorf("Intersect() = %v, want (5,5,5,5)", got)
	}
	if got := a.Intersect(NewRect(20, 20, 1, 1)); !got.IsEmpty() {
		t.Errorf("Intersect() of disjoint rects = %v, want empty", got)
	}
	if !a.Intersects(b) || a.Intersects(NewRect(10, 0, 1, 1)) {
		t.Error("Intersects() wrong at the edge")
	}
}

func TestRectInset(t *testing.T) {
	if got := NewRect(0, 0, 10, 5).Inset(1); got != NewRect(1, 1, 8, 3) {
		t.Errorf("Inset(1) = %v", got)
	}
	if got := NewRect(0, 0, 1, 1).Inset(1); !got.IsEmpty() {
		t.Errorf("Inset(1) of 1x1 = %v, want empty", got)
	}
}

func TestWidths(t *testing.T) {
	tests := []struct {
		s    string
		want int
	}{
		{"abc", 3},
		{"日本", 4},
		{"", 0},
	}

	for _, tt := range tests {
		if got := StringWidth(tt.s); got != tt.want {
			t.Errorf("StringWidth(%q) = %d, want %d", tt.s, got, tt.want)
		}
	}
	if got := Truncate("hello world", 5, ""); got != "hello" {
		t.Errorf("Truncate() = %q", got)
	}
}

func TestAttributeFlags(t *testing.T) {
	if AttrBold != 1 || AttrDim != 2 || AttrReverse != 16 {
		t.Errorf("attribute values = %d %d %d", AttrBold, AttrDim, AttrReverse)
	}
	s := DefaultStyle().Bold().Reverse()
	if !s.Attributes.Has(AttrBold) || !s.Attributes.Has(AttrReverse) || s.Attributes.Has(AttrDim) {
		t.Errorf("style attributes = %b", s.Attributes)
	}
}
