package debugcontext

import "testing"

func TestLocation_String(t *testing.T) {
	t.Run("with column", func(t *testing.T) {
		loc := Loc("main.lua", 12, 5)
		if loc.String() != "main.lua:12:5" {
			t.Errorf("Expected 'main.lua:12:5', got '%s'", loc.String())
		}
	})

	t.Run("without column", func(t *testing.T) {
		loc := Loc("main.lua", 12, 0)
		if loc.String() != "main.lua:12" {
			t.Errorf("Expected 'main.lua:12', got '%s'", loc.String())
		}
	})
}

func TestLocation_Accessors(t *testing.T) {
	loc := Loc("test.lua", 7, 3)

	if loc.FilePath() != "test.lua" {
		t.Errorf("Expected FilePath 'test.lua', got '%s'", loc.FilePath())
	}
	if loc.Line() != 7 {
		t.Errorf("Expected Line 7, got %d", loc.Line())
	}
	if loc.Column() != 3 {
		t.Errorf("Expected Column 3, got %d", loc.Column())
	}
	if loc.Width() != 0 {
		t.Errorf("Expected Width 0 for a point location, got %d", loc.Width())
	}
}

func TestSpan(t *testing.T) {
	t.Run("String renders a column range", func(t *testing.T) {
		loc := Span("main.lua", 4, 5, 3)
		if loc.Width() != 3 {
			t.Errorf("Expected Width 3, got %d", loc.Width())
		}
		if loc.String() != "main.lua:4:5-7" {
			t.Errorf("Expected 'main.lua:4:5-7', got '%s'", loc.String())
		}
	})

	t.Run("width of 1 renders as a single column, like a point", func(t *testing.T) {
		loc := Span("main.lua", 4, 5, 1)
		if loc.String() != "main.lua:4:5" {
			t.Errorf("Expected 'main.lua:4:5', got '%s'", loc.String())
		}
	})

	t.Run("grounds a pasted identifier's full width", func(t *testing.T) {
		// CAT!(foo, bar) pastes "foo" and "bar" into "foobar" starting at
		// the column "foo" occupied — the synthesized token is wider than
		// any single source token that produced it.
		loc := Span("main.lua", 2, 10, len("foobar"))
		if loc.String() != "main.lua:2:10-15" {
			t.Errorf("Expected 'main.lua:2:10-15', got '%s'", loc.String())
		}
	})
}
