package maze

import (
	"errors"
	"testing"
)

var testLayout = []string{
	"WWWWW",
	"W.O W",
	" .P. ",
	"W-W.W",
	"WWWWW",
}

func newTestMaze(t *testing.T) *Maze {
	t.Helper()
	m, err := New(testLayout, DefaultScoring())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return m
}

func TestClassicDimensions(t *testing.T) {
	m := Classic(DefaultScoring())

	if m.Width() != ClassicWidth || m.Height() != ClassicHeight {
		t.Fatalf("Classic() is %dx%d, expected %dx%d", m.Width(), m.Height(), ClassicWidth, ClassicHeight)
	}
	if m.Remaining() != 246 {
		t.Errorf("Remaining() = %d, expected 246 dots", m.Remaining())
	}
	if m.IsWall(ClassicSpawn) {
		t.Errorf("Classic spawn %v is a wall", ClassicSpawn)
	}
	if _, ok := m.Spawn(); ok {
		t.Error("Classic layout has no actor marker, Spawn() should report false")
	}
}

func TestDecode(t *testing.T) {
	m := newTestMaze(t)

	tests := []struct {
		name string
		pos  Position
		want Cell
	}{
		{"wall", Position{0, 0}, Wall},
		{"dot", Position{1, 1}, Dot},
		{"power pellet", Position{1, 2}, PowerPellet},
		{"blank", Position{1, 3}, Empty},
		{"spawn marker", Position{2, 2}, Empty},
		{"gate", Position{3, 1}, Wall},
		{"tunnel", Position{2, 0}, Empty},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.CellAt(tc.pos); got != tc.want {
				t.Errorf("CellAt(%v) = %s, expected %s", tc.pos, got, tc.want)
			}
		})
	}

	spawn, ok := m.Spawn()
	if !ok || spawn != (Position{2, 2}) {
		t.Errorf("Spawn() = %v, %v; expected {2 2}, true", spawn, ok)
	}
	if m.Remaining() != 5 {
		t.Errorf("Remaining() = %d, expected 5", m.Remaining())
	}
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name   string
		layout []string
		want   error
	}{
		{"nil layout", nil, ErrEmptyLayout},
		{"empty row", []string{""}, ErrEmptyLayout},
		{"ragged", []string{"WWW", "W."}, ErrRaggedLayout},
		{"unknown char", []string{"WXW"}, ErrUnknownCell},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.layout, DefaultScoring())
			if !errors.Is(err, tc.want) {
				t.Errorf("New() error = %v, expected %v", err, tc.want)
			}
		})
	}
}

func TestCellAtWrapsColumns(t *testing.T) {
	m := newTestMaze(t)

	if m.CellAt(Position{1, -4}) != m.CellAt(Position{1, 1}) {
		t.Error("column -4 should wrap to column 1")
	}
	if m.CellAt(Position{1, 7}) != m.CellAt(Position{1, 2}) {
		t.Error("column 7 should wrap to column 2")
	}
}

func TestCellAtRowOutOfBoundsPanics(t *testing.T) {
	m := newTestMaze(t)

	for _, row := range []int{-1, m.Height()} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("CellAt(row %d) should panic", row)
				}
			}()
			m.CellAt(Position{Row: row, Col: 1})
		}()
	}
}

func TestConsumeIdempotent(t *testing.T) {
	m := newTestMaze(t)
	dot := Position{1, 1}

	first := m.Consume(dot)
	if !first.Collected || first.Points != 10 || first.Item != Dot {
		t.Fatalf("first Consume() = %+v, expected dot worth 10", first)
	}

	second := m.Consume(dot)
	if second.Collected || second.Points != 0 {
		t.Errorf("second Consume() = %+v, expected nothing collected", second)
	}

	if m.CellAt(dot) != Empty {
		t.Errorf("consumed cell is %s, expected empty", m.CellAt(dot))
	}
	if !m.Collected(dot) {
		t.Error("Collected() should report the eaten dot")
	}
	if m.Remaining() != 4 {
		t.Errorf("Remaining() = %d, expected 4", m.Remaining())
	}
}

func TestConsumePowerPellet(t *testing.T) {
	m := newTestMaze(t)

	got := m.Consume(Position{1, 2})
	if !got.Collected || got.Points != 50 || got.Item != PowerPellet {
		t.Errorf("Consume(pellet) = %+v, expected power pellet worth 50", got)
	}
}

func TestConsumeCustomScoring(t *testing.T) {
	m, err := New(testLayout, Scoring{Dot: 1, PowerPellet: 5})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if got := m.Consume(Position{1, 1}); got.Points != 1 {
		t.Errorf("dot worth %d, expected 1", got.Points)
	}
	if got := m.Consume(Position{1, 2}); got.Points != 5 {
		t.Errorf("pellet worth %d, expected 5", got.Points)
	}
}

func TestConsumeNonConsumable(t *testing.T) {
	m := newTestMaze(t)

	for _, pos := range []Position{{0, 0}, {1, 3}, {2, 2}} {
		if got := m.Consume(pos); got.Collected || got.Points != 0 {
			t.Errorf("Consume(%v) = %+v, expected nothing", pos, got)
		}
	}
	if m.Remaining() != 5 {
		t.Errorf("Remaining() = %d, expected 5", m.Remaining())
	}
}

func TestConsumeWrappedColumnSharesCollectedSet(t *testing.T) {
	m := newTestMaze(t)

	m.Consume(Position{2, 1})
	if got := m.Consume(Position{2, 1 + m.Width()}); got.Collected {
		t.Error("wrapped column should address the already eaten cell")
	}
}

func TestCellsIsACopy(t *testing.T) {
	m := newTestMaze(t)

	cells := m.Cells()
	cells[1][1] = Wall
	if m.CellAt(Position{1, 1}) != Dot {
		t.Error("mutating Cells() result must not change the maze")
	}

	m.Consume(Position{1, 1})
	if m.Cells()[1][1] != Empty {
		t.Error("Cells() should reflect consumption")
	}
}
