package rangemap

import (
	"bytes"
	"cmp"
	"log/slog"
	"strings"
	"testing"
)

func TestNewWithOptions_Invalid(t *testing.T) {
	_, err := NewWithOptions[int](0, Options[int]{})
	if err == nil {
		t.Error("Expected error for nil Less")
	}

	_, err = NewWithOptions[int](0, Options[int]{Less: cmp.Less[int], Degree: 1})
	if err == nil {
		t.Error("Expected error for degree 1")
	}
}

func TestNewWithOptions_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m, err := NewWithOptions[int](0, Options[int]{
		Less:   cmp.Less[int],
		Degree: 2,
		Logger: logger,
	})
	if err != nil {
		t.Fatal(err)
	}

	m.Assign(5, 10, 0)
	if buf.Len() != 0 {
		t.Errorf("Unexpected log output for no-op assign: %s", buf.String())
	}

	m.Assign(5, 10, 1)
	if !strings.Contains(buf.String(), "rangemap/Map.Assign") {
		t.Errorf("Missing assign log: %s", buf.String())
	}
}

func TestNewFunc_ReverseOrder(t *testing.T) {
	// Keys ordered from high to low, so [10, 5) is a valid interval.
	m := NewFunc[int](0, func(a, b int) bool { return a > b })
	m.Assign(5, 10, 1)
	if m.Len() != 0 {
		t.Errorf("Len() %d != 0", m.Len())
	}

	m.Assign(10, 5, 1)
	for k := 11; k > 3; k-- {
		exp := 0
		if k <= 10 && k > 5 {
			exp = 1
		}
		if v := m.Get(k); v != exp {
			t.Errorf("Get(%d) %d != %d", k, v, exp)
		}
	}
	if err := m.Validate(); err != nil {
		t.Error(err)
	}
}

func TestNewFunc_SmallDegree(t *testing.T) {
	m, err := NewWithOptions[string]("", Options[string]{Less: cmp.Less[string], Degree: 2})
	if err != nil {
		t.Fatal(err)
	}
	words := []string{"apple", "banana", "cherry", "date", "elder", "fig", "grape", "kiwi"}
	for i := 0; i+1 < len(words); i++ {
		m.Assign(words[i], words[i+1], words[i])
	}
	if m.Len() != len(words) {
		t.Errorf("Len() %d != %d", m.Len(), len(words))
	}
	if v := m.Get("cat"); v != "banana" {
		t.Errorf("Get(cat) %q != banana", v)
	}
	if v := m.Get("aardvark"); v != "" {
		t.Errorf("Get(aardvark) %q != \"\"", v)
	}
	if v := m.Get("zebra"); v != "" {
		t.Errorf("Get(zebra) %q != \"\"", v)
	}

	m.Assign("apple", "kiwi", "")
	if m.Len() != 0 {
		t.Errorf("Len() %d != 0, map: %s", m.Len(), m)
	}
	if err := m.Validate(); err != nil {
		t.Error(err)
	}
}
