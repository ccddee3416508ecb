package observability

import "testing"

func TestFieldAccessors(t *testing.T) {
	cases := []struct {
		field Field
		key   string
		value interface{}
	}{
		{String("name", "report"), "name", "report"},
		{Int("pages", 3), "pages", 3},
		{Int64("bytes", int64(1 << 40)), "bytes", int64(1 << 40)},
		{Float64("width", 595.28), "width", 595.28},
	}
	for _, c := range cases {
		if c.field.Key() != c.key {
			t.Errorf("key = %q, want %q", c.field.Key(), c.key)
		}
		if c.field.Value() != c.value {
			t.Errorf("value for %q = %v, want %v", c.key, c.field.Value(), c.value)
		}
	}
}

func TestNopLoggerWith(t *testing.T) {
	var l Logger = NopLogger{}
	l = l.With(String("component", "writer"))
	l.Debug("no output expected")
	l.Error("still nothing", Error("err", nil))
}
