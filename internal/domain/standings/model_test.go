package standings

import "testing"

func TestParseDiff(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  int
		ok    bool
	}{
		{name: "plain int", value: 12, want: 12, ok: true},
		{name: "json float", value: float64(-3), want: -3, ok: true},
		{name: "signed positive string", value: "+12", want: 12, ok: true},
		{name: "signed negative string", value: "-3", want: -3, ok: true},
		{name: "padded string", value: " +7 ", want: 7, ok: true},
		{name: "garbage string", value: "n/a", want: 0, ok: false},
		{name: "nil", value: nil, want: 0, ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseDiff(tc.value)
			if ok != tc.ok {
				t.Fatalf("unexpected ok: got=%t want=%t", ok, tc.ok)
			}
			if got != tc.want {
				t.Fatalf("unexpected diff: got=%d want=%d", got, tc.want)
			}
		})
	}
}
