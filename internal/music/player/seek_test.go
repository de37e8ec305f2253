package player

import (
	"errors"
	"testing"
	"time"
)

func TestParsePosition(t *testing.T) {
	cases := []struct {
		spec    string
		want    time.Duration
		wantErr bool
	}{
		{spec: "90", want: 90 * time.Second},
		{spec: "0", want: 0},
		{spec: "1:30", want: 90 * time.Second},
		{spec: "0:05", want: 5 * time.Second},
		{spec: "1:02:03", want: time.Hour + 2*time.Minute + 3*time.Second},
		{spec: " 2:00 ", want: 2 * time.Minute},
		{spec: "", wantErr: true},
		{spec: "abc", wantErr: true},
		{spec: "-5", wantErr: true},
		{spec: "1:-30", wantErr: true},
		{spec: "1:2:3:4", wantErr: true},
		{spec: "1:", wantErr: true},
		{spec: "1.5", wantErr: true},
	}

	for _, tc := range cases {
		got, err := ParsePosition(tc.spec)
		if tc.wantErr {
			if !errors.Is(err, ErrBadSeekFormat) {
				t.Errorf("ParsePosition(%q) error = %v, want ErrBadSeekFormat", tc.spec, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePosition(%q) unexpected error: %v", tc.spec, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePosition(%q) = %s, want %s", tc.spec, got, tc.want)
		}
	}
}
