package opener

import (
	"errors"
	"reflect"
	"testing"
)

func TestOpener_CommandLine(t *testing.T) {
	tests := []struct {
		name     string
		command  string
		args     []string
		goos     string
		wantName string
		wantArgs []string
	}{
		{"configured", "feh", []string{"--scale-down"}, "linux", "feh", []string{"--scale-down", "u"}},
		{"linux default", "", nil, "linux", "xdg-open", []string{"u"}},
		{"darwin default", "", nil, "darwin", "open", []string{"u"}},
		{"windows default", "", nil, "windows", "cmd", []string{"/c", "start", "", "u"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := New(tt.command, tt.args, nil)
			o.goos = tt.goos

			name, args := o.commandLine("u")
			if name != tt.wantName || !reflect.DeepEqual(args, tt.wantArgs) {
				t.Fatalf("commandLine = %q %v, want %q %v", name, args, tt.wantName, tt.wantArgs)
			}
		})
	}
}

func TestOpener_ConfiguredArgsNotMutated(t *testing.T) {
	base := make([]string, 1, 4)
	base[0] = "-x"
	o := New("viewer", base, nil)

	o.commandLine("a")
	_, args := o.commandLine("b")
	if !reflect.DeepEqual(args, []string{"-x", "b"}) {
		t.Fatalf("args = %v", args)
	}
}

func TestOpener_Open(t *testing.T) {
	o := New("viewer", nil, nil)

	var gotName string
	var gotArgs []string
	o.start = func(name string, args ...string) error {
		gotName, gotArgs = name, args
		return nil
	}

	if err := o.Open("https://img/w500/x.jpg"); err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if gotName != "viewer" || !reflect.DeepEqual(gotArgs, []string{"https://img/w500/x.jpg"}) {
		t.Fatalf("started %q %v", gotName, gotArgs)
	}

	boom := errors.New("not found")
	o.start = func(string, ...string) error { return boom }
	if err := o.Open("u"); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped start error", err)
	}

	if err := o.Open(""); err == nil {
		t.Fatalf("Open(\"\") returned nil error")
	}
}
