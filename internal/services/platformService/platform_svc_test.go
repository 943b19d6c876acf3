package platformservice

import (
	"context"
	"testing"
	"testing/fstest"
)

func envOf(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		goos string
		env  map[string]string
		fs   fstest.MapFS
		want Family
	}{
		{name: "android GOOS", goos: "android", want: FamilyAndroid},
		{name: "darwin", goos: "darwin", want: FamilyDarwin},
		{name: "plain linux", goos: "linux", fs: fstest.MapFS{}, want: FamilyUnix},
		{
			name: "linux with ANDROID_ROOT",
			goos: "linux",
			env:  map[string]string{"ANDROID_ROOT": "/system"},
			want: FamilyAndroid,
		},
		{
			name: "linux with build.prop",
			goos: "linux",
			fs:   fstest.MapFS{"system/build.prop": {Data: []byte("ro.build.id=X")}},
			want: FamilyAndroid,
		},
		{name: "empty ANDROID_ROOT", goos: "linux", env: map[string]string{"ANDROID_ROOT": ""}, want: FamilyUnix},
		{name: "freebsd falls back to unix", goos: "freebsd", want: FamilyUnix},
		{name: "unknown GOOS", goos: "", want: FamilyUnix},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.goos, envOf(tt.env), tt.fs)
			if got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFamilyString(t *testing.T) {
	for f, want := range map[Family]string{
		FamilyUnix:    "unix",
		FamilyAndroid: "android",
		FamilyDarwin:  "darwin",
	} {
		if got := f.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", f, got, want)
		}
	}
}

func TestDetect_NeverEmpty(t *testing.T) {
	pi := Detect(context.Background(), envOf(nil), fstest.MapFS{})

	if pi.KernelName == "" || pi.KernelRelease == "" || pi.Architecture == "" {
		t.Errorf("Detect left empty fields: %+v", pi)
	}
	t.Logf("detected: %+v", pi)
}
