package libtex

import (
	"strings"
	"testing"

	"bistro-demo/libscn"
)

func TestKramArgs(t *testing.T) {
	c := &KramConverter{exe: "kram", params: DefaultParams()}

	got := c.args(&Job{Source: "a.png", Dest: "a.ktx2", Role: libscn.RoleBaseColor}, "a.ktx2.tmp")
	want := "encode -f bc7 -type 2d -srgb -zstd 0 -i a.png -o a.ktx2.tmp"
	if s := strings.Join(got, " "); s != want {
		t.Errorf("base color args should be\n%q but were\n%q", want, s)
	}

	got = c.args(&Job{Source: "n.png", Dest: "n.ktx2", Role: libscn.RoleNormal}, "n.ktx2.tmp")
	want = "encode -f bc7 -normal -type 2d -zstd 0 -i n.png -o n.ktx2.tmp"
	if s := strings.Join(got, " "); s != want {
		t.Errorf("normal map args should be\n%q but were\n%q", want, s)
	}

	got = c.args(&Job{Source: "orm.png", Dest: "orm.ktx2", Role: libscn.RoleMetallicRoughness}, "orm.ktx2.tmp")
	if s := strings.Join(got, " "); strings.Contains(s, "-srgb") {
		t.Errorf("data textures must stay linear, args were %q", s)
	}
}

func TestNewKramConverterMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	if _, err := NewKramConverter(DefaultParams()); err == nil {
		t.Errorf("expected an error when the converter is not on PATH")
	}
}

func TestConvertibleSources(t *testing.T) {
	for src, want := range map[string]bool{
		"a.png":  true,
		"b.JPG":  true,
		"c.jpeg": true,
		"d.ktx2": false,
		"e.bin":  false,
		"plain":  false,
	} {
		if got := convertible(src); got != want {
			t.Errorf("convertible(%q) should be %v but was %v", src, want, got)
		}
	}
}
