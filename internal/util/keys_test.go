package util

import "testing"

func TestEntryKey(t *testing.T) {
	cases := []struct {
		ns   string
		id   int64
		want string
	}{
		{"content", 42, "render:content:42"},
		{"content-return", 42, "render:content-return:42"},
		{"content", 0, "render:content:0"},
	}
	for _, tc := range cases {
		if got := EntryKey(tc.ns, tc.id); got != tc.want {
			t.Fatalf("EntryKey(%q, %d): got %q want %q", tc.ns, tc.id, got, tc.want)
		}
	}
}

func TestEntryKeyNamespacesDoNotCollide(t *testing.T) {
	if EntryKey("content", 42) == EntryKey("content-return", 42) {
		t.Fatalf("namespaces must partition the key space")
	}
}
