package casestore

import (
	"fmt"
	"slices"
	"testing"
)

func TestPushRecentBoundAndDedup(t *testing.T) {
	var list []string
	for i := 0; i < 15; i++ {
		list = PushRecent(list, fmt.Sprintf("/cases/%02d.json", i), RecentLimit)
	}
	if len(list) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(list))
	}
	for i, path := range list {
		if want := fmt.Sprintf("/cases/%02d.json", 14-i); path != want {
			t.Fatalf("entry %d = %q, want %q", i, path, want)
		}
	}

	again := PushRecent(list, "/cases/08.json", RecentLimit)
	if len(again) != 10 {
		t.Fatalf("re-push grew the list to %d", len(again))
	}
	if again[0] != "/cases/08.json" {
		t.Fatalf("expected re-pushed path at front, got %v", again)
	}
	if n := countOf(again, "/cases/08.json"); n != 1 {
		t.Fatalf("expected single occurrence, found %d", n)
	}
	if slices.Equal(list, again) {
		t.Fatal("expected order change")
	}
	if list[0] != "/cases/14.json" {
		t.Fatal("PushRecent must not modify its input")
	}
}

func TestPushRecentZeroLimit(t *testing.T) {
	if got := PushRecent([]string{"a"}, "b", 0); len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}
}

func countOf(list []string, target string) int {
	n := 0
	for _, v := range list {
		if v == target {
			n++
		}
	}
	return n
}
