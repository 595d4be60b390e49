package router

import "testing"

func TestHistoryPushTruncatesForward(t *testing.T) {
	h := NewHistory()
	h.Push(HistoryEntry{Path: "/a"})
	h.Push(HistoryEntry{Path: "/b"})
	h.Push(HistoryEntry{Path: "/c"})

	if !h.Move(-2) {
		t.Fatal("expected to move back two entries")
	}
	h.Push(HistoryEntry{Path: "/d"})

	got := h.Entries()
	if len(got) != 2 || got[0].Path != "/a" || got[1].Path != "/d" {
		t.Fatalf("unexpected entries: %+v", got)
	}
	if h.CanGoForward() {
		t.Error("forward entries should have been discarded")
	}
}

func TestHistoryMoveOutOfRange(t *testing.T) {
	h := NewHistory()
	if h.Move(-1) || h.Move(1) {
		t.Fatal("empty history must not move")
	}

	h.Push(HistoryEntry{Path: "/a"})
	if h.CanGoBack() {
		t.Error("single entry cannot go back")
	}
	if h.Move(1) {
		t.Error("moved past the newest entry")
	}
	if h.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0", h.Cursor())
	}
}

func TestHistoryReplaceKeepsForward(t *testing.T) {
	h := NewHistory()
	h.Replace(HistoryEntry{Path: "/a"})
	h.Push(HistoryEntry{Path: "/b"})
	h.Move(-1)
	h.Replace(HistoryEntry{Path: "/z"})

	got := h.Entries()
	if got[0].Path != "/z" || got[1].Path != "/b" {
		t.Fatalf("unexpected entries: %+v", got)
	}
	if cur := h.Current(); cur == nil || cur.Path != "/z" {
		t.Fatalf("current = %+v, want /z", cur)
	}
}

func TestHistoryClear(t *testing.T) {
	h := NewHistory()
	h.Push(HistoryEntry{Path: "/a"})
	h.Clear()

	if !h.IsEmpty() || h.Current() != nil || h.Cursor() != -1 {
		t.Fatal("history not cleared")
	}
}
