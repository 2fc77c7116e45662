package content_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/goliatone/go-campaigns/internal/content"
)

func TestParseHistory_EmptyBlob(t *testing.T) {
	for _, raw := range []json.RawMessage{nil, json.RawMessage(""), json.RawMessage("null")} {
		records := content.ParseHistory(raw)
		if records == nil {
			t.Fatal("expected non-nil slice")
		}
		if len(records) != 0 {
			t.Fatalf("expected empty history, got %d records", len(records))
		}
	}
}

func TestParseHistory_MalformedBlob(t *testing.T) {
	cases := []string{
		`{"not":"an array"}`,
		`"just a string"`,
		`[1, 2, 3]`,
		`not json at all`,
	}
	for _, raw := range cases {
		records := content.ParseHistory(json.RawMessage(raw))
		if len(records) != 0 {
			t.Fatalf("blob %q: expected empty history, got %d records", raw, len(records))
		}
	}
}

func TestParseHistory_ValidBlob(t *testing.T) {
	raw := json.RawMessage(`[
		{"previous_text":"a","new_text":"b","edited_by":"alice","edited_at":"2025-06-01T12:00:00Z"},
		{"previous_text":"b","new_text":"c","edited_by":"bob","edited_at":"2025-06-01T13:00:00Z","notes":"tightened copy"}
	]`)

	records := content.ParseHistory(raw)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].PreviousText != "a" || records[0].NewText != "b" {
		t.Fatalf("unexpected first record: %+v", records[0])
	}
	if records[1].Notes == nil || *records[1].Notes != "tightened copy" {
		t.Fatalf("expected notes on second record, got %+v", records[1])
	}
}

func TestAppendHistory_PreservesPriorRecords(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	blob, err := content.AppendHistory(nil, content.EditHistoryRecord{
		PreviousText: "v1",
		NewText:      "v2",
		EditedBy:     "alice",
		EditedAt:     at,
	})
	if err != nil {
		t.Fatalf("append first: %v", err)
	}

	blob, err = content.AppendHistory(blob, content.EditHistoryRecord{
		PreviousText: "v2",
		NewText:      "v3",
		EditedBy:     "bob",
		EditedAt:     at.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("append second: %v", err)
	}

	records := content.ParseHistory(blob)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].EditedBy != "alice" || records[1].EditedBy != "bob" {
		t.Fatalf("append order broken: %+v", records)
	}
}

func TestAppendHistory_RecoversFromCorruptBlob(t *testing.T) {
	blob, err := content.AppendHistory(json.RawMessage(`{"corrupt": true}`), content.EditHistoryRecord{
		PreviousText: "x",
		NewText:      "y",
		EditedBy:     "carol",
		EditedAt:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("append over corrupt blob: %v", err)
	}

	records := content.ParseHistory(blob)
	if len(records) != 1 {
		t.Fatalf("expected corrupt blob reset to 1 record, got %d", len(records))
	}
	if records[0].EditedBy != "carol" {
		t.Fatalf("unexpected record: %+v", records[0])
	}
}
