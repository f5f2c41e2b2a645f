package store

import (
	"context"
	"testing"
)

func TestSearchConversations(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	chat(t, s, "alice", "Go has goroutines", "Python is interpreted", "I like Go channels")
	chat(t, s, "bob", "Rust has a borrow checker")

	results, err := s.SearchConversations(ctx, SearchParams{UserID: "alice", Query: "go"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Message != "I like Go channels" {
		t.Errorf("expected newest first, got %q", results[0].Message)
	}

	// Responses are searched too.
	results, _ = s.SearchConversations(ctx, SearchParams{Query: "reply to rust"})
	if len(results) != 1 || results[0].UserID != "bob" {
		t.Fatalf("expected bob's conversation, got %+v", results)
	}

	results, _ = s.SearchConversations(ctx, SearchParams{UserID: "alice", Query: "javascript"})
	if len(results) != 0 {
		t.Fatalf("expected 0 results, got %d", len(results))
	}
}

func TestSearchConversations_LiteralWildcards(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	chat(t, s, "alice", "battery at 100% now", "plain text")

	results, _ := s.SearchConversations(ctx, SearchParams{Query: "100%"})
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	results, _ = s.SearchConversations(ctx, SearchParams{Query: "%"})
	if len(results) != 1 {
		t.Fatalf("expected %% to match literally, got %d", len(results))
	}
}

func TestSearchConversations_SkipsSoftDeleted(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	chat(t, s, "alice", "remember the garden")
	s.Reset(ctx, ResetParams{UserID: "alice"})

	results, _ := s.SearchConversations(ctx, SearchParams{Query: "garden"})
	if len(results) != 0 {
		t.Fatalf("expected 0 results, got %d", len(results))
	}
}
