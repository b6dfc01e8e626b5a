package services

import (
	"errors"
	"testing"
)

func TestCastUpvoteIdempotent(t *testing.T) {
	gdb := newTestDB(t)
	votes := NewVoteService(gdb)

	author := createUser(t, gdb, "author")
	voter := createUser(t, gdb, "voter")
	post := createPost(t, gdb, author.ID, "Hello", "World")

	if err := votes.CastUpvote(voter.ID, post.ID); err != nil {
		t.Fatalf("first upvote failed: %v", err)
	}
	if err := votes.CastUpvote(voter.ID, post.ID); err != nil {
		t.Fatalf("second upvote failed: %v", err)
	}

	ups, downs := pairVoteRows(t, gdb, voter.ID, post.ID)
	if ups != 1 || downs != 0 {
		t.Errorf("expected 1 upvote and 0 downvotes, got %d and %d", ups, downs)
	}

	up, down, err := votes.Counts(post.ID)
	if err != nil {
		t.Fatalf("Counts failed: %v", err)
	}
	if up != 1 || down != 0 {
		t.Errorf("expected counts 1/0, got %d/%d", up, down)
	}
}

func TestVoteSwitchLeavesOneRow(t *testing.T) {
	gdb := newTestDB(t)
	votes := NewVoteService(gdb)

	author := createUser(t, gdb, "author")
	voter := createUser(t, gdb, "voter")
	post := createPost(t, gdb, author.ID, "Hello", "")

	steps := []struct {
		name     string
		cast     func(userID, postID uint) error
		wantUp   int64
		wantDown int64
	}{
		{"upvote", votes.CastUpvote, 1, 0},
		{"switch to downvote", votes.CastDownvote, 0, 1},
		{"repeat downvote", votes.CastDownvote, 0, 1},
		{"switch back to upvote", votes.CastUpvote, 1, 0},
	}

	for _, step := range steps {
		if err := step.cast(voter.ID, post.ID); err != nil {
			t.Fatalf("%s failed: %v", step.name, err)
		}
		ups, downs := pairVoteRows(t, gdb, voter.ID, post.ID)
		if ups != step.wantUp || downs != step.wantDown {
			t.Errorf("after %s: expected %d/%d vote rows, got %d/%d",
				step.name, step.wantUp, step.wantDown, ups, downs)
		}
		if ups+downs > 1 {
			t.Errorf("after %s: pair has %d rows across both kinds", step.name, ups+downs)
		}
	}
}

func TestAlternatingCastsKeepSingleVote(t *testing.T) {
	gdb := newTestDB(t)
	votes := NewVoteService(gdb)

	author := createUser(t, gdb, "author")
	voter := createUser(t, gdb, "voter")
	post := createPost(t, gdb, author.ID, "Hello", "")

	for i := 0; i < 10; i++ {
		cast := votes.CastUpvote
		if i%2 == 1 {
			cast = votes.CastDownvote
		}
		if err := cast(voter.ID, post.ID); err != nil {
			t.Fatalf("cast %d failed: %v", i, err)
		}

		ups, downs := pairVoteRows(t, gdb, voter.ID, post.ID)
		if ups+downs != 1 {
			t.Fatalf("after cast %d: pair has %d rows across both kinds", i, ups+downs)
		}
	}
}

func TestVotesFromDifferentUsersAccumulate(t *testing.T) {
	gdb := newTestDB(t)
	votes := NewVoteService(gdb)

	author := createUser(t, gdb, "author")
	alice := createUser(t, gdb, "alice")
	bob := createUser(t, gdb, "bob")
	post := createPost(t, gdb, author.ID, "Hello", "")

	if err := votes.CastUpvote(alice.ID, post.ID); err != nil {
		t.Fatalf("alice upvote failed: %v", err)
	}
	if err := votes.CastUpvote(bob.ID, post.ID); err != nil {
		t.Fatalf("bob upvote failed: %v", err)
	}
	if err := votes.CastDownvote(bob.ID, post.ID); err != nil {
		t.Fatalf("bob downvote failed: %v", err)
	}

	up, down, err := votes.Counts(post.ID)
	if err != nil {
		t.Fatalf("Counts failed: %v", err)
	}
	if up != 1 || down != 1 {
		t.Errorf("expected counts 1/1, got %d/%d", up, down)
	}
}

func TestCastVoteOnUnknownPost(t *testing.T) {
	gdb := newTestDB(t)
	votes := NewVoteService(gdb)

	voter := createUser(t, gdb, "voter")

	if err := votes.CastUpvote(voter.ID, 999); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("expected ErrPostNotFound for upvote, got %v", err)
	}
	if err := votes.CastDownvote(voter.ID, 999); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("expected ErrPostNotFound for downvote, got %v", err)
	}
}
