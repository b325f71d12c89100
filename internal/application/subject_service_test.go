package application

import (
	"context"
	"errors"
	"testing"
)

func TestSubjectService_Add(t *testing.T) {
	t.Parallel()

	t.Run("validates required attributes", func(t *testing.T) {
		t.Parallel()

		svc := NewSubjectService(newStoreStub(), nil)

		_, err := svc.Add(context.Background(), SubjectInput{Code: "", Name: " ", Credits: -1})

		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		for _, field := range []string{"code", "name", "credits"} {
			if _, ok := vErr.FieldErrors[field]; !ok {
				t.Fatalf("expected %s validation error, got %v", field, vErr.FieldErrors)
			}
		}
	})

	t.Run("rejects duplicate codes", func(t *testing.T) {
		t.Parallel()

		store := newStoreStub()
		svc := NewSubjectService(store, nil)

		input := SubjectInput{Code: "CS101", Name: "Programming", Credits: 4}
		if _, err := svc.Add(context.Background(), input); err != nil {
			t.Fatalf("first Add failed: %v", err)
		}
		_, err := svc.Add(context.Background(), input)
		if !errors.Is(err, ErrAlreadyExists) {
			t.Fatalf("expected ErrAlreadyExists, got %v", err)
		}
	})
}

func TestSubjectService_ListAndRemove(t *testing.T) {
	t.Parallel()

	store := newStoreStub()
	svc := NewSubjectService(store, nil)

	for _, code := range []string{"PH201", "CS101", "MA150"} {
		if _, err := svc.Add(context.Background(), SubjectInput{Code: code, Name: "Subject " + code, Credits: 3}); err != nil {
			t.Fatalf("Add %s failed: %v", code, err)
		}
	}

	listed, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	for i, want := range []string{"CS101", "MA150", "PH201"} {
		if listed[i].Code != want {
			t.Fatalf("expected %s at position %d, got %s", want, i, listed[i].Code)
		}
	}

	if err := svc.Remove(context.Background(), "CS101"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if err := svc.Remove(context.Background(), "CS999"); err != nil {
		t.Fatalf("expected unknown remove to be a no-op, got %v", err)
	}
}
