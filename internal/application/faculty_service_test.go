package application

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

func TestFacultyService_Add(t *testing.T) {
	t.Parallel()

	t.Run("validates required attributes", func(t *testing.T) {
		t.Parallel()

		svc := NewFacultyService(newStoreStub(), nil)

		_, err := svc.Add(context.Background(), FacultyInput{ID: "  ", Name: ""})

		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if _, ok := vErr.FieldErrors["id"]; !ok {
			t.Fatalf("expected id validation error, got %v", vErr.FieldErrors)
		}
		if _, ok := vErr.FieldErrors["name"]; !ok {
			t.Fatalf("expected name validation error, got %v", vErr.FieldErrors)
		}
	})

	t.Run("trims fields and persists the photo untouched", func(t *testing.T) {
		t.Parallel()

		store := newStoreStub()
		svc := NewFacultyService(store, nil)
		photo := []byte{0x89, 0x50, 0x4e, 0x47, 0x00, 0xff}

		added, err := svc.Add(context.Background(), FacultyInput{
			ID:         " F001 ",
			Name:       " Dr. Rao ",
			Department: "Physics",
			Email:      "rao@example.edu",
			Photo:      photo,
		})
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		if added.ID != "F001" || added.Name != "Dr. Rao" {
			t.Fatalf("expected trimmed fields, got %+v", added)
		}

		stored, err := store.GetFaculty(context.Background(), "F001")
		if err != nil {
			t.Fatalf("GetFaculty failed: %v", err)
		}
		if !bytes.Equal(stored.Photo, photo) {
			t.Fatalf("expected photo bytes to survive persistence")
		}
	})

	t.Run("rejects duplicate identifiers", func(t *testing.T) {
		t.Parallel()

		store := newStoreStub()
		svc := NewFacultyService(store, nil)

		if _, err := svc.Add(context.Background(), FacultyInput{ID: "F001", Name: "Dr. Rao"}); err != nil {
			t.Fatalf("first Add failed: %v", err)
		}
		_, err := svc.Add(context.Background(), FacultyInput{ID: "F001", Name: "Dr. Someone Else"})
		if !errors.Is(err, ErrAlreadyExists) {
			t.Fatalf("expected ErrAlreadyExists, got %v", err)
		}
	})

	t.Run("propagates repository failures", func(t *testing.T) {
		t.Parallel()

		expected := errors.New("disk full")
		store := newStoreStub()
		store.facultyErr = expected
		svc := NewFacultyService(store, nil)

		_, err := svc.Add(context.Background(), FacultyInput{ID: "F001", Name: "Dr. Rao"})
		if !errors.Is(err, expected) {
			t.Fatalf("expected %v, got %v", expected, err)
		}
	})
}

func TestFacultyService_List(t *testing.T) {
	t.Parallel()

	store := newStoreStub()
	svc := NewFacultyService(store, nil)

	for _, id := range []string{"F003", "F001", "F002"} {
		if _, err := svc.Add(context.Background(), FacultyInput{ID: id, Name: "Faculty " + id}); err != nil {
			t.Fatalf("Add %s failed: %v", id, err)
		}
	}

	listed, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("expected 3 records, got %d", len(listed))
	}
	for i, want := range []string{"F001", "F002", "F003"} {
		if listed[i].ID != want {
			t.Fatalf("expected %s at position %d, got %s", want, i, listed[i].ID)
		}
	}
}

func TestFacultyService_Remove(t *testing.T) {
	t.Parallel()

	t.Run("removes an existing record", func(t *testing.T) {
		t.Parallel()

		store := newStoreStub()
		svc := NewFacultyService(store, nil)

		if _, err := svc.Add(context.Background(), FacultyInput{ID: "F001", Name: "Dr. Rao"}); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		if err := svc.Remove(context.Background(), "F001"); err != nil {
			t.Fatalf("Remove failed: %v", err)
		}
		listed, err := svc.List(context.Background())
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(listed) != 0 {
			t.Fatalf("expected empty registry, got %d records", len(listed))
		}
	})

	t.Run("is a no-op for unknown identifiers", func(t *testing.T) {
		t.Parallel()

		svc := NewFacultyService(newStoreStub(), nil)
		if err := svc.Remove(context.Background(), "F404"); err != nil {
			t.Fatalf("expected no-op remove to succeed, got %v", err)
		}
	})
}
