package user

import (
	"context"
	"courseHub/domain"
	"testing"
)

type fakeUserRepo struct {
	users   map[string]domain.User
	nextID  uint
	deleted []string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]domain.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	user.ID = f.nextID
	f.nextID++
	f.users[user.Email] = *user
	return nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	if user, ok := f.users[email]; ok {
		return user, nil
	}
	return domain.User{}, domain.ErrNotFound
}

func (f *fakeUserRepo) FindAllByRole(ctx context.Context) ([]domain.User, error) {
	var result []domain.User
	for _, user := range f.users {
		result = append(result, user)
	}
	return result, nil
}

func (f *fakeUserRepo) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	f.deleted = append(f.deleted, email)
	if _, ok := f.users[email]; !ok {
		return 0, nil
	}
	delete(f.users, email)
	return 1, nil
}

type fakeDeleter struct {
	rows    int64
	deleted []string
}

func (f *fakeDeleter) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	f.deleted = append(f.deleted, email)
	return f.rows, nil
}

func TestSaveUser_DefaultsRoleToStudent(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, &fakeDeleter{}, &fakeDeleter{})

	created := domain.User{Email: "new@example.com", Name: "New User"}
	id, err := svc.SaveUser(context.Background(), &created)
	if err != nil {
		t.Fatalf("SaveUser returned error: %v", err)
	}
	if id == nil {
		t.Fatal("expected an inserted id for a fresh user")
	}

	if repo.users["new@example.com"].Role != domain.RoleStudent {
		t.Errorf("expected role %q, got %q", domain.RoleStudent, repo.users["new@example.com"].Role)
	}
}

func TestSaveUser_SecondCallIsNoOp(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, &fakeDeleter{}, &fakeDeleter{})

	first := domain.User{Email: "dup@example.com"}
	if _, err := svc.SaveUser(context.Background(), &first); err != nil {
		t.Fatalf("first SaveUser returned error: %v", err)
	}

	id, err := svc.SaveUser(context.Background(), &domain.User{Email: "dup@example.com", Name: "Changed"})
	if err != nil {
		t.Fatalf("second SaveUser returned error: %v", err)
	}
	if id != nil {
		t.Errorf("expected nil inserted id for existing user, got %d", *id)
	}

	if len(repo.users) != 1 {
		t.Errorf("expected one stored user, got %d", len(repo.users))
	}
}

func TestRemoveStudent_CascadesThreeCollections(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users["gone@example.com"] = domain.User{ID: 5, Email: "gone@example.com"}

	enrollments := &fakeDeleter{rows: 3}
	markers := &fakeDeleter{rows: 1}
	svc := NewService(repo, enrollments, markers)

	result, err := svc.RemoveStudent(context.Background(), "gone@example.com")
	if err != nil {
		t.Fatalf("RemoveStudent returned error: %v", err)
	}

	if result.RemovedEnrolledStudents != 1 {
		t.Errorf("expected 1 removed marker, got %d", result.RemovedEnrolledStudents)
	}
	if result.RemovedEnrollments != 3 {
		t.Errorf("expected 3 removed enrollments, got %d", result.RemovedEnrollments)
	}
	if result.RemovedUsers != 1 {
		t.Errorf("expected 1 removed user, got %d", result.RemovedUsers)
	}

	if len(markers.deleted) != 1 || markers.deleted[0] != "gone@example.com" {
		t.Errorf("enrolled-student delete not keyed by email: %v", markers.deleted)
	}
}

func TestRemoveStudent_UnknownEmailReportsZeros(t *testing.T) {
	svc := NewService(newFakeUserRepo(), &fakeDeleter{}, &fakeDeleter{})

	result, err := svc.RemoveStudent(context.Background(), "nobody@example.com")
	if err != nil {
		t.Fatalf("RemoveStudent returned error: %v", err)
	}

	if result.RemovedUsers != 0 || result.RemovedEnrollments != 0 || result.RemovedEnrolledStudents != 0 {
		t.Errorf("expected all-zero removal result, got %+v", result)
	}
}
