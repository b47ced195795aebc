package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/Biffle-Ltd/biffle-chat-web/domain"
)

// setupTestRedis creates an in-memory Redis instance for testing
func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(func() {
		mr.Close()
	})

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return mr, client
}

func testSession(id string) *domain.Session {
	return &domain.Session{
		ID:          id,
		Token:       "platform_token",
		UserID:      "user_1",
		Name:        "Test User",
		Phone:       "+919876543210",
		Email:       "test@example.com",
		Role:        domain.RoleFan,
		CoinBalance: 100,
		CreatedAt:   time.Now(),
		ExpiresAt:   time.Now().Add(time.Hour),
	}
}

func TestSessionRepositoryImpl_CreateAndFind(t *testing.T) {
	mr, client := setupTestRedis(t)
	repo := NewSessionRepository(client, time.Hour)
	ctx := context.Background()

	session := testSession("sess_1")
	if err := repo.Create(ctx, session); err != nil {
		t.Fatalf("create: %v", err)
	}

	if !mr.Exists("websess:sess_1") {
		t.Fatal("expected session key in redis")
	}
	if ttl := mr.TTL("websess:sess_1"); ttl <= 0 || ttl > time.Hour {
		t.Errorf("unexpected TTL %v", ttl)
	}

	found, err := repo.FindByID(ctx, "sess_1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.Token != session.Token || found.UserID != session.UserID || found.Role != session.Role {
		t.Errorf("round trip mismatch: %+v", found)
	}
	if found.CoinBalance != 100 {
		t.Errorf("expected balance 100, got %d", found.CoinBalance)
	}
}

func TestSessionRepositoryImpl_FindMissing(t *testing.T) {
	_, client := setupTestRedis(t)
	repo := NewSessionRepository(client, time.Hour)

	_, err := repo.FindByID(context.Background(), "sess_missing")
	if !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionRepositoryImpl_CorruptRecordIsPurged(t *testing.T) {
	mr, client := setupTestRedis(t)
	repo := NewSessionRepository(client, time.Hour)

	mr.Set("websess:sess_1", "{not json")

	_, err := repo.FindByID(context.Background(), "sess_1")
	if !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound for corrupt record, got %v", err)
	}
	if mr.Exists("websess:sess_1") {
		t.Error("expected corrupt record purged")
	}
}

func TestSessionRepositoryImpl_ExpiredRecordIsPurged(t *testing.T) {
	mr, client := setupTestRedis(t)
	repo := NewSessionRepository(client, time.Hour)
	ctx := context.Background()

	session := testSession("sess_1")
	session.ExpiresAt = time.Now().Add(-time.Minute)
	if err := repo.Create(ctx, session); err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err := repo.FindByID(ctx, "sess_1")
	if !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	if mr.Exists("websess:sess_1") {
		t.Error("expected expired record purged")
	}
}

func TestSessionRepositoryImpl_UpdatePreservesTTL(t *testing.T) {
	mr, client := setupTestRedis(t)
	repo := NewSessionRepository(client, time.Hour)
	ctx := context.Background()

	session := testSession("sess_1")
	if err := repo.Create(ctx, session); err != nil {
		t.Fatalf("create: %v", err)
	}
	mr.FastForward(30 * time.Minute)

	session.CoinBalance = 650
	if err := repo.Update(ctx, session); err != nil {
		t.Fatalf("update: %v", err)
	}

	found, err := repo.FindByID(ctx, "sess_1")
	if err != nil {
		t.Fatalf("find after update: %v", err)
	}
	if found.CoinBalance != 650 {
		t.Errorf("expected updated balance 650, got %d", found.CoinBalance)
	}
	if found.Token != "platform_token" {
		t.Errorf("update dropped the platform token: %q", found.Token)
	}
	if ttl := mr.TTL("websess:sess_1"); ttl > 30*time.Minute {
		t.Errorf("expected remaining TTL preserved, got %v", ttl)
	}
}

func TestSessionRepositoryImpl_Delete(t *testing.T) {
	mr, client := setupTestRedis(t)
	repo := NewSessionRepository(client, time.Hour)
	ctx := context.Background()

	if err := repo.Create(ctx, testSession("sess_1")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Delete(ctx, "sess_1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if mr.Exists("websess:sess_1") {
		t.Error("expected session key removed")
	}

	// Token and profile live in the one record; deleting it leaves nothing.
	_, err := repo.FindByID(ctx, "sess_1")
	if !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after delete, got %v", err)
	}
}
