package service

import (
	"context"
	"fmt"
	"testing"

	"orioncatalog/internal/entity"
)

func TestBuildCreateOwnership(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewBuildReleaseService(repo)
	ctx := context.Background()

	maintainer := seedAccount(t, repo, "maint@orionos.example", entity.RoleCoreDeveloper)
	other := seedAccount(t, repo, "other@orionos.example", entity.RoleCoreDeveloper)
	admin := seedAccount(t, repo, "admin@orionos.example", entity.RoleAdmin)
	device := seedDevice(t, repo, "starlight", maintainer.ID)

	req := &entity.BuildReleaseCreateRequest{
		Type:        "VANILLA",
		DownloadURL: "https://downloads.orionos.example/starlight.zip",
		Version:     "1.0",
		DeviceID:    device.ID,
	}

	_, err := svc.Create(ctx, callerFor(other), req)
	wantKind(t, err, KindForbidden)

	if _, err := svc.Create(ctx, callerFor(maintainer), req); err != nil {
		t.Fatalf("expected maintainer create to succeed: %v", err)
	}
	if _, err := svc.Create(ctx, callerFor(admin), req); err != nil {
		t.Fatalf("expected admin create to succeed: %v", err)
	}
}

func TestBuildCreateValidatesTypeAndDevice(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewBuildReleaseService(repo)
	ctx := context.Background()

	maintainer := seedAccount(t, repo, "maint@orionos.example", entity.RoleCoreDeveloper)
	device := seedDevice(t, repo, "starlight", maintainer.ID)

	_, err := svc.Create(ctx, callerFor(maintainer), &entity.BuildReleaseCreateRequest{
		Type: "NIGHTLY", DownloadURL: "https://x", Version: "1.0", DeviceID: device.ID,
	})
	wantKind(t, err, KindValidation)

	_, err = svc.Create(ctx, callerFor(maintainer), &entity.BuildReleaseCreateRequest{
		Type: "GAPPS", DownloadURL: "https://x", Version: "1.0", DeviceID: 4242,
	})
	wantKind(t, err, KindNotFound)

	builds, err := svc.ListAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(builds) != 0 {
		t.Fatalf("expected no builds written after failed creates, got %d", len(builds))
	}
}

func TestBuildUpdateReassignmentOwnership(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewBuildReleaseService(repo)
	ctx := context.Background()

	maintainer := seedAccount(t, repo, "maint@orionos.example", entity.RoleCoreDeveloper)
	other := seedAccount(t, repo, "other@orionos.example", entity.RoleCoreDeveloper)
	ownDevice := seedDevice(t, repo, "starlight", maintainer.ID)
	foreignDevice := seedDevice(t, repo, "comet", other.ID)

	build, err := svc.Create(ctx, callerFor(maintainer), &entity.BuildReleaseCreateRequest{
		Type: "VANILLA", DownloadURL: "https://x", Version: "1.0", DeviceID: ownDevice.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.Update(ctx, callerFor(maintainer), build.ID, &entity.BuildReleaseUpdateRequest{DeviceID: &foreignDevice.ID})
	wantKind(t, err, KindForbidden)

	version := "1.1"
	updated, err := svc.Update(ctx, callerFor(maintainer), build.ID, &entity.BuildReleaseUpdateRequest{Version: &version})
	if err != nil {
		t.Fatalf("expected maintainer update to succeed: %v", err)
	}
	if updated.Version != "1.1" {
		t.Fatalf("expected version 1.1, got %s", updated.Version)
	}
}

func TestBuildListLatestLimit(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewBuildReleaseService(repo)
	ctx := context.Background()

	maintainer := seedAccount(t, repo, "maint@orionos.example", entity.RoleCoreDeveloper)
	device := seedDevice(t, repo, "starlight", maintainer.ID)

	for i := 0; i < 5; i++ {
		if _, err := svc.Create(ctx, callerFor(maintainer), &entity.BuildReleaseCreateRequest{
			Type:        "VANILLA",
			DownloadURL: "https://x",
			Version:     fmt.Sprintf("1.%d", i),
			DeviceID:    device.ID,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	latest, err := svc.ListLatest(ctx, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(latest) != 3 {
		t.Fatalf("expected 3 builds, got %d", len(latest))
	}
	if latest[0].Version != "1.4" {
		t.Fatalf("expected newest build first, got version %s", latest[0].Version)
	}
}

func TestBuildListMine(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewBuildReleaseService(repo)
	ctx := context.Background()

	maintainer := seedAccount(t, repo, "maint@orionos.example", entity.RoleCoreDeveloper)
	other := seedAccount(t, repo, "other@orionos.example", entity.RoleCoreDeveloper)
	ownDevice := seedDevice(t, repo, "starlight", maintainer.ID)
	foreignDevice := seedDevice(t, repo, "comet", other.ID)

	if _, err := svc.Create(ctx, callerFor(maintainer), &entity.BuildReleaseCreateRequest{
		Type: "VANILLA", DownloadURL: "https://x", Version: "1.0", DeviceID: ownDevice.ID,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Create(ctx, callerFor(other), &entity.BuildReleaseCreateRequest{
		Type: "GAPPS", DownloadURL: "https://y", Version: "1.0", DeviceID: foreignDevice.ID,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mine, err := svc.ListMine(ctx, callerFor(maintainer))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mine) != 1 || mine[0].DeviceID != ownDevice.ID {
		t.Fatalf("expected one build for maintained device, got %d", len(mine))
	}
}
