package service

import (
	"context"
	"testing"
	"time"

	"orioncatalog/internal/entity"
)

func TestAnnouncementCreateResolvesReferences(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewAnnouncementService(repo)
	ctx := context.Background()

	maintainer := seedAccount(t, repo, "maint@orionos.example", entity.RoleCoreDeveloper)
	device := seedDevice(t, repo, "starlight", maintainer.ID)
	release := seedSourceRelease(t, repo, "1.0", time.Now())

	_, err := svc.Create(ctx, callerFor(maintainer), &entity.AnnouncementCreateRequest{
		Title:           "Missing developer",
		DeveloperID:     9999,
		SourceReleaseID: release.ID,
		DeviceID:        device.ID,
	})
	wantKind(t, err, KindNotFound)

	_, err = svc.Create(ctx, callerFor(maintainer), &entity.AnnouncementCreateRequest{
		Title:           "Missing source release",
		DeveloperID:     maintainer.ID,
		SourceReleaseID: 9999,
		DeviceID:        device.ID,
	})
	wantKind(t, err, KindNotFound)

	all, err := svc.ListAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected no announcements written after failed creates, got %d", len(all))
	}

	created, err := svc.Create(ctx, callerFor(maintainer), &entity.AnnouncementCreateRequest{
		Title:           "Starlight build out",
		Content:         "Grab it while it is hot.",
		DeveloperID:     maintainer.ID,
		SourceReleaseID: release.ID,
		DeviceID:        device.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Title != "Starlight build out" {
		t.Fatalf("unexpected title %q", created.Title)
	}
}

func TestAnnouncementOwnership(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewAnnouncementService(repo)
	ctx := context.Background()

	maintainer := seedAccount(t, repo, "maint@orionos.example", entity.RoleCoreDeveloper)
	other := seedAccount(t, repo, "other@orionos.example", entity.RoleCoreDeveloper)
	admin := seedAccount(t, repo, "admin@orionos.example", entity.RoleAdmin)
	device := seedDevice(t, repo, "starlight", maintainer.ID)
	release := seedSourceRelease(t, repo, "1.0", time.Now())

	req := &entity.AnnouncementCreateRequest{
		Title:           "Release notes",
		DeveloperID:     maintainer.ID,
		SourceReleaseID: release.ID,
		DeviceID:        device.ID,
	}

	_, err := svc.Create(ctx, callerFor(other), req)
	wantKind(t, err, KindForbidden)

	announcement, err := svc.Create(ctx, callerFor(maintainer), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = svc.Delete(ctx, callerFor(other), announcement.ID)
	wantKind(t, err, KindForbidden)

	if err := svc.Delete(ctx, callerFor(admin), announcement.ID); err != nil {
		t.Fatalf("expected admin delete to succeed: %v", err)
	}
}

func TestAnnouncementListMine(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewAnnouncementService(repo)
	ctx := context.Background()

	maintainer := seedAccount(t, repo, "maint@orionos.example", entity.RoleCoreDeveloper)
	other := seedAccount(t, repo, "other@orionos.example", entity.RoleCoreDeveloper)
	ownDevice := seedDevice(t, repo, "starlight", maintainer.ID)
	foreignDevice := seedDevice(t, repo, "comet", other.ID)
	release := seedSourceRelease(t, repo, "1.0", time.Now())

	if _, err := svc.Create(ctx, callerFor(maintainer), &entity.AnnouncementCreateRequest{
		Title: "Mine", DeveloperID: maintainer.ID, SourceReleaseID: release.ID, DeviceID: ownDevice.ID,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Create(ctx, callerFor(other), &entity.AnnouncementCreateRequest{
		Title: "Theirs", DeveloperID: other.ID, SourceReleaseID: release.ID, DeviceID: foreignDevice.ID,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mine, err := svc.ListMine(ctx, callerFor(maintainer))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mine) != 1 || mine[0].Title != "Mine" {
		t.Fatalf("expected one announcement for maintained device, got %d", len(mine))
	}
}
