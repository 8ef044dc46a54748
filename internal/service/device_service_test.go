package service

import (
	"context"
	"testing"

	"orioncatalog/internal/entity"
)

func TestDeviceCreateRequiresExistingMaintainer(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewDeviceService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, &entity.DeviceCreateRequest{
		Name:         "Starlight",
		Codename:     "starlight",
		MaintainerID: 999,
	})
	wantKind(t, err, KindNotFound)
}

func TestDeviceCreateCodenameConflict(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewDeviceService(repo)
	ctx := context.Background()

	maintainer := seedAccount(t, repo, "maint@orionos.example", entity.RoleCoreDeveloper)

	if _, err := svc.Create(ctx, &entity.DeviceCreateRequest{
		Name: "Starlight", Codename: "starlight", MaintainerID: maintainer.ID,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := svc.Create(ctx, &entity.DeviceCreateRequest{
		Name: "Other", Codename: "starlight", MaintainerID: maintainer.ID,
	})
	wantKind(t, err, KindConflict)
}

func TestDeviceUpdateOwnership(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewDeviceService(repo)
	ctx := context.Background()

	maintainer := seedAccount(t, repo, "maint@orionos.example", entity.RoleCoreDeveloper)
	otherDev := seedAccount(t, repo, "other@orionos.example", entity.RoleCoreDeveloper)
	admin := seedAccount(t, repo, "admin@orionos.example", entity.RoleAdmin)
	device := seedDevice(t, repo, "starlight", maintainer.ID)

	name := "Starlight Pro"

	_, err := svc.Update(ctx, callerFor(otherDev), device.ID, &entity.DeviceUpdateRequest{Name: &name})
	wantKind(t, err, KindForbidden)

	if _, err := svc.Update(ctx, callerFor(maintainer), device.ID, &entity.DeviceUpdateRequest{Name: &name}); err != nil {
		t.Fatalf("expected maintainer update to succeed: %v", err)
	}

	if _, err := svc.Update(ctx, callerFor(admin), device.ID, &entity.DeviceUpdateRequest{Name: &name}); err != nil {
		t.Fatalf("expected admin update to succeed: %v", err)
	}
}

func TestDeviceUpdateVerifiesNewMaintainer(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewDeviceService(repo)
	ctx := context.Background()

	maintainer := seedAccount(t, repo, "maint@orionos.example", entity.RoleCoreDeveloper)
	device := seedDevice(t, repo, "starlight", maintainer.ID)

	missing := uint(12345)
	_, err := svc.Update(ctx, callerFor(maintainer), device.ID, &entity.DeviceUpdateRequest{MaintainerID: &missing})
	wantKind(t, err, KindNotFound)
}

func TestDeviceSearchRequiresQuery(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewDeviceService(repo)
	ctx := context.Background()

	_, err := svc.Search(ctx, "   ")
	wantKind(t, err, KindValidation)

	maintainer := seedAccount(t, repo, "maint@orionos.example", entity.RoleCoreDeveloper)
	seedDevice(t, repo, "starlight", maintainer.ID)
	seedDevice(t, repo, "comet", maintainer.ID)

	matches, err := svc.Search(ctx, "STAR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 || matches[0].Codename != "starlight" {
		t.Fatalf("expected starlight match, got %d results", len(matches))
	}
}

func TestDeviceDeleteOwnership(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewDeviceService(repo)
	ctx := context.Background()

	maintainer := seedAccount(t, repo, "maint@orionos.example", entity.RoleCoreDeveloper)
	other := seedAccount(t, repo, "other@orionos.example", entity.RoleCoreDeveloper)
	device := seedDevice(t, repo, "starlight", maintainer.ID)

	err := svc.Delete(ctx, callerFor(other), device.ID)
	wantKind(t, err, KindForbidden)

	if err := svc.Delete(ctx, callerFor(maintainer), device.ID); err != nil {
		t.Fatalf("expected maintainer delete to succeed: %v", err)
	}

	err = svc.Delete(ctx, callerFor(maintainer), device.ID)
	wantKind(t, err, KindNotFound)
}
