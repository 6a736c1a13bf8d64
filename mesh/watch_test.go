package mesh

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"gonavquery/common"
	"gonavquery/navmesh"
)

func TestReloaderReloadsChangedWorld(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.nav")
	if err := SaveToFile(path, testData()); err != nil {
		t.Fatal(err)
	}

	watcher, err := NewWatcher(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer watcher.Close()

	system := navmesh.NewNavMeshSystem(0, nil)
	reloader := NewReloader(watcher, system, nil)
	if err := reloader.Track(path, 1); err != nil {
		t.Fatal(err)
	}

	// Rewrite the file with an extra polygon and wait for the reload.
	data := testData()
	data.Polys = append(data.Polys, &navmesh.NavMeshPoly{
		Id:     3,
		Center: common.Vec3{10, 0, 0},
		Area:   navmesh.AREA_WALKABLE,
	})
	if err := SaveToFile(path, data); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)
	reloaded := 0
	for reloaded == 0 && time.Now().Before(deadline) {
		reloaded = reloader.Process()
		if reloaded == 0 {
			time.Sleep(20 * time.Millisecond)
		}
	}
	if reloaded == 0 {
		t.Fatal("reloader never picked up the changed file")
	}
	if _, ok := system.GetPolygon(3); !ok {
		t.Fatal("reloaded mesh should contain the new polygon")
	}
}

func TestWatcherCloseWithPendingEvents(t *testing.T) {
	dir := t.TempDir()
	watcher, err := NewWatcher(dir)
	if err != nil {
		t.Fatal(err)
	}

	// More distinct files than the Events buffer holds, so the watcher
	// goroutine can be mid-send when Close fires. Close must still
	// return and the channels must drain to closed without a panic.
	for i := 0; i < 32; i++ {
		path := filepath.Join(dir, fmt.Sprintf("world%02d.nav", i))
		if err := SaveToFile(path, testData()); err != nil {
			t.Fatal(err)
		}
	}
	time.Sleep(200 * time.Millisecond)

	if err := watcher.Close(); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-watcher.Events:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("Events never closed after Close")
		}
	}
}

func TestReloaderIgnoresUntrackedFiles(t *testing.T) {
	dir := t.TempDir()
	watcher, err := NewWatcher(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer watcher.Close()

	system := navmesh.NewNavMeshSystem(0, nil)
	reloader := NewReloader(watcher, system, nil)

	if err := SaveToFile(filepath.Join(dir, "other.nav"), testData()); err != nil {
		t.Fatal(err)
	}
	time.Sleep(200 * time.Millisecond)
	if reloaded := reloader.Process(); reloaded != 0 {
		t.Fatalf("reloaded %d untracked worlds", reloaded)
	}
	if _, ok := system.GetPolygon(1); ok {
		t.Fatal("untracked file must not load polygons")
	}
}
