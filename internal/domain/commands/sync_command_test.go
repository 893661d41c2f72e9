//go:build unit

package commands_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/reposync/internal/domain/commands"
	"github.com/rios0rios0/reposync/internal/domain/entities"
	"github.com/rios0rios0/reposync/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/reposync/internal/infrastructure/repositories"
	"github.com/rios0rios0/reposync/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/reposync/test/infrastructure/repositorydoubles"
)

const spyBackend = "spy"

func newSyncCommand(
	vcs *doubles.SpyVersionControlRepository,
	fs repositories.FilesystemRepository,
) *commands.SyncCommand {
	registry := infraRepos.NewVersionControlRegistry()
	registry.Register(spyBackend, func() repositories.VersionControlRepository {
		return vcs
	})
	return commands.NewSyncCommand(registry, fs)
}

// allNames flattens every category of the report.
func allNames(report *entities.RunReport) []string {
	var names []string
	for _, c := range []entities.Category{entities.Cloned, entities.Updated, entities.Dirty, entities.Failed} {
		names = append(names, report.Names(c)...)
	}
	return names
}

func TestSyncCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should clone x and report y as dirty when x is missing and y has local changes", func(t *testing.T) {
		t.Parallel()

		// given
		log := &doubles.CallLog{}
		folder := entitybuilders.NewFolderBuilder().WithPath("/work/A").WithRepositories("x", "y").BuildFolder()
		fs := doubles.NewFakeFilesystemRepository(log, "/work/A", "/work/A/y", "/work/A/y/.git")
		vcs := &doubles.SpyVersionControlRepository{
			Statuses: map[string]entities.TreeStatus{"/work/A/y": entities.TreeDirty},
			Log:      log,
		}
		cmd := newSyncCommand(vcs, fs)

		// when
		report, err := cmd.Execute(context.Background(), []entities.Folder{folder}, commands.SyncOptions{Backend: spyBackend})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"x"}, report.Names(entities.Cloned))
		assert.Equal(t, []string{"y"}, report.Names(entities.Dirty))
		assert.Empty(t, report.Names(entities.Updated))
		assert.Empty(t, report.Names(entities.Failed))
	})

	t.Run("should report pull failure with detail and nothing updated", func(t *testing.T) {
		t.Parallel()

		// given
		log := &doubles.CallLog{}
		folder := entitybuilders.NewFolderBuilder().WithPath("/work/A").WithRepositories("z").BuildFolder()
		fs := doubles.NewFakeFilesystemRepository(log, "/work/A/z", "/work/A/z/.git")
		vcs := &doubles.SpyVersionControlRepository{
			PullErrs: map[string]error{"/work/A/z": errors.New("remote hung up")},
			Log:      log,
		}
		cmd := newSyncCommand(vcs, fs)

		// when
		report, err := cmd.Execute(context.Background(), []entities.Folder{folder}, commands.SyncOptions{Backend: spyBackend})

		// then
		require.NoError(t, err)
		assert.Empty(t, report.Names(entities.Updated))
		failed := report.Entries(entities.Failed)
		require.Len(t, failed, 1)
		assert.Equal(t, "z", failed[0].Repository)
		assert.Contains(t, failed[0].Detail, "remote hung up")
		assert.Contains(t, failed[0].Detail, entities.ErrUpdateFailed.Error())
	})

	t.Run("should attempt clone and never update when the local path does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		log := &doubles.CallLog{}
		folder := entitybuilders.NewFolderBuilder().WithPath("/work/A").WithRepositories("ok", "broken").BuildFolder()
		fs := doubles.NewFakeFilesystemRepository(log)
		vcs := &doubles.SpyVersionControlRepository{
			CloneErrs: map[string]error{"/work/A/broken": errors.New("repository not found")},
			Log:       log,
		}
		cmd := newSyncCommand(vcs, fs)

		// when
		report, err := cmd.Execute(context.Background(), []entities.Folder{folder}, commands.SyncOptions{Backend: spyBackend})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"ok"}, report.Names(entities.Cloned))
		assert.Equal(t, []string{"broken"}, report.Names(entities.Failed))
		assert.Equal(t, 0, log.IndexOf("mkdir /work/A"))
		assert.Equal(t, -1, log.IndexOf("status /work/A/ok"))
		assert.Equal(t, -1, log.IndexOf("pull /work/A/ok"))
	})

	t.Run("should delete a directory without metadata before cloning it", func(t *testing.T) {
		t.Parallel()

		// given
		log := &doubles.CallLog{}
		folder := entitybuilders.NewFolderBuilder().WithPath("/work/A").WithRepositories("ghost").BuildFolder()
		fs := doubles.NewFakeFilesystemRepository(log, "/work/A", "/work/A/ghost", "/work/A/ghost/README")
		vcs := &doubles.SpyVersionControlRepository{Log: log}
		cmd := newSyncCommand(vcs, fs)

		// when
		report, err := cmd.Execute(context.Background(), []entities.Folder{folder}, commands.SyncOptions{Backend: spyBackend})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"ghost"}, report.Names(entities.Cloned))
		deleteIdx := log.IndexOf("delete /work/A/ghost")
		cloneIdx := log.IndexOf("clone https://github.com/acme/ghost.git /work/A/ghost")
		require.GreaterOrEqual(t, deleteIdx, 0)
		require.GreaterOrEqual(t, cloneIdx, 0)
		assert.Less(t, deleteIdx, cloneIdx)
		assert.False(t, fs.Exists("/work/A/ghost/README"))
	})

	t.Run("should not clone when deleting the invalid directory fails", func(t *testing.T) {
		t.Parallel()

		// given
		log := &doubles.CallLog{}
		folder := entitybuilders.NewFolderBuilder().WithPath("/work/A").WithRepositories("ghost").BuildFolder()
		fs := doubles.NewFakeFilesystemRepository(log, "/work/A/ghost")
		fs.DeleteErr = errors.New("permission denied")
		vcs := &doubles.SpyVersionControlRepository{Log: log}
		cmd := newSyncCommand(vcs, fs)

		// when
		report, err := cmd.Execute(context.Background(), []entities.Folder{folder}, commands.SyncOptions{Backend: spyBackend})

		// then
		require.NoError(t, err)
		failed := report.Entries(entities.Failed)
		require.Len(t, failed, 1)
		assert.Contains(t, failed[0].Detail, "permission denied")
		assert.Equal(t, -1, log.IndexOf("clone https://github.com/acme/ghost.git /work/A/ghost"))
	})

	t.Run("should switch to the folder branch then pull a clean checkout", func(t *testing.T) {
		t.Parallel()

		// given
		log := &doubles.CallLog{}
		folder := entitybuilders.NewFolderBuilder().
			WithPath("/work/A").
			WithBranch("main").
			WithRepositories("clean").
			BuildFolder()
		fs := doubles.NewFakeFilesystemRepository(log, "/work/A/clean", "/work/A/clean/.git")
		vcs := &doubles.SpyVersionControlRepository{Log: log}
		cmd := newSyncCommand(vcs, fs)

		// when
		report, err := cmd.Execute(context.Background(), []entities.Folder{folder}, commands.SyncOptions{Backend: spyBackend})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"clean"}, report.Names(entities.Updated))
		assert.Empty(t, report.Names(entities.Dirty))
		assert.Equal(t, []string{
			"status /work/A/clean",
			"switch /work/A/clean main",
			"pull /work/A/clean",
		}, log.Calls)
	})

	t.Run("should not pull when switching branch fails", func(t *testing.T) {
		t.Parallel()

		// given
		log := &doubles.CallLog{}
		folder := entitybuilders.NewFolderBuilder().WithPath("/work/A").WithRepositories("clean").BuildFolder()
		fs := doubles.NewFakeFilesystemRepository(log, "/work/A/clean", "/work/A/clean/.git")
		vcs := &doubles.SpyVersionControlRepository{
			SwitchErrs: map[string]error{"/work/A/clean": errors.New("pathspec 'master' did not match")},
			Log:        log,
		}
		cmd := newSyncCommand(vcs, fs)

		// when
		report, err := cmd.Execute(context.Background(), []entities.Folder{folder}, commands.SyncOptions{Backend: spyBackend})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"clean"}, report.Names(entities.Failed))
		assert.Equal(t, -1, log.IndexOf("pull /work/A/clean"))
	})

	t.Run("should trigger no mutating call for a dirty checkout", func(t *testing.T) {
		t.Parallel()

		// given
		log := &doubles.CallLog{}
		folder := entitybuilders.NewFolderBuilder().WithPath("/work/A").WithRepositories("wip").BuildFolder()
		fs := doubles.NewFakeFilesystemRepository(log, "/work/A/wip", "/work/A/wip/.git")
		vcs := &doubles.SpyVersionControlRepository{
			Statuses: map[string]entities.TreeStatus{"/work/A/wip": entities.TreeDirty},
			Log:      log,
		}
		cmd := newSyncCommand(vcs, fs)

		// when
		report, err := cmd.Execute(context.Background(), []entities.Folder{folder}, commands.SyncOptions{Backend: spyBackend})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"wip"}, report.Names(entities.Dirty))
		assert.Equal(t, []string{"status /work/A/wip"}, log.Calls)
	})

	t.Run("should report exactly one outcome per repository and keep going after failures", func(t *testing.T) {
		t.Parallel()

		// given
		log := &doubles.CallLog{}
		first := entitybuilders.NewFolderBuilder().
			WithPath("/work/A").
			WithRepositories("new", "ghost", "wip", "broken").
			BuildFolder()
		second := entitybuilders.NewFolderBuilder().
			WithPath("/work/B").
			WithRepositories("clean", "unreachable").
			BuildFolder()
		fs := doubles.NewFakeFilesystemRepository(log,
			"/work/A/ghost",
			"/work/A/wip", "/work/A/wip/.git",
			"/work/A/broken", "/work/A/broken/.git",
			"/work/B/clean", "/work/B/clean/.git",
			"/work/B/unreachable", "/work/B/unreachable/.git",
		)
		vcs := &doubles.SpyVersionControlRepository{
			Statuses:   map[string]entities.TreeStatus{"/work/A/wip": entities.TreeDirty},
			StatusErrs: map[string]error{"/work/A/broken": errors.New("bad object HEAD")},
			PullErrs:   map[string]error{"/work/B/unreachable": errors.New("could not resolve host")},
			Log:        log,
		}
		cmd := newSyncCommand(vcs, fs)

		// when
		report, err := cmd.Execute(
			context.Background(),
			[]entities.Folder{first, second},
			commands.SyncOptions{Backend: spyBackend},
		)

		// then
		require.NoError(t, err)
		assert.Equal(t, 6, report.Total())
		assert.ElementsMatch(t,
			[]string{"new", "ghost", "wip", "broken", "clean", "unreachable"},
			allNames(report),
		)
		assert.Equal(t, []string{"new", "ghost"}, report.Names(entities.Cloned))
		assert.Equal(t, []string{"clean"}, report.Names(entities.Updated))
		assert.Equal(t, []string{"wip"}, report.Names(entities.Dirty))
		assert.Equal(t, []string{"broken", "unreachable"}, report.Names(entities.Failed))
	})

	t.Run("should leave the working directory unchanged", func(t *testing.T) {
		t.Parallel()

		// given
		before, err := os.Getwd()
		require.NoError(t, err)
		log := &doubles.CallLog{}
		folder := entitybuilders.NewFolderBuilder().WithPath("/work/A").WithRepositories("x", "y").BuildFolder()
		fs := doubles.NewFakeFilesystemRepository(log, "/work/A/y", "/work/A/y/.git")
		vcs := &doubles.SpyVersionControlRepository{
			StatusErrs: map[string]error{"/work/A/y": errors.New("not a git repository")},
			Log:        log,
		}
		cmd := newSyncCommand(vcs, fs)

		// when
		_, execErr := cmd.Execute(context.Background(), []entities.Folder{folder}, commands.SyncOptions{Backend: spyBackend})

		// then
		require.NoError(t, execErr)
		after, err := os.Getwd()
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("should fail when the backend is unknown", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := newSyncCommand(&doubles.SpyVersionControlRepository{}, doubles.NewFakeFilesystemRepository(nil))

		// when
		report, err := cmd.Execute(context.Background(), nil, commands.SyncOptions{Backend: "svn"})

		// then
		require.Error(t, err)
		assert.Nil(t, report)
		assert.Contains(t, err.Error(), "unknown version control backend")
	})

	t.Run("should return an empty report when nothing is declared", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := newSyncCommand(&doubles.SpyVersionControlRepository{}, doubles.NewFakeFilesystemRepository(nil))

		// when
		report, err := cmd.Execute(context.Background(), nil, commands.SyncOptions{Backend: spyBackend})

		// then
		require.NoError(t, err)
		assert.Zero(t, report.Total())
		assert.Empty(t, report.Sections())
	})
}
