package pg

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techflow-dev/techflow/internal/domain"
	internal_errors "github.com/techflow-dev/techflow/internal/errors"
)

func TestGetOrCreateWhiteboardIdempotent(t *testing.T) {
	dept := mustDepartment(t, "wb-idempotent")
	u := mustUser(t, dept.Id, "wb-idempotent@example.com")

	_, err := storage.Whiteboard(dept.Id)
	require.True(t, internal_errors.IsNotFound(err), "no board before first touch")

	first, err := storage.GetOrCreateWhiteboard(dept.Id, u.Id)
	require.NoError(t, err)
	assert.Equal(t, dept.Id, first.DepartmentId)
	assert.Empty(t, first.Coverage.OnCall)

	second, err := storage.GetOrCreateWhiteboard(dept.Id, u.Id)
	require.NoError(t, err)
	assert.Equal(t, first.Id, second.Id, "repeated calls return the same board")
}

func TestGetOrCreateWhiteboardConcurrent(t *testing.T) {
	dept := mustDepartment(t, "wb-concurrent")
	u := mustUser(t, dept.Id, "wb-concurrent@example.com")

	const workers = 8
	boards := make([]domain.Whiteboard, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			boards[i], errs[i] = storage.GetOrCreateWhiteboard(dept.Id, u.Id)
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, boards[0].Id, boards[i].Id, "all racers must see the same single board")
	}
}

func TestUpdateWhiteboardSectionLevelReplace(t *testing.T) {
	dept := mustDepartment(t, "wb-replace")
	u := mustUser(t, dept.Id, "wb-replace@example.com")
	other := mustUser(t, dept.Id, "wb-replace-2@example.com")

	_, err := storage.GetOrCreateWhiteboard(dept.Id, u.Id)
	require.NoError(t, err)

	// Seed coverage and comments.
	coverage := domain.Coverage{OnCall: []domain.UserId{u.Id, other.Id}}
	comments := []string{"old note"}
	seeded, err := storage.UpdateWhiteboardSections(dept.Id, u.Id, domain.WhiteboardPatch{
		Coverage: &coverage,
		Comments: &comments,
	})
	require.NoError(t, err)
	assert.Equal(t, []domain.UserId{u.Id, other.Id}, seeded.Coverage.OnCall)

	// Patch only comments: coverage must survive untouched, comments
	// must be replaced, not appended.
	newComments := []string{"a"}
	updated, err := storage.UpdateWhiteboardSections(dept.Id, other.Id, domain.WhiteboardPatch{
		Comments: &newComments,
	})
	require.NoError(t, err)
	assert.Equal(t, []domain.UserId{u.Id, other.Id}, updated.Coverage.OnCall)
	assert.Equal(t, []string{"a"}, updated.Comments)
	assert.Equal(t, other.Id, updated.LastUpdatedBy)
}

func TestUpdateWhiteboardReadingProviders(t *testing.T) {
	dept := mustDepartment(t, "wb-providers")
	u := mustUser(t, dept.Id, "wb-providers@example.com")

	provider, err := storage.CreateProvider(domain.ProviderCreationData{
		Name: "Dr. Reed", DepartmentId: dept.Id,
	})
	require.NoError(t, err)

	_, err = storage.GetOrCreateWhiteboard(dept.Id, u.Id)
	require.NoError(t, err)

	reading := domain.ReadingProviders{Emu: &provider.Id}
	updated, err := storage.UpdateWhiteboardSections(dept.Id, u.Id, domain.WhiteboardPatch{
		ReadingProviders: &reading,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.ReadingProviders.Emu)
	assert.Equal(t, provider.Id, *updated.ReadingProviders.Emu)
	assert.Nil(t, updated.ReadingProviders.Routine)
}

func TestUpdateWhiteboardConcurrentDifferentSections(t *testing.T) {
	dept := mustDepartment(t, "wb-sections-race")
	u := mustUser(t, dept.Id, "wb-sections-race@example.com")

	_, err := storage.GetOrCreateWhiteboard(dept.Id, u.Id)
	require.NoError(t, err)

	comments := []string{"from writer A"}
	birthdays := []string{"from writer B"}

	var wg sync.WaitGroup
	var errA, errB error
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errA = storage.UpdateWhiteboardSections(dept.Id, u.Id, domain.WhiteboardPatch{Comments: &comments})
	}()
	go func() {
		defer wg.Done()
		_, errB = storage.UpdateWhiteboardSections(dept.Id, u.Id, domain.WhiteboardPatch{Birthdays: &birthdays})
	}()
	wg.Wait()

	require.NoError(t, errA)
	require.NoError(t, errB)

	final, err := storage.Whiteboard(dept.Id)
	require.NoError(t, err)
	assert.Equal(t, []string{"from writer A"}, final.Comments, "comments writer survives")
	assert.Equal(t, []string{"from writer B"}, final.Birthdays, "birthdays writer survives")
}

func TestUpdateWhiteboardMissingBoard(t *testing.T) {
	dept := mustDepartment(t, "wb-missing")
	u := mustUser(t, dept.Id, "wb-missing@example.com")

	comments := []string{"a"}
	_, err := storage.UpdateWhiteboardSections(dept.Id, u.Id, domain.WhiteboardPatch{Comments: &comments})
	require.True(t, internal_errors.IsNotFound(err))
}
