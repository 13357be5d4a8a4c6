package service

import (
	"testing"

	"go-portfolio-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCVService(t *testing.T) CVService {
	t.Helper()
	db := newTestDB(t)
	return NewCVService(repository.NewCVRepo(db), db, nil)
}

func TestCVUpload(t *testing.T) {
	t.Run("first upload", func(t *testing.T) {
		svc := newCVService(t)

		cv, err := svc.CreateOrReplace("resume.pdf", []byte("%PDF-1.4 first"))
		require.NoError(t, err)
		assert.Equal(t, "resume.pdf", cv.Filename)
		assert.Equal(t, len("%PDF-1.4 first"), cv.FileSize)

		exists, err := svc.Exists()
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("replace keeps only the newest upload", func(t *testing.T) {
		svc := newCVService(t)

		_, err := svc.CreateOrReplace("old.pdf", []byte("old payload"))
		require.NoError(t, err)
		_, err = svc.CreateOrReplace("new.pdf", []byte("new payload"))
		require.NoError(t, err)

		data, filename, err := svc.GetBinary()
		require.NoError(t, err)
		assert.Equal(t, "new.pdf", filename)
		assert.Equal(t, []byte("new payload"), data)

		cv, err := svc.Get()
		require.NoError(t, err)
		assert.Equal(t, "new.pdf", cv.Filename)
	})

	t.Run("empty payload is rejected", func(t *testing.T) {
		svc := newCVService(t)
		_, err := svc.CreateOrReplace("empty.pdf", nil)
		assert.ErrorIs(t, err, ErrCVEmpty)
	})

	t.Run("missing filename falls back to cv.pdf", func(t *testing.T) {
		svc := newCVService(t)
		cv, err := svc.CreateOrReplace("", []byte("payload"))
		require.NoError(t, err)
		assert.Equal(t, "cv.pdf", cv.Filename)
	})
}

func TestCVGet(t *testing.T) {
	t.Run("nothing uploaded", func(t *testing.T) {
		svc := newCVService(t)

		_, err := svc.Get()
		assert.ErrorIs(t, err, ErrCVNotFound)

		_, _, err = svc.GetBinary()
		assert.ErrorIs(t, err, ErrCVNotFound)

		exists, err := svc.Exists()
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestCVDelete(t *testing.T) {
	t.Run("deletes the stored CV", func(t *testing.T) {
		svc := newCVService(t)
		_, err := svc.CreateOrReplace("resume.pdf", []byte("payload"))
		require.NoError(t, err)

		deleted, err := svc.Delete()
		require.NoError(t, err)
		assert.True(t, deleted)

		_, err = svc.Get()
		assert.ErrorIs(t, err, ErrCVNotFound)
	})

	t.Run("reports false when nothing is stored", func(t *testing.T) {
		svc := newCVService(t)
		deleted, err := svc.Delete()
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("upload works again after delete", func(t *testing.T) {
		svc := newCVService(t)
		_, err := svc.CreateOrReplace("a.pdf", []byte("a"))
		require.NoError(t, err)
		_, err = svc.Delete()
		require.NoError(t, err)
		_, err = svc.CreateOrReplace("b.pdf", []byte("b"))
		require.NoError(t, err)
	})
}
