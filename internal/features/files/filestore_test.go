package files

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_FileStore_SaveOpenDelete_RoundTrip(t *testing.T) {
	store := &FileStore{}
	content := []byte("file store round trip content")
	storedName := uuid.New().String() + ".txt"

	size, hash, err := store.Save(storedName, bytes.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), size)

	expectedHash := sha256.Sum256(content)
	assert.Equal(t, hex.EncodeToString(expectedHash[:]), hash)

	blob, err := store.Open(storedName)
	require.NoError(t, err)
	readBack, err := io.ReadAll(blob)
	require.NoError(t, err)
	require.NoError(t, blob.Close())
	assert.Equal(t, content, readBack)

	require.NoError(t, store.Delete(storedName))

	_, err = store.Open(storedName)
	assert.Error(t, err)
}

func Test_FileStore_Delete_MissingBlob_IsNoError(t *testing.T) {
	store := &FileStore{}

	assert.NoError(t, store.Delete(uuid.New().String()+".bin"))
}

func Test_FileStore_Save_EmptyFile_Works(t *testing.T) {
	store := &FileStore{}
	storedName := uuid.New().String()

	size, hash, err := store.Save(storedName, bytes.NewReader(nil))
	require.NoError(t, err)
	assert.Equal(t, int64(0), size)
	assert.NotEmpty(t, hash)

	require.NoError(t, store.Delete(storedName))
}
