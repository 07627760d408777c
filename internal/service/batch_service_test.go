package service_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mailtriage/internal/domain"
	"mailtriage/internal/extract"
	"mailtriage/internal/service"
	"mailtriage/mocks"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestBatchService_ClassifyFiles(t *testing.T) {
	src := t.TempDir()
	action := writeFile(t, src, "chamado.txt", "Preciso de uma atualização sobre o chamado 12345, por favor.")
	greeting := writeFile(t, src, "natal.txt", "Feliz Natal a toda a equipe! Obrigado pela parceria.")
	docx := writeFile(t, src, "contrato.docx", "binary")
	missing := filepath.Join(src, "missing.txt")

	model := scriptedModel()
	pipeline := service.NewPipelineService(newClassifier(model), newDrafter(model))
	uploads := service.NewUploadService(extract.New(), uploadCfg(t))

	items, err := service.NewBatchService(uploads, pipeline, 2, 10).
		ClassifyFiles(context.Background(), []string{action, greeting, docx, missing})
	require.NoError(t, err)
	require.Len(t, items, 4)

	assert.Equal(t, action, items[0].Path)
	require.NoError(t, items[0].Err)
	assert.Equal(t, domain.CategoryRequiresAction, items[0].Result.Category)
	require.NotNil(t, items[0].Result.Filename)
	assert.Equal(t, "chamado.txt", *items[0].Result.Filename)

	require.NoError(t, items[1].Err)
	assert.Equal(t, domain.CategoryNoActionNeeded, items[1].Result.Category)

	assert.Nil(t, items[2].Result)
	assert.ErrorIs(t, items[2].Err, domain.ErrUnsupportedFileType)

	assert.Nil(t, items[3].Result)
	assert.ErrorIs(t, items[3].Err, domain.ErrExtractionRead)

	// The originals survive; only staged copies are removed.
	for _, p := range []string{action, greeting, docx} {
		_, statErr := os.Stat(p)
		assert.NoError(t, statErr, p)
	}
}

func TestBatchService_ClassifyFiles_CanceledContext(t *testing.T) {
	src := t.TempDir()
	path := writeFile(t, src, "a.txt", "Bom dia, tudo certo?")

	uploads := new(mocks.MockUploadService)
	pipeline := new(mocks.MockPipelineService)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items, err := service.NewBatchService(uploads, pipeline, 1, 10).ClassifyFiles(ctx, []string{path})

	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, items, 1)
	assert.ErrorIs(t, items[0].Err, context.Canceled)
	uploads.AssertNotCalled(t, "Ingest", mock.Anything, mock.Anything)
	pipeline.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}

func TestBatchService_ClassifyFiles_Empty(t *testing.T) {
	items, err := service.NewBatchService(new(mocks.MockUploadService), new(mocks.MockPipelineService), 0, 10).
		ClassifyFiles(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestBatchService_ClassifyFiles_ShortContent(t *testing.T) {
	src := t.TempDir()
	short := writeFile(t, src, "oi.txt", "oi!")

	model := scriptedModel()
	pipeline := service.NewPipelineService(newClassifier(model), newDrafter(model))
	uploads := service.NewUploadService(extract.New(), uploadCfg(t))

	items, err := service.NewBatchService(uploads, pipeline, 1, 10).
		ClassifyFiles(context.Background(), []string{short})
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Nil(t, items[0].Result)
	assert.ErrorIs(t, items[0].Err, domain.ErrContentTooShort)
	assert.Empty(t, model.requests())
}
