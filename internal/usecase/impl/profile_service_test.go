package impl

import (
	"context"
	"testing"

	"alufactory/internal/domain/entity"
	domainerrors "alufactory/internal/domain/errors"
	"alufactory/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProfileWithDocument(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	actor := env.registerUser(t, "0911111111")

	payload := pdfBase64("%PDF-1.4 drawing")
	profile, err := env.profiles.Create(ctx, actor, usecase.CreateProfileInput{
		ProfileName: "客廳相框",
		ProfileData: map[string]any{"style": "modern"},
		Address:     &entity.ProfileAddress{RecipientName: "王小明", Phone: "0912345678"},
		PDFBase64:   payload,
		PDFFilename: "drawing.pdf",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, profile.PDFPath)
	assert.Equal(t, payload, profile.PDFBase64)

	doc, err := env.profiles.GetDocument(ctx, actor, profile.ID)
	require.NoError(t, err)
	assert.Equal(t, "drawing.pdf", doc.Filename)
	assert.Equal(t, "%PDF-1.4 drawing", string(doc.Data))
}

func TestCreateProfileSecondIsConflict(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	actor := env.registerUser(t, "0911111111")

	_, err := env.profiles.Create(ctx, actor, usecase.CreateProfileInput{ProfileName: "first"})
	require.NoError(t, err)

	_, err = env.profiles.Create(ctx, actor, usecase.CreateProfileInput{ProfileName: "second"})
	assert.ErrorIs(t, err, domainerrors.ErrProfileAlreadyExists)
}

func TestGetDocumentFallsBackToBase64(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	actor := env.registerUser(t, "0911111111")

	payload := pdfBase64("%PDF-1.4 drawing")
	env.docs.failSave = true
	profile, err := env.profiles.Create(ctx, actor, usecase.CreateProfileInput{
		ProfileName: "客廳相框",
		PDFBase64:   payload,
		PDFFilename: "drawing.pdf",
	})
	require.NoError(t, err)
	assert.Empty(t, profile.PDFPath, "disk failure degrades to base64 only")

	doc, err := env.profiles.GetDocument(ctx, actor, profile.ID)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 drawing", string(doc.Data))
}

func TestGetDocumentMissingEverywhere(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	actor := env.registerUser(t, "0911111111")

	profile, err := env.profiles.Create(ctx, actor, usecase.CreateProfileInput{ProfileName: "no pdf"})
	require.NoError(t, err)

	_, err = env.profiles.GetDocument(ctx, actor, profile.ID)
	assert.ErrorIs(t, err, domainerrors.ErrDocumentNotFound)
}

func TestUpdateProfileReplacesDocument(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	actor := env.registerUser(t, "0911111111")

	profile, err := env.profiles.Create(ctx, actor, usecase.CreateProfileInput{
		ProfileName: "客廳相框",
		PDFBase64:   pdfBase64("old"),
		PDFFilename: "old.pdf",
	})
	require.NoError(t, err)

	newPayload := pdfBase64("new")
	newName := "new.pdf"
	updated, err := env.profiles.Update(ctx, actor, profile.ID, usecase.UpdateProfileInput{
		PDFBase64:   &newPayload,
		PDFFilename: &newName,
	})
	require.NoError(t, err)
	assert.Equal(t, newPayload, updated.PDFBase64)

	doc, err := env.profiles.GetDocument(ctx, actor, profile.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", string(doc.Data))
	assert.Equal(t, "new.pdf", doc.Filename)
}

func TestProfileOwnerOnlyWrites(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	owner := env.registerUser(t, "0911111111")
	admin := env.registerAdmin(t, "0933333333")

	profile, err := env.profiles.Create(ctx, owner, usecase.CreateProfileInput{ProfileName: "mine"})
	require.NoError(t, err)

	// Admins may read but not rewrite or delete somebody else's profile.
	_, err = env.profiles.Get(ctx, admin, profile.ID)
	assert.NoError(t, err)

	name := "hijacked"
	_, err = env.profiles.Update(ctx, admin, profile.ID, usecase.UpdateProfileInput{ProfileName: &name})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	err = env.profiles.Delete(ctx, admin, profile.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestDeleteProfileRemovesDocument(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	actor := env.registerUser(t, "0911111111")

	profile, err := env.profiles.Create(ctx, actor, usecase.CreateProfileInput{
		ProfileName: "客廳相框",
		PDFBase64:   pdfBase64("%PDF-1.4 drawing"),
		PDFFilename: "drawing.pdf",
	})
	require.NoError(t, err)
	path := profile.PDFPath

	require.NoError(t, env.profiles.Delete(ctx, actor, profile.ID))

	_, err = env.docs.Load(path)
	assert.Error(t, err)

	mine, err := env.profiles.ListMine(ctx, actor)
	require.NoError(t, err)
	assert.Empty(t, mine)
}
