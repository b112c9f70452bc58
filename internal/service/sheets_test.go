package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/v4ld3m4rjr/spravattus2/internal/models"
	"github.com/v4ld3m4rjr/spravattus2/internal/sheets"
)

type fakeSheetStore struct {
	rows      map[string]models.UserSheet
	insertErr error
}

func (f *fakeSheetStore) InsertUserSheet(_ context.Context, s *models.UserSheet) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.rows[s.ID] = *s
	return nil
}

func (f *fakeSheetStore) ListUserSheets(_ context.Context, userID string) ([]models.UserSheet, error) {
	var out []models.UserSheet
	for _, r := range f.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeSheetStore) DeleteUserSheet(_ context.Context, id, userID string) error {
	r, ok := f.rows[id]
	if !ok || r.UserID != userID {
		return errors.New("no rows")
	}
	delete(f.rows, id)
	return nil
}

type fakeProvider struct {
	created   []string
	deleted   []string
	createErr error
	deleteErr error
}

func (f *fakeProvider) Create(_ context.Context, name string) (*sheets.Spreadsheet, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, name)
	return &sheets.Spreadsheet{ID: "ext-1", URL: "https://sheets.example/ext-1"}, nil
}

func (f *fakeProvider) Delete(_ context.Context, sheetID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, sheetID)
	return nil
}

func TestCreateSheetRecordsMapping(t *testing.T) {
	store := &fakeSheetStore{rows: map[string]models.UserSheet{}}
	provider := &fakeProvider{}
	svc := NewSheetService(store, provider)

	created, err := svc.CreateSheet(context.Background(), "u1", "  March log  ")
	require.NoError(t, err)
	assert.Equal(t, "ext-1", created.SpreadsheetID)
	assert.Equal(t, "https://sheets.example/ext-1", created.SpreadsheetURL)
	assert.NotEmpty(t, created.UserSheetID)

	row := store.rows[created.UserSheetID]
	assert.Equal(t, "u1", row.UserID)
	assert.Equal(t, "March log", row.SheetName, "name is trimmed before use")
	assert.Equal(t, []string{"March log"}, provider.created)
}

func TestCreateSheetRejectsBlankName(t *testing.T) {
	svc := NewSheetService(&fakeSheetStore{rows: map[string]models.UserSheet{}}, &fakeProvider{})
	_, err := svc.CreateSheet(context.Background(), "u1", "   ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateSheetReportsOrphanWhenInsertFails(t *testing.T) {
	store := &fakeSheetStore{rows: map[string]models.UserSheet{}, insertErr: errors.New("db down")}
	provider := &fakeProvider{}
	svc := NewSheetService(store, provider)

	_, err := svc.CreateSheet(context.Background(), "u1", "log")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "created externally")
	assert.Len(t, provider.created, 1, "external resource exists even though recording failed")
}

func TestDeleteSheetRemovesProviderThenLocalRow(t *testing.T) {
	store := &fakeSheetStore{rows: map[string]models.UserSheet{
		"us-1": {ID: "us-1", UserID: "u1", SheetID: "ext-1"},
	}}
	provider := &fakeProvider{}
	svc := NewSheetService(store, provider)

	require.NoError(t, svc.DeleteSheet(context.Background(), "u1", "us-1", "ext-1"))
	assert.Empty(t, store.rows)
	assert.Equal(t, []string{"ext-1"}, provider.deleted)
}

func TestDeleteSheetKeepsLocalRowOnProviderFailure(t *testing.T) {
	store := &fakeSheetStore{rows: map[string]models.UserSheet{
		"us-1": {ID: "us-1", UserID: "u1", SheetID: "ext-1"},
	}}
	provider := &fakeProvider{deleteErr: &sheets.ProviderError{Status: 500, Message: "boom"}}
	svc := NewSheetService(store, provider)

	err := svc.DeleteSheet(context.Background(), "u1", "us-1", "ext-1")
	require.Error(t, err)
	assert.Len(t, store.rows, 1, "mapping stays visible for a retry")
}
