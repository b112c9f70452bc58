package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/v4ld3m4rjr/spravattus2/internal/models"
	"github.com/v4ld3m4rjr/spravattus2/internal/sheets"
)

type SheetStore interface {
	InsertUserSheet(ctx context.Context, s *models.UserSheet) error
	ListUserSheets(ctx context.Context, userID string) ([]models.UserSheet, error)
	DeleteUserSheet(ctx context.Context, id, userID string) error
}

type SheetProvider interface {
	Create(ctx context.Context, name string) (*sheets.Spreadsheet, error)
	Delete(ctx context.Context, sheetID string) error
}

type SheetService struct {
	Store    SheetStore
	Provider SheetProvider
}

func NewSheetService(store SheetStore, provider SheetProvider) *SheetService {
	return &SheetService{Store: store, Provider: provider}
}

type CreatedSheet struct {
	UserSheetID    string
	SpreadsheetID  string
	SpreadsheetURL string
}

// CreateSheet provisions the external spreadsheet, then records the
// mapping row. If the external call succeeds and the insert fails the
// external resource is orphaned; that partial failure is reported to the
// caller and reconciled manually, never masked.
func (s *SheetService) CreateSheet(ctx context.Context, userID, name string) (*CreatedSheet, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: sheet name required", ErrValidation)
	}
	sheet, err := s.Provider.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	row := &models.UserSheet{ID: uuid.NewString(), UserID: userID, SheetID: sheet.ID, SheetName: name}
	if err := s.Store.InsertUserSheet(ctx, row); err != nil {
		return nil, fmt.Errorf("spreadsheet %s was created externally but recording it failed (manual cleanup needed): %w", sheet.ID, err)
	}
	return &CreatedSheet{UserSheetID: row.ID, SpreadsheetID: sheet.ID, SpreadsheetURL: sheet.URL}, nil
}

// DeleteSheet removes the external resource first, then the local row.
// The provider treats an already-deleted spreadsheet as success; any
// other provider failure keeps the local row so the mapping stays
// visible for a retry.
func (s *SheetService) DeleteSheet(ctx context.Context, userID, userSheetID, sheetID string) error {
	if userSheetID == "" || sheetID == "" {
		return fmt.Errorf("%w: sheet id and user sheet id required", ErrValidation)
	}
	if err := s.Provider.Delete(ctx, sheetID); err != nil {
		return err
	}
	return s.Store.DeleteUserSheet(ctx, userSheetID, userID)
}

func (s *SheetService) ListSheets(ctx context.Context, userID string) ([]models.UserSheet, error) {
	return s.Store.ListUserSheets(ctx, userID)
}
