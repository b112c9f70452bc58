package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/v4ld3m4rjr/spravattus2/internal/auth"
	"github.com/v4ld3m4rjr/spravattus2/internal/export"
	"github.com/v4ld3m4rjr/spravattus2/internal/repo"
	"github.com/v4ld3m4rjr/spravattus2/internal/service"
	"github.com/v4ld3m4rjr/spravattus2/internal/sheets"
)

const dateLayout = "2006-01-02"

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type entityResponse struct {
	ID string `json:"id"`
}

type profileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

type createSheetRequest struct {
	SheetName string `json:"sheetName"`
}

type createSheetResponse struct {
	SpreadsheetID  string `json:"spreadsheetId"`
	SpreadsheetURL string `json:"spreadsheetUrl"`
	UserSheetID    string `json:"userSheetId"`
}

type deleteSheetRequest struct {
	SheetID     string `json:"sheetId"`
	UserSheetID string `json:"userSheetId"`
}

func (a *API) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *API) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Email and password required")
		return
	}
	userID, err := a.Accounts.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, http.StatusBadRequest, "REGISTRATION_FAILED", err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, entityResponse{ID: userID})
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	accessToken, refreshToken, err := a.Accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid credentials")
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{AccessToken: accessToken, RefreshToken: refreshToken})
}

func (a *API) handleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing user")
		return
	}
	account, err := a.Profiles.Me(r.Context(), userID)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, account)
}

func (a *API) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing user")
		return
	}
	profile, err := a.Profiles.Get(r.Context(), userID)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (a *API) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing user")
		return
	}
	var req profileRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	profile, err := a.Profiles.Update(r.Context(), userID, req.FirstName, req.LastName)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// dateParam reads ?date=YYYY-MM-DD; an absent param means today.
func dateParam(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return time.Now().UTC(), true
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "date must be YYYY-MM-DD")
		return time.Time{}, false
	}
	return t, true
}

func (a *API) handleGetDaily(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing user")
		return
	}
	day, ok := dateParam(w, r)
	if !ok {
		return
	}
	resp, err := a.Responses.GetDaily(r.Context(), userID, day)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) handlePutDaily(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing user")
		return
	}
	day, ok := dateParam(w, r)
	if !ok {
		return
	}
	var in service.DailyInput
	if !decodeJSON(w, r, &in) {
		return
	}
	resp, err := a.Responses.SaveDaily(r.Context(), userID, day, in)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) handleGetWeekly(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing user")
		return
	}
	day, ok := dateParam(w, r)
	if !ok {
		return
	}
	resp, err := a.Responses.GetWeekly(r.Context(), userID, day)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) handlePutWeekly(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing user")
		return
	}
	day, ok := dateParam(w, r)
	if !ok {
		return
	}
	var in service.WeeklyInput
	if !decodeJSON(w, r, &in) {
		return
	}
	resp, err := a.Responses.SaveWeekly(r.Context(), userID, day, in)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) handleGetMonthly(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing user")
		return
	}
	day, ok := dateParam(w, r)
	if !ok {
		return
	}
	resp, err := a.Responses.GetMonthly(r.Context(), userID, day)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) handlePutMonthly(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing user")
		return
	}
	day, ok := dateParam(w, r)
	if !ok {
		return
	}
	var in service.MonthlyInput
	if !decodeJSON(w, r, &in) {
		return
	}
	resp, err := a.Responses.SaveMonthly(r.Context(), userID, day, in)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) handleGetQuarterly(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing user")
		return
	}
	day, ok := dateParam(w, r)
	if !ok {
		return
	}
	resp, err := a.Responses.GetQuarterly(r.Context(), userID, day)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) handlePutQuarterly(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing user")
		return
	}
	day, ok := dateParam(w, r)
	if !ok {
		return
	}
	var in service.QuarterlyInput
	if !decodeJSON(w, r, &in) {
		return
	}
	resp, err := a.Responses.SaveQuarterly(r.Context(), userID, day, in)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) handleDailySeries(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing user")
		return
	}
	end := time.Now().UTC()
	if raw := r.URL.Query().Get("end"); raw != "" {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "end must be YYYY-MM-DD")
			return
		}
		end = t
	}
	days := 30
	if raw := r.URL.Query().Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > 366 {
			writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "days must be between 1 and 366")
			return
		}
		days = n
	}
	points, err := a.Dashboard.BuildDailySeries(r.Context(), userID, end, days)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, points)
}

func (a *API) handleCreateSheet(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing user")
		return
	}
	var req createSheetRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	created, err := a.Sheets.CreateSheet(r.Context(), userID, req.SheetName)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, createSheetResponse{
		SpreadsheetID:  created.SpreadsheetID,
		SpreadsheetURL: created.SpreadsheetURL,
		UserSheetID:    created.UserSheetID,
	})
}

func (a *API) handleDeleteSheet(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing user")
		return
	}
	var req deleteSheetRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := a.Sheets.DeleteSheet(r.Context(), userID, req.UserSheetID, req.SheetID); err != nil {
		a.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Sheet deleted"})
}

func (a *API) handleListSheets(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing user")
		return
	}
	rows, err := a.Sheets.ListSheets(r.Context(), userID)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (a *API) handleExport(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing user")
		return
	}
	data, err := a.Export.Bundle(r.Context(), userID)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}
	f, err := export.Workbook(data)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("spravattus-export-%s.xlsx", time.Now().UTC().Format(dateLayout))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := f.Write(w); err != nil {
		a.Log.Errorw("export write failed", "error", err)
	}
}

// writeServiceError maps service and repository errors onto the API's
// error envelope. Unknown errors are logged and hidden from the client.
func (a *API) writeServiceError(w http.ResponseWriter, err error) {
	var providerErr *sheets.ProviderError
	switch {
	case errors.Is(err, service.ErrValidation):
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, repo.ErrNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Not found")
	case errors.As(err, &providerErr):
		writeError(w, http.StatusBadGateway, "UPSTREAM_ERROR", providerErr.Message)
	default:
		a.Log.Errorw("internal error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}
