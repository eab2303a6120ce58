package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "gearguard/pkg/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func recordError(t *testing.T, err error) (int, ErrorBody) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, ErrorResponse(c, err, zap.NewNop()))

	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestErrorResponse_HttpError(t *testing.T) {
	code, body := recordError(t, apperrors.NewBadRequestError("invalid status"))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "invalid status", body.Error)
}

func TestErrorResponse_Sentinels(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{apperrors.ErrNotFound, http.StatusNotFound},
		{apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{apperrors.ErrForbidden, http.StatusForbidden},
		{apperrors.ErrNoTeamAssigned, http.StatusForbidden},
	}

	for _, tc := range cases {
		code, body := recordError(t, tc.err)
		assert.Equal(t, tc.code, code, tc.err.Error())
		assert.Equal(t, tc.err.Error(), body.Error)
	}
}

func TestErrorResponse_UnknownErrorIsOpaque(t *testing.T) {
	code, body := recordError(t, errors.New("pq: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "server error", body.Error)
}

func TestHashAndComparePasswords(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.NoError(t, ComparePasswords(hash, "secret123"))
	assert.Error(t, ComparePasswords(hash, "wrong"))
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, 2024, parsed.Year())
	assert.Equal(t, "2024-03-01", parsed.Format(DateLayout))

	_, err = ParseDate("01/03/2024")
	assert.Error(t, err)
}
