package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvelopeTriples(t *testing.T) {
	tests := []struct {
		name       string
		env        Envelope
		wantStatus int
		wantCode   int
		wantMsg    string
	}{
		{"ok", Ok(nil), 201, CodeOk, "Ok"},
		{"delete ok", DeleteOk(), 202, CodeDeleteOk, "delete ok"},
		{"update ok", UpdateOk(), 203, CodeUpdateOk, "update ok"},
		{"server error", ServerError(), 500, CodeServerError, "Sorry, server made a mistake"},
		{"invalid parameter", InvalidParameter("bad gender"), 400, CodeInvalidParameter, "bad gender"},
		{"not found", NotFound("no such user"), 404, CodeNotFound, "no such user"},
		{"forbidden", Forbidden(), 403, CodeForbidden, "forbidden"},
		{"auth failed", AuthFailed(), 401, CodeAuthFailed, "authorization failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, tt.env.Status)
			assert.Equal(t, tt.wantCode, tt.env.Code)
			assert.Equal(t, tt.wantMsg, tt.env.Msg)
		})
	}
}

func TestEnvelopeDefaultMessages(t *testing.T) {
	assert.Equal(t, "Invalid parameter", InvalidParameter("").Msg)
	assert.Equal(t, "Resource not found", NotFound("").Msg)
}

func TestEnvelopeIsSuccess(t *testing.T) {
	assert.True(t, Ok(nil).IsSuccess())
	assert.True(t, DeleteOk().IsSuccess())
	assert.True(t, UpdateOk().IsSuccess())
	assert.False(t, ServerError().IsSuccess())
	assert.False(t, InvalidParameter("x").IsSuccess())
	assert.False(t, NotFound("x").IsSuccess())
	assert.False(t, Forbidden().IsSuccess())
	assert.False(t, AuthFailed().IsSuccess())
}

func TestEnvelopeData(t *testing.T) {
	env := Ok(IDResponse{ID: 7})
	data, ok := env.Data.(IDResponse)
	assert.True(t, ok)
	assert.Equal(t, int64(7), data.ID)

	assert.Nil(t, DeleteOk().Data)
}

func TestUpdateUserRequestEmpty(t *testing.T) {
	assert.True(t, UpdateUserRequest{}.Empty())

	contact := "13800000000"
	assert.False(t, UpdateUserRequest{Contact: &contact}.Empty())
}
