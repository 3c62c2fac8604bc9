package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    ClaimID
		wantErr bool
	}{
		{name: "string", payload: `{"user_id":"u123"}`, want: "u123"},
		{name: "small number", payload: `{"user_id":42}`, want: "42"},
		{name: "number above 2^53", payload: `{"user_id":9007199254740993}`, want: "9007199254740993"},
		{name: "null", payload: `{"user_id":null}`, want: ""},
		{name: "missing", payload: `{}`, want: ""},
		{name: "object", payload: `{"user_id":{"id":1}}`, wantErr: true},
		{name: "bool", payload: `{"user_id":true}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var claims TokenClaims
			err := json.Unmarshal([]byte(tt.payload), &claims)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, claims.UserID)
		})
	}
}
