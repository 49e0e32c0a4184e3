package hostfuncs

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptglue/scriptglue-sdk/domain/entities"
)

func TestNewJSONHandler(t *testing.T) {
	type lookupReq struct {
		Name string `json:"name"`
	}
	type lookupResp struct {
		Owner string `json:"owner"`
	}

	lookup := func(ctx context.Context, req lookupReq) lookupResp {
		return lookupResp{Owner: "app." + req.Name}
	}

	handler := NewJSONHandler(lookup)

	t.Run("success", func(t *testing.T) {
		req := lookupReq{Name: "math"}
		reqBytes, err := json.Marshal(req)
		require.NoError(t, err)

		respBytes, err := handler(context.Background(), reqBytes)
		require.NoError(t, err)

		var resp lookupResp
		err = json.Unmarshal(respBytes, &resp)
		require.NoError(t, err)
		assert.Equal(t, "app.math", resp.Owner)
	})

	t.Run("invalid JSON returns ErrorResponse", func(t *testing.T) {
		respBytes, err := handler(context.Background(), []byte("{invalid-json"))
		require.NoError(t, err)
		require.NotNil(t, respBytes)

		var errResp ErrorResponse
		require.NoError(t, json.Unmarshal(respBytes, &errResp))
		assert.Equal(t, "VALIDATION_ERROR", errResp.Error)
		assert.Equal(t, 400, errResp.Code)
		assert.Contains(t, errResp.Message, "unmarshal")
	})
}

func TestNewJSONHandler_WithWireTypes(t *testing.T) {
	handler := NewJSONHandler(func(ctx context.Context, req entities.HasMemberRequest) entities.HasMemberResponse {
		return entities.HasMemberResponse{Found: req.Name.Str == "length"}
	})

	req := entities.HasMemberRequest{Object: 1, Name: entities.ValueWire{Kind: "string", Str: "length"}}
	reqBytes, err := json.Marshal(req)
	require.NoError(t, err)

	respBytes, err := handler(context.Background(), reqBytes)
	require.NoError(t, err)

	var resp entities.HasMemberResponse
	err = json.Unmarshal(respBytes, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Found)
}
