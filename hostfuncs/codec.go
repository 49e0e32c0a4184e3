package hostfuncs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/scriptglue/scriptglue-sdk/domain/errors"
)

// Codec serializes host function payloads. JSON is the default wire
// format; CBOR is available for guests that prefer a binary encoding.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// JSONCodec encodes payloads with encoding/json.
type JSONCodec struct{}

func (JSONCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (JSONCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (JSONCodec) Name() string                       { return "json" }

// CBORCodec encodes payloads with canonical CBOR, so equal payloads
// always produce identical bytes.
type CBORCodec struct {
	enc cbor.EncMode
}

// NewCBORCodec builds the canonical encoder once; EncOptions validation
// cannot fail for the canonical preset.
func NewCBORCodec() CBORCodec {
	enc, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("hostfuncs: canonical cbor mode: %v", err))
	}
	return CBORCodec{enc: enc}
}

func (c CBORCodec) Marshal(v any) ([]byte, error)    { return c.enc.Marshal(v) }
func (CBORCodec) Unmarshal(data []byte, v any) error { return cbor.Unmarshal(data, v) }
func (CBORCodec) Name() string                       { return "cbor" }

// NewCodecHandler wraps a typed HostFunc into a ByteHandler using the
// given codec. NewJSONHandler is the JSON shorthand.
func NewCodecHandler[Req any, Resp any](codec Codec, fn HostFunc[Req, Resp]) ByteHandler {
	return func(ctx context.Context, payload []byte) ([]byte, error) {
		var req Req
		if err := codec.Unmarshal(payload, &req); err != nil {
			resp := NewValidationError(fmt.Sprintf("failed to unmarshal %s request: %v", codec.Name(), err))
			if out, merr := codec.Marshal(resp); merr == nil {
				return out, nil
			}
			return resp.ToJSON(), nil
		}

		resp := fn(ctx, req)

		respBytes, err := codec.Marshal(resp)
		if err != nil {
			return nil, &errors.WireFormatError{Operation: "marshal", Type: fmt.Sprintf("%T", resp), Err: err}
		}

		return respBytes, nil
	}
}
