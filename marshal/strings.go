package marshal

import (
	"strconv"

	"github.com/scriptglue/scriptglue-sdk/domain/entities"
	"github.com/scriptglue/scriptglue-sdk/domain/ports"
)

// StringValue builds a host string value by copying s into exactly
// len(s) bytes of host-owned memory. Allocation failure is reported as
// an error, never a crash; the empty string needs no allocation and is
// always successful.
func StringValue(alloc ports.Allocator, s string) (entities.Value, error) {
	buf, err := alloc.Alloc(len(s))
	if err != nil {
		return entities.Undefined(), err
	}
	copy(buf, s)
	v := entities.StringValue(string(buf))
	alloc.Free(buf)
	return v, nil
}

// UintToString formats a 32-bit unsigned integer. The result never
// exceeds ten digits.
func UintToString(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}
