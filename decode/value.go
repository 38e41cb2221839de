package decode

import (
	"github.com/arloliu/velocypack/errs"
	"github.com/arloliu/velocypack/value"
)

// Value decodes the value at the start of data into a value.Value tree
// and returns the unconsumed remainder.
func Value(data []byte) (value.Value, []byte, error) {
	c, err := NewCursor(data)
	if err != nil {
		return value.Value{}, nil, err
	}

	tv := value.NewTreeVisitor()

	remaining, err := c.Decode(tv)
	if err != nil {
		return value.Value{}, nil, err
	}

	result, err := tv.Result()
	if err != nil {
		return value.Value{}, nil, err
	}

	return result, remaining, nil
}

// ValueAll decodes exactly one value.Value tree from data and reports an
// error if any bytes remain afterward.
func ValueAll(data []byte) (value.Value, error) {
	result, remaining, err := Value(data)
	if err != nil {
		return value.Value{}, err
	}

	if len(remaining) > 0 {
		return value.Value{}, &errs.TrailingBytesError{N: len(remaining)}
	}

	return result, nil
}
