package decode

import (
	"github.com/arloliu/velocypack/errs"
	"github.com/arloliu/velocypack/vptag"
)

// decodeValue dispatches the tag at c.pos to the matching decode*
// function, wrapping any error the Visitor itself returns.
func (c *Cursor) decodeValue(v Visitor) error {
	if err := c.need(1); err != nil {
		return err
	}

	tag := c.data[c.pos]
	d := vptag.Classify(tag)

	var err error
	switch d.Kind {
	case vptag.KindNull:
		c.pos++
		err = v.VisitNull()
	case vptag.KindBool:
		err = c.decodeBool(v, tag)
	case vptag.KindDouble:
		err = c.decodeDouble(v)
	case vptag.KindSmallInt:
		err = c.decodeSmallInt(v, tag)
	case vptag.KindSignedInt:
		err = c.decodeSignedInt(v, d)
	case vptag.KindUnsignedInt:
		err = c.decodeUnsignedInt(v, d)
	case vptag.KindShortString, vptag.KindLongString:
		err = c.decodeString(v)
	case vptag.KindArray:
		err = c.decodeArray(v, d)
	case vptag.KindObject:
		err = c.decodeObject(v, d)
	default:
		return &errs.UnimplementedError{Tag: tag}
	}

	if err != nil {
		if isCoreErr(err) {
			return err
		}

		return &errs.VisitorError{Err: err}
	}

	return nil
}

// isCoreErr reports whether err originated from the cursor itself (format
// or bounds problems) rather than from a caller Visitor callback, so
// Cursor.decodeValue knows not to double-wrap it in VisitorError.
func isCoreErr(err error) bool {
	switch err.(type) {
	case *errs.NumberTooLargeError, *errs.TrailingBytesError, *errs.UnimplementedError, *errs.VisitorError:
		return true
	}

	switch err {
	case errs.ErrEOF, errs.ErrExpectedString, errs.ErrInvalidUTF8, errs.ErrStrideMismatch, errs.ErrMaxDepthExceeded, errs.ErrKeyNotString:
		return true
	}

	return false
}

// skipValue advances the cursor past one complete value without
// delivering any events, used to measure the byte stride of an
// equal-length array's first element.
func (c *Cursor) skipValue() error {
	return c.decodeValue(noopVisitor{})
}
