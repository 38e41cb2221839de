package decode

// Visitor receives one callback per value Cursor.Decode encounters. It is
// the polymorphic-visitor design: a caller can implement it directly to
// stream-process a value without ever materializing a value.Value tree
// (value.TreeVisitor is the tree-building implementation the top-level
// convenience API uses).
//
// Implementations that return an error from any method abort the decode;
// Cursor.Decode propagates that error wrapped in errs.VisitorError.
type Visitor interface {
	VisitNull() error
	VisitBool(b bool) error
	VisitDouble(f float64) error
	VisitInt(i int64) error
	VisitUint(u uint64) error
	VisitString(s string) error

	BeginArray(count int) error
	EndArray() error

	BeginObject(count int) error
	VisitKey(key string) error
	EndObject() error
}

// noopVisitor discards every event. Cursor uses it internally to measure
// the byte length of a value (e.g. an equal-length array's first element)
// without double-delivering events to the caller's real Visitor.
type noopVisitor struct{}

func (noopVisitor) VisitNull() error          { return nil }
func (noopVisitor) VisitBool(bool) error      { return nil }
func (noopVisitor) VisitDouble(float64) error { return nil }
func (noopVisitor) VisitInt(int64) error      { return nil }
func (noopVisitor) VisitUint(uint64) error    { return nil }
func (noopVisitor) VisitString(string) error  { return nil }
func (noopVisitor) BeginArray(int) error      { return nil }
func (noopVisitor) EndArray() error           { return nil }
func (noopVisitor) BeginObject(int) error     { return nil }
func (noopVisitor) VisitKey(string) error     { return nil }
func (noopVisitor) EndObject() error          { return nil }
