package api

import (
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// Record is one row of the users table with every column it has.
// Numbers come back as float64 after a round trip, as with any JSON value.
type Record struct {
	s *structpb.Struct
}

// NewRecord converts a column map into a Record. Values must be nil, bool,
// numeric, string, []byte, []any or map[string]any.
func NewRecord(m map[string]any) (*Record, error) {
	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, err
	}
	return &Record{s: s}, nil
}

// AsMap returns the record columns. A nil Record yields an empty map.
func (r *Record) AsMap() map[string]any {
	if r == nil || r.s == nil {
		return map[string]any{}
	}
	return r.s.AsMap()
}

func (r *Record) MarshalJSON() ([]byte, error) {
	if r == nil || r.s == nil {
		return []byte("null"), nil
	}
	return protojson.Marshal(r.s)
}

func (r *Record) UnmarshalJSON(b []byte) error {
	s := &structpb.Struct{}
	if err := protojson.Unmarshal(b, s); err != nil {
		return err
	}
	r.s = s
	return nil
}
