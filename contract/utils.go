package main

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"slot_machine/sdk"
)

// ---------- JSON Conversions ----------

func ToJSON[T any](v T, objectType string) string {
	b, err := json.Marshal(v)
	if err != nil {
		sdk.Abort("failed to marshal " + objectType)
	}
	return string(b)
}

func FromJSON[T any](data string) (*T, error) {
	var v T
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// ---------- UInt/String Helpers ----------

func UInt64ToString(val uint64) string {
	return strconv.FormatUint(val, 10)
}

// parseAmount parses a base-10 unsigned integer, aborting with a
// message naming the field.
func parseAmount(s string, field string) uint64 {
	require(s != "", ERR_INPUT+": "+field+" is mandatory")
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		sdk.Abort(fmt.Sprintf("%s: failed to parse %s '%s'", ERR_INPUT, field, s))
	}
	return v
}

// ---------- Parsing Helpers ----------

func nextField(s *string) string {
	i := strings.IndexByte(*s, '|')
	if i < 0 {
		f := *s
		*s = ""
		return f
	}
	f := (*s)[:i]
	*s = (*s)[i+1:]
	return f
}

func payloadOrEmpty(payload *string) string {
	if payload == nil {
		return ""
	}
	return *payload
}

// ---------- Require ----------

func require(cond bool, msg string) {
	if !cond {
		sdk.Abort(msg)
	}
}

func abortOnError(err error, context string) {
	if err == nil {
		return
	}
	if context == "" {
		sdk.Abort(err.Error())
	}
	sdk.Abort(context + ": " + err.Error())
}

// ---------- Binary codec ----------

// rd is a binary reader over a stored blob. Reads past the end abort.
type rd struct {
	b []byte
	i int
}

func (r *rd) need(n int) { require(r.i+n <= len(r.b), "decode overflow") }

func (r *rd) u8() byte {
	r.need(1)
	v := r.b[r.i]
	r.i++
	return v
}

func (r *rd) bool() bool { return r.u8() == 1 }

func (r *rd) u16() uint16 {
	r.need(2)
	v := binary.BigEndian.Uint16(r.b[r.i : r.i+2])
	r.i += 2
	return v
}

func (r *rd) u64() uint64 {
	r.need(8)
	v := binary.BigEndian.Uint64(r.b[r.i : r.i+8])
	r.i += 8
	return v
}

func (r *rd) str() string {
	l := int(r.u16())
	r.need(l)
	v := string(r.b[r.i : r.i+l])
	r.i += l
	return v
}

func (r *rd) mustEnd() { require(r.i == len(r.b), "trailing bytes") }

// wr is the matching writer.
type wr struct {
	b []byte
}

func (w *wr) u8(v byte) { w.b = append(w.b, v) }

func (w *wr) bool(v bool) {
	if v {
		w.u8(1)
		return
	}
	w.u8(0)
}

func (w *wr) u64(v uint64) {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	w.b = append(w.b, tmp[:]...)
}

func (w *wr) str(s string) {
	require(len(s) <= 65535, "string too long")
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], uint16(len(s)))
	w.b = append(w.b, tmp[:]...)
	w.b = append(w.b, s...)
}

func (w *wr) String() string { return string(w.b) }
