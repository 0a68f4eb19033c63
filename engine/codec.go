package engine

import (
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Decoder reads events one by one. It returns io.EOF after the last event.
type Decoder interface {
	Decode() (Event, error)
}

// Encoder writes events one by one.
type Encoder interface {
	Encode(ev Event) error
}

type jsonDecoder struct {
	dec *json.Decoder
}

// NewJSONDecoder reads a stream of JSON objects, typically one per line.
func NewJSONDecoder(r io.Reader) Decoder {
	return &jsonDecoder{dec: json.NewDecoder(r)}
}

func (d *jsonDecoder) Decode() (Event, error) {
	var ev Event
	err := d.dec.Decode(&ev)
	return ev, err
}

type msgpackDecoder struct {
	dec *msgpack.Decoder
}

// NewMsgpackDecoder reads a stream of msgpack encoded events.
func NewMsgpackDecoder(r io.Reader) Decoder {
	return &msgpackDecoder{dec: msgpack.NewDecoder(r)}
}

func (d *msgpackDecoder) Decode() (Event, error) {
	var ev Event
	err := d.dec.Decode(&ev)
	return ev, err
}

// DecoderFor picks the decoder matching the extension of path. Files
// ending in .msgpack or .mp are binary, everything else is JSON.
func DecoderFor(path string, r io.Reader) Decoder {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".msgpack", ".mp":
		return NewMsgpackDecoder(r)
	default:
		return NewJSONDecoder(r)
	}
}

type jsonEncoder struct {
	enc *json.Encoder
}

// NewJSONEncoder writes one JSON object per line
func NewJSONEncoder(w io.Writer) Encoder {
	return &jsonEncoder{enc: json.NewEncoder(w)}
}

func (e *jsonEncoder) Encode(ev Event) error {
	return e.enc.Encode(ev)
}

type msgpackEncoder struct {
	enc *msgpack.Encoder
}

// NewMsgpackEncoder writes msgpack encoded events
func NewMsgpackEncoder(w io.Writer) Encoder {
	return &msgpackEncoder{enc: msgpack.NewEncoder(w)}
}

func (e *msgpackEncoder) Encode(ev Event) error {
	return e.enc.Encode(ev)
}

// EncodeAll writes all events with enc
func EncodeAll(enc Encoder, events ...Event) error {
	for _, ev := range events {
		if err := enc.Encode(ev); err != nil {
			return err
		}
	}
	return nil
}
