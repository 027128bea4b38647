// Package bson registers guid.GUID with the MongoDB BSON codec registry.
//
// GUIDs are encoded as their canonical string. Decoding accepts that string
// form as well as 16 byte binary values of the generic or UUID subtype.
package bson

import (
	"fmt"
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
	"go.mongodb.org/mongo-driver/bson/bsontype"

	"github.com/Lzww0608/guid"
)

var guidType = reflect.TypeOf(guid.Nil)

// NewRegistry returns the default BSON registry with the GUID codecs added.
func NewRegistry() *bsoncodec.Registry {
	reg := bson.NewRegistry()
	Register(reg)
	return reg
}

// Register installs the GUID encoder and decoder into reg.
func Register(reg *bsoncodec.Registry) {
	reg.RegisterTypeEncoder(guidType, bsoncodec.ValueEncoderFunc(encodeValue))
	reg.RegisterTypeDecoder(guidType, bsoncodec.ValueDecoderFunc(decodeValue))
}

func encodeValue(_ bsoncodec.EncodeContext, vw bsonrw.ValueWriter, val reflect.Value) error {
	if !val.IsValid() || val.Type() != guidType {
		return bsoncodec.ValueEncoderError{
			Name:     "GUIDEncodeValue",
			Types:    []reflect.Type{guidType},
			Received: val,
		}
	}
	id := val.Interface().(guid.GUID)
	return vw.WriteString(id.String())
}

func decodeValue(_ bsoncodec.DecodeContext, vr bsonrw.ValueReader, val reflect.Value) error {
	if !val.IsValid() || !val.CanSet() || val.Type() != guidType {
		return bsoncodec.ValueDecoderError{
			Name:     "GUIDDecodeValue",
			Types:    []reflect.Type{guidType},
			Received: val,
		}
	}

	var id guid.GUID
	switch vr.Type() {
	case bsontype.String:
		s, err := vr.ReadString()
		if err != nil {
			return err
		}
		if id, err = guid.Parse(s); err != nil {
			return fmt.Errorf("could not parse GUID string %q: %w", s, err)
		}
	case bsontype.Binary:
		data, subtype, err := vr.ReadBinary()
		if err != nil {
			return err
		}
		if subtype != bsontype.BinaryGeneric && subtype != bsontype.BinaryUUID {
			return fmt.Errorf("received invalid binary subtype to decode into GUID: %#x", subtype)
		}
		if len(data) != len(id) {
			return fmt.Errorf("could not decode GUID bytes (%x): %w", data, guid.ErrInvalidLength)
		}
		copy(id[:], data)
	case bsontype.Null:
		if err := vr.ReadNull(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("received invalid BSON type to decode into GUID: %s", vr.Type())
	}

	val.Set(reflect.ValueOf(id))
	return nil
}
