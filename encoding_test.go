package guid

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

var allOnes = GUID{
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
}

// textForms pairs each alternate text form with its inverse and the fixed
// length every encoding of 16 bytes has.
var textForms = []struct {
	name   string
	length int
	encode func(GUID) string
	decode func(string) (GUID, error)
}{
	{"hex", 32, GUID.EncodeToHex, DecodeFromHex},
	{"base64", 22, GUID.EncodeToBase64, DecodeFromBase64},
	{"base64std", 24, GUID.EncodeToBase64Std, DecodeFromBase64Std},
}

func TestTextForms_KnownValues(t *testing.T) {
	want := map[string]map[GUID]string{
		"hex": {
			Nil:     "00000000000000000000000000000000",
			allOnes: "ffffffffffffffffffffffffffffffff",
			sample:  "f47ac10b58cc4372a5670e02b2c3d479",
		},
		"base64": {
			Nil:     "AAAAAAAAAAAAAAAAAAAAAA",
			allOnes: "_____________________w",
			sample:  "9HrBC1jMQ3KlZw4CssPUeQ",
		},
		"base64std": {
			Nil:     "AAAAAAAAAAAAAAAAAAAAAA==",
			allOnes: "/////////////////////w==",
			sample:  "9HrBC1jMQ3KlZw4CssPUeQ==",
		},
	}

	for _, f := range textForms {
		for id, s := range want[f.name] {
			if got := f.encode(id); got != s {
				t.Errorf("%s encode(%v) = %q, want %q", f.name, id, got, s)
			}
		}
	}
}

func TestTextForms_RoundTrip(t *testing.T) {
	ids := []GUID{Nil, allOnes, sample, Must(New())}

	for _, f := range textForms {
		t.Run(f.name, func(t *testing.T) {
			for _, id := range ids {
				s := f.encode(id)
				if len(s) != f.length {
					t.Errorf("encode(%v) has length %d, want %d", id, len(s), f.length)
				}
				got, err := f.decode(s)
				if err != nil {
					t.Fatalf("decode(%q) error = %v", s, err)
				}
				if got != id {
					t.Errorf("decode(encode(%v)) = %v", id, got)
				}
			}
		})
	}
}

// Nil decodes without error; validity is a separate question.
func TestTextForms_NilDecodesCleanly(t *testing.T) {
	for _, f := range textForms {
		got, err := f.decode(f.encode(Nil))
		if err != nil || got.Valid() {
			t.Errorf("%s: decode of Nil = (%v, %v), want (Nil, <nil>)", f.name, got, err)
		}
	}
}

func TestTextForms_Invalid(t *testing.T) {
	for _, f := range textForms {
		good := f.encode(sample)
		inputs := map[string]string{
			"empty":         "",
			"one short":     good[:len(good)-1],
			"one long":      good + "A",
			"canonical":     sample.String(),
			"bad character": "!" + good[1:],
		}
		for name, in := range inputs {
			t.Run(f.name+"/"+name, func(t *testing.T) {
				got, err := f.decode(in)
				if !errors.Is(err, ErrInvalidFormat) {
					t.Errorf("decode(%q) error = %v, want %v", in, err, ErrInvalidFormat)
				}
				if got != Nil {
					t.Errorf("decode(%q) = %v on error, want Nil", in, got)
				}
			})
		}
	}
}

func TestDecodeFromHex_UpperCase(t *testing.T) {
	got, err := DecodeFromHex(strings.ToUpper(sample.EncodeToHex()))
	if err != nil {
		t.Fatalf("DecodeFromHex() error = %v", err)
	}
	if got != sample {
		t.Errorf("DecodeFromHex() = %v, want %v", got, sample)
	}
}

// 24 unpadded characters decode to 18 bytes
func TestDecodeFromBase64Std_PaddingMismatch(t *testing.T) {
	noPad := strings.TrimRight(sample.EncodeToBase64Std(), "=") + "AA"
	if _, err := DecodeFromBase64Std(noPad); err == nil {
		t.Errorf("DecodeFromBase64Std(%q) succeeded, want error", noPad)
	}
}

func TestFromBytes(t *testing.T) {
	raw := sample.Bytes()
	tests := []struct {
		name  string
		input []byte
	}{
		{"exact", raw},
		{"trailing bytes ignored", append(append([]byte{}, raw...), 0xde, 0xad, 0xbe, 0xef)},
		{"twice over", bytes.Repeat(raw, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromBytes(tt.input)
			if err != nil {
				t.Fatalf("FromBytes() error = %v", err)
			}
			if got != sample {
				t.Errorf("FromBytes() = %v, want %v", got, sample)
			}

			// the result does not alias the input
			tt.input[0] ^= 0xff
			defer func() { tt.input[0] ^= 0xff }()
			if got != sample {
				t.Errorf("FromBytes() result changed with its input: %v", got)
			}
		})
	}
}

func TestFromBytes_Boundaries(t *testing.T) {
	got, err := FromBytes(allOnes[:])
	if err != nil || got != allOnes {
		t.Errorf("FromBytes(0xff x16) = (%v, %v), want (%v, <nil>)", got, err, allOnes)
	}

	got, err = FromBytes(make([]byte, 16))
	if err != nil {
		t.Fatalf("FromBytes(zeros) error = %v", err)
	}
	if got.Valid() {
		t.Errorf("FromBytes(zeros) = %v, want Nil", got)
	}
}

func TestFromBytes_Short(t *testing.T) {
	for _, n := range []int{0, 1, 8, 15} {
		in := bytes.Repeat([]byte{0xab}, n)
		got, err := FromBytes(in)
		if !errors.Is(err, ErrInvalidLength) {
			t.Errorf("FromBytes(%d bytes) error = %v, want %v", n, err, ErrInvalidLength)
		}
		if got != Nil {
			t.Errorf("FromBytes(%d bytes) = %v on error, want Nil", n, got)
		}
	}

	if _, err := FromBytes(nil); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("FromBytes(nil) error = %v, want %v", err, ErrInvalidLength)
	}
}

func TestMustFromBytes(t *testing.T) {
	if got := MustFromBytes(sample[:]); got != sample {
		t.Errorf("MustFromBytes() = %v, want %v", got, sample)
	}

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrInvalidLength) {
			t.Errorf("MustFromBytes(short) panicked with %v, want %v", r, ErrInvalidLength)
		}
	}()
	MustFromBytes(sample[:15])
}
