// Package guid provides a small 128-bit identifier value type: generation,
// canonical text encoding and decoding, equality and hashing.
//
// A GUID is an opaque 16 byte array. No RFC 4122 version or variant bits are
// interpreted or set; any 16 byte pattern is a valid GUID except the all-zero
// value, which is reserved to mean "no identifier" and reads as invalid.
//
// Basic Usage:
//
//	// Generate a new GUID
//	id, err := guid.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(id.String()) // 36 lowercase characters
//
//	// Lenient parsing never fails; bad input yields the invalid GUID
//	id = guid.FromString("00112233-4455-6677-8899-AABBCCDDEEFF")
//	if !id.Valid() {
//	    // malformed input
//	}
//
//	// Strict parsing reports the failure
//	id, err = guid.Parse("{00112233-4455-6677-8899-aabbccddeeff}")
//
// Custom Source:
//
//	// Any function returning 16 bytes can mint GUIDs
//	gen := guid.NewGeneratorWithReader(rand.Reader)
//	id, err = gen.New()
//
// Thread Safety:
//
// GUID is a plain value and all of its methods may be called concurrently.
// The default generator can be used from multiple goroutines without
// additional synchronization.
//
// Hashing:
//
// Hash, Hash32 and HashWord compute FNV-1a over the 16 bytes so that hash
// values agree with other implementations that use the same fold.
package guid
