// Package conv provides safe integer conversions.
//
// Slot counts and payload lengths arrive as int and are multiplied into
// byte sizes for a raw memory region. These helpers make the overflow
// checks explicit instead of relying on silent wraparound.
package conv
