package rng

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// GameCodeLength is the number of characters in a game code.
const GameCodeLength = 4

// ErrInvalidGameCode is returned when a game code cannot be decoded.
var ErrInvalidGameCode = errors.New("invalid game code")

// Game codes are 4 hex digits with the characters that are easy to misread
// swapped out: '0' (vs 'O'), 'B' (vs '8') and '5' (vs 'S').
var (
	hexToCode = strings.NewReplacer("0", "X", "B", "Y", "5", "W")
	codeToHex = strings.NewReplacer("X", "0", "Y", "B", "W", "5")
)

// EncodeGameCode renders a seed as a game code.
func EncodeGameCode(seed uint16) string {
	return hexToCode.Replace(fmt.Sprintf("%04X", seed))
}

// DecodeGameCode maps a game code back to its seed. Decoding ignores case
// and surrounding whitespace. Raw '0', 'B' and '5' are rejected so that the
// mapping stays one-to-one.
func DecodeGameCode(code string) (uint16, error) {
	c := strings.ToUpper(strings.TrimSpace(code))
	if len(c) != GameCodeLength {
		return 0, fmt.Errorf("%w %q: want %d characters", ErrInvalidGameCode, code, GameCodeLength)
	}
	if strings.ContainsAny(c, "0B5") {
		return 0, fmt.Errorf("%w %q: contains an ambiguous character", ErrInvalidGameCode, code)
	}

	seed, err := strconv.ParseUint(codeToHex.Replace(c), 16, 16)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrInvalidGameCode, code, err)
	}
	return uint16(seed), nil
}

// NewGameCode draws a fresh game code from r.
func NewGameCode(r *rand.Rand) string {
	return EncodeGameCode(uint16(r.IntN(1 << 16)))
}
