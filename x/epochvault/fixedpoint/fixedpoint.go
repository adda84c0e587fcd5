// Package fixedpoint implements the checked fixed-point decimal arithmetic
// used for every money-shaped value in the epoch vault: USDC-scale amounts
// (scale 6) and internal ratio/product math (scale 12).
package fixedpoint

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"cosmossdk.io/math"
)

// ErrOverflow is returned by any checked operation whose result would not
// fit in the type's emulated bit width.
var ErrOverflow = errors.New("fixedpoint: numerical overflow")

// ErrInvalidDecimal is returned by Parse when the input isn't a valid
// decimal literal for the target scale.
var ErrInvalidDecimal = errors.New("fixedpoint: invalid decimal string")

const (
	// ScaleUSDC is the decimal scale of user-visible, quote-token amounts.
	ScaleUSDC = 6
	// ScaleInternal is the decimal scale used for ratios and intermediate products.
	ScaleInternal = 12
)

var (
	pow6  = big.NewInt(1_000_000)
	pow12 = new(big.Int).Exp(big.NewInt(10), big.NewInt(ScaleInternal), nil)
)

// FPUSDC is a scale-6, unsigned, 64-bit-backed fixed-point amount.
type FPUSDC struct {
	v uint64
}

// FPInternal is a scale-12, unsigned, 128-bit-backed fixed-point value.
type FPInternal struct {
	v math.Uint
}

// FPSigned is a scale-12, signed, 128-bit-backed fixed-point delta.
type FPSigned struct {
	v math.Int
}

func bitLen128Exceeded(v math.Uint) bool {
	return v.BigInt().BitLen() > 128
}

func bitLen128ExceededSigned(v math.Int) bool {
	abs := new(big.Int).Abs(v.BigInt())
	return abs.BitLen() > 128
}

// --- FPUSDC ---

// ZeroUSDC is the additive identity.
func ZeroUSDC() FPUSDC { return FPUSDC{v: 0} }

// FromUSDC is the identity conversion from a raw backing integer (micro-USDC).
func FromUSDC(raw uint64) FPUSDC { return FPUSDC{v: raw} }

// ToUSDC is the identity conversion to the raw backing integer.
func (a FPUSDC) ToUSDC() uint64 { return a.v }

// FromWholeUSDC builds an FPUSDC from a whole-number amount of USDC.
func FromWholeUSDC(whole uint64) (FPUSDC, error) {
	r, ok := checkedMulU64(whole, uint64(1_000_000))
	if !ok {
		return FPUSDC{}, ErrOverflow
	}
	return FPUSDC{v: r}, nil
}

func checkedMulU64(a, b uint64) (uint64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	r := a * b
	if r/a != b {
		return 0, false
	}
	return r, true
}

func (a FPUSDC) Add(b FPUSDC) (FPUSDC, error) {
	r := a.v + b.v
	if r < a.v {
		return FPUSDC{}, ErrOverflow
	}
	return FPUSDC{v: r}, nil
}

func (a FPUSDC) Sub(b FPUSDC) (FPUSDC, error) {
	if b.v > a.v {
		return FPUSDC{}, ErrOverflow
	}
	return FPUSDC{v: a.v - b.v}, nil
}

// Mul multiplies by a plain integer multiplier (e.g. a ticket count).
func (a FPUSDC) Mul(multiplier uint64) (FPUSDC, error) {
	r, ok := checkedMulU64(a.v, multiplier)
	if !ok {
		return FPUSDC{}, ErrOverflow
	}
	return FPUSDC{v: r}, nil
}

// Div floors a/b where b is a plain integer divisor.
func (a FPUSDC) Div(divisor uint64) (FPUSDC, error) {
	if divisor == 0 {
		return FPUSDC{}, ErrOverflow
	}
	return FPUSDC{v: a.v / divisor}, nil
}

func (a FPUSDC) IsZero() bool { return a.v == 0 }

func (a FPUSDC) LessThan(b FPUSDC) bool { return a.v < b.v }

func (a FPUSDC) GreaterThan(b FPUSDC) bool { return a.v > b.v }

func (a FPUSDC) Equal(b FPUSDC) bool { return a.v == b.v }

// Min returns the smaller of a and b.
func Min(a, b FPUSDC) FPUSDC {
	if a.v < b.v {
		return a
	}
	return b
}

// ChangePrecision rescales a USDC-scale amount up to internal scale 12.
func (a FPUSDC) ChangePrecision() FPInternal {
	bi := new(big.Int).SetUint64(a.v)
	bi.Mul(bi, pow6) // 10^6 * 10^6 = 10^12 scale
	return FPInternal{v: math.NewUintFromBigInt(bi)}
}

func (a FPUSDC) String() string {
	return displayDecimal(new(big.Int).SetUint64(a.v), ScaleUSDC, false)
}

// ParseUSDC parses a decimal literal (up to 6 fractional digits, `_` digit
// separators allowed) into an FPUSDC.
func ParseUSDC(s string) (FPUSDC, error) {
	bi, neg, err := parseDecimal(s, ScaleUSDC)
	if err != nil {
		return FPUSDC{}, err
	}
	if neg {
		return FPUSDC{}, ErrInvalidDecimal
	}
	if !bi.IsUint64() {
		return FPUSDC{}, ErrOverflow
	}
	return FPUSDC{v: bi.Uint64()}, nil
}

// MarshalJSON renders the decimal string form so FPUSDC round-trips
// through the JSON-based collections codec (see types.NewJSONValueCodec).
func (a FPUSDC) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *FPUSDC) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParseUSDC(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// --- FPInternal ---

func ZeroInternal() FPInternal { return FPInternal{v: math.ZeroUint()} }

// Unity is the scale-12 representation of 1.0 — the starting cumulative
// return rate.
func Unity() FPInternal { return FPInternal{v: math.NewUintFromBigInt(new(big.Int).Set(pow12))} }

func (a FPInternal) IsZero() bool { return a.v.IsZero() }

func (a FPInternal) Add(b FPInternal) (FPInternal, error) {
	r := a.v.Add(b.v)
	if bitLen128Exceeded(r) {
		return FPInternal{}, ErrOverflow
	}
	return FPInternal{v: r}, nil
}

func (a FPInternal) Sub(b FPInternal) (FPInternal, error) {
	if b.v.GT(a.v) {
		return FPInternal{}, ErrOverflow
	}
	return FPInternal{v: a.v.Sub(b.v)}, nil
}

// Mul multiplies two scale-12 values using a wide intermediate product and
// rescales back down to scale 12, flooring.
func (a FPInternal) Mul(b FPInternal) (FPInternal, error) {
	wide := new(big.Int).Mul(a.v.BigInt(), b.v.BigInt())
	wide.Quo(wide, pow12)
	r := math.NewUintFromBigInt(wide)
	if bitLen128Exceeded(r) {
		return FPInternal{}, ErrOverflow
	}
	return FPInternal{v: r}, nil
}

// Div floors a/b at scale 12.
func (a FPInternal) Div(b FPInternal) (FPInternal, error) {
	if b.v.IsZero() {
		return FPInternal{}, ErrOverflow
	}
	wide := new(big.Int).Mul(a.v.BigInt(), pow12)
	wide.Quo(wide, b.v.BigInt())
	r := math.NewUintFromBigInt(wide)
	if bitLen128Exceeded(r) {
		return FPInternal{}, ErrOverflow
	}
	return FPInternal{v: r}, nil
}

func (a FPInternal) LessThan(b FPInternal) bool { return a.v.LT(b.v) }

func (a FPInternal) GreaterThan(b FPInternal) bool { return a.v.GT(b.v) }

func (a FPInternal) GreaterThanOrEqual(b FPInternal) bool { return a.v.GTE(b.v) }

func (a FPInternal) Equal(b FPInternal) bool { return a.v.Equal(b.v) }

// ChangePrecision rescales an internal-scale value down to USDC scale,
// flooring, and fails if the whole part exceeds 64 bits.
func (a FPInternal) ChangePrecision() (FPUSDC, error) {
	bi := new(big.Int).Quo(a.v.BigInt(), pow6)
	if !bi.IsUint64() {
		return FPUSDC{}, ErrOverflow
	}
	return FPUSDC{v: bi.Uint64()}, nil
}

// FromFixedPointU64 builds an FPInternal from an integer numerator over
// 10^denomScale, e.g. FromFixedPointU64(1_1, 1) == 1.1.
func FromFixedPointU64(numerator uint64, denomScale uint) FPInternal {
	bi := new(big.Int).SetUint64(numerator)
	scaleDiff := ScaleInternal - int(denomScale)
	if scaleDiff >= 0 {
		bi.Mul(bi, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(scaleDiff)), nil))
	} else {
		bi.Quo(bi, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-scaleDiff)), nil))
	}
	return FPInternal{v: math.NewUintFromBigInt(bi)}
}

// FromWholeNumber builds an FPInternal representing an integer whole amount.
func FromWholeNumber(whole uint64) FPInternal {
	bi := new(big.Int).SetUint64(whole)
	bi.Mul(bi, pow12)
	return FPInternal{v: math.NewUintFromBigInt(bi)}
}

func (a FPInternal) String() string {
	return displayDecimal(a.v.BigInt(), ScaleInternal, false)
}

// ParseInternal parses a decimal literal at scale 12.
func ParseInternal(s string) (FPInternal, error) {
	bi, neg, err := parseDecimal(s, ScaleInternal)
	if err != nil {
		return FPInternal{}, err
	}
	if neg {
		return FPInternal{}, ErrInvalidDecimal
	}
	r := math.NewUintFromBigInt(bi)
	if bitLen128Exceeded(r) {
		return FPInternal{}, ErrOverflow
	}
	return FPInternal{v: r}, nil
}

func (a FPInternal) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *FPInternal) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParseInternal(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// --- FPSigned ---

func ZeroSigned() FPSigned { return FPSigned{v: math.ZeroInt()} }

func SignedFromInternal(a FPInternal) FPSigned {
	return FPSigned{v: math.NewIntFromBigInt(a.v.BigInt())}
}

func (a FPSigned) IsNegative() bool { return a.v.IsNegative() }

func (a FPSigned) IsPositive() bool { return a.v.IsPositive() }

func (a FPSigned) IsZero() bool { return a.v.IsZero() }

func (a FPSigned) Equal(b FPSigned) bool { return a.v.Equal(b.v) }

// Abs returns the unsigned scale-12 magnitude, e.g. to size a vault
// transfer off the sign-carrying delta a stake update request holds.
func (a FPSigned) Abs() FPInternal {
	bi := new(big.Int).Abs(a.v.BigInt())
	return FPInternal{v: math.NewUintFromBigInt(bi)}
}

func (a FPSigned) Add(b FPSigned) (FPSigned, error) {
	r := a.v.Add(b.v)
	if bitLen128ExceededSigned(r) {
		return FPSigned{}, ErrOverflow
	}
	return FPSigned{v: r}, nil
}

func (a FPSigned) Sub(b FPSigned) (FPSigned, error) {
	r := a.v.Sub(b.v)
	if bitLen128ExceededSigned(r) {
		return FPSigned{}, ErrOverflow
	}
	return FPSigned{v: r}, nil
}

func (a FPSigned) String() string {
	return displayDecimal(a.v.BigInt(), ScaleInternal, true)
}

// ParseSigned parses a decimal literal at scale 12, allowing a leading `-`.
func ParseSigned(s string) (FPSigned, error) {
	bi, neg, err := parseDecimal(s, ScaleInternal)
	if err != nil {
		return FPSigned{}, err
	}
	if neg {
		bi.Neg(bi)
	}
	r := math.NewIntFromBigInt(bi)
	if bitLen128ExceededSigned(r) {
		return FPSigned{}, ErrOverflow
	}
	return FPSigned{v: r}, nil
}

func (a FPSigned) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *FPSigned) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParseSigned(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// --- shared parse/display helpers ---

func parseDecimal(s string, scale int) (*big.Int, bool, error) {
	s = strings.ReplaceAll(s, "_", "")
	if s == "" {
		return nil, false, ErrInvalidDecimal
	}
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" && (!hasFrac || frac == "") {
		return nil, false, ErrInvalidDecimal
	}
	if len(frac) > scale {
		return nil, false, fmt.Errorf("%w: more than %d fractional digits", ErrInvalidDecimal, scale)
	}
	for _, r := range whole + frac {
		if r < '0' || r > '9' {
			return nil, false, ErrInvalidDecimal
		}
	}
	frac = frac + strings.Repeat("0", scale-len(frac))
	digits := whole + frac
	if digits == "" {
		digits = "0"
	}
	bi, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, false, ErrInvalidDecimal
	}
	return bi, neg, nil
}

func displayDecimal(v *big.Int, scale int, signed bool) string {
	neg := v.Sign() < 0
	abs := new(big.Int).Abs(v)
	digits := abs.String()
	for len(digits) <= scale {
		digits = "0" + digits
	}
	whole := digits[:len(digits)-scale]
	frac := digits[len(digits)-scale:]
	frac = strings.TrimRight(frac, "0")
	out := whole
	if frac != "" {
		out += "." + frac
	}
	if neg && signed {
		out = "-" + out
	}
	return out
}
