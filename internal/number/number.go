// Package number implements the arbitrary-precision complex arithmetic that
// backs every MicroScheme NUMBER node. The real and imaginary components are
// each carried in a math/big.Float so that integer and decimal literals of
// unbounded magnitude survive round-tripping through display/read. Add, Sub,
// Mul, Div, Floor, Ceiling, Round, Truncate, Modulo, Remainder and
// integer-exponent Pow all stay on big.Float/big.Int throughout and never
// lose precision to a float64 round trip. Only the transcendental functions
// (Log, Sin/Cos/Tan and friends) and a fractional or complex Pow fall back to
// float64 precision, since neither the standard library nor the surrounding
// ecosystem exposes an arbitrary precision complex transcendental engine.
package number

import (
	"fmt"
	"math"
	"math/big"
	"math/cmplx"
	"strconv"
	"strings"
)

const precision = 236 // bits; comfortably beyond float64's 53

// Number is an arbitrary-precision complex value: re + im*i.
type Number struct {
	re *big.Float
	im *big.Float
}

func newFloat(v float64) *big.Float {
	return new(big.Float).SetPrec(precision).SetFloat64(v)
}

// FromInt64 builds an integer-valued real Number.
func FromInt64(n int64) *Number {
	return &Number{re: new(big.Float).SetPrec(precision).SetInt64(n), im: newFloat(0)}
}

// FromFloat64 builds a real Number from a float64.
func FromFloat64(f float64) *Number {
	return &Number{re: newFloat(f), im: newFloat(0)}
}

// FromBigFloat builds a real Number from an existing big.Float, taking ownership.
func FromBigFloat(re *big.Float) *Number {
	return &Number{re: re, im: newFloat(0)}
}

// FromComplex builds a Number from real and imaginary big.Float components.
func FromComplex(re, im *big.Float) *Number {
	return &Number{re: re, im: im}
}

// Parse reads a MicroScheme number literal: a signed decimal with an optional
// fractional part. It never produces an imaginary component (the surface
// grammar has no literal syntax for one).
func Parse(text string) (*Number, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, false
	}
	f, _, err := big.ParseFloat(text, 10, precision, big.ToNearestEven)
	if err != nil {
		return nil, false
	}
	// big.ParseFloat is more permissive than Scheme numeric syntax (it accepts
	// hex floats and infinities); reject anything strconv wouldn't also parse
	// as a base-10 int or float so odd tokens fall through to being symbols.
	if _, err := strconv.ParseFloat(text, 64); err != nil {
		if _, ok := new(big.Int).SetString(text, 10); !ok {
			return nil, false
		}
	}
	if f.IsInf() {
		return nil, false
	}
	return &Number{re: f, im: newFloat(0)}, true
}

// IsReal reports whether the imaginary component is exactly zero.
func (n *Number) IsReal() bool {
	return n.im.Sign() == 0
}

// IsZero reports whether the whole number is exactly zero.
func (n *Number) IsZero() bool {
	return n.re.Sign() == 0 && n.im.Sign() == 0
}

// IsInteger reports whether this is a real number with no fractional part.
func (n *Number) IsInteger() bool {
	return n.IsReal() && n.re.IsInt()
}

// Real returns the real component as a Number.
func (n *Number) Real() *Number { return &Number{re: n.re, im: newFloat(0)} }

// Imag returns the imaginary component as a Number carried in the real slot.
func (n *Number) Imag() *Number { return &Number{re: n.im, im: newFloat(0)} }

// Float64 returns the real component as a float64, discarding any imaginary part.
func (n *Number) Float64() float64 {
	f, _ := n.re.Float64()
	return f
}

// Int64 returns the real component truncated to an int64.
func (n *Number) Int64() int64 {
	i, _ := n.re.Int64()
	return i
}

func (n *Number) complex128() complex128 {
	re, _ := n.re.Float64()
	im, _ := n.im.Float64()
	return complex(re, im)
}

func fromComplex128(c complex128) *Number {
	return &Number{re: newFloat(real(c)), im: newFloat(imag(c))}
}

// Add returns n + o.
func (n *Number) Add(o *Number) *Number {
	return &Number{
		re: new(big.Float).SetPrec(precision).Add(n.re, o.re),
		im: new(big.Float).SetPrec(precision).Add(n.im, o.im),
	}
}

// Sub returns n - o.
func (n *Number) Sub(o *Number) *Number {
	return &Number{
		re: new(big.Float).SetPrec(precision).Sub(n.re, o.re),
		im: new(big.Float).SetPrec(precision).Sub(n.im, o.im),
	}
}

// Mul returns n * o using the standard complex product.
func (n *Number) Mul(o *Number) *Number {
	// (a+bi)(c+di) = (ac-bd) + (ad+bc)i
	ac := new(big.Float).SetPrec(precision).Mul(n.re, o.re)
	bd := new(big.Float).SetPrec(precision).Mul(n.im, o.im)
	ad := new(big.Float).SetPrec(precision).Mul(n.re, o.im)
	bc := new(big.Float).SetPrec(precision).Mul(n.im, o.re)
	return &Number{
		re: new(big.Float).SetPrec(precision).Sub(ac, bd),
		im: new(big.Float).SetPrec(precision).Add(ad, bc),
	}
}

// Div returns n / o. Reports an error for exact zero divisors.
func (n *Number) Div(o *Number) (*Number, error) {
	if o.IsZero() {
		return nil, fmt.Errorf("division by zero")
	}
	if n.IsReal() && o.IsReal() {
		return &Number{re: new(big.Float).SetPrec(precision).Quo(n.re, o.re), im: newFloat(0)}, nil
	}
	// (a+bi)/(c+di) = ((ac+bd) + (bc-ad)i) / (c²+d²)
	mul := func(x, y *big.Float) *big.Float { return new(big.Float).SetPrec(precision).Mul(x, y) }
	denom := new(big.Float).SetPrec(precision).Add(mul(o.re, o.re), mul(o.im, o.im))
	re := new(big.Float).SetPrec(precision).Add(mul(n.re, o.re), mul(n.im, o.im))
	im := new(big.Float).SetPrec(precision).Sub(mul(n.im, o.re), mul(n.re, o.im))
	return &Number{re: re.Quo(re, denom), im: im.Quo(im, denom)}, nil
}

// Neg returns -n.
func (n *Number) Neg() *Number {
	return &Number{
		re: new(big.Float).SetPrec(precision).Neg(n.re),
		im: new(big.Float).SetPrec(precision).Neg(n.im),
	}
}

// Cmp orders two real numbers; callers must check IsReal first.
func (n *Number) Cmp(o *Number) int {
	return n.re.Cmp(o.re)
}

// Equal reports exact equality of both components.
func (n *Number) Equal(o *Number) bool {
	return n.re.Cmp(o.re) == 0 && n.im.Cmp(o.im) == 0
}

// Pow returns n**o. An integer exponent on a real base is computed exactly
// via repeated squaring on the big.Float components; anything else (a
// fractional or complex exponent) falls back to float64, for the same
// reason the transcendental functions below do.
func (n *Number) Pow(o *Number) *Number {
	if n.IsReal() && o.IsReal() && o.re.IsInt() {
		if exp, acc := o.re.Int64(); acc == big.Exact {
			return &Number{re: bigPowInt(n.re, exp), im: newFloat(0)}
		}
	}
	if n.IsReal() && o.IsReal() {
		base, _ := n.re.Float64()
		exp, _ := o.re.Float64()
		return FromFloat64(math.Pow(base, exp))
	}
	return fromComplex128(cmplx.Pow(n.complex128(), o.complex128()))
}

// bigPowInt raises base to an integer power exactly, by repeated squaring
// over big.Float, handling negative exponents via a final reciprocal.
func bigPowInt(base *big.Float, exp int64) *big.Float {
	neg := exp < 0
	if neg {
		exp = -exp
	}
	result := new(big.Float).SetPrec(precision).SetInt64(1)
	b := new(big.Float).SetPrec(precision).Set(base)
	for exp > 0 {
		if exp&1 == 1 {
			result = new(big.Float).SetPrec(precision).Mul(result, b)
		}
		b = new(big.Float).SetPrec(precision).Mul(b, b)
		exp >>= 1
	}
	if neg {
		one := new(big.Float).SetPrec(precision).SetInt64(1)
		result = new(big.Float).SetPrec(precision).Quo(one, result)
	}
	return result
}

// Log returns the natural logarithm of n.
func (n *Number) Log() *Number {
	if n.IsReal() && n.re.Sign() > 0 {
		v, _ := n.re.Float64()
		return FromFloat64(math.Log(v))
	}
	return fromComplex128(cmplx.Log(n.complex128()))
}

// Floor, Ceiling, Round and Truncate all require a real argument, enforced by
// the caller (a DomainError if not). Each works directly on the big.Float
// component so magnitudes beyond float64's range round correctly.

func truncBigFloat(f *big.Float) *big.Float {
	i, _ := f.Int(nil)
	return new(big.Float).SetPrec(precision).SetInt(i)
}

func floorBigFloat(f *big.Float) *big.Float {
	if f.IsInt() {
		return new(big.Float).SetPrec(precision).Set(f)
	}
	i, _ := f.Int(nil)
	if f.Sign() < 0 {
		i.Sub(i, big.NewInt(1))
	}
	return new(big.Float).SetPrec(precision).SetInt(i)
}

func ceilBigFloat(f *big.Float) *big.Float {
	if f.IsInt() {
		return new(big.Float).SetPrec(precision).Set(f)
	}
	i, _ := f.Int(nil)
	if f.Sign() > 0 {
		i.Add(i, big.NewInt(1))
	}
	return new(big.Float).SetPrec(precision).SetInt(i)
}

func (n *Number) Floor() *Number   { return &Number{re: floorBigFloat(n.re), im: newFloat(0)} }
func (n *Number) Ceiling() *Number { return &Number{re: ceilBigFloat(n.re), im: newFloat(0)} }
func (n *Number) Truncate() *Number {
	return &Number{re: truncBigFloat(n.re), im: newFloat(0)}
}

// Round rounds to the nearest integer, ties to even, entirely in big.Float.
func (n *Number) Round() *Number {
	if n.re.IsInt() {
		return &Number{re: new(big.Float).SetPrec(precision).Set(n.re), im: newFloat(0)}
	}
	i, _ := n.re.Int(nil)
	iFloat := new(big.Float).SetPrec(precision).SetInt(i)
	frac := new(big.Float).SetPrec(precision).Sub(n.re, iFloat)
	absFrac := new(big.Float).SetPrec(precision).Abs(frac)
	half := new(big.Float).SetPrec(precision).SetFloat64(0.5)
	switch absFrac.Cmp(half) {
	case 1:
		i = bumpAwayFromZero(i, n.re.Sign())
	case 0:
		if isOddMagnitude(i) {
			i = bumpAwayFromZero(i, n.re.Sign())
		}
	}
	return &Number{re: new(big.Float).SetPrec(precision).SetInt(i), im: newFloat(0)}
}

func bumpAwayFromZero(i *big.Int, sign int) *big.Int {
	j := new(big.Int).Set(i)
	if sign < 0 {
		return j.Sub(j, big.NewInt(1))
	}
	return j.Add(j, big.NewInt(1))
}

func isOddMagnitude(i *big.Int) bool {
	return new(big.Int).Abs(i).Bit(0) == 1
}

// Modulo returns a value with the divisor's sign, per canonical Scheme,
// computed as a - b*floor(a/b) directly over big.Float.
func (n *Number) Modulo(o *Number) (*Number, error) {
	if o.re.Sign() == 0 {
		return nil, fmt.Errorf("division by zero")
	}
	q := new(big.Float).SetPrec(precision).Quo(n.re, o.re)
	fq := floorBigFloat(q)
	prod := new(big.Float).SetPrec(precision).Mul(fq, o.re)
	r := new(big.Float).SetPrec(precision).Sub(n.re, prod)
	return &Number{re: r, im: newFloat(0)}, nil
}

// Remainder returns a value with the dividend's sign, per canonical Scheme,
// computed as a - b*truncate(a/b) directly over big.Float.
func (n *Number) Remainder(o *Number) (*Number, error) {
	if o.re.Sign() == 0 {
		return nil, fmt.Errorf("division by zero")
	}
	q := new(big.Float).SetPrec(precision).Quo(n.re, o.re)
	tq := truncBigFloat(q)
	prod := new(big.Float).SetPrec(precision).Mul(tq, o.re)
	r := new(big.Float).SetPrec(precision).Sub(n.re, prod)
	return &Number{re: r, im: newFloat(0)}, nil
}

// Trig functions: complex-capable where math/cmplx supports it.

func (n *Number) Sin() *Number { return fromComplex128(cmplx.Sin(n.complex128())) }
func (n *Number) Cos() *Number { return fromComplex128(cmplx.Cos(n.complex128())) }
func (n *Number) Tan() *Number { return fromComplex128(cmplx.Tan(n.complex128())) }
func (n *Number) Asin() *Number { return fromComplex128(cmplx.Asin(n.complex128())) }
func (n *Number) Acos() *Number { return fromComplex128(cmplx.Acos(n.complex128())) }
func (n *Number) Atan() *Number { return fromComplex128(cmplx.Atan(n.complex128())) }

// Sinh, Cosh and Tanh accept complex input via math/cmplx.
func (n *Number) Sinh() *Number { return fromComplex128(cmplx.Sinh(n.complex128())) }
func (n *Number) Cosh() *Number { return fromComplex128(cmplx.Cosh(n.complex128())) }
func (n *Number) Tanh() *Number { return fromComplex128(cmplx.Tanh(n.complex128())) }

// Asinh, Acosh and Atanh require real input (enforced by the caller).
func (n *Number) Asinh() *Number { return FromFloat64(math.Asinh(n.Float64())) }
func (n *Number) Acosh() *Number { return FromFloat64(math.Acosh(n.Float64())) }
func (n *Number) Atanh() *Number { return FromFloat64(math.Atanh(n.Float64())) }

// String renders the number per the interpreter's printed-form rules: the
// real component alone when the imaginary part is exactly zero, otherwise
// "a+bi"/"a-bi", with trailing fractional zeros trimmed in both cases.
func (n *Number) String() string {
	if n.IsReal() {
		return formatComponent(n.re)
	}
	sign := "+"
	im := n.im
	if im.Sign() < 0 {
		sign = "-"
		im = new(big.Float).SetPrec(precision).Neg(im)
	}
	return formatComponent(n.re) + sign + formatComponent(im) + "i"
}

// RadixString formats the real part's integer value in the given base, for
// the ~x/~o/~b printf directives.
func (n *Number) RadixString(base int) string {
	i, _ := n.re.Int(nil)
	return i.Text(base)
}

func formatComponent(f *big.Float) string {
	if f.IsInt() {
		i, _ := f.Int(nil)
		return i.String()
	}
	s := f.Text('f', -1)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}
