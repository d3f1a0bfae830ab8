package interp

import (
	"math/rand"
	"time"
)

// rng backs random, random-integer and random-double. It defaults to a
// time-seeded source so successive runs differ, and can be reseeded
// deterministically via random-set-seed! for reproducible scripts.
var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

func registerRandom(p map[string]Primitive) {
	p["random"] = func(args []Value) (Value, error) {
		if err := checkArity("random", args, 1); err != nil {
			return Value{}, err
		}
		n, err := wantReal("random", 1, args[0])
		if err != nil {
			return Value{}, err
		}
		bound := n.Int64()
		if bound <= 0 {
			return Value{}, &DomainError{Callee: "random", Message: "bound must be positive"}
		}
		return numberValue(intNum(int(rng.Int63n(bound)))), nil
	}
	p["random-integer"] = func(args []Value) (Value, error) {
		if err := checkArity("random-integer", args, 2); err != nil {
			return Value{}, err
		}
		lo, err := wantReal("random-integer", 1, args[0])
		if err != nil {
			return Value{}, err
		}
		hi, err := wantReal("random-integer", 2, args[1])
		if err != nil {
			return Value{}, err
		}
		loI, hiI := lo.Int64(), hi.Int64()
		if hiI < loI {
			return Value{}, &DomainError{Callee: "random-integer", Message: "upper bound must be >= lower bound"}
		}
		return numberValue(intNum(int(loI + rng.Int63n(hiI-loI+1)))), nil
	}
	p["random-double"] = func(args []Value) (Value, error) {
		if err := checkArity("random-double", args, 0); err != nil {
			return Value{}, err
		}
		return numberValue(numberFromFloat(rng.Float64())), nil
	}
	p["random-set-seed!"] = func(args []Value) (Value, error) {
		if err := checkArity("random-set-seed!", args, 1); err != nil {
			return Value{}, err
		}
		seed, err := wantReal("random-set-seed!", 1, args[0])
		if err != nil {
			return Value{}, err
		}
		rng = rand.New(rand.NewSource(seed.Int64()))
		return Unspecified, nil
	}
}
