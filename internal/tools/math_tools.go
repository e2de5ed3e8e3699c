// In file: internal/tools/math_tools.go
package tools

import (
	"errors"
	"fmt"
	"math"
)

// RegisterMathTools adds the arithmetic tool catalog to the registry.
// Registration order is the order the tools appear in the model's catalog.
func RegisterMathTools(r *Registry) error {
	specs := []Spec{
		{
			Name:        "average",
			Description: "Calculate the average of the given numbers.",
			Args:        ArgsNumeric,
			MinArgs:     1,
			MaxArgs:     Variadic,
			Fn:          averageTool,
		},
		{
			Name:        "square_root",
			Description: "Calculate the square root of a number.",
			Args:        ArgsNumeric,
			MinArgs:     1,
			MaxArgs:     1,
			Fn:          squareRootTool,
		},
		{
			Name:        "sum",
			Description: "Calculate the sum of the given numbers.",
			Args:        ArgsNumeric,
			MinArgs:     1,
			MaxArgs:     Variadic,
			Fn:          sumTool,
		},
		{
			Name:        "product",
			Description: "Calculate the product of the given numbers.",
			Args:        ArgsNumeric,
			MinArgs:     1,
			MaxArgs:     Variadic,
			Fn:          productTool,
		},
		{
			Name:        "power",
			Description: "Calculate base raised to the power of exponent.",
			Args:        ArgsNumeric,
			MinArgs:     2,
			MaxArgs:     2,
			Fn:          powerTool,
		},
		{
			Name:        "factorial",
			Description: "Calculate the factorial of a non-negative integer.",
			Args:        ArgsNumeric,
			MinArgs:     1,
			MaxArgs:     1,
			Fn:          factorialTool,
		},
		{
			Name:        "is_prime",
			Description: "Check whether a number is prime.",
			Args:        ArgsNumeric,
			MinArgs:     1,
			MaxArgs:     1,
			Fn:          isPrimeTool,
		},
		{
			Name:        "percentage",
			Description: "Calculate what percentage 'part' is of 'whole'.",
			Args:        ArgsNumeric,
			MinArgs:     2,
			MaxArgs:     2,
			Fn:          percentageTool,
		},
	}
	for _, spec := range specs {
		if err := r.Register(spec); err != nil {
			return err
		}
	}
	return nil
}

// allInts reports whether every argument is an integer, so tools like sum
// can stay in integer arithmetic when the inputs allow it.
func allInts(args []Value) bool {
	for _, a := range args {
		if a.Kind() != KindInt {
			return false
		}
	}
	return true
}

func averageTool(args []Value) (Value, error) {
	total := 0.0
	for _, a := range args {
		total += a.Float64()
	}
	return FloatValue(total / float64(len(args))), nil
}

func squareRootTool(args []Value) (Value, error) {
	n := args[0].Float64()
	if n < 0 {
		return Value{}, fmt.Errorf("cannot calculate square root of negative number %s", args[0])
	}
	return FloatValue(math.Sqrt(n)), nil
}

func sumTool(args []Value) (Value, error) {
	if allInts(args) {
		var total int64
		for _, a := range args {
			total += a.Int64()
		}
		return IntValue(total), nil
	}
	total := 0.0
	for _, a := range args {
		total += a.Float64()
	}
	return FloatValue(total), nil
}

func productTool(args []Value) (Value, error) {
	if allInts(args) {
		var result int64 = 1
		for _, a := range args {
			result *= a.Int64()
		}
		return IntValue(result), nil
	}
	result := 1.0
	for _, a := range args {
		result *= a.Float64()
	}
	return FloatValue(result), nil
}

func powerTool(args []Value) (Value, error) {
	return FloatValue(math.Pow(args[0].Float64(), args[1].Float64())), nil
}

// maxFactorialInput is the largest n whose factorial fits in an int64.
const maxFactorialInput = 20

func factorialTool(args []Value) (Value, error) {
	n := args[0].Int64()
	if n < 0 {
		return Value{}, errors.New("factorial is not defined for negative numbers")
	}
	if n > maxFactorialInput {
		return Value{}, fmt.Errorf("factorial of %d exceeds the supported integer range (max %d)", n, maxFactorialInput)
	}
	var result int64 = 1
	for i := int64(2); i <= n; i++ {
		result *= i
	}
	return IntValue(result), nil
}

func isPrimeTool(args []Value) (Value, error) {
	n := args[0].Int64()
	if n < 2 {
		return BoolValue(false), nil
	}
	for i := int64(2); i*i <= n; i++ {
		if n%i == 0 {
			return BoolValue(false), nil
		}
	}
	return BoolValue(true), nil
}

func percentageTool(args []Value) (Value, error) {
	part, whole := args[0].Float64(), args[1].Float64()
	if whole == 0 {
		return FloatValue(0), nil
	}
	return FloatValue(part / whole * 100), nil
}
