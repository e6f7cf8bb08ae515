// Package quantity implements a small units-of-measure arithmetic core.
//
// This package follows Domain-Driven Design (DDD) principles:
//   - Contains only pure Go code with standard library imports (no external dependencies)
//   - Defines value objects (Quantity, Number, Unit, Dimension)
//   - Implements domain logic (conversion, dimension inference, unit-aware arithmetic)
//   - Has no knowledge of infrastructure concerns (file I/O, terminals, configuration)
//
// # Core Types
//
// Quantity is an immutable (value, unit) pair. Number is a plain dimensionless
// float. Both satisfy the sealed Operand interface over which the arithmetic
// operations dispatch.
//
// Unit is a closed enumeration backed by a static registry that maps each unit
// to its dimension, conversion descriptor, and human-readable description.
// Dimension identifies a physical quantity category (mass, length, time, ...).
//
// # Conversion
//
// Convert translates a Quantity into another unit of the same dimension. Every
// conversion routes through the dimension's base unit and the numeric result is
// rounded to 14 decimal places; the rounding is part of the contract so that
// converted values compare exactly.
//
// # Arithmetic
//
// Add, Subtract, Multiply, Divide, and Negate operate over Operand shapes.
// Adding or subtracting quantities of the same dimension converts the right
// operand into the left operand's unit (the result keeps the left unit).
// Multiplying or dividing two quantities infers the result dimension from a
// fixed relation table (area = length × length, force = mass × acceleration,
// ...) and expresses the result in the base unit of that dimension.
//
// All tables are process-wide immutable data built at package initialization;
// every operation is pure and safe for concurrent use.
package quantity
