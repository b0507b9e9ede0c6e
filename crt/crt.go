package crt

// LinearProbing - Collision resolution technique probing slot after slot from the home slot
const LinearProbing int = 1

// QuadraticProbing - Collision resolution technique probing by triangular numbers from the home slot
const QuadraticProbing int = 2

// Name - Returns a human readable name of a collision resolution technique
func Name(technique int) string {
	switch technique {
	case LinearProbing:
		return "linear"
	case QuadraticProbing:
		return "quadratic"
	default:
		return "unknown"
	}
}

// FromName - Returns the collision resolution technique given its name as returned by Name.
// The second return value is false if the name is not recognized.
func FromName(name string) (technique int, ok bool) {
	switch name {
	case "linear":
		return LinearProbing, true
	case "quadratic":
		return QuadraticProbing, true
	default:
		return 0, false
	}
}

// MaxCapacity - Highest capacity a table can be created with, also the highest number of slots a hash algorithm may ask for
const MaxCapacity int64 = 1 << 32
