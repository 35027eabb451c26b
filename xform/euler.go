package xform

import "math"

// RotationOrder selects the axis sequence the scene format's integer
// rotation-order property names, per spec.md §3/§4.1.
type RotationOrder int

// Recognized rotation orders. Unknown values behave as OrderXYZ (the
// default, value 0) per spec.md §4.1.
const (
	OrderXYZ RotationOrder = iota // 0: Z . Y . X
	OrderXZY                      // 1: Y . Z . X
	OrderYZX                      // 2: X . Z . Y
	OrderYXZ                      // 3: Z . X . Y
	OrderZXY                      // 4: Y . X . Z
	OrderZYX                      // 5: X . Y . Z
)

const degToRad = math.Pi / 180

// EulerToMatrix returns the product of single-axis rotation matrices
// for the angles in degrees (x, y, z) composed in the sequence order
// implies. The mapping of order to axis sequence matches spec.md
// §4.1's table; it is deliberately not the order's mnemonic letters,
// which name the Euler convention rather than the multiplication order.
func EulerToMatrix(x, y, z float64, order RotationOrder) *Matrix4 {

	var rx, ry, rz Matrix4
	rx.RotationX(x * degToRad)
	ry.RotationY(y * degToRad)
	rz.RotationZ(z * degToRad)

	switch order {
	case OrderXZY:
		return MultiplyAll(&ry, &rz, &rx)
	case OrderYZX:
		return MultiplyAll(&rx, &rz, &ry)
	case OrderYXZ:
		return MultiplyAll(&rz, &rx, &ry)
	case OrderZXY:
		return MultiplyAll(&ry, &rx, &rz)
	case OrderZYX:
		return MultiplyAll(&rx, &ry, &rz)
	case OrderXYZ:
		fallthrough
	default:
		return MultiplyAll(&rz, &ry, &rx)
	}
}

// EulerToMatrixVec is a convenience wrapper taking the angles as a Vector3.
func EulerToMatrixVec(angles *Vector3, order RotationOrder) *Matrix4 {

	return EulerToMatrix(angles.X, angles.Y, angles.Z, order)
}
