package slotting

// envelopeRows emits the four McCormick rows bounding w against the
// bilinear product u*v over the box [uLo, uUp] x [vLo, vUp]:
//
//	w >= uLo*v + vLo*u - uLo*vLo
//	w >= uUp*v + vUp*u - uUp*vUp
//	w <= uUp*v + vLo*u - uUp*vLo
//	w <= uLo*v + vUp*u - uLo*vUp
//
// These are the tangent planes of u*v at the box corners. They form a
// valid relaxation: w = u*v satisfies all four anywhere in the box, and
// they pin w to the exact product whenever u or v sits at a bound.
func envelopeRows(name string, w, u, v int32, uLo, uUp, vLo, vUp float64) []Constraint {
	ind := func() []int32 { return []int32{w, v, u} }
	return []Constraint{
		{
			Name: name + "_lo1", Ind: ind(),
			Val:   []float64{1, -uLo, -vLo},
			Sense: GreaterEqual, RHS: -uLo * vLo,
		},
		{
			Name: name + "_lo2", Ind: ind(),
			Val:   []float64{1, -uUp, -vUp},
			Sense: GreaterEqual, RHS: -uUp * vUp,
		},
		{
			Name: name + "_up1", Ind: ind(),
			Val:   []float64{1, -uUp, -vLo},
			Sense: LessEqual, RHS: -uUp * vLo,
		},
		{
			Name: name + "_up2", Ind: ind(),
			Val:   []float64{1, -uLo, -vUp},
			Sense: LessEqual, RHS: -uLo * vUp,
		},
	}
}
