package series

// Planetary holds the 14 planetary-perturbation terms shared by every phase.
var Planetary = []PlanetaryTerm{
	{Coef: 0.000325, A0: 299.77, A1: 0.107408, A2: -0.009173},
	{Coef: 0.000165, A0: 251.88, A1: 0.016321},
	{Coef: 0.000164, A0: 251.83, A1: 26.651886},
	{Coef: 0.000126, A0: 349.42, A1: 36.412478},
	{Coef: 0.000110, A0: 84.66, A1: 18.206239},
	{Coef: 0.000062, A0: 141.74, A1: 53.303771},
	{Coef: 0.000060, A0: 207.14, A1: 2.453732},
	{Coef: 0.000056, A0: 154.14, A1: 7.306860},
	{Coef: 0.000047, A0: 34.52, A1: 27.261239},
	{Coef: 0.000042, A0: 207.19, A1: 0.121824},
	{Coef: 0.000040, A0: 291.34, A1: 1.844379},
	{Coef: 0.000037, A0: 161.72, A1: 24.198154},
	{Coef: 0.000035, A0: 239.56, A1: 25.513099},
	{Coef: 0.000023, A0: 331.55, A1: 3.592518},
}

// NewMoon holds the new moon corrections.
var NewMoon = []Term{
	{Coef: -0.40720, MP: 1},
	{Coef: 0.17241, EPow: 1, M: 1},
	{Coef: 0.01608, MP: 2},
	{Coef: 0.01039, F: 2},
	{Coef: 0.00739, EPow: 1, MP: 1, M: -1},
	{Coef: -0.00514, EPow: 1, MP: 1, M: 1},
	{Coef: 0.00208, EPow: 2, M: 2},
	{Coef: -0.00111, MP: 1, F: -2},
	{Coef: -0.00057, MP: 1, F: 2},
	{Coef: 0.00056, EPow: 1, MP: 2, M: 1},
	{Coef: -0.00042, MP: 3},
	{Coef: 0.00042, EPow: 1, M: 1, F: 2},
	{Coef: 0.00038, EPow: 1, M: 1, F: -2},
	{Coef: -0.00024, EPow: 1, MP: 2, M: -1},
	{Coef: -0.00017, Ohm: 1},
	{Coef: -0.00007, MP: 1, M: 2},
	{Coef: 0.00004, MP: 2, F: -2},
	{Coef: 0.00004, M: 3},
	{Coef: 0.00003, MP: 1, M: 1, F: -2},
	{Coef: 0.00003, MP: 2, F: 2},
	{Coef: -0.00003, MP: 1, M: 1, F: 2},
	{Coef: 0.00003, MP: 1, M: -1, F: 2},
	{Coef: -0.00002, MP: 1, M: -1, F: -2},
	{Coef: -0.00002, MP: 3, M: 1},
	{Coef: 0.00002, MP: 4},
}

// FullMoon holds the full moon corrections. The structure mirrors NewMoon
// but the leading coefficients differ; the two are not interchangeable.
var FullMoon = []Term{
	{Coef: -0.40614, MP: 1},
	{Coef: 0.17302, EPow: 1, M: 1},
	{Coef: 0.01614, MP: 2},
	{Coef: 0.01043, F: 2},
	{Coef: 0.00734, EPow: 1, MP: 1, M: -1},
	{Coef: -0.00515, EPow: 1, MP: 1, M: 1},
	{Coef: 0.00209, EPow: 2, M: 2},
	{Coef: -0.00111, MP: 1, F: -2},
	{Coef: -0.00057, MP: 1, F: 2},
	{Coef: 0.00056, EPow: 1, MP: 2, M: 1},
	{Coef: -0.00042, MP: 3},
	{Coef: 0.00042, EPow: 1, M: 1, F: 2},
	{Coef: 0.00038, EPow: 1, M: 1, F: -2},
	{Coef: -0.00024, EPow: 1, MP: 2, M: -1},
	{Coef: -0.00017, Ohm: 1},
	{Coef: -0.00007, MP: 1, M: 2},
	{Coef: 0.00004, MP: 2, F: -2},
	{Coef: 0.00004, M: 3},
	{Coef: 0.00003, MP: 1, M: 1, F: -2},
	{Coef: 0.00003, MP: 2, F: 2},
	{Coef: -0.00003, MP: 1, M: 1, F: 2},
	{Coef: 0.00003, MP: 1, M: -1, F: 2},
	{Coef: -0.00002, MP: 1, M: -1, F: -2},
	{Coef: -0.00002, MP: 3, M: 1},
	{Coef: 0.00002, MP: 4},
}

// Quarter holds the corrections shared by the first and last quarters.
var Quarter = []Term{
	{Coef: -0.62801, MP: 1},
	{Coef: 0.17172, EPow: 1, M: 1},
	{Coef: -0.01183, EPow: 1, MP: 1, M: 1},
	{Coef: 0.00862, MP: 2},
	{Coef: 0.00804, F: 2},
	{Coef: 0.00454, EPow: 1, MP: 1, M: -1},
	{Coef: 0.00204, EPow: 2, M: 1},
	{Coef: -0.00180, MP: 1, F: -2},
	{Coef: -0.00070, MP: 1, F: 2},
	{Coef: -0.00040, M: 3},
	{Coef: -0.00034, EPow: 1, MP: 2, M: -1},
	{Coef: 0.00032, EPow: 1, M: 1, F: 2},
	{Coef: 0.00032, EPow: 1, M: 1, F: -2},
	{Coef: -0.00028, EPow: 2, MP: 1, M: 2},
	{Coef: 0.00027, EPow: 1, MP: 2, M: 1},
	{Coef: -0.00017, Ohm: 1},
	{Coef: -0.00005, MP: 1, M: -1, F: -2},
	{Coef: 0.00004, MP: 2, F: 2},
	{Coef: -0.00004, MP: 1, M: 1, F: 2},
	{Coef: 0.00004, MP: 1, M: -2},
	{Coef: 0.00003, MP: 1, M: 1, F: -2},
	{Coef: 0.00003, M: 3},
	{Coef: 0.00002, MP: 2, F: -2},
	{Coef: 0.00002, MP: 1, M: -1, F: 2},
	{Coef: -0.00002, MP: 3, M: 1},
}

// quarterW is the quarter-phase asymmetry correction W. The constant term
// is a cosine of a zero angle.
var quarterW = []Term{
	{Coef: 0.00306, Trig: Cosine},
	{Coef: -0.00038, EPow: 1, M: 1, Trig: Cosine},
	{Coef: 0.00026, MP: 1, Trig: Cosine},
	{Coef: -0.00002, MP: 1, M: -1, Trig: Cosine},
	{Coef: 0.00002, MP: 1, M: 1, Trig: Cosine},
	{Coef: 0.00002, F: 2, Trig: Cosine},
}
