package msis

// NRLMSISE-00 parameter tables, laid out as in the GTD7BK data block
// (NRL release of 01-Feb-02). Every 150-term row carries a nonzero
// activity decay rate at index 43 and every 100-term row the parameter
// set tag at index 99. Values are read-only; the evaluator copies a row
// before any in-place clamping.

// Rows of pd.
const (
	pdHe = iota
	pdO
	pdN2
	pdTLB
	pdO2
	pdAr
	pdH
	pdN
	pdHotO
)

// Rows of pdm, one per species in the order the assembler visits them.
const (
	pdmHe = iota
	pdmO
	pdmN2
	pdmO2
	pdmAr
	pdmH
	pdmN
	pdmHotO
)

// Rows of pma. Rows 0-2 hold the mesosphere node temperatures, 3-6 the
// stratosphere/troposphere nodes, 7 the ground gradient, 8 the 72.5 km
// gradient and 9 the 32.5 km gradient.
const (
	pmaMeso55 = iota
	pmaMeso45
	pmaMeso325
	pmaStrat20
	pmaStrat15
	pmaStrat10
	pmaStrat0
	pmaGrad0
	pmaGrad725
	pmaGrad325
)

// Exospheric temperature.
var pt = [150]float64{
	9.86573e-01, 1.62228e-02, 1.55270e-02, -1.04323e-01, -3.75801e-03,
	-1.18538e-03, -1.24043e-01, 4.56820e-03, 8.76018e-03, -1.36235e-01,
	-3.52427e-02, 8.84181e-03, -5.92127e-03, -8.61650e+00, 0.00000e+00,
	1.28492e-02, 0.00000e+00, 1.30096e+02, 1.04567e-02, 1.65686e-03,
	-5.53887e-06, 2.97810e-03, 0.00000e+00, 5.13122e-03, 8.66784e-02,
	1.58727e-01, 0.00000e+00, 0.00000e+00, 0.00000e+00, -7.27026e-06,
	0.00000e+00, 6.74494e+00, 4.93933e-03, 2.21656e-03, 2.50802e-03,
	0.00000e+00, 0.00000e+00, -2.08841e-02, -1.79873e+00, 1.45103e-03,
	2.81769e-04, -1.44703e-03, -5.16394e-05, 8.47001e-02, 1.70147e-01,
	5.72562e-03, 5.07493e-05, 4.36148e-03, 1.17863e-04, 4.74364e-03,
	6.61278e-03, 4.34292e-05, 1.44373e-03, 2.41470e-05, 2.84426e-03,
	8.56560e-04, 2.04028e-03, 0.00000e+00, -3.15994e+03, -2.46423e-03,
	1.13843e-03, 4.20512e-04, 0.00000e+00, -9.77214e+01, 6.77794e-03,
	5.27499e-03, 1.14936e-03, 0.00000e+00, -6.61311e-03, -1.84255e-02,
	-1.96259e-02, 2.98618e+04, 0.00000e+00, 0.00000e+00, 0.00000e+00,
	6.44574e+02, 8.84668e-04, 5.05066e-04, 0.00000e+00, 4.02881e+03,
	-1.89503e-03, 0.00000e+00, 0.00000e+00, 8.21407e-04, 2.06780e-03,
	0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
	-1.20410e-02, -3.63963e-03, 9.92070e-05, -1.15284e-04, -6.33059e-05,
	-6.05545e-01, 8.34218e-03, -9.13036e+01, 3.71042e-04, 0.00000e+00,
	4.19000e-04, 2.70928e-03, 3.31507e-03, -4.44508e-03, -4.96334e-03,
	-1.60449e-03, 3.95119e-03, 2.48924e-03, 5.09815e-04, 4.05302e-03,
	2.24076e-03, 0.00000e+00, 6.84256e-03, 4.66354e-04, 0.00000e+00,
	-3.68328e-04, 0.00000e+00, 0.00000e+00, -1.46870e+02, 0.00000e+00,
	0.00000e+00, 1.09501e-03, 4.65156e-04, 5.62583e-04, 3.21596e+00,
	6.43168e-04, 3.14860e-03, 3.40738e-03, 1.78481e-03, 9.62532e-04,
	5.58171e-04, 3.43731e+00, -2.33195e-01, 5.10289e-04, 0.00000e+00,
	0.00000e+00, -9.25347e+04, 0.00000e+00, -1.99639e-03, 0.00000e+00,
	0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
	0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
}

// Species densities and the 120 km temperature.
var pd = [9][150]float64{
	pdHe: {
		1.09979e+00, -4.88060e-02, -1.97501e-01, -9.10280e-02, -6.96558e-03,
		2.42136e-02, 3.91333e-01, -7.20068e-03, -3.22718e-02, 1.41508e+00,
		1.68194e-01, 1.85282e-02, 1.09384e-01, -7.24282e+00, 0.00000e+00,
		2.96377e-01, -4.97210e-02, 1.04114e+02, -8.61108e-02, -7.29177e-04,
		1.48998e-06, 1.08629e-03, 0.00000e+00, 0.00000e+00, 8.31090e-02,
		1.12818e-01, -5.75005e-02, -1.29919e-02, -1.78849e-02, -2.86343e-06,
		0.00000e+00, -1.51187e+02, -6.65902e-03, 0.00000e+00, -2.02069e-03,
		0.00000e+00, 0.00000e+00, 4.32264e-02, -2.80444e+01, -3.26789e-03,
		2.47461e-03, 0.00000e+00, 0.00000e+00, 9.82100e-02, 1.22714e-01,
		-3.96450e-02, 0.00000e+00, -2.76489e-03, 0.00000e+00, 1.87723e-03,
		-8.09813e-03, 4.34428e-05, -7.70932e-03, 0.00000e+00, -2.28894e-03,
		-5.69070e-03, -5.22193e-03, 6.00692e-03, -7.80434e+03, -3.48336e-03,
		-6.38362e-03, -1.82190e-03, 0.00000e+00, -7.58976e+01, -2.17875e-02,
		-1.72524e-02, -9.06287e-03, 0.00000e+00, 2.44725e-02, 8.66040e-02,
		1.05712e-01, 3.02543e+04, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		-6.01364e+03, -5.64668e-03, -2.54157e-03, 0.00000e+00, 3.15611e+02,
		-5.69158e-03, 0.00000e+00, 0.00000e+00, -4.47216e-03, -4.49523e-03,
		4.64428e-03, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		4.51236e-02, 2.46520e-02, 6.17794e-03, 0.00000e+00, 0.00000e+00,
		-3.62944e-01, -4.80022e-02, -7.57230e+01, -1.99656e-03, 0.00000e+00,
		-5.18780e-03, -1.73990e-02, -9.03485e-03, 7.48465e-03, 1.53267e-02,
		1.06296e-02, 1.18655e-02, 2.55569e-03, 1.69020e-03, 3.51936e-02,
		-1.81242e-02, 0.00000e+00, -1.00529e-01, -5.10574e-03, 0.00000e+00,
		2.10228e-03, 0.00000e+00, 0.00000e+00, -1.73255e+02, 5.07833e-01,
		-2.41408e-01, 8.75414e-03, 2.77527e-02, -8.90353e-05, -5.25148e+00,
		-5.83899e-03, -2.09122e-02, -9.63530e-03, 9.77164e-03, 4.07051e-03,
		2.53555e-04, -5.52875e+00, -3.55993e-01, -2.49231e-03, 0.00000e+00,
		0.00000e+00, 2.86026e+01, 0.00000e+00, 3.42722e-04, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
	},
	pdO: {
		1.02315e+00, -1.59710e-01, -1.06630e-01, -1.77074e-02, -4.42726e-03,
		3.44803e-02, 4.45613e-02, -3.33751e-02, -5.73598e-02, 3.50360e-01,
		6.33053e-02, 2.16221e-02, 5.42577e-02, -5.74193e+00, 0.00000e+00,
		1.90891e-01, -1.39194e-02, 1.01102e+02, 8.16363e-02, 1.33717e-04,
		6.54403e-06, 3.10295e-03, 0.00000e+00, 0.00000e+00, 5.38205e-02,
		1.23910e-01, -1.39831e-02, 0.00000e+00, 0.00000e+00, -3.95915e-06,
		0.00000e+00, -7.14651e-01, -5.01027e-03, 0.00000e+00, -3.24756e-03,
		0.00000e+00, 0.00000e+00, 4.42173e-02, -1.31598e+01, -3.15626e-03,
		1.24574e-03, -1.47626e-03, -1.55461e-03, 6.40682e-02, 1.34898e-01,
		-2.42415e-02, 0.00000e+00, 0.00000e+00, 0.00000e+00, 6.13666e-04,
		-5.40373e-03, 2.61635e-05, -3.33012e-03, 0.00000e+00, -3.08101e-03,
		-2.42679e-03, -3.36086e-03, 0.00000e+00, -1.18979e+03, -5.04738e-02,
		-2.61547e-03, -1.03132e-03, 1.91583e-04, -8.38132e+01, -1.40517e-02,
		-1.14167e-02, -4.08012e-03, 1.73522e-04, -1.39644e-02, -6.64128e-02,
		-6.85152e-02, -1.34414e+04, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		6.07916e+02, -4.12220e-03, -2.20996e-03, 0.00000e+00, 1.70277e+03,
		4.63015e-03, 0.00000e+00, 0.00000e+00, 2.25360e-03, 3.04770e-03,
		-3.60217e-03, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		6.68624e-04, 1.30045e-02, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		5.76618e-02, -3.57658e-02, -1.10540e+02, -8.32090e-04, 0.00000e+00,
		1.33700e-03, 1.19082e-02, 9.64428e-03, -3.23432e-03, 1.52000e-03,
		-1.74750e-03, -1.58316e-03, 1.11018e-03, 7.69474e-04, 1.14219e-02,
		-1.05536e-02, 0.00000e+00, -1.72130e-02, -1.76553e-03, 0.00000e+00,
		-4.58211e-04, 0.00000e+00, 0.00000e+00, 1.38000e+02, 0.00000e+00,
		0.00000e+00, -3.02451e-03, -1.09447e-02, 1.11497e-04, 1.94000e+00,
		-1.69316e-03, -9.06040e-03, -2.29648e-03, 9.94101e-04, -1.83617e-04,
		0.00000e+00, -8.22450e+00, -1.00780e+00, 3.13640e-03, 0.00000e+00,
		0.00000e+00, 1.55000e+02, 0.00000e+00, -2.19024e-04, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
	},
	pdN2: {
		1.16112e+00, 0.00000e+00, 0.00000e+00, 3.33725e-02, 0.00000e+00,
		3.48637e-02, -5.44368e-03, 0.00000e+00, -6.73940e-02, 1.74754e-01,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 1.74712e+02, 0.00000e+00,
		1.26733e-01, 0.00000e+00, 1.03154e+02, 5.52075e-02, 0.00000e+00,
		0.00000e+00, 8.13525e-04, 0.00000e+00, 0.00000e+00, 8.66784e-02,
		1.58727e-01, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, -2.50482e+01, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, -2.48894e-03, 6.16053e-04,
		-5.79716e-04, 2.95482e-03, 0.00000e+00, 8.47001e-02, 1.70147e-01,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
	},
	pdTLB: {
		9.44846e-01, 0.00000e+00, 0.00000e+00, -3.08617e-02, 0.00000e+00,
		-2.44019e-02, 6.48607e-03, 0.00000e+00, 3.08181e-02, 4.59392e-02,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 1.74712e+02, 0.00000e+00,
		2.13260e-02, 0.00000e+00, -3.56958e+02, 0.00000e+00, 1.82278e-04,
		0.00000e+00, 3.07472e-04, 0.00000e+00, 0.00000e+00, 8.66784e-02,
		1.58727e-01, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 3.83054e-03, 0.00000e+00, 0.00000e+00,
		-1.93065e-03, -1.45090e-03, 0.00000e+00, 0.00000e+00, -1.23493e-03,
		1.36736e-03, 0.00000e+00, 0.00000e+00, 8.47001e-02, 1.70147e-01,
		3.71469e-03, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		5.10250e-03, 2.47425e-05, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
	},
	pdO2: {
		1.35580e+00, 1.44816e-01, 0.00000e+00, 6.07767e-02, 0.00000e+00,
		2.94777e-02, 7.46900e-02, 0.00000e+00, -9.23822e-02, 8.57342e-02,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 2.38636e+01, 0.00000e+00,
		7.71653e-02, 0.00000e+00, 8.18751e+01, 1.87736e-02, 0.00000e+00,
		0.00000e+00, 1.49667e-02, 0.00000e+00, 0.00000e+00, 8.66784e-02,
		1.58727e-01, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, -3.67874e+02, 5.48158e-03, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 8.47001e-02, 1.70147e-01,
		1.22631e-02, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		8.17187e-03, 3.71617e-05, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		-2.10826e-03, -3.13640e-03, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		-7.35742e-02, -5.00266e-02, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 1.94000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
	},
	pdAr: {
		1.04761e+00, 2.00165e-01, 2.37697e-01, 3.68552e-02, 0.00000e+00,
		3.57202e-02, -2.14075e-01, 0.00000e+00, -1.08018e-01, -3.73981e-01,
		0.00000e+00, 3.10022e-02, -1.16305e-03, -2.07596e+01, 0.00000e+00,
		8.64502e-02, 0.00000e+00, 9.74908e+01, 5.16707e-02, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 8.66784e-02,
		1.58727e-01, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 3.46193e+02, 1.34297e-02, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 8.47001e-02, 1.70147e-01,
		-3.48509e-03, -1.54689e-04, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
	},
	pdH: {
		1.26376e+00, -2.14304e-01, -1.49984e-01, 2.30404e-01, 2.98237e-02,
		2.68673e-02, 2.96228e-01, 2.21900e-02, -2.07655e-02, 4.52506e-01,
		1.20105e-01, 3.24420e-02, 4.24816e-02, -9.14313e+00, 0.00000e+00,
		2.47178e-02, -2.88229e-02, 8.12805e+01, 5.10380e-02, -5.80611e-03,
		2.51236e-05, -1.24083e-02, 0.00000e+00, 0.00000e+00, 8.66784e-02,
		1.58727e-01, -3.48190e-02, 0.00000e+00, 0.00000e+00, 2.89885e-05,
		0.00000e+00, 1.53595e+02, -1.68604e-02, 0.00000e+00, 1.01015e-02,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 2.84552e-04,
		-1.22181e-03, 0.00000e+00, 0.00000e+00, 8.47001e-02, 1.70147e-01,
		-1.04927e-02, 0.00000e+00, 0.00000e+00, 0.00000e+00, -5.91313e-03,
		-2.30501e-02, 3.14758e-05, 0.00000e+00, 0.00000e+00, 1.26956e-02,
		8.35489e-03, 3.10513e-04, 0.00000e+00, 3.42119e+03, -2.45017e-03,
		-4.27154e-04, 5.45152e-04, 1.89896e-03, 2.89121e+01, -6.49973e-03,
		-1.93855e-02, -1.48492e-02, 0.00000e+00, -5.10576e-02, 7.87306e-02,
		9.51981e-02, -1.49422e+04, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		2.65503e+02, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 6.37110e-03, 3.24789e-04,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		6.14274e-02, 1.00376e-02, -8.41083e-04, 0.00000e+00, 0.00000e+00,
		0.00000e+00, -1.27099e-02, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		-3.94077e-03, -1.28601e-02, -7.97616e-03, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, -6.71465e-03, -1.69799e-03, 1.93772e-03, 3.81140e+00,
		-7.79290e-03, -1.82589e-02, -1.25860e-02, -1.04311e-02, -3.02465e-03,
		2.43063e-03, 3.63237e-03, -5.93536e-03, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
	},
	pdN: {
		7.09557e+01, -3.26740e-01, 0.00000e+00, -5.16829e-01, -1.71664e-03,
		9.09310e-02, -6.71500e-01, -1.47771e-01, -9.27471e-02, -2.30862e-01,
		-1.56410e-01, 1.34455e-02, -1.19717e-01, 2.52151e+00, 0.00000e+00,
		-2.41582e-01, 5.92939e-02, 4.39756e+00, 9.15280e-02, 4.41292e-03,
		0.00000e+00, 8.66807e-03, 0.00000e+00, 0.00000e+00, 8.66784e-02,
		1.58727e-01, 9.74701e-02, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 6.70217e+01, -1.31660e-03, 0.00000e+00, -1.65317e-02,
		0.00000e+00, 0.00000e+00, 8.50247e-02, 2.77428e+01, 4.98658e-03,
		6.15115e-03, 9.50156e-03, -2.12723e-02, 8.47001e-02, 1.70147e-01,
		-2.38645e-02, 0.00000e+00, 0.00000e+00, 0.00000e+00, 1.37380e-03,
		-8.41918e-03, 2.80145e-05, 7.12383e-03, 0.00000e+00, -1.66209e-02,
		1.03533e-04, -1.68898e-02, 0.00000e+00, 3.64526e+03, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
	},
	pdHotO: {
		6.04050e-02, 1.57034e+00, 2.99387e-02, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, -1.51018e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, -8.61650e+00, 1.26454e-02,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 5.50878e-03, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 8.47001e-02, 1.70147e-01,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
	},
}

// Temperature gradient at the lower boundary.
var ps = [150]float64{
	9.56827e-01, 6.20637e-02, 3.18433e-02, 0.00000e+00, 0.00000e+00,
	3.94900e-02, 0.00000e+00, 0.00000e+00, -9.24882e-03, -7.94023e-03,
	0.00000e+00, 0.00000e+00, 0.00000e+00, 1.74712e+02, 0.00000e+00,
	0.00000e+00, 0.00000e+00, 1.54951e+02, 8.66784e-02, 0.00000e+00,
	0.00000e+00, 2.74677e-03, 0.00000e+00, 0.00000e+00, 0.00000e+00,
	0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
	-6.99007e-04, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
	0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
	0.00000e+00, 0.00000e+00, 0.00000e+00, 8.47001e-02, 1.70147e-01,
	0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
	0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
	0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
	0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
	0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
	0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
	0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
	0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
	0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
	0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
	0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
	0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
	0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
	0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
	0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
	0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
	0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
	0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
	0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
	0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
	0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
}

// Turbopause and chemistry corrections. Entries are multipliers on the
// matching pdm altitude and scale columns; row 1 carries the
// lower-boundary altitude at index 15 and the N2 turbopause multiplier
// at index 24.
var pdl = [2][25]float64{
	{
		1.09930e+00, 3.90631e+00, 3.07165e+00, 9.86161e-01, 1.63536e+01,
		4.63830e+00, 1.93892e+00, 4.05734e+00, 4.69839e-01, 9.66456e-01,
		3.14018e+00, 5.20000e+00, 3.91231e+00, 6.38087e-01, 5.15540e-01,
		3.50000e+00, 2.25400e+00, 1.22155e+00, 1.38011e+00, 3.88510e-01,
		1.57052e+00, 3.12100e-01, 1.48340e+00, 1.44012e-02, 1.20000e+00,
	},
	{
		1.10909e+00, 1.75000e+00, 1.00964e+00, 3.50000e-01, 1.30500e+01,
		1.06500e+00, 1.00000e+00, 8.00000e-01, 9.09091e-01, 8.00000e-01,
		9.18182e-01, 1.18000e+00, 1.18778e+00, 2.32500e+00, 1.00000e+00,
		1.20000e+02, 1.17000e+00, 1.20000e+00, 1.08811e+00, 1.90000e+00,
		9.97200e-01, 1.00000e+02, 4.00000e+00, 7.50000e-01, 1.00000e+00,
	},
}

// Lower thermosphere node temperatures (110, 100, 90 and 72.5 km).
var ptl = [4][100]float64{
	{
		1.00858e+00, 4.56011e-02, -2.22972e-02, -5.44388e-02, 5.23136e-04,
		-1.88849e-02, 5.23707e-02, -9.43646e-03, 6.31707e-03, -7.80460e-02,
		-4.88430e-02, 0.00000e+00, 0.00000e+00, -7.60250e+00, 0.00000e+00,
		-1.44635e-02, -1.76843e-02, -1.21517e+02, 2.85647e-02, 0.00000e+00,
		0.00000e+00, 6.31792e-04, 0.00000e+00, 5.77197e-03, 8.66784e-02,
		1.58727e-01, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, -8.90272e+03, 3.30611e-03, 3.02172e-03, 0.00000e+00,
		-2.13673e-03, -3.20910e-04, 0.00000e+00, 0.00000e+00, 2.76034e-03,
		2.82487e-03, -2.97592e-04, -4.21534e-03, 8.47001e-02, 1.70147e-01,
		8.96456e-03, 0.00000e+00, -1.08596e-02, 0.00000e+00, 0.00000e+00,
		5.57917e-03, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 9.65405e-03,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 2.00000e+00,
	},
	{
		9.39664e-01, 8.56514e-02, -6.79989e-03, 2.65929e-02, -4.74283e-03,
		1.21855e-02, -2.14905e-02, 6.49651e-03, -2.05477e-02, -4.24952e-02,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 1.19148e+01, 0.00000e+00,
		1.18777e-02, -7.28230e-02, -8.15965e+01, 1.73887e-02, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, -1.44691e-02, 8.66784e-02,
		1.58727e-01, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, -1.46542e+03, -1.13301e-02, -1.86600e-02, 0.00000e+00,
		-1.38005e-03, -3.57000e-04, 0.00000e+00, 0.00000e+00, -5.88826e-05,
		1.04400e-03, 0.00000e+00, 0.00000e+00, 8.47001e-02, 1.70147e-01,
		8.28300e-03, 0.00000e+00, -9.34100e-03, 0.00000e+00, 0.00000e+00,
		7.48900e-03, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 5.24700e-03,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 2.00000e+00,
	},
	{
		9.85982e-01, -4.55435e-02, 2.18545e-02, -1.67063e-02, 9.53920e-04,
		-1.45839e-03, 4.52410e-02, 2.23040e-03, -2.24093e-02, -3.38612e-02,
		0.00000e+00, 0.00000e+00, 0.00000e+00, -2.33733e+00, 0.00000e+00,
		2.63740e-02, -1.43730e-02, -2.52190e+02, 1.29290e-02, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, -5.75190e-03, 8.66784e-02,
		1.58727e-01, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, -1.29046e+03, -1.06017e-02, -2.40460e-02, 0.00000e+00,
		3.56670e-04, 2.17690e-04, 0.00000e+00, 0.00000e+00, -3.77802e-04,
		1.79070e-03, 0.00000e+00, 0.00000e+00, 8.47001e-02, 1.70147e-01,
		2.81880e-03, 0.00000e+00, -8.86290e-03, 0.00000e+00, 0.00000e+00,
		3.77050e-03, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 5.73070e-03,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 2.00000e+00,
	},
	{
		1.00355e+00, -2.98760e-02, -1.02660e-02, -3.33040e-03, -8.96100e-04,
		2.12640e-03, -3.57130e-02, 1.13880e-02, 1.59870e-03, -2.76180e-02,
		0.00000e+00, 0.00000e+00, 0.00000e+00, -1.19800e+01, 0.00000e+00,
		-2.38190e-02, -2.53750e-02, -1.33580e+02, 1.09930e-02, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 7.97080e-03, 8.66784e-02,
		1.58727e-01, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, -2.29200e+03, 1.12080e-02, -1.25050e-02, 0.00000e+00,
		-1.22330e-03, -3.06800e-04, 0.00000e+00, 0.00000e+00, -2.23000e-04,
		-5.34600e-04, 0.00000e+00, 0.00000e+00, 8.47001e-02, 1.70147e-01,
		1.69070e-03, 0.00000e+00, -5.12600e-03, 0.00000e+00, 0.00000e+00,
		3.19330e-03, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 5.08400e-03,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 2.00000e+00,
	},
}

// Middle and lower atmosphere node temperatures and gradients.
var pma = [10][100]float64{
	pmaMeso55: {
		1.04578e+00, -3.37820e-02, -1.10640e-02, -4.16400e-03, -1.02100e-03,
		-2.65900e-03, -6.35500e-02, 2.98800e-02, -2.84800e-03, -3.45000e-02,
		0.00000e+00, 0.00000e+00, 0.00000e+00, -1.25200e+01, 0.00000e+00,
		-2.16520e-02, -5.44000e-03, -1.56520e+02, 1.11860e-02, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, -8.06900e-03, 8.66784e-02,
		1.58727e-01, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, -2.61300e+03, 1.55200e-02, -5.72500e-03, 0.00000e+00,
		-2.59500e-04, -2.41300e-04, 0.00000e+00, 0.00000e+00, -1.94300e-04,
		-4.20000e-04, 0.00000e+00, 0.00000e+00, 8.47001e-02, 1.70147e-01,
		3.64700e-03, 0.00000e+00, -4.42300e-03, 0.00000e+00, 0.00000e+00,
		4.33400e-03, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 5.80700e-03,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 2.00000e+00,
	},
	pmaMeso45: {
		1.02597e+00, -3.93800e-02, -6.06400e-03, 2.00700e-02, -1.87400e-03,
		4.43600e-03, -5.45400e-02, 3.39800e-02, -4.78300e-03, -2.97900e-02,
		0.00000e+00, 0.00000e+00, 0.00000e+00, -1.05700e+01, 0.00000e+00,
		-1.91800e-02, -1.48800e-02, -1.45200e+02, 6.70300e-03, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, -6.92100e-03, 8.66784e-02,
		1.58727e-01, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, -2.86400e+03, 1.54300e-02, -9.49600e-03, 0.00000e+00,
		2.11200e-04, -1.14700e-04, 0.00000e+00, 0.00000e+00, -1.74100e-04,
		-8.32800e-04, 0.00000e+00, 0.00000e+00, 8.47001e-02, 1.70147e-01,
		3.14000e-03, 0.00000e+00, -3.79400e-03, 0.00000e+00, 0.00000e+00,
		4.59500e-03, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 6.28200e-03,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 2.00000e+00,
	},
	pmaMeso325: {
		1.00530e+00, -3.91500e-02, -1.06500e-02, 1.64300e-02, 0.00000e+00,
		5.57400e-03, -3.52200e-02, 3.26600e-02, -4.30200e-03, -2.13600e-02,
		0.00000e+00, 0.00000e+00, 0.00000e+00, -1.13400e+01, 0.00000e+00,
		-1.65600e-02, -1.59000e-02, -1.52200e+02, 7.36400e-03, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, -7.02500e-03, 8.66784e-02,
		1.58727e-01, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, -1.34400e+03, 1.37800e-02, -1.15800e-02, 0.00000e+00,
		2.72100e-04, -2.64800e-04, 0.00000e+00, 0.00000e+00, 6.14600e-05,
		-7.39900e-04, 0.00000e+00, 0.00000e+00, 8.47001e-02, 1.70147e-01,
		3.00100e-03, 0.00000e+00, -2.38400e-03, 0.00000e+00, 0.00000e+00,
		3.63200e-03, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 5.63400e-03,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 2.00000e+00,
	},
	pmaStrat20: {
		9.62694e-01, -4.97700e-03, 0.00000e+00, -2.82200e-02, 0.00000e+00,
		3.54000e-03, -7.40600e-03, 1.84800e-02, -2.39400e-03, 3.82300e-03,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 1.47400e+01, 0.00000e+00,
		-4.38100e-03, 3.42400e-03, -1.62500e+02, 7.68500e-03, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, -2.11400e-02, 8.66784e-02,
		1.58727e-01, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, -1.02000e+03, -1.29200e-02, -3.52900e-03, 0.00000e+00,
		-1.71100e-03, -1.78800e-03, 0.00000e+00, 0.00000e+00, -7.98400e-04,
		-2.93100e-03, 0.00000e+00, 0.00000e+00, 8.47001e-02, 1.70147e-01,
		1.08800e-03, 0.00000e+00, -1.94200e-03, 0.00000e+00, 0.00000e+00,
		2.38600e-03, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 5.42300e-03,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 2.00000e+00,
	},
	pmaStrat15: {
		9.82684e-01, -2.58800e-02, 0.00000e+00, -3.94400e-02, 0.00000e+00,
		4.27200e-03, -2.38400e-02, 1.73200e-02, -3.13900e-03, 1.18700e-02,
		0.00000e+00, 0.00000e+00, 0.00000e+00, -7.32500e+00, 0.00000e+00,
		-1.32900e-02, -7.51000e-03, -2.04600e+02, 9.51200e-03, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, -1.51300e-02, 8.66784e-02,
		1.58727e-01, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, -1.31000e+03, -1.18900e-02, -3.20500e-03, 0.00000e+00,
		-1.28500e-03, -1.06600e-03, 0.00000e+00, 0.00000e+00, -1.10200e-04,
		-1.74200e-03, 0.00000e+00, 0.00000e+00, 8.47001e-02, 1.70147e-01,
		1.28400e-03, 0.00000e+00, -1.93800e-03, 0.00000e+00, 0.00000e+00,
		2.49600e-03, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 5.82100e-03,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 2.00000e+00,
	},
	pmaStrat10: {
		1.00460e+00, -1.41800e-02, 0.00000e+00, -2.08700e-02, 0.00000e+00,
		1.08300e-02, -1.63900e-02, 2.01600e-02, -2.86800e-03, 7.98500e-03,
		0.00000e+00, 0.00000e+00, 0.00000e+00, -6.52900e+00, 0.00000e+00,
		-1.05700e-02, -1.18700e-02, -2.56200e+02, 1.26700e-02, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, -1.09500e-02, 8.66784e-02,
		1.58727e-01, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, -2.09700e+03, -1.19900e-02, -2.86800e-03, 0.00000e+00,
		-1.14500e-03, -5.17400e-04, 0.00000e+00, 0.00000e+00, 1.08900e-04,
		-1.08700e-03, 0.00000e+00, 0.00000e+00, 8.47001e-02, 1.70147e-01,
		1.49300e-03, 0.00000e+00, -1.74300e-03, 0.00000e+00, 0.00000e+00,
		2.68200e-03, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 5.95300e-03,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 2.00000e+00,
	},
	pmaStrat0: {
		1.00460e+00, -1.41800e-02, 0.00000e+00, -2.08700e-02, 0.00000e+00,
		1.08300e-02, -1.63900e-02, 2.01600e-02, -2.86800e-03, 7.98500e-03,
		0.00000e+00, 0.00000e+00, 0.00000e+00, -6.52900e+00, 0.00000e+00,
		-1.05700e-02, -1.18700e-02, -2.56200e+02, 1.26700e-02, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, -1.09500e-02, 8.66784e-02,
		1.58727e-01, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, -2.09700e+03, -1.19900e-02, -2.86800e-03, 0.00000e+00,
		-1.14500e-03, -5.17400e-04, 0.00000e+00, 0.00000e+00, 1.08900e-04,
		-1.08700e-03, 0.00000e+00, 0.00000e+00, 8.47001e-02, 1.70147e-01,
		1.49300e-03, 0.00000e+00, -1.74300e-03, 0.00000e+00, 0.00000e+00,
		2.68200e-03, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 5.95300e-03,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 2.00000e+00,
	},
	pmaGrad0: {
		1.06881e+00, -6.93800e-02, 0.00000e+00, -6.47900e-02, 0.00000e+00,
		-1.63300e-02, 0.00000e+00, 2.11300e-02, -4.75000e-03, 4.02600e-02,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 1.24300e+01, 0.00000e+00,
		-1.89800e-02, -3.72500e-02, -1.87300e+02, 1.93600e-02, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 8.66784e-02,
		1.58727e-01, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 2.00000e+00,
	},
	pmaGrad725: {
		1.08428e+00, -4.39200e-02, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 2.00000e+00,
	},
	pmaGrad325: {
		1.10000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00,
		0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 2.00000e+00,
	},
}

// Scale factors for the exospheric temperature (0), 120 km temperature
// (1), 110/100/90/72.5 km node temperatures (6, 2, 7, 4), the 120 km
// gradient (3), the lower boundary altitude (5) and the 72.5 km
// gradient (8).
var ptm = [10]float64{
	1.04130e+03, 3.86000e+02, 1.95000e+02, 1.66728e+01, 2.13000e+02,
	1.20000e+02, 2.40000e+02, 1.87000e+02, -2.00000e+00, 0.00000e+00,
}

// Per-species scale factors. Columns: 0 density at zlb, 1 mixing ratio
// at ground, 2 turbopause altitude, 3 chemistry correction magnitude,
// 4 and 5 mixing-correction altitude and scale, 6 and 7 chemistry
// altitude and scale, 9 hot-oxygen temperature.
var pdm = [8][10]float64{
	pdmHe:   {2.45600e+07, 6.71072e-06, 1.00000e+02, 0.00000e+00, 1.10000e+02, 1.00000e+01, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00},
	pdmO:    {8.59400e+10, 1.00000e+00, 1.05000e+02, -8.00000e+00, 1.10000e+02, 1.00000e+01, 9.00000e+01, 2.00000e+00, 0.00000e+00, 0.00000e+00},
	pdmN2:   {2.81000e+11, 0.00000e+00, 1.05000e+02, 2.80000e+01, 2.89500e+01, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00},
	pdmO2:   {3.30000e+10, 2.68270e-01, 1.05000e+02, 1.00000e+00, 1.10000e+02, 1.00000e+01, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00},
	pdmAr:   {1.33000e+09, 1.19615e-02, 1.05000e+02, 0.00000e+00, 1.10000e+02, 1.00000e+01, 0.00000e+00, 0.00000e+00, 0.00000e+00, 0.00000e+00},
	pdmH:    {1.76100e+05, 1.00000e+00, 9.50000e+01, -8.00000e+00, 1.10000e+02, 1.00000e+01, 9.00000e+01, 2.00000e+00, 0.00000e+00, 0.00000e+00},
	pdmN:    {1.00000e+07, 1.00000e+00, 1.05000e+02, -8.00000e+00, 1.10000e+02, 1.00000e+01, 9.00000e+01, 2.00000e+00, 0.00000e+00, 0.00000e+00},
	pdmHotO: {1.00000e+06, 1.00000e+00, 1.05000e+02, -8.00000e+00, 5.50000e+02, 7.60000e+01, 9.00000e+01, 2.00000e+00, 0.00000e+00, 4.00000e+03},
}

// Average values of the middle atmosphere node temperatures and
// gradients, paired with pma rows.
var pavgm = [10]float64{
	2.61000e+02, 2.64000e+02, 2.29000e+02, 2.17000e+02, 2.17000e+02,
	2.23000e+02, 2.86760e+02, -2.93940e+00, 2.50000e+00, 0.00000e+00,
}

// Vertical profile nodes (km).
var (
	thermoNodes = [5]float64{120, 110, 100, 90, 72.5}
	mesoNodes   = [4]float64{72.5, 55, 45, 32.5}
	strataNodes = [5]float64{32.5, 20, 15, 10, 0}
)

// Thermal diffusion coefficients per output slot.
var thermalDiffusion = [9]float64{-0.38, 0, 0, 0, 0.17, 0, -0.38, 0, 0}

// Altitudes above which the mixing corrections are skipped, per output slot.
var mixingCutoff = [8]float64{200, 300, 160, 250, 240, 450, 320, 450}
