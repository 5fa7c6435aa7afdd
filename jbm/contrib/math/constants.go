package math

// =============================================================================
// Constants for the double precision kernels
// =============================================================================
//
// Every table is a minimax fit that is only valid on the interval named above
// it. Rational tables use the poly.Rational layout: numerator coefficients
// p0..pn followed by denominator coefficients q1..qm (q0 == 1).

// Shared constants
var (
	ln2_f64     float64 = 0.6931471805599453 // ln(2)
	log2E_f64   float64 = 1.4426950408889634 // log2(e)
	log2Ten_f64 float64 = 3.321928094887362  // log2(10)
	log10E_f64  float64 = 0.4342944819032518 // log10(e)

	// Cody-Waite splits: the high parts have enough trailing zero bits that
	// k*hi is exact for every k reachable from a finite argument.
	ln2Hi_f64      float64 = 6.93147180369123816490e-01
	ln2Lo_f64      float64 = 1.90821492927058770002e-10
	log10Of2Hi_f64 float64 = 3.01029995663611771306e-01
	log10Of2Lo_f64 float64 = 3.69423907715893078616e-13

	sqrtHalf_f64 float64 = 0.7071067811865476 // √½
	sqrt2_f64    float64 = 1.4142135623730951 // √2

	pi_f64           float64 = 3.141592653589793
	piOver2_f64      float64 = 1.5707963267948966
	piOver4_f64      float64 = 0.7853981633974483
	threePiOver4_f64 float64 = 2.356194490192345
	twoOverPi_f64    float64 = 0.6366197723675814

	// π/2 = piOver2Hi + piOver2Lo to twice double precision.
	piOver2Hi_f64 float64 = 1.57079632679489655800e+00
	piOver2Lo_f64 float64 = 6.12323399573676603587e-17

	// Three-part split of π/2 for quadrant reduction. The first two parts
	// have 33 significant bits, so q*piOver2A and q*piOver2B are exact for
	// |q| < 2^20.
	piOver2A_f64 float64 = 1.57079625129699707031e+00
	piOver2B_f64 float64 = 7.54978941586159635336e-08
	piOver2C_f64 float64 = 5.39030285815811905290e-15

	cbrt2_f64 float64 = 1.2599210498948732 // ∛2
	cbrt4_f64 float64 = 1.5874010519681994 // ∛4
)

// Range limits
var (
	// exp(x) overflows above ln(MaxFloat64) and rounds to 0 below ln(2^-1075).
	expOverflow_f64  float64 = 7.09782712893383973096e+02
	expUnderflow_f64 float64 = -7.45133219101941108420e+02

	// 2^x overflows at the first power of two past MaxFloat64 and rounds to 0
	// below 2^-1075.
	exp2Overflow_f64  float64 = 1024
	exp2Underflow_f64 float64 = -1075

	exp10Overflow_f64  float64 = 308.25471555991675
	exp10Underflow_f64 float64 = -323.6072453387798

	// Beyond ±expm1Saturate, expm1(x) equals exp(x) or -1 in double precision.
	expm1Saturate_f64 float64 = 40

	// Above hyperbolicLarge_f64 cosh and sinh are e^|x|/2 to double precision.
	hyperbolicLarge_f64 float64 = 22

	// erfc(x) < 2^-1075 for x > erfcMax_f64, so it rounds to 0.
	erfcMax_f64 float64 = 27.226017111108362

	// Above 2^28 the inverse hyperbolic functions reduce to log(2x).
	invHyperbolicLarge_f64 float64 = 0x1p28
)

// exp2Coeffs_f64: 2^f = 1 + f*R(f) for f in [-1/2, 1/2], rational (5, 5).
var exp2Coeffs_f64 = [...]float64{
	0.6931471805599453,
	0.021869260129763576,
	0.01009212956368467,
	0.00029183057239378247,
	2.0207773577972514e-05,
	3.335970878753416e-07,
	-0.315022917142852,
	0.0436629863685051,
	-0.0033618242622803006,
	0.00014557832768661563,
	-2.8810946406692423e-06,
}

// expm1Coeffs_f64: e^x - 1 = x + x²*R(x) for |x| <= ln(2)/2, rational (5, 4).
var expm1Coeffs_f64 = [...]float64{
	0.5,
	-0.015112656603084362,
	0.008332531606042604,
	0.0002530266343349343,
	2.1065050126259808e-05,
	6.018977302673994e-07,
	-0.36355864653950204,
	0.05451794539191948,
	-0.004036707983677767,
	0.00012607031001547183,
}

// log1pCoeffs_f64: with s = f/(2+f), ln(1+f) = f - hfsq + s*(hfsq + R) where
// R = s²*P(s²), for f in [√½-1, √2-1]. Polynomial of degree 6 in s².
var log1pCoeffs_f64 = [...]float64{
	6.666666666666735130e-01,
	3.999999999940941908e-01,
	2.857142874366239149e-01,
	2.222219843214978396e-01,
	1.818357216161805012e-01,
	1.531383769920937332e-01,
	1.479819860511658591e-01,
}

// cbrtCoeffs_f64: ∛m = 1 + (m-1)*R(m) for m in [1/2, 1], rational (6, 6).
var cbrtCoeffs_f64 = [...]float64{
	0.8388928685665168,
	27.739715761386645,
	180.8675321766938,
	341.9249303134319,
	197.61163127921367,
	28.77144233939673,
	0.4014799746495268,
	41.88260295410431,
	353.26094622985926,
	911.586816719932,
	795.8249326773002,
	217.89194177199295,
	13.019633786827528,
}

// sinCoeffs_f64: sin(y) = y + y*z*P(z), z = y², for |y| <= π/4.
var sinCoeffs_f64 = [...]float64{
	-1.66666666666666307295e-1,
	8.33333333332211858878e-3,
	-1.98412698295895385996e-4,
	2.75573136213857245213e-6,
	-2.50507477628578072866e-8,
	1.58962301576546568060e-10,
}

// cosCoeffs_f64: cos(y) = 1 - z/2 + z²*P(z), z = y², for |y| <= π/4.
var cosCoeffs_f64 = [...]float64{
	4.16666666666665929218e-2,
	-1.38888888888730564116e-3,
	2.48015872888517045348e-5,
	-2.75573141792967388112e-7,
	2.08757008419747316778e-9,
	-1.13585365213876817300e-11,
}

// tanCoeffs_f64: tan(y) = y + y*z*R(z), z = y², for |y| <= π/4, rational (2, 4).
var tanCoeffs_f64 = [...]float64{
	0.3333333333333333,
	-0.021413137855441616,
	0.00024306287499048116,
	-0.46423941356632453,
	0.024520192146735387,
	-0.00025397074687295184,
	-1.8563353971011345e-08,
}

// atanCoeffs_f64: atan(x) = x*R(x²) for |x| <= 1, rational (7, 7) in x².
var atanCoeffs_f64 = [...]float64{
	1.0,
	2.9633482986935475,
	3.3673856307476155,
	1.8407119154506106,
	0.4969288373541309,
	0.06077284464749199,
	0.002611049856577495,
	1.6803363439527698e-05,
	3.296681632026881,
	4.26627950808991,
	2.7463259012656507,
	0.9189583105752158,
	0.1519067341949871,
	0.01053143429699539,
	0.00019773399082776953,
}

// erfCoeffs_f64: erf(x) = x*R(x²) for |x| <= 1, rational (5, 5) in x².
var erfCoeffs_f64 = [...]float64{
	1.1283791670955126,
	0.14350670339389063,
	0.045483618109453214,
	0.001877412655304929,
	0.00019688478017224054,
	7.772005012862058e-08,
	0.4605128378639621,
	0.09381308632358792,
	0.010693082443098287,
	0.000692498522434869,
	2.0810270425375004e-05,
}

// The erfc tables approximate erfc(x) = exp(-x²)*R(1/x²)/x.

// erfcCoeffs0_f64 covers x in [1/2, 1), rational (8, 8) in 1/x².
var erfcCoeffs0_f64 = [...]float64{
	0.5641795624821774,
	4.41594830439307,
	11.204567178955767,
	11.777348109500355,
	5.458261643957771,
	1.0948755557728165,
	0.08601903834299922,
	0.002050747974588365,
	6.362326196285118e-06,
	8.32666984022715,
	23.27780610229059,
	28.097183706977923,
	15.707409147220528,
	4.050057201628512,
	0.44996597877998856,
	0.018203254257221343,
	0.00017353345360455002,
}

// erfcCoeffs1_f64 covers x in [1, 5/2], rational (9, 9) in 1/x².
var erfcCoeffs1_f64 = [...]float64{
	0.5641895830840569,
	12.521610814806214,
	102.95630285380926,
	402.9534378647376,
	805.008241451629,
	820.5661306105555,
	404.59258846141773,
	85.274368505287,
	5.847728466444662,
	0.05518925298839833,
	22.693977238143592,
	193.0822870873518,
	795.6119463551843,
	1715.824868950455,
	1958.2139291637845,
	1142.3944211848357,
	312.06822195443016,
	33.252091092853036,
	0.8844626162001613,
}

// erfcCoeffs2_f64 covers x in (5/2, erfcMax], rational (8, 8) in 1/x².
var erfcCoeffs2_f64 = [...]float64{
	0.5641895835477563,
	23.668566272545988,
	375.14831299695453,
	2867.50644298551,
	11190.606444059893,
	21727.87087428001,
	18839.7538195003,
	5604.046772460268,
	243.05771445852915,
	42.45144143518655,
	685.4087927497533,
	5395.263652664517,
	22091.442670206314,
	46547.007150236255,
	46806.8622223916,
	18842.802456394427,
	1950.9593062719296,
}
